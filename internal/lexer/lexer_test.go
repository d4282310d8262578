package lexer

import (
	"testing"

	"treegen/internal/diag"
	"treegen/internal/source"
	"treegen/internal/token"
)

func lexAll(t *testing.T, src string) ([]token.Token, *diag.Sink) {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.tree", []byte(src))
	sink := diag.NewSink(diag.NewBag(100), fs)
	lx := New(fs.Get(id), sink)

	var toks []token.Token
	for {
		tok := lx.Next()
		toks = append(toks, tok)
		if tok.Kind == token.EOF {
			break
		}
	}
	return toks, sink
}

func TestLexerScansKeywordsAndIdents(t *testing.T) {
	toks, sink := lexAll(t, "node Circle extern radius")
	if sink.Bag().Len() != 0 {
		t.Fatalf("unexpected diagnostics: %d", sink.Bag().Len())
	}
	want := []token.Kind{token.KwNode, token.Ident, token.KwExtern, token.Ident, token.EOF}
	if len(toks) != len(want) {
		t.Fatalf("got %d tokens, want %d", len(toks), len(want))
	}
	for i, k := range want {
		if toks[i].Kind != k {
			t.Errorf("token %d: kind = %v, want %v", i, toks[i].Kind, k)
		}
	}
	if toks[1].Text != "Circle" {
		t.Errorf("token[1].Text = %q, want %q", toks[1].Text, "Circle")
	}
}

func TestLexerSkipsComments(t *testing.T) {
	toks, _ := lexAll(t, "// a comment\nnode /* inline */ Foo")
	want := []token.Kind{token.KwNode, token.Ident, token.EOF}
	if len(toks) != len(want) {
		t.Fatalf("got %d tokens, want %d", len(toks), len(want))
	}
}

func TestLexerScansNumberLiterals(t *testing.T) {
	toks, sink := lexAll(t, "0 123 0x1F_2A 0o17 0b1010 3.14 2.5e-3")
	if sink.Bag().Len() != 0 {
		t.Fatalf("unexpected diagnostics: %d", sink.Bag().Len())
	}
	kinds := []token.Kind{token.IntLit, token.IntLit, token.IntLit, token.IntLit, token.IntLit, token.FloatLit, token.FloatLit, token.EOF}
	if len(toks) != len(kinds) {
		t.Fatalf("got %d tokens, want %d", len(toks), len(kinds))
	}
	for i, k := range kinds {
		if toks[i].Kind != k {
			t.Errorf("token %d: kind = %v, want %v (text %q)", i, toks[i].Kind, k, toks[i].Text)
		}
	}
}

func TestLexerScansStringWithDoubledDelimiterEscape(t *testing.T) {
	toks, sink := lexAll(t, `"a ""quoted"" word"`)
	if sink.Bag().Len() != 0 {
		t.Fatalf("unexpected diagnostics: %d", sink.Bag().Len())
	}
	if len(toks) != 2 || toks[0].Kind != token.StringLit {
		t.Fatalf("got %+v", toks)
	}
	if toks[0].Text != `"a ""quoted"" word"` {
		t.Errorf("Text = %q", toks[0].Text)
	}
}

func TestLexerReportsIllegalCharacter(t *testing.T) {
	_, sink := lexAll(t, "node Foo $ {}")
	if !sink.Bag().HasErrors() {
		t.Fatalf("expected an error diagnostic for the illegal character")
	}
}

func TestLexerReportsUnterminatedString(t *testing.T) {
	_, sink := lexAll(t, `"unterminated`)
	if !sink.Bag().HasErrors() {
		t.Fatalf("expected an error diagnostic for the unterminated string")
	}
}
