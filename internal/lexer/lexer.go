package lexer

import (
	"fmt"

	"treegen/internal/diag"
	"treegen/internal/source"
	"treegen/internal/token"
)

// Lexer converts a spec file's content into a stream of tokens.
type Lexer struct {
	file   *source.File
	cursor Cursor
	sink   *diag.Sink
	look   *token.Token
}

// New creates a new Lexer for file, reporting lexical errors to sink.
func New(file *source.File, sink *diag.Sink) *Lexer {
	return &Lexer{
		file:   file,
		cursor: NewCursor(file),
		sink:   sink,
	}
}

// Next returns the next significant token. Past EOF it always returns EOF.
func (lx *Lexer) Next() token.Token {
	if lx.look != nil {
		tok := *lx.look
		lx.look = nil
		return tok
	}

	lx.skipTrivia()

	if lx.cursor.EOF() {
		return token.Token{Kind: token.EOF, Span: lx.EmptySpan(), Text: ""}
	}

	ch := lx.cursor.Peek()
	switch {
	case isIdentStartByte(ch):
		return lx.scanIdentOrKeyword()
	case isDec(ch):
		return lx.scanNumber()
	case ch == '"':
		return lx.scanString()
	case ch == '\'':
		return lx.scanChar()
	default:
		return lx.scanPunct()
	}
}

// Peek returns the next token without consuming it.
func (lx *Lexer) Peek() token.Token {
	t := lx.Next()
	lx.look = &t
	return t
}

// EmptySpan returns a zero-length span at the current cursor position.
func (lx *Lexer) EmptySpan() source.Span {
	return source.Span{File: lx.file.ID, Start: lx.cursor.Off, End: lx.cursor.Off}
}

func (lx *Lexer) errLex(code diag.Code, span source.Span, msg string) {
	if lx.sink != nil {
		lx.sink.ErrorNonFatal(code, span, msg)
	}
}

func (lx *Lexer) errLexRune(span source.Span, ch byte) {
	lx.errLex(diag.LexIllegalChar, span, fmt.Sprintf("illegal character %q", rune(ch)))
}
