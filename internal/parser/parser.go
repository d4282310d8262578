// Package parser implements a recursive-descent parser over the token
// stream internal/lexer produces, building the internal/ast parse tree.
package parser

import (
	"fmt"

	"treegen/internal/ast"
	"treegen/internal/diag"
	"treegen/internal/lexer"
	"treegen/internal/source"
	"treegen/internal/token"
)

// Parser turns one file's token stream into an *ast.File.
type Parser struct {
	lx   *lexer.Lexer
	sink *diag.Sink
	file *source.File

	cur  token.Token
	prev token.Token
}

// New creates a Parser for file, reporting lexical and syntax errors to sink.
func New(file *source.File, sink *diag.Sink) *Parser {
	p := &Parser{
		lx:   lexer.New(file, sink),
		sink: sink,
		file: file,
	}
	p.cur = p.lx.Next()
	return p
}

// Parse parses the whole file and returns the resulting tree. If a fatal
// syntax error is reported, Parse returns the file parsed so far along with
// diag.ErrAborted.
func (p *Parser) Parse() (*ast.File, error) {
	start := p.cur.Span
	f := &ast.File{}

	for p.cur.Kind != token.EOF {
		switch p.cur.Kind {
		case token.KwExtern:
			ext, err := p.parseExtern()
			if err != nil {
				return f, err
			}
			f.Externs = append(f.Externs, ext)
		case token.KwTarget:
			t, err := p.parseTarget()
			if err != nil {
				return f, err
			}
			f.Targets = append(f.Targets, t)
		case token.KwVisitor:
			v, err := p.parseVisitor()
			if err != nil {
				return f, err
			}
			f.Visitor = v
		case token.KwRoot:
			r, err := p.parseRoot()
			if err != nil {
				return f, err
			}
			f.Root = r
		case token.KwAbstract, token.KwNode:
			n, err := p.parseNode()
			if err != nil {
				return f, err
			}
			f.Nodes = append(f.Nodes, n)
		default:
			return f, p.errUnexpected("a declaration ('extern', 'target', 'visitor', 'root', or 'node')")
		}
	}

	f.Span = start.Cover(p.cur.Span)
	return f, nil
}

func (p *Parser) advance() token.Token {
	p.prev = p.cur
	p.cur = p.lx.Next()
	return p.prev
}

func (p *Parser) check(k token.Kind) bool { return p.cur.Kind == k }

func (p *Parser) match(k token.Kind) bool {
	if p.check(k) {
		p.advance()
		return true
	}
	return false
}

func (p *Parser) expect(k token.Kind) (token.Token, error) {
	if p.check(k) {
		return p.advance(), nil
	}
	return token.Token{}, p.errUnexpected(k.String())
}

func (p *Parser) errUnexpected(want string) error {
	msg := fmt.Sprintf("expected %s, found %s", want, describeToken(p.cur))
	return p.sink.Error(diag.SyntaxInvalid, p.cur.Span, msg)
}

func describeToken(t token.Token) string {
	if t.Kind == token.EOF {
		return "end of file"
	}
	if t.Kind == token.Ident || t.Kind.IsLiteral() {
		return fmt.Sprintf("%s %q", t.Kind, t.Text)
	}
	return t.Kind.String()
}
