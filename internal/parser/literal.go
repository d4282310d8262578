package parser

import (
	"strconv"
	"strings"

	"treegen/internal/ast"
	"treegen/internal/diag"
	"treegen/internal/token"
)

// parseLiteral parses one literal value: an int/float/string/char literal,
// 'true'/'false', 'null', or a "[ literal, ... ]" list.
func (p *Parser) parseLiteral() (ast.Literal, error) {
	switch p.cur.Kind {
	case token.IntLit:
		tok := p.advance()
		v, err := strconv.ParseInt(stripDigitSeparators(tok.Text), 0, 64)
		if err != nil {
			return nil, p.sink.Error(diag.SyntaxInvalid, tok.Span, "invalid integer literal \""+tok.Text+"\"")
		}
		return ast.IntLiteral{Span: tok.Span, Value: v}, nil

	case token.FloatLit:
		tok := p.advance()
		v, err := strconv.ParseFloat(stripDigitSeparators(tok.Text), 64)
		if err != nil {
			return nil, p.sink.Error(diag.SyntaxInvalid, tok.Span, "invalid float literal \""+tok.Text+"\"")
		}
		return ast.FloatLiteral{Span: tok.Span, Value: v}, nil

	case token.StringLit:
		tok := p.advance()
		return ast.StringLiteral{Span: tok.Span, Value: unquoteDelimited(tok.Text, '"')}, nil

	case token.CharLit:
		tok := p.advance()
		unquoted := unquoteDelimited(tok.Text, '\'')
		r := rune(0)
		for _, rr := range unquoted {
			r = rr
			break
		}
		return ast.CharLiteral{Span: tok.Span, Value: r}, nil

	case token.KwTrue:
		tok := p.advance()
		return ast.BoolLiteral{Span: tok.Span, Value: true}, nil

	case token.KwFalse:
		tok := p.advance()
		return ast.BoolLiteral{Span: tok.Span, Value: false}, nil

	case token.KwNull:
		tok := p.advance()
		return ast.NullLiteral{Span: tok.Span}, nil

	case token.LBracket:
		return p.parseListLiteral()

	default:
		return nil, p.errUnexpected("a literal value")
	}
}

func (p *Parser) parseListLiteral() (ast.Literal, error) {
	start := p.cur.Span
	p.advance() // '['

	var items []ast.Literal
	for !p.check(token.RBracket) {
		if len(items) > 0 {
			if _, err := p.expect(token.Comma); err != nil {
				return nil, err
			}
			if p.check(token.RBracket) {
				break // trailing comma
			}
		}
		item, err := p.parseLiteral()
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	if _, err := p.expect(token.RBracket); err != nil {
		return nil, err
	}

	return ast.ListLiteral{Span: start.Cover(p.prev.Span), Items: items}, nil
}

// stripDigitSeparators removes the '_' digit-group separators the lexer
// accepts but Go's strconv does not.
func stripDigitSeparators(s string) string {
	if !strings.Contains(s, "_") {
		return s
	}
	return strings.ReplaceAll(s, "_", "")
}

// unquoteDelimited strips the opening/closing delim byte and collapses
// doubled-delimiter escapes (e.g. "" -> ") back to single characters.
func unquoteDelimited(s string, delim byte) string {
	if len(s) < 2 {
		return ""
	}
	inner := s[1 : len(s)-1]
	doubled := string(delim) + string(delim)
	return strings.ReplaceAll(inner, doubled, string(delim))
}
