package parser

import (
	"treegen/internal/ast"
	"treegen/internal/diag"
	"treegen/internal/source"
	"treegen/internal/token"
)

// parseNode parses "[abstract] node Name [: Base] { member* }".
func (p *Parser) parseNode() (*ast.Node, error) {
	start := p.cur.Span
	abstract := p.match(token.KwAbstract)

	if _, err := p.expect(token.KwNode); err != nil {
		return nil, err
	}
	name, err := p.expect(token.Ident)
	if err != nil {
		return nil, err
	}

	n := &ast.Node{
		Abstract: abstract,
		Name:     name.Text,
		NameSpan: name.Span,
	}

	if p.match(token.Colon) {
		base, err := p.expect(token.Ident)
		if err != nil {
			return nil, err
		}
		n.Base = base.Text
		n.BaseSpan = base.Span
	}

	if _, err := p.expect(token.LBrace); err != nil {
		return nil, err
	}

	seenFields := map[string]bool{}
	for !p.check(token.RBrace) {
		if p.check(token.LParen) {
			ctor, err := p.parseCtor()
			if err != nil {
				return nil, err
			}
			n.Ctors = append(n.Ctors, ctor)
			continue
		}

		field, err := p.parseField()
		if err != nil {
			return nil, err
		}
		if seenFields[field.Name] {
			p.sink.ErrorNonFatal(diag.DuplicateField, field.NameSpan, "duplicate field \""+field.Name+"\" on node \""+n.Name+"\"")
		}
		seenFields[field.Name] = true
		n.Fields = append(n.Fields, field)
	}

	if _, err := p.expect(token.RBrace); err != nil {
		return nil, err
	}

	n.Span = start.Cover(p.prev.Span)
	return n, nil
}

// parseField parses "[weak] name : [list] Type ;".
func (p *Parser) parseField() (*ast.Field, error) {
	weak := p.match(token.KwWeak)

	name, err := p.expect(token.Ident)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.Colon); err != nil {
		return nil, err
	}
	typ, err := p.parseTypeRef()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.Semicolon); err != nil {
		return nil, err
	}

	return &ast.Field{
		Span:     name.Span.Cover(p.prev.Span),
		Name:     name.Text,
		NameSpan: name.Span,
		Weak:     weak,
		Type:     typ,
	}, nil
}

// parseTypeRef parses "[list] TypeName", where TypeName is a primitive word
// or an identifier naming an extern or another node.
func (p *Parser) parseTypeRef() (ast.TypeRef, error) {
	start := p.cur.Span
	var listSpan source.Span
	isList := false
	if p.check(token.KwList) {
		isList = true
		listSpan = p.cur.Span
		p.advance()
	}

	nameTok, err := p.parseTypeNameToken()
	if err != nil {
		return ast.TypeRef{}, err
	}

	return ast.TypeRef{
		Span:     start.Cover(nameTok.Span),
		List:     isList,
		ListSpan: listSpan,
		Name:     nameTok.Text,
		NameSpan: nameTok.Span,
	}, nil
}

func (p *Parser) parseTypeNameToken() (token.Token, error) {
	switch p.cur.Kind {
	case token.KwBool, token.KwFloat, token.KwInt, token.KwString, token.Ident:
		return p.advance(), nil
	default:
		return token.Token{}, p.errUnexpected("a type name")
	}
}

// parseCtor parses "( arg, arg, ... ) ;".
func (p *Parser) parseCtor() (*ast.CtorDecl, error) {
	start := p.cur.Span
	p.advance() // '('

	var args []ast.CtorArg
	for !p.check(token.RParen) {
		if len(args) > 0 {
			if _, err := p.expect(token.Comma); err != nil {
				return nil, err
			}
			if p.check(token.RParen) {
				break
			}
		}
		name, err := p.expect(token.Ident)
		if err != nil {
			return nil, err
		}
		args = append(args, ast.CtorArg{Span: name.Span, Name: name.Text})
	}
	if _, err := p.expect(token.RParen); err != nil {
		return nil, err
	}
	if _, err := p.expect(token.Semicolon); err != nil {
		return nil, err
	}

	return &ast.CtorDecl{Span: start.Cover(p.prev.Span), Args: args}, nil
}
