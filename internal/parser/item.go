package parser

import (
	"treegen/internal/ast"
	"treegen/internal/diag"
	"treegen/internal/token"
)

// parseExtern parses "extern Name;".
func (p *Parser) parseExtern() (*ast.Extern, error) {
	start := p.cur.Span
	p.advance() // 'extern'

	name, err := p.expect(token.Ident)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.Semicolon); err != nil {
		return nil, err
	}

	return &ast.Extern{
		Span:     start.Cover(p.prev.Span),
		Name:     name.Text,
		NameSpan: name.Span,
	}, nil
}

// parseVisitor parses "visitor;" or "visitor Name;".
func (p *Parser) parseVisitor() (*ast.Visitor, error) {
	start := p.cur.Span
	p.advance() // 'visitor'

	name := ""
	if p.check(token.Ident) {
		name = p.advance().Text
	}
	if _, err := p.expect(token.Semicolon); err != nil {
		return nil, err
	}

	return &ast.Visitor{Span: start.Cover(p.prev.Span), Name: name}, nil
}

// parseRoot parses "root Name;".
func (p *Parser) parseRoot() (*ast.RootDecl, error) {
	start := p.cur.Span
	p.advance() // 'root'

	name, err := p.expect(token.Ident)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.Semicolon); err != nil {
		return nil, err
	}

	return &ast.RootDecl{
		Span:     start.Cover(p.prev.Span),
		Name:     name.Text,
		NameSpan: name.Span,
	}, nil
}

// parseTarget parses "target Name { option* }".
func (p *Parser) parseTarget() (*ast.Target, error) {
	start := p.cur.Span
	p.advance() // 'target'

	name, err := p.expect(token.Ident)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.LBrace); err != nil {
		return nil, err
	}

	seen := map[string]bool{}
	var opts []*ast.OptionDecl
	for !p.check(token.RBrace) {
		opt, err := p.parseOption()
		if err != nil {
			return nil, err
		}
		if seen[opt.Key] {
			p.sink.ErrorNonFatal(diag.DuplicateOption, opt.KeySpan, "duplicate option key \""+opt.Key+"\" in target \""+name.Text+"\"")
		}
		seen[opt.Key] = true
		opts = append(opts, opt)
	}
	if _, err := p.expect(token.RBrace); err != nil {
		return nil, err
	}

	return &ast.Target{
		Span:     start.Cover(p.prev.Span),
		Name:     name.Text,
		NameSpan: name.Span,
		Options:  opts,
	}, nil
}

// parseOption parses "key : literal ;", per spec.md §4.4's
// "option = IDENT ':' expr ';'".
func (p *Parser) parseOption() (*ast.OptionDecl, error) {
	key, err := p.expect(token.Ident)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.Colon); err != nil {
		return nil, err
	}
	val, err := p.parseLiteral()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.Semicolon); err != nil {
		return nil, err
	}

	return &ast.OptionDecl{
		Span:    key.Span.Cover(p.prev.Span),
		Key:     key.Text,
		KeySpan: key.Span,
		Value:   val,
	}, nil
}
