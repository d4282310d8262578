package lexer

import (
	"treegen/internal/diag"
	"treegen/internal/token"
)

// scanString scans a double-quoted string literal. A delimiter doubled
// inside the literal ("") is an escaped literal quote rather than the
// closing delimiter; there is no backslash-escape syntax.
func (lx *Lexer) scanString() token.Token {
	return lx.scanDelimited('"', token.StringLit, "string")
}

// scanChar scans a single-quoted character literal using the same doubled-
// delimiter escape rule as scanString.
func (lx *Lexer) scanChar() token.Token {
	return lx.scanDelimited('\'', token.CharLit, "character")
}

func (lx *Lexer) scanDelimited(delim byte, kind token.Kind, what string) token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // opening delimiter

	for {
		if lx.cursor.EOF() {
			sp := lx.cursor.SpanFrom(start)
			lx.errLex(diag.LexIllegalChar, sp, "unterminated "+what+" literal")
			return token.Token{Kind: token.Invalid, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
		}
		b := lx.cursor.Peek()
		if b == '\n' {
			sp := lx.cursor.SpanFrom(start)
			lx.errLex(diag.LexIllegalChar, sp, "newline in "+what+" literal")
			return token.Token{Kind: token.Invalid, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
		}
		if b == delim {
			lx.cursor.Bump()
			if lx.cursor.Peek() == delim {
				// doubled delimiter: a literal delim character, keep scanning
				lx.cursor.Bump()
				continue
			}
			sp := lx.cursor.SpanFrom(start)
			return token.Token{Kind: kind, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
		}
		lx.cursor.Bump()
	}
}
