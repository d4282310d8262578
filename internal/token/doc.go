// Package token defines the lexical token kinds produced by internal/lexer
// when scanning a tree-node spec file.
// Invariants:
//   - Token.Text is the token's exact source text (a string copy of the
//     bytes the span covers).
//   - Token.Span matches Text exactly (Start..End).
//   - Comments (// and /* */) never reach the token stream; the lexer
//     discards them while scanning.
package token
