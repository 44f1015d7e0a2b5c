// Package sqlscan provides a minimal SQL scanner for schema tooling.
//
// It produces positioned tokens and strips comments and string literals so
// that downstream passes only ever see structural SQL. It is deliberately
// not a full parser: the consumers in pkg/schema work on lexical structure
// (identifiers, dots, parenthesis nesting) alone.
package sqlscan

import "fmt"

// Kind is the lexical class of a token.
type Kind int

const (
	EOF Kind = iota
	IDENT
	NUMBER
	STRING
	DOT
	COMMA
	LPAREN
	RPAREN
	SEMI
	OTHER
)

// String returns a readable name for the kind.
func (k Kind) String() string {
	switch k {
	case EOF:
		return "EOF"
	case IDENT:
		return "IDENT"
	case NUMBER:
		return "NUMBER"
	case STRING:
		return "STRING"
	case DOT:
		return "DOT"
	case COMMA:
		return "COMMA"
	case LPAREN:
		return "LPAREN"
	case RPAREN:
		return "RPAREN"
	case SEMI:
		return "SEMI"
	default:
		return "OTHER"
	}
}

// Position is a location in the scanned source.
type Position struct {
	Line   int // 1-based line number
	Column int // 1-based column number
	Offset int // 0-based byte offset
}

// IsValid reports whether the position refers to real source.
func (p Position) IsValid() bool {
	return p.Line > 0
}

// String renders the position as "line:col".
func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Token is a single lexical token with its source position.
type Token struct {
	Kind    Kind
	Literal string
	Pos     Position
}
