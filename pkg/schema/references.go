package schema

import (
	"strings"

	"github.com/mediastack-labs/mediaforge/pkg/sqlscan"
)

// ReferenceBlock is one view definition: the section of the corpus between a
// CREATE ... VIEW and the next top-level CREATE (or EOF). Aliases bound
// inside a block are scoped to that block only.
type ReferenceBlock struct {
	Name   string // view name as written
	Pos    sqlscan.Position
	tokens []sqlscan.Token
}

// blockKeywords are semantic-view section labels. A qualified pair whose
// qualifier is one of these is structure, not a column reference.
var blockKeywords = map[string]bool{
	"TABLES":        true,
	"RELATIONSHIPS": true,
	"FACTS":         true,
	"DIMENSIONS":    true,
	"METRICS":       true,
	"COMMENT":       true,
}

// aggregateNames are function names that appear in metric expressions in the
// column position of a qualified pair, e.g. demographics.COUNT in generated
// metric shorthand. They are never column references.
var aggregateNames = map[string]bool{
	"COUNT": true,
	"SUM":   true,
	"AVG":   true,
	"MIN":   true,
	"MAX":   true,
}

// ExtractReferenceBlocks scans a SQL corpus for view definitions (plain,
// materialized, or semantic views) and returns one block per definition.
// CREATE TABLE statements are not reference blocks. A definition with no
// name is skipped.
func ExtractReferenceBlocks(corpus string) []*ReferenceBlock {
	toks := sqlscan.All(corpus)
	var blocks []*ReferenceBlock

	depth := 0
	for i := 0; i < len(toks); i++ {
		switch toks[i].Kind {
		case sqlscan.LPAREN:
			depth++
			continue
		case sqlscan.RPAREN:
			depth--
			continue
		}
		if depth != 0 || !isKeyword(toks[i], "CREATE") {
			continue
		}
		j := i + 1
		if j+1 < len(toks) && isKeyword(toks[j], "OR") && isKeyword(toks[j+1], "REPLACE") {
			j += 2
		}
		if j < len(toks) && (isKeyword(toks[j], "SEMANTIC") || isKeyword(toks[j], "MATERIALIZED")) {
			j++
		}
		if j >= len(toks) || !isKeyword(toks[j], "VIEW") {
			continue
		}
		name, _, ok := readQualifiedName(toks, j+1)
		if !ok {
			continue
		}

		end := blockEnd(toks, i+1)
		blocks = append(blocks, &ReferenceBlock{
			Name:   name,
			Pos:    toks[i].Pos,
			tokens: toks[i:end],
		})
		i = end - 1
	}

	return blocks
}

// blockEnd returns the index of the next top-level CREATE at or after start,
// or len(toks).
func blockEnd(toks []sqlscan.Token, start int) int {
	depth := 0
	for i := start; i < len(toks); i++ {
		switch {
		case toks[i].Kind == sqlscan.LPAREN:
			depth++
		case toks[i].Kind == sqlscan.RPAREN:
			depth--
		case depth <= 0 && isKeyword(toks[i], "CREATE"):
			return i
		}
	}
	return len(toks)
}

// AliasMap binds the aliases used inside the block to declared table names.
// An explicit binding is any "a AS b" pair where one side names a declared
// table: the declared side is the table, the other the alias. When both
// sides are declared tables the left side wins, matching the semantic-view
// syntax in the demo corpus. Every declared table mentioned in the block is
// additionally its own alias. Keys are case-normalized.
func (b *ReferenceBlock) AliasMap(decls *Declarations) map[string]*Table {
	aliases := make(map[string]*Table)

	for i, tok := range b.tokens {
		if tok.Kind != sqlscan.IDENT {
			continue
		}
		// Implicit self-alias for bare table names.
		if t, ok := decls.Lookup(tok.Literal); ok {
			key := strings.ToLower(tok.Literal)
			if _, bound := aliases[key]; !bound {
				aliases[key] = t
			}
		}
		if !strings.EqualFold(tok.Literal, "AS") || i == 0 || i+1 >= len(b.tokens) {
			continue
		}
		left, right := b.tokens[i-1], b.tokens[i+1]
		if left.Kind != sqlscan.IDENT || right.Kind != sqlscan.IDENT {
			continue
		}
		if t, ok := decls.Lookup(left.Literal); ok {
			aliases[strings.ToLower(right.Literal)] = t
		} else if t, ok := decls.Lookup(right.Literal); ok {
			aliases[strings.ToLower(left.Literal)] = t
		}
	}

	return aliases
}

// ColumnReferences returns every qualifier.column pair in the block, in
// document order. Pairs whose qualifier is a section label, and pairs whose
// column position holds an aggregate function name, are structural and
// skipped. Overlapping pairs are not re-matched: a.b.c yields only a.b.
func (b *ReferenceBlock) ColumnReferences() []ColumnRef {
	var refs []ColumnRef
	for i := 0; i+2 < len(b.tokens); i++ {
		q, dot, col := b.tokens[i], b.tokens[i+1], b.tokens[i+2]
		if q.Kind != sqlscan.IDENT || dot.Kind != sqlscan.DOT || col.Kind != sqlscan.IDENT {
			continue
		}
		if blockKeywords[strings.ToUpper(q.Literal)] || aggregateNames[strings.ToUpper(col.Literal)] {
			i += 2
			continue
		}
		refs = append(refs, ColumnRef{
			Qualifier: q.Literal,
			Column:    col.Literal,
			Pos:       q.Pos,
		})
		i += 2
	}
	return refs
}
