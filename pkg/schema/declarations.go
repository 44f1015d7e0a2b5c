package schema

import (
	"strings"

	"github.com/mediastack-labs/mediaforge/pkg/sqlscan"
)

// Table holds the declared columns of one table, in declaration order and
// with their original casing.
type Table struct {
	Name    string // as written in the first declaration
	Columns []string
}

// HasColumn reports whether the table declares the column with exactly this
// casing.
func (t *Table) HasColumn(name string) bool {
	for _, c := range t.Columns {
		if c == name {
			return true
		}
	}
	return false
}

// FindColumnFold returns the declared casing of the first column that matches
// name case-insensitively.
func (t *Table) FindColumnFold(name string) (string, bool) {
	for _, c := range t.Columns {
		if strings.EqualFold(c, name) {
			return c, true
		}
	}
	return "", false
}

// Declarations maps case-normalized table names to their declared columns.
type Declarations struct {
	tables map[string]*Table
	order  []string // normalized names in first-seen order
}

// NewDeclarations returns an empty declaration set.
func NewDeclarations() *Declarations {
	return &Declarations{tables: make(map[string]*Table)}
}

// Lookup returns the table for a name or alias target, matched
// case-insensitively.
func (d *Declarations) Lookup(name string) (*Table, bool) {
	t, ok := d.tables[strings.ToLower(name)]
	return t, ok
}

// Len returns the number of declared tables.
func (d *Declarations) Len() int {
	return len(d.order)
}

// Tables returns the declared tables in document order.
func (d *Declarations) Tables() []*Table {
	out := make([]*Table, 0, len(d.order))
	for _, name := range d.order {
		out = append(out, d.tables[name])
	}
	return out
}

// add records a table definition. A repeated definition replaces the earlier
// one, mirroring CREATE OR REPLACE semantics, but keeps its original slot in
// the document order.
func (d *Declarations) add(t *Table) {
	key := strings.ToLower(t.Name)
	if _, seen := d.tables[key]; !seen {
		d.order = append(d.order, key)
	}
	d.tables[key] = t
}

// tableClauseKeywords are table-level constraint clauses that appear where a
// column definition could, and must not be read as column names.
var tableClauseKeywords = map[string]bool{
	"FOREIGN":    true,
	"PRIMARY":    true,
	"CONSTRAINT": true,
	"UNIQUE":     true,
	"KEY":        true,
	"CHECK":      true,
}

// ExtractDeclarations scans a SQL corpus for CREATE [OR REPLACE] TABLE blocks
// and returns the declared columns per table. The parenthesized body is split
// on commas at nesting depth one only, so type qualifiers like DECIMAL(10,2)
// never split a column definition. Malformed blocks (no opening paren, or no
// closing paren before EOF) are skipped.
func ExtractDeclarations(corpus string) *Declarations {
	toks := sqlscan.All(corpus)
	decls := NewDeclarations()

	for i := 0; i < len(toks); i++ {
		if !isKeyword(toks[i], "CREATE") {
			continue
		}
		j := i + 1
		if j+1 < len(toks) && isKeyword(toks[j], "OR") && isKeyword(toks[j+1], "REPLACE") {
			j += 2
		}
		if j >= len(toks) || !isKeyword(toks[j], "TABLE") {
			continue
		}
		j++
		if j+2 < len(toks) && isKeyword(toks[j], "IF") && isKeyword(toks[j+1], "NOT") && isKeyword(toks[j+2], "EXISTS") {
			j += 3
		}
		name, j, ok := readQualifiedName(toks, j)
		if !ok {
			continue
		}
		if j >= len(toks) || toks[j].Kind != sqlscan.LPAREN {
			continue
		}
		cols, end, closed := readColumnList(toks, j)
		if !closed {
			// Unterminated definition: skip, nothing more to scan.
			break
		}
		decls.add(&Table{Name: name, Columns: cols})
		i = end
	}

	return decls
}

// readQualifiedName reads a possibly schema-qualified identifier starting at
// i and returns its last segment.
func readQualifiedName(toks []sqlscan.Token, i int) (string, int, bool) {
	if i >= len(toks) || toks[i].Kind != sqlscan.IDENT {
		return "", i, false
	}
	name := toks[i].Literal
	i++
	for i+1 < len(toks) && toks[i].Kind == sqlscan.DOT && toks[i+1].Kind == sqlscan.IDENT {
		name = toks[i+1].Literal
		i += 2
	}
	return name, i, true
}

// readColumnList reads a parenthesized column definition list starting at the
// LPAREN at index open. It returns the declared column names, the index of
// the closing RPAREN, and whether the list was closed before EOF.
func readColumnList(toks []sqlscan.Token, open int) (cols []string, end int, closed bool) {
	depth := 0
	entryStart := true
	for i := open; i < len(toks); i++ {
		switch toks[i].Kind {
		case sqlscan.LPAREN:
			depth++
			if depth == 1 {
				entryStart = true
			}
		case sqlscan.RPAREN:
			depth--
			if depth == 0 {
				return cols, i, true
			}
		case sqlscan.COMMA:
			if depth == 1 {
				entryStart = true
			}
		case sqlscan.IDENT:
			if depth == 1 && entryStart {
				entryStart = false
				if !tableClauseKeywords[strings.ToUpper(toks[i].Literal)] {
					cols = append(cols, toks[i].Literal)
				}
			}
		default:
			if depth == 1 {
				entryStart = false
			}
		}
	}
	return cols, len(toks), false
}

// isKeyword reports whether the token is an identifier equal to the keyword,
// ignoring case.
func isKeyword(t sqlscan.Token, kw string) bool {
	return t.Kind == sqlscan.IDENT && strings.EqualFold(t.Literal, kw)
}
