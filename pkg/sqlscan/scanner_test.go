package sqlscan

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScannerBasicTokens(t *testing.T) {
	toks := All("seg.segment_id, DECIMAL(10,2);")

	kinds := make([]Kind, len(toks))
	for i, tok := range toks {
		kinds[i] = tok.Kind
	}
	assert.Equal(t, []Kind{
		IDENT, DOT, IDENT, COMMA, IDENT, LPAREN, NUMBER, COMMA, NUMBER, RPAREN, SEMI,
	}, kinds)

	assert.Equal(t, "seg", toks[0].Literal)
	assert.Equal(t, "segment_id", toks[2].Literal)
	assert.Equal(t, "10", toks[6].Literal)
}

func TestScannerSkipsComments(t *testing.T) {
	input := `-- alias.column in a line comment
a.b /* block alias.column
spanning lines */ c.d`

	toks := All(input)
	require.Len(t, toks, 6)
	assert.Equal(t, "a", toks[0].Literal)
	assert.Equal(t, "c", toks[3].Literal)
}

func TestScannerStrings(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		literal string
	}{
		{"plain", "'hello'", "hello"},
		{"escaped quote", "'it''s'", "it''s"},
		{"dotted pair inside", "'alias.column'", "alias.column"},
		{"unterminated runs to EOF", "'open", "open"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			toks := All(tt.input)
			require.Len(t, toks, 1)
			assert.Equal(t, STRING, toks[0].Kind)
			assert.Equal(t, tt.literal, toks[0].Literal)
		})
	}
}

func TestScannerPositions(t *testing.T) {
	toks := All("one\n  two.three")
	require.Len(t, toks, 4)

	assert.Equal(t, Position{Line: 1, Column: 1, Offset: 0}, toks[0].Pos)
	assert.Equal(t, 2, toks[1].Pos.Line)
	assert.Equal(t, 3, toks[1].Pos.Column)
	assert.Equal(t, 2, toks[3].Pos.Line)
	assert.Equal(t, "three", toks[3].Literal)
}

func TestScannerEmptyInput(t *testing.T) {
	s := New("")
	tok := s.Next()
	assert.Equal(t, EOF, tok.Kind)

	// Next after EOF stays EOF.
	assert.Equal(t, EOF, s.Next().Kind)
}

func TestScannerIdentifierCharset(t *testing.T) {
	toks := All("_tmp col$1 PII_flag")
	require.Len(t, toks, 3)
	assert.Equal(t, "_tmp", toks[0].Literal)
	assert.Equal(t, "col$1", toks[1].Literal)
	assert.Equal(t, "PII_flag", toks[2].Literal)
}
