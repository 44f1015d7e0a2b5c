package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractDeclarations(t *testing.T) {
	corpus := `
CREATE OR REPLACE TABLE campaign_performance (
    performance_id VARCHAR(20) PRIMARY KEY,
    campaign_id VARCHAR(20),
    cost DECIMAL(10,2),
    ROI DECIMAL(8,2),
    CTR DECIMAL(6,4),
    FOREIGN KEY (campaign_id) REFERENCES campaigns(campaign_id)
);

CREATE TABLE audience_demographics (
    audience_id VARCHAR(20),
    education_level VARCHAR(50)
);`

	decls := ExtractDeclarations(corpus)
	require.Equal(t, 2, decls.Len())

	perf, ok := decls.Lookup("campaign_performance")
	require.True(t, ok)
	assert.Equal(t, []string{"performance_id", "campaign_id", "cost", "ROI", "CTR"}, perf.Columns)

	demo, ok := decls.Lookup("AUDIENCE_DEMOGRAPHICS")
	require.True(t, ok, "lookup should be case-insensitive")
	assert.Equal(t, []string{"audience_id", "education_level"}, demo.Columns)
}

func TestExtractDeclarationsNestedParens(t *testing.T) {
	// The comma inside DECIMAL(10,2) must not split the column list.
	decls := ExtractDeclarations(`CREATE TABLE t (a DECIMAL(10,2), b NUMERIC(8, 4), c VARCHAR(20));`)

	tbl, ok := decls.Lookup("t")
	require.True(t, ok)
	assert.Equal(t, []string{"a", "b", "c"}, tbl.Columns)
}

func TestExtractDeclarationsLastWriteWins(t *testing.T) {
	decls := ExtractDeclarations(`
CREATE TABLE t (old_col INT);
CREATE OR REPLACE TABLE t (new_col INT);`)

	require.Equal(t, 1, decls.Len())
	tbl, _ := decls.Lookup("t")
	assert.Equal(t, []string{"new_col"}, tbl.Columns)
}

func TestExtractDeclarationsSkipsConstraintClauses(t *testing.T) {
	decls := ExtractDeclarations(`CREATE TABLE t (
    id INT,
    name VARCHAR(50),
    PRIMARY KEY (id),
    UNIQUE (name),
    CONSTRAINT fk_x FOREIGN KEY (id) REFERENCES u(id)
);`)

	tbl, _ := decls.Lookup("t")
	assert.Equal(t, []string{"id", "name"}, tbl.Columns)
}

func TestExtractDeclarationsMalformed(t *testing.T) {
	tests := []struct {
		name   string
		corpus string
		tables int
	}{
		{"empty input", "", 0},
		{"no table statements", "SELECT 1;", 0},
		{"missing open paren", "CREATE TABLE t;", 0},
		{"unterminated body", "CREATE TABLE t (a INT,", 0},
		{"good before unterminated", "CREATE TABLE ok (a INT); CREATE TABLE bad (b INT,", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			decls := ExtractDeclarations(tt.corpus)
			assert.Equal(t, tt.tables, decls.Len())
		})
	}
}

func TestExtractDeclarationsSchemaQualifiedName(t *testing.T) {
	decls := ExtractDeclarations(`CREATE TABLE demo_db.public.events (event_id INT);`)

	tbl, ok := decls.Lookup("events")
	require.True(t, ok)
	assert.Equal(t, "events", tbl.Name)
}

func TestExtractReferenceBlocks(t *testing.T) {
	corpus := `
CREATE TABLE t (a INT);

CREATE OR REPLACE SEMANTIC VIEW audience_insights
  TABLES ( DEMOGRAPHICS AS t )
  DIMENSIONS ( DEMOGRAPHICS.a );

CREATE VIEW plain_view AS SELECT t.a FROM t;`

	blocks := ExtractReferenceBlocks(corpus)
	require.Len(t, blocks, 2)
	assert.Equal(t, "audience_insights", blocks[0].Name)
	assert.Equal(t, "plain_view", blocks[1].Name)
}

func TestAliasMapDirections(t *testing.T) {
	decls := ExtractDeclarations(`CREATE TABLE audience_demographics (education_level VARCHAR(50));`)

	tests := []struct {
		name   string
		corpus string
		alias  string
	}{
		{"table AS alias", `CREATE VIEW v AS SELECT 1 FROM audience_demographics AS demo`, "demo"},
		{"alias AS table", `CREATE SEMANTIC VIEW v TABLES ( DEMO AS audience_demographics )`, "demo"},
		{"bare table self-alias", `CREATE VIEW v AS SELECT audience_demographics.education_level FROM audience_demographics`, "audience_demographics"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			blocks := ExtractReferenceBlocks(tt.corpus)
			require.Len(t, blocks, 1)

			aliases := blocks[0].AliasMap(decls)
			tbl, ok := aliases[tt.alias]
			require.True(t, ok, "alias %q should be bound", tt.alias)
			assert.Equal(t, "audience_demographics", tbl.Name)
		})
	}
}

func TestColumnReferences(t *testing.T) {
	corpus := `CREATE SEMANTIC VIEW v
  TABLES ( demo AS audience_demographics )
  DIMENSIONS ( demo.age_group, demo.state )
  METRICS ( total AS demo.COUNT )
  COMMENT.note ( 'demo.inside_string' )`

	blocks := ExtractReferenceBlocks(corpus)
	require.Len(t, blocks, 1)

	refs := blocks[0].ColumnReferences()
	require.Len(t, refs, 2)
	assert.Equal(t, "age_group", refs[0].Column)
	assert.Equal(t, "state", refs[1].Column)
	assert.Less(t, refs[0].Pos.Offset, refs[1].Pos.Offset, "document order preserved")
}
