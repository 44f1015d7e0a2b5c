package adapter

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelfRegistration(t *testing.T) {
	for _, name := range []string{"duckdb", "sqlite", "postgres"} {
		assert.True(t, IsRegistered(name), "%s adapter should be auto-registered", name)
	}
}

func TestListAdapters(t *testing.T) {
	adapters := ListAdapters()
	assert.Contains(t, adapters, "duckdb")
	assert.Contains(t, adapters, "sqlite")
	assert.Contains(t, adapters, "postgres")
}

func TestNewUnknownType(t *testing.T) {
	_, err := New(Config{Type: "oracle"})
	require.Error(t, err)

	var unknown *UnknownAdapterError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "oracle", unknown.Type)
	assert.Contains(t, unknown.Available, "duckdb")
}

func TestNewEmptyType(t *testing.T) {
	_, err := New(Config{})
	assert.Error(t, err)
}

func TestRegister(t *testing.T) {
	Register("test_adapter", func() Adapter { return nil })
	assert.True(t, IsRegistered("test_adapter"))

	factory, ok := Get("test_adapter")
	require.True(t, ok)
	require.NotNil(t, factory)
}

func TestSQLiteLoadCSVRoundTrip(t *testing.T) {
	dir := t.TempDir()
	csvPath := filepath.Join(dir, "audience_segments.csv")
	content := "segment_id,audience_id,lookalike_segment_flag\n" +
		"SEG_000001,AUD_000001,True\n" +
		"SEG_000002,AUD_000001,False\n" +
		"SEG_000003,AUD_000002,True\n"
	require.NoError(t, os.WriteFile(csvPath, []byte(content), 0o600))

	a, err := New(Config{Type: "sqlite", Path: ":memory:"})
	require.NoError(t, err)

	ctx := context.Background()
	require.NoError(t, a.Connect(ctx, Config{Type: "sqlite", Path: ":memory:"}))
	defer func() { _ = a.Close() }()

	require.NoError(t, a.LoadCSV(ctx, "audience_segments", csvPath))

	count, err := a.TableCount(ctx, "audience_segments")
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)

	// Reload replaces, not appends.
	require.NoError(t, a.LoadCSV(ctx, "audience_segments", csvPath))
	count, err = a.TableCount(ctx, "audience_segments")
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)

	rows, err := a.Query(ctx, `SELECT audience_id, COUNT(*) FROM audience_segments GROUP BY audience_id ORDER BY audience_id`)
	require.NoError(t, err)
	defer func() { _ = rows.Close() }()

	var got []string
	for rows.Next() {
		var id string
		var n int
		require.NoError(t, rows.Scan(&id, &n))
		got = append(got, id)
	}
	require.NoError(t, rows.Err())
	assert.Equal(t, []string{"AUD_000001", "AUD_000002"}, got)
}

func TestQuoteIdent(t *testing.T) {
	assert.Equal(t, `"campaign_performance"`, quoteIdent("campaign_performance"))
	assert.Equal(t, `"we""ird"`, quoteIdent(`we"ird`))
}
