package warehouse

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mediastack-labs/mediaforge/internal/adapter"
	"github.com/mediastack-labs/mediaforge/internal/testutil"
)

func writeCSV(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0644))
}

func sqliteAdapter(t *testing.T) adapter.Adapter {
	t.Helper()
	a, err := adapter.New(adapter.Config{Type: "sqlite", Path: ":memory:"})
	require.NoError(t, err)
	require.NoError(t, a.Connect(context.Background(), adapter.Config{Type: "sqlite", Path: ":memory:"}))
	t.Cleanup(func() { _ = a.Close() })
	return a
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	writeCSV(t, dir, "audience_demographics.csv", "audience_id,age_group\nAUD_1,25-34\nAUD_2,35-44\n")
	writeCSV(t, dir, "consent_privacy.csv", "consent_id,consent_status\nCON_1,Opt-in\n")
	writeCSV(t, dir, "notes.txt", "not a csv")

	a := sqliteAdapter(t)
	loaded, err := Load(context.Background(), a, dir, testutil.NewTestLogger(t))
	require.NoError(t, err)

	// Sorted by file name, txt file skipped.
	require.Len(t, loaded, 2)
	assert.Equal(t, LoadedTable{Name: "audience_demographics", Rows: 2}, loaded[0])
	assert.Equal(t, LoadedTable{Name: "consent_privacy", Rows: 1}, loaded[1])
}

func TestLoadEmptyDir(t *testing.T) {
	a := sqliteAdapter(t)
	_, err := Load(context.Background(), a, t.TempDir(), testutil.NewTestLogger(t))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no CSV files found")
}

func TestLoadMissingDir(t *testing.T) {
	a := sqliteAdapter(t)
	_, err := Load(context.Background(), a, filepath.Join(t.TempDir(), "absent"), testutil.NewTestLogger(t))
	require.Error(t, err)
}
