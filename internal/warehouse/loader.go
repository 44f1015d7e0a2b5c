// Package warehouse loads the demo CSVs into a local warehouse and runs the
// summary queries behind the report command.
package warehouse

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/mediastack-labs/mediaforge/internal/adapter"
)

// LoadedTable records one loaded CSV table.
type LoadedTable struct {
	Name string `json:"name"`
	Rows int64  `json:"rows"`
}

// Load loads every *.csv file in dataDir into the warehouse, one table per
// file, replacing existing tables. Files are loaded in name order so runs
// are reproducible.
func Load(ctx context.Context, a adapter.Adapter, dataDir string, logger *slog.Logger) ([]LoadedTable, error) {
	entries, err := os.ReadDir(dataDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read data directory: %w", err)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".csv") {
			continue
		}
		names = append(names, entry.Name())
	}
	sort.Strings(names)

	if len(names) == 0 {
		return nil, fmt.Errorf("no CSV files found in %s (run generate first?)", dataDir)
	}

	loaded := make([]LoadedTable, 0, len(names))
	for _, name := range names {
		tableName := strings.TrimSuffix(name, ".csv")
		csvPath := filepath.Join(dataDir, name)

		logger.Debug("loading table", "table", tableName, "path", csvPath)

		if err := a.LoadCSV(ctx, tableName, csvPath); err != nil {
			return nil, fmt.Errorf("failed to load %s: %w", name, err)
		}

		rows, err := a.TableCount(ctx, tableName)
		if err != nil {
			return nil, err
		}
		loaded = append(loaded, LoadedTable{Name: tableName, Rows: rows})
	}

	return loaded, nil
}
