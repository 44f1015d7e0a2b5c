package adapter

// csvload.go - shared Go-side CSV ingestion for drivers without native CSV
// readers. The table is created with TEXT columns derived from the header;
// the report queries cast where they aggregate.

import (
	"context"
	"database/sql"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// insertBatchSize bounds the number of rows per multi-row INSERT so the
// statement stays under driver parameter limits.
const insertBatchSize = 500

// quoteIdent quotes an identifier with double quotes, doubling any embedded
// quote. Table and column names come from CSV headers and config, not SQL.
func quoteIdent(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}

// placeholderStyle selects the positional-parameter syntax of a driver.
type placeholderStyle int

const (
	questionPlaceholders placeholderStyle = iota // ?        (sqlite)
	dollarPlaceholders                           // $1, $2   (postgres)
)

// loadCSVWithInserts creates (or replaces) tableName with TEXT columns from
// the CSV header and inserts all rows in batches.
func loadCSVWithInserts(ctx context.Context, db *sql.DB, tableName, filePath string, style placeholderStyle) error {
	absPath, err := filepath.Abs(filePath)
	if err != nil {
		return fmt.Errorf("failed to get absolute path: %w", err)
	}

	f, err := os.Open(absPath) //nolint:gosec // path comes from the configured data dir
	if err != nil {
		return fmt.Errorf("failed to open CSV file: %w", err)
	}
	defer func() { _ = f.Close() }()

	reader := csv.NewReader(f)
	header, err := reader.Read()
	if err != nil {
		return fmt.Errorf("failed to read CSV header: %w", err)
	}

	if err := recreateTextTable(ctx, db, tableName, header); err != nil {
		return err
	}

	insertPrefix := buildInsertPrefix(tableName, header)
	batch := make([][]string, 0, insertBatchSize)
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("failed to read CSV record: %w", err)
		}
		batch = append(batch, record)
		if len(batch) == insertBatchSize {
			if err := insertBatch(ctx, db, insertPrefix, len(header), batch, style); err != nil {
				return err
			}
			batch = batch[:0]
		}
	}
	if len(batch) > 0 {
		return insertBatch(ctx, db, insertPrefix, len(header), batch, style)
	}
	return nil
}

func recreateTextTable(ctx context.Context, db *sql.DB, tableName string, columns []string) error {
	if _, err := db.ExecContext(ctx, "DROP TABLE IF EXISTS "+quoteIdent(tableName)); err != nil {
		return fmt.Errorf("failed to drop table: %w", err)
	}

	defs := make([]string, len(columns))
	for i, col := range columns {
		defs[i] = quoteIdent(col) + " TEXT"
	}
	create := fmt.Sprintf("CREATE TABLE %s (%s)", quoteIdent(tableName), strings.Join(defs, ", "))
	if _, err := db.ExecContext(ctx, create); err != nil {
		return fmt.Errorf("failed to create table: %w", err)
	}
	return nil
}

func buildInsertPrefix(tableName string, columns []string) string {
	quoted := make([]string, len(columns))
	for i, col := range columns {
		quoted[i] = quoteIdent(col)
	}
	return fmt.Sprintf("INSERT INTO %s (%s) VALUES ", quoteIdent(tableName), strings.Join(quoted, ", "))
}

// insertBatch issues one multi-row INSERT with positional placeholders.
func insertBatch(ctx context.Context, db *sql.DB, prefix string, width int, batch [][]string, style placeholderStyle) error {
	var sb strings.Builder
	sb.WriteString(prefix)
	args := make([]any, 0, len(batch)*width)
	n := 1
	for i, record := range batch {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteByte('(')
		for j := 0; j < width; j++ {
			if j > 0 {
				sb.WriteString(", ")
			}
			if style == dollarPlaceholders {
				fmt.Fprintf(&sb, "$%d", n)
			} else {
				sb.WriteByte('?')
			}
			n++
			if j < len(record) {
				args = append(args, record[j])
			} else {
				args = append(args, "")
			}
		}
		sb.WriteByte(')')
	}

	if _, err := db.ExecContext(ctx, sb.String(), args...); err != nil {
		return fmt.Errorf("failed to insert batch: %w", err)
	}
	return nil
}
