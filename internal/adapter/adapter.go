// Package adapter provides database adapter interfaces and implementations
// for loading and querying the demo warehouse.
package adapter

import (
	"context"
	"database/sql"
)

// Config holds the configuration for connecting to a warehouse.
type Config struct {
	// Type specifies the database type (e.g., "duckdb", "sqlite", "postgres")
	Type string

	// Path is the file path for file-based databases (DuckDB, SQLite).
	// Use ":memory:" for an in-memory database.
	Path string

	// Host is the hostname for network-based databases
	Host string

	// Port is the port number for network-based databases
	Port int

	// Database is the database name
	Database string

	// Username for authentication
	Username string

	// Password for authentication
	Password string
}

// Rows wraps sql.Rows to provide a consistent interface across adapters.
type Rows struct {
	*sql.Rows
}

// Adapter is the interface every warehouse backend implements.
type Adapter interface {
	// Connect establishes a connection using the provided config.
	Connect(ctx context.Context, cfg Config) error

	// Close closes the connection and releases resources.
	Close() error

	// Exec executes a SQL statement that doesn't return rows.
	Exec(ctx context.Context, sql string) error

	// Query executes a SQL statement that returns rows.
	Query(ctx context.Context, sql string) (*Rows, error)

	// LoadCSV loads a headered CSV file into a table, replacing the table if
	// it already exists.
	LoadCSV(ctx context.Context, tableName string, filePath string) error

	// TableCount returns the number of rows in a table.
	TableCount(ctx context.Context, tableName string) (int64, error)

	// DialectName returns the SQL dialect name (e.g., "duckdb").
	DialectName() string
}
