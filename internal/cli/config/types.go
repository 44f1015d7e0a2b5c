// Package config provides configuration management for the mediaforge CLI.
//
// Configuration is layered: built-in defaults, then a mediaforge.yaml file,
// then MEDIAFORGE_ environment variables, then command-line flags.
package config

// TargetConfig describes the warehouse a command connects to.
type TargetConfig struct {
	Type     string `koanf:"type"`
	Path     string `koanf:"path"`
	Host     string `koanf:"host"`
	Port     int    `koanf:"port"`
	Database string `koanf:"database"`
	User     string `koanf:"user"`
	Password string `koanf:"password"`
}

// CheckConfig holds options for the schema check command.
type CheckConfig struct {
	// AllowUppercase lists column names that may legitimately appear in
	// uppercase, such as metric acronyms.
	AllowUppercase []string `koanf:"allow_uppercase"`
}

// GenerateConfig holds options for the dataset generator.
type GenerateConfig struct {
	Seed      int64 `koanf:"seed"`
	Audiences int   `koanf:"audiences"`
	Creatives int   `koanf:"creatives"`
	Campaigns int   `koanf:"campaigns"`
	Records   int   `koanf:"records"`
	Events    int   `koanf:"events"`
}

// Config holds all CLI configuration options.
type Config struct {
	SchemaFile   string         `koanf:"schema_file"`
	DataDir      string         `koanf:"data_dir"`
	OutputFormat string         `koanf:"output"`
	Verbose      bool           `koanf:"verbose"`
	Target       *TargetConfig  `koanf:"target"`
	Check        CheckConfig    `koanf:"check"`
	Generate     GenerateConfig `koanf:"generate"`
}

// Default configuration values.
const (
	DefaultSchemaFile = "sql/warehouse_setup.sql"
	DefaultDataDir    = "data"
	DefaultOutput     = "auto"
	DefaultTargetType = "duckdb"
	DefaultTargetPath = "mediaforge.duckdb"
)
