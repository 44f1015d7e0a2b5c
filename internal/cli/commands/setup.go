// Package commands implements the mediaforge subcommands.
package commands

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/mediastack-labs/mediaforge/internal/adapter"
	"github.com/mediastack-labs/mediaforge/internal/cli/config"
	"github.com/mediastack-labs/mediaforge/internal/cli/output"
)

// CommandContext holds common dependencies for CLI commands.
type CommandContext struct {
	Cfg      *config.Config
	Logger   *slog.Logger
	Renderer *output.Renderer
}

// NewCommandContext builds the shared dependencies for a command invocation.
func NewCommandContext(cmd *cobra.Command) *CommandContext {
	cfg := getConfig()
	return &CommandContext{
		Cfg:      cfg,
		Logger:   config.GetLogger(cmd.Context()),
		Renderer: output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), output.OutputMode(cfg.OutputFormat)),
	}
}

// getConfig returns the loaded configuration, falling back to environment
// variables when the root command's PersistentPreRunE did not run (tests).
func getConfig() *config.Config {
	if cfg := config.Current(); cfg != nil {
		return cfg
	}
	return &config.Config{
		SchemaFile:   getEnvOrDefault("MEDIAFORGE_SCHEMA_FILE", config.DefaultSchemaFile),
		DataDir:      getEnvOrDefault("MEDIAFORGE_DATA_DIR", config.DefaultDataDir),
		OutputFormat: getEnvOrDefault("MEDIAFORGE_OUTPUT", config.DefaultOutput),
		Verbose:      os.Getenv("MEDIAFORGE_VERBOSE") == "true",
		Target: &config.TargetConfig{
			Type: getEnvOrDefault("MEDIAFORGE_TARGET__TYPE", config.DefaultTargetType),
			Path: getEnvOrDefault("MEDIAFORGE_TARGET__PATH", config.DefaultTargetPath),
		},
	}
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

// openAdapter connects to the configured warehouse target. The returned
// cleanup function must be called (typically via defer).
func openAdapter(ctx context.Context, cfg *config.Config) (adapter.Adapter, func(), error) {
	acfg := cfg.Target.AdapterConfig()
	a, err := adapter.New(acfg)
	if err != nil {
		return nil, nil, err
	}
	if err := a.Connect(ctx, acfg); err != nil {
		return nil, nil, fmt.Errorf("failed to connect to %s target: %w", cfg.Target.Type, err)
	}
	cleanup := func() { _ = a.Close() }
	return a, cleanup, nil
}
