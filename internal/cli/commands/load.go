package commands

import (
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/mediastack-labs/mediaforge/internal/cli/output"
	"github.com/mediastack-labs/mediaforge/internal/warehouse"
)

// NewLoadCommand creates the load command.
func NewLoadCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "load",
		Short: "Load the CSV dataset into the warehouse target",
		Long: `Load every CSV file in the data directory into the configured
warehouse target. Existing tables with the same names are replaced.`,
		Example: `  # Load into the configured target (DuckDB by default)
  mediaforge load

  # Load into SQLite
  mediaforge load --target sqlite --db demo.sqlite`,
		RunE: runLoad,
	}
}

func runLoad(cmd *cobra.Command, _ []string) error {
	cmdCtx := NewCommandContext(cmd)
	cfg := cmdCtx.Cfg
	r := cmdCtx.Renderer

	a, cleanup, err := openAdapter(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	loaded, err := warehouse.Load(cmd.Context(), a, cfg.DataDir, cmdCtx.Logger)
	if err != nil {
		return err
	}

	if r.EffectiveMode() == output.ModeJSON {
		return r.JSON(map[string]any{
			"dialect": a.DialectName(),
			"tables":  loaded,
		})
	}

	rows := make([]table.Row, 0, len(loaded))
	total := int64(0)
	for _, lt := range loaded {
		rows = append(rows, table.Row{lt.Name, lt.Rows})
		total += lt.Rows
	}
	r.Println("")
	r.Table(table.Row{"Table", "Rows"}, rows)
	r.Printf("\nLoaded %d rows into %s target\n", total, a.DialectName())
	return nil
}
