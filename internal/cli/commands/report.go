package commands

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/mediastack-labs/mediaforge/internal/cli/output"
	"github.com/mediastack-labs/mediaforge/internal/dataset"
	"github.com/mediastack-labs/mediaforge/internal/warehouse"
)

// NewReportCommand creates the report command.
func NewReportCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "report",
		Short: "Summarize the loaded warehouse",
		Long: `Run summary queries over a loaded warehouse: row counts per table,
relationship coverage, audience and consent distributions, and
per-channel campaign performance.`,
		Example: `  # Summarize the configured target
  mediaforge report

  # Machine-readable summary
  mediaforge report -o json`,
		RunE: runReport,
	}
}

func runReport(cmd *cobra.Command, _ []string) error {
	cmdCtx := NewCommandContext(cmd)
	cfg := cmdCtx.Cfg
	r := cmdCtx.Renderer

	a, cleanup, err := openAdapter(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	summary, err := warehouse.Report(cmd.Context(), a, dataset.TableNames)
	if err != nil {
		return err
	}
	cmdCtx.Logger.Debug("report complete", "run_id", summary.RunID, "dialect", summary.Dialect)

	if r.EffectiveMode() == output.ModeJSON {
		return r.JSON(summary)
	}

	renderSummary(r, summary)
	return nil
}

func renderSummary(r *output.Renderer, s *warehouse.Summary) {
	styles := r.Styles()

	r.Println("")
	r.Println(styles.Header1.Render("Warehouse Summary"))
	r.Println(styles.Muted.Render(fmt.Sprintf("run %s on %s", s.RunID, s.Dialect)))

	r.Println("")
	r.Println(styles.Header2.Render("Tables"))
	rows := make([]table.Row, 0, len(s.Tables))
	for _, t := range s.Tables {
		rows = append(rows, table.Row{t.Name, t.Rows})
	}
	r.Table(table.Row{"Table", "Rows"}, rows)

	r.Println("")
	r.Println(styles.Header2.Render("Relationships"))
	for _, stat := range s.Relationships {
		r.Printf("  %-28s %.2f\n", stat.Name, stat.Value)
	}

	r.Println("")
	r.Println(styles.Header2.Render("Age Groups"))
	renderDistribution(r, s.AgeGroups)

	r.Println("")
	r.Println(styles.Header2.Render("Consent Status"))
	renderDistribution(r, s.Consent)

	r.Println("")
	r.Println(styles.Header2.Render("Channel Performance"))
	chRows := make([]table.Row, 0, len(s.Channels))
	for _, c := range s.Channels {
		chRows = append(chRows, table.Row{
			c.Channel, c.Impressions, c.Clicks, c.Conversions,
			fmt.Sprintf("%.2f", c.Cost),
			fmt.Sprintf("%.4f", c.AvgCTR),
			fmt.Sprintf("%.2f", c.AvgROI),
		})
	}
	r.Table(table.Row{"Channel", "Impressions", "Clicks", "Conversions", "Cost", "Avg CTR", "Avg ROI"}, chRows)
	r.Println("")
}

func renderDistribution(r *output.Renderer, dist []warehouse.Distribution) {
	for _, d := range dist {
		r.Printf("  %-24s %d\n", d.Value, d.Count)
	}
}
