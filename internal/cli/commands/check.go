package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mediastack-labs/mediaforge/internal/cli/output"
	"github.com/mediastack-labs/mediaforge/pkg/schema"
)

// CheckOptions holds options for the check command.
type CheckOptions struct {
	Files          []string
	AllowUppercase []string
	Format         string
}

// NewCheckCommand creates the check command.
func NewCheckCommand() *cobra.Command {
	opts := &CheckOptions{}
	cmd := &cobra.Command{
		Use:   "check [file...]",
		Short: "Validate column references against table declarations",
		Long: `Parse a SQL corpus and verify that every alias-qualified column
reference in semantic-view blocks matches a column declared by a
CREATE TABLE statement, with identical casing.

Findings are reported in document order without deduplication. The
command exits non-zero when any error-severity finding remains.`,
		Example: `  # Check the configured schema file
  mediaforge check

  # Check specific files
  mediaforge check sql/warehouse_setup.sql sql/views.sql

  # Permit extra uppercase column names
  mediaforge check --allow-uppercase ROI,CTR,GRP

  # Machine-readable output
  mediaforge check --format json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Files = args
			return runCheck(cmd, opts)
		},
	}

	cmd.Flags().StringSliceVar(&opts.AllowUppercase, "allow-uppercase", nil,
		"Column names allowed to appear in uppercase (overrides config)")
	cmd.Flags().StringVarP(&opts.Format, "format", "f", "", "Output format: text, markdown, json")

	return cmd
}

// findingJSON is the JSON shape of a single finding.
type findingJSON struct {
	Kind      string `json:"kind"`
	Severity  string `json:"severity"`
	Qualifier string `json:"qualifier"`
	Column    string `json:"column"`
	Table     string `json:"table,omitempty"`
	Declared  string `json:"declared,omitempty"`
	Line      int    `json:"line"`
	Col       int    `json:"col"`
	Message   string `json:"message"`
}

// checkFileResult pairs a corpus file with its validation report.
type checkFileResult struct {
	Path       string         `json:"path"`
	Tables     int            `json:"tables"`
	References int            `json:"references"`
	Findings   []findingJSON  `json:"findings"`
	report     *schema.Report `json:"-"`
}

// checkOutput is the JSON shape of a check run.
type checkOutput struct {
	Files  []checkFileResult `json:"files"`
	Passed bool              `json:"passed"`
}

func newCheckFileResult(path string, rep *schema.Report) checkFileResult {
	fr := checkFileResult{
		Path:       path,
		Tables:     len(rep.Tables),
		References: rep.References,
		Findings:   make([]findingJSON, 0, len(rep.Findings)),
		report:     rep,
	}
	for _, f := range rep.Findings {
		fr.Findings = append(fr.Findings, findingJSON{
			Kind:      f.Kind.String(),
			Severity:  f.Severity.String(),
			Qualifier: f.Qualifier,
			Column:    f.Column,
			Table:     f.Table,
			Declared:  f.Declared,
			Line:      f.Pos.Line,
			Col:       f.Pos.Column,
			Message:   f.Message(),
		})
	}
	return fr
}

func runCheck(cmd *cobra.Command, opts *CheckOptions) error {
	cmdCtx := NewCommandContext(cmd)
	cfg := cmdCtx.Cfg
	r := cmdCtx.Renderer

	if opts.Format != "" {
		r = output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), output.OutputMode(opts.Format))
	}

	files := opts.Files
	if len(files) == 0 {
		files = []string{cfg.SchemaFile}
	}

	allow := cfg.Check.AllowUppercase
	if cmd.Flags().Changed("allow-uppercase") {
		allow = opts.AllowUppercase
	}
	if allow == nil {
		allow = schema.DefaultAllowUppercase
	}

	result := checkOutput{Passed: true}
	for _, path := range files {
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read corpus %s: %w", path, err)
		}

		report := schema.Check(string(data), schema.Options{AllowUppercase: allow})
		cmdCtx.Logger.Debug("checked corpus",
			"file", path,
			"tables", len(report.Tables),
			"references", report.References,
			"findings", len(report.Findings))

		result.Files = append(result.Files, newCheckFileResult(path, report))
		if !report.Passed() {
			result.Passed = false
		}
	}

	if r.EffectiveMode() == output.ModeJSON {
		if err := r.JSON(result); err != nil {
			return err
		}
	} else {
		renderCheckResults(r, result)
	}

	if !result.Passed {
		return fmt.Errorf("schema check failed")
	}
	return nil
}

func renderCheckResults(r *output.Renderer, result checkOutput) {
	styles := r.Styles()

	for _, f := range result.Files {
		rep := f.report
		r.Println("")
		r.Println(styles.Header2.Render(f.Path))
		r.Printf("  %d tables, %d qualified references\n", len(rep.Tables), rep.References)

		if len(rep.Findings) == 0 {
			r.Println("  " + styles.Success.Render("no issues found"))
			continue
		}

		for _, finding := range rep.Findings {
			r.Printf("  %s:%d:%d  %s  %s  %s\n",
				f.Path, finding.Pos.Line, finding.Pos.Column,
				severityLabel(styles, finding.Severity),
				styles.Muted.Render(finding.Kind.String()),
				finding.Message())
		}
	}

	r.Println("")
	if result.Passed {
		r.Println(styles.Success.Render("schema check passed"))
	} else {
		r.Println(styles.Error.Render("schema check failed"))
	}
}

func severityLabel(styles *output.Styles, sev schema.Severity) string {
	switch sev {
	case schema.SeverityError:
		return styles.Error.Render("error  ")
	case schema.SeverityWarning:
		return styles.Warning.Render("warning")
	default:
		return styles.Muted.Render("unknown")
	}
}
