package schema

import "strings"

// DefaultAllowUppercase lists the columns the demo schema deliberately names
// in metric-style upper case. Referenced spellings matching these are never
// case mismatches.
var DefaultAllowUppercase = []string{"ROI", "CTR", "PII_flag"}

// Check runs the full validation pass over a SQL corpus: extract table
// declarations, extract reference blocks, resolve aliases per block, and
// compare every qualified reference against the declared columns.
//
// Check never fails: malformed input degrades to missing declarations or
// references and a partial finding list. The tool is advisory; a hard error
// here would block a demo workflow over a cosmetic parsing issue.
func Check(corpus string, opts Options) *Report {
	decls := ExtractDeclarations(corpus)
	blocks := ExtractReferenceBlocks(corpus)

	allowed := make(map[string]bool, len(opts.AllowUppercase))
	for _, name := range opts.AllowUppercase {
		allowed[strings.ToLower(name)] = true
	}

	report := &Report{Tables: decls.Tables()}

	for _, block := range blocks {
		aliases := block.AliasMap(decls)
		for _, ref := range block.ColumnReferences() {
			report.References++

			table, ok := aliases[strings.ToLower(ref.Qualifier)]
			if !ok {
				// Fall back to a direct table name that was never mentioned
				// bare inside this block.
				if table, ok = decls.Lookup(ref.Qualifier); !ok {
					report.Findings = append(report.Findings, Finding{
						Kind:      UnresolvedAlias,
						Severity:  SeverityWarning,
						Qualifier: ref.Qualifier,
						Column:    ref.Column,
						Pos:       ref.Pos,
					})
					continue
				}
			}

			if table.HasColumn(ref.Column) {
				continue
			}

			declared, found := table.FindColumnFold(ref.Column)
			switch {
			case found && allowed[strings.ToLower(ref.Column)]:
				// Uppercase-by-convention column; sanctioned spelling.
			case found:
				report.Findings = append(report.Findings, Finding{
					Kind:      CaseMismatch,
					Severity:  SeverityError,
					Table:     table.Name,
					Qualifier: ref.Qualifier,
					Column:    ref.Column,
					Declared:  declared,
					Pos:       ref.Pos,
				})
			default:
				// Distinct from a mismatch: the column does not exist under
				// any casing, and must not be "fixed" into a case correction.
				report.Findings = append(report.Findings, Finding{
					Kind:      UnknownColumn,
					Severity:  SeverityError,
					Table:     table.Name,
					Qualifier: ref.Qualifier,
					Column:    ref.Column,
					Pos:       ref.Pos,
				})
			}
		}
	}

	return report
}
