// Package schema validates that column references in view definitions match
// the columns declared by table definitions in the same SQL corpus.
//
// The cloud warehouse the demo targets folds unquoted identifiers to upper
// case at DDL time but compares semantic-view references case-sensitively,
// so a reference that differs from its declaration only in casing fails at
// deploy time. This package catches those mismatches (plus unknown columns
// and unresolved aliases) before the SQL ever reaches the warehouse.
package schema

import (
	"fmt"

	"github.com/mediastack-labs/mediaforge/pkg/sqlscan"
)

// =============================================================================
// Severity
// =============================================================================

// Severity indicates the importance of a finding.
type Severity int

const (
	// SeverityError indicates a reference that will break the deployment.
	SeverityError Severity = iota
	// SeverityWarning indicates a reference that should be reviewed.
	SeverityWarning
)

// String returns the string representation of the severity.
func (s Severity) String() string {
	switch s {
	case SeverityError:
		return "error"
	case SeverityWarning:
		return "warning"
	default:
		return "unknown"
	}
}

// =============================================================================
// Findings
// =============================================================================

// FindingKind classifies a validation finding.
type FindingKind int

const (
	// CaseMismatch: the referenced column exists but with different casing.
	CaseMismatch FindingKind = iota
	// UnknownColumn: the referenced column does not exist under any casing.
	UnknownColumn
	// UnresolvedAlias: the reference qualifier maps to no known table.
	UnresolvedAlias
)

// String returns the identifier used for the kind in reports.
func (k FindingKind) String() string {
	switch k {
	case CaseMismatch:
		return "case-mismatch"
	case UnknownColumn:
		return "unknown-column"
	case UnresolvedAlias:
		return "unresolved-alias"
	default:
		return "unknown"
	}
}

// Finding is a single validation failure.
type Finding struct {
	Kind      FindingKind
	Severity  Severity
	Table     string // resolved table name; empty for unresolved aliases
	Qualifier string // alias or table name exactly as written
	Column    string // column name exactly as written
	Declared  string // declared casing; set for case mismatches only
	Pos       sqlscan.Position
}

// Message renders the human-readable description of the finding.
func (f Finding) Message() string {
	switch f.Kind {
	case CaseMismatch:
		return fmt.Sprintf("%s.%s should be %s.%s", f.Table, f.Column, f.Table, f.Declared)
	case UnknownColumn:
		return fmt.Sprintf("column %s.%s does not exist in table %s", f.Qualifier, f.Column, f.Table)
	case UnresolvedAlias:
		return fmt.Sprintf("alias %q in %s.%s does not resolve to any table", f.Qualifier, f.Qualifier, f.Column)
	default:
		return "unknown finding"
	}
}

// =============================================================================
// Reference entities
// =============================================================================

// ColumnRef is a qualified column reference extracted from a reference block.
type ColumnRef struct {
	Qualifier string // alias or table name as written
	Column    string // column name as written
	Pos       sqlscan.Position
}

// Report is the result of one validation run over a corpus.
type Report struct {
	Tables     []*Table  // declared tables in document order
	References int       // qualified references examined
	Findings   []Finding // document order, no deduplication
}

// Passed reports whether the run produced no error-severity findings.
func (r *Report) Passed() bool {
	for _, f := range r.Findings {
		if f.Severity == SeverityError {
			return false
		}
	}
	return true
}

// Options configures a validation run.
type Options struct {
	// AllowUppercase lists column names (matched case-insensitively) that are
	// uppercase by convention in the demo schema, e.g. ROI and CTR. A
	// reference to an allowed name is never reported as a case mismatch.
	AllowUppercase []string
}
