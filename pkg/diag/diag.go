// Package diag provides structured, non-throwing diagnostics for rule
// validation and lexical error reporting.
//
// Validation never panics and never returns a Go error for bad rule sets:
// findings are collected into a Result that callers inspect before a
// compilation run.
package diag

import (
	"fmt"
	"strings"

	"github.com/leapstack-labs/lexkit/pkg/token"
)

// Severity indicates the importance of a diagnostic.
type Severity int

// Severity levels for diagnostics.
const (
	// SeverityError indicates a finding that makes the rule set unusable.
	SeverityError Severity = iota
	// SeverityWarning indicates a finding that should be reviewed.
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

// ParseSeverity converts a string to a Severity value.
// Returns the severity and true if valid, or SeverityWarning and false if invalid.
func ParseSeverity(s string) (Severity, bool) {
	switch strings.ToLower(s) {
	case "error":
		return SeverityError, true
	case "warning":
		return SeverityWarning, true
	default:
		return SeverityWarning, false
	}
}

// Diagnostic represents a single validation or lexical finding.
type Diagnostic struct {
	Severity Severity
	Message  string
	RuleType token.Type     // rule the finding concerns, if any
	Pos      token.Position // source position, if any
}

// String renders the diagnostic as "pos: severity: message".
func (d Diagnostic) String() string {
	var b strings.Builder
	if d.Pos.IsValid() {
		b.WriteString(d.Pos.String())
		b.WriteString(": ")
	}
	b.WriteString(d.Severity.String())
	b.WriteString(": ")
	b.WriteString(d.Message)
	if d.RuleType != "" {
		fmt.Fprintf(&b, " (rule %s)", d.RuleType)
	}
	return b.String()
}

// Result is the outcome of a structural validation pass.
type Result struct {
	Valid    bool
	Errors   []Diagnostic
	Warnings []Diagnostic
}

// NewResult returns an empty, valid result.
func NewResult() Result {
	return Result{Valid: true}
}

// AddError records d as an error and marks the result invalid.
func (r *Result) AddError(d Diagnostic) {
	d.Severity = SeverityError
	r.Errors = append(r.Errors, d)
	r.Valid = false
}

// AddWarning records d as a warning.
func (r *Result) AddWarning(d Diagnostic) {
	d.Severity = SeverityWarning
	r.Warnings = append(r.Warnings, d)
}

// Merge folds other into r. The merged result is valid only if both were.
func (r *Result) Merge(other Result) {
	r.Errors = append(r.Errors, other.Errors...)
	r.Warnings = append(r.Warnings, other.Warnings...)
	r.Valid = r.Valid && other.Valid
}

// FromErrorTokens builds positioned error diagnostics from the ERROR tokens
// in a token sequence. Downstream tooling uses this to report lexical
// mismatches after a scan.
func FromErrorTokens(tokens []token.Token) []Diagnostic {
	var out []Diagnostic
	for _, t := range tokens {
		if !t.IsError() {
			continue
		}
		msg := t.ErrorMessage()
		if msg == "" {
			msg = fmt.Sprintf("unexpected input %q", t.Value)
		}
		out = append(out, Diagnostic{
			Severity: SeverityError,
			Message:  msg,
			Pos:      t.Pos,
		})
	}
	return out
}
