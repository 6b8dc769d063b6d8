package diag

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
)

// RenderTable writes the result's diagnostics as a text table, errors
// first, one row per finding.
func RenderTable(w io.Writer, res Result) {
	if len(res.Errors) == 0 && len(res.Warnings) == 0 {
		_, _ = fmt.Fprintln(w, "(no diagnostics)")
		return
	}

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"SEVERITY", "RULE", "POSITION", "MESSAGE"})

	for _, d := range res.Errors {
		t.AppendRow(diagnosticRow(d))
	}
	for _, d := range res.Warnings {
		t.AppendRow(diagnosticRow(d))
	}

	t.Render()
}

func diagnosticRow(d Diagnostic) table.Row {
	pos := ""
	if d.Pos.IsValid() {
		pos = d.Pos.String()
	}
	return table.Row{d.Severity.String(), string(d.RuleType), pos, d.Message}
}
