package reporting

import (
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/LalaSkye/policy-lint/internal/ir"
)

// FormatResult renders one result in the line-oriented form the CLI prints:
// the statement, each warning's severity/rule/tokens, then posture, score
// and flags.
func FormatResult(r ir.Result) string {
	var b strings.Builder
	fmt.Fprintf(&b, "STATEMENT : %q\n", r.Statement)
	for _, w := range r.Warnings {
		tokens := "-"
		if len(w.MatchedTokens) > 0 {
			tokens = strings.Join(w.MatchedTokens, ", ")
		}
		fmt.Fprintf(&b, "  [%-7s] %s  ->  %s\n", strings.ToUpper(w.Severity), w.RuleID, tokens)
	}
	if len(r.Warnings) == 0 {
		b.WriteString("  (no warnings)\n")
	}
	fmt.Fprintf(&b, "  POSTURE   : %s\n", r.Posture)
	fmt.Fprintf(&b, "  SCORE     : %.4f\n", r.Score)
	flags := "-"
	if len(r.Flags) > 0 {
		flags = strings.Join(r.Flags, ", ")
	}
	fmt.Fprintf(&b, "  FLAGS     : %s", flags)
	return b.String()
}

// WriteText renders every result followed by a run summary table.
func WriteText(w io.Writer, run *ir.Run) error {
	for i, r := range run.Results {
		if i > 0 {
			if _, err := fmt.Fprintln(w, "---"); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w, FormatResult(r)); err != nil {
			return err
		}
	}
	if len(run.Results) > 1 {
		fmt.Fprintln(w)
		writeSummaryTable(w, run.Summary)
	}
	return nil
}

func writeSummaryTable(w io.Writer, s ir.Summary) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Statements", "Warnings", "Mean score", "Hard invariant", "Cost curve", "Ambiguous", "Non-falsifiable"})
	t.AppendRow(table.Row{
		s.Statements,
		s.WarningCount,
		fmt.Sprintf("%.4f", s.MeanScore),
		s.ByPosture.HardInvariant,
		s.ByPosture.CostCurve,
		s.ByPosture.Ambiguous,
		s.ByPosture.NonFalsifiable,
	})
	t.Render()
}
