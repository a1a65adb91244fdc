package reporting

import (
	"fmt"
	"html"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/LalaSkye/policy-lint/internal/ir"
)

func WriteHTML(runID, outDir string, run *ir.Run) (string, error) {
	path := filepath.Join(outDir, runID+".html")
	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	// Head + styles
	fmt.Fprintf(f, "<!doctype html><html><head><meta charset='utf-8'><title>%s</title>", html.EscapeString(runID))
	fmt.Fprint(f, "<style>body{font-family:system-ui,Arial,sans-serif;padding:20px;line-height:1.4} table{border-collapse:collapse;margin:8px 0} td,th{border:1px solid #ddd;padding:6px} h1,h2{margin:6px 0 4px} .dim{color:#666} .mono{font-family:ui-monospace,Menlo,Consolas,monospace}</style>")
	fmt.Fprint(f, "</head><body>")

	// Title + summary
	s := run.Summary
	fmt.Fprintf(f, "<h1>policy-lint report – <span class='mono'>%s</span></h1>", html.EscapeString(runID))
	fmt.Fprintf(f, "<p>Statements: %d &nbsp; Warnings: %d &nbsp; Mean score: %.4f</p>",
		s.Statements, s.WarningCount, s.MeanScore)
	fmt.Fprintf(f, "<p class='dim'>Severity mix: %d error / %d warning / %d info</p>",
		s.BySeverity.Error, s.BySeverity.Warning, s.BySeverity.Info)

	// Posture breakdown
	fmt.Fprint(f, "<h2>Postures</h2><table><tr><th>Posture</th><th>Count</th></tr>")
	for _, row := range []struct {
		name  string
		count int
	}{
		{ir.PostureHardInvariant, s.ByPosture.HardInvariant},
		{ir.PostureCostCurve, s.ByPosture.CostCurve},
		{ir.PostureAmbiguous, s.ByPosture.Ambiguous},
		{ir.PostureNonFalsifiable, s.ByPosture.NonFalsifiable},
	} {
		fmt.Fprintf(f, "<tr><td>%s</td><td>%d</td></tr>", row.name, row.count)
	}
	fmt.Fprint(f, "</table>")

	// Lowest scoring statements (score asc, then input order)
	if len(run.Results) > 0 {
		type scored struct {
			ord int
			ir.Result
		}
		var worst []scored
		for i, r := range run.Results {
			worst = append(worst, scored{ord: i, Result: r})
		}
		sort.Slice(worst, func(i, j int) bool {
			if worst[i].Score == worst[j].Score {
				return worst[i].ord < worst[j].ord
			}
			return worst[i].Score < worst[j].Score
		})
		limit := len(worst)
		if limit > 20 {
			limit = 20
		}
		fmt.Fprint(f, "<h2>Lowest Scoring Statements</h2><table><tr><th>Score</th><th>Posture</th><th>Flags</th><th>Statement</th></tr>")
		for i := 0; i < limit; i++ {
			r := worst[i]
			fmt.Fprintf(f, "<tr><td>%.4f</td><td>%s</td><td class='mono'>%s</td><td>%s</td></tr>",
				r.Score,
				html.EscapeString(r.Posture),
				html.EscapeString(strings.Join(r.Flags, ", ")),
				html.EscapeString(r.Statement),
			)
		}
		fmt.Fprint(f, "</table>")
	}

	// All warnings
	var anyWarnings bool
	for _, r := range run.Results {
		if len(r.Warnings) > 0 {
			anyWarnings = true
			break
		}
	}
	if anyWarnings {
		fmt.Fprint(f, "<h2>All Warnings</h2><table><tr><th>Severity</th><th>Rule</th><th>Tokens</th><th>Statement</th></tr>")
		for _, r := range run.Results {
			for _, w := range r.Warnings {
				fmt.Fprintf(f, "<tr><td>%s</td><td class='mono'>%s</td><td>%s</td><td>%s</td></tr>",
					html.EscapeString(w.Severity),
					html.EscapeString(w.RuleID),
					html.EscapeString(strings.Join(w.MatchedTokens, ", ")),
					html.EscapeString(r.Statement),
				)
			}
		}
		fmt.Fprint(f, "</table>")
	} else {
		fmt.Fprint(f, "<h2>All Warnings</h2><p class='dim'>No warnings fired for this run.</p>")
	}

	fmt.Fprint(f, "</body></html>")
	return path, nil
}
