package summary

import (
	"math"

	"github.com/LalaSkye/policy-lint/internal/ir"
)

// Compute aggregates a run's results into severity/posture counts and score
// statistics. Deterministic for a given result list.
func Compute(results []ir.Result) ir.Summary {
	s := ir.Summary{Statements: len(results)}
	if len(results) == 0 {
		return s
	}

	total := 0.0
	s.MinScore = results[0].Score
	s.MaxScore = results[0].Score
	for _, r := range results {
		total += r.Score
		if r.Score < s.MinScore {
			s.MinScore = r.Score
		}
		if r.Score > s.MaxScore {
			s.MaxScore = r.Score
		}
		for _, w := range r.Warnings {
			s.WarningCount++
			switch w.Severity {
			case ir.SeverityError:
				s.BySeverity.Error++
			case ir.SeverityWarning:
				s.BySeverity.Warning++
			default:
				s.BySeverity.Info++
			}
		}
		switch r.Posture {
		case ir.PostureHardInvariant:
			s.ByPosture.HardInvariant++
		case ir.PostureCostCurve:
			s.ByPosture.CostCurve++
		case ir.PostureAmbiguous:
			s.ByPosture.Ambiguous++
		case ir.PostureNonFalsifiable:
			s.ByPosture.NonFalsifiable++
		}
	}
	s.MeanScore = math.Round(total/float64(len(results))*10000) / 10000
	return s
}
