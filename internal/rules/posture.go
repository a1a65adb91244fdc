package rules

import (
	"regexp"

	"github.com/LalaSkye/policy-lint/internal/ir"
)

// Auxiliary lexical signals. They never add warnings and never affect the
// score; they steer posture only.
var (
	reAnchor = regexp.MustCompile(`(?i)\b(must|shall)\b`)
	reMetric = regexp.MustCompile(`(?i)\b\d+(\.\d+)?\s*(%|ms|seconds?|hours?|days?|tokens?|calls?)\b`)
	reHedge  = regexp.MustCompile(`(?i)\b(aims?|seeks?|tries?|try|should|intend)\b`)
)

// classify assigns a posture via an ordered decision table, first match wins:
//
//  1. NON_FALSIFIABLE  score < 0.40, or WARN_UNIVERSAL + WARN_VAGUE_SAFETY
//     both fired (an absolute claim plus a vague quality adjective is
//     unfalsifiable regardless of score)
//  2. AMBIGUOUS        score < 0.60
//  3. COST_CURVE       score < 0.85, or a hedge word is present
//  4. HARD_INVARIANT   no WARN_UNIVERSAL, and an obligation anchor or a
//     quantified metric is present
//  5. AMBIGUOUS        fallback
func classify(score float64, fired map[string]bool, stripped string) string {
	hardCombo := fired["WARN_UNIVERSAL"] && fired["WARN_VAGUE_SAFETY"]
	hasAnchor := reAnchor.MatchString(stripped)
	hasMetric := reMetric.MatchString(stripped)
	hasHedge := reHedge.MatchString(stripped)

	decisions := []struct {
		when    bool
		posture string
	}{
		{score < 0.40 || hardCombo, ir.PostureNonFalsifiable},
		{score < 0.60, ir.PostureAmbiguous},
		{score < 0.85 || hasHedge, ir.PostureCostCurve},
		{!fired["WARN_UNIVERSAL"] && (hasAnchor || hasMetric), ir.PostureHardInvariant},
		{true, ir.PostureAmbiguous},
	}
	for _, d := range decisions {
		if d.when {
			return d.posture
		}
	}
	return ir.PostureAmbiguous // unreachable
}
