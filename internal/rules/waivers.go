package rules

import (
	"sort"
	"strings"

	"github.com/LalaSkye/policy-lint/internal/ir"
	"github.com/LalaSkye/policy-lint/internal/storage"
)

// ApplyWaivers drops warnings matching an active waiver from each result.
// This is a reporting-layer filter: score and posture keep the values the
// evaluator produced, while flags are recomputed from the surviving warnings
// so the flags/warnings invariant holds. Returns the filtered results and
// the number of warnings waived.
func ApplyWaivers(in []ir.Result, waivers []storage.Waiver) ([]ir.Result, int) {
	if len(waivers) == 0 || len(in) == 0 {
		return in, 0
	}
	out := make([]ir.Result, 0, len(in))
	waived := 0
	for _, res := range in {
		kept := make([]ir.Warning, 0, len(res.Warnings))
	nextWarning:
		for _, w := range res.Warnings {
			for _, wv := range waivers {
				if !strings.EqualFold(strings.TrimSpace(w.RuleID), strings.TrimSpace(wv.RuleID)) {
					continue
				}
				if wv.PatternSub != "" &&
					!strings.Contains(strings.ToLower(res.Statement), strings.ToLower(wv.PatternSub)) {
					continue
				}
				waived++
				continue nextWarning
			}
			kept = append(kept, w)
		}
		flags := make([]string, 0, len(kept))
		for _, w := range kept {
			flags = append(flags, w.RuleID)
		}
		sort.Strings(flags)
		res.Warnings = kept
		res.Flags = flags
		out = append(out, res)
	}
	return out, waived
}
