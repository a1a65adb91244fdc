package rules

import (
	"math"
	"sort"
	"strings"

	"github.com/LalaSkye/policy-lint/internal/ir"
)

// Lint evaluates a single governance statement against the rule table.
// Pure and fully deterministic: no I/O, no shared mutable state, safe to
// call from any number of goroutines.
func Lint(statement string) ir.Result {
	statement = Normalize(statement)
	stripped := strings.TrimSpace(statement)

	if stripped == "" {
		empty, _ := Get(EmptyRuleID)
		w := ir.Warning{
			RuleID:        empty.ID,
			Severity:      empty.Severity,
			Description:   empty.Description,
			MatchedTokens: []string{},
		}
		return assemble(statement, []ir.Warning{w}, 0.0, ir.PostureNonFalsifiable)
	}

	warnings := make([]ir.Warning, 0, 4)
	firedWeight := 0
	for _, r := range table {
		if r.ID == EmptyRuleID {
			continue
		}
		matches := r.Pattern.FindAllString(stripped, -1)
		if len(matches) == 0 {
			continue
		}
		warnings = append(warnings, ir.Warning{
			RuleID:        r.ID,
			Severity:      r.Severity,
			Description:   r.Description,
			MatchedTokens: tokenSet(matches),
		})
		firedWeight += r.Weight
	}
	sort.Slice(warnings, func(i, j int) bool { return warnings[i].RuleID < warnings[j].RuleID })

	score := 1.0 - float64(firedWeight)/float64(MaxWeight())
	if score < 0.0 {
		score = 0.0
	} else if score > 1.0 {
		score = 1.0
	}

	// Posture is classified on the unrounded score; rounding happens once,
	// in assemble, for the stored value.
	posture := classify(score, firedSet(warnings), stripped)
	return assemble(statement, warnings, score, posture)
}

// assemble builds the immutable result. Flags are always recomputed from the
// warning list, never maintained separately.
func assemble(statement string, warnings []ir.Warning, score float64, posture string) ir.Result {
	flags := make([]string, 0, len(warnings))
	seen := make(map[string]struct{}, len(warnings))
	for _, w := range warnings {
		if _, ok := seen[w.RuleID]; ok {
			continue
		}
		seen[w.RuleID] = struct{}{}
		flags = append(flags, w.RuleID)
	}
	sort.Strings(flags)
	return ir.Result{
		Statement: statement,
		Warnings:  warnings,
		Score:     round4(score),
		Posture:   posture,
		Flags:     flags,
	}
}

// tokenSet lower-cases, de-duplicates and sorts matched substrings.
func tokenSet(matches []string) []string {
	set := make(map[string]struct{}, len(matches))
	for _, m := range matches {
		set[strings.ToLower(m)] = struct{}{}
	}
	out := make([]string, 0, len(set))
	for t := range set {
		out = append(out, t)
	}
	sort.Strings(out)
	return out
}

func firedSet(warnings []ir.Warning) map[string]bool {
	fired := make(map[string]bool, len(warnings))
	for _, w := range warnings {
		fired[w.RuleID] = true
	}
	return fired
}

func round4(f float64) float64 {
	return math.Round(f*10000) / 10000
}
