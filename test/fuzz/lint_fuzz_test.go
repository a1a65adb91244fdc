package fuzz

import (
	"sort"
	"testing"

	"github.com/LalaSkye/policy-lint/internal/rules"
)

// Fuzz the evaluator with arbitrary statements to ensure we never panic and
// the result invariants hold regardless of input shape.
func FuzzLintNoPanic(f *testing.F) {
	seeds := []string{
		"The system always produces correct output.",
		"The API shall respond within 500ms for 99% of requests.",
		"We deploy only ethical models.",
		"",
		"   \t\n  ",
		"“smart quotes” — and ellipsis…",
		"always never guaranteed impossible 100% zero risk",
	}
	for _, s := range seeds {
		f.Add(s)
	}
	f.Fuzz(func(t *testing.T, statement string) {
		res := rules.Lint(statement)

		if res.Score < 0 || res.Score > 1 {
			t.Fatalf("score out of range: %v", res.Score)
		}
		if res.Posture == "" {
			t.Fatal("empty posture")
		}
		if res.Warnings == nil || res.Flags == nil {
			t.Fatal("warnings/flags must be non-nil")
		}
		if len(res.Flags) != len(res.Warnings) {
			t.Fatalf("flags/warnings length mismatch: %d vs %d", len(res.Flags), len(res.Warnings))
		}
		if !sort.StringsAreSorted(res.Flags) {
			t.Fatalf("flags not sorted: %v", res.Flags)
		}
		for i, w := range res.Warnings {
			if w.RuleID != res.Flags[i] {
				t.Fatalf("flag %d does not mirror warning rule id: %q vs %q", i, res.Flags[i], w.RuleID)
			}
			if !sort.StringsAreSorted(w.MatchedTokens) {
				t.Fatalf("tokens not sorted for %s: %v", w.RuleID, w.MatchedTokens)
			}
		}

		// Same input, same output.
		again := rules.Lint(statement)
		if again.Score != res.Score || again.Posture != res.Posture {
			t.Fatalf("non-deterministic result: (%v,%s) vs (%v,%s)",
				res.Score, res.Posture, again.Score, again.Posture)
		}
	})
}
