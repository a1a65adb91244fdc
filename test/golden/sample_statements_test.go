package golden

import (
	"testing"

	"github.com/LalaSkye/policy-lint/internal/ir"
	"github.com/LalaSkye/policy-lint/internal/rules"
	"github.com/LalaSkye/policy-lint/internal/storage"
)

// samplePolicy is a small governance document exercising every builtin rule.
var samplePolicy = []string{
	"The model understands what users want.",
	"Our platform is industry-leading and significantly faster.",
	"We ensure safety and prevent misuse.",
	"Data is handled carefully.",
	"The system never fails and is 100% reliable.",
	"All outputs are safe, ethical and trustworthy.",
	"",
	"The API shall respond within 500ms for 99% of requests.",
}

func lintAll(t *testing.T, statements []string) []ir.Result {
	t.Helper()
	out := make([]ir.Result, 0, len(statements))
	for _, s := range statements {
		out = append(out, rules.Lint(s))
	}
	return out
}

func TestSample_EveryRuleFires(t *testing.T) {
	results := lintAll(t, samplePolicy)

	counts := map[string]int{}
	for _, r := range results {
		for _, w := range r.Warnings {
			counts[w.RuleID]++
		}
	}

	required := []string{
		"WARN_EMPTY",
		"WARN_INTENT_LANGUAGE",
		"WARN_MARKETING_LANGUAGE",
		"WARN_NON_OPERATIONAL",
		"WARN_SCOPE_MISSING",
		"WARN_UNIVERSAL",
		"WARN_VAGUE_SAFETY",
	}
	for _, id := range required {
		if counts[id] == 0 {
			t.Fatalf("expected at least 1 warning for %s; got 0; counts=%v", id, counts)
		}
	}
}

func TestSample_PostureSpread(t *testing.T) {
	results := lintAll(t, samplePolicy)

	byPosture := map[string]int{}
	for _, r := range results {
		byPosture[r.Posture]++
	}
	for _, p := range []string{ir.PostureHardInvariant, ir.PostureAmbiguous, ir.PostureNonFalsifiable} {
		if byPosture[p] == 0 {
			t.Fatalf("expected at least one %s result; got %v", p, byPosture)
		}
	}
	// The metric-anchored statement is the only clean one.
	if byPosture[ir.PostureHardInvariant] != 1 {
		t.Fatalf("expected exactly one HARD_INVARIANT; got %v", byPosture)
	}
}

func TestSample_WaiversFilterWarningsOnly(t *testing.T) {
	results := lintAll(t, samplePolicy)

	waived, dropped := rules.ApplyWaivers(results, []storage.Waiver{
		{RuleID: "WARN_SCOPE_MISSING", Reason: "accepted for this doc"},
	})
	if dropped == 0 {
		t.Fatalf("expected waiver to drop at least one warning")
	}
	for i := range waived {
		for _, w := range waived[i].Warnings {
			if w.RuleID == "WARN_SCOPE_MISSING" {
				t.Fatalf("waived rule still present in result %d", i)
			}
		}
		// Waivers are a reporting concern; scoring is untouched.
		if waived[i].Score != results[i].Score || waived[i].Posture != results[i].Posture {
			t.Fatalf("waiver changed score/posture for result %d", i)
		}
	}
}
