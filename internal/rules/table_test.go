package rules

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LalaSkye/policy-lint/internal/ir"
)

func TestTable_UniqueIDsSorted(t *testing.T) {
	list := List()
	require.NotEmpty(t, list)
	seen := map[string]bool{}
	for i, r := range list {
		assert.False(t, seen[r.ID], "duplicate rule id %s", r.ID)
		seen[r.ID] = true
		if i > 0 {
			assert.Less(t, list[i-1].ID, r.ID)
		}
	}
}

func TestTable_MaxWeightExcludesEmptyRule(t *testing.T) {
	sum := 0
	for _, r := range List() {
		if r.ID == EmptyRuleID {
			continue
		}
		sum += r.Weight
	}
	assert.Equal(t, sum*2, MaxWeight())
}

func TestTable_BuiltinWeightsAndSeverities(t *testing.T) {
	cases := map[string]struct {
		weight   int
		severity string
	}{
		"WARN_INTENT_LANGUAGE":    {3, ir.SeverityWarning},
		"WARN_MARKETING_LANGUAGE": {3, ir.SeverityWarning},
		"WARN_NON_OPERATIONAL":    {2, ir.SeverityWarning},
		"WARN_SCOPE_MISSING":      {1, ir.SeverityInfo},
		"WARN_UNIVERSAL":          {5, ir.SeverityError},
		"WARN_VAGUE_SAFETY":       {3, ir.SeverityWarning},
	}
	for id, want := range cases {
		r, ok := Get(id)
		require.True(t, ok, "rule %s must exist", id)
		assert.Equal(t, want.weight, r.Weight, "weight of %s", id)
		assert.Equal(t, want.severity, r.Severity, "severity of %s", id)
	}
}

func TestTable_EmptyRulePatternNeverMatches(t *testing.T) {
	r, ok := Get(EmptyRuleID)
	require.True(t, ok)
	for _, s := range []string{"", "always", "some text", "\x00"} {
		assert.False(t, r.Pattern.MatchString(s))
	}
}

func TestRegister_Validation(t *testing.T) {
	re := regexp.MustCompile(`(?i)\bx\b`)
	assert.Error(t, Register(Rule{ID: "", Pattern: re, Weight: 1, Severity: ir.SeverityInfo}))
	assert.Error(t, Register(Rule{ID: "WARN_UNIVERSAL", Pattern: re, Weight: 1, Severity: ir.SeverityInfo}))
	assert.Error(t, Register(Rule{ID: "WARN_X", Pattern: nil, Weight: 1, Severity: ir.SeverityInfo}))
	assert.Error(t, Register(Rule{ID: "WARN_X", Pattern: re, Weight: 0, Severity: ir.SeverityInfo}))
	assert.Error(t, Register(Rule{ID: "WARN_X", Pattern: re, Weight: 1, Severity: "critical"}))
}
