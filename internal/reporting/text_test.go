package reporting

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LalaSkye/policy-lint/internal/ir"
)

func TestFormatResult_WithWarnings(t *testing.T) {
	r := ir.Result{
		Statement: "The system is always safe.",
		Warnings: []ir.Warning{
			{RuleID: "WARN_UNIVERSAL", Severity: ir.SeverityError, MatchedTokens: []string{"always"}},
			{RuleID: "WARN_VAGUE_SAFETY", Severity: ir.SeverityWarning, MatchedTokens: []string{"safe"}},
		},
		Score:   0.7353,
		Posture: ir.PostureNonFalsifiable,
		Flags:   []string{"WARN_UNIVERSAL", "WARN_VAGUE_SAFETY"},
	}
	out := FormatResult(r)
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 6)
	assert.Equal(t, `STATEMENT : "The system is always safe."`, lines[0])
	assert.Equal(t, "  [ERROR  ] WARN_UNIVERSAL  ->  always", lines[1])
	assert.Equal(t, "  [WARNING] WARN_VAGUE_SAFETY  ->  safe", lines[2])
	assert.Equal(t, "  POSTURE   : NON_FALSIFIABLE", lines[3])
	assert.Equal(t, "  SCORE     : 0.7353", lines[4])
	assert.Equal(t, "  FLAGS     : WARN_UNIVERSAL, WARN_VAGUE_SAFETY", lines[5])
}

func TestFormatResult_NoWarnings(t *testing.T) {
	r := ir.Result{
		Statement: "Latency must stay below 200ms.",
		Warnings:  []ir.Warning{},
		Score:     1.0,
		Posture:   ir.PostureHardInvariant,
		Flags:     []string{},
	}
	out := FormatResult(r)
	assert.Contains(t, out, "  (no warnings)")
	assert.Contains(t, out, "  SCORE     : 1.0000")
	assert.Contains(t, out, "  FLAGS     : -")
}

func TestWriteText_SeparatesResults(t *testing.T) {
	run := &ir.Run{
		Results: []ir.Result{
			{Statement: "a", Warnings: []ir.Warning{}, Score: 1, Posture: ir.PostureAmbiguous, Flags: []string{}},
			{Statement: "b", Warnings: []ir.Warning{}, Score: 1, Posture: ir.PostureAmbiguous, Flags: []string{}},
		},
		Summary: ir.Summary{Statements: 2, MeanScore: 1, MinScore: 1, MaxScore: 1},
	}
	var b strings.Builder
	require.NoError(t, WriteText(&b, run))
	out := b.String()
	assert.Equal(t, 1, strings.Count(out, "---"))
	assert.Contains(t, strings.ToUpper(out), "STATEMENTS")
}
