package summary

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/LalaSkye/policy-lint/internal/ir"
	"github.com/LalaSkye/policy-lint/internal/rules"
)

func TestCompute_Empty(t *testing.T) {
	s := Compute(nil)
	assert.Equal(t, ir.Summary{}, s)
}

func TestCompute_Counts(t *testing.T) {
	results := []ir.Result{
		rules.Lint("The API shall respond within 500ms for 99% of requests."),
		rules.Lint("The system always produces correct output."),
		rules.Lint(""),
	}
	s := Compute(results)

	assert.Equal(t, 3, s.Statements)
	assert.Equal(t, 3, s.WarningCount) // scope + universal + empty
	assert.Equal(t, 2, s.BySeverity.Error)
	assert.Equal(t, 0, s.BySeverity.Warning)
	assert.Equal(t, 1, s.BySeverity.Info)

	assert.Equal(t, 1, s.ByPosture.HardInvariant)
	assert.Equal(t, 1, s.ByPosture.CostCurve)
	assert.Equal(t, 1, s.ByPosture.NonFalsifiable)
	assert.Equal(t, 0, s.ByPosture.Ambiguous)

	assert.Equal(t, 0.0, s.MinScore)
	assert.Equal(t, 1.0, s.MaxScore)
	assert.InDelta(t, 0.6078, s.MeanScore, 0.001) // (1 + 0.8235 + 0) / 3
}

func TestCompute_Deterministic(t *testing.T) {
	results := []ir.Result{
		rules.Lint("Data is never shared without consent."),
		rules.Lint("Our model understands your needs."),
	}
	assert.Equal(t, Compute(results), Compute(results))
}
