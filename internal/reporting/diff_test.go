package reporting

import (
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LalaSkye/policy-lint/internal/ir"
)

func mkRun(id string, results ...ir.Result) *ir.Run {
	return &ir.Run{ID: id, StartedAt: time.Time{}, Results: results}
}

func res(statement, posture string, score float64, flags ...string) ir.Result {
	if flags == nil {
		flags = []string{}
	}
	return ir.Result{Statement: statement, Warnings: []ir.Warning{}, Score: score, Posture: posture, Flags: flags}
}

func TestWriteDiffJSON(t *testing.T) {
	base := mkRun("base",
		res("kept the same", ir.PostureAmbiguous, 0.9),
		res("got worse", ir.PostureCostCurve, 0.8),
		res("dropped from corpus", ir.PostureAmbiguous, 1.0),
	)
	head := mkRun("head",
		res("kept the same", ir.PostureAmbiguous, 0.9),
		res("got worse", ir.PostureNonFalsifiable, 0.3, "WARN_UNIVERSAL"),
		res("brand new statement", ir.PostureHardInvariant, 1.0),
	)

	out := t.TempDir()
	path, err := WriteDiffJSON("base", "head", out, base, head)
	require.NoError(t, err)

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	var payload struct {
		Summary struct {
			New     int `json:"new"`
			Removed int `json:"removed"`
			Changed int `json:"changed"`
		} `json:"summary"`
		Changed []struct {
			Statement string   `json:"statement"`
			Changed   []string `json:"fields_changed"`
		} `json:"changed"`
	}
	require.NoError(t, json.Unmarshal(b, &payload))

	assert.Equal(t, 1, payload.Summary.New)
	assert.Equal(t, 1, payload.Summary.Removed)
	assert.Equal(t, 1, payload.Summary.Changed)
	require.Len(t, payload.Changed, 1)
	assert.Equal(t, "got worse", payload.Changed[0].Statement)
	assert.ElementsMatch(t, []string{"score", "posture", "flags"}, payload.Changed[0].Changed)
}
