package golden

import (
	"bytes"
	"encoding/json"
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/LalaSkye/policy-lint/internal/input"
	"github.com/LalaSkye/policy-lint/internal/ir"
)

var update = flag.Bool("update", false, "update golden snapshot")

const goldenFile = "expected.json"

var sampleStatements = []string{
	"The API shall respond within 500ms for 99% of requests.",
	"The system always produces correct output.",
	"We deploy only ethical models.",
	"",
}

func TestGolden_BatchSnapshot(t *testing.T) {
	run := input.NewRun(sampleStatements, "golden")

	// Normalize volatile fields before snapshot
	norm := normalize(run)

	got, err := json.MarshalIndent(norm, "", "  ")
	if err != nil {
		t.Fatalf("marshal got: %v", err)
	}

	if *update {
		if err := os.WriteFile(goldenFile, got, 0o644); err != nil {
			t.Fatalf("write golden: %v", err)
		}
		t.Logf("updated %s", goldenFile)
		return
	}

	want, err := os.ReadFile(goldenFile)
	if err != nil {
		t.Fatalf("read golden (%s): %v\nRun with: go test ./test/golden -run TestGolden_BatchSnapshot -args -update", goldenFile, err)
	}

	if !bytes.Equal(bytes.TrimSpace(got), bytes.TrimSpace(want)) {
		tmp := filepath.Join(t.TempDir(), "got.json")
		_ = os.WriteFile(tmp, got, 0o644)
		t.Fatalf("golden mismatch.\n  golden: %s\n  actual: %s\nTip: update with\n  go test ./test/golden -run TestGolden_BatchSnapshot -count=1 -args -update", goldenFile, tmp)
	}
}

type runLite struct {
	ID        string      `json:"id"`
	Source    string      `json:"source"`
	IRVersion string      `json:"ir_version"`
	Results   []ir.Result `json:"results"`
	Summary   ir.Summary  `json:"summary"`
}

// normalize strips volatile fields (run id, timestamp) so the snapshot is
// stable across invocations.
func normalize(run ir.Run) runLite {
	return runLite{
		ID:        "run-golden",
		Source:    run.Source,
		IRVersion: run.IRVersion,
		Results:   run.Results,
		Summary:   run.Summary,
	}
}
