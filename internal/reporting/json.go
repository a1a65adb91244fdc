package reporting

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/LalaSkye/policy-lint/internal/ir"
)

// WriteJSON writes the run, indented, to <outDir>/<runID>.json and returns
// the path.
func WriteJSON(runID, outDir string, run *ir.Run) (string, error) {
	b, err := json.MarshalIndent(run, "", "  ")
	if err != nil {
		return "", err
	}
	b = append(b, '\n')
	path := filepath.Join(outDir, runID+".json")
	return path, os.WriteFile(path, b, 0o644)
}
