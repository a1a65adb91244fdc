package reporting

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/LalaSkye/policy-lint/internal/ir"
)

type diffPayload struct {
	BaseID  string        `json:"base_id"`
	HeadID  string        `json:"head_id"`
	Summary diffSummary   `json:"summary"`
	New     []diffResult  `json:"new"`
	Removed []diffResult  `json:"removed"`
	Changed []diffChanged `json:"changed"`
}

type diffSummary struct {
	NewCount     int `json:"new"`
	RemovedCount int `json:"removed"`
	ChangedCount int `json:"changed"`
}

type diffResult struct {
	Statement string   `json:"statement"`
	Score     float64  `json:"score"`
	Posture   string   `json:"posture"`
	Flags     []string `json:"flags"`
}

type diffChanged struct {
	Statement string     `json:"statement"`
	Base      diffResult `json:"base"`
	Head      diffResult `json:"head"`
	Changed   []string   `json:"fields_changed"`
}

// WriteDiffJSON compares two runs keyed by statement text and reports
// posture/score/flag drift between them.
func WriteDiffJSON(baseID, headID, outDir string, base, head *ir.Run) (string, error) {
	path := filepath.Join(outDir, "diff_"+baseID+"__"+headID+".json")
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return "", err
	}

	bm := map[string]ir.Result{}
	hm := map[string]ir.Result{}
	for _, r := range base.Results {
		bm[keyOf(r)] = r
	}
	for _, r := range head.Results {
		hm[keyOf(r)] = r
	}

	var added []diffResult
	var removed []diffResult
	var changed []diffChanged

	for k, hr := range hm {
		br, ok := bm[k]
		if !ok {
			added = append(added, asDiff(hr))
			continue
		}
		var fields []string
		if br.Score != hr.Score {
			fields = append(fields, "score")
		}
		if br.Posture != hr.Posture {
			fields = append(fields, "posture")
		}
		if strings.Join(br.Flags, ",") != strings.Join(hr.Flags, ",") {
			fields = append(fields, "flags")
		}
		if len(fields) > 0 {
			changed = append(changed, diffChanged{
				Statement: hr.Statement,
				Base:      asDiff(br),
				Head:      asDiff(hr),
				Changed:   fields,
			})
		}
	}
	for k, br := range bm {
		if _, ok := hm[k]; !ok {
			removed = append(removed, asDiff(br))
		}
	}

	// stable order
	sort.Slice(added, func(i, j int) bool { return added[i].Statement < added[j].Statement })
	sort.Slice(removed, func(i, j int) bool { return removed[i].Statement < removed[j].Statement })
	sort.Slice(changed, func(i, j int) bool { return changed[i].Statement < changed[j].Statement })

	payload := diffPayload{
		BaseID: baseID, HeadID: headID,
		Summary: diffSummary{
			NewCount:     len(added),
			RemovedCount: len(removed),
			ChangedCount: len(changed),
		},
		New:     added,
		Removed: removed,
		Changed: changed,
	}
	b, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return "", err
	}
	return path, os.WriteFile(path, b, 0o644)
}

func keyOf(r ir.Result) string {
	return strings.TrimSpace(r.Statement)
}

func asDiff(r ir.Result) diffResult {
	return diffResult{
		Statement: r.Statement,
		Score:     r.Score,
		Posture:   r.Posture,
		Flags:     r.Flags,
	}
}
