package storage

import (
	"database/sql"
	"encoding/json"
	"time"

	"github.com/LalaSkye/policy-lint/internal/ir"
)

// ListRuns returns a lightweight list of runs with counts.
func (db *DB) ListRuns(limit, offset int) ([]RunRow, error) {
	const q = `
		SELECT r.id, r.started_at, r.source, r.ir_version,
		       (SELECT COUNT(1) FROM results s WHERE s.run_id = r.id) AS statements,
		       (SELECT COUNT(1) FROM warnings w WHERE w.run_id = r.id) AS warnings
		  FROM runs r
		 ORDER BY r.started_at DESC, r.id DESC
		 LIMIT ? OFFSET ?`
	rows, err := db.conn.Query(q, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []RunRow
	for rows.Next() {
		var rr RunRow
		var startedAtStr string
		if err := rows.Scan(&rr.ID, &startedAtStr, &rr.Source, &rr.IRVersion, &rr.Statements, &rr.Warnings); err != nil {
			return nil, err
		}
		if t, err := time.Parse(time.RFC3339Nano, startedAtStr); err == nil {
			rr.StartedAt = t
		} else if t2, err2 := time.Parse(time.RFC3339, startedAtStr); err2 == nil {
			rr.StartedAt = t2
		}
		out = append(out, rr)
	}
	return out, rows.Err()
}

// ListResults returns one run's results in input order, optionally filtered
// by posture, with each result's warnings filtered to minSeverity or above.
func (db *DB) ListResults(runID, posture, minSeverity string) ([]ir.Result, error) {
	warns, err := db.loadWarnings(runID, minSeverity)
	if err != nil {
		return nil, err
	}

	q := `SELECT ordinal, statement, score, posture, flags_json
	        FROM results WHERE run_id = ?`
	args := []any{runID}
	if posture != "" {
		q += ` AND posture = ?`
		args = append(args, posture)
	}
	q += ` ORDER BY ordinal`

	rows, err := db.conn.Query(q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []ir.Result
	for rows.Next() {
		var (
			ord   int
			res   ir.Result
			flags string
		)
		if err := rows.Scan(&ord, &res.Statement, &res.Score, &res.Posture, &flags); err != nil {
			return nil, err
		}
		res.Flags = []string{}
		_ = json.Unmarshal([]byte(flags), &res.Flags)
		res.Warnings = warns[ord]
		if res.Warnings == nil {
			res.Warnings = []ir.Warning{}
		}
		out = append(out, res)
	}
	return out, rows.Err()
}

// loadWarnings pulls a run's warnings and applies the severity floor via
// ir.SeverityRank, keeping the threshold semantics in one place.
func (db *DB) loadWarnings(runID, minSeverity string) (map[int][]ir.Warning, error) {
	const q = `
		SELECT ordinal, rule_id, severity, description, tokens_json
		  FROM warnings
		 WHERE run_id = ?
		 ORDER BY ordinal, rule_id`
	rows, err := db.conn.Query(q, runID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	minRank := ir.SeverityRank(minSeverity)
	out := map[int][]ir.Warning{}
	for rows.Next() {
		var (
			ord    int
			w      ir.Warning
			tokens string
		)
		if err := rows.Scan(&ord, &w.RuleID, &w.Severity, &w.Description, &tokens); err != nil {
			return nil, err
		}
		if ir.SeverityRank(w.Severity) < minRank {
			continue
		}
		w.MatchedTokens = []string{}
		_ = json.Unmarshal([]byte(tokens), &w.MatchedTokens)
		out[ord] = append(out[ord], w)
	}
	return out, rows.Err()
}

// HasRun reports whether a run id exists.
func (db *DB) HasRun(id string) (bool, error) {
	const q = `SELECT 1 FROM runs WHERE id = ? LIMIT 1`
	var one int
	err := db.conn.QueryRow(q, id).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	return err == nil, err
}
