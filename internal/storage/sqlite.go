package storage

import (
	"database/sql"
	"encoding/json"
	"time"

	_ "modernc.org/sqlite" // CGO-free SQLite driver

	"github.com/LalaSkye/policy-lint/internal/ir"
)

// DB is the concrete storage backed by SQLite.
type DB struct {
	conn *sql.DB
}

// OpenSQLite opens (and creates if missing) a SQLite DB at path.
func OpenSQLite(path string) (*DB, error) {
	// Pragmas via DSN keep it portable with the modernc driver.
	dsn := "file:" + path + "?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)&_pragma=foreign_keys(ON)"
	c, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	return &DB{conn: c}, nil
}

func (db *DB) Close() error { return db.conn.Close() }

// CreateSchema ensures all tables exist.
func (db *DB) CreateSchema() error {
	_, err := db.conn.Exec(`
CREATE TABLE IF NOT EXISTS runs (
  id         TEXT PRIMARY KEY,
  started_at TEXT,          -- RFC3339
  source     TEXT,
  ir_version TEXT,
  run_json   TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS results (
  run_id     TEXT NOT NULL,
  ordinal    INTEGER NOT NULL,  -- input order within the run
  statement  TEXT,
  score      REAL,
  posture    TEXT,
  flags_json TEXT,
  PRIMARY KEY (run_id, ordinal),
  FOREIGN KEY(run_id) REFERENCES runs(id) ON DELETE CASCADE
);

CREATE TABLE IF NOT EXISTS warnings (
  run_id      TEXT NOT NULL,
  ordinal     INTEGER NOT NULL,
  rule_id     TEXT NOT NULL,
  severity    TEXT,
  description TEXT,
  tokens_json TEXT,
  PRIMARY KEY (run_id, ordinal, rule_id),
  FOREIGN KEY(run_id) REFERENCES runs(id) ON DELETE CASCADE
);

CREATE INDEX IF NOT EXISTS idx_results_run ON results(run_id);
CREATE INDEX IF NOT EXISTS idx_results_posture ON results(posture);
CREATE INDEX IF NOT EXISTS idx_warnings_rule ON warnings(rule_id);

CREATE TABLE IF NOT EXISTS users (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  username TEXT UNIQUE NOT NULL,
  pass_hash TEXT NOT NULL,
  role TEXT NOT NULL DEFAULT 'viewer',
  created_at TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS sessions (
  token TEXT PRIMARY KEY,
  user_id INTEGER NOT NULL,
  expires_at TEXT NOT NULL,
  created_at TEXT NOT NULL,
  FOREIGN KEY(user_id) REFERENCES users(id) ON DELETE CASCADE
);

CREATE TABLE IF NOT EXISTS audit (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  ts TEXT NOT NULL,
  username TEXT,
  action TEXT NOT NULL,
  resource TEXT,
  meta_json TEXT
);

CREATE TABLE IF NOT EXISTS waivers (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  rule_id     TEXT NOT NULL,
  pattern_sub TEXT,              -- optional substring to match the statement
  reason      TEXT NOT NULL,
  expires_at  TEXT NOT NULL,     -- RFC3339Nano
  created_by  TEXT NOT NULL,
  created_at  TEXT NOT NULL,
  revoked_at  TEXT               -- NULL = active
);
`)
	return err
}

// SaveRun upserts a run JSON and (re)writes its results and warnings.
func (db *DB) SaveRun(run *ir.Run) error {
	b, err := json.Marshal(run)
	if err != nil {
		return err
	}
	ts := run.StartedAt.UTC().Format(time.RFC3339Nano)

	tx, err := db.conn.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.Exec(
		`INSERT INTO runs (id, started_at, source, ir_version, run_json)
         VALUES (?, ?, ?, ?, ?)
         ON CONFLICT(id) DO UPDATE SET started_at=excluded.started_at, source=excluded.source, ir_version=excluded.ir_version, run_json=excluded.run_json`,
		run.ID, ts, run.Source, run.IRVersion, string(b),
	); err != nil {
		return err
	}

	if _, err := tx.Exec(`DELETE FROM results WHERE run_id = ?`, run.ID); err != nil {
		return err
	}
	if _, err := tx.Exec(`DELETE FROM warnings WHERE run_id = ?`, run.ID); err != nil {
		return err
	}

	insRes, err := tx.Prepare(`
		INSERT INTO results (run_id, ordinal, statement, score, posture, flags_json)
		VALUES (?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer insRes.Close()
	insWarn, err := tx.Prepare(`
		INSERT INTO warnings (run_id, ordinal, rule_id, severity, description, tokens_json)
		VALUES (?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer insWarn.Close()

	for i, r := range run.Results {
		fb, _ := json.Marshal(r.Flags)
		if _, err := insRes.Exec(run.ID, i, r.Statement, r.Score, r.Posture, string(fb)); err != nil {
			return err
		}
		for _, w := range r.Warnings {
			tb, _ := json.Marshal(w.MatchedTokens)
			if _, err := insWarn.Exec(run.ID, i, w.RuleID, w.Severity, w.Description, string(tb)); err != nil {
				return err
			}
		}
	}

	return tx.Commit()
}

// LoadRun returns the full run (from stored JSON).
func (db *DB) LoadRun(id string) (ir.Run, error) {
	var s string
	row := db.conn.QueryRow(`SELECT run_json FROM runs WHERE id = ?`, id)
	if err := row.Scan(&s); err != nil {
		return ir.Run{}, err
	}
	var run ir.Run
	if err := json.Unmarshal([]byte(s), &run); err != nil {
		return ir.Run{}, err
	}
	return run, nil
}

// LoadLatestRun returns the most recently started run.
func (db *DB) LoadLatestRun() (ir.Run, error) {
	var id string
	row := db.conn.QueryRow(`SELECT id FROM runs ORDER BY started_at DESC, id DESC LIMIT 1`)
	if err := row.Scan(&id); err != nil {
		return ir.Run{}, err
	}
	return db.LoadRun(id)
}
