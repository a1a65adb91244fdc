package input

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/LalaSkye/policy-lint/internal/ir"
	"github.com/LalaSkye/policy-lint/internal/rules"
	"github.com/LalaSkye/policy-lint/internal/summary"
)

// Lines longer than the bufio default are legal input; statements can be
// arbitrarily long.
const maxLineBytes = 4 * 1024 * 1024

// ReadStatements loads line-delimited statements from a file. Blank lines
// are kept: an empty statement is a defined lint outcome, not a skip.
func ReadStatements(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("read statements: %w", err)
	}
	defer f.Close()
	return ReadLines(f)
}

// ReadLines collects statements from a reader, one per line.
func ReadLines(r io.Reader) ([]string, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	var out []string
	for sc.Scan() {
		out = append(out, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read statements: %w", err)
	}
	return out, nil
}

// NewRun lints a batch of statements into a run ready for persistence and
// reporting.
func NewRun(statements []string, source string) ir.Run {
	run := ir.Run{
		ID:        "run-" + uuid.NewString(),
		StartedAt: time.Now().UTC(),
		Source:    filepath.Clean(source),
		IRVersion: ir.Version,
		Results:   make([]ir.Result, 0, len(statements)),
	}
	for _, s := range statements {
		run.Results = append(run.Results, rules.Lint(s))
	}
	run.Summary = summary.Compute(run.Results)
	return run
}
