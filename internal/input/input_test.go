package input

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LalaSkye/policy-lint/internal/ir"
)

func TestReadStatements_KeepsBlankLines(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "statements.txt")
	content := "The system is safe.\n\nLatency must stay below 200ms.\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	got, err := ReadStatements(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"The system is safe.", "", "Latency must stay below 200ms."}, got)
}

func TestReadStatements_MissingFile(t *testing.T) {
	_, err := ReadStatements(filepath.Join(t.TempDir(), "nope.txt"))
	assert.Error(t, err)
}

func TestReadLines_LongLine(t *testing.T) {
	long := strings.Repeat("always ", 20000)
	got, err := ReadLines(strings.NewReader(long + "\nshort"))
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, long, got[0])
}

func TestNewRun(t *testing.T) {
	run := NewRun([]string{"The system is always safe.", ""}, "test-input")
	assert.True(t, strings.HasPrefix(run.ID, "run-"))
	assert.Equal(t, ir.Version, run.IRVersion)
	assert.Equal(t, "test-input", run.Source)
	require.Len(t, run.Results, 2)
	assert.Equal(t, ir.PostureNonFalsifiable, run.Results[1].Posture)
	assert.Equal(t, 2, run.Summary.Statements)
	assert.False(t, run.StartedAt.IsZero())
}
