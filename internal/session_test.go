package internal

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarkSessionManifest(t *testing.T) {
	dir := t.TempDir()

	s, err := NewMarkSession(dir)
	require.NoError(t, err)

	taken := time.Date(2023, time.June, 10, 14, 30, 0, 0, time.UTC)
	require.NoError(t, s.LogStart(2))
	require.NoError(t, s.LogMarked("1.jpg", "build/1.jpg", 640, 480, taken))
	require.NoError(t, s.LogSaveError("2.jpg", errors.New("disk full")))
	require.NoError(t, s.LogEnd())
	require.NoError(t, s.Close())

	data, err := os.ReadFile(filepath.Join(dir, "manifest.jsonl"))
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 4)

	var start map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &start))
	assert.Equal(t, "session_start", start["event"])
	assert.EqualValues(t, 2, start["total_files"])

	var marked map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[1]), &marked))
	assert.Equal(t, "marked", marked["event"])
	assert.Equal(t, "1.jpg", marked["src"])
	assert.Equal(t, "build/1.jpg", marked["dest"])
	assert.EqualValues(t, 640, marked["width"])
	assert.EqualValues(t, 480, marked["height"])
	assert.Equal(t, "2023-06-10T14:30:00Z", marked["taken"])

	var saveErr map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[2]), &saveErr))
	assert.Equal(t, "save_error", saveErr["event"])
	assert.Equal(t, "disk full", saveErr["error"])

	var end map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[3]), &end))
	assert.Equal(t, "session_end", end["event"])
	assert.EqualValues(t, 1, end["marked"])
	assert.EqualValues(t, 1, end["save_errors"])
}

func TestMarkSessionZeroTakenOmitted(t *testing.T) {
	dir := t.TempDir()

	s, err := NewMarkSession(dir)
	require.NoError(t, err)
	require.NoError(t, s.LogMarked("1.jpg", "build/1.jpg", 10, 10, time.Time{}))
	require.NoError(t, s.Close())

	data, err := os.ReadFile(filepath.Join(dir, "manifest.jsonl"))
	require.NoError(t, err)
	assert.NotContains(t, string(data), "taken")
}

func TestMarkSessionStats(t *testing.T) {
	s, err := NewMarkSession(t.TempDir())
	require.NoError(t, err)
	defer s.Close()

	require.NoError(t, s.LogMarked("1.jpg", "build/1.jpg", 10, 10, time.Time{}))
	require.NoError(t, s.LogMarked("2.jpg", "build/2.jpg", 10, 10, time.Time{}))
	require.NoError(t, s.LogSaveError("3.jpg", errors.New("nope")))

	stats := s.Stats()
	assert.Equal(t, 2, stats.Marked)
	assert.Equal(t, 1, stats.SaveErrors)
}

func TestMarkSessionMissingBuildDir(t *testing.T) {
	_, err := NewMarkSession(filepath.Join(t.TempDir(), "missing"))
	assert.Error(t, err)
}
