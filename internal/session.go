package internal

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// MarkSession records what a mark run did, as an append-only JSONL manifest
// inside the build directory.
type MarkSession struct {
	manifest *os.File
	stats    MarkStats
}

// MarkStats tracks counters for a mark run.
type MarkStats struct {
	Marked     int
	SaveErrors int
}

// markEvent is a single manifest line.
type markEvent struct {
	Event  string `json:"event"`
	Ts     string `json:"ts"`
	Src    string `json:"src,omitempty"`
	Dest   string `json:"dest,omitempty"`
	Width  int    `json:"width,omitempty"`
	Height int    `json:"height,omitempty"`
	Taken  string `json:"taken,omitempty"`
	Error  string `json:"error,omitempty"`

	// Session start/end fields
	TotalFiles int `json:"total_files,omitempty"`
	Marked     int `json:"marked,omitempty"`
	SaveErrors int `json:"save_errors,omitempty"`
}

// NewMarkSession opens buildDir/manifest.jsonl for append-only writes.
func NewMarkSession(buildDir string) (*MarkSession, error) {
	path := filepath.Join(buildDir, "manifest.jsonl")
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to create manifest file: %w", err)
	}
	return &MarkSession{manifest: f}, nil
}

// LogStart writes the session start event.
func (s *MarkSession) LogStart(totalFiles int) error {
	return s.writeEvent(markEvent{
		Event:      "session_start",
		Ts:         time.Now().UTC().Format(time.RFC3339),
		TotalFiles: totalFiles,
	})
}

// LogMarked logs a watermarked and saved image. taken may be the zero time
// when no capture date could be resolved.
func (s *MarkSession) LogMarked(src, dest string, width, height int, taken time.Time) error {
	s.stats.Marked++

	ev := markEvent{
		Event:  "marked",
		Ts:     time.Now().UTC().Format(time.RFC3339),
		Src:    src,
		Dest:   dest,
		Width:  width,
		Height: height,
	}
	if !taken.IsZero() {
		ev.Taken = taken.UTC().Format(time.RFC3339)
	}
	return s.writeEvent(ev)
}

// LogSaveError logs a best-effort save that failed.
func (s *MarkSession) LogSaveError(src string, err error) error {
	s.stats.SaveErrors++

	return s.writeEvent(markEvent{
		Event: "save_error",
		Ts:    time.Now().UTC().Format(time.RFC3339),
		Src:   src,
		Error: err.Error(),
	})
}

// LogEnd writes the session end event with final counters.
func (s *MarkSession) LogEnd() error {
	return s.writeEvent(markEvent{
		Event:      "session_end",
		Ts:         time.Now().UTC().Format(time.RFC3339),
		Marked:     s.stats.Marked,
		SaveErrors: s.stats.SaveErrors,
	})
}

// Stats returns the current session counters.
func (s *MarkSession) Stats() MarkStats {
	return s.stats
}

// Close closes the manifest file.
func (s *MarkSession) Close() error {
	if s.manifest != nil {
		return s.manifest.Close()
	}
	return nil
}

// writeEvent writes a manifest event as a JSON line.
func (s *MarkSession) writeEvent(event markEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	if _, err := s.manifest.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("failed to write to manifest: %w", err)
	}

	return s.manifest.Sync()
}
