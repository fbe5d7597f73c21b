package internal

import (
	"fmt"
	"os"
	"time"
)

// Logger writes timestamped lines to a per-run log file. The file is
// truncated at the start of every run.
type Logger struct {
	f *os.File
}

func NewLogger(path string) (*Logger, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	return &Logger{f: f}, nil
}

func (l *Logger) Log(format string, args ...interface{}) {
	fmt.Fprintf(l.f, time.Now().Format("2006-01-02 15:04:05")+" "+format+"\n", args...)
}

func (l *Logger) Close() error {
	return l.f.Close()
}
