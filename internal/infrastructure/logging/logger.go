// Package logging writes timestamped diagnostic lines to a log file so that
// swallowed failures (enrichment lookups, stale responses) can be inspected
// after the terminal session ends.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

// Logger appends timestamped lines to a writer. A nil *Logger discards everything.
type Logger struct {
	mu     sync.Mutex
	w      io.Writer
	closer io.Closer
	now    func() time.Time
}

// New creates (or reuses) the log file at path. An empty path yields a nil
// Logger, which discards output.
func New(path string) (*Logger, error) {
	if path == "" {
		return nil, nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("logging: ensure log dir: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("logging: open log file: %w", err)
	}
	return &Logger{w: f, closer: f, now: time.Now}, nil
}

// NewWriter returns a Logger that writes to w. The caller owns w.
func NewWriter(w io.Writer) *Logger {
	return &Logger{w: w, now: time.Now}
}

// Close releases the file handle.
func (l *Logger) Close() error {
	if l == nil || l.closer == nil {
		return nil
	}
	return l.closer.Close()
}

// Printf writes a single timestamped line.
func (l *Logger) Printf(format string, args ...any) {
	if l == nil || l.w == nil {
		return
	}
	line := fmt.Sprintf(format, args...)
	line = strings.TrimRight(line, "\n")

	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.w, "[%s] %s\n", l.now().Format(time.RFC3339), line)
}
