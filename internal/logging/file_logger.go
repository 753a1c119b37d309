package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// FileLogger appends timestamped log lines to a file, creating the parent
// directory if needed. Safe for concurrent use by multiple goroutines.
//
// The line format mirrors the classic "timestamp [LEVEL] message" run log:
//
//	2026-08-30 14:02:11 [INFO] loaded 12043 rows into purchases
type FileLogger struct {
	verbose bool
	mu      sync.Mutex
	w       io.WriteCloser
}

// NewFileLogger opens (or creates) the log file at path in append mode.
// The caller owns the returned logger and must call Close when done.
func NewFileLogger(path string, verbose bool) (*FileLogger, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file %s: %w", path, err)
	}

	return &FileLogger{verbose: verbose, w: f}, nil
}

// Verbose logs detailed diagnostic information if verbose mode is enabled.
func (l *FileLogger) Verbose(format string, args ...interface{}) {
	if !l.verbose {
		return
	}
	l.write("DEBUG", format, args...)
}

// Info logs informational messages about normal operations.
func (l *FileLogger) Info(format string, args ...interface{}) {
	l.write("INFO", format, args...)
}

// Warn logs recoverable problems.
func (l *FileLogger) Warn(format string, args ...interface{}) {
	l.write("WARN", format, args...)
}

// Error logs error messages.
func (l *FileLogger) Error(format string, args ...interface{}) {
	l.write("ERROR", format, args...)
}

// Close flushes and closes the underlying file.
func (l *FileLogger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.w.Close()
}

func (l *FileLogger) write(level, format string, args ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	msg := format
	if len(args) > 0 {
		msg = fmt.Sprintf(format, args...)
	}
	fmt.Fprintf(l.w, "%s [%s] %s\n", time.Now().Format("2006-01-02 15:04:05"), level, msg)
}
