package logging_test

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/niteshchoudhary12445/Inventory-Management-and-Analysis-System/internal/logging"
)

// recordingLogger captures messages for assertions.
type recordingLogger struct {
	verbose, info, warn, errors []string
}

func (l *recordingLogger) Verbose(format string, args ...interface{}) {
	l.verbose = append(l.verbose, fmt.Sprintf(format, args...))
}
func (l *recordingLogger) Info(format string, args ...interface{}) {
	l.info = append(l.info, fmt.Sprintf(format, args...))
}
func (l *recordingLogger) Warn(format string, args ...interface{}) {
	l.warn = append(l.warn, fmt.Sprintf(format, args...))
}
func (l *recordingLogger) Error(format string, args ...interface{}) {
	l.errors = append(l.errors, fmt.Sprintf(format, args...))
}

func TestFileLogger(t *testing.T) {
	t.Run("writes timestamped leveled lines", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "logs", "run.log")
		logger, err := logging.NewFileLogger(path, true)
		require.NoError(t, err)

		logger.Info("loaded %d rows", 42)
		logger.Warn("skipping empty file: %s", "x.csv")
		logger.Verbose("detail")
		logger.Error("boom")
		require.NoError(t, logger.Close())

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		content := string(data)
		assert.Contains(t, content, "[INFO] loaded 42 rows")
		assert.Contains(t, content, "[WARN] skipping empty file: x.csv")
		assert.Contains(t, content, "[DEBUG] detail")
		assert.Contains(t, content, "[ERROR] boom")
	})

	t.Run("verbose off suppresses debug lines", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "run.log")
		logger, err := logging.NewFileLogger(path, false)
		require.NoError(t, err)

		logger.Verbose("hidden")
		logger.Info("shown")
		require.NoError(t, logger.Close())

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.NotContains(t, string(data), "hidden")
		assert.Contains(t, string(data), "shown")
	})
}

func TestTeeLogger(t *testing.T) {
	a := &recordingLogger{}
	b := &recordingLogger{}
	tee := logging.NewTeeLogger(a, nil, b)

	tee.Info("hello %s", "world")
	tee.Warn("careful")
	tee.Error("bad")
	tee.Verbose("detail")

	for _, l := range []*recordingLogger{a, b} {
		assert.Equal(t, []string{"hello world"}, l.info)
		assert.Equal(t, []string{"careful"}, l.warn)
		assert.Equal(t, []string{"bad"}, l.errors)
		assert.Equal(t, []string{"detail"}, l.verbose)
	}
}

func TestNullLogger(t *testing.T) {
	// Must not panic
	l := logging.NewNullLogger()
	l.Verbose("a")
	l.Info("b")
	l.Warn("c")
	l.Error("d")
}
