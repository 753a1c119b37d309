package logging

import (
	"github.com/niteshchoudhary12445/Inventory-Management-and-Analysis-System/pkg/inventory"
)

// TeeLogger forwards every message to each wrapped logger. Used to log runs
// to the console and the run log file at the same time.
type TeeLogger struct {
	loggers []inventory.Logger
}

// NewTeeLogger creates a TeeLogger over the given loggers. Nil entries are
// skipped.
func NewTeeLogger(loggers ...inventory.Logger) *TeeLogger {
	out := make([]inventory.Logger, 0, len(loggers))
	for _, l := range loggers {
		if l != nil {
			out = append(out, l)
		}
	}
	return &TeeLogger{loggers: out}
}

// Verbose forwards to each wrapped logger.
func (l *TeeLogger) Verbose(format string, args ...interface{}) {
	for _, lg := range l.loggers {
		lg.Verbose(format, args...)
	}
}

// Info forwards to each wrapped logger.
func (l *TeeLogger) Info(format string, args ...interface{}) {
	for _, lg := range l.loggers {
		lg.Info(format, args...)
	}
}

// Warn forwards to each wrapped logger.
func (l *TeeLogger) Warn(format string, args ...interface{}) {
	for _, lg := range l.loggers {
		lg.Warn(format, args...)
	}
}

// Error forwards to each wrapped logger.
func (l *TeeLogger) Error(format string, args ...interface{}) {
	for _, lg := range l.loggers {
		lg.Error(format, args...)
	}
}
