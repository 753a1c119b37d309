// Package logging provides concrete implementations of the inventory.Logger interface.
//
// Available implementations:
//   - ConsoleLogger: Writes formatted messages to stderr with thread-safe output
//   - FileLogger: Appends timestamped messages to a log file in the log directory
//   - TeeLogger: Fans a message out to several loggers (console + file)
//   - NullLogger: Discards all messages (useful for testing)
//
// All logger implementations are safe for concurrent use by multiple goroutines.
package logging
