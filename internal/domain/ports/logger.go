package ports

// Logger abstracts logging so the core does not care whether it writes
// through zap, the standard log package or a test no-op.
type Logger interface {
	// Debug logs diagnostic detail
	Debug(msg string, args ...interface{})

	// Info logs normal operation
	Info(msg string, args ...interface{})

	// Warn logs recoverable problems
	Warn(msg string, args ...interface{})

	// Error logs failures
	Error(msg string, args ...interface{})

	// Fatal logs and terminates the program
	Fatal(msg string, args ...interface{})

	// Printf formatted output (compatibility)
	Printf(format string, args ...interface{})
}
