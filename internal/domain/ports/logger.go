package ports

// Logger receives diagnostics for failures that are recovered locally and
// never surfaced to the caller.
type Logger interface {
	Printf(format string, args ...any)
}

// NopLogger discards all diagnostics.
type NopLogger struct{}

// Printf does nothing.
func (NopLogger) Printf(string, ...any) {}
