package tsstrip

// Logger is the narrow logging interface the orchestrator accepts; callers
// wire in whatever concrete logger they like (the CLI wires one backed by
// pkg/ui, tests use NopLogger).
type Logger interface {
	Debugf(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}

// NopLogger discards everything. The zero value is ready to use.
type NopLogger struct{}

func (NopLogger) Debugf(format string, args ...any) {}
func (NopLogger) Warnf(format string, args ...any)  {}
func (NopLogger) Errorf(format string, args ...any) {}
