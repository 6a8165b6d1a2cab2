package simulation

// Logger is a minimal logging interface so the engine does not depend on any
// particular logging library. The CLI adapts its structured logger to this
// interface; library callers may ignore it entirely.
type Logger interface {
	Debugf(format string, args ...interface{})
	Infof(format string, args ...interface{})
	Warnf(format string, args ...interface{})
	Errorf(format string, args ...interface{})
}

// NopLogger discards all log messages. It is the default logger for a newly
// constructed engine.
type NopLogger struct{}

func (NopLogger) Debugf(format string, args ...interface{}) {}
func (NopLogger) Infof(format string, args ...interface{})  {}
func (NopLogger) Warnf(format string, args ...interface{})  {}
func (NopLogger) Errorf(format string, args ...interface{}) {}
