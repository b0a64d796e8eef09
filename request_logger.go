package mailapi

import "log"

// RequestLogger is the interface used by [Client] for diagnostic output.
// Error response bodies are reported through Errorf before they are
// normalized into an [Error]. Implement this interface to integrate with your
// logging library and supply the implementation via [WithRequestLogger].
type RequestLogger interface {
	Errorf(format string, v ...any)
	Warnf(format string, v ...any)
	Debugf(format string, v ...any)
}

// NoopLogger is a [RequestLogger] that silently discards all log messages.
// It is the default logger used when no logger is provided to [New].
type NoopLogger struct{}

func (l *NoopLogger) Errorf(_ string, _ ...any) {}
func (l *NoopLogger) Warnf(_ string, _ ...any)  {}
func (l *NoopLogger) Debugf(_ string, _ ...any) {}

// StdLogger is a [RequestLogger] backed by a standard library [log.Logger].
// Debug messages are only written when Verbose is set.
type StdLogger struct {
	Logger  *log.Logger
	Verbose bool
}

// NewStdLogger returns a StdLogger writing to the standard logger's output.
func NewStdLogger(verbose bool) *StdLogger {
	return &StdLogger{Logger: log.Default(), Verbose: verbose}
}

func (l *StdLogger) Errorf(format string, v ...any) {
	l.printf("ERROR", format, v...)
}

func (l *StdLogger) Warnf(format string, v ...any) {
	l.printf("WARN", format, v...)
}

func (l *StdLogger) Debugf(format string, v ...any) {
	if !l.Verbose {
		return
	}
	l.printf("DEBUG", format, v...)
}

func (l *StdLogger) printf(level, format string, v ...any) {
	logger := l.Logger
	if logger == nil {
		logger = log.Default()
	}
	logger.Printf("mailapi "+level+": "+format, v...)
}
