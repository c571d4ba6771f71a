package logger

import "log/slog"

// Interface is the structured logger injected into use cases and adapters.
type Interface interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
	With(args ...any) Interface
	Named(name string) Interface

	Debugw(msg string, keysAndValues ...any)
	Infow(msg string, keysAndValues ...any)
	Warnw(msg string, keysAndValues ...any)
	Errorw(msg string, keysAndValues ...any)
}

type slogLogger struct {
	l *slog.Logger
}

// NewLogger wraps the process-wide slog logger.
func NewLogger() Interface {
	return &slogLogger{l: Get()}
}

// NewLoggerWithSlog wraps an explicit slog logger, mainly for tests.
func NewLoggerWithSlog(l *slog.Logger) Interface {
	return &slogLogger{l: l}
}

func (s *slogLogger) Debug(msg string, args ...any) { s.l.Debug(msg, args...) }
func (s *slogLogger) Info(msg string, args ...any)  { s.l.Info(msg, args...) }
func (s *slogLogger) Warn(msg string, args ...any)  { s.l.Warn(msg, args...) }
func (s *slogLogger) Error(msg string, args ...any) { s.l.Error(msg, args...) }

func (s *slogLogger) With(args ...any) Interface {
	return &slogLogger{l: s.l.With(args...)}
}

func (s *slogLogger) Named(name string) Interface {
	return &slogLogger{l: s.l.With("logger", name)}
}

func (s *slogLogger) Debugw(msg string, keysAndValues ...any) { s.l.Debug(msg, keysAndValues...) }
func (s *slogLogger) Infow(msg string, keysAndValues ...any)  { s.l.Info(msg, keysAndValues...) }
func (s *slogLogger) Warnw(msg string, keysAndValues ...any)  { s.l.Warn(msg, keysAndValues...) }
func (s *slogLogger) Errorw(msg string, keysAndValues ...any) { s.l.Error(msg, keysAndValues...) }
