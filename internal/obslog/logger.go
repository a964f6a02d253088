// Package obslog adapts zap to the ecs.Logger interface.
package obslog

import "go.uber.org/zap"

// Logger wraps a *zap.SugaredLogger to satisfy ecs.Logger.
type Logger struct {
	s *zap.SugaredLogger
}

// New wraps an existing zap logger. Passing nil is a programmer error.
func New(l *zap.Logger) *Logger {
	return &Logger{s: l.Sugar()}
}

// NewProduction builds a production zap config (JSON, info level) and
// wraps it, matching the density the teacher reaches for in non-test code.
func NewProduction() (*Logger, error) {
	l, err := zap.NewProduction()
	if err != nil {
		return nil, err
	}
	return New(l), nil
}

func (l *Logger) Debugw(msg string, kv ...any) { l.s.Debugw(msg, kv...) }
func (l *Logger) Infow(msg string, kv ...any)  { l.s.Infow(msg, kv...) }
func (l *Logger) Errorw(msg string, kv ...any) { l.s.Errorw(msg, kv...) }

// Sync flushes any buffered log entries. Call before process exit.
func (l *Logger) Sync() error { return l.s.Sync() }
