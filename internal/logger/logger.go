// Package logger wraps zap with a small initialization helper shared by
// the server and client binaries.
package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger holds the configured zap logger.
type Logger struct {
	// Log is the underlying structured logger.
	Log *zap.Logger
}

// New returns a Logger with a no-op zap logger until Init is called.
func New() *Logger {
	return &Logger{Log: zap.NewNop()}
}

// Init builds a production zap logger at the given level ("Debug", "Info",
// "Warn", "Error") and replaces the no-op logger. Returns an error if the
// level cannot be parsed or the logger cannot be built.
func (l *Logger) Init(level string) error {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return err
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)

	log, err := cfg.Build()
	if err != nil {
		return err
	}
	l.Log = log
	return nil
}
