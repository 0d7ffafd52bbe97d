// Package logger owns the process-wide zap logger. Packages that log take a *zap.Logger
// option and fall back to Log when none is given.
package logger

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Log is the default logger. It discards everything until Set is called.
var Log = zap.NewNop()

// New builds a logger at the given level.
//
// Parameters:
//   - level: one of debug, info, warn, error
//   - development: true for the human-readable console encoder with caller and stack info
//
// Returns:
//   - *zap.Logger: the configured logger
//   - error: error if the level is unknown or the logger cannot be built
func New(level string, development bool) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	cfg := zap.NewProductionConfig()
	if development {
		cfg = zap.NewDevelopmentConfig()
	}
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	l, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build logger: %w", err)
	}
	return l, nil
}

// Set replaces the default logger. Nil restores the no-op logger.
//
// Parameters:
//   - l: the new default logger
func Set(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	Log = l
}

// Or returns l, or the default logger when l is nil.
func Or(l *zap.Logger) *zap.Logger {
	if l == nil {
		return Log
	}
	return l
}
