// Package logger provides structured logging backed by the Uber zap library.
package logger

import (
	"go.uber.org/zap"
)

// Log is the global SugaredLogger instance. It must be initialized via Init
// before use; tests and main both go through it.
var Log = zap.NewNop().Sugar()

// Init configures the global logger for the given level.
func Init(level string) error {
	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return err
	}

	cfg := zap.NewDevelopmentConfig()
	cfg.Level = lvl
	zl, err := cfg.Build()
	if err != nil {
		return err
	}
	Log = zl.Sugar()

	return nil
}

// Sync flushes any buffered log entries.
func Sync() error {
	return Log.Sync()
}
