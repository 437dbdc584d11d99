// pkg/logger/logger.go

package logger

import (
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var log *zap.Logger

// SetLogger replaces the package-level logger.
func SetLogger(l *zap.Logger) {
	log = l
}

// L returns the package-level logger, or nil if logging is uninitialized.
func L() *zap.Logger {
	return log
}

// GetLogger returns the global logger, initializing a fallback if needed.
func GetLogger() *zap.Logger {
	if log == nil {
		InitFallback()
	}
	return log
}

// ParseLogLevel maps a LOG_LEVEL string to a zap level, defaulting to Info.
func ParseLogLevel(s string) zapcore.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return zapcore.DebugLevel
	case "warn", "warning":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

// Sync flushes any buffered log entries. Call before the process exits.
func Sync() error {
	if log == nil {
		return nil
	}
	return log.Sync()
}
