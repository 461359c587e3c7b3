package util

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is the process logger. It discards everything until InitLogger runs.
var Logger = zap.NewNop()

// InitLogger builds the production logger at the given level ("debug", "info", ...).
func InitLogger(level string) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	if level != "" {
		lvl, err := zapcore.ParseLevel(level)
		if err != nil {
			return nil, err
		}
		cfg.Level = zap.NewAtomicLevelAt(lvl)
	}

	logger, err := cfg.Build()
	if err != nil {
		return nil, err
	}
	Logger = logger
	return logger, nil
}

// LogError logs an error with context
func LogError(message string, err error, fields ...zap.Field) {
	if err != nil {
		Logger.Error(message, append(fields, zap.Error(err))...)
	}
}

// LogInfo logs an informational message
func LogInfo(message string, fields ...zap.Field) {
	Logger.Info(message, fields...)
}

// LogWarning logs a warning message
func LogWarning(message string, fields ...zap.Field) {
	Logger.Warn(message, fields...)
}

// LogDebug logs a debug message
func LogDebug(message string, fields ...zap.Field) {
	Logger.Debug(message, fields...)
}
