package utils

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var logger *zap.Logger

func GetLogger() *zap.Logger {
	if logger == nil {
		var err error
		if logger, err = zap.NewDevelopment(); err != nil {
			logger = zap.NewNop()
		}
	}
	return logger
}

func SetNoLogger() {
	SetLogger(zap.NewNop())
}

func SetLogger(l *zap.Logger) {
	logger = l
}

// NewLogger builds a production logger writing to stderr at the given level
// (debug, info, warn, error). Unknown levels fall back to info.
func NewLogger(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		lvl = zapcore.InfoLevel
	}
	config := zap.NewProductionConfig()
	config.Level = zap.NewAtomicLevelAt(lvl)
	config.Encoding = "console"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	return config.Build()
}
