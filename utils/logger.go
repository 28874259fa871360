package utils

import (
	"log"

	"tidybook/config"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Global logger instance
var Logger *zap.Logger

// InitializeLogger builds the global logger from the configured environment.
// LOG_LEVEL overrides the per-environment default (info in production, debug
// otherwise).
func InitializeLogger() {
	var cfg zap.Config
	level := zapcore.DebugLevel

	if config.IsProduction() {
		cfg = zap.NewProductionConfig()
		level = zapcore.InfoLevel
	} else {
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	if configured := config.AppConfig.LogLevel; configured != "" {
		if parsed, err := zapcore.ParseLevel(configured); err == nil {
			level = parsed
		}
	}
	cfg.Level = zap.NewAtomicLevelAt(level)

	var err error
	Logger, err = cfg.Build()
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
}

// GetLogger retrieves the global logger
func GetLogger() *zap.Logger {
	if Logger == nil {
		InitializeLogger()
	}
	return Logger
}
