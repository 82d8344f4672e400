package config

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func parseLevel(level string) (zapcore.Level, error) {
	switch level {
	case "debug":
		return zapcore.DebugLevel, nil
	case "", "info":
		return zapcore.InfoLevel, nil
	case "warn", "warning":
		return zapcore.WarnLevel, nil
	case "error":
		return zapcore.ErrorLevel, nil
	default:
		return zapcore.InfoLevel, fmt.Errorf("invalid log level: %s", level)
	}
}

// NewLogger builds a zap logger from the logging section. levelOverride, when
// non-empty, takes precedence over the configured level.
func NewLogger(cfg LoggingConfig, levelOverride string) (*zap.Logger, error) {
	level := cfg.Level
	if levelOverride != "" {
		level = levelOverride
	}
	zapLevel, err := parseLevel(level)
	if err != nil {
		return nil, err
	}

	var zc zap.Config
	switch cfg.Format {
	case "console":
		zc = zap.NewDevelopmentConfig()
	case "", "json":
		zc = zap.NewProductionConfig()
	default:
		return nil, fmt.Errorf("invalid log format: %s", cfg.Format)
	}
	zc.Level = zap.NewAtomicLevelAt(zapLevel)

	if cfg.OutputFile != "" {
		if dir := filepath.Dir(cfg.OutputFile); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("failed to create log directory %s: %w", dir, err)
			}
		}
		zc.OutputPaths = []string{cfg.OutputFile}
		zc.ErrorOutputPaths = []string{cfg.OutputFile}
	}

	return zc.Build()
}
