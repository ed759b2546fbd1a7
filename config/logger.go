package config

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewLogger builds the process logger. The returned level can be changed at
// runtime, e.g. after a config reload.
func NewLogger(cfg LogConfig) (*zap.Logger, zap.AtomicLevel, error) {
	level, err := zap.ParseAtomicLevel(cfg.Level)
	if err != nil {
		return nil, zap.AtomicLevel{}, fmt.Errorf("log level: %w", err)
	}

	var zc zap.Config
	if cfg.JSON {
		zc = zap.NewProductionConfig()
	} else {
		zc = zap.NewDevelopmentConfig()
		zc.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}
	zc.Level = level
	zc.EncoderConfig.TimeKey = "ts"
	zc.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	logger, err := zc.Build()
	if err != nil {
		return nil, zap.AtomicLevel{}, fmt.Errorf("build logger: %w", err)
	}
	return logger, level, nil
}

// ApplyLogLevel is a Watcher subscriber that keeps level in sync with the
// config file.
func ApplyLogLevel(level zap.AtomicLevel, log *zap.Logger) func(*Config) {
	return func(cfg *Config) {
		next, err := zapcore.ParseLevel(cfg.Log.Level)
		if err != nil {
			return
		}
		if next != level.Level() {
			level.SetLevel(next)
			log.Info("log level changed", zap.Stringer("level", next))
		}
	}
}
