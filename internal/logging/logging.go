// Package logging builds the application's zap logger from configuration.
package logging

import (
	"fmt"

	"dhanbad/wellness-admin/internal/config"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New constructs a logger per the log section of the config: production
// JSON output by default, console output in development mode.
func New(cfg config.LogConfig) (*zap.Logger, error) {
	var zc zap.Config
	if cfg.Development {
		zc = zap.NewDevelopmentConfig()
	} else {
		zc = zap.NewProductionConfig()
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("parse log level %q: %w", cfg.Level, err)
	}
	zc.Level = zap.NewAtomicLevelAt(level)

	return zc.Build()
}
