// Package logging builds the zap logger used by the command-line entry point.
package logging

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/geoplan/internal/config"
)

// New returns a logger for cfg. The "json" format uses zap's production
// encoder, "console" its development encoder; both honor cfg.Level.
func New(cfg config.Logging) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("logging: %w", err)
	}

	var zc zap.Config
	switch cfg.Format {
	case "json":
		zc = zap.NewProductionConfig()
	case "console", "":
		zc = zap.NewDevelopmentConfig()
	default:
		return nil, fmt.Errorf("logging: unknown format %q", cfg.Format)
	}
	zc.Level = zap.NewAtomicLevelAt(lvl)
	// Diagnostics go to stderr so command output on stdout stays clean.
	zc.OutputPaths = []string{"stderr"}
	zc.ErrorOutputPaths = []string{"stderr"}

	return zc.Build()
}
