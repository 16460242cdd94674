// Package logging builds the zap logger. The terminal UI owns stdout, so
// logs go to a file.
package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/contactvanshdev-code/restaurant-website/internal/config"
)

// New returns a logger writing JSON lines to cfg.File. verbose forces the
// debug level. A disabled config yields a no-op logger.
func New(cfg config.LoggingConfig, verbose bool) (*zap.Logger, error) {
	if !cfg.Enabled || cfg.File == "" {
		return zap.NewNop(), nil
	}

	level, err := zapcore.ParseLevel(strings.ToLower(cfg.Level))
	if err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}
	if verbose {
		level = zapcore.DebugLevel
	}

	if err := os.MkdirAll(filepath.Dir(cfg.File), 0o755); err != nil {
		return nil, fmt.Errorf("log dir: %w", err)
	}

	zc := zap.NewProductionConfig()
	zc.Level = zap.NewAtomicLevelAt(level)
	zc.OutputPaths = []string{cfg.File}
	zc.ErrorOutputPaths = []string{cfg.File}
	zc.EncoderConfig.TimeKey = "ts"
	zc.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	logger, err := zc.Build()
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}
	return logger, nil
}

// WithSession tags every entry with a fresh session id.
func WithSession(logger *zap.Logger) *zap.Logger {
	return logger.With(zap.String("session", uuid.NewString()))
}
