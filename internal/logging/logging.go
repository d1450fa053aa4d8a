// Package logging builds the decision logger used on the hook path. The
// engine itself never logs; this is the collaborator-side record of which
// guard handled each command.
package logging

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/hpkotak/rtkwrap/internal/config"
)

// Path returns the decision log path (~/.rtkwrap/rtkwrap.log).
func Path() string {
	return filepath.Join(config.Dir(), "rtkwrap.log")
}

// New returns a file-backed logger when decision logging is enabled, a nop
// logger otherwise. The hook writes its protocol response to stdout, so
// the log must never touch stdout or stderr.
func New(enabled bool, path string) (*zap.Logger, error) {
	if !enabled {
		return zap.NewNop(), nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("creating log dir: %w", err)
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	cfg.OutputPaths = []string{path}
	cfg.ErrorOutputPaths = []string{path}

	logger, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("building logger: %w", err)
	}
	return logger, nil
}
