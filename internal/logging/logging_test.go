package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNewDisabledIsNop(t *testing.T) {
	logger, err := New(false, filepath.Join(t.TempDir(), "never.log"))
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	logger.Info("should go nowhere")
	_ = logger.Sync()
}

func TestNewWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "rtkwrap.log")

	logger, err := New(true, path)
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	logger.Info("rewriting command")
	_ = logger.Sync()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading log: %v", err)
	}
	if !strings.Contains(string(data), "rewriting command") {
		t.Errorf("log file missing entry: %q", string(data))
	}
}
