package installer

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/hpkotak/rtkwrap/internal/config"
)

// withLookPath swaps the PATH probe for the duration of a test.
func withLookPath(t *testing.T, fn func(string) (string, error)) {
	t.Helper()
	orig := lookPath
	lookPath = fn
	t.Cleanup(func() { lookPath = orig })
}

func rtkFound(string) (string, error)   { return "/usr/local/bin/rtk", nil }
func rtkMissing(string) (string, error) { return "", errors.New("not found") }

func TestRunInstallsEverything(t *testing.T) {
	tmpDir := t.TempDir()
	t.Setenv("HOME", tmpDir)
	withLookPath(t, rtkFound)

	opts := Options{
		SettingsPath: filepath.Join(tmpDir, ".claude", "settings.json"),
		HookCommand:  "rtkwrap hook",
		Yes:          true,
	}

	var out bytes.Buffer
	if err := Run(opts, strings.NewReader(""), &out); err != nil {
		t.Fatalf("run: %v", err)
	}

	if !config.Exists() {
		t.Error("default config not written")
	}
	if _, err := os.Stat(opts.SettingsPath); err != nil {
		t.Errorf("settings file not written: %v", err)
	}
	for _, want := range []string{"[ok] rtk is on PATH", "[ok] Hook registered"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("output missing %q:\n%s", want, out.String())
		}
	}
}

func TestRunKeepsExistingConfig(t *testing.T) {
	tmpDir := t.TempDir()
	t.Setenv("HOME", tmpDir)
	withLookPath(t, rtkFound)

	custom := config.Default()
	custom.Enabled = false
	if err := config.Save(custom); err != nil {
		t.Fatalf("save: %v", err)
	}

	opts := Options{
		SettingsPath: filepath.Join(tmpDir, "settings.json"),
		HookCommand:  "rtkwrap hook",
		Yes:          true,
	}
	if err := Run(opts, strings.NewReader(""), &bytes.Buffer{}); err != nil {
		t.Fatalf("run: %v", err)
	}

	if config.Load().Enabled {
		t.Error("existing config was overwritten")
	}
}

func TestRunMissingRtkDeclined(t *testing.T) {
	tmpDir := t.TempDir()
	t.Setenv("HOME", tmpDir)
	withLookPath(t, rtkMissing)

	opts := Options{
		SettingsPath: filepath.Join(tmpDir, "settings.json"),
		HookCommand:  "rtkwrap hook",
	}

	var out bytes.Buffer
	err := Run(opts, strings.NewReader("n\n"), &out)
	if err == nil {
		t.Fatal("expected install to be cancelled")
	}
	if !strings.Contains(out.String(), "[!!] rtk not found") {
		t.Errorf("output missing rtk warning:\n%s", out.String())
	}
	if _, statErr := os.Stat(opts.SettingsPath); !os.IsNotExist(statErr) {
		t.Error("settings file written despite cancelled install")
	}
}

func TestRunMissingRtkAccepted(t *testing.T) {
	tmpDir := t.TempDir()
	t.Setenv("HOME", tmpDir)
	withLookPath(t, rtkMissing)

	opts := Options{
		SettingsPath: filepath.Join(tmpDir, "settings.json"),
		HookCommand:  "rtkwrap hook",
	}

	// First prompt: continue without rtk. Second: register the hook.
	// OneByteReader keeps the first prompt's scanner from buffering past
	// its own line.
	in := iotest.OneByteReader(strings.NewReader("y\ny\n"))
	if err := Run(opts, in, &bytes.Buffer{}); err != nil {
		t.Fatalf("run: %v", err)
	}
	if _, err := os.Stat(opts.SettingsPath); err != nil {
		t.Errorf("settings file not written: %v", err)
	}
}

func TestUninstallRemovesHook(t *testing.T) {
	tmpDir := t.TempDir()
	t.Setenv("HOME", tmpDir)
	path := filepath.Join(tmpDir, "settings.json")

	if err := RegisterHook(path, "rtkwrap hook"); err != nil {
		t.Fatalf("register: %v", err)
	}

	opts := Options{SettingsPath: path, HookCommand: "rtkwrap hook", Yes: true}
	var out bytes.Buffer
	if err := Uninstall(opts, strings.NewReader(""), &out); err != nil {
		t.Fatalf("uninstall: %v", err)
	}
	if !strings.Contains(out.String(), "[ok] Hook removed") {
		t.Errorf("output missing confirmation:\n%s", out.String())
	}
}

func TestConfirm(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		defaultYes bool
		want       bool
	}{
		{"yes", "y\n", false, true},
		{"yes word", "yes\n", false, true},
		{"no", "n\n", true, false},
		{"empty takes default yes", "\n", true, true},
		{"empty takes default no", "\n", false, false},
		{"garbage is no", "maybe\n", true, false},
		{"eof is no", "", true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			got := Confirm("Proceed?", tt.defaultYes, strings.NewReader(tt.input), &out)
			if got != tt.want {
				t.Errorf("Confirm(%q, default=%v) = %v, want %v", tt.input, tt.defaultYes, got, tt.want)
			}
		})
	}
}
