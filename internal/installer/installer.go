// Package installer handles registering rtkwrap as a PreToolUse hook with
// the agent host. All mutations — config creation, settings edits —
// require explicit user consent.
package installer

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/hpkotak/rtkwrap/internal/config"
)

// Options configures an install or uninstall run.
type Options struct {
	SettingsPath string // host settings file to register the hook in
	HookCommand  string // command the host should invoke, e.g. "rtkwrap hook"
	Yes          bool   // answer yes to every prompt (non-interactive installs)
}

// lookPath is injectable for testing. Default calls exec.LookPath.
var lookPath = exec.LookPath

// DefaultSettingsPath returns the host settings file (~/.claude/settings.json).
func DefaultSettingsPath() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".claude", "settings.json")
}

// Run executes the interactive install flow.
// in and out are injectable for testability.
func Run(opts Options, in io.Reader, out io.Writer) error {
	_, _ = fmt.Fprintln(out, "rtkwrap install")
	_, _ = fmt.Fprintln(out, "===============")

	if _, err := lookPath("rtk"); err == nil {
		_, _ = fmt.Fprintln(out, "[ok] rtk is on PATH")
	} else {
		_, _ = fmt.Fprintln(out, "[!!] rtk not found on PATH")
		if !confirm(opts, "Continue anyway? Rewritten commands will fail until rtk is installed.", false, in, out) {
			return fmt.Errorf("install cancelled: rtk must be on PATH before rewritten commands can run")
		}
	}

	if config.Exists() {
		_, _ = fmt.Fprintf(out, "[ok] Config present at %s\n", config.Path())
	} else {
		if err := config.Save(config.Default()); err != nil {
			return fmt.Errorf("writing default config: %w", err)
		}
		_, _ = fmt.Fprintf(out, "[ok] Wrote default config to %s\n", config.Path())
	}

	if !confirm(opts, fmt.Sprintf("Register the PreToolUse hook in %s?", opts.SettingsPath), true, in, out) {
		return fmt.Errorf("install cancelled")
	}
	if err := RegisterHook(opts.SettingsPath, opts.HookCommand); err != nil {
		return fmt.Errorf("registering hook: %w", err)
	}
	_, _ = fmt.Fprintln(out, "[ok] Hook registered")

	_, _ = fmt.Fprintln(out, "\nDone. Try: rtkwrap try \"git status\"")
	return nil
}

// Uninstall removes the hook registration. The config file and tally are
// left in place so a reinstall picks up where the user left off.
func Uninstall(opts Options, in io.Reader, out io.Writer) error {
	if !confirm(opts, fmt.Sprintf("Remove the PreToolUse hook from %s?", opts.SettingsPath), true, in, out) {
		return fmt.Errorf("uninstall cancelled")
	}
	if err := UnregisterHook(opts.SettingsPath, opts.HookCommand); err != nil {
		return fmt.Errorf("removing hook: %w", err)
	}
	_, _ = fmt.Fprintln(out, "[ok] Hook removed")
	_, _ = fmt.Fprintf(out, "Config kept at %s — delete the directory to remove it.\n", config.Path())
	return nil
}

func confirm(opts Options, prompt string, defaultYes bool, in io.Reader, out io.Writer) bool {
	if opts.Yes {
		return true
	}
	return Confirm(prompt, defaultYes, in, out)
}
