package installer

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// The settings file is the host's, not ours: it is read and written as
// generic JSON so every key we don't understand survives untouched.

// RegisterHook merges a PreToolUse entry invoking command into the
// settings file at path. Registering twice is a no-op.
func RegisterHook(path, command string) error {
	settings, err := readSettings(path)
	if err != nil {
		return err
	}

	hooks, _ := settings["hooks"].(map[string]any)
	if hooks == nil {
		hooks = map[string]any{}
		settings["hooks"] = hooks
	}

	pre, _ := hooks["PreToolUse"].([]any)
	if containsHook(pre, command) {
		return nil
	}

	entry := map[string]any{
		"matcher": "Bash",
		"hooks": []any{
			map[string]any{"type": "command", "command": command},
		},
	}
	hooks["PreToolUse"] = append(pre, entry)

	return writeSettings(path, settings)
}

// UnregisterHook removes every PreToolUse hook invoking command. Entries
// that still carry other hooks are kept. A missing settings file means
// there is nothing to remove.
func UnregisterHook(path, command string) error {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil
	}

	settings, err := readSettings(path)
	if err != nil {
		return err
	}

	hooks, _ := settings["hooks"].(map[string]any)
	if hooks == nil {
		return nil
	}
	pre, _ := hooks["PreToolUse"].([]any)
	if pre == nil {
		return nil
	}

	var kept []any
	for _, e := range pre {
		entry, ok := e.(map[string]any)
		if !ok {
			kept = append(kept, e)
			continue
		}
		inner, _ := entry["hooks"].([]any)
		var keptInner []any
		for _, h := range inner {
			hm, ok := h.(map[string]any)
			if ok && hm["command"] == command {
				continue
			}
			keptInner = append(keptInner, h)
		}
		if len(keptInner) == 0 && len(inner) > 0 {
			continue
		}
		if inner != nil {
			entry["hooks"] = keptInner
		}
		kept = append(kept, entry)
	}
	hooks["PreToolUse"] = kept

	return writeSettings(path, settings)
}

// containsHook reports whether any PreToolUse entry already invokes command.
func containsHook(pre []any, command string) bool {
	for _, e := range pre {
		entry, ok := e.(map[string]any)
		if !ok {
			continue
		}
		inner, _ := entry["hooks"].([]any)
		for _, h := range inner {
			if hm, ok := h.(map[string]any); ok && hm["command"] == command {
				return true
			}
		}
	}
	return false
}

func readSettings(path string) (map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]any{}, nil
		}
		return nil, fmt.Errorf("reading settings: %w", err)
	}

	var settings map[string]any
	if err := json.Unmarshal(data, &settings); err != nil {
		// Unlike our own config, a settings file we can't parse must not
		// be clobbered with a rewrite of what we think it holds.
		return nil, fmt.Errorf("parsing settings %s: %w", path, err)
	}
	if settings == nil {
		settings = map[string]any{}
	}
	return settings, nil
}

func writeSettings(path string, settings map[string]any) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating settings dir: %w", err)
	}

	data, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding settings: %w", err)
	}
	data = append(data, '\n')

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing settings: %w", err)
	}
	return nil
}
