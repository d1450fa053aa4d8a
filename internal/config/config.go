// Package config manages the rtkwrap configuration file at
// ~/.rtkwrap/config.yaml. Loading never fails: a missing or malformed file
// yields the built-in defaults, because a hook that errors out would stall
// every tool call in the host.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/hpkotak/rtkwrap/internal/engine"
)

type Config struct {
	Enabled      bool              `yaml:"enabled" mapstructure:"enabled"`
	Patterns     []string          `yaml:"patterns" mapstructure:"patterns"`
	Aliases      map[string]string `yaml:"aliases" mapstructure:"aliases"`
	LogDecisions bool              `yaml:"log_decisions" mapstructure:"log_decisions"`
}

// Dir returns the config directory path (~/.rtkwrap).
func Dir() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".rtkwrap")
}

// Path returns the config file path (~/.rtkwrap/config.yaml).
func Path() string {
	return filepath.Join(Dir(), "config.yaml")
}

// Exists checks if the config file exists.
func Exists() bool {
	_, err := os.Stat(Path())
	return err == nil
}

// Load reads the config file, falling back to defaults when it is absent
// or unreadable.
func Load() *Config {
	return loadFrom(Path())
}

func loadFrom(path string) *Config {
	def := Default()

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	v.SetEnvPrefix("RTKWRAP")
	v.AutomaticEnv()
	v.SetDefault("enabled", def.Enabled)
	v.SetDefault("patterns", def.Patterns)
	v.SetDefault("aliases", def.Aliases)
	v.SetDefault("log_decisions", def.LogDecisions)
	// Unmarshal only consults the environment for keys viper knows about,
	// so bind each one explicitly rather than relying on AutomaticEnv.
	for _, key := range []string{"enabled", "patterns", "aliases", "log_decisions"} {
		_ = v.BindEnv(key)
	}

	// A missing or malformed file still leaves defaults and RTKWRAP_* env
	// overrides in effect, so unmarshal regardless of the read outcome.
	fileRead := v.ReadInConfig() == nil

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return def
	}

	// viper folds map keys to lower case, which would corrupt alias heads
	// like "Make". Re-read the aliases section case-sensitively.
	if fileRead {
		if aliases, ok := readAliases(path); ok {
			cfg.Aliases = aliases
		}
	}
	return &cfg
}

// readAliases extracts the aliases map straight from the yaml file,
// preserving key case. ok is false when the file has no aliases section
// or cannot be read.
func readAliases(path string) (map[string]string, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, false
	}
	var f struct {
		Aliases map[string]string `yaml:"aliases"`
	}
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, false
	}
	if f.Aliases == nil {
		return nil, false
	}
	return f.Aliases, true
}

// Save writes the config to disk, creating the directory if needed.
func Save(cfg *Config) error {
	if err := os.MkdirAll(Dir(), 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	data, err := marshalConfig(cfg)
	if err != nil {
		return err
	}

	if err := os.WriteFile(Path(), data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

func marshalConfig(cfg *Config) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("encoding config: %w", err)
	}
	return data, nil
}

// Default returns the built-in rule set.
func Default() *Config {
	e := engine.DefaultConfig()
	return &Config{
		Enabled:  e.Enabled,
		Patterns: e.Patterns,
		Aliases:  e.Aliases,
	}
}

// Engine converts the persisted form into the engine's immutable snapshot,
// with the rule invariants enforced.
func (c *Config) Engine() engine.Config {
	return engine.Config{
		Enabled:  c.Enabled,
		Patterns: c.Patterns,
		Aliases:  c.Aliases,
	}.Normalize()
}
