// Package engine decides whether a shell command can be transparently
// rewritten to run through rtk, the output-compressing wrapper. Every
// function here is pure and total over string inputs: there is no I/O, no
// logging, and no error path. Commands that cannot be confidently rewritten
// come back unchanged.
package engine

import (
	"strings"
	"unicode"
)

// Token is the compressor invocation token prepended to rewritten commands.
const Token = "rtk"

// Reason identifies which guard decided the outcome. Collaborators use it
// to report why a command was left alone.
type Reason int

const (
	ReasonRewritten Reason = iota
	ReasonDisabled
	ReasonEmpty
	ReasonAlreadyWrapped
	ReasonNotSimple
	ReasonNoMatch
)

func (r Reason) String() string {
	switch r {
	case ReasonRewritten:
		return "rewritten"
	case ReasonDisabled:
		return "disabled"
	case ReasonEmpty:
		return "empty command"
	case ReasonAlreadyWrapped:
		return "already wrapped"
	case ReasonNotSimple:
		return "compound command"
	case ReasonNoMatch:
		return "no pattern match"
	default:
		return "unknown"
	}
}

// Decision is the outcome of Decide. Command is the replacement string and
// is only set when Rewritten is true.
type Decision struct {
	Rewritten bool
	Command   string
	Reason    Reason
}

// Config is the engine's immutable snapshot of the rewrite rules. Callers
// must not mutate a Config that is in use; reloading means building a new
// value and swapping it.
type Config struct {
	Enabled  bool
	Patterns []string
	Aliases  map[string]string
}

// DefaultConfig returns the built-in rule set: chatty, read-only commands
// whose output rtk knows how to compress.
func DefaultConfig() Config {
	return Config{
		Enabled: true,
		Patterns: []string{
			"git status",
			"git diff",
			"git log",
			"ls",
			"cat",
			"head",
			"tail",
			"grep",
			"find",
			"wc",
		},
		Aliases: map[string]string{
			"cat":  "rtk read",
			"ls":   "rtk ls",
			"grep": "rtk grep",
		},
	}
}

// Normalize returns a copy with the Config invariants enforced: patterns
// trimmed and non-empty, alias keys single tokens. Entries that cannot be
// repaired are dropped rather than reported — a bad rule should never stop
// the remaining rules from applying.
func (c Config) Normalize() Config {
	out := Config{Enabled: c.Enabled}
	for _, p := range c.Patterns {
		p = strings.TrimSpace(p)
		if p != "" {
			out.Patterns = append(out.Patterns, p)
		}
	}
	for k, v := range c.Aliases {
		k = strings.TrimSpace(k)
		if k == "" || strings.ContainsFunc(k, unicode.IsSpace) {
			continue
		}
		if out.Aliases == nil {
			out.Aliases = make(map[string]string, len(c.Aliases))
		}
		out.Aliases[k] = v
	}
	return out
}

// Decide classifies one command against the configured rules. Guards run
// in a fixed order so callers can report which one short-circuited:
// disabled, empty, already wrapped, compound, unmatched — and only then a
// rewrite.
func Decide(command string, cfg Config) Decision {
	if !cfg.Enabled {
		return Decision{Reason: ReasonDisabled}
	}

	trimmed := strings.TrimSpace(command)
	if trimmed == "" {
		return Decision{Reason: ReasonEmpty}
	}

	// Idempotence guard: a command that already invokes rtk must never be
	// wrapped a second time, no matter how often it passes through.
	if trimmed == Token || strings.HasPrefix(trimmed, Token+" ") {
		return Decision{Reason: ReasonAlreadyWrapped}
	}

	if !IsSimple(trimmed) {
		return Decision{Reason: ReasonNotSimple}
	}

	if !Matches(trimmed, cfg.Patterns) {
		return Decision{Reason: ReasonNoMatch}
	}

	return Decision{
		Rewritten: true,
		Command:   Rewrite(trimmed, cfg.Aliases),
		Reason:    ReasonRewritten,
	}
}
