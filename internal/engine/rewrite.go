package engine

import (
	"strings"
	"unicode"
)

// Head returns the first whitespace-delimited token of a command.
// The command must already be trimmed.
func Head(command string) string {
	if i := strings.IndexFunc(command, unicode.IsSpace); i >= 0 {
		return command[:i]
	}
	return command
}

// Rewrite produces the replacement for a command that has already been
// matched and classified simple. If the head token has an alias, the alias
// value (which may be multi-token, e.g. "rtk read") replaces the head by
// position — slicing at the head's length, never a substring search, so a
// later argument that happens to equal the head ("cat cat.txt") is left
// intact. Without an alias the whole command is prefixed with the
// compressor token.
func Rewrite(command string, aliases map[string]string) string {
	head := Head(command)
	if repl, ok := aliases[head]; ok {
		return repl + command[len(head):]
	}
	return Token + " " + command
}
