package engine

import "strings"

// Matches reports whether the command's leading tokens equal one of the
// configured patterns. A pattern matches only at a word boundary: the
// command is the pattern exactly, or starts with the pattern followed by a
// space. "ls" matches "ls" and "ls -la" but not "lsof"; "git status"
// matches "git status -s" but not "git diff".
//
// Patterns must already be trimmed; the command must already be trimmed.
// An empty pattern list matches nothing.
func Matches(command string, patterns []string) bool {
	for _, p := range patterns {
		if command == p || strings.HasPrefix(command, p+" ") {
			return true
		}
	}
	return false
}
