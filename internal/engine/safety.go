package engine

import "strings"

// IsSimple reports whether a command is free of shell composition
// operators: pipes, logical AND/OR, semicolons, and heredoc markers.
// Wrapping a compound command changes its meaning (only the first segment
// would be compressed), so anything compound is unsafe to rewrite.
//
// The scan is purely lexical — a pipe inside a quoted string still counts.
// This is deliberate: a false "compound" verdict only costs a missed
// rewrite, while a false "simple" verdict would corrupt the command.
func IsSimple(command string) bool {
	// ContainsAny on "|;" also covers "||".
	if strings.ContainsAny(command, "|;") {
		return false
	}
	if strings.Contains(command, "&&") {
		return false
	}
	if strings.Contains(command, "<<") {
		return false
	}
	return true
}
