package cmd

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/hpkotak/rtkwrap/internal/config"
)

// Package-level function variables for testability.
// Tests override these to avoid touching the real home directory.
var (
	loadConfig           = config.Load
	ioIn       io.Reader = os.Stdin
	ioOut      io.Writer = os.Stdout
)

var rootCmd = &cobra.Command{
	Use:   "rtkwrap",
	Short: "Route chatty shell commands through rtk",
	Long: `rtkwrap registers itself as a PreToolUse hook with the agent host and
transparently rewrites eligible shell commands to run through rtk, the
output-compressing tool. Only commands matching a configured prefix at a
word boundary are rewritten, and never compound commands.

Examples:
  rtkwrap install
  rtkwrap try "git status -s"
  rtkwrap config set alias.cat "rtk read"`,
	DisableAutoGenTag: true,
}

func Execute() error {
	return rootCmd.Execute()
}
