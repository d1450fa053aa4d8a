package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hpkotak/rtkwrap/internal/engine"
)

var tryCmd = &cobra.Command{
	Use:   "try <command>",
	Short: "Show what the engine would do with a command",
	Long: `Runs a command string through the rewrite engine without executing
anything, printing either the rewritten form or the guard that skipped it.

Examples:
  rtkwrap try "git status -s"
  rtkwrap try cat file.txt`,
	Args: cobra.MinimumNArgs(1),
	RunE: runTry,
}

func init() {
	rootCmd.AddCommand(tryCmd)
}

func runTry(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()
	command := strings.Join(args, " ")

	d := engine.Decide(command, cfg.Engine())
	if d.Rewritten {
		_, _ = fmt.Fprintf(ioOut, "rewrite: %s\n", d.Command)
	} else {
		_, _ = fmt.Fprintf(ioOut, "unchanged: %s\n", d.Reason)
	}
	return nil
}
