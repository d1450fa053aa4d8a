package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/hpkotak/rtkwrap/internal/installer"
)

var (
	settingsFlag string
	yesFlag      bool
)

var installCmd = &cobra.Command{
	Use:   "install",
	Short: "Register the PreToolUse hook and write the default config",
	RunE:  runInstall,
}

var uninstallCmd = &cobra.Command{
	Use:   "uninstall",
	Short: "Remove the PreToolUse hook registration",
	RunE:  runUninstall,
}

func init() {
	for _, c := range []*cobra.Command{installCmd, uninstallCmd} {
		c.Flags().StringVar(&settingsFlag, "settings", installer.DefaultSettingsPath(), "host settings file")
		c.Flags().BoolVarP(&yesFlag, "yes", "y", false, "answer yes to all prompts")
		rootCmd.AddCommand(c)
	}
}

func runInstall(cmd *cobra.Command, args []string) error {
	opts, err := installOptions()
	if err != nil {
		return err
	}
	return installer.Run(opts, ioIn, ioOut)
}

func runUninstall(cmd *cobra.Command, args []string) error {
	opts, err := installOptions()
	if err != nil {
		return err
	}
	return installer.Uninstall(opts, ioIn, ioOut)
}

func installOptions() (installer.Options, error) {
	if !yesFlag && !installer.Interactive() {
		return installer.Options{}, fmt.Errorf("stdin is not a terminal; re-run with --yes")
	}
	return installer.Options{
		SettingsPath: settingsFlag,
		HookCommand:  hookCommand(),
		Yes:          yesFlag,
	}, nil
}

// hookCommand returns the command line the host should run for each tool
// call. The absolute path keeps the hook working when the host's PATH
// differs from the installing shell's.
func hookCommand() string {
	exe, err := os.Executable()
	if err != nil {
		return "rtkwrap hook"
	}
	return exe + " hook"
}
