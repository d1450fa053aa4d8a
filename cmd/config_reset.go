package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hpkotak/rtkwrap/internal/config"
)

var configResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Restore the built-in default configuration",
	RunE:  runConfigReset,
}

func init() {
	configCmd.AddCommand(configResetCmd)
}

func runConfigReset(cmd *cobra.Command, args []string) error {
	if err := config.Save(config.Default()); err != nil {
		return err
	}
	_, _ = fmt.Fprintf(ioOut, "Config reset to defaults at %s\n", config.Path())
	return nil
}
