package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/hpkotak/rtkwrap/internal/config"
)

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the effective configuration",
	RunE:  runConfigShow,
}

func init() {
	configCmd.AddCommand(configShowCmd)
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	if config.Exists() {
		_, _ = fmt.Fprintf(ioOut, "Config file: %s\n\n", config.Path())
	} else {
		_, _ = fmt.Fprintf(ioOut, "No config file at %s — showing built-in defaults.\n\n", config.Path())
	}
	_, _ = fmt.Fprint(ioOut, string(data))
	return nil
}
