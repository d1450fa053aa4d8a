package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hpkotak/rtkwrap/internal/config"
)

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Update a configuration value",
	Long: `Update a configuration value. Supported keys:
  enabled        turn rewriting on or off (true/false)
  log_decisions  log every hook decision to ` + "~/.rtkwrap/rtkwrap.log" + ` (true/false)
  patterns       comma-separated list of command prefixes to wrap
  alias.<head>   replacement for a head token (empty value removes the alias)

Examples:
  rtkwrap config set enabled false
  rtkwrap config set patterns "git status,git diff,ls,cat"
  rtkwrap config set alias.cat "rtk read"
  rtkwrap config set alias.cat ""`,
	Args: cobra.ExactArgs(2),
	RunE: runConfigSet,
}

func init() {
	configCmd.AddCommand(configSetCmd)
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	key, value := args[0], args[1]

	cfg := loadConfig()

	switch {
	case key == "enabled":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("enabled must be true or false, got %q", value)
		}
		cfg.Enabled = b

	case key == "log_decisions":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("log_decisions must be true or false, got %q", value)
		}
		cfg.LogDecisions = b

	case key == "patterns":
		var patterns []string
		for _, p := range strings.Split(value, ",") {
			p = strings.TrimSpace(p)
			if p != "" {
				patterns = append(patterns, p)
			}
		}
		if len(patterns) == 0 {
			return fmt.Errorf("patterns cannot be empty; disable rewriting with 'config set enabled false' instead")
		}
		cfg.Patterns = patterns

	case strings.HasPrefix(key, "alias."):
		head := strings.TrimPrefix(key, "alias.")
		if head == "" || strings.ContainsAny(head, " \t") {
			return fmt.Errorf("alias key must be a single token, got %q", head)
		}
		if cfg.Aliases == nil {
			cfg.Aliases = map[string]string{}
		}
		if strings.TrimSpace(value) == "" {
			delete(cfg.Aliases, head)
		} else {
			cfg.Aliases[head] = value
		}

	default:
		return fmt.Errorf("unknown config key: %s", key)
	}

	if err := config.Save(cfg); err != nil {
		return err
	}

	_, _ = fmt.Fprintf(ioOut, "Set %s = %s\n", key, value)
	return nil
}
