package cmd

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/hpkotak/rtkwrap/internal/hook"
	"github.com/hpkotak/rtkwrap/internal/logging"
	"github.com/hpkotak/rtkwrap/internal/stats"
)

var hookCmd = &cobra.Command{
	Use:   "hook",
	Short: "Handle one PreToolUse request on stdin",
	Long: `Reads a PreToolUse JSON request from stdin and, when the command is
eligible, writes an updatedInput response to stdout. The host invokes this
once per tool call; it is not meant to be run by hand.`,
	Args: cobra.NoArgs,
	RunE: runHook,
}

func init() {
	rootCmd.AddCommand(hookCmd)
}

func runHook(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()

	logger, err := logging.New(cfg.LogDecisions, logging.Path())
	if err != nil {
		// The decision log is best-effort; the hook itself must still run.
		logger = zap.NewNop()
	}
	defer func() { _ = logger.Sync() }()

	h := &hook.Handler{
		Config:   cfg.Engine(),
		Recorder: stats.NewFileRecorder(stats.Path()),
		Logger:   logger,
	}
	return h.Run(ioIn, ioOut)
}
