package cmd

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/hpkotak/rtkwrap/internal/stats"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show how many commands have been rewritten, by head token",
	RunE:  runStats,
}

func init() {
	rootCmd.AddCommand(statsCmd)
}

func runStats(cmd *cobra.Command, args []string) error {
	counts, err := stats.Load(stats.Path())
	if err != nil {
		return fmt.Errorf("loading stats: %w", err)
	}

	if len(counts) == 0 {
		_, _ = fmt.Fprintln(ioOut, "No rewrites recorded yet.")
		return nil
	}

	heads := make([]string, 0, len(counts))
	total := 0
	for head, n := range counts {
		heads = append(heads, head)
		total += n
	}
	sort.Slice(heads, func(i, j int) bool {
		if counts[heads[i]] != counts[heads[j]] {
			return counts[heads[i]] > counts[heads[j]]
		}
		return heads[i] < heads[j]
	})

	for _, head := range heads {
		_, _ = fmt.Fprintf(ioOut, "%6d  %s\n", counts[head], head)
	}
	_, _ = fmt.Fprintf(ioOut, "%6d  total\n", total)
	return nil
}
