package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/olegsobolev/tui-langton/internal/storage"
)

var (
	flagHistoryRule string
	flagHistoryTop  bool
	flagHistoryN    int
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recorded runs",
	Long: `Display past simulation runs from the history database.

By default the most recent runs are shown, newest first. With --top the
runs with the most iterations are shown instead.

Examples:
  langton history
  langton history --rule RL
  langton history --top --limit 5`,
	Args: cobra.NoArgs,
	Run:  runHistory,
}

func init() {
	historyCmd.Flags().StringVar(&flagHistoryRule, "rule", "", "Only show runs for this rule")
	historyCmd.Flags().BoolVar(&flagHistoryTop, "top", false, "Order by iteration count instead of recency")
	historyCmd.Flags().IntVar(&flagHistoryN, "limit", 10, "Maximum number of runs to show")
}

func runHistory(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening history database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	var runs []storage.RunRecord
	if flagHistoryTop {
		runs, err = store.LongestRuns(flagHistoryRule, flagHistoryN)
	} else {
		runs, err = store.RecentRuns(flagHistoryRule, flagHistoryN)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		os.Exit(1)
	}

	if flagHistoryRule != "" {
		fmt.Printf("Run History - rule %s\n", flagHistoryRule)
	} else {
		fmt.Println("Run History")
	}
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'langton run' to record the first one!")
		return
	}

	// Print header
	fmt.Printf("  %-14s  %-6s  %-12s  %-8s  %-8s  %s\n", "Rule", "Grid", "Iterations", "Stalled", "Time", "Date")
	fmt.Printf("  %-14s  %-6s  %-12s  %-8s  %-8s  %s\n", "----", "----", "----------", "-------", "----", "----")

	for _, r := range runs {
		stalled := "no"
		if r.Stalled {
			stalled = "yes"
		}
		dateStr := r.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-14s  %-6d  %-12d  %-8s  %-8s  %s\n",
			r.Rule, r.GridSize, r.Iterations, stalled, r.Duration.Round(time.Second), dateStr)
	}

	if flagHistoryRule != "" {
		stats, statsErr := store.StatsForRule(flagHistoryRule)
		if statsErr == nil && stats.Runs > 0 {
			fmt.Println()
			fmt.Printf("Runs: %d  Best: %d iterations  Average: %.0f iterations\n",
				stats.Runs, stats.MaxIterations, stats.AvgIterations)
		}
	}
}
