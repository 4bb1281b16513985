// langton is a terminal simulator for generalized multi-color Langton's
// Ants.
//
// Usage:
//
//	langton run               - Run a simulation (interactive setup if no flags)
//	langton rules             - List the built-in rule presets
//	langton history           - Show recorded runs
//	langton serve             - Start SSH server for remote sessions
//
// Global flags:
//
//	--config <path>  - Simulation config YAML (default: ~/.langton/config.yaml)
//	--db <path>      - Run-history database (default: ~/.langton/runs.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig string
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "langton",
	Short: "Langton's Ant - generalized multi-color ant simulation in your terminal",
	Long: `langton simulates generalized Langton's Ants: a mobile automaton that
walks a bounded grid, turning left or right according to the color of the
cell under it and repainting that cell to the next color in the cycle.

Rules are sequences over L and R; each symbol adds one color. The classic
two-color ant is "RL".

Examples:
  langton run
  langton run --rule LLRR --size 300 --speed 100
  langton run --rule highway
  langton rules
  langton history --rule RL
  langton serve --ssh :23235`,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.langton/runs.db", "Path to run-history database")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(rulesCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(serveCmd)
}
