package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/olegsobolev/tui-langton/internal/config"
)

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "List the built-in rule presets",
	Long: `Shows the named rule presets that can be passed to 'langton run --rule'.

A rule is a sequence of L and R symbols. The symbol at position i tells the
ant which way to turn on a cell painted with color i. Any custom sequence
works too, e.g. 'langton run --rule LRRLLR'.`,
	Args: cobra.NoArgs,
	Run:  runRules,
}

func runRules(_ *cobra.Command, _ []string) {
	presets := config.Presets

	fmt.Println("Built-in rule presets:")
	fmt.Println()

	// Calculate column widths
	maxNameLen := 4 // "Name" header
	maxRuleLen := 4 // "Rule" header
	for _, p := range presets {
		if len(p.Name) > maxNameLen {
			maxNameLen = len(p.Name)
		}
		if len(p.Rule) > maxRuleLen {
			maxRuleLen = len(p.Rule)
		}
	}

	// Print header
	fmt.Printf("  %-*s  %-*s  %s\n", maxNameLen, "Name", maxRuleLen, "Rule", "Description")
	fmt.Printf("  %-*s  %-*s  %s\n", maxNameLen, "----", maxRuleLen, "----", "-----------")

	for _, p := range presets {
		fmt.Printf("  %-*s  %-*s  %s\n", maxNameLen, p.Name, maxRuleLen, p.Rule, p.Description)
	}

	fmt.Println()
	fmt.Println("Run 'langton run --rule <name>' to try a preset.")
}
