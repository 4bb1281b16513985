package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/olegsobolev/tui-langton/internal/config"
	"github.com/olegsobolev/tui-langton/internal/platform/tui"
	"github.com/olegsobolev/tui-langton/internal/storage"
)

var (
	flagRule  string
	flagSize  int
	flagSpeed int
	flagSeed  int64
	flagSetup bool
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run a simulation",
	Long: `Start a simulation session.

With no flags, an interactive setup form collects the rule, grid size and
speed, prefilled from the config file. Flags skip the form.

Controls during the run:
  Space/P    - Pause
  +/-        - Change speed
  R          - Restart with the same parameters
  Q/Ctrl+C   - Quit (the run is recorded in the history)

Examples:
  langton run
  langton run --rule RL --size 150 --speed 10
  langton run --rule cardioid --speed 500
  langton run --setup --config ./my-ant.yaml`,
	Args: cobra.NoArgs,
	Run:  runRun,
}

func init() {
	runCmd.Flags().StringVar(&flagRule, "rule", "", "Turn rule (L/R sequence or preset name)")
	runCmd.Flags().IntVar(&flagSize, "size", 0, "Grid side length in cells")
	runCmd.Flags().IntVar(&flagSpeed, "speed", 0, "Moves per second")
	runCmd.Flags().Int64Var(&flagSeed, "seed", 0, "Palette seed (0 = random based on time)")
	runCmd.Flags().BoolVar(&flagSetup, "setup", false, "Always show the interactive setup form")
}

func runRun(cmd *cobra.Command, _ []string) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Overlay CLI flags on the loaded config.
	if flagRule != "" {
		cfg.Rule = flagRule
	}
	if flagSize != 0 {
		cfg.GridSize = flagSize
	}
	if flagSpeed != 0 {
		cfg.MovesPerSecond = flagSpeed
	}
	if flagSeed != 0 {
		cfg.Seed = flagSeed
	}

	// No explicit parameters means interactive setup.
	interactive := flagSetup ||
		(!cmd.Flags().Changed("rule") && !cmd.Flags().Changed("size") && !cmd.Flags().Changed("speed"))

	if interactive {
		selected, setupErr := tui.RunSetup(cfg)
		if setupErr != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", setupErr)
			os.Exit(1)
		}
		if selected == nil {
			// User cancelled the form.
			return
		}
		selected.Seed = cfg.Seed
		cfg = *selected
	}

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open run-history database: %v\n", err)
		// Continue without storage - the simulation still works
		store = nil
	}

	runErr := tui.Run(cfg, store, width, height)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running simulation: %v\n", runErr)
		os.Exit(1)
	}
}
