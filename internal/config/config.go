// Package config provides YAML-based simulation configuration with
// validation. Recoverable input errors (malformed rule symbols,
// out-of-range grid size, unsupported speed) are rejected here, before a
// core simulation is ever constructed.
package config

import (
	"fmt"

	"github.com/olegsobolev/tui-langton/internal/ant"
)

// Grid size bounds mirror the engine's contract.
const (
	MinGridSize = ant.MinDim
	MaxGridSize = ant.MaxDim
)

// Speeds are the supported moves-per-second values. Each maps to a frame
// rate and a moves-per-tick multiplier (see SpeedPlan); arbitrary values
// would force fractional moves per frame.
var Speeds = []int{1, 2, 5, 10, 20, 50, 100, 200, 500, 1000}

// Config holds the parameters for one simulation run.
type Config struct {
	// Rule is the turn sequence over {L, R}, or the name of a built-in
	// preset. Its length fixes the number of colors.
	Rule string `yaml:"rule"`

	// GridSize is the board side length in cells.
	GridSize int `yaml:"grid_size"`

	// MovesPerSecond is the simulation rate; must be one of Speeds.
	MovesPerSecond int `yaml:"moves_per_second"`

	// Seed drives palette generation. 0 means derive from current time.
	Seed int64 `yaml:"seed"`
}

// Validate checks the config and resolves preset names in Rule to their
// turn sequences. After a nil return, Rule parses cleanly and every field
// is inside the engine's contract.
func (c *Config) Validate() error {
	if p, ok := FindPreset(c.Rule); ok {
		c.Rule = p.Rule
	}
	if _, err := ant.ParseRule(c.Rule); err != nil {
		return err
	}

	if c.GridSize < MinGridSize || c.GridSize > MaxGridSize {
		return fmt.Errorf("config: grid size %d out of range [%d, %d]", c.GridSize, MinGridSize, MaxGridSize)
	}

	if !validSpeed(c.MovesPerSecond) {
		return fmt.Errorf("config: moves per second %d not supported (want one of %v)", c.MovesPerSecond, Speeds)
	}

	return nil
}

func validSpeed(mps int) bool {
	for _, s := range Speeds {
		if s == mps {
			return true
		}
	}
	return false
}

// SpeedPlan converts a moves-per-second value to a frame rate and the
// number of engine steps to run per frame. Low speeds step once per frame;
// high speeds batch steps so the frame rate stays at or below 50.
func SpeedPlan(mps int) (fps, movesPerTick int) {
	switch mps {
	case 1, 2, 5, 10, 20, 50:
		return mps, 1
	case 100:
		return 10, 10
	case 200:
		return 20, 10
	case 500:
		return 50, 10
	case 1000:
		return 50, 20
	default:
		return 1, 1
	}
}

// FasterSpeed returns the next supported speed above mps, or mps if it is
// already the fastest.
func FasterSpeed(mps int) int {
	for i, s := range Speeds {
		if s == mps && i < len(Speeds)-1 {
			return Speeds[i+1]
		}
	}
	return mps
}

// SlowerSpeed returns the next supported speed below mps, or mps if it is
// already the slowest.
func SlowerSpeed(mps int) int {
	for i, s := range Speeds {
		if s == mps && i > 0 {
			return Speeds[i-1]
		}
	}
	return mps
}
