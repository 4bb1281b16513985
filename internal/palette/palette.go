// Package palette generates the display colors for a simulation run:
// one distinct color per rule symbol, none of which may collide with the
// background used for unpainted cells. The engine itself never sees color
// values, only indices; the TUI resolves indices against a Palette.
package palette

import (
	"fmt"
	"math/rand"
)

// Background is the hex color reserved for unpainted cells. Generated
// palettes never contain it, so a painted cell is always visible.
const Background = "#000000"

// Palette is an ordered list of hex colors ("#rrggbb"), one per color index.
type Palette []string

// Generate produces n distinct colors, seeded for reproducibility: the same
// seed always yields the same palette, which keeps SSH reconnects and
// restarts visually stable.
func Generate(n int, seed int64) Palette {
	rng := rand.New(rand.NewSource(seed))

	p := make(Palette, 0, n)
	seen := map[string]bool{Background: true}

	for len(p) < n {
		c := randomColor(rng)
		if seen[c] {
			continue
		}
		seen[c] = true
		p = append(p, c)
	}

	return p
}

// randomColor draws one color, keeping each channel off the extremes so the
// result reads against both dark and light terminal backgrounds.
func randomColor(rng *rand.Rand) string {
	r := 32 + rng.Intn(192)
	g := 32 + rng.Intn(192)
	b := 32 + rng.Intn(192)
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}

// Color returns the hex color for a color index.
// The index must be in [0, len(p)); the renderer guarantees this.
func (p Palette) Color(index int) string {
	return p[index]
}

// Len returns the number of colors.
func (p Palette) Len() int {
	return len(p)
}
