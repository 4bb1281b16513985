package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/olegsobolev/tui-langton/internal/palette"
)

// paintedRune is the glyph used for every painted cell; its foreground
// color carries the cell's palette color.
const paintedRune = '█'

// buildStyles resolves a palette into one lipgloss style per color index.
func buildStyles(p palette.Palette) []lipgloss.Style {
	styles := make([]lipgloss.Style, p.Len())
	for i := range styles {
		styles[i] = lipgloss.NewStyle().Foreground(lipgloss.Color(p.Color(i)))
	}
	return styles
}

// renderCanvas converts a canvas to a styled string for display.
// Adjacent cells with the same color are grouped to minimize ANSI escape
// sequences, which matters at 1000 moves per second on large grids.
func renderCanvas(c *Canvas, styles []lipgloss.Style) string {
	defaultStyle := lipgloss.NewStyle()

	var sb strings.Builder
	sb.Grow(c.width*c.height*2 + c.height)

	for y := 0; y < c.height; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < c.width {
			startColor := c.cells[y*c.width+x].color

			var run strings.Builder
			for x < c.width && c.cells[y*c.width+x].color == startColor {
				run.WriteRune(c.cells[y*c.width+x].r)
				x++
			}

			if startColor >= 0 && startColor < len(styles) {
				sb.WriteString(styles[startColor].Render(run.String()))
			} else {
				sb.WriteString(defaultStyle.Render(run.String()))
			}
		}
	}
	return sb.String()
}
