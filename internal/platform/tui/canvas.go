package tui

import "strings"

// DefaultColor marks a canvas cell drawn with the terminal's default style
// (HUD text, the ant glyph, unpainted board).
const DefaultColor = -1

// cell pairs a rune with a palette color index.
type cell struct {
	r     rune
	color int
}

// Canvas is a 2D colored character buffer for composing one frame.
// It decouples drawing from the terminal: the view draws with simple cell
// operations and render() turns the buffer into a styled string.
type Canvas struct {
	width  int
	height int
	cells  []cell
}

// NewCanvas creates a canvas with the given dimensions, cleared to spaces.
func NewCanvas(width, height int) *Canvas {
	c := &Canvas{width: width, height: height}
	c.cells = make([]cell, width*height)
	c.Clear()
	return c
}

// Width returns the canvas width in characters.
func (c *Canvas) Width() int {
	return c.width
}

// Height returns the canvas height in characters.
func (c *Canvas) Height() int {
	return c.height
}

// Resize changes the canvas dimensions, discarding content.
func (c *Canvas) Resize(width, height int) {
	if width == c.width && height == c.height {
		return
	}
	c.width = width
	c.height = height
	c.cells = make([]cell, width*height)
	c.Clear()
}

// Clear fills the canvas with spaces in the default color.
func (c *Canvas) Clear() {
	for i := range c.cells {
		c.cells[i] = cell{r: ' ', color: DefaultColor}
	}
}

// Set places a rune with a palette color at (x, y).
// Out-of-bounds coordinates are silently ignored so the view can draw
// without clipping every call site.
func (c *Canvas) Set(x, y int, r rune, color int) {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return
	}
	c.cells[y*c.width+x] = cell{r: r, color: color}
}

// DrawText writes a string horizontally starting at (x, y) in the
// default color. Runes beyond the canvas edge are clipped.
func (c *Canvas) DrawText(x, y int, text string) {
	i := 0
	for _, r := range text {
		c.Set(x+i, y, r, DefaultColor)
		i++
	}
}

// DrawTextCentered draws text centered horizontally at the given row.
func (c *Canvas) DrawTextCentered(y int, text string) {
	x := (c.width - len([]rune(text))) / 2
	c.DrawText(x, y, text)
}

// Plain converts the canvas to an unstyled string, rows joined by
// newlines. Used by tests; the model renders through palette styles.
func (c *Canvas) Plain() string {
	var sb strings.Builder
	sb.Grow(c.width*c.height + c.height)

	for y := 0; y < c.height; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}
		for x := 0; x < c.width; x++ {
			sb.WriteRune(c.cells[y*c.width+x].r)
		}
	}
	return sb.String()
}
