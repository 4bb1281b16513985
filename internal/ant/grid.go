package ant

import "fmt"

// Unpainted marks a cell the ant has never visited. It compares unequal to
// every valid color index and renders as the terminal background.
const Unpainted = -1

// MinDim and MaxDim bound the grid side length. The config layer rejects
// sizes outside this range before a grid is ever allocated.
const (
	MinDim = 10
	MaxDim = 1000
)

// Grid is a fixed-size square board of color indices, stored row-major:
// index = y*dim + x. Cells hold either Unpainted or an index in [0, N)
// where N is the rule length. The grid is mutated only by the stepper;
// the renderer reads it between frames.
type Grid struct {
	dim   int
	cells []int
}

// NewGrid allocates a dim×dim grid with every cell Unpainted.
func NewGrid(dim int) *Grid {
	g := &Grid{
		dim:   dim,
		cells: make([]int, dim*dim),
	}
	for i := range g.cells {
		g.cells[i] = Unpainted
	}
	return g
}

// Dim returns the side length.
func (g *Grid) Dim() int {
	return g.dim
}

// InBounds reports whether (x, y) lies on the grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.dim && y >= 0 && y < g.dim
}

// At returns the color index at (x, y), or Unpainted.
// Out-of-bounds access is a contract violation and panics: the stepper
// never steps off the grid, so a bad coordinate means a wiring bug.
func (g *Grid) At(x, y int) int {
	g.check(x, y)
	return g.cells[y*g.dim+x]
}

// Set writes a color index at (x, y). Same bounds contract as At.
func (g *Grid) Set(x, y, colorIndex int) {
	g.check(x, y)
	g.cells[y*g.dim+x] = colorIndex
}

func (g *Grid) check(x, y int) {
	if !g.InBounds(x, y) {
		panic(fmt.Sprintf("ant: grid access out of bounds: (%d,%d) on %d×%d grid", x, y, g.dim, g.dim))
	}
}

// PaintedCount returns the number of cells the ant has painted at least once.
func (g *Grid) PaintedCount() int {
	n := 0
	for _, c := range g.cells {
		if c != Unpainted {
			n++
		}
	}
	return n
}
