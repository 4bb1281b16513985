package ant

import "math"

// Ant is the mobile automaton: a grid position, a heading, a saturating
// iteration counter and a terminal stall flag. Once Stalled is true it
// stays true and the ant never moves or paints again.
type Ant struct {
	X, Y       int
	Facing     Facing
	Stalled    bool
	Iterations uint64
}

// Sim is a single simulation session. It owns the grid and the ant
// exclusively; the rule is shared read-only. All mutation happens inside
// Step, synchronously, so a Sim must be driven from one goroutine.
type Sim struct {
	rule Rule
	grid *Grid
	ant  Ant
}

// NewSim creates a session with the ant centered on the grid, facing north.
// The rule must be non-empty and dim within [MinDim, MaxDim]; the config
// layer validates both before calling here.
func NewSim(rule Rule, dim int) *Sim {
	center := dim / 2
	return NewSimAt(rule, dim, center, center)
}

// NewSimAt creates a session with the ant at (x, y), facing north.
func NewSimAt(rule Rule, dim, x, y int) *Sim {
	return &Sim{
		rule: rule,
		grid: NewGrid(dim),
		ant:  Ant{X: x, Y: y, Facing: North},
	}
}

// Rule returns the rule this session runs under.
func (s *Sim) Rule() Rule {
	return s.rule
}

// Grid returns the board for rendering. The caller must treat it as
// read-only; only Step writes cells.
func (s *Sim) Grid() *Grid {
	return s.grid
}

// Ant returns a copy of the current ant state.
func (s *Sim) Ant() Ant {
	return s.ant
}

// Step advances the simulation by exactly one move.
//
// A stalled ant is a no-op. Otherwise the cell under the ant is read
// (Unpainted counts as color 0 for the rule lookup), repainted to the next
// color in the cycle, the ant turns per the rule and then attempts one move
// in its new facing. A move that would leave the grid stalls the ant in
// place; the boundary cell keeps its fresh paint and the step still counts
// one iteration. A counter already at its ceiling stalls the ant before
// anything is painted or moved, leaving the counter unchanged.
func (s *Sim) Step() {
	if s.ant.Stalled {
		return
	}
	if s.ant.Iterations == math.MaxUint64 {
		s.ant.Stalled = true
		return
	}

	c := s.grid.At(s.ant.X, s.ant.Y)
	if c == Unpainted {
		c = 0
	}

	turn := s.rule.Turn(c)

	// Repaint from the original color, so a first visit writes 1, not 0
	// (unless the rule has a single color).
	s.grid.Set(s.ant.X, s.ant.Y, (c+1)%s.rule.Len())

	s.ant.Facing = s.ant.Facing.Turned(turn)

	dx, dy := s.ant.Facing.Delta()
	nx, ny := s.ant.X+dx, s.ant.Y+dy
	if !s.grid.InBounds(nx, ny) {
		s.ant.Stalled = true
	} else {
		s.ant.X, s.ant.Y = nx, ny
	}

	s.ant.Iterations++
}

// Advance performs up to k steps, returning early once the ant stalls.
// This is the per-frame entry point for the platform driver: k decouples
// simulation rate from frame rate.
func (s *Sim) Advance(k int) {
	for i := 0; i < k && !s.ant.Stalled; i++ {
		s.Step()
	}
}

// Stalled reports whether the session has reached its terminal state.
func (s *Sim) Stalled() bool {
	return s.ant.Stalled
}
