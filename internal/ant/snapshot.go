package ant

// RunState describes the session state machine: running until a boundary
// hit or counter saturation stalls the ant, then stalled forever.
type RunState string

const (
	StateRunning RunState = "running"
	StateStalled RunState = "stalled"
)

// Snapshot captures the observable session state for display, run
// recording and determinism tests. Cell colors are read separately
// through Grid.
type Snapshot struct {
	Rule       string
	Dim        int
	Colors     int
	X          int
	Y          int
	Facing     Facing
	Iterations uint64
	Painted    int
	State      RunState
}

// Snapshot returns the current session snapshot.
func (s *Sim) Snapshot() Snapshot {
	state := StateRunning
	if s.ant.Stalled {
		state = StateStalled
	}

	return Snapshot{
		Rule:       s.rule.String(),
		Dim:        s.grid.Dim(),
		Colors:     s.rule.Len(),
		X:          s.ant.X,
		Y:          s.ant.Y,
		Facing:     s.ant.Facing,
		Iterations: s.ant.Iterations,
		Painted:    s.grid.PaintedCount(),
		State:      state,
	}
}
