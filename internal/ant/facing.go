package ant

// Facing is the ant's current heading. Y increases downward
// (screen coordinates), so North decreases Y.
type Facing uint8

const (
	North Facing = iota
	East
	South
	West
)

// turnTable maps facing × turn to the new facing. This table determines the
// spiral/sweep geometry of the automaton; the displacement is always taken
// from the new facing, after the turn.
var turnTable = [4][2]Facing{
	North: {TurnLeft: West, TurnRight: East},
	East:  {TurnLeft: North, TurnRight: South},
	South: {TurnLeft: East, TurnRight: West},
	West:  {TurnLeft: South, TurnRight: North},
}

// Turned returns the facing after rotating a quarter turn.
func (f Facing) Turned(t Turn) Facing {
	return turnTable[f][t]
}

// Delta returns the unit displacement for one move in this facing.
func (f Facing) Delta() (dx, dy int) {
	switch f {
	case North:
		return 0, -1
	case East:
		return 1, 0
	case South:
		return 0, 1
	case West:
		return -1, 0
	default:
		return 0, 0
	}
}

// String returns a human-readable name for the facing.
func (f Facing) String() string {
	switch f {
	case North:
		return "north"
	case East:
		return "east"
	case South:
		return "south"
	case West:
		return "west"
	default:
		return "unknown"
	}
}
