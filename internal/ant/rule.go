// Package ant provides the core stepping engine for a generalized
// multi-color Langton's Ant. The package is UI-agnostic and deterministic:
// it knows nothing about palettes, terminals, or timing. The platform layer
// drives it by calling Advance once per rendered frame.
package ant

import (
	"fmt"
	"strings"
)

// Turn is the instruction associated with a cell color: rotate the ant a
// quarter turn left or right before it moves.
type Turn uint8

const (
	TurnLeft Turn = iota
	TurnRight
)

// String returns the rule symbol for the turn.
func (t Turn) String() string {
	if t == TurnLeft {
		return "L"
	}
	return "R"
}

// Rule is an immutable ordered sequence of turns, one per color index.
// Its length fixes the number of colors for the lifetime of a run.
type Rule struct {
	turns []Turn
}

// ParseRule builds a rule from a string over the alphabet {L, R}.
// Lowercase symbols are accepted. An empty or malformed string is an error;
// this is the only recoverable validation the engine exposes, everything
// else must be rejected by the config layer before a Sim is constructed.
func ParseRule(s string) (Rule, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Rule{}, fmt.Errorf("ant: rule must not be empty")
	}

	turns := make([]Turn, 0, len(s))
	for _, ch := range s {
		switch ch {
		case 'L', 'l':
			turns = append(turns, TurnLeft)
		case 'R', 'r':
			turns = append(turns, TurnRight)
		default:
			return Rule{}, fmt.Errorf("ant: invalid rule symbol %q in %q (want L or R)", ch, s)
		}
	}

	return Rule{turns: turns}, nil
}

// MustParseRule is like ParseRule but panics on error.
// Intended for built-in presets and tests.
func MustParseRule(s string) Rule {
	r, err := ParseRule(s)
	if err != nil {
		panic(err)
	}
	return r
}

// Len returns the number of turns, which equals the number of colors.
func (r Rule) Len() int {
	return len(r.turns)
}

// Turn returns the turn for the given color index.
// The index must be in [0, Len()); the stepper guarantees this.
func (r Rule) Turn(colorIndex int) Turn {
	return r.turns[colorIndex]
}

// String returns the rule in its symbol form, e.g. "RL".
func (r Rule) String() string {
	var sb strings.Builder
	sb.Grow(len(r.turns))
	for _, t := range r.turns {
		sb.WriteString(t.String())
	}
	return sb.String()
}
