package config

import "strings"

// Preset is a named, well-known turn rule.
type Preset struct {
	Name        string
	Rule        string
	Description string
}

// Presets lists the built-in rules, selectable by name wherever a rule
// string is accepted.
var Presets = []Preset{
	{"classic", "RL", "Langton's original two-color ant; builds a highway after ~10k moves"},
	{"chaos", "RLR", "Grows chaotically with no known long-term order"},
	{"cardioid", "LLRR", "Symmetric growth in a cardioid-shaped blob"},
	{"filler", "LRRRRRLLR", "Fills space around itself in a growing square"},
	{"highway", "LLRRRLRLRLLR", "Builds a convoluted highway"},
	{"triangle", "RRLLLRLLLRRR", "Fills a triangular region"},
	{"spiral", "LRRL", "Winds into a tight spiral before escaping"},
}

// FindPreset looks up a preset by name, case-insensitively.
func FindPreset(name string) (Preset, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, p := range Presets {
		if p.Name == name {
			return p, true
		}
	}
	return Preset{}, false
}
