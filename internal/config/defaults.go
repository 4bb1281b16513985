package config

import (
	_ "embed"

	"gopkg.in/yaml.v3"
)

//go:embed defaults/langton.yaml
var defaultYAML []byte

// Default returns the built-in configuration: the classic RL ant on a
// 150-cell board at 10 moves per second, matching the historical defaults
// of the simulator.
func Default() Config {
	return Config{
		Rule:           "RL",
		GridSize:       150,
		MovesPerSecond: 10,
		Seed:           0,
	}
}

// defaultFromEmbed parses the embedded default YAML, falling back to the
// hardcoded Default if the embed is unreadable.
func defaultFromEmbed() Config {
	cfg := Default()
	if err := yaml.Unmarshal(defaultYAML, &cfg); err != nil {
		return Default()
	}
	return cfg
}
