package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Errorf("Default config should validate: %v", err)
	}
	if cfg.Rule != "RL" {
		t.Errorf("Expected default rule RL, got %s", cfg.Rule)
	}
	if cfg.GridSize != 150 {
		t.Errorf("Expected default grid size 150, got %d", cfg.GridSize)
	}
	if cfg.MovesPerSecond != 10 {
		t.Errorf("Expected default speed 10, got %d", cfg.MovesPerSecond)
	}
}

func TestValidateRejectsBadRule(t *testing.T) {
	for _, rule := range []string{"", "RLX", "1R", "no-such-preset"} {
		cfg := Default()
		cfg.Rule = rule
		if err := cfg.Validate(); err == nil {
			t.Errorf("Rule %q should be rejected", rule)
		}
	}
}

func TestValidateRejectsBadGridSize(t *testing.T) {
	for _, size := range []int{0, 9, -5, 1001, 100000} {
		cfg := Default()
		cfg.GridSize = size
		if err := cfg.Validate(); err == nil {
			t.Errorf("Grid size %d should be rejected", size)
		}
	}
}

func TestValidateGridSizeBounds(t *testing.T) {
	for _, size := range []int{10, 1000} {
		cfg := Default()
		cfg.GridSize = size
		if err := cfg.Validate(); err != nil {
			t.Errorf("Grid size %d should be accepted: %v", size, err)
		}
	}
}

func TestValidateRejectsBadSpeed(t *testing.T) {
	for _, mps := range []int{0, 3, 7, 60, -1, 2000} {
		cfg := Default()
		cfg.MovesPerSecond = mps
		if err := cfg.Validate(); err == nil {
			t.Errorf("Speed %d should be rejected", mps)
		}
	}
}

func TestValidateResolvesPresetName(t *testing.T) {
	cfg := Default()
	cfg.Rule = "cardioid"
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Preset name should validate: %v", err)
	}
	if cfg.Rule != "LLRR" {
		t.Errorf("Expected preset to resolve to LLRR, got %s", cfg.Rule)
	}
}

func TestFindPreset(t *testing.T) {
	p, ok := FindPreset("Classic")
	if !ok {
		t.Fatal("classic preset should exist")
	}
	if p.Rule != "RL" {
		t.Errorf("Expected classic rule RL, got %s", p.Rule)
	}

	if _, ok := FindPreset("nonexistent"); ok {
		t.Error("Unknown preset name should not resolve")
	}
}

func TestPresetsAreValidRules(t *testing.T) {
	for _, p := range Presets {
		cfg := Default()
		cfg.Rule = p.Rule
		if err := cfg.Validate(); err != nil {
			t.Errorf("Preset %s has invalid rule %q: %v", p.Name, p.Rule, err)
		}
	}
}

func TestSpeedPlan(t *testing.T) {
	cases := []struct {
		mps, fps, moves int
	}{
		{1, 1, 1},
		{10, 10, 1},
		{50, 50, 1},
		{100, 10, 10},
		{200, 20, 10},
		{500, 50, 10},
		{1000, 50, 20},
	}

	for _, c := range cases {
		fps, moves := SpeedPlan(c.mps)
		if fps != c.fps || moves != c.moves {
			t.Errorf("SpeedPlan(%d): expected (%d,%d), got (%d,%d)", c.mps, c.fps, c.moves, fps, moves)
		}
		// The plan must reproduce the requested rate exactly.
		if fps*moves != c.mps {
			t.Errorf("SpeedPlan(%d): fps*moves = %d", c.mps, fps*moves)
		}
	}
}

func TestSpeedStepping(t *testing.T) {
	if got := FasterSpeed(10); got != 20 {
		t.Errorf("FasterSpeed(10): expected 20, got %d", got)
	}
	if got := FasterSpeed(1000); got != 1000 {
		t.Errorf("FasterSpeed(1000) should saturate, got %d", got)
	}
	if got := SlowerSpeed(10); got != 5 {
		t.Errorf("SlowerSpeed(10): expected 5, got %d", got)
	}
	if got := SlowerSpeed(1); got != 1 {
		t.Errorf("SlowerSpeed(1) should saturate, got %d", got)
	}
}

func TestLoadCustomPath(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "custom.yaml")

	content := "rule: LLRR\ngrid_size: 200\nmoves_per_second: 50\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Rule != "LLRR" || cfg.GridSize != 200 || cfg.MovesPerSecond != 50 {
		t.Errorf("Unexpected config: %+v", cfg)
	}
}

func TestLoadMissingCustomPathFails(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("Load with missing explicit path should fail")
	}
}

func TestLoadFallsBackToDefault(t *testing.T) {
	// Run from a temp dir with no local config and HOME pointed away from
	// any real user config.
	tmpDir := t.TempDir()
	t.Setenv("HOME", tmpDir)

	oldWD, _ := os.Getwd()
	if err := os.Chdir(tmpDir); err != nil {
		t.Fatalf("Chdir failed: %v", err)
	}
	defer os.Chdir(oldWD)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Rule != "RL" || cfg.GridSize != 150 {
		t.Errorf("Expected embedded defaults, got %+v", cfg)
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	want := Config{Rule: "RLR", GridSize: 300, MovesPerSecond: 100, Seed: 7}
	if err := Save(path, want); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if got != want {
		t.Errorf("Round trip mismatch: %+v vs %+v", got, want)
	}
}
