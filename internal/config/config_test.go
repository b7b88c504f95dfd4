package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLookupDifficulty(t *testing.T) {
	tests := []struct {
		name     string
		speed    float64
		interval time.Duration
	}{
		{"easy", 3, 1500 * time.Millisecond},
		{"medium", 5, 1000 * time.Millisecond},
		{"hard", 7, 750 * time.Millisecond},
		{"brutal", 10, 500 * time.Millisecond},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p, err := LookupDifficulty(tc.name)
			if err != nil {
				t.Fatalf("LookupDifficulty(%q) failed: %v", tc.name, err)
			}
			if p.Speed != tc.speed || p.SpawnInterval != tc.interval {
				t.Errorf("LookupDifficulty(%q) = (%v, %v), expected (%v, %v)",
					tc.name, p.Speed, p.SpawnInterval, tc.speed, tc.interval)
			}
			if string(p.Name) != tc.name {
				t.Errorf("profile name = %q, expected %q", p.Name, tc.name)
			}
		})
	}
}

func TestLookupDifficultyUnknown(t *testing.T) {
	for _, name := range []string{"", "normal", "Easy", "HARD", "nightmare"} {
		_, err := LookupDifficulty(name)
		if !errors.Is(err, ErrUnknownDifficulty) {
			t.Errorf("LookupDifficulty(%q) error = %v, expected ErrUnknownDifficulty", name, err)
		}
	}
}

func TestMustLookupDifficultyPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustLookupDifficulty should panic on unknown name")
		}
	}()
	MustLookupDifficulty("normal")
}

func TestDifficultyNamesOrder(t *testing.T) {
	names := DifficultyNames()
	expected := []string{"easy", "medium", "hard", "brutal"}
	if len(names) != len(expected) {
		t.Fatalf("DifficultyNames() = %v", names)
	}
	for i := range expected {
		if names[i] != expected[i] {
			t.Errorf("DifficultyNames()[%d] = %q, expected %q", i, names[i], expected[i])
		}
	}

	// Callers cannot mutate the registry
	profiles := Difficulties()
	profiles[0].Speed = 99
	if MustLookupDifficulty(DifficultyEasy).Speed != 3 {
		t.Error("Difficulties() should return a copy")
	}
}

func TestEmbeddedDefaultMatchesHardcoded(t *testing.T) {
	cfg, err := ParseRoad(DefaultYAML())
	if err != nil {
		t.Fatalf("ParseRoad(embedded) failed: %v", err)
	}
	if cfg != DefaultRoadConfig() {
		t.Errorf("embedded default differs from DefaultRoadConfig():\n%+v\n%+v", cfg, DefaultRoadConfig())
	}
	if cfg.Timing.AdvanceInterval() != 50*time.Millisecond {
		t.Errorf("AdvanceInterval() = %v, expected 50ms", cfg.Timing.AdvanceInterval())
	}
}

func TestParseRoadPartialOverride(t *testing.T) {
	cfg, err := ParseRoad([]byte("player:\n  step: 25\ntiming:\n  advance_interval_ms: 40\n"))
	if err != nil {
		t.Fatalf("ParseRoad failed: %v", err)
	}
	if cfg.Player.Step != 25 {
		t.Errorf("Player.Step = %v, expected 25", cfg.Player.Step)
	}
	if cfg.Timing.AdvanceIntervalMs != 40 {
		t.Errorf("AdvanceIntervalMs = %d, expected 40", cfg.Timing.AdvanceIntervalMs)
	}
	// Untouched keys keep their defaults
	if cfg.Player.MaxX != 370 || cfg.Obstacles.ExitY != 500 {
		t.Errorf("defaults lost: %+v", cfg)
	}
}

func TestParseRoadInvalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"inverted player bounds", "player:\n  min_x: 400\n  max_x: 100\n"},
		{"zero step", "player:\n  step: 0\n"},
		{"zero tick", "timing:\n  advance_interval_ms: 0\n"},
		{"road inverted", "road:\n  left: 400\n  right: 100\n"},
		{"malformed yaml", "player: [unclosed"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := ParseRoad([]byte(tc.yaml)); err == nil {
				t.Error("ParseRoad should fail")
			}
		})
	}
}

func TestLoadRoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "road.yaml")
	if err := os.WriteFile(path, []byte("obstacles:\n  exit_y: 450\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadRoad(path)
	if err != nil {
		t.Fatalf("LoadRoad failed: %v", err)
	}
	if cfg.Obstacles.ExitY != 450 {
		t.Errorf("ExitY = %v, expected 450", cfg.Obstacles.ExitY)
	}

	if _, err := LoadRoad(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("LoadRoad should fail for a missing custom path")
	}
}
