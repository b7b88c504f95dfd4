// Package config provides YAML-based game configuration loading and the
// fixed difficulty registry.
package config

import "time"

// RoadConfig contains the play-field geometry and timing for Road Rush.
// All positions are in world units; the field origin is the top-left corner.
type RoadConfig struct {
	Field     FieldConfig    `yaml:"field"`
	Road      RoadLayout     `yaml:"road"`
	Player    PlayerConfig   `yaml:"player"`
	Obstacles ObstacleConfig `yaml:"obstacles"`
	Timing    TimingConfig   `yaml:"timing"`
}

// FieldConfig defines the drawable area.
type FieldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// RoadLayout defines the road surface and lane markers.
type RoadLayout struct {
	Left          float64 `yaml:"left"`
	Right         float64 `yaml:"right"`
	LaneInset     float64 `yaml:"lane_inset"`
	MarkerX       float64 `yaml:"marker_x"`
	MarkerWidth   float64 `yaml:"marker_width"`
	MarkerHeight  float64 `yaml:"marker_height"`
	MarkerSpacing float64 `yaml:"marker_spacing"`
	MarkerCount   int     `yaml:"marker_count"`
}

// PlayerConfig defines the player vehicle.
type PlayerConfig struct {
	StartX       float64 `yaml:"start_x"`
	StartY       float64 `yaml:"start_y"`
	MinX         float64 `yaml:"min_x"`
	MaxX         float64 `yaml:"max_x"`
	MinY         float64 `yaml:"min_y"`
	MaxY         float64 `yaml:"max_y"`
	Step         float64 `yaml:"step"`
	SpriteSize   float64 `yaml:"sprite_size"`
	HitboxWidth  float64 `yaml:"hitbox_width"`
	HitboxHeight float64 `yaml:"hitbox_height"`
}

// ObstacleConfig defines spawning and removal of obstacle vehicles.
// The hitbox is narrower than the sprite; this matches the classic feel of
// the game and is kept on purpose.
type ObstacleConfig struct {
	SpawnMinX    float64 `yaml:"spawn_min_x"`
	SpawnRange   float64 `yaml:"spawn_range"` // x is drawn from [SpawnMinX, SpawnMinX+SpawnRange)
	SpawnY       float64 `yaml:"spawn_y"`
	ExitY        float64 `yaml:"exit_y"` // Obstacles with y > ExitY leave the field and score
	SpriteSize   float64 `yaml:"sprite_size"`
	HitboxWidth  float64 `yaml:"hitbox_width"`
	HitboxHeight float64 `yaml:"hitbox_height"`
}

// TimingConfig defines the fixed advance tick.
type TimingConfig struct {
	AdvanceIntervalMs int `yaml:"advance_interval_ms"`
}

// AdvanceInterval returns the advance tick as a duration.
func (t TimingConfig) AdvanceInterval() time.Duration {
	return time.Duration(t.AdvanceIntervalMs) * time.Millisecond
}
