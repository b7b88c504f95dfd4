package config

import (
	_ "embed"
)

//go:embed defaults/road.yaml
var defaultRoadYAML []byte

// DefaultRoadConfig returns the default Road Rush configuration.
func DefaultRoadConfig() RoadConfig {
	return RoadConfig{
		Field: FieldConfig{
			Width:  500,
			Height: 500,
		},
		Road: RoadLayout{
			Left:          100,
			Right:         400,
			LaneInset:     10,
			MarkerX:       245,
			MarkerWidth:   10,
			MarkerHeight:  30,
			MarkerSpacing: 50,
			MarkerCount:   10,
		},
		Player: PlayerConfig{
			StartX:       250,
			StartY:       400,
			MinX:         100,
			MaxX:         370,
			MinY:         0,
			MaxY:         450,
			Step:         10,
			SpriteSize:   50,
			HitboxWidth:  30,
			HitboxHeight: 50,
		},
		Obstacles: ObstacleConfig{
			SpawnMinX:    100,
			SpawnRange:   280,
			SpawnY:       -50,
			ExitY:        500,
			SpriteSize:   50,
			HitboxWidth:  30,
			HitboxHeight: 50,
		},
		Timing: TimingConfig{
			AdvanceIntervalMs: 50,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultRoadYAML
}
