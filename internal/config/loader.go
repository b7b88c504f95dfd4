package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ConfigFile is the file name searched for in the config directories.
const ConfigFile = "road.yaml"

// LoadRoad loads Road Rush configuration.
// Search order: customPath -> ~/.roadrush/configs/road.yaml -> ./configs/road.yaml -> embedded default
func LoadRoad(customPath string) (RoadConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return RoadConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := ParseRoad(data)
		if err != nil {
			return RoadConfig{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(ConfigFile); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := ParseRoad(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", ConfigFile)); err == nil {
		if cfg, err := ParseRoad(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := ParseRoad(defaultRoadYAML)
	if err != nil {
		return DefaultRoadConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// ParseRoad decodes YAML on top of the defaults, so a file only needs the
// keys it changes, and validates the result.
func ParseRoad(data []byte) (RoadConfig, error) {
	cfg := DefaultRoadConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return RoadConfig{}, err
	}
	if err := cfg.Validate(); err != nil {
		return RoadConfig{}, err
	}
	return cfg, nil
}

// Validate rejects geometry the game cannot run with.
func (c RoadConfig) Validate() error {
	var errs []error

	if c.Field.Width <= 0 || c.Field.Height <= 0 {
		errs = append(errs, fmt.Errorf("field size must be positive, got %vx%v", c.Field.Width, c.Field.Height))
	}
	if c.Road.Left >= c.Road.Right {
		errs = append(errs, fmt.Errorf("road left %v must be less than right %v", c.Road.Left, c.Road.Right))
	}
	if c.Player.MinX > c.Player.MaxX || c.Player.MinY > c.Player.MaxY {
		errs = append(errs, errors.New("player bounds are inverted"))
	}
	if c.Player.StartX < c.Player.MinX || c.Player.StartX > c.Player.MaxX ||
		c.Player.StartY < c.Player.MinY || c.Player.StartY > c.Player.MaxY {
		errs = append(errs, errors.New("player start lies outside player bounds"))
	}
	if c.Player.Step <= 0 {
		errs = append(errs, fmt.Errorf("player step must be positive, got %v", c.Player.Step))
	}
	if c.Player.HitboxWidth <= 0 || c.Player.HitboxHeight <= 0 ||
		c.Obstacles.HitboxWidth <= 0 || c.Obstacles.HitboxHeight <= 0 {
		errs = append(errs, errors.New("hitbox sizes must be positive"))
	}
	if c.Obstacles.SpawnRange < 0 {
		errs = append(errs, fmt.Errorf("obstacle spawn range must not be negative, got %v", c.Obstacles.SpawnRange))
	}
	if c.Timing.AdvanceIntervalMs <= 0 {
		errs = append(errs, fmt.Errorf("advance interval must be positive, got %dms", c.Timing.AdvanceIntervalMs))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: invalid road config: %w", errors.Join(errs...))
	}
	return nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".roadrush", "configs", filename)
}
