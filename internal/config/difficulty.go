package config

import (
	"errors"
	"fmt"
	"time"
)

// ErrUnknownDifficulty is returned when a difficulty name is not in the registry.
var ErrUnknownDifficulty = errors.New("unknown difficulty")

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyMedium DifficultyPreset = "medium"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyBrutal DifficultyPreset = "brutal"
)

// Profile is the fixed pace of one difficulty: how far obstacles fall per
// advance tick and how often a new one appears.
type Profile struct {
	Name          DifficultyPreset
	Speed         float64
	SpawnInterval time.Duration
}

// presets is ordered as shown in the difficulty menu.
var presets = [...]Profile{
	{Name: DifficultyEasy, Speed: 3, SpawnInterval: 1500 * time.Millisecond},
	{Name: DifficultyMedium, Speed: 5, SpawnInterval: 1000 * time.Millisecond},
	{Name: DifficultyHard, Speed: 7, SpawnInterval: 750 * time.Millisecond},
	{Name: DifficultyBrutal, Speed: 10, SpawnInterval: 500 * time.Millisecond},
}

// LookupDifficulty returns the profile registered under name.
func LookupDifficulty(name string) (Profile, error) {
	for _, p := range presets {
		if string(p.Name) == name {
			return p, nil
		}
	}
	return Profile{}, fmt.Errorf("%w: %q", ErrUnknownDifficulty, name)
}

// MustLookupDifficulty is LookupDifficulty for names known at compile time.
func MustLookupDifficulty(name DifficultyPreset) Profile {
	p, err := LookupDifficulty(string(name))
	if err != nil {
		panic(err)
	}
	return p
}

// Difficulties returns all profiles in menu order.
func Difficulties() []Profile {
	out := make([]Profile, len(presets))
	copy(out, presets[:])
	return out
}

// DifficultyNames returns the registry keys in menu order.
func DifficultyNames() []string {
	names := make([]string, len(presets))
	for i, p := range presets {
		names[i] = string(p.Name)
	}
	return names
}
