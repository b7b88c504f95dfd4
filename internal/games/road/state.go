package road

import (
	"time"

	"github.com/google/uuid"
)

// Phase is the state of the round state machine.
type Phase int

const (
	PhaseMenu     Phase = iota // Waiting for a difficulty choice
	PhasePlaying               // Round in progress
	PhaseGameOver              // Round ended in a collision
)

// String returns the phase name used in logs and errors.
func (p Phase) String() string {
	switch p {
	case PhaseMenu:
		return "menu"
	case PhasePlaying:
		return "playing"
	case PhaseGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Direction is one player steering input.
type Direction int

const (
	DirLeft Direction = iota
	DirRight
	DirUp
	DirDown
)

// String returns a human-readable name for the direction.
func (d Direction) String() string {
	switch d {
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	default:
		return "unknown"
	}
}

// Position is the top-left corner of the player vehicle.
type Position struct {
	X, Y float64
}

// Obstacle is a descending vehicle the player must avoid.
type Obstacle struct {
	ID uuid.UUID
	X  float64
	Y  float64
}

// Snapshot captures the complete game state for determinism testing and rendering.
type Snapshot struct {
	Phase         Phase
	Player        Position
	Obstacles     []Obstacle // Spawn order
	Score         int
	GameOver      bool
	Difficulty    string // Empty while no difficulty is selected
	Speed         float64
	SpawnInterval time.Duration
	Cursor        int
	Frames        uint64
	Clock         time.Duration // Simulated time since the round started
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		Phase:     g.phase,
		Player:    g.player,
		Obstacles: g.Obstacles(),
		Score:     g.score,
		GameOver:  g.gameOver,
		Cursor:    g.cursor,
		Frames:    g.frames,
		Clock:     g.sched.Now(),
	}
	if g.difficulty != nil {
		s.Difficulty = string(g.difficulty.Name)
		s.Speed = g.difficulty.Speed
		s.SpawnInterval = g.difficulty.SpawnInterval
	}
	return s
}
