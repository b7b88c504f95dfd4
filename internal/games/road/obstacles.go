package road

import (
	"github.com/google/uuid"

	"github.com/vovakirdan/roadrush/internal/config"
	"github.com/vovakirdan/roadrush/internal/core"
)

// RandSource is the randomness the spawner needs: uniform floats in [0, 1)
// for positions and raw bytes for ids. *math/rand.Rand satisfies it, so a
// seeded generator makes whole rounds reproducible.
type RandSource interface {
	Float64() float64
	Read(p []byte) (n int, err error)
}

// ObstacleManager handles spawning, movement, and removal of obstacles.
type ObstacleManager struct {
	obstacles []Obstacle
	rng       RandSource
	cfg       config.ObstacleConfig
}

// NewObstacleManager creates an empty obstacle manager.
func NewObstacleManager(rng RandSource, cfg config.ObstacleConfig) *ObstacleManager {
	return &ObstacleManager{
		obstacles: make([]Obstacle, 0, 16),
		rng:       rng,
		cfg:       cfg,
	}
}

// Reset removes all obstacles.
func (om *ObstacleManager) Reset() {
	om.obstacles = om.obstacles[:0]
}

// Spawn appends a new obstacle above the field at a random lane position.
func (om *ObstacleManager) Spawn() Obstacle {
	x := om.cfg.SpawnMinX + om.rng.Float64()*om.cfg.SpawnRange

	id, err := uuid.NewRandomFromReader(om.rng)
	if err != nil {
		id = uuid.New()
	}

	o := Obstacle{ID: id, X: x, Y: om.cfg.SpawnY}
	om.obstacles = append(om.obstacles, o)
	return o
}

// Advance moves every obstacle down by speed, then removes the ones past the
// exit line. Survivors keep their order. Returns the number removed.
func (om *ObstacleManager) Advance(speed float64) int {
	for i := range om.obstacles {
		om.obstacles[i].Y += speed
	}

	removed := 0
	kept := om.obstacles[:0]
	for _, o := range om.obstacles {
		if o.Y > om.cfg.ExitY {
			removed++
			continue
		}
		kept = append(kept, o)
	}
	om.obstacles = kept

	return removed
}

// Obstacles returns the live obstacles in spawn order.
// The slice is owned by the manager; callers must not modify it.
func (om *ObstacleManager) Obstacles() []Obstacle {
	return om.obstacles
}

// Len returns the number of live obstacles.
func (om *ObstacleManager) Len() int {
	return len(om.obstacles)
}

// Hitbox returns the collision rectangle of an obstacle.
func (om *ObstacleManager) Hitbox(o Obstacle) core.RectF {
	return core.NewRectF(o.X, o.Y, om.cfg.HitboxWidth, om.cfg.HitboxHeight)
}

// FirstHit returns the oldest obstacle whose hitbox overlaps r.
func (om *ObstacleManager) FirstHit(r core.RectF) (Obstacle, bool) {
	for _, o := range om.obstacles {
		if r.Intersects(om.Hitbox(o)) {
			return o, true
		}
	}
	return Obstacle{}, false
}
