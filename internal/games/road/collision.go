package road

import (
	"github.com/vovakirdan/roadrush/internal/config"
	"github.com/vovakirdan/roadrush/internal/core"
)

// Hitboxes are 30x50 while sprites are drawn 50x50: a car's right 20 units
// never collide. Players are used to this, so it stays.

// PlayerHitbox returns the collision rectangle of the player at p.
func PlayerHitbox(p Position, cfg config.PlayerConfig) core.RectF {
	return core.NewRectF(p.X, p.Y, cfg.HitboxWidth, cfg.HitboxHeight)
}

// Collides reports whether the player at p overlaps obstacle o.
func Collides(p Position, o Obstacle, cfg config.RoadConfig) bool {
	obstacleBox := core.NewRectF(o.X, o.Y, cfg.Obstacles.HitboxWidth, cfg.Obstacles.HitboxHeight)
	return PlayerHitbox(p, cfg.Player).Intersects(obstacleBox)
}
