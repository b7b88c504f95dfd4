package road

import (
	"testing"

	"github.com/vovakirdan/roadrush/internal/config"
)

// fixedSource returns the same float every time and zero bytes for ids.
type fixedSource struct{ f float64 }

func (s fixedSource) Float64() float64 { return s.f }

func (s fixedSource) Read(p []byte) (int, error) {
	clear(p)
	return len(p), nil
}

func TestSpawnRange(t *testing.T) {
	cfg := config.DefaultRoadConfig().Obstacles
	// Computed at run time so it rounds the same way Spawn does
	edge := 0.999999

	tests := []struct {
		name string
		f    float64
		want float64
	}{
		{"left edge", 0, 100},
		{"middle", 0.5, 240},
		{"right edge", edge, cfg.SpawnMinX + edge*cfg.SpawnRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			om := NewObstacleManager(fixedSource{tt.f}, cfg)
			o := om.Spawn()
			if o.X != tt.want || o.Y != -50 {
				t.Errorf("spawned at (%v,%v), expected (%v,-50)", o.X, o.Y, tt.want)
			}
			if o.X < 100 || o.X >= 380 {
				t.Errorf("x = %v outside [100,380)", o.X)
			}
			if om.Len() != 1 {
				t.Errorf("Len() = %d, expected 1", om.Len())
			}
		})
	}
}

func TestAdvancePreservesOrder(t *testing.T) {
	om := NewObstacleManager(fixedSource{0}, config.DefaultRoadConfig().Obstacles)
	om.obstacles = []Obstacle{{X: 1, Y: 499}, {X: 2, Y: 0}, {X: 3, Y: 600}, {X: 4, Y: 100}}

	if removed := om.Advance(2); removed != 2 {
		t.Fatalf("removed = %d, expected 2", removed)
	}

	got := om.Obstacles()
	if len(got) != 2 || got[0].X != 2 || got[1].X != 4 {
		t.Fatalf("survivors = %+v, expected X=2 then X=4", got)
	}
	if got[0].Y != 2 || got[1].Y != 102 {
		t.Errorf("survivor y = %v,%v, expected 2,102", got[0].Y, got[1].Y)
	}

	om.Reset()
	if om.Len() != 0 {
		t.Errorf("Len() after Reset = %d", om.Len())
	}
}

func TestFirstHitReturnsOldest(t *testing.T) {
	om := NewObstacleManager(fixedSource{0}, config.DefaultRoadConfig().Obstacles)
	om.obstacles = []Obstacle{{X: 0, Y: 0}, {X: 200, Y: 200}, {X: 210, Y: 210}}

	hit, ok := om.FirstHit(PlayerHitbox(Position{X: 205, Y: 205}, config.DefaultRoadConfig().Player))
	if !ok {
		t.Fatal("expected a hit")
	}
	if hit.X != 200 {
		t.Errorf("hit obstacle at x=%v, expected the older one at 200", hit.X)
	}

	if _, ok := om.FirstHit(PlayerHitbox(Position{X: 350, Y: 0}, config.DefaultRoadConfig().Player)); ok {
		t.Error("unexpected hit on an empty lane")
	}
}
