// Package road implements Road Rush, an arcade driving game.
// The player steers a car down a road, dodging vehicles that fall from the
// top of the field. Every vehicle that leaves the bottom scores a point; the
// first contact ends the round.
package road

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/vovakirdan/roadrush/internal/config"
	"github.com/vovakirdan/roadrush/internal/core"
)

// ID is the identifier used for the game in storage and logs.
const ID = "roadrush"

// ErrWrongPhase is returned when an operation is not allowed in the current phase.
var ErrWrongPhase = errors.New("operation not allowed in current phase")

// Game implements the Road Rush state machine:
// menu -> playing -> game over -> (restart) -> menu.
// A Game is not safe for concurrent use; frontends drive it from one goroutine.
type Game struct {
	cfg        config.RoadConfig
	runtime    core.RuntimeConfig
	rng        *rand.Rand
	player     Position
	obstacles  *ObstacleManager
	sched      *Scheduler
	difficulty *config.Profile // nil while in the menu
	score      int
	gameOver   bool
	phase      Phase
	cursor     int    // Highlighted menu entry
	frames     uint64 // Frames simulated in the current round
}

// New creates a game with the given geometry, ready in the difficulty menu.
func New(cfg config.RoadConfig, runtime core.RuntimeConfig) *Game {
	g := &Game{cfg: cfg}
	g.Reset(runtime)
	return g
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return ID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Road Rush"
}

// Reset re-initialises everything, including the random source.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.rng = rand.New(rand.NewSource(runtime.Seed))
	g.obstacles = NewObstacleManager(g.rng, g.cfg.Obstacles)
	g.sched = NewScheduler()
	g.Restart()
}

// Config returns the geometry the game runs with.
func (g *Game) Config() config.RoadConfig {
	return g.cfg
}

// SelectDifficulty starts a round with the named difficulty.
// Only allowed in the menu.
func (g *Game) SelectDifficulty(name string) error {
	if g.phase != PhaseMenu {
		return fmt.Errorf("road: select difficulty while %s: %w", g.phase, ErrWrongPhase)
	}

	p, err := config.LookupDifficulty(name)
	if err != nil {
		return fmt.Errorf("road: %w", err)
	}

	for i, n := range config.DifficultyNames() {
		if n == name {
			g.cursor = i
		}
	}

	g.difficulty = &p
	g.phase = PhasePlaying
	g.frames = 0
	g.sched.Start(p.SpawnInterval, g.cfg.Timing.AdvanceInterval())
	return nil
}

// MovePlayer moves the player one step. It is a no-op outside a round.
// Returns whether the move was applied.
func (g *Game) MovePlayer(d Direction) bool {
	if g.phase != PhasePlaying {
		return false
	}
	g.player = step(g.player, d, g.cfg.Player)
	g.CheckCollisions()
	return true
}

// TickSpawn adds one obstacle. It is a no-op outside a round.
func (g *Game) TickSpawn() bool {
	if g.phase != PhasePlaying {
		return false
	}
	g.obstacles.Spawn()
	g.CheckCollisions()
	return true
}

// TickAdvance moves all obstacles down by the difficulty speed, removes the
// ones that left the field and scores a point for each. It is a no-op outside
// a round. Returns the number of obstacles removed.
func (g *Game) TickAdvance() int {
	if g.phase != PhasePlaying {
		return 0
	}
	removed := g.obstacles.Advance(g.difficulty.Speed)
	g.score += removed
	g.CheckCollisions()
	return removed
}

// CheckCollisions ends the round if the player touches any obstacle.
// Returns true if a collision ended the round.
func (g *Game) CheckCollisions() bool {
	if g.phase != PhasePlaying {
		return false
	}
	if _, hit := g.obstacles.FirstHit(PlayerHitbox(g.player, g.cfg.Player)); !hit {
		return false
	}

	g.phase = PhaseGameOver
	g.gameOver = true
	g.sched.Cancel()
	return true
}

// Restart returns to the difficulty menu with a fresh board.
// Allowed from any phase.
func (g *Game) Restart() {
	g.sched.Cancel()
	g.player = Position{X: g.cfg.Player.StartX, Y: g.cfg.Player.StartY}
	g.obstacles.Reset()
	g.score = 0
	g.gameOver = false
	g.difficulty = nil
	g.phase = PhaseMenu
	g.cursor = 0
	g.frames = 0
}

// Step applies a frame of input, then advances the round clock by one frame,
// firing whichever spawn and advance ticks fall due.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.Handle(in)

	if g.phase == PhasePlaying {
		g.frames++
		g.sched.Advance(g.runtime.FrameDuration(), g.runTask)
	}

	return core.StepResult{State: g.State()}
}

func (g *Game) runTask(t Task) {
	switch t {
	case TaskSpawn:
		g.TickSpawn()
	case TaskAdvance:
		g.TickAdvance()
	}
}

// Phase returns the current phase.
func (g *Game) Phase() Phase {
	return g.phase
}

// Player returns the player position.
func (g *Game) Player() Position {
	return g.player
}

// Obstacles returns a copy of the live obstacles in spawn order.
func (g *Game) Obstacles() []Obstacle {
	src := g.obstacles.Obstacles()
	out := make([]Obstacle, len(src))
	copy(out, src)
	return out
}

// Score returns the current score.
func (g *Game) Score() int {
	return g.score
}

// Difficulty returns the selected profile, if any.
func (g *Game) Difficulty() (config.Profile, bool) {
	if g.difficulty == nil {
		return config.Profile{}, false
	}
	return *g.difficulty, true
}

// Token returns the timer run token. It changes whenever a round starts or
// its timers are cancelled, so frontends can tag their frame loop with it.
func (g *Game) Token() Token {
	return g.sched.Token()
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		Playing:  g.phase == PhasePlaying,
		GameOver: g.gameOver,
	}
}

// Viewport maps the play field onto a terminal of the given size.
func (g *Game) Viewport(screenW, screenH int) core.Viewport {
	return core.NewViewport(g.cfg.Field.Width, g.cfg.Field.Height, screenW, screenH)
}

// Render draws the current frame into the screen buffer.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	core.Rasterize(dst, g.Viewport(dst.Width(), dst.Height()), g.Scene())
}
