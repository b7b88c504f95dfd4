package road

import (
	"github.com/vovakirdan/roadrush/internal/config"
	"github.com/vovakirdan/roadrush/internal/core"
)

// DirectionForAction maps a steering action to a direction.
func DirectionForAction(a core.Action) (Direction, bool) {
	switch a {
	case core.ActionLeft:
		return DirLeft, true
	case core.ActionRight:
		return DirRight, true
	case core.ActionUp:
		return DirUp, true
	case core.ActionDown:
		return DirDown, true
	}
	return 0, false
}

// step returns p moved one step in d, clamped to the player bounds.
// Each direction touches a single axis.
func step(p Position, d Direction, cfg config.PlayerConfig) Position {
	switch d {
	case DirLeft:
		p.X = core.ClampF(p.X-cfg.Step, cfg.MinX, cfg.MaxX)
	case DirRight:
		p.X = core.ClampF(p.X+cfg.Step, cfg.MinX, cfg.MaxX)
	case DirUp:
		p.Y = core.ClampF(p.Y-cfg.Step, cfg.MinY, cfg.MaxY)
	case DirDown:
		p.Y = core.ClampF(p.Y+cfg.Step, cfg.MinY, cfg.MaxY)
	}
	return p
}

// Handle applies a frame of input without advancing the clock.
// The meaning of an action depends on the phase: arrows steer while playing
// and move the menu cursor in the difficulty menu.
func (g *Game) Handle(in core.InputFrame) core.StepResult {
	for _, a := range in.Actions {
		g.apply(a)
	}
	return core.StepResult{State: g.State()}
}

func (g *Game) apply(a core.Action) {
	switch g.phase {
	case PhaseMenu:
		names := config.DifficultyNames()
		switch a {
		case core.ActionUp:
			g.cursor = core.Clamp(g.cursor-1, 0, len(names)-1)
		case core.ActionDown:
			g.cursor = core.Clamp(g.cursor+1, 0, len(names)-1)
		case core.ActionConfirm:
			//nolint:errcheck // Names come from the difficulty table and we are in the menu
			g.SelectDifficulty(names[g.cursor])
		}

	case PhasePlaying:
		if d, ok := DirectionForAction(a); ok {
			g.MovePlayer(d)
		}

	case PhaseGameOver:
		if a == core.ActionConfirm || a == core.ActionRestart {
			g.Restart()
		}
	}
}
