package road

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/roadrush/internal/config"
	"github.com/vovakirdan/roadrush/internal/core"
)

// Overlay layout in world units.
const (
	overlayX       = 150
	menuTitleY     = 100
	menuFirstY     = 150
	menuLineGap    = 50
	menuTextSize   = 25
	menuTitleSize  = 30
	targetWidth    = 200
	gameOverTitleY = 200
	finalScoreX    = 180
	finalScoreY    = 250
	restartY       = 300
	shadeAlpha     = 0.7
)

// TargetKind says what activating a click target does.
type TargetKind int

const (
	TargetDifficulty TargetKind = iota // Start a round with Difficulty
	TargetRestart                      // Return to the menu
)

// Target is a clickable line of an overlay.
type Target struct {
	Kind       TargetKind
	Label      string
	Difficulty string
	Rect       core.RectF
	Size       float64 // Font size of the label
}

// Targets returns the click targets of the overlay shown in the current phase.
func (g *Game) Targets() []Target {
	switch g.phase {
	case PhaseMenu:
		names := config.DifficultyNames()
		targets := make([]Target, len(names))
		for i, name := range names {
			targets[i] = Target{
				Kind:       TargetDifficulty,
				Label:      capitalize(name),
				Difficulty: name,
				Rect:       core.NewRectF(overlayX, float64(menuFirstY+i*menuLineGap), targetWidth, menuLineGap),
				Size:       menuTextSize,
			}
		}
		return targets

	case PhaseGameOver:
		return []Target{{
			Kind:  TargetRestart,
			Label: "Click to Restart",
			Rect:  core.NewRectF(overlayX, restartY, targetWidth, 25),
			Size:  20,
		}}
	}
	return nil
}

// TargetAt returns the target under area. Terminal cells cover an area of
// the field that may straddle two menu lines; the line holding the centre of
// the area wins, then any line the area overlaps.
func (g *Game) TargetAt(area core.RectF) (Target, bool) {
	targets := g.Targets()
	cx, cy := area.X+area.W/2, area.Y+area.H/2
	for _, t := range targets {
		if t.Rect.Contains(cx, cy) {
			return t, true
		}
	}
	for _, t := range targets {
		if t.Rect.Intersects(area) {
			return t, true
		}
	}
	return Target{}, false
}

// Activate performs the action of a click target.
func (g *Game) Activate(t Target) error {
	switch t.Kind {
	case TargetDifficulty:
		return g.SelectDifficulty(t.Difficulty)
	case TargetRestart:
		if g.phase != PhaseGameOver {
			return fmt.Errorf("road: restart target while %s: %w", g.phase, ErrWrongPhase)
		}
		g.Restart()
		return nil
	}
	return fmt.Errorf("road: unknown target kind %d", t.Kind)
}

// Scene returns the display list for the current frame, back to front.
func (g *Game) Scene() []core.Shape {
	f := g.cfg.Field
	r := g.cfg.Road
	obstacles := g.obstacles.Obstacles()

	shapes := make([]core.Shape, 0, 8+r.MarkerCount+len(obstacles)+len(config.DifficultyNames()))

	shapes = append(shapes,
		core.Shape{Kind: core.ShapeRect, Rect: core.NewRectF(0, 0, f.Width, f.Height), Color: core.ColorGray, Fill: '░'},
		core.Shape{Kind: core.ShapeRect, Rect: core.NewRectF(r.Left, 0, r.Right-r.Left, f.Height), Color: core.ColorBlack, Fill: '█'},
		core.Shape{Kind: core.ShapeRect, Rect: core.NewRectF(r.Left+r.LaneInset, 0, r.Right-r.Left-2*r.LaneInset, f.Height), Color: core.ColorDarkGray, Fill: ' '},
	)

	for i := 0; i < r.MarkerCount; i++ {
		shapes = append(shapes, core.Shape{
			Kind:  core.ShapeRect,
			Rect:  core.NewRectF(r.MarkerX, float64(i)*r.MarkerSpacing, r.MarkerWidth, r.MarkerHeight),
			Color: core.ColorYellow,
			Fill:  '┃',
		})
	}

	shapes = append(shapes, text(10, 10, fmt.Sprintf("Score: %d", g.score), 20, core.ColorWhite))

	ps := g.cfg.Player.SpriteSize
	shapes = append(shapes, core.Shape{
		Kind:  core.ShapeSprite,
		Rect:  core.NewRectF(g.player.X, g.player.Y, ps, ps),
		Color: core.ColorBrightBlue,
		Fill:  '█',
	})

	obsSize := g.cfg.Obstacles.SpriteSize
	for _, o := range obstacles {
		shapes = append(shapes, core.Shape{
			Kind:  core.ShapeSprite,
			Rect:  core.NewRectF(o.X, o.Y, obsSize, obsSize),
			Color: core.ColorBrightRed,
			Fill:  '█',
		})
	}

	switch g.phase {
	case PhaseMenu:
		shapes = append(shapes,
			core.Shape{Kind: core.ShapeShade, Rect: core.NewRectF(0, 0, f.Width, f.Height), Alpha: shadeAlpha},
			text(overlayX, menuTitleY, "Select difficulty", menuTitleSize, core.ColorBrightWhite),
		)
		for i, t := range g.Targets() {
			color := core.ColorWhite
			if i == g.cursor {
				color = core.ColorYellow
				shapes = append(shapes, text(overlayX-20, t.Rect.Y, ">", t.Size, color))
			}
			shapes = append(shapes, text(t.Rect.X, t.Rect.Y, t.Label, t.Size, color))
		}

	case PhaseGameOver:
		shapes = append(shapes,
			core.Shape{Kind: core.ShapeShade, Rect: core.NewRectF(0, 0, f.Width, f.Height), Alpha: shadeAlpha},
			text(overlayX, gameOverTitleY, "Game Over", 40, core.ColorBrightRed),
			text(finalScoreX, finalScoreY, fmt.Sprintf("Score: %d", g.score), 30, core.ColorWhite),
		)
		for _, t := range g.Targets() {
			shapes = append(shapes, text(t.Rect.X, t.Rect.Y, t.Label, t.Size, core.ColorWhite))
		}
	}

	return shapes
}

func text(x, y float64, s string, size float64, c core.Color) core.Shape {
	return core.Shape{Kind: core.ShapeText, Rect: core.NewRectF(x, y, 0, 0), Text: s, Size: size, Color: c}
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
