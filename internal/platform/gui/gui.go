//go:build gui

package gui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/roadrush/internal/config"
	"github.com/vovakirdan/roadrush/internal/core"
	"github.com/vovakirdan/roadrush/internal/games/road"
)

// debugGlyphHeight is the line height of ebitenutil's debug font.
const debugGlyphHeight = 16

var actionKeys = []struct {
	action core.Action
	keys   []ebiten.Key
}{
	{core.ActionLeft, []ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyA}},
	{core.ActionRight, []ebiten.Key{ebiten.KeyArrowRight, ebiten.KeyD}},
	{core.ActionUp, []ebiten.Key{ebiten.KeyArrowUp, ebiten.KeyW}},
	{core.ActionDown, []ebiten.Key{ebiten.KeyArrowDown, ebiten.KeyS}},
	{core.ActionConfirm, []ebiten.Key{ebiten.KeyEnter, ebiten.KeySpace}},
	{core.ActionRestart, []ebiten.Key{ebiten.KeyR}},
}

// pickKeys select a difficulty from the menu directly, in menu order.
var pickKeys = []ebiten.Key{ebiten.Key1, ebiten.Key2, ebiten.Key3, ebiten.Key4}

// window implements ebiten.Game on top of a road.Game.
type window struct {
	game       *road.Game
	opts       Options
	logger     *log.Logger
	frame      core.InputFrame
	labels     map[string]*ebiten.Image // Rendered debug-font text
	scoreSaved bool
}

// Run opens the game window and blocks until it is closed.
func Run(cfg config.RoadConfig, runtime core.RuntimeConfig, opts Options) error {
	// Ebiten runs Update at a fixed rate; the game clock follows it.
	if runtime.TickRate <= 0 {
		runtime.TickRate = ebiten.DefaultTPS
	}
	if opts.Scale <= 0 {
		opts.Scale = 1
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	w := &window{
		game:   road.New(cfg, runtime),
		opts:   opts,
		logger: logger,
		frame:  core.NewInputFrame(),
		labels: make(map[string]*ebiten.Image),
	}

	ebiten.SetTPS(runtime.TickRate)
	ebiten.SetWindowSize(int(cfg.Field.Width*opts.Scale), int(cfg.Field.Height*opts.Scale))
	ebiten.SetWindowTitle(w.game.Title())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(w); err != nil {
		return fmt.Errorf("gui: %w", err)
	}
	return nil
}

// Update reads input and advances the game by one frame.
func (w *window) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}

	w.frame.Clear()
	for _, ak := range actionKeys {
		for _, k := range ak.keys {
			if repeats(inpututil.KeyPressDuration(k)) {
				w.frame.Set(ak.action)
				break
			}
		}
	}
	if w.game.Phase() == road.PhaseMenu {
		names := config.DifficultyNames()
		for i, k := range pickKeys[:min(len(pickKeys), len(names))] {
			if name := names[i]; inpututil.IsKeyJustPressed(k) {
				if err := w.game.SelectDifficulty(name); err != nil {
					w.logger.Warn("cannot start round", "difficulty", name, "error", err)
				}
			}
		}
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		if t, ok := w.game.TargetAt(core.NewRectF(float64(x), float64(y), 1, 1)); ok {
			if err := w.game.Activate(t); err != nil {
				w.logger.Debug("click ignored", "target", t.Label, "error", err)
			}
		}
	}

	w.game.Step(w.frame)
	w.afterStep()
	return nil
}

// afterStep records the score once per finished round.
func (w *window) afterStep() {
	switch w.game.Phase() {
	case road.PhaseGameOver:
		if w.scoreSaved {
			return
		}
		w.scoreSaved = true

		snap := w.game.Snapshot()
		w.logger.Info("round finished", "game", w.game.ID(), "difficulty", snap.Difficulty, "score", snap.Score, "duration", snap.Clock)
		if w.opts.Store != nil && snap.Score > 0 {
			if _, err := w.opts.Store.SaveScore(snap.Difficulty, snap.Score); err != nil {
				w.logger.Warn("cannot save score", "error", err)
			}
		}
	case road.PhaseMenu:
		w.scoreSaved = false
	}
}

// Draw paints the display list.
func (w *window) Draw(screen *ebiten.Image) {
	for _, s := range w.game.Scene() {
		switch s.Kind {
		case core.ShapeRect, core.ShapeSprite:
			vector.DrawFilledRect(screen,
				float32(s.Rect.X), float32(s.Rect.Y), float32(s.Rect.W), float32(s.Rect.H),
				RGBA(s.Color), false)
		case core.ShapeShade:
			vector.DrawFilledRect(screen,
				float32(s.Rect.X), float32(s.Rect.Y), float32(s.Rect.W), float32(s.Rect.H),
				Shade(s.Alpha), false)
		case core.ShapeText:
			w.drawText(screen, s)
		}
	}
}

// drawText draws the debug font scaled to the shape's size and tinted to its color.
func (w *window) drawText(screen *ebiten.Image, s core.Shape) {
	img, ok := w.labels[s.Text]
	if !ok {
		img = ebiten.NewImage(max(len(s.Text)*6, 1), debugGlyphHeight)
		ebitenutil.DebugPrint(img, s.Text)
		w.labels[s.Text] = img
	}

	scale := s.Size / debugGlyphHeight
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(s.Rect.X, s.Rect.Y)
	op.ColorScale.ScaleWithColor(RGBA(s.Color))
	screen.DrawImage(img, op)
}

// Layout keeps the logical screen at the field size; Ebiten scales it to the window.
func (w *window) Layout(_, _ int) (int, int) {
	f := w.game.Config().Field
	return int(f.Width), int(f.Height)
}
