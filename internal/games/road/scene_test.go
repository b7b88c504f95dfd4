package road

import (
	"errors"
	"strings"
	"testing"

	"github.com/vovakirdan/roadrush/internal/core"
)

func TestSceneDrawOrder(t *testing.T) {
	g := newTestGame(1)
	g.SelectDifficulty("easy")
	g.place(100, 10)
	g.place(300, 100)

	shapes := g.Scene()

	// background, road, lane, 10 markers, score, player, 2 obstacles
	if len(shapes) != 3+10+1+1+2 {
		t.Fatalf("len(shapes) = %d", len(shapes))
	}

	expect := []struct {
		i     int
		kind  core.ShapeKind
		color core.Color
	}{
		{0, core.ShapeRect, core.ColorGray},
		{1, core.ShapeRect, core.ColorBlack},
		{2, core.ShapeRect, core.ColorDarkGray},
		{3, core.ShapeRect, core.ColorYellow},
		{12, core.ShapeRect, core.ColorYellow},
		{13, core.ShapeText, core.ColorWhite},
		{14, core.ShapeSprite, core.ColorBrightBlue},
		{15, core.ShapeSprite, core.ColorBrightRed},
		{16, core.ShapeSprite, core.ColorBrightRed},
	}
	for _, e := range expect {
		if shapes[e.i].Kind != e.kind || shapes[e.i].Color != e.color {
			t.Errorf("shape %d = kind %d color %d, expected kind %d color %d",
				e.i, shapes[e.i].Kind, shapes[e.i].Color, e.kind, e.color)
		}
	}

	if shapes[13].Text != "Score: 0" {
		t.Errorf("score text = %q", shapes[13].Text)
	}
	if r := shapes[4].Rect; r.X != 245 || r.Y != 50 || r.W != 10 || r.H != 30 {
		t.Errorf("second marker = %+v", r)
	}
	if r := shapes[14].Rect; r.X != 250 || r.Y != 400 || r.W != 50 || r.H != 50 {
		t.Errorf("player sprite = %+v", r)
	}
}

func TestMenuOverlay(t *testing.T) {
	g := newTestGame(1)

	targets := g.Targets()
	labels := []string{"Easy", "Medium", "Hard", "Brutal"}
	if len(targets) != len(labels) {
		t.Fatalf("len(targets) = %d, expected %d", len(targets), len(labels))
	}
	for i, tg := range targets {
		if tg.Label != labels[i] || tg.Kind != TargetDifficulty {
			t.Errorf("target %d = %+v", i, tg)
		}
		if tg.Rect.Y != float64(150+50*i) {
			t.Errorf("target %d at y=%v, expected %d", i, tg.Rect.Y, 150+50*i)
		}
	}

	shapes := g.Scene()
	var shaded bool
	var texts []string
	for _, s := range shapes {
		if s.Kind == core.ShapeShade {
			shaded = true
			if s.Alpha != 0.7 {
				t.Errorf("shade alpha = %v", s.Alpha)
			}
		}
		if shaded && s.Kind == core.ShapeText {
			texts = append(texts, s.Text)
		}
	}
	if !shaded {
		t.Fatal("menu should shade the board")
	}
	joined := strings.Join(texts, "|")
	for _, want := range append([]string{"Select difficulty", ">"}, labels...) {
		if !strings.Contains(joined, want) {
			t.Errorf("overlay text %q missing from %q", want, joined)
		}
	}
}

func TestNoOverlayWhilePlaying(t *testing.T) {
	g := newTestGame(1)
	g.SelectDifficulty("medium")

	if len(g.Targets()) != 0 {
		t.Errorf("targets while playing: %+v", g.Targets())
	}
	for _, s := range g.Scene() {
		if s.Kind == core.ShapeShade {
			t.Fatal("board shaded while playing")
		}
	}
}

func TestClickTargets(t *testing.T) {
	g := newTestGame(1)

	// Click inside the "Hard" line
	tg, ok := g.TargetAt(core.NewRectF(200, 255, 1, 1))
	if !ok || tg.Difficulty != "hard" {
		t.Fatalf("TargetAt = %+v, %v, expected hard", tg, ok)
	}
	if _, ok := g.TargetAt(core.NewRectF(20, 20, 1, 1)); ok {
		t.Error("click outside the menu hit a target")
	}

	if err := g.Activate(tg); err != nil {
		t.Fatalf("Activate: %v", err)
	}
	if p, _ := g.Difficulty(); p.Speed != 7 {
		t.Errorf("speed = %v after clicking hard", p.Speed)
	}

	restart := Target{Kind: TargetRestart}
	if err := g.Activate(restart); !errors.Is(err, ErrWrongPhase) {
		t.Errorf("restart while playing: err = %v, expected ErrWrongPhase", err)
	}

	g.place(250, 400)
	g.CheckCollisions()

	tg, ok = g.TargetAt(core.NewRectF(160, 310, 1, 1))
	if !ok || tg.Kind != TargetRestart {
		t.Fatalf("TargetAt on game over = %+v, %v", tg, ok)
	}
	if err := g.Activate(tg); err != nil || g.Phase() != PhaseMenu {
		t.Errorf("Activate restart: err=%v phase=%v", err, g.Phase())
	}
}

func TestMenuTargetsCoverLinePitch(t *testing.T) {
	g := newTestGame(1)

	targets := g.Targets()
	for i, tg := range targets {
		if tg.Rect.H != 50 {
			t.Errorf("target %d height = %v, expected 50", i, tg.Rect.H)
		}
		if i > 0 && targets[i-1].Rect.Bottom() != tg.Rect.Y {
			t.Errorf("gap between target %d and %d", i-1, i)
		}
	}

	// A cell row straddling Easy and Medium, mostly over Medium
	tg, ok := g.TargetAt(core.NewRectF(200, 190, 10, 22))
	if !ok || tg.Difficulty != "medium" {
		t.Errorf("TargetAt straddling row = %+v, %v, expected medium", tg, ok)
	}
}

func TestMenuRowsMapToOneEntry(t *testing.T) {
	g := newTestGame(1)
	names := []string{"easy", "medium", "hard", "brutal"}

	// 80x24 terminal minus the help line
	vp := g.Viewport(80, 23)
	cx := vp.OffsetX + vp.Cols/2
	for cy := vp.OffsetY; cy < vp.OffsetY+vp.Rows; cy++ {
		area := vp.CellArea(cx, cy)
		mid := area.Y + area.H/2
		tg, ok := g.TargetAt(area)

		if mid < 150 || mid >= 350 {
			continue
		}
		want := names[int(mid-150)/50]
		if !ok || tg.Difficulty != want {
			t.Errorf("row %d (centre y=%.1f) = %+v, %v, expected %s", cy, mid, tg, ok, want)
		}
	}
}

func TestGameOverOverlay(t *testing.T) {
	g := newTestGame(1)
	g.SelectDifficulty("easy")
	g.score = 4
	g.place(250, 400)
	g.CheckCollisions()

	var texts []string
	for _, s := range g.Scene() {
		if s.Kind == core.ShapeText {
			texts = append(texts, s.Text)
		}
	}
	joined := strings.Join(texts, "|")
	for _, want := range []string{"Game Over", "Score: 4", "Click to Restart"} {
		if !strings.Contains(joined, want) {
			t.Errorf("game over text %q missing from %q", want, joined)
		}
	}
}

func TestRenderToTerminal(t *testing.T) {
	g := newTestGame(1)
	g.SelectDifficulty("easy")

	scr := core.NewScreen(48, 24)
	g.Render(scr)

	out := scr.String()
	if !strings.Contains(out, "Score: 0") {
		t.Errorf("rendered frame lacks the score:\n%s", out)
	}
	if !strings.Contains(out, "┃") {
		t.Errorf("rendered frame lacks lane markers:\n%s", out)
	}
}
