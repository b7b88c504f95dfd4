package core

import "testing"

func TestNewViewportKeepsAspect(t *testing.T) {
	tests := []struct {
		name             string
		screenW, screenH int
		cols, rows       int
		offX, offY       int
	}{
		{"wide terminal", 80, 24, 48, 24, 16, 0},
		{"narrow terminal", 40, 40, 40, 20, 0, 10},
		{"exact fit", 50, 25, 50, 25, 0, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			vp := NewViewport(500, 500, tc.screenW, tc.screenH)
			if vp.Cols != tc.cols || vp.Rows != tc.rows {
				t.Errorf("size = %dx%d, expected %dx%d", vp.Cols, vp.Rows, tc.cols, tc.rows)
			}
			if vp.OffsetX != tc.offX || vp.OffsetY != tc.offY {
				t.Errorf("offset = (%d, %d), expected (%d, %d)", vp.OffsetX, vp.OffsetY, tc.offX, tc.offY)
			}
		})
	}
}

func TestViewportToCell(t *testing.T) {
	vp := NewViewport(500, 500, 50, 25) // 10 world units per column, 20 per row

	x, y := vp.ToCell(0, 0)
	if x != 0 || y != 0 {
		t.Errorf("ToCell(0,0) = (%d,%d)", x, y)
	}
	x, y = vp.ToCell(255, 399)
	if x != 25 || y != 19 {
		t.Errorf("ToCell(255,399) = (%d,%d), expected (25,19)", x, y)
	}
	// Negative world coordinates land above the field
	_, y = vp.ToCell(100, -50)
	if y >= 0 {
		t.Errorf("ToCell(100,-50) y = %d, expected negative", y)
	}
}

func TestViewportCellRectMinimumSize(t *testing.T) {
	vp := NewViewport(500, 500, 50, 25)

	r := vp.CellRect(NewRectF(245, 0, 2, 2))
	if r.W != 1 || r.H != 1 {
		t.Errorf("tiny rect should still cover one cell, got %+v", r)
	}

	r = vp.CellRect(NewRectF(100, 0, 300, 500))
	if r.X != 10 || r.W != 30 || r.H != 25 {
		t.Errorf("road rect = %+v, expected x=10 w=30 h=25", r)
	}
}

func TestViewportCellAreaRoundTrip(t *testing.T) {
	vp := NewViewport(500, 500, 80, 24)

	for _, p := range [][2]float64{{0, 0}, {150, 160}, {499, 499}, {255, 410}} {
		cx, cy := vp.ToCell(p[0], p[1])
		if !vp.Contains(cx, cy) {
			t.Fatalf("cell (%d,%d) for %v should be inside the viewport", cx, cy, p)
		}
		area := vp.CellArea(cx, cy)
		if !area.Contains(p[0], p[1]) {
			t.Errorf("CellArea(%d,%d) = %+v does not contain %v", cx, cy, area, p)
		}
	}
}

func TestRasterizeOrder(t *testing.T) {
	vp := NewViewport(500, 500, 50, 25)
	s := NewScreen(50, 25)

	Rasterize(s, vp, []Shape{
		{Kind: ShapeRect, Rect: NewRectF(0, 0, 500, 500), Color: ColorGray, Fill: '░'},
		{Kind: ShapeSprite, Rect: NewRectF(100, 100, 50, 50), Color: ColorBrightRed},
		{Kind: ShapeText, Rect: NewRectF(10, 10, 0, 0), Color: ColorWhite, Text: "Hi"},
	})

	if c := s.GetCell(40, 20); c.Rune != '░' || c.Color != ColorGray {
		t.Errorf("background cell = %+v", c)
	}
	if c := s.GetCell(10, 5); c.Rune != '█' || c.Color != ColorBrightRed {
		t.Errorf("sprite cell = %+v", c)
	}
	if s.Get(1, 0) != 'H' || s.Get(2, 0) != 'i' {
		t.Errorf("text row = %q", row(s, 0))
	}

	Rasterize(s, vp, []Shape{{Kind: ShapeShade, Alpha: 0.7}})
	if c := s.GetCell(10, 5); c.Rune != '█' || c.Color != ColorGray {
		t.Errorf("shade should dim without erasing, got %+v", c)
	}
}
