package core

import "math"

// Viewport maps a fixed world area onto a block of terminal cells.
// Terminal cells are roughly twice as tall as they are wide, so a square world
// gets about two columns per row.
type Viewport struct {
	WorldW, WorldH float64
	OffsetX        int // Left column of the mapped area
	OffsetY        int // Top row of the mapped area
	Cols, Rows     int
}

// NewViewport fits a worldW x worldH area into a screenW x screenH cell grid,
// centred and with the world's aspect ratio preserved.
func NewViewport(worldW, worldH float64, screenW, screenH int) Viewport {
	cols, rows := screenW, screenH
	wantCols := float64(rows) * 2 * worldW / worldH
	if float64(cols) > wantCols {
		cols = int(wantCols)
	} else {
		rows = int(float64(cols) / 2 * worldH / worldW)
	}
	cols = max(cols, 1)
	rows = max(rows, 1)

	return Viewport{
		WorldW:  worldW,
		WorldH:  worldH,
		OffsetX: max((screenW-cols)/2, 0),
		OffsetY: max((screenH-rows)/2, 0),
		Cols:    cols,
		Rows:    rows,
	}
}

func (v Viewport) scaleX() float64 { return float64(v.Cols) / v.WorldW }
func (v Viewport) scaleY() float64 { return float64(v.Rows) / v.WorldH }

// ToCell converts a world point to the cell containing it.
func (v Viewport) ToCell(x, y float64) (int, int) {
	cx := v.OffsetX + int(math.Floor(x*v.scaleX()))
	cy := v.OffsetY + int(math.Floor(y*v.scaleY()))
	return cx, cy
}

// CellRect converts a world rectangle to the cells it covers.
// A rectangle with positive size always covers at least one cell.
func (v Viewport) CellRect(r RectF) Rect {
	x0, y0 := v.ToCell(r.X, r.Y)
	x1, y1 := v.ToCell(r.Right(), r.Bottom())
	w := max(x1-x0, 1)
	h := max(y1-y0, 1)
	return NewRect(x0, y0, w, h)
}

// CellArea returns the world rectangle covered by the cell at (cx, cy).
func (v Viewport) CellArea(cx, cy int) RectF {
	cw := v.WorldW / float64(v.Cols)
	ch := v.WorldH / float64(v.Rows)
	return NewRectF(float64(cx-v.OffsetX)*cw, float64(cy-v.OffsetY)*ch, cw, ch)
}

// Contains reports whether the cell lies inside the mapped area.
func (v Viewport) Contains(cx, cy int) bool {
	return cx >= v.OffsetX && cx < v.OffsetX+v.Cols &&
		cy >= v.OffsetY && cy < v.OffsetY+v.Rows
}
