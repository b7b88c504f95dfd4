package core

// ShapeKind identifies how a Shape is drawn.
type ShapeKind int

const (
	ShapeRect   ShapeKind = iota // Filled rectangle
	ShapeSprite                  // Vehicle sprite, drawn as a filled box without assets
	ShapeText                    // Text anchored at Rect.X, Rect.Y
	ShapeShade                   // Translucent panel over everything drawn so far
)

// Shape is one entry of a frame's display list, in world coordinates.
// Frontends draw shapes in order; later shapes cover earlier ones.
type Shape struct {
	Kind  ShapeKind
	Rect  RectF
	Color Color
	Fill  rune    // Terminal fill rune for rects and sprites
	Text  string  // ShapeText only
	Size  float64 // Font size in world units, ShapeText only
	Alpha float64 // Opacity for ShapeShade, 0..1
}

// Rasterize draws a display list into a terminal screen through a viewport.
func Rasterize(dst *Screen, vp Viewport, shapes []Shape) {
	for _, sh := range shapes {
		switch sh.Kind {
		case ShapeRect, ShapeSprite:
			fill := sh.Fill
			if fill == 0 {
				fill = '█'
			}
			dst.FillRect(vp.CellRect(sh.Rect), Cell{Rune: fill, Color: sh.Color})
		case ShapeText:
			x, y := vp.ToCell(sh.Rect.X, sh.Rect.Y)
			dst.DrawText(x, y, sh.Text, sh.Color)
		case ShapeShade:
			dst.Tint(ColorGray)
		}
	}
}
