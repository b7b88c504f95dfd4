// Package gui runs Road Rush in a desktop window using Ebiten.
// The window is only compiled with the "gui" build tag; without it Run
// returns ErrUnavailable so the CLI still builds on headless machines.
package gui

import (
	"errors"
	"image/color"

	"github.com/vovakirdan/roadrush/internal/core"
)

// ErrUnavailable is returned by Run in builds without the gui tag.
var ErrUnavailable = errors.New("gui: not available in this build, rebuild with -tags gui")

// Key repeat timing in ticks, at 60 ticks per second.
const (
	repeatDelay    = 30
	repeatInterval = 3
)

// colors are CSS named colors, so the window looks like a canvas page.
var colors = map[core.Color]color.RGBA{
	core.ColorDefault:     {R: 255, G: 255, B: 255, A: 255},
	core.ColorBlack:       {A: 255},
	core.ColorGray:        {R: 128, G: 128, B: 128, A: 255},
	core.ColorDarkGray:    {R: 169, G: 169, B: 169, A: 255},
	core.ColorYellow:      {R: 255, G: 255, A: 255},
	core.ColorWhite:       {R: 255, G: 255, B: 255, A: 255},
	core.ColorRed:         {R: 255, A: 255},
	core.ColorBrightRed:   {R: 220, G: 20, B: 60, A: 255},
	core.ColorBrightBlue:  {R: 30, G: 144, B: 255, A: 255},
	core.ColorBrightWhite: {R: 255, G: 255, B: 255, A: 255},
}

// RGBA returns the window color for a palette entry.
func RGBA(c core.Color) color.RGBA {
	if rgba, ok := colors[c]; ok {
		return rgba
	}
	return colors[core.ColorDefault]
}

// Shade returns the translucent black drawn over the board behind overlays.
func Shade(alpha float64) color.NRGBA {
	return color.NRGBA{A: uint8(core.ClampF(alpha, 0, 1) * 255)}
}

// repeats reports whether a key held for d ticks fires this tick: once on
// press, then every repeatInterval ticks after repeatDelay.
func repeats(d int) bool {
	if d == 1 {
		return true
	}
	return d >= repeatDelay && (d-repeatDelay)%repeatInterval == 0
}
