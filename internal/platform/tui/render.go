package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/roadrush/internal/core"
)

// Palette maps core.Color to lipgloss styles.
type Palette map[core.Color]lipgloss.Style

// NewPalette builds the game colors for a renderer. SSH sessions pass the
// renderer of their own terminal so color detection follows the client.
func NewPalette(r *lipgloss.Renderer) Palette {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	fg := func(c string) lipgloss.Style {
		return r.NewStyle().Foreground(lipgloss.Color(c))
	}

	return Palette{
		core.ColorDefault:     r.NewStyle(),
		core.ColorBlack:       fg("0"),
		core.ColorRed:         fg("1"),
		core.ColorYellow:      fg("3"),
		core.ColorWhite:       fg("7"),
		core.ColorBrightRed:   fg("9"),
		core.ColorBrightBlue:  fg("12"),
		core.ColorBrightWhite: fg("15"),
		core.ColorGray:        fg("245"),
		// Lane cells are blank, so the color has to come from the background
		core.ColorDarkGray: r.NewStyle().Foreground(lipgloss.Color("238")).Background(lipgloss.Color("238")),
	}
}

// Render converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func (p Palette) Render(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			cell := s.GetCell(x, y)
			startColor := cell.Color

			var run strings.Builder
			for x < s.Width() {
				cell = s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := p[startColor]
			if !ok {
				style = p[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
