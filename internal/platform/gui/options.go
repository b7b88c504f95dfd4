package gui

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/roadrush/internal/storage"
)

// Options configures the window.
type Options struct {
	Store  *storage.Store // May be nil: scores are then not kept
	Logger *log.Logger    // May be nil
	Scale  float64        // Window size multiplier, 1 when zero
}
