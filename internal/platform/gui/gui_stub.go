//go:build !gui

package gui

import (
	"github.com/vovakirdan/roadrush/internal/config"
	"github.com/vovakirdan/roadrush/internal/core"
)

// Run reports that this binary was built without a window system.
func Run(config.RoadConfig, core.RuntimeConfig, Options) error {
	return ErrUnavailable
}
