//go:build !gui

package gui

import (
	"errors"
	"testing"

	"github.com/vovakirdan/roadrush/internal/config"
	"github.com/vovakirdan/roadrush/internal/core"
)

func TestRunWithoutTag(t *testing.T) {
	err := Run(config.DefaultRoadConfig(), core.DefaultConfig(), Options{})
	if !errors.Is(err, ErrUnavailable) {
		t.Errorf("Run() = %v, expected ErrUnavailable", err)
	}
}
