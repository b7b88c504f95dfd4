package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/roadrush/internal/platform/gui"
)

var flagScale float64

var guiCmd = &cobra.Command{
	Use:   "gui",
	Short: "Play in a desktop window",
	Long: `Open Road Rush in a 500x500 window. Clicks, arrows and WASD work as in
the terminal version.

The window needs a binary built with the gui tag:
  go build -tags gui ./cmd/roadrush`,
	Args: cobra.NoArgs,
	Run:  runGUI,
}

func init() {
	guiCmd.Flags().Float64Var(&flagScale, "scale", 1, "Window size multiplier")
}

func runGUI(_ *cobra.Command, _ []string) {
	cfg, err := loadRoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	store := openStore()

	runErr := gui.Run(cfg, runtimeConfig(0, 0), gui.Options{
		Store:  store,
		Logger: logger,
		Scale:  flagScale,
	})

	if store != nil {
		store.Close()
	}

	if errors.Is(runErr, gui.ErrUnavailable) {
		fmt.Fprintln(os.Stderr, runErr)
		os.Exit(2)
	}
	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
