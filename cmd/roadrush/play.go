package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/roadrush/internal/platform/tui"
)

var flagDifficulty string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Start Road Rush in the current terminal.

Controls:
  Arrows/WASD   - Steer (menu: move cursor)
  Enter/Space   - Select difficulty
  1-4           - Pick a difficulty directly
  R/Enter       - Back to the menu after a crash
  Mouse click   - Menu entries and "Click to Restart"
  ?             - Toggle help
  Q/Ctrl+C      - Quit

Examples:
  roadrush play
  roadrush play --difficulty brutal
  roadrush play --config ./my-road.yaml --seed 42`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Start directly with a difficulty: easy, medium, hard, brutal")
}

func runPlay(_ *cobra.Command, _ []string) {
	cfg, err := loadRoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	store := openStore()

	runErr := tui.Run(cfg, runtimeConfig(width, height), tui.Options{
		Store:      store,
		Logger:     logger,
		Difficulty: flagDifficulty,
		User:       os.Getenv("USER"),
	})

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
