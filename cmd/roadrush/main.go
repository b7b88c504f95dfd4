// roadrush is an arcade driving game for the terminal.
//
// Usage:
//
//	roadrush play                - Pick a difficulty and drive
//	roadrush difficulties        - List difficulty presets
//	roadrush scores [difficulty] - Show high scores
//	roadrush serve               - Start SSH server for remote play
//	roadrush gui                 - Open a desktop window (built with -tags gui)
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: 60)
//	--seed <value>      - Set RNG seed for reproducible gameplay
//	--db <path>         - Set database path (default: ~/.roadrush/scores.db)
//	--config <path>     - Road geometry YAML
//	--log-level <level> - debug, info, warn, error
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/roadrush/internal/config"
	"github.com/vovakirdan/roadrush/internal/core"
	"github.com/vovakirdan/roadrush/internal/storage"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagConfig   string
	flagLogLevel string

	logger = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "roadrush",
	})
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "roadrush",
	Short: "Road Rush - dodge traffic in your terminal",
	Long: `Road Rush is an arcade driving game. Steer your car down the road and
avoid the traffic coming the other way. Every car you let pass scores a
point; the first crash ends the round.

Available commands:
  play          - Play in this terminal
  difficulties  - Show difficulty presets
  scores        - View high scores
  serve         - Start SSH server for remote play
  gui           - Play in a desktop window

Examples:
  roadrush play
  roadrush play --difficulty hard
  roadrush scores brutal
  roadrush serve --ssh :2222`,
	SilenceUsage: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		level, err := log.ParseLevel(flagLogLevel)
		if err != nil {
			return fmt.Errorf("invalid --log-level: %w", err)
		}
		logger.SetLevel(level)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.roadrush/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom road config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(difficultiesCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(guiCmd)
}

// loadRoadConfig loads the road geometry from --config or the search path.
func loadRoadConfig() (config.RoadConfig, error) {
	cfg, err := config.LoadRoad(flagConfig)
	if err != nil {
		return config.RoadConfig{}, fmt.Errorf("load config: %w", err)
	}
	logger.Debug("road config loaded", "path", flagConfig, "tick", cfg.Timing.AdvanceInterval())
	return cfg, nil
}

// openStore opens the scores database. A failure is logged and play goes on
// without persistence.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database, scores will not be saved", "path", flagDBPath, "error", err)
		return nil
	}
	return store
}

// runtimeConfig builds the runtime config from the global flags.
func runtimeConfig(width, height int) core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}
