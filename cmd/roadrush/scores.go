package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/roadrush/internal/config"
	"github.com/vovakirdan/roadrush/internal/platform/tui"
	"github.com/vovakirdan/roadrush/internal/storage"
)

var (
	flagInteractive bool
	flagClear       bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [difficulty]",
	Short: "Show high scores",
	Long: `Display the top 10 high scores for a difficulty, or a summary of every
difficulty when none is given.

Examples:
  roadrush scores
  roadrush scores hard
  roadrush scores -i
  roadrush scores easy --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "Browse scores in a scoreboard")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all scores of the difficulty")
}

func runScores(_ *cobra.Command, args []string) {
	difficulty := ""
	if len(args) == 1 {
		difficulty = args[0]
		if _, err := config.LookupDifficulty(difficulty); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			fmt.Fprintln(os.Stderr, "Run 'roadrush difficulties' to see the presets.")
			os.Exit(1)
		}
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	switch {
	case flagClear:
		err = clearScores(store, difficulty)
	case flagInteractive:
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		err = tui.RunScoreboard(store, difficulty, width, height)
	case difficulty == "":
		err = printSummary(store)
	default:
		err = printTopScores(store, difficulty)
	}

	if err != nil {
		store.Close()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func clearScores(store *storage.Store, difficulty string) error {
	if difficulty == "" {
		return errors.New("--clear needs a difficulty")
	}
	if err := store.ClearScores(difficulty); err != nil {
		return err
	}
	logger.Info("scores cleared", "difficulty", difficulty)
	return nil
}

func printTopScores(store *storage.Store, difficulty string) error {
	scores, err := store.TopScores(difficulty, 10)
	if err != nil {
		return err
	}

	fmt.Printf("High Scores - %s\n", difficulty)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'roadrush play --difficulty %s' to set the first high score!\n", difficulty)
		return nil
	}

	fmt.Printf("  %-4s  %-10s  %s\n", "Rank", "Score", "Date")
	fmt.Printf("  %-4s  %-10s  %s\n", "----", "-----", "----")

	for i, entry := range scores {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-10d  %s\n", i+1, entry.Score, dateStr)
	}

	fmt.Println()
	if highScore, err := store.HighScore(difficulty); err == nil {
		fmt.Printf("Best: %d\n", highScore)
	}
	return nil
}

func printSummary(store *storage.Store) error {
	all, err := store.AllStats()
	if err != nil {
		return err
	}

	fmt.Printf("  %-8s  %-6s  %-6s  %-7s  %s\n", "Name", "Rounds", "Best", "Average", "Last played")
	fmt.Printf("  %-8s  %-6s  %-6s  %-7s  %s\n", "----", "------", "----", "-------", "-----------")

	for _, name := range config.DifficultyNames() {
		st, ok := all[name]
		if !ok {
			fmt.Printf("  %-8s  %-6d  %-6s  %-7s  %s\n", name, 0, "-", "-", "never")
			continue
		}
		fmt.Printf("  %-8s  %-6d  %-6d  %-7.1f  %s\n",
			name, st.Rounds, st.HighScore, st.AvgScore, st.LastPlayed.Format("2006-01-02 15:04"))
	}
	return nil
}
