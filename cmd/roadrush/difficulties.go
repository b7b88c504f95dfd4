package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/roadrush/internal/config"
)

var difficultiesCmd = &cobra.Command{
	Use:     "difficulties",
	Aliases: []string{"list"},
	Short:   "List difficulty presets",
	Long:    `Shows the obstacle speed and spawn interval of every difficulty.`,
	Args:    cobra.NoArgs,
	Run:     runDifficulties,
}

func runDifficulties(_ *cobra.Command, _ []string) {
	fmt.Println("Difficulties:")
	fmt.Println()

	fmt.Printf("  %-3s  %-8s  %-6s  %s\n", "Key", "Name", "Speed", "Spawn every")
	fmt.Printf("  %-3s  %-8s  %-6s  %s\n", "---", "----", "-----", "-----------")

	for i, p := range config.Difficulties() {
		fmt.Printf("  %-3d  %-8s  %-6g  %s\n", i+1, p.Name, p.Speed, p.SpawnInterval)
	}

	fmt.Println()
	fmt.Println("Run 'roadrush play --difficulty <name>' to skip the menu.")
}
