package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KrzyjoD/brainy-game-forge/internal/arena"
)

var themeDescriptions = map[arena.ThemeKind]string{
	arena.ThemeSpace:      "deep-space gradient with twinkling stars",
	arena.ThemeUnderwater: "blue depths, light rays and rising bubbles",
	arena.ThemeForest:     "green canopy, tree silhouettes and drifting motes",
	arena.ThemeMedieval:   "castle brickwork with flickering torches",
	arena.ThemeCyber:      "neon grid, digital rain and a sweeping scan line",
}

var themesCmd = &cobra.Command{
	Use:   "themes",
	Short: "List the background themes",
	Long: `List the animated background themes a scenario can name.

Unknown theme names fall back to space.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("Available themes:")
		for _, kind := range arena.ThemeKinds() {
			fmt.Printf("  %-12s %s\n", kind.String(), themeDescriptions[kind])
		}
	},
}
