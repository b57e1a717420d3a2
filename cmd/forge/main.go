// forge renders and simulates prompt-generated 2D arcade scenes in the
// terminal: steer a glowing circle, grab the pickups, dodge the enemies.
//
// Usage:
//
//	forge play [scenario]     - Play a scenario (picker when omitted)
//	forge scenarios <cmd>     - Manage the scenario library
//	forge themes              - List background themes
//	forge serve               - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>  - Set tick rate (default: 30)
//	--db <path>   - Set scenario library path (default: ~/.forge/scenarios.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS    int
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "forge",
	Short: "Brainy Game Forge - prompt-built arcade scenes in your terminal",
	Long: `Brainy Game Forge plays small 2D arcade scenes: a glowing player circle
that must collect every pickup while avoiding roaming enemies and static
obstacles, rendered over animated themed backgrounds.

Available commands:
  play       - Play a scenario (interactive picker when none given)
  scenarios  - List, import, export or delete library scenarios
  themes     - List the background themes
  serve      - Start SSH server for remote play

Examples:
  forge play
  forge play orbit-run
  forge play --file ./my-scene.yaml
  forge scenarios import ./my-scene.yaml
  forge serve --ssh :23235`,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 30, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.forge/scenarios.db", "Path to scenario library database")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scenariosCmd)
	rootCmd.AddCommand(themesCmd)
	rootCmd.AddCommand(serveCmd)
}
