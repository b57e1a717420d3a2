package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/KrzyjoD/brainy-game-forge/internal/platform/tui"
	"github.com/KrzyjoD/brainy-game-forge/internal/scenario"
	"github.com/KrzyjoD/brainy-game-forge/internal/session"
	"github.com/KrzyjoD/brainy-game-forge/internal/storage"
)

var (
	flagPlayFile  string
	flagPlayTheme string
)

var playCmd = &cobra.Command{
	Use:   "play [scenario]",
	Short: "Play a scenario",
	Long: `Play an arcade scenario in the terminal.

Without arguments an interactive picker lists the builtin scenarios and
the scenario library. With a name, the builtins are checked first, then
the library. With --file, the scenario is loaded from a YAML file.

Examples:
  forge play
  forge play orbit-run
  forge play --file ./my-scene.yaml
  forge play kelp-dive --theme cyber`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagPlayFile, "file", "", "Load scenario from a YAML file")
	playCmd.Flags().StringVar(&flagPlayTheme, "theme", "", "Override the scenario's background theme")
}

func runPlay(cmd *cobra.Command, args []string) error {
	sc, name, err := resolveScenario(args)
	if err != nil {
		return err
	}
	if name == "" {
		// Picker dismissed without a choice.
		return nil
	}

	if flagPlayTheme != "" {
		sc.Theme = flagPlayTheme
	}
	if sc.Name != "" {
		name = sc.Name // HUD shows the scenario's display name
	}

	if err := checkTerminalSize(sc); err != nil {
		return err
	}

	ctl, err := session.New(sc)
	if err != nil {
		return err
	}

	return tui.Run(ctl, name, flagFPS)
}

// resolveScenario turns the play arguments into a parsed scenario. An empty
// returned name means the user backed out of the picker.
func resolveScenario(args []string) (scenario.Scenario, string, error) {
	if flagPlayFile != "" {
		data, err := os.ReadFile(flagPlayFile)
		if err != nil {
			return scenario.Scenario{}, "", fmt.Errorf("cannot read %s: %w", flagPlayFile, err)
		}
		sc, err := scenario.ParseYAML(data)
		if err != nil {
			return scenario.Scenario{}, "", fmt.Errorf("%s: %w", flagPlayFile, err)
		}
		return sc, sc.Name, nil
	}

	if len(args) == 1 {
		return loadByName(args[0])
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		// The picker still works over builtins when the library is broken.
		fmt.Fprintf(os.Stderr, "warning: scenario library unavailable: %v\n", err)
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	choice, err := tui.RunPicker(store)
	if err != nil {
		return scenario.Scenario{}, "", err
	}
	if choice == nil {
		return scenario.Scenario{}, "", nil
	}

	if choice.Stored {
		return loadStored(choice.Name)
	}
	sc, err := scenario.LoadBuiltin(choice.Name)
	return sc, choice.Name, err
}

// loadByName resolves a scenario name, builtins before the library.
func loadByName(name string) (scenario.Scenario, string, error) {
	if scenario.IsBuiltin(name) {
		sc, err := scenario.LoadBuiltin(name)
		return sc, name, err
	}
	return loadStored(name)
}

func loadStored(name string) (scenario.Scenario, string, error) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return scenario.Scenario{}, "", err
	}
	defer store.Close()

	entry, err := store.GetScenario(name)
	if errors.Is(err, storage.ErrNotFound) {
		return scenario.Scenario{}, "", fmt.Errorf("unknown scenario %q (try 'forge scenarios list')", name)
	}
	if err != nil {
		return scenario.Scenario{}, "", err
	}

	sc, err := scenario.ParseYAML([]byte(entry.Source))
	if err != nil {
		return scenario.Scenario{}, "", fmt.Errorf("stored scenario %q: %w", name, err)
	}
	return sc, name, nil
}

// checkTerminalSize rejects terminals too small for the arena plus the
// HUD and footer rows.
func checkTerminalSize(sc scenario.Scenario) error {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return nil
	}

	w, h, err := term.GetSize(fd)
	if err != nil {
		return nil
	}

	needW := int(sc.Arena.Width)
	needH := int(sc.Arena.Height) + 2
	if w < needW || h < needH {
		return fmt.Errorf("terminal too small: need %dx%d, have %dx%d", needW, needH, w, h)
	}
	return nil
}
