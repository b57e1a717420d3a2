package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/KrzyjoD/brainy-game-forge/internal/scenario"
	"github.com/KrzyjoD/brainy-game-forge/internal/storage"
)

var scenariosCmd = &cobra.Command{
	Use:   "scenarios",
	Short: "Manage the scenario library",
	Long: `Manage the scenario library stored on disk.

Builtin scenarios are embedded in the binary and always available;
imported scenarios live in a local SQLite database (see --db).`,
}

var scenariosListCmd = &cobra.Command{
	Use:   "list",
	Short: "List builtin and library scenarios",
	RunE:  runScenariosList,
}

var scenariosImportCmd = &cobra.Command{
	Use:   "import <file.yaml>",
	Short: "Import a YAML scenario into the library",
	Args:  cobra.ExactArgs(1),
	RunE:  runScenariosImport,
}

var scenariosExportCmd = &cobra.Command{
	Use:   "export <name> [file.yaml]",
	Short: "Export a scenario as YAML",
	Long: `Export a scenario as YAML. Writes to the given file, or to stdout
when no file is given. Builtins and library scenarios can both be exported.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runScenariosExport,
}

var scenariosDeleteCmd = &cobra.Command{
	Use:   "delete <name>",
	Short: "Delete a scenario from the library",
	Args:  cobra.ExactArgs(1),
	RunE:  runScenariosDelete,
}

func init() {
	scenariosCmd.AddCommand(scenariosListCmd)
	scenariosCmd.AddCommand(scenariosImportCmd)
	scenariosCmd.AddCommand(scenariosExportCmd)
	scenariosCmd.AddCommand(scenariosDeleteCmd)
}

func runScenariosList(cmd *cobra.Command, args []string) error {
	fmt.Println("Builtin scenarios:")
	for _, info := range scenario.Builtins() {
		fmt.Printf("  %-24s %s\n", info.Name, info.Theme)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	entries, err := store.ListScenarios()
	if err != nil {
		return err
	}

	fmt.Println("\nLibrary scenarios:")
	if len(entries) == 0 {
		fmt.Println("  (none - use 'forge scenarios import' to add one)")
		return nil
	}
	for _, entry := range entries {
		fmt.Printf("  %-24s %-12s %s\n", entry.Name, entry.Theme, entry.CreatedAt.Format("2006-01-02"))
	}
	return nil
}

func runScenariosImport(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("cannot read %s: %w", args[0], err)
	}

	sc, err := scenario.ParseYAML(data)
	if err != nil {
		return fmt.Errorf("%s: %w", args[0], err)
	}

	name := sc.Name
	if name == "" {
		name = strings.TrimSuffix(filepath.Base(args[0]), filepath.Ext(args[0]))
	}
	if scenario.IsBuiltin(name) {
		return fmt.Errorf("%q is a builtin scenario name; rename it first", name)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	if _, err := store.SaveScenario(name, sc.Theme, string(data)); err != nil {
		return err
	}

	fmt.Printf("Imported %q (theme: %s)\n", name, sc.Theme)
	return nil
}

func runScenariosExport(cmd *cobra.Command, args []string) error {
	name := args[0]

	var source []byte
	if scenario.IsBuiltin(name) {
		sc, err := scenario.LoadBuiltin(name)
		if err != nil {
			return err
		}
		source, err = scenario.MarshalYAML(sc)
		if err != nil {
			return err
		}
	} else {
		store, err := storage.Open(flagDBPath)
		if err != nil {
			return err
		}
		defer store.Close()

		entry, err := store.GetScenario(name)
		if err != nil {
			return err
		}
		source = []byte(entry.Source)
	}

	if len(args) == 2 {
		if err := os.WriteFile(args[1], source, 0o644); err != nil {
			return fmt.Errorf("cannot write %s: %w", args[1], err)
		}
		fmt.Printf("Exported %q to %s\n", name, args[1])
		return nil
	}

	fmt.Print(string(source))
	return nil
}

func runScenariosDelete(cmd *cobra.Command, args []string) error {
	name := args[0]
	if scenario.IsBuiltin(name) {
		return fmt.Errorf("%q is a builtin scenario and cannot be deleted", name)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	if err := store.DeleteScenario(name); err != nil {
		return err
	}

	fmt.Printf("Deleted %q\n", name)
	return nil
}
