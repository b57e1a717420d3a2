package scenario

import (
	"embed"
	"fmt"
	"path"
	"sort"
	"strings"
)

//go:embed builtins/*.yaml
var builtinFS embed.FS

// BuiltinInfo describes one embedded scenario.
type BuiltinInfo struct {
	Name  string
	Theme string
}

// Builtins lists the embedded scenarios, sorted by name.
func Builtins() []BuiltinInfo {
	entries, err := builtinFS.ReadDir("builtins")
	if err != nil {
		return nil
	}

	infos := make([]BuiltinInfo, 0, len(entries))
	for _, entry := range entries {
		name := strings.TrimSuffix(entry.Name(), path.Ext(entry.Name()))
		sc, loadErr := LoadBuiltin(name)
		if loadErr != nil {
			continue
		}
		infos = append(infos, BuiltinInfo{Name: name, Theme: sc.Theme})
	}

	sort.Slice(infos, func(i, j int) bool {
		return infos[i].Name < infos[j].Name
	})
	return infos
}

// LoadBuiltin parses one embedded scenario by name.
func LoadBuiltin(name string) (Scenario, error) {
	data, err := builtinFS.ReadFile(path.Join("builtins", name+".yaml"))
	if err != nil {
		return Scenario{}, fmt.Errorf("scenario: unknown builtin %q", name)
	}
	return ParseYAML(data)
}

// IsBuiltin checks if an embedded scenario with the given name exists.
func IsBuiltin(name string) bool {
	_, err := builtinFS.ReadFile(path.Join("builtins", name+".yaml"))
	return err == nil
}
