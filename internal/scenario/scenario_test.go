package scenario

import (
	"errors"
	"math"
	"strings"
	"testing"
)

const validYAML = `
name: test-scene
theme: space
arena:
  width: 72
  height: 22
player:
  x: 10
  y: 10
  size: 2
  color: "#00ffff"
  speed: 1
enemies:
  - x: 30
    y: 10
    size: 2
    color: "#ff0055"
    speed_x: 0.5
    speed_y: -0.3
collectibles:
  - x: 50
    y: 15
    size: 1
    color: "#ffd700"
    points: 10
obstacles:
  - x: 20
    y: 5
    width: 4
    height: 3
    color: "#888888"
`

func TestParseYAMLValid(t *testing.T) {
	sc, err := ParseYAML([]byte(validYAML))
	if err != nil {
		t.Fatalf("ParseYAML() failed: %v", err)
	}

	if sc.Name != "test-scene" {
		t.Errorf("Name = %q, expected test-scene", sc.Name)
	}
	if sc.Theme != "space" {
		t.Errorf("Theme = %q, expected space", sc.Theme)
	}
	if sc.Arena.Width != 72 || sc.Arena.Height != 22 {
		t.Errorf("Arena = %gx%g, expected 72x22", sc.Arena.Width, sc.Arena.Height)
	}
	if sc.Player.Speed != 1 {
		t.Errorf("Player.Speed = %g, expected 1", sc.Player.Speed)
	}
	if len(sc.Enemies) != 1 || sc.Enemies[0].SpeedY != -0.3 {
		t.Errorf("Enemies = %+v, expected one enemy with speed_y -0.3", sc.Enemies)
	}
	if len(sc.Collectibles) != 1 || sc.Collectibles[0].Points != 10 {
		t.Errorf("Collectibles = %+v, expected one worth 10 points", sc.Collectibles)
	}
	if len(sc.Obstacles) != 1 || sc.Obstacles[0].Width != 4 {
		t.Errorf("Obstacles = %+v, expected one of width 4", sc.Obstacles)
	}
}

func TestParseYAMLMissingSections(t *testing.T) {
	tests := []struct {
		name string
		drop string
		code string
	}{
		{"no arena", "arena:", "MISSING_ARENA"},
		{"no player", "player:", "MISSING_PLAYER"},
		{"no enemies", "enemies:", "MISSING_ENEMIES"},
		{"no collectibles", "collectibles:", "MISSING_COLLECTIBLES"},
		{"no obstacles", "obstacles:", "MISSING_OBSTACLES"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			doc := dropSection(validYAML, tc.drop)
			_, err := ParseYAML([]byte(doc))

			var verr ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("ParseYAML() = %v, expected a ValidationError", err)
			}
			if verr.Code != tc.code {
				t.Errorf("error code = %q, expected %q", verr.Code, tc.code)
			}
		})
	}
}

// dropSection removes one top-level section (its key line and every indented
// line after it) from a YAML document.
func dropSection(doc, key string) string {
	lines := strings.Split(doc, "\n")
	var out []string
	skipping := false
	for _, line := range lines {
		if strings.HasPrefix(line, key) {
			skipping = true
			continue
		}
		if skipping {
			if line != "" && (line[0] == ' ' || line[0] == '-') {
				continue
			}
			skipping = false
		}
		out = append(out, line)
	}
	return strings.Join(out, "\n")
}

func TestParseYAMLEmptyArraysAllowed(t *testing.T) {
	doc := `
name: empty
theme: forest
arena: {width: 40, height: 20}
player: {x: 5, y: 5, size: 2, color: "#ffffff", speed: 1}
enemies: []
collectibles: []
obstacles: []
`
	sc, err := ParseYAML([]byte(doc))
	if err != nil {
		t.Fatalf("ParseYAML() failed on empty arrays: %v", err)
	}
	if len(sc.Enemies) != 0 || len(sc.Collectibles) != 0 || len(sc.Obstacles) != 0 {
		t.Error("empty arrays should parse to empty slices")
	}
}

func TestParseYAMLMalformed(t *testing.T) {
	if _, err := ParseYAML([]byte("{not yaml")); err == nil {
		t.Error("ParseYAML() should fail on malformed YAML")
	}
}

func TestValidateRanges(t *testing.T) {
	base := func() Scenario {
		sc, err := ParseYAML([]byte(validYAML))
		if err != nil {
			t.Fatalf("fixture scenario is invalid: %v", err)
		}
		return sc
	}

	tests := []struct {
		name   string
		mutate func(*Scenario)
		code   string
	}{
		{"zero arena width", func(s *Scenario) { s.Arena.Width = 0 }, "BAD_ARENA"},
		{"negative arena height", func(s *Scenario) { s.Arena.Height = -5 }, "BAD_ARENA"},
		{"zero player size", func(s *Scenario) { s.Player.Size = 0 }, "BAD_PLAYER"},
		{"negative player speed", func(s *Scenario) { s.Player.Speed = -1 }, "BAD_PLAYER"},
		{"NaN player position", func(s *Scenario) { s.Player.X = math.NaN() }, "BAD_PLAYER"},
		{"zero enemy size", func(s *Scenario) { s.Enemies[0].Size = 0 }, "BAD_ENEMY"},
		{"infinite enemy velocity", func(s *Scenario) { s.Enemies[0].SpeedX = math.Inf(1) }, "BAD_ENEMY"},
		{"zero collectible size", func(s *Scenario) { s.Collectibles[0].Size = 0 }, "BAD_COLLECTIBLE"},
		{"negative points", func(s *Scenario) { s.Collectibles[0].Points = -1 }, "BAD_COLLECTIBLE"},
		{"zero obstacle width", func(s *Scenario) { s.Obstacles[0].Width = 0 }, "BAD_OBSTACLE"},
		{"NaN obstacle position", func(s *Scenario) { s.Obstacles[0].Y = math.NaN() }, "BAD_OBSTACLE"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			sc := base()
			tc.mutate(&sc)

			err := Validate(sc)
			var verr ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("Validate() = %v, expected a ValidationError", err)
			}
			if verr.Code != tc.code {
				t.Errorf("error code = %q, expected %q", verr.Code, tc.code)
			}
		})
	}
}

func TestValidationErrorFormat(t *testing.T) {
	err := ValidationError{Code: "BAD_ARENA", Message: "nope"}
	if err.Error() != "[BAD_ARENA] nope" {
		t.Errorf("Error() = %q, expected [BAD_ARENA] nope", err.Error())
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	sc, err := ParseYAML([]byte(validYAML))
	if err != nil {
		t.Fatalf("ParseYAML() failed: %v", err)
	}

	data, err := MarshalYAML(sc)
	if err != nil {
		t.Fatalf("MarshalYAML() failed: %v", err)
	}

	back, err := ParseYAML(data)
	if err != nil {
		t.Fatalf("ParseYAML() failed on marshaled output: %v", err)
	}
	if back.Name != sc.Name || len(back.Enemies) != len(sc.Enemies) {
		t.Error("round-tripped scenario lost data")
	}
}

func TestBuiltins(t *testing.T) {
	infos := Builtins()
	if len(infos) != 5 {
		t.Fatalf("Builtins() returned %d scenarios, expected 5", len(infos))
	}

	// One scenario per theme
	themes := map[string]bool{}
	for _, info := range infos {
		themes[info.Theme] = true
	}
	for _, theme := range []string{"space", "underwater", "forest", "medieval", "cyber"} {
		if !themes[theme] {
			t.Errorf("no builtin scenario uses theme %q", theme)
		}
	}

	// Sorted by name
	for i := 1; i < len(infos); i++ {
		if infos[i-1].Name >= infos[i].Name {
			t.Errorf("Builtins() not sorted: %q before %q", infos[i-1].Name, infos[i].Name)
		}
	}

	// Every builtin must parse and validate
	for _, info := range infos {
		if _, err := LoadBuiltin(info.Name); err != nil {
			t.Errorf("LoadBuiltin(%q) failed: %v", info.Name, err)
		}
		if !IsBuiltin(info.Name) {
			t.Errorf("IsBuiltin(%q) = false for a listed builtin", info.Name)
		}
	}
}

func TestLoadBuiltinUnknown(t *testing.T) {
	if _, err := LoadBuiltin("no-such-scene"); err == nil {
		t.Error("LoadBuiltin() should fail for unknown names")
	}
	if IsBuiltin("no-such-scene") {
		t.Error("IsBuiltin() should be false for unknown names")
	}
}
