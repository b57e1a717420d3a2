package tui

import (
	"strings"
	"testing"

	"github.com/KrzyjoD/brainy-game-forge/internal/core"
)

func TestRenderScreenPreservesRunes(t *testing.T) {
	s := core.NewScreen(4, 2)
	s.DrawText(0, 0, "ab", core.Color("#ff0000"))
	s.DrawText(0, 1, "cd", core.ColorDefault)

	out := RenderScreen(s)

	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, expected 2", len(lines))
	}
	// Styling may add escape sequences depending on the color profile, but
	// the cell runes must survive in order.
	for _, want := range []string{"ab", "cd"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q: %q", want, out)
		}
	}
}

func TestRenderScreenGroupsRuns(t *testing.T) {
	// A row with one uniform color must come through as one contiguous run.
	s := core.NewScreen(6, 1)
	s.DrawText(0, 0, "aaabbb", core.Color("#00ff00"))

	out := RenderScreen(s)
	if !strings.Contains(out, "aaabbb") {
		t.Errorf("uniform-color row split up: %q", out)
	}
}
