package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/KrzyjoD/brainy-game-forge/internal/core"
)

// styleCache memoizes lipgloss styles per color. Theme backgrounds produce
// a bounded palette (gradients are quantized per row), so the cache stays
// small across frames.
var styleCache = map[core.Color]lipgloss.Style{}

func styleFor(c core.Color) lipgloss.Style {
	if s, ok := styleCache[c]; ok {
		return s
	}
	s := lipgloss.NewStyle()
	if c != core.ColorDefault {
		s = s.Foreground(lipgloss.Color(string(c)))
	}
	styleCache[c] = s
	return s
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape
// sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := 0; y < s.Height(); y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			sb.WriteString(styleFor(startColor).Render(run.String()))
		}
	}
	return sb.String()
}
