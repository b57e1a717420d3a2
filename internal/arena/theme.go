package arena

import (
	"math"

	"github.com/KrzyjoD/brainy-game-forge/internal/core"
)

// ThemeKind is the closed set of background themes. Scenarios carry a free
// string identifier; anything unrecognized falls back to the space theme.
type ThemeKind int

const (
	ThemeSpace ThemeKind = iota
	ThemeUnderwater
	ThemeForest
	ThemeMedieval
	ThemeCyber
)

// ThemeKinds lists all themes in display order.
func ThemeKinds() []ThemeKind {
	return []ThemeKind{ThemeSpace, ThemeUnderwater, ThemeForest, ThemeMedieval, ThemeCyber}
}

// ParseTheme maps a scenario theme identifier to a ThemeKind.
func ParseTheme(id string) ThemeKind {
	switch id {
	case "underwater":
		return ThemeUnderwater
	case "forest":
		return ThemeForest
	case "medieval":
		return ThemeMedieval
	case "cyber":
		return ThemeCyber
	default:
		return ThemeSpace
	}
}

// String returns the theme identifier.
func (k ThemeKind) String() string {
	switch k {
	case ThemeUnderwater:
		return "underwater"
	case ThemeForest:
		return "forest"
	case ThemeMedieval:
		return "medieval"
	case ThemeCyber:
		return "cyber"
	default:
		return "space"
	}
}

// paintBackground draws the animated theme backdrop. All animation phase
// derives from t (elapsed seconds) and cell coordinates alone, so a frame
// at a given t is identical across runs and after restarts.
func (k ThemeKind) paintBackground(dst *core.Screen, t float64) {
	switch k {
	case ThemeUnderwater:
		paintUnderwater(dst, t)
	case ThemeForest:
		paintForest(dst, t)
	case ThemeMedieval:
		paintMedieval(dst, t)
	case ThemeCyber:
		paintCyber(dst, t)
	default:
		paintSpace(dst, t)
	}
}

// hash2D produces a stable pseudo-random value per cell, used to scatter
// stars, bubbles and particles without stored animation state.
func hash2D(x, y int) uint64 {
	h := uint64(x)*0x9E3779B185EBCA87 ^ uint64(y)*0xC2B2AE3D27D4EB4F
	h ^= h >> 29
	h *= 0xBF58476D1CE4E5B9
	h ^= h >> 32
	return h
}

// paintSpace draws a nebula gradient with a twinkling starfield.
func paintSpace(dst *core.Screen, t float64) {
	w, h := dst.Width(), dst.Height()
	top := core.Color("#05010f")
	bottom := core.Color("#221040")

	for y := 0; y < h; y++ {
		rowColor := top.Lerp(bottom, float64(y)/float64(core.Max(h-1, 1)))
		for x := 0; x < w; x++ {
			dst.SetCell(x, y, ' ', rowColor)

			hv := hash2D(x, y)
			if hv%19 != 0 {
				continue
			}
			// Twinkle: each star pulses on its own phase.
			phase := float64(hv%628) / 100
			bright := 0.5 + 0.5*math.Sin(t*2+phase)
			star := '·'
			if hv%95 == 0 {
				star = '✦'
			}
			dst.SetCell(x, y, star, core.Color("#9fa8da").Lerp("#ffffff", bright))
		}
	}
}

// paintUnderwater draws a blue depth gradient with rising bubbles and
// slanted light rays.
func paintUnderwater(dst *core.Screen, t float64) {
	w, h := dst.Width(), dst.Height()
	top := core.Color("#0277bd")
	bottom := core.Color("#01303f")

	for y := 0; y < h; y++ {
		rowColor := top.Lerp(bottom, float64(y)/float64(core.Max(h-1, 1)))
		for x := 0; x < w; x++ {
			// Light rays sweep slowly from the surface.
			if (x+y*2+int(t*2))%26 < 2 && y < h*2/3 {
				dst.SetCell(x, y, '╲', rowColor.Lerp("#b3e5fc", 0.35))
				continue
			}
			dst.SetCell(x, y, ' ', rowColor)
		}
	}

	// Bubbles rise in fixed columns, wrapping at the surface.
	for x := 0; x < w; x++ {
		hv := hash2D(x, 0)
		if hv%11 != 0 {
			continue
		}
		speed := 2 + float64(hv%3)
		y := h - 1 - (int(t*speed)+int(hv%uint64(core.Max(h, 1))))%h
		r := 'o'
		if hv%22 == 0 {
			r = '°'
		}
		dst.SetCell(x, y, r, "#e1f5fe")
	}
}

// paintForest draws a green gradient with drifting pollen and tree
// silhouettes along the bottom.
func paintForest(dst *core.Screen, t float64) {
	w, h := dst.Width(), dst.Height()
	top := core.Color("#1b5e20")
	bottom := core.Color("#081f0a")

	for y := 0; y < h; y++ {
		rowColor := top.Lerp(bottom, float64(y)/float64(core.Max(h-1, 1)))
		for x := 0; x < w; x++ {
			dst.SetCell(x, y, ' ', rowColor)
		}
	}

	// Drifting particles move right at differing speeds per row.
	for y := 0; y < h; y++ {
		hv := hash2D(0, y)
		if hv%5 != 0 {
			continue
		}
		x := (int(t*(1.5+float64(hv%3))) + int(hv%uint64(core.Max(w, 1)))) % w
		dst.SetCell(x, y, '•', "#dce775")
	}

	// Tree silhouettes: dark triangles rooted at stable positions.
	for x := 0; x < w; x++ {
		hv := hash2D(x, 7)
		if hv%13 != 0 {
			continue
		}
		height := 3 + int(hv%4)
		for dy := 0; dy < height; dy++ {
			half := dy * (x%2 + 1) / 2
			for dx := -half; dx <= half; dx++ {
				dst.SetCell(x+dx, h-1-height+dy+1, '▲', "#0d2b10")
			}
		}
	}
}

// paintMedieval draws a stone-brick wall with flickering torches.
func paintMedieval(dst *core.Screen, t float64) {
	w, h := dst.Width(), dst.Height()
	stoneA := core.Color("#4e4a46")
	stoneB := core.Color("#3d3936")
	mortar := core.Color("#2b2826")

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			// Rows of offset bricks separated by mortar lines.
			if y%3 == 2 {
				dst.SetCell(x, y, '▁', mortar)
				continue
			}
			offset := 0
			if (y/3)%2 == 1 {
				offset = 4
			}
			if (x+offset)%8 == 0 {
				dst.SetCell(x, y, '▏', mortar)
				continue
			}
			c := stoneA
			if hash2D(x/8, y/3)%3 == 0 {
				c = stoneB
			}
			dst.SetCell(x, y, '▒', c)
		}
	}

	// Torches at fixed intervals; the flame color flickers with time.
	for x := 5; x < w; x += 16 {
		flicker := 0.5 + 0.5*math.Sin(t*9+float64(x))
		flame := core.Color("#e65100").Lerp("#ffca28", flicker)
		y := h / 4
		dst.SetCell(x, y, '▲', flame)
		dst.SetCell(x, y+1, '┃', "#5d4037")
	}
}

// paintCyber draws a dark grid with a scanning line and digital particles.
func paintCyber(dst *core.Screen, t float64) {
	w, h := dst.Width(), dst.Height()
	bg := core.Color("#060a12")
	grid := core.Color("#103a4a")

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			switch {
			case y%4 == 0 && x%8 == 0:
				dst.SetCell(x, y, '┼', grid)
			case y%4 == 0:
				dst.SetCell(x, y, '─', grid)
			case x%8 == 0:
				dst.SetCell(x, y, '│', grid)
			default:
				dst.SetCell(x, y, ' ', bg)
			}
		}
	}

	// Digital particles: scattered bits that flip with time.
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			hv := hash2D(x, y)
			if hv%37 != 0 {
				continue
			}
			bit := '0'
			if (hv/37+uint64(t*2))%2 == 0 {
				bit = '1'
			}
			dst.SetCell(x, y, bit, "#00695c")
		}
	}

	// Scanning line sweeps left to right and wraps.
	if w > 0 {
		scanX := int(t*12) % w
		for y := 0; y < h; y++ {
			dst.SetCell(scanX, y, '│', "#18ffff")
		}
	}
}
