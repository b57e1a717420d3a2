package core

import "fmt"

// Color identifies the foreground color of a screen cell. It holds either a
// hex color ("#rrggbb", the form scenarios use) or an ANSI 256-color code
// ("240"); both are understood downstream by the terminal styling layer.
type Color string

// ColorDefault leaves the terminal's default foreground untouched.
const ColorDefault Color = ""

// RGB builds a hex color from 8-bit channel values.
func RGB(r, g, b uint8) Color {
	return Color(fmt.Sprintf("#%02x%02x%02x", r, g, b))
}

// ParseHex decodes a "#rrggbb" color. ok is false for any other form.
func (c Color) ParseHex() (r, g, b uint8, ok bool) {
	if len(c) != 7 || c[0] != '#' {
		return 0, 0, 0, false
	}
	var rv, gv, bv int
	if _, err := fmt.Sscanf(string(c), "#%02x%02x%02x", &rv, &gv, &bv); err != nil {
		return 0, 0, 0, false
	}
	return uint8(rv), uint8(gv), uint8(bv), true
}

// Dim returns the color scaled toward black by the given factor in [0,1].
// Used for glow halos around entities. Non-hex colors fall back to a dark
// gray ANSI code so glow passes still read as dimmer than the body.
func (c Color) Dim(factor float64) Color {
	r, g, b, ok := c.ParseHex()
	if !ok {
		return "240"
	}
	if factor < 0 {
		factor = 0
	}
	if factor > 1 {
		factor = 1
	}
	return RGB(
		uint8(float64(r)*factor),
		uint8(float64(g)*factor),
		uint8(float64(b)*factor),
	)
}

// Lerp blends c toward other by t in [0,1]. Both colors must be hex;
// otherwise c is returned unchanged. Theme backgrounds use this to build
// vertical gradients.
func (c Color) Lerp(other Color, t float64) Color {
	r1, g1, b1, ok1 := c.ParseHex()
	r2, g2, b2, ok2 := other.ParseHex()
	if !ok1 || !ok2 {
		return c
	}
	t = ClampF(t, 0, 1)
	return RGB(
		uint8(float64(r1)+(float64(r2)-float64(r1))*t),
		uint8(float64(g1)+(float64(g2)-float64(g1))*t),
		uint8(float64(b1)+(float64(b2)-float64(b1))*t),
	)
}
