package core

import "testing"

func TestRGB(t *testing.T) {
	if got := RGB(255, 128, 0); got != Color("#ff8000") {
		t.Errorf("RGB(255, 128, 0) = %q, expected #ff8000", got)
	}
	if got := RGB(0, 0, 0); got != Color("#000000") {
		t.Errorf("RGB(0, 0, 0) = %q, expected #000000", got)
	}
}

func TestParseHex(t *testing.T) {
	r, g, b, ok := Color("#1a2b3c").ParseHex()
	if !ok {
		t.Fatal("ParseHex() failed on valid hex color")
	}
	if r != 0x1a || g != 0x2b || b != 0x3c {
		t.Errorf("ParseHex() = (%d, %d, %d), expected (26, 43, 60)", r, g, b)
	}

	invalid := []Color{"", "240", "#fff", "#gggggg", "1a2b3c"}
	for _, c := range invalid {
		if _, _, _, ok := c.ParseHex(); ok {
			t.Errorf("ParseHex() accepted invalid color %q", c)
		}
	}
}

func TestColorDim(t *testing.T) {
	if got := Color("#808080").Dim(0.5); got != Color("#404040") {
		t.Errorf("Dim(0.5) = %q, expected #404040", got)
	}
	if got := Color("#ffffff").Dim(0); got != Color("#000000") {
		t.Errorf("Dim(0) = %q, expected #000000", got)
	}

	// Non-hex colors fall back to a dark gray ANSI code
	if got := Color("240").Dim(0.5); got != Color("240") {
		t.Errorf("Dim() on ANSI color = %q, expected 240", got)
	}

	// Factor is clamped to [0, 1]
	if got := Color("#102030").Dim(2); got != Color("#102030") {
		t.Errorf("Dim(2) = %q, expected unchanged color", got)
	}
}

func TestColorLerp(t *testing.T) {
	a := Color("#000000")
	b := Color("#ff0000")

	if got := a.Lerp(b, 0); got != a {
		t.Errorf("Lerp(_, 0) = %q, expected %q", got, a)
	}
	if got := a.Lerp(b, 1); got != b {
		t.Errorf("Lerp(_, 1) = %q, expected %q", got, b)
	}
	if got := a.Lerp(b, 0.5); got != Color("#7f0000") {
		t.Errorf("Lerp(_, 0.5) = %q, expected #7f0000", got)
	}

	// Non-hex operands leave the receiver unchanged
	if got := Color("240").Lerp(b, 0.5); got != Color("240") {
		t.Errorf("Lerp() with ANSI receiver = %q, expected 240", got)
	}
}
