package arena

import (
	"math"

	"github.com/KrzyjoD/brainy-game-forge/internal/core"
)

// Glow pass widths, in cells beyond the body radius. The player's halo is
// the widest to signal primacy; collectible glow pulses around its base.
const (
	playerGlowPad      = 2.5
	enemyGlowPad       = 1.5
	obstacleGlowPad    = 1.0
	collectibleGlowPad = 1.5
	collectiblePulse   = 1.0 // pulse amplitude added to the base pad
	pulseFrequency     = 4.0 // radians per second
)

// Render draws the state into the screen buffer, back to front: theme
// background, obstacles, uncollected collectibles, enemies, player.
//
// t is the elapsed session time in seconds and is the only animation
// driver; rendering keeps no state of its own, so frames are reproducible
// for any fixed t and restart-safe.
func Render(dst *core.Screen, s *State, t float64) {
	s.Theme.paintBackground(dst, t)

	for i := range s.Obstacles {
		drawObstacle(dst, &s.Obstacles[i])
	}

	for i := range s.Collectibles {
		c := &s.Collectibles[i]
		if c.Collected {
			continue
		}
		// Pulsing glow: blur radius oscillates sinusoidally, phased per
		// collectible so they don't pulse in lockstep.
		pad := collectibleGlowPad + collectiblePulse*math.Sin(t*pulseFrequency+float64(i))
		drawGlowCircle(dst, c.Pos, c.Size/2, pad, c.Color)
	}

	for i := range s.Enemies {
		e := &s.Enemies[i]
		drawGlowCircle(dst, e.Pos, e.Size/2, enemyGlowPad, e.Color)
	}

	drawGlowCircle(dst, s.Player.Pos, s.Player.Radius(), playerGlowPad, s.Player.Color)
}

// drawObstacle fills the rectangle and surrounds it with a one-cell halo.
func drawObstacle(dst *core.Screen, o *Obstacle) {
	x0 := int(math.Floor(o.Rect.X))
	y0 := int(math.Floor(o.Rect.Y))
	x1 := int(math.Ceil(o.Rect.Right()))
	y1 := int(math.Ceil(o.Rect.Bottom()))

	glow := o.Color.Dim(0.4)
	pad := int(obstacleGlowPad)
	for y := y0 - pad; y < y1+pad; y++ {
		for x := x0 - pad; x < x1+pad; x++ {
			inside := x >= x0 && x < x1 && y >= y0 && y < y1
			if inside {
				dst.SetCell(x, y, '▓', o.Color)
			} else {
				dst.SetCell(x, y, '░', glow)
			}
		}
	}
}

// drawGlowCircle draws a filled circle with a dimmer halo ring extending
// pad cells beyond the body radius. Glow cells never overwrite body cells.
func drawGlowCircle(dst *core.Screen, center core.Vec2, radius, pad float64, c core.Color) {
	if radius <= 0 {
		radius = 0.5
	}
	outer := radius + math.Max(pad, 0)
	glow := c.Dim(0.4)

	x0 := int(math.Floor(center.X - outer))
	x1 := int(math.Ceil(center.X + outer))
	y0 := int(math.Floor(center.Y - outer))
	y1 := int(math.Ceil(center.Y + outer))

	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			d := core.Vec2{X: float64(x) + 0.5, Y: float64(y) + 0.5}.Sub(center).Len()
			switch {
			case d <= radius:
				dst.SetCell(x, y, '█', c)
			case d <= outer:
				dst.SetCell(x, y, '░', glow)
			}
		}
	}
}
