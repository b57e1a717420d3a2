// Package scenario defines the immutable initial-state description consumed
// at session start, its YAML form, and its validation rules. A scenario is
// treated as an opaque, trusted record from the provider: a malformed shape
// is a fatal configuration error at initialization, never silently patched
// with defaults.
package scenario

// Scenario is the full initial-state description for one play session.
type Scenario struct {
	Name         string
	Theme        string // theme identifier; unknown values fall back to space
	Arena        Arena
	Player       Player
	Enemies      []Enemy
	Collectibles []Collectible
	Obstacles    []Obstacle
}

// Arena is the fixed-size rectangular playable area.
type Arena struct {
	Width  float64
	Height float64
}

// Player describes the player circle's initial state.
type Player struct {
	X, Y  float64
	Size  float64 // diameter-equivalent
	Color string
	Speed float64 // units moved per tick per active direction
}

// Enemy describes one roaming enemy circle.
type Enemy struct {
	X, Y   float64
	Size   float64
	Color  string
	SpeedX float64
	SpeedY float64
}

// Collectible describes one glowing pickup.
type Collectible struct {
	X, Y   float64
	Size   float64
	Color  string
	Points int
}

// Obstacle describes one static axis-aligned rectangle.
type Obstacle struct {
	X, Y          float64
	Width, Height float64
	Color         string
}
