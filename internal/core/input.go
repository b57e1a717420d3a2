package core

// Direction is one of the four logical movement directions.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// String returns a human-readable name for the direction.
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// keyBindings maps physical key names to logical directions. Arrow keys and
// WASD are aliases for the same four directions; anything else is ignored.
var keyBindings = map[string]Direction{
	"up":    DirUp,
	"w":     DirUp,
	"down":  DirDown,
	"s":     DirDown,
	"left":  DirLeft,
	"a":     DirLeft,
	"right": DirRight,
	"d":     DirRight,
}

// DirectionSource is the read side of the input sampler, consumed by the
// physics step.
type DirectionSource interface {
	IsActive(d Direction) bool
}

// Sampler tracks which movement directions are currently held. It carries
// no timing logic: press/release signals set flags, the physics step reads
// them. Simultaneous opposite directions cancel naturally because each axis
// is applied independently.
type Sampler struct {
	active [4]bool
}

// NewSampler creates an empty input sampler.
func NewSampler() *Sampler {
	return &Sampler{}
}

// SetKeyState records a press (pressed=true) or release of a physical key.
// Unmapped keys are ignored.
func (s *Sampler) SetKeyState(key string, pressed bool) {
	d, ok := keyBindings[key]
	if !ok {
		return
	}
	s.active[d] = pressed
}

// SetDirection records a press or release of a logical direction directly,
// bypassing the key binding table.
func (s *Sampler) SetDirection(d Direction, pressed bool) {
	if d < DirUp || d > DirRight {
		return
	}
	s.active[d] = pressed
}

// IsActive reports whether the given direction is currently held.
func (s *Sampler) IsActive(d Direction) bool {
	if d < DirUp || d > DirRight {
		return false
	}
	return s.active[d]
}

// ReleaseAll clears every held direction. Called on session teardown so a
// discarded session cannot leak key state, and by hosts that synthesize
// releases (terminals deliver no key-up events).
func (s *Sampler) ReleaseAll() {
	for i := range s.active {
		s.active[i] = false
	}
}
