package scenario

import (
	"fmt"
	"math"
)

// ValidationError describes why a scenario was rejected at initialization.
type ValidationError struct {
	Code    string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Validate checks a scenario's values. Shape errors (missing sections) are
// caught earlier during decoding; this covers ranges: positive dimensions
// and sizes, finite coordinates, non-negative speeds and point values.
func Validate(sc Scenario) error {
	if sc.Arena.Width <= 0 || sc.Arena.Height <= 0 {
		return ValidationError{
			Code:    "BAD_ARENA",
			Message: fmt.Sprintf("arena dimensions must be positive, got %gx%g", sc.Arena.Width, sc.Arena.Height),
		}
	}

	if sc.Player.Size <= 0 {
		return ValidationError{
			Code:    "BAD_PLAYER",
			Message: fmt.Sprintf("player size must be positive, got %g", sc.Player.Size),
		}
	}
	if sc.Player.Speed < 0 {
		return ValidationError{
			Code:    "BAD_PLAYER",
			Message: fmt.Sprintf("player speed must be non-negative, got %g", sc.Player.Speed),
		}
	}
	if !finite(sc.Player.X) || !finite(sc.Player.Y) {
		return ValidationError{
			Code:    "BAD_PLAYER",
			Message: "player position must be finite",
		}
	}

	for i, e := range sc.Enemies {
		if e.Size <= 0 {
			return ValidationError{
				Code:    "BAD_ENEMY",
				Message: fmt.Sprintf("enemy %d: size must be positive, got %g", i, e.Size),
			}
		}
		if !finite(e.X) || !finite(e.Y) || !finite(e.SpeedX) || !finite(e.SpeedY) {
			return ValidationError{
				Code:    "BAD_ENEMY",
				Message: fmt.Sprintf("enemy %d: position and velocity must be finite", i),
			}
		}
	}

	for i, c := range sc.Collectibles {
		if c.Size <= 0 {
			return ValidationError{
				Code:    "BAD_COLLECTIBLE",
				Message: fmt.Sprintf("collectible %d: size must be positive, got %g", i, c.Size),
			}
		}
		if c.Points < 0 {
			return ValidationError{
				Code:    "BAD_COLLECTIBLE",
				Message: fmt.Sprintf("collectible %d: points must be non-negative, got %d", i, c.Points),
			}
		}
		if !finite(c.X) || !finite(c.Y) {
			return ValidationError{
				Code:    "BAD_COLLECTIBLE",
				Message: fmt.Sprintf("collectible %d: position must be finite", i),
			}
		}
	}

	for i, o := range sc.Obstacles {
		if o.Width <= 0 || o.Height <= 0 {
			return ValidationError{
				Code:    "BAD_OBSTACLE",
				Message: fmt.Sprintf("obstacle %d: dimensions must be positive, got %gx%g", i, o.Width, o.Height),
			}
		}
		if !finite(o.X) || !finite(o.Y) {
			return ValidationError{
				Code:    "BAD_OBSTACLE",
				Message: fmt.Sprintf("obstacle %d: position must be finite", i),
			}
		}
	}

	return nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
