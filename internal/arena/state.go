// Package arena holds the mutable model of one play session and the
// per-tick simulation and rendering that operate on it. The state is owned
// exclusively by the logic step within a tick; the renderer only reads it.
package arena

import (
	"github.com/KrzyjoD/brainy-game-forge/internal/core"
	"github.com/KrzyjoD/brainy-game-forge/internal/scenario"
)

// StartingLives is the number of lives at session start.
const StartingLives = 3

// Outcome is the terminal result of a session. Exactly one of
// running/won/lost holds at any time; OutcomeNone means still running.
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeWon
	OutcomeLost
)

// String returns a human-readable name for the outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomeNone:
		return "running"
	case OutcomeWon:
		return "won"
	case OutcomeLost:
		return "lost"
	default:
		return "unknown"
	}
}

// Player is the player-controlled circle.
type Player struct {
	Pos   core.Vec2
	Size  float64 // diameter-equivalent
	Color core.Color
	Speed float64
}

// Radius returns half the player's size.
func (p *Player) Radius() float64 {
	return p.Size / 2
}

// Enemy is a roaming circle that bounces elastically off arena walls.
type Enemy struct {
	Pos   core.Vec2
	Size  float64
	Color core.Color
	Vel   core.Vec2
}

// Collectible is a glowing pickup. Immutable once spawned except for the
// Collected flag, which transitions false to true exactly once.
type Collectible struct {
	Pos       core.Vec2
	Size      float64
	Color     core.Color
	Points    int
	Collected bool
}

// Obstacle is a static axis-aligned rectangle. Never moves, never destroyed.
type Obstacle struct {
	Rect  core.Rect
	Color core.Color
}

// State is the in-memory model of one play session.
type State struct {
	ArenaW, ArenaH float64
	Theme          ThemeKind

	Player       Player
	Enemies      []Enemy
	Collectibles []Collectible
	Obstacles    []Obstacle

	Score   int
	Lives   int
	Outcome Outcome
	Tick    uint64
}

// NewState validates the scenario and builds a fresh state from it.
func NewState(sc scenario.Scenario) (*State, error) {
	s := &State{}
	if err := s.Initialize(sc); err != nil {
		return nil, err
	}
	return s, nil
}

// Initialize resets all entities, score and lives from the immutable
// scenario snapshot. It fails only on a malformed scenario; nothing is
// silently defaulted. Every entity is a fresh copy, so a restart never
// reuses mutated state from the previous run.
func (s *State) Initialize(sc scenario.Scenario) error {
	if err := scenario.Validate(sc); err != nil {
		return err
	}

	s.ArenaW = sc.Arena.Width
	s.ArenaH = sc.Arena.Height
	s.Theme = ParseTheme(sc.Theme)

	s.Player = Player{
		Pos:   core.Vec2{X: sc.Player.X, Y: sc.Player.Y},
		Size:  sc.Player.Size,
		Color: core.Color(sc.Player.Color),
		Speed: sc.Player.Speed,
	}

	s.Enemies = make([]Enemy, 0, len(sc.Enemies))
	for _, e := range sc.Enemies {
		s.Enemies = append(s.Enemies, Enemy{
			Pos:   core.Vec2{X: e.X, Y: e.Y},
			Size:  e.Size,
			Color: core.Color(e.Color),
			Vel:   core.Vec2{X: e.SpeedX, Y: e.SpeedY},
		})
	}

	s.Collectibles = make([]Collectible, 0, len(sc.Collectibles))
	for _, c := range sc.Collectibles {
		s.Collectibles = append(s.Collectibles, Collectible{
			Pos:    core.Vec2{X: c.X, Y: c.Y},
			Size:   c.Size,
			Color:  core.Color(c.Color),
			Points: c.Points,
		})
	}

	s.Obstacles = make([]Obstacle, 0, len(sc.Obstacles))
	for _, o := range sc.Obstacles {
		s.Obstacles = append(s.Obstacles, Obstacle{
			Rect:  core.Rect{X: o.X, Y: o.Y, W: o.Width, H: o.Height},
			Color: core.Color(o.Color),
		})
	}

	s.Score = 0
	s.Lives = StartingLives
	s.Outcome = OutcomeNone
	s.Tick = 0

	return nil
}

// Running reports whether the session has no terminal outcome yet.
func (s *State) Running() bool {
	return s.Outcome == OutcomeNone
}

// RemainingCollectibles counts pickups not yet collected.
func (s *State) RemainingCollectibles() int {
	n := 0
	for i := range s.Collectibles {
		if !s.Collectibles[i].Collected {
			n++
		}
	}
	return n
}

// clampToArena restricts a circle center so its full extent stays inside
// the arena on both axes.
func (s *State) clampToArena(pos core.Vec2, size float64) core.Vec2 {
	half := size / 2
	return core.Vec2{
		X: core.ClampF(pos.X, half, s.ArenaW-half),
		Y: core.ClampF(pos.Y, half, s.ArenaH-half),
	}
}
