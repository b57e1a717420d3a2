package arena

import (
	"github.com/KrzyjoD/brainy-game-forge/internal/core"
)

// Push resolution constants. The enemy knockback is a fixed offset
// regardless of entity sizes: with enemies larger than ~100 units the
// player can land back inside the enemy's radius on the next tick. That is
// the documented behavior, kept literal rather than made size-relative.
const (
	obstaclePushPad   = 10.0
	enemyPushDistance = 50.0
)

// Step advances the state by one tick and returns the events it produced,
// in evaluation order. The phase order is fixed for determinism:
//
//  1. player movement + clamp
//  2. obstacle collision resolution
//  3. enemy movement (wall reflect + clamp)
//  4. player-enemy collisions (may end the tick on loss)
//  5. player-collectible pickups
//  6. win check
//
// Step is a no-op once the session has a terminal outcome.
func (s *State) Step(in core.DirectionSource) []Event {
	if !s.Running() {
		return nil
	}
	s.Tick++

	var events []Event

	s.movePlayer(in)
	s.resolveObstacles()
	s.moveEnemies()

	events, halted := s.resolveEnemyHits(events)
	if halted {
		return events
	}

	events = s.collectPickups(events)

	// Win requires at least one collectible: an obstacle-only scenario has
	// no terminal path and runs until externally stopped.
	if len(s.Collectibles) > 0 && s.RemainingCollectibles() == 0 {
		s.Outcome = OutcomeWon
		events = append(events, GameWonEvent{Score: s.Score})
	}

	return events
}

// movePlayer applies every active direction independently, then clamps the
// player's full extent inside the arena. Opposite directions cancel
// naturally because each axis is updated by whichever direction is active.
func (s *State) movePlayer(in core.DirectionSource) {
	if in == nil {
		return
	}
	p := &s.Player
	if in.IsActive(core.DirUp) {
		p.Pos.Y -= p.Speed
	}
	if in.IsActive(core.DirDown) {
		p.Pos.Y += p.Speed
	}
	if in.IsActive(core.DirLeft) {
		p.Pos.X -= p.Speed
	}
	if in.IsActive(core.DirRight) {
		p.Pos.X += p.Speed
	}
	p.Pos = s.clampToArena(p.Pos, p.Size)
}

// resolveObstacles pushes the player out of any overlapping obstacle, along
// the vector from the obstacle's center to the player's center, placing the
// player radius+pad units out from the obstacle center. A zero-length push
// vector (player exactly centered on the obstacle) leaves the position
// unchanged.
func (s *State) resolveObstacles() {
	p := &s.Player
	for i := range s.Obstacles {
		rect := s.Obstacles[i].Rect
		if !core.CircleOverlapsRect(p.Pos, p.Radius(), rect) {
			continue
		}

		dir := p.Pos.Sub(rect.Center())
		dist := dir.Len()
		if dist == 0 {
			continue
		}

		p.Pos = rect.Center().Add(dir.Scale((p.Radius() + obstaclePushPad) / dist))
		p.Pos = s.clampToArena(p.Pos, p.Size)
	}
}

// moveEnemies advances each enemy by its velocity, reflecting (not
// wrapping) the velocity component on wall contact, then clamping the
// position inside the arena regardless.
func (s *State) moveEnemies() {
	for i := range s.Enemies {
		e := &s.Enemies[i]
		e.Pos = e.Pos.Add(e.Vel)

		half := e.Size / 2
		if e.Pos.X <= half || e.Pos.X >= s.ArenaW-half {
			e.Vel.X = -e.Vel.X
		}
		if e.Pos.Y <= half || e.Pos.Y >= s.ArenaH-half {
			e.Vel.Y = -e.Vel.Y
		}
		e.Pos = s.clampToArena(e.Pos, e.Size)
	}
}

// resolveEnemyHits handles player-enemy contacts in enemy order. Each hit
// costs a life and emits LivesChangedEvent; at zero lives the session is
// marked lost and the tick halts immediately, skipping any remaining
// collision and collectible checks. Otherwise the player is knocked back a
// fixed distance along the enemy-to-player vector (zero-length vector: no
// push, the hit still counts).
func (s *State) resolveEnemyHits(events []Event) ([]Event, bool) {
	p := &s.Player
	for i := range s.Enemies {
		e := &s.Enemies[i]
		if !core.CirclesOverlap(p.Pos, p.Size, e.Pos, e.Size) {
			continue
		}

		s.Lives--
		if s.Lives < 0 {
			s.Lives = 0
		}
		events = append(events, LivesChangedEvent{Lives: s.Lives})

		if s.Lives == 0 {
			s.Outcome = OutcomeLost
			events = append(events, GameLostEvent{Score: s.Score})
			return events, true
		}

		dir := p.Pos.Sub(e.Pos)
		dist := dir.Len()
		if dist == 0 {
			continue
		}
		p.Pos = p.Pos.Add(dir.Scale(enemyPushDistance / dist))
		p.Pos = s.clampToArena(p.Pos, p.Size)
	}
	return events, false
}

// collectPickups marks every uncollected collectible the player overlaps
// this tick, in scenario order. Score increases per pickup and a
// ScoreChangedEvent fires once per pickup; the flag never reverts.
func (s *State) collectPickups(events []Event) []Event {
	p := &s.Player
	for i := range s.Collectibles {
		c := &s.Collectibles[i]
		if c.Collected {
			continue
		}
		if !core.CirclesOverlap(p.Pos, p.Size, c.Pos, c.Size) {
			continue
		}
		c.Collected = true
		s.Score += c.Points
		events = append(events, ScoreChangedEvent{Score: s.Score})
	}
	return events
}
