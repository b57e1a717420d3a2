package arena

// Event is a notification produced by the logic step. Events are plain
// values behind a marker interface so listeners can switch on concrete
// types; the step returns them in evaluation order, which makes call order
// deterministic and testable.
type Event interface {
	arenaEvent()
}

// ScoreChangedEvent fires once per collected pickup, carrying the new total.
type ScoreChangedEvent struct {
	Score int
}

func (ScoreChangedEvent) arenaEvent() {}

// LivesChangedEvent fires on every enemy contact, carrying the new count.
// It always precedes a GameLostEvent produced by the same hit.
type LivesChangedEvent struct {
	Lives int
}

func (LivesChangedEvent) arenaEvent() {}

// GameWonEvent fires when the last collectible is picked up.
type GameWonEvent struct {
	Score int
}

func (GameWonEvent) arenaEvent() {}

// GameLostEvent fires when lives reach zero.
type GameLostEvent struct {
	Score int
}

func (GameLostEvent) arenaEvent() {}
