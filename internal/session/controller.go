// Package session owns the run/stop/restart lifecycle of one play session
// and the tick discipline: exactly one logic step followed by one render
// per frame, never interleaved, with the host's frame pacing between
// iterations.
package session

import (
	"context"
	"time"

	"github.com/KrzyjoD/brainy-game-forge/internal/arena"
	"github.com/KrzyjoD/brainy-game-forge/internal/core"
	"github.com/KrzyjoD/brainy-game-forge/internal/scenario"
)

// DefaultTickRate is the frame rate used when the host doesn't specify one.
const DefaultTickRate = 30

// Status is the controller's lifecycle state.
type Status int

const (
	StatusIdle Status = iota
	StatusRunning
	StatusStopped
)

// String returns a human-readable name for the status.
func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusRunning:
		return "running"
	case StatusStopped:
		return "stopped"
	default:
		return "unknown"
	}
}

// Listener receives simulation events in the order the logic step produced
// them. Delivery is synchronous, within the tick.
type Listener func(arena.Event)

// Controller drives one session: it owns the simulation state, the input
// sampler and the screen buffer, and advances them one cooperative tick at
// a time. The host calls Advance from one goroutine (or one Bubble Tea
// update loop), so no locking is needed.
type Controller struct {
	source scenario.Scenario // immutable original, reused on restart
	state  *arena.State
	samp   *core.Sampler
	screen *core.Screen

	status     Status
	generation uint64 // bumped on Stop/Restart so stale frame callbacks are ignored

	listeners map[int]Listener
	nextID    int
}

// New validates the scenario and builds a controller in the idle state.
func New(sc scenario.Scenario) (*Controller, error) {
	state, err := arena.NewState(sc)
	if err != nil {
		return nil, err
	}

	return &Controller{
		source:    sc,
		state:     state,
		samp:      core.NewSampler(),
		screen:    core.NewScreen(int(sc.Arena.Width), int(sc.Arena.Height)),
		listeners: make(map[int]Listener),
	}, nil
}

// Subscribe registers a listener and returns its release func. The release
// is idempotent; hosts should call it on every teardown path so a discarded
// session holds no references into the host.
func (c *Controller) Subscribe(fn Listener) (unsubscribe func()) {
	id := c.nextID
	c.nextID++
	c.listeners[id] = fn

	released := false
	return func() {
		if released {
			return
		}
		released = true
		delete(c.listeners, id)
	}
}

// Status returns the current lifecycle state.
func (c *Controller) Status() Status {
	return c.status
}

// State exposes the simulation state for read-only use (HUD, tests).
func (c *Controller) State() *arena.State {
	return c.state
}

// Screen returns the buffer the renderer draws into each tick.
func (c *Controller) Screen() *core.Screen {
	return c.screen
}

// Generation identifies the current run; a frame callback scheduled before
// a Stop or Restart carries a stale generation and must be dropped.
func (c *Controller) Generation() uint64 {
	return c.generation
}

// SetKeyState forwards a press/release signal to the input sampler.
// Unmapped keys are ignored.
func (c *Controller) SetKeyState(key string, pressed bool) {
	c.samp.SetKeyState(key, pressed)
}

// ReleaseKeys clears all held input. Hosts without key-up events call this
// after every tick; it is also part of teardown.
func (c *Controller) ReleaseKeys() {
	c.samp.ReleaseAll()
}

// Start begins (or resumes scheduling of) the session. A no-op when
// already running.
func (c *Controller) Start() {
	if c.status == StatusRunning {
		return
	}
	c.status = StatusRunning
}

// Stop halts the session: no further ticks fire, and any frame callback
// already in flight is invalidated. Safe to call at any point between
// ticks, and a no-op when not running.
func (c *Controller) Stop() {
	if c.status != StatusRunning {
		return
	}
	c.status = StatusStopped
	c.generation++
	c.samp.ReleaseAll()
}

// Restart stops the session, rebuilds the simulation from the original
// scenario, re-fires the initial score/lives notifications so observers
// resync, and starts again. A no-op when the controller is still idle.
func (c *Controller) Restart() error {
	if c.status == StatusIdle {
		return nil
	}

	c.Stop()
	if err := c.state.Initialize(c.source); err != nil {
		return err
	}

	c.emit(arena.ScoreChangedEvent{Score: c.state.Score})
	c.emit(arena.LivesChangedEvent{Lives: c.state.Lives})

	c.status = StatusRunning
	return nil
}

// Advance performs exactly one tick: one logic step, then one render pass
// with the given elapsed session time. It reports whether the host should
// schedule another frame. Calling it while not running is a no-op that
// reports false, which is what guarantees Stop cancels pending frames.
func (c *Controller) Advance(elapsed time.Duration) bool {
	if c.status != StatusRunning {
		return false
	}

	events := c.state.Step(c.samp)
	for _, ev := range events {
		c.emit(ev)
	}

	arena.Render(c.screen, c.state, elapsed.Seconds())

	if !c.state.Running() {
		c.status = StatusStopped
		c.generation++
		c.samp.ReleaseAll()
		return false
	}
	return true
}

// Run drives the session on a wall-clock ticker until it ends, the context
// is cancelled, or Stop is called from a callback. Hosts with their own
// frame pacing (the TUI) call Advance directly instead.
func (c *Controller) Run(ctx context.Context, tickRate int) error {
	if tickRate <= 0 {
		tickRate = DefaultTickRate
	}

	c.Start()
	start := time.Now()
	ticker := time.NewTicker(time.Second / time.Duration(tickRate))
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			c.Stop()
			return ctx.Err()
		case <-ticker.C:
			if !c.Advance(time.Since(start)) {
				return nil
			}
		}
	}
}

// emit delivers an event to all listeners in registration order.
func (c *Controller) emit(ev arena.Event) {
	for id := 0; id < c.nextID; id++ {
		if fn, ok := c.listeners[id]; ok {
			fn(ev)
		}
	}
}
