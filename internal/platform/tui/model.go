package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/KrzyjoD/brainy-game-forge/internal/arena"
	"github.com/KrzyjoD/brainy-game-forge/internal/session"
)

var (
	hudStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true)
	hudDimStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	hudWonStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("46")).Bold(true)
	hudLostStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
)

// hud is the host-side view of the observer events. It lives behind a
// pointer because Bubble Tea copies the model by value on every update,
// while the session's event listener needs one stable write target.
type hud struct {
	score   int
	lives   int
	outcome arena.Outcome
}

// Model is the Bubble Tea model hosting one play session. It owns the
// frame pacing (via tea.Tick) and feeds key events into the session's
// input sampler; the session controller does everything else.
type Model struct {
	ctl      *session.Controller
	name     string
	tickRate int
	keys     *KeyMapper

	hud         *hud
	unsubscribe func()

	start    time.Time
	quitting bool
}

// NewModel creates a Bubble Tea model around an idle session controller.
func NewModel(ctl *session.Controller, name string, tickRate int) Model {
	if tickRate <= 0 {
		tickRate = session.DefaultTickRate
	}

	h := &hud{
		score: ctl.State().Score,
		lives: ctl.State().Lives,
	}

	unsubscribe := ctl.Subscribe(func(ev arena.Event) {
		switch e := ev.(type) {
		case arena.ScoreChangedEvent:
			h.score = e.Score
		case arena.LivesChangedEvent:
			h.lives = e.Lives
		case arena.GameWonEvent:
			h.outcome = arena.OutcomeWon
		case arena.GameLostEvent:
			h.outcome = arena.OutcomeLost
		}
	})

	return Model{
		ctl:         ctl,
		name:        name,
		tickRate:    tickRate,
		keys:        NewKeyMapper(),
		hud:         h,
		unsubscribe: unsubscribe,
		start:       time.Now(),
	}
}

// Init starts the session and schedules the first tick.
func (m Model) Init() tea.Cmd {
	m.ctl.Start()
	return tickCmd(m.tickRate, m.ctl.Generation())
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case TickMsg:
		return m.handleTick(msg)
	}

	return m, nil
}

// handleKey processes keyboard input. Terminals deliver no key-release
// events, so presses are held until the tick completes and then released
// by handleTick.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	moveKey, control := m.keys.MapKey(msg)

	switch control {
	case ControlQuit:
		return m.teardown()

	case ControlRestart:
		if m.ctl.Status() == session.StatusStopped {
			if err := m.ctl.Restart(); err != nil {
				return m.teardown()
			}
			m.hud.outcome = arena.OutcomeNone
			m.start = time.Now()
			return m, tickCmd(m.tickRate, m.ctl.Generation())
		}
		return m, nil
	}

	if moveKey != "" {
		m.ctl.SetKeyState(moveKey, true)
	}
	return m, nil
}

// handleTick advances the session by exactly one tick and re-arms the
// frame timer only while the session keeps running.
func (m Model) handleTick(msg TickMsg) (tea.Model, tea.Cmd) {
	// A tick scheduled before a stop or restart is stale; drop it.
	if msg.Gen != m.ctl.Generation() {
		return m, nil
	}

	cont := m.ctl.Advance(time.Since(m.start))

	// Synthesized release: without key-up events a held flag would stick
	// forever, so one press moves the player for one tick.
	m.ctl.ReleaseKeys()

	if !cont {
		return m, nil
	}
	return m, tickCmd(m.tickRate, m.ctl.Generation())
}

// teardown releases the event subscription and held keys on every exit path.
func (m Model) teardown() (tea.Model, tea.Cmd) {
	m.ctl.Stop()
	m.ctl.ReleaseKeys()
	if m.unsubscribe != nil {
		m.unsubscribe()
	}
	m.quitting = true
	return m, tea.Quit
}

// View renders the HUD line, the arena surface, and a footer hint.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	status := ""
	switch m.hud.outcome {
	case arena.OutcomeWon:
		status = "  " + hudWonStyle.Render("YOU WIN! press r to play again")
	case arena.OutcomeLost:
		status = "  " + hudLostStyle.Render("GAME OVER — press r to retry")
	}

	header := hudStyle.Render(fmt.Sprintf(" %s  Score: %d  Lives: %d", m.name, m.hud.score, m.hud.lives)) + status
	footer := hudDimStyle.Render(" arrows/wasd move · r restart · q quit")

	return header + "\n" + RenderScreen(m.ctl.Screen()) + "\n" + footer
}

// Run starts the Bubble Tea program hosting the given session.
func Run(ctl *session.Controller, name string, tickRate int) error {
	p := tea.NewProgram(
		NewModel(ctl, name, tickRate),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
