package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/KrzyjoD/brainy-game-forge/internal/scenario"
	"github.com/KrzyjoD/brainy-game-forge/internal/storage"
)

// PickerChoice is the scenario selected in the picker.
type PickerChoice struct {
	Name   string
	Stored bool // false for a builtin scenario
}

// PickerKeyMap defines the key bindings for the scenario picker.
type PickerKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k PickerKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k PickerKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down}, {k.Select, k.Quit}}
}

// DefaultPickerKeyMap returns default key bindings.
func DefaultPickerKeyMap() PickerKeyMap {
	return PickerKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "move up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "move down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "play"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

var pickerTitleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("51")).Bold(true)

// pickerModel is the Bubble Tea model for the scenario picker screen.
type pickerModel struct {
	table   table.Model
	help    help.Model
	keys    PickerKeyMap
	choices []PickerChoice
	choice  *PickerChoice
}

// newPickerModel builds the picker over builtins plus stored scenarios.
func newPickerModel(stored []storage.ScenarioEntry) pickerModel {
	columns := []table.Column{
		{Title: "Scenario", Width: 24},
		{Title: "Theme", Width: 12},
		{Title: "Source", Width: 8},
	}

	var rows []table.Row
	var choices []PickerChoice

	for _, info := range scenario.Builtins() {
		rows = append(rows, table.Row{info.Name, info.Theme, "builtin"})
		choices = append(choices, PickerChoice{Name: info.Name})
	}
	for _, entry := range stored {
		rows = append(rows, table.Row{entry.Name, entry.Theme, "library"})
		choices = append(choices, PickerChoice{Name: entry.Name, Stored: true})
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(len(rows)+1),
	)

	styles := table.DefaultStyles()
	styles.Selected = styles.Selected.Foreground(lipgloss.Color("226")).Bold(true)
	t.SetStyles(styles)

	return pickerModel{
		table:   t,
		help:    help.New(),
		keys:    DefaultPickerKeyMap(),
		choices: choices,
	}
}

// Init implements tea.Model.
func (m pickerModel) Init() tea.Cmd {
	return nil
}

// Update handles picker input.
func (m pickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(keyMsg, m.keys.Select):
			if idx := m.table.Cursor(); idx >= 0 && idx < len(m.choices) {
				choice := m.choices[idx]
				m.choice = &choice
			}
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the picker.
func (m pickerModel) View() string {
	return fmt.Sprintf("\n %s\n\n%s\n\n%s\n",
		pickerTitleStyle.Render("Pick a scenario"),
		m.table.View(),
		m.help.View(m.keys),
	)
}

// RunPicker shows the scenario picker and returns the selection, or nil if
// the user backed out. store may be nil when the library is unavailable.
func RunPicker(store *storage.Store) (*PickerChoice, error) {
	var stored []storage.ScenarioEntry
	if store != nil {
		entries, err := store.ListScenarios()
		if err != nil {
			return nil, err
		}
		stored = entries
	}

	p := tea.NewProgram(newPickerModel(stored))
	final, err := p.Run()
	if err != nil {
		return nil, err
	}

	if m, ok := final.(pickerModel); ok {
		return m.choice, nil
	}
	return nil, nil
}
