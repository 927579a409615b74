package prompt

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// MaxUsernameLength caps how much the input field accepts.
const MaxUsernameLength = 32

type outcome int

const (
	pending outcome = iota
	accepted
	cancelled
)

// Model asks for a username until a non-empty value is accepted or the
// user cancels.
type Model struct {
	input    textinput.Model
	outcome  outcome
	username string

	// set after an empty value was submitted
	showHint bool
	width    int
}

func NewModel() *Model {
	ti := textinput.New()
	ti.Prompt = ""
	ti.Placeholder = "username"
	ti.CharLimit = MaxUsernameLength
	ti.Width = MaxUsernameLength
	ti.Focus()

	return &Model{input: ti}
}

func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "esc":
		m.outcome = cancelled
		return m, tea.Quit
	case "enter":
		value := m.input.Value()
		if value == "" {
			m.showHint = true
			return m, nil
		}
		m.username = value
		m.outcome = accepted
		return m, tea.Quit
	}

	m.showHint = false
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// Username returns the accepted value and whether one was accepted.
func (m *Model) Username() (string, bool) {
	return m.username, m.outcome == accepted
}

func (m *Model) done() bool {
	return m.outcome != pending
}
