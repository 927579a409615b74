package prompt

import (
	"context"
	"io"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func typeText(m *Model, text string) {
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(text)})
}

func isQuit(t *testing.T, cmd tea.Cmd) bool {
	t.Helper()
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func TestAcceptNonEmpty(t *testing.T) {
	m := NewModel()
	typeText(m, "alice")

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.True(t, isQuit(t, cmd))

	username, ok := m.Username()
	assert.True(t, ok)
	assert.Equal(t, "alice", username)
	assert.Equal(t, accepted, m.outcome)
	assert.Empty(t, m.View())
}

func TestEmptyEnterRedisplays(t *testing.T) {
	m := NewModel()

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.False(t, isQuit(t, cmd))
	assert.True(t, m.showHint)
	assert.Contains(t, m.View(), "A username is required.")

	_, ok := m.Username()
	assert.False(t, ok)

	// typing clears the hint and the prompt can still be accepted
	typeText(m, "bob")
	assert.False(t, m.showHint)

	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.True(t, isQuit(t, cmd))
	username, ok := m.Username()
	assert.True(t, ok)
	assert.Equal(t, "bob", username)
}

func TestCancel(t *testing.T) {
	for _, key := range []tea.KeyType{tea.KeyEsc, tea.KeyCtrlC} {
		m := NewModel()
		typeText(m, "carol")

		_, cmd := m.Update(tea.KeyMsg{Type: key})
		assert.True(t, isQuit(t, cmd))
		assert.Equal(t, cancelled, m.outcome)

		_, ok := m.Username()
		assert.False(t, ok)
	}
}

func TestInputLengthIsCapped(t *testing.T) {
	m := NewModel()
	typeText(m, strings.Repeat("x", MaxUsernameLength+8))

	assert.Len(t, m.input.Value(), MaxUsernameLength)
}

func TestViewShowsTitle(t *testing.T) {
	m := NewModel()
	m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})

	view := m.View()
	assert.Contains(t, view, Title)
	assert.Contains(t, view, "Username:")
}

func TestTerminalPrompt(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	p := NewTerminal(
		tea.WithInput(strings.NewReader("alice\r")),
		tea.WithOutput(io.Discard),
		tea.WithoutRenderer(),
	)

	username, err := p.Prompt(ctx)
	require.NoError(t, err)
	assert.Equal(t, "alice", username)
}

func TestTerminalPromptContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	r, w := io.Pipe()
	defer w.Close()

	p := NewTerminal(
		tea.WithInput(r),
		tea.WithOutput(io.Discard),
		tea.WithoutRenderer(),
	)

	_, err := p.Prompt(ctx)
	require.ErrorIs(t, err, ErrCancelled)
}
