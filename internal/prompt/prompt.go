package prompt

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
)

// ErrCancelled is returned when the user closes the prompt without
// accepting a username.
var ErrCancelled = errors.New("prompt cancelled")

// Prompter blocks until the user supplies a non-empty username.
type Prompter interface {
	Prompt(ctx context.Context) (string, error)
}

// hangupSignals end the prompt as if the user had cancelled it. bubbletea
// only traps SIGINT and SIGTERM, so closing the terminal window would
// otherwise kill the process.
var hangupSignals = []os.Signal{syscall.SIGHUP}

// Terminal prompts on the controlling terminal.
type Terminal struct {
	opts []tea.ProgramOption
}

func NewTerminal(opts ...tea.ProgramOption) *Terminal {
	return &Terminal{opts: opts}
}

func (t *Terminal) Prompt(ctx context.Context) (string, error) {
	ctx, stop := signal.NotifyContext(ctx, hangupSignals...)
	defer stop()

	opts := append([]tea.ProgramOption{tea.WithContext(ctx)}, t.opts...)
	p := tea.NewProgram(NewModel(), opts...)

	final, err := p.Run()
	if err != nil {
		if errors.Is(err, tea.ErrProgramKilled) || errors.Is(err, tea.ErrInterrupted) {
			return "", ErrCancelled
		}
		return "", fmt.Errorf("unable to initialize prompt: %w", err)
	}

	m, ok := final.(*Model)
	if !ok {
		return "", fmt.Errorf("unexpected prompt model %T", final)
	}
	username, ok := m.Username()
	if !ok {
		return "", ErrCancelled
	}
	return username, nil
}
