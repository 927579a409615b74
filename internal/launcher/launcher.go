package launcher

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"apptimer/internal/timer"
)

// Launcher runs a command to completion and reports when it started and
// when control returned.
type Launcher struct {
	clock  timer.Clock
	logger *log.Logger

	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
}

type Option func(*Launcher)

// WithClock overrides the time source used for the start and end instants.
func WithClock(c timer.Clock) Option {
	return func(l *Launcher) {
		l.clock = c
	}
}

// WithStdio replaces the streams handed to the child. By default the child
// shares the terminal of this process.
func WithStdio(stdin io.Reader, stdout, stderr io.Writer) Option {
	return func(l *Launcher) {
		l.stdin = stdin
		l.stdout = stdout
		l.stderr = stderr
	}
}

func New(logger *log.Logger, opts ...Option) *Launcher {
	l := &Launcher{
		clock:  time.Now,
		logger: logger,
		stdin:  os.Stdin,
		stdout: os.Stdout,
		stderr: os.Stderr,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Run spawns name with args and blocks until it exits. The child's exit
// status is not inspected: only a failure to spawn is returned as an error.
func (l *Launcher) Run(ctx context.Context, name string, args ...string) (time.Time, time.Time, error) {
	t := timer.New(l.clock)
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdin = l.stdin
	cmd.Stdout = l.stdout
	cmd.Stderr = l.stderr

	l.debug("launching application", "command", name, "args", args)

	start := t.Start()
	err := cmd.Run()
	end := t.Stop()

	if err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			return start, end, fmt.Errorf("failed to spawn subprocess %s: %w", commandLine(name, args), err)
		}
		l.debug("application exited with non-zero status", "code", exitErr.ExitCode())
	}

	l.debug("application exited", "elapsed", t.Elapsed())
	return start, end, nil
}

func (l *Launcher) debug(msg string, keyvals ...interface{}) {
	if l.logger != nil {
		l.logger.Debug(msg, keyvals...)
	}
}

func commandLine(name string, args []string) string {
	return strings.Join(append([]string{name}, args...), " ")
}
