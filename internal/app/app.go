package app

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"

	"apptimer/internal/config"
	"apptimer/internal/launcher"
	"apptimer/internal/prompt"
	"apptimer/internal/timelog"
)

// App runs one timed session: ask for a username, run the configured
// application, and append the result to the output log.
type App struct {
	Config   config.Config
	Prompter prompt.Prompter
	Launcher *launcher.Launcher
	Logger   *log.Logger
}

// Run returns prompt.ErrCancelled when the user closes the prompt. No
// record is written in that case.
func (a *App) Run(ctx context.Context) error {
	username, err := a.Prompter.Prompt(ctx)
	if err != nil {
		return err
	}
	a.Logger.Debug("username accepted", "username", username)

	name, args := a.Config.Command()
	start, end, err := a.Launcher.Run(ctx, name, args...)
	if err != nil {
		return err
	}

	rec := timelog.NewRecord(start, end, username)
	if err := timelog.Append(a.Config.OutputPath, rec); err != nil {
		return fmt.Errorf("%s: %w", a.Config.OutputPath, err)
	}

	a.Logger.Info("run recorded",
		"username", rec.Username,
		"elapsedSeconds", rec.ElapsedSeconds(),
		"output", a.Config.OutputPath,
	)
	a.logHistory()
	return nil
}

func (a *App) logHistory() {
	records, err := timelog.ReadAll(a.Config.OutputPath)
	if err != nil {
		a.Logger.Debug("unable to read run history", "err", err)
		return
	}

	var total int64
	for _, r := range records {
		total += r.ElapsedSeconds()
	}
	a.Logger.Debug("run history", "runs", len(records), "totalSeconds", total)
}
