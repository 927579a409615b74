package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"apptimer/internal/app"
	"apptimer/internal/config"
	"apptimer/internal/launcher"
	"apptimer/internal/logger"
	"apptimer/internal/prompt"
)

func main() {
	paths := config.ResolvePaths()
	if err := paths.EnsureDir(); err != nil {
		fmt.Fprintf(os.Stderr, "Error creating configuration directory: %v\n", err)
		os.Exit(1)
	}

	l, closer, err := logger.New(os.Stderr, paths.LogFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	code := run(context.Background(), paths, l, prompt.NewTerminal(tea.WithAltScreen()))
	closer.Close()
	os.Exit(code)
}

func run(ctx context.Context, paths config.Paths, l *log.Logger, p prompt.Prompter) int {
	cfg, err := config.LoadOrCreate(paths.ConfigFile, config.Defaults(paths.ConfigFile))
	if err != nil {
		l.Error("invalid configuration", "path", paths.ConfigFile, "err", err)
		return 1
	}
	l.Debug("configuration loaded", "app_path", cfg.AppPath, "output_path", cfg.OutputPath)

	a := &app.App{
		Config:   cfg,
		Prompter: p,
		Launcher: launcher.New(l),
		Logger:   l,
	}

	if err := a.Run(ctx); err != nil {
		if errors.Is(err, prompt.ErrCancelled) {
			l.Debug("user closed the prompt")
			return 0
		}
		l.Error("run failed", "err", err)
		return 1
	}
	return 0
}
