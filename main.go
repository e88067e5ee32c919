package main

import (
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/artpick/internal/artic"
	"github.com/llehouerou/artpick/internal/artist"
	"github.com/llehouerou/artpick/internal/config"
	"github.com/llehouerou/artpick/internal/errmsg"
	"github.com/llehouerou/artpick/internal/logging"
	"github.com/llehouerou/artpick/internal/reconciler"
	"github.com/llehouerou/artpick/internal/ui/picker"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return errors.New(errmsg.Format(errmsg.OpLoadConfig, err))
	}

	logPath, err := cfg.Log.FilePath()
	if err != nil {
		return errors.New(errmsg.Format(errmsg.OpOpenLog, err))
	}
	logger, err := logging.Open(logPath, cfg.Log.LevelName())
	if err != nil {
		return errors.New(errmsg.FormatWith(errmsg.OpOpenLog, logPath, err))
	}
	defer logger.Close()

	client := artic.NewClient(artic.Options{
		BaseURL:           cfg.API.BaseURL,
		UserAgent:         cfg.API.UserAgent,
		Timeout:           cfg.API.Timeout(),
		RequestsPerSecond: cfg.API.RequestsPerSecond,
	})

	rec := reconciler.New(client, artist.NewStore(), reconciler.Options{
		Debounce:    cfg.Search.Debounce(),
		MinQueryLen: cfg.Search.MinLength(),
		Logger:      logger.Logger,
	})

	logger.Info("artpick started", "api", cfg.API.BaseURL, "log", logPath)

	p := tea.NewProgram(picker.New(rec, picker.Options{Logger: logger.Logger}), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		logger.Error("program exited with error", "err", err)
		return errors.New(errmsg.Format(errmsg.OpInitialize, err))
	}

	logger.Info("artpick stopped", "selected", len(rec.Selected()))
	return nil
}
