package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/smartsnakes/internal/config"
	"github.com/vovakirdan/smartsnakes/internal/core"
	"github.com/vovakirdan/smartsnakes/internal/games/snake"
	"github.com/vovakirdan/smartsnakes/internal/logging"
	"github.com/vovakirdan/smartsnakes/internal/platform/window"
	"github.com/vovakirdan/smartsnakes/internal/session"
)

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Open a desktop window sized from the config (720x480 by default).

Logs go to stderr unless --log-file is set.`,
	Args: cobra.NoArgs,
	RunE: runWindow,
}

func runWindow(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}

	logger, closeLog, err := logging.New(logging.Options{
		Path:     flagLogFile,
		Level:    flagLogLevel,
		Fallback: os.Stderr,
	})
	if err != nil {
		return err
	}
	defer closeLog()

	game := snake.New(cfg)
	game.Reset(core.RuntimeConfig{
		ScreenW:  cfg.Window.Width,
		ScreenH:  cfg.Window.Height,
		TickRate: snake.TickRate,
		Seed:     seed(),
	})

	recorder := session.NewRecorder(logger, game.ID())
	recorder.Start()

	if err := window.Run(window.New(cfg, game, recorder, logger)); err != nil {
		return err
	}
	logger.Debug("final state", "snapshot", game.Snapshot())
	return nil
}
