package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/smartsnakes/internal/config"
	"github.com/vovakirdan/smartsnakes/internal/core"
	"github.com/vovakirdan/smartsnakes/internal/games/snake"
	"github.com/vovakirdan/smartsnakes/internal/logging"
	"github.com/vovakirdan/smartsnakes/internal/platform/tui"
	"github.com/vovakirdan/smartsnakes/internal/session"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Play in the terminal. The board needs 72x48 characters; the game
pauses while the terminal is smaller.

Logs are discarded unless --log-file is set, since the game owns the terminal.`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}

	logger, closeLog, err := logging.New(logging.Options{
		Path:  flagLogFile,
		Level: flagLogLevel,
	})
	if err != nil {
		return err
	}
	defer closeLog()

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	rt := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: snake.TickRate,
		Seed:     seed(),
	}
	logger.Info("starting terminal game", "width", width, "height", height, "seed", rt.Seed)

	game := snake.New(cfg)
	recorder := session.NewRecorder(logger, game.ID())

	if err := tui.Run(game, recorder, rt); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	logger.Debug("final state", "snapshot", game.Snapshot())
	return nil
}

// seed returns the --seed flag, or a time-based seed when it is zero.
func seed() int64 {
	if flagSeed != 0 {
		return flagSeed
	}
	return time.Now().UnixNano()
}
