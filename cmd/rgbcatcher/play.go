package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/rgb-catcher/internal/config"
	"github.com/vovakirdan/rgb-catcher/internal/core"
	"github.com/vovakirdan/rgb-catcher/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the game",
	Long: `Start RGB Catcher.

Controls:
  Left/A, Right/D   - Move the basket
  Space/Enter       - Start a game from the title screen
  Ctrl+S            - Save a screenshot to ~/.rgbcatcher/screenshots
  Q/Ctrl+C          - Quit

Examples:
  rgbcatcher play
  rgbcatcher play --fps 30
  rgbcatcher play --config ./my-catcher.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, args []string) error {
	logger, closeLog, err := newLogger(flagLogFile, flagLogLevel)
	if err != nil {
		return err
	}
	defer closeLog()

	cfg, source, err := config.LoadCatcher(flagConfig)
	if err != nil {
		return err
	}
	logger.Info("config loaded", "source", source)

	rt := core.DefaultConfig()
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		rt.ScreenW = w
		rt.ScreenH = h
	}
	rt.TickRate = flagFPS
	rt.Seed = flagSeed

	logger.Debug("starting", "width", rt.ScreenW, "height", rt.ScreenH, "fps", rt.TickRate, "seed", rt.Seed)
	if err := tui.Run(rt, cfg, logger); err != nil {
		logger.Error("game stopped", "err", err)
		return fmt.Errorf("run game: %w", err)
	}
	return nil
}
