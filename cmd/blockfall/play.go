package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/blockfall/internal/core"
	"github.com/vovakirdan/blockfall/internal/game"
	"github.com/vovakirdan/blockfall/internal/platform/tui"
)

var flagFPS int

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start a game in the terminal.

Controls:
  Left/H, Right/L  - Move (hold to slide to the wall)
  Down/J           - Soft drop
  Space            - Hard drop
  Up/X             - Rotate clockwise
  Z                - Rotate counterclockwise
  C                - Hold
  Ctrl+S           - Save a screenshot
  ?                - Toggle help
  Q/Esc/Ctrl+C     - Quit

Terminals do not report key releases, so a key counts as released after
terminal.release_after (90ms by default) without input. Most terminals wait
250-600ms before autorepeat starts, so holding Left or Right moves one step,
is released, then steps again and re-arms the slide when autorepeat begins.
Set terminal.release_after above your autorepeat delay to treat the whole hold
as one press; quick taps then stay held for that long.

Examples:
  blockfall play
  blockfall play --fps 30
  blockfall play --seed 42 --log-file blockfall.log --log-level debug`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	// The root command plays too, so it takes the same flags.
	for _, c := range []*cobra.Command{rootCmd, playCmd} {
		c.Flags().IntVar(&flagFPS, "fps", 0, "Tick rate (0 = terminal.tick_rate from config)")
	}
}

func runPlay(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if flagFPS < 0 {
		return fmt.Errorf("invalid --fps %d", flagFPS)
	}
	if flagFPS > 0 {
		cfg.Terminal.TickRate = flagFPS
	}

	// The terminal is the game screen; logs go nowhere unless --log-file is set.
	logger, closeLog, err := newLogger(io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width, height = w, h
	}

	rc := core.DefaultConfig()
	rc.ScreenW, rc.ScreenH = width, height
	rc.TickRate = cfg.Terminal.TickRate
	rc.Seed = seed()

	logger.Info("starting", "seed", rc.Seed, "size", fmt.Sprintf("%dx%d", width, height))
	session := game.NewSession(cfg, newRand(rc.Seed), game.WithLogger(logger))

	return tui.Run(session, tui.Options{
		Runtime:      rc,
		ReleaseAfter: cfg.Terminal.ReleaseAfter,
		Logger:       logger,
	})
}
