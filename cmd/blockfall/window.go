package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/blockfall/internal/game"
	"github.com/vovakirdan/blockfall/internal/platform/window"
)

var flagCellSize int

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Start a game in a desktop window.

Controls:
  Left, Right    - Move (hold to slide to the wall)
  Down           - Soft drop (repeats while held)
  Space          - Hard drop
  Up/X           - Rotate clockwise
  Z              - Rotate counterclockwise
  C/Shift        - Hold
  Q/Esc          - Quit`,
	Args: cobra.NoArgs,
	RunE: runWindow,
}

func init() {
	windowCmd.Flags().IntVar(&flagCellSize, "cell", 0, "Cell size in pixels (0 = window.cell_size from config)")
}

func runWindow(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if flagCellSize < 0 {
		return fmt.Errorf("invalid --cell %d", flagCellSize)
	}
	if flagCellSize > 0 {
		cfg.Window.CellSize = flagCellSize
	}

	logger, closeLog, err := newLogger(os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	s := seed()
	logger.Info("starting", "seed", s)
	session := game.NewSession(cfg, newRand(s), game.WithLogger(logger))

	return window.Run(session, window.Options{
		CellSize: cfg.Window.CellSize,
		Logger:   logger,
	})
}
