// blockfall is a falling-block puzzle game for the terminal and the desktop.
//
// Usage:
//
//	blockfall                - Play in the terminal (same as play)
//	blockfall play           - Play in the terminal
//	blockfall window         - Play in a desktop window
//	blockfall shapes         - Print the shape catalog
//	blockfall bag            - Print the piece order for a seed
//	blockfall config         - Print the effective configuration
//
// Global flags:
//
//	--seed <value>       - RNG seed for a reproducible piece order (0 = time based)
//	--config <path>      - Custom config YAML
//	--log-level <level>  - debug, info, warn or error
//	--log-file <path>    - Append logs to a file
package main

import (
	"fmt"
	"io"
	"math/rand"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/blockfall/internal/config"
)

var (
	// Global flags
	flagSeed     int64
	flagConfig   string
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "blockfall",
	Short: "Blockfall - a falling-block puzzle for your terminal",
	Long: `Blockfall drops the seven classic shapes into a 10x20 well.
Complete rows to clear them. A piece that no longer fits wipes the board.

Available commands:
  play     - Play in the terminal (default)
  window   - Play in a desktop window
  shapes   - Print every shape and rotation
  bag      - Print the piece order a seed produces
  config   - Print the effective configuration

Examples:
  blockfall
  blockfall play --seed 42
  blockfall window --log-level debug
  blockfall bag --seed 42 --count 21`,
	SilenceUsage: true,
	RunE:         runPlay,
}

func init() {
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Append logs to this file")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(shapesCmd)
	rootCmd.AddCommand(bagCmd)
	rootCmd.AddCommand(configCmd)
}

// loadConfig resolves the configuration from --config and the default search path.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.Config{}, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}

// newLogger builds the process logger. Without --log-file it writes to sink.
// The returned close func releases the log file, if any.
func newLogger(sink io.Writer) (*log.Logger, func() error, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}

	closeFn := func() error { return nil }
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		sink, closeFn = f, f.Close
	}

	logger := log.NewWithOptions(sink, log.Options{
		ReportTimestamp: true,
		Prefix:          "blockfall",
		Level:           level,
	})
	return logger, closeFn, nil
}

// seed returns --seed, or a time based seed when it is zero.
func seed() int64 {
	if flagSeed != 0 {
		return flagSeed
	}
	return time.Now().UnixNano()
}

func newRand(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}
