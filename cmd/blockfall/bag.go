package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/blockfall/internal/game"
)

var flagCount int

var bagCmd = &cobra.Command{
	Use:   "bag",
	Short: "Print the piece order for a seed",
	Long: `Prints the first kinds the 7-bag sequencer produces for --seed,
one bag per line. Every complete bag contains each kind exactly once.`,
	Args: cobra.NoArgs,
	RunE: runBag,
}

func init() {
	bagCmd.Flags().IntVar(&flagCount, "count", 3*game.KindCount, "Number of kinds to draw")
}

func runBag(cmd *cobra.Command, args []string) error {
	if flagCount <= 0 {
		return fmt.Errorf("invalid --count %d", flagCount)
	}

	s := seed()
	seq := game.NewSequencer(newRand(s))

	fmt.Printf("seed %d\n", s)
	line := make([]string, 0, game.KindCount)
	for i := range flagCount {
		line = append(line, seq.Next().String())
		if len(line) == game.KindCount || i == flagCount-1 {
			fmt.Printf("  %s\n", strings.Join(line, " "))
			line = line[:0]
		}
	}
	return nil
}
