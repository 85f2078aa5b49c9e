package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/blockfall/internal/game"
)

var shapesCmd = &cobra.Command{
	Use:   "shapes",
	Short: "Print the shape catalog",
	Long: `Shows every shape kind in all four rotations, with the bounding box
and the pivot offset used to correct rotations.`,
	Args: cobra.NoArgs,
	Run:  runShapes,
}

func runShapes(cmd *cobra.Command, args []string) {
	for _, k := range game.Kinds {
		fmt.Printf("%s\n", k)

		var grids [4][]string
		tall := 0
		for rot := range 4 {
			grids[rot] = shapeLines(k, rot)
			tall = max(tall, len(grids[rot]))
		}

		// Rotations side by side, bottoms aligned.
		for line := range tall {
			var sb strings.Builder
			for rot := range 4 {
				g := grids[rot]
				cell := strings.Repeat(" ", 8)
				if i := line - (tall - len(g)); i >= 0 {
					cell = fmt.Sprintf("%-8s", g[i])
				}
				sb.WriteString("  " + cell)
			}
			fmt.Println(strings.TrimRight(sb.String(), " "))
		}

		for rot := range 4 {
			p := game.Pivot(k, rot)
			fmt.Printf("  r%d %dx%d p(%d,%d)", rot, game.ShapeWidth(k, rot), game.ShapeHeight(k, rot), p.Row, p.Col)
		}
		fmt.Println()
		fmt.Println()
	}
}

// shapeLines draws a kind at a rotation, top line first.
func shapeLines(k game.Kind, rot int) []string {
	w, h := game.ShapeWidth(k, rot), game.ShapeHeight(k, rot)
	grid := make([][]byte, h)
	for i := range grid {
		grid[i] = []byte(strings.Repeat(".", w))
	}
	for _, c := range game.Cells(k, rot) {
		grid[h-1-c.Row][c.Col] = '#'
	}

	lines := make([]string, h)
	for i, row := range grid {
		lines[i] = string(row)
	}
	return lines
}
