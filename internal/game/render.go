package game

import (
	"fmt"

	"github.com/vovakirdan/blockfall/internal/core"
)

// Character layout of the rendered frame.
const (
	cellChars   = 2                   // screen columns per board cell
	boardChars  = Width*cellChars + 2 // board box width including borders
	boardLines  = Height + 2          // board box height including borders
	panelChars  = 12                  // side panel width
	MinScreenW  = boardChars + 1 + panelChars
	MinScreenH  = boardLines + 1
	previewStep = 3 // lines per preview entry
)

const (
	blockRune = '█'
	ghostRune = '░'
)

// Render draws the session into dst.
func (s *Session) Render(dst *core.Screen) {
	RenderView(dst, s.View(), s.stats)
}

// RenderView draws a view and its counters into dst: the board on the left,
// hold and next pieces on the right.
func RenderView(dst *core.Screen, v View, st Stats) {
	dst.Clear()

	if dst.Width() < MinScreenW || dst.Height() < MinScreenH {
		renderTooSmall(dst)
		return
	}

	left := (dst.Width() - MinScreenW) / 2
	top := (dst.Height() - MinScreenH) / 2

	dst.DrawTextColored(left, top, "BLOCKFALL", core.ColorBrightWhite)
	renderBoard(dst, v, left, top+1)
	renderPanel(dst, v, st, left+boardChars+1, top+1)
}

func renderTooSmall(dst *core.Screen) {
	y := dst.Height() / 2
	dst.DrawTextCentered(y, "Window too small")
	dst.DrawTextCentered(y+1, fmt.Sprintf("Need %dx%d", MinScreenW, MinScreenH))
}

// renderBoard draws the well. Board row 0 is the bottom line of the box.
func renderBoard(dst *core.Screen, v View, x, y int) {
	dst.DrawBox(core.NewRect(x, y, boardChars, boardLines), core.ColorGray)

	put := func(row, col int, r rune, c core.Color) {
		if row < 0 || row >= Height {
			return
		}
		sx := x + 1 + col*cellChars
		sy := y + 1 + (Height - 1 - row)
		dst.DrawRect(core.NewRect(sx, sy, cellChars, 1), r, c)
	}

	for _, g := range v.Ghost {
		put(g.Row, g.Col, ghostRune, core.ColorGhost)
	}
	for row := range Height {
		for col := range Width {
			if cell := v.Board[row][col]; cell.Filled {
				put(row, col, blockRune, cell.Kind.Color())
			}
		}
	}
	for _, a := range v.Active {
		put(a.Row, a.Col, blockRune, v.ActiveKind.Color())
	}
}

// renderPanel draws the hold slot, the preview queue and the counters.
func renderPanel(dst *core.Screen, v View, st Stats, x, y int) {
	dst.DrawText(x, y, "HOLD")
	if v.Hold != nil {
		c := v.Hold.Color()
		if v.HoldUsed {
			c = core.ColorGray
		}
		drawShape(dst, x, y+1, *v.Hold, c)
	}

	dst.DrawText(x, y+4, "NEXT")
	for i, k := range v.Preview {
		sy := y + 5 + i*previewStep
		if sy+1 >= y+boardLines-2 {
			break
		}
		drawShape(dst, x, sy, k, k.Color())
	}

	dst.DrawText(x, y+boardLines-2, fmt.Sprintf("Lines %d", st.Cleared))
	dst.DrawText(x, y+boardLines-1, fmt.Sprintf("Wipes %d", st.Wipes))
}

// drawShape draws a kind at rotation 0 with its top-left at (x, y).
func drawShape(dst *core.Screen, x, y int, k Kind, c core.Color) {
	h := ShapeHeight(k, 0)
	for _, off := range Cells(k, 0) {
		sx := x + off.Col*cellChars
		sy := y + (h - 1 - off.Row)
		dst.DrawRect(core.NewRect(sx, sy, cellChars, 1), blockRune, c)
	}
}
