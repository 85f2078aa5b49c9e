// Package window hosts a game session in a desktop window with Ebitengine.
// Unlike a terminal, the window reports real key releases, so key-up events
// reach the session directly.
package window

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/blockfall/internal/core"
	"github.com/vovakirdan/blockfall/internal/game"
)

// Soft drop repeats while the key is held, after an initial delay (in ticks).
const (
	softDropDelay = 10
	softDropEvery = 3
)

// bindings maps window keys to engine keys.
var bindings = map[ebiten.Key]core.Key{
	ebiten.KeyArrowLeft:  core.KeyLeft,
	ebiten.KeyArrowRight: core.KeyRight,
	ebiten.KeyArrowDown:  core.KeySoftDrop,
	ebiten.KeySpace:      core.KeyHardDrop,
	ebiten.KeyArrowUp:    core.KeyRotateCW,
	ebiten.KeyX:          core.KeyRotateCW,
	ebiten.KeyZ:          core.KeyRotateCCW,
	ebiten.KeyC:          core.KeyHold,
	ebiten.KeyShiftLeft:  core.KeyHold,
	ebiten.KeyShiftRight: core.KeyHold,
}

// Options configures the window host.
type Options struct {
	CellSize int
	Logger   *log.Logger
}

// Game implements ebiten.Game around a session.
type Game struct {
	session *game.Session
	cell    int
	logger  *log.Logger
	keys    []ebiten.Key
}

// NewGame creates a window host for the session.
func NewGame(s *game.Session, opts Options) *Game {
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	return &Game{
		session: s,
		cell:    opts.CellSize,
		logger:  opts.Logger,
	}
}

// Update forwards key transitions and advances the session.
func (g *Game) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyQ) || ebiten.IsKeyPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	g.keys = inpututil.AppendJustPressedKeys(g.keys[:0])
	for _, k := range g.keys {
		if ck, ok := bindings[k]; ok {
			g.session.KeyDown(ck, false)
		}
	}

	g.keys = inpututil.AppendJustReleasedKeys(g.keys[:0])
	for _, k := range g.keys {
		if ck, ok := bindings[k]; ok {
			g.session.KeyUp(ck)
		}
	}

	if d := inpututil.KeyPressDuration(ebiten.KeyArrowDown); d > softDropDelay && d%softDropEvery == 0 {
		g.session.KeyDown(core.KeySoftDrop, true)
	}

	g.session.Update()
	return nil
}

// Draw paints the well, the pieces and the side panel.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(background)
	v := g.session.View()
	st := g.session.Stats()

	ox, oy := g.cell, g.cell
	cs := float32(g.cell)
	vector.DrawFilledRect(screen, float32(ox), float32(oy), cs*game.Width, cs*game.Height, wellColor, false)

	cellAt := func(row, col int) (float32, float32) {
		return float32(ox + col*g.cell), float32(oy + (game.Height-1-row)*g.cell)
	}

	for row := range game.Height {
		for col := range game.Width {
			x, y := cellAt(row, col)
			vector.StrokeRect(screen, x, y, cs, cs, 1, gridColor, false)
			if c := v.Board[row][col]; c.Filled {
				g.block(screen, x, y, cs, c.Kind.Color())
			}
		}
	}
	for _, o := range v.Ghost {
		if o.Row < game.Height {
			x, y := cellAt(o.Row, o.Col)
			vector.StrokeRect(screen, x+2, y+2, cs-4, cs-4, 2, rgba(core.ColorGhost), false)
		}
	}
	for _, o := range v.Active {
		if o.Row < game.Height {
			x, y := cellAt(o.Row, o.Col)
			g.block(screen, x, y, cs, v.ActiveKind.Color())
		}
	}

	g.drawPanel(screen, v, st, ox+(game.Width+1)*g.cell, oy)
}

func (g *Game) drawPanel(screen *ebiten.Image, v game.View, st game.Stats, x, y int) {
	mini := g.cell / 2

	ebitenutil.DebugPrintAt(screen, "HOLD", x, y)
	if v.Hold != nil {
		c := v.Hold.Color()
		if v.HoldUsed {
			c = core.ColorGray
		}
		g.shape(screen, *v.Hold, x, y+16, mini, c)
	}

	ny := y + 16 + 3*mini
	ebitenutil.DebugPrintAt(screen, "NEXT", x, ny)
	for i, k := range v.Preview {
		g.shape(screen, k, x, ny+16+i*3*mini, mini, k.Color())
	}

	bottom := y + game.Height*g.cell
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Lines %d", st.Cleared), x, bottom-32)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Wipes %d", st.Wipes), x, bottom-16)
}

// shape draws a kind at rotation 0 with its top-left corner at (x, y).
func (g *Game) shape(screen *ebiten.Image, k game.Kind, x, y, size int, c core.Color) {
	h := game.ShapeHeight(k, 0)
	for _, o := range game.Cells(k, 0) {
		px := float32(x + o.Col*size)
		py := float32(y + (h-1-o.Row)*size)
		g.block(screen, px, py, float32(size), c)
	}
}

func (g *Game) block(screen *ebiten.Image, x, y, size float32, c core.Color) {
	vector.DrawFilledRect(screen, x+1, y+1, size-2, size-2, rgba(c), false)
}

// Layout fixes the logical size to the well plus the side panel.
func (g *Game) Layout(_, _ int) (int, int) {
	return g.cell * (game.Width + 7), g.cell * (game.Height + 2)
}

// Run opens the window and blocks until it is closed.
func Run(s *game.Session, opts Options) error {
	g := NewGame(s, opts)
	w, h := g.Layout(0, 0)

	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle("blockfall")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	g.logger.Info("window host started", "session", s.ID(), "cell", g.cell)
	if err := ebiten.RunGame(g); err != nil {
		return fmt.Errorf("window host: %w", err)
	}
	g.logger.Info("window host stopped", "session", s.ID(), "stats", fmt.Sprintf("%+v", s.Stats()))
	return nil
}
