package tui

import (
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/blockfall/internal/config"
	"github.com/vovakirdan/blockfall/internal/core"
	"github.com/vovakirdan/blockfall/internal/game"
)

type testClock struct {
	t time.Time
}

func (c *testClock) now() time.Time          { return c.t }
func (c *testClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func newTestModel(t *testing.T) (Model, *game.Session, *testClock) {
	t.Helper()
	clk := &testClock{t: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	cfg := config.Default()
	s := game.NewSession(cfg, rand.New(rand.NewSource(1)), game.WithClock(clk.now))
	m := NewModel(s, Options{
		Runtime:       core.RuntimeConfig{ScreenW: 60, ScreenH: 30, TickRate: cfg.Terminal.TickRate},
		ReleaseAfter:  cfg.Terminal.ReleaseAfter,
		ScreenshotDir: t.TempDir(),
		Now:           clk.now,
	})
	m.Init()
	return m, s, clk
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	require.True(t, ok)
	return nm, cmd
}

func TestModelInitSpawns(t *testing.T) {
	_, s, _ := newTestModel(t)
	assert.True(t, s.Snapshot().Active)
	assert.Equal(t, 1, s.Snapshot().Spawned)
}

func TestModelKeyPressAndSynthesizedRelease(t *testing.T) {
	m, s, clk := newTestModel(t)
	col := s.Snapshot().Col

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	assert.Equal(t, col-1, s.Snapshot().Col)
	assert.True(t, s.Snapshot().DASArmed)

	// Terminal autorepeat does not step again.
	clk.advance(30 * time.Millisecond)
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	assert.Equal(t, col-1, s.Snapshot().Col)

	// No event for longer than the release timeout releases the key.
	clk.advance(100 * time.Millisecond)
	_, cmd := update(t, m, TickMsg(clk.now()))
	assert.NotNil(t, cmd)
	assert.False(t, s.Snapshot().DASArmed)
	assert.Equal(t, col-1, s.Snapshot().Col)
}

func TestModelTickAdvancesGravity(t *testing.T) {
	m, s, clk := newTestModel(t)
	row := s.Snapshot().Row

	clk.advance(800 * time.Millisecond)
	update(t, m, TickMsg(clk.now()))
	assert.Equal(t, row-1, s.Snapshot().Row)
}

func TestModelHardDrop(t *testing.T) {
	m, s, _ := newTestModel(t)

	update(t, m, tea.KeyMsg{Type: tea.KeySpace})
	assert.Equal(t, 1, s.Snapshot().Locks)
	assert.Equal(t, 4, s.Snapshot().Occupied)
}

func TestModelBlurReleasesKeys(t *testing.T) {
	m, s, _ := newTestModel(t)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRight})
	require.True(t, s.Snapshot().DASArmed)

	update(t, m, tea.BlurMsg{})
	assert.False(t, s.Snapshot().DASArmed)
}

func TestModelQuit(t *testing.T) {
	m, _, _ := newTestModel(t)

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.Empty(t, m.View())
}

func TestModelResizeLeavesHelpLine(t *testing.T) {
	m, _, _ := newTestModel(t)

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 80, Height: 40})
	assert.Equal(t, 80, m.screen.Width())
	assert.Equal(t, 39, m.screen.Height())

	out := m.View()
	assert.Contains(t, out, "BLOCKFALL")
	assert.Contains(t, out, "hold")
}

func TestModelScreenshot(t *testing.T) {
	m, _, _ := newTestModel(t)

	update(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})

	entries, err := os.ReadDir(m.opts.ScreenshotDir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.True(t, strings.HasPrefix(entries[0].Name(), "blockfall_"))

	data, err := os.ReadFile(filepath.Join(m.opts.ScreenshotDir, entries[0].Name()))
	require.NoError(t, err)
	assert.Contains(t, string(data), "HOLD")
}

func TestModelDefaultScreenshotDirUnderHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	s := game.NewSession(config.Default(), rand.New(rand.NewSource(1)))
	m := NewModel(s, Options{Runtime: core.DefaultConfig()})

	assert.Equal(t, filepath.Join(home, ".blockfall", "screenshots"), m.opts.ScreenshotDir)
}

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(12, 2)
	s.DrawTextColored(0, 0, "NEXT", core.ColorBrightWhite)
	s.SetColored(0, 1, '█', core.ColorCyan)

	out := RenderScreen(s)
	assert.Contains(t, out, "NEXT")
	assert.Contains(t, out, "█")
	assert.Equal(t, 2, strings.Count(out, "\n")+1)
}
