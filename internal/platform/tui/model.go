package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/blockfall/internal/core"
	"github.com/vovakirdan/blockfall/internal/game"
)

// Options configures the terminal host.
type Options struct {
	Runtime       core.RuntimeConfig
	ReleaseAfter  time.Duration // idle time before a held key counts as released
	ScreenshotDir string        // defaults to ~/.blockfall/screenshots
	Logger        *log.Logger
	Now           func() time.Time
}

// Model is the Bubble Tea model hosting a game session.
type Model struct {
	session  *game.Session
	screen   *core.Screen
	keys     KeyMap
	help     help.Model
	tracker  *KeyTracker
	opts     Options
	quitting bool
}

// NewModel creates a new Bubble Tea model for the session.
func NewModel(s *game.Session, opts Options) Model {
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.ScreenshotDir == "" {
		opts.ScreenshotDir = defaultScreenshotDir()
	}

	h := help.New()
	h.Width = opts.Runtime.ScreenW

	return Model{
		session: s,
		screen:  core.NewScreen(opts.Runtime.ScreenW, max(opts.Runtime.ScreenH-1, 0)),
		keys:    DefaultKeyMap(),
		help:    h,
		tracker: NewKeyTracker(opts.ReleaseAfter),
		opts:    opts,
	}
}

// defaultScreenshotDir is ~/.blockfall/screenshots, or a relative
// .blockfall/screenshots when the home directory is unknown.
func defaultScreenshotDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".blockfall", "screenshots")
	}
	return filepath.Join(home, ".blockfall", "screenshots")
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	m.session.Update()
	return tickCmd(m.opts.Runtime.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case tea.BlurMsg:
		m.dispatch(m.tracker.ReleaseAll())
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot()
		return m, nil
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.resizeScreen(m.screen.Width(), m.opts.Runtime.ScreenH)
		return m, nil
	}

	if k := m.keys.Lookup(msg); k != core.KeyNone {
		m.session.HandleKey(m.tracker.Press(k, m.opts.Now()))
	}
	return m, nil
}

// handleResize processes window resize events. The session keeps running.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.opts.Runtime.ScreenW = msg.Width
	m.opts.Runtime.ScreenH = msg.Height
	m.help.Width = msg.Width
	m.resizeScreen(msg.Width, msg.Height)
	return m, nil
}

// resizeScreen leaves room for the help footer below the board.
func (m Model) resizeScreen(w, h int) {
	lines := lipgloss.Height(m.help.View(m.keys))
	m.screen.Resize(w, max(h-lines, 0))
}

// handleTick releases idle keys and advances the session.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	m.dispatch(m.tracker.Expire(m.opts.Now()))
	m.session.Update()
	return m, tickCmd(m.opts.Runtime.TickRate)
}

func (m Model) dispatch(events []core.KeyEvent) {
	for _, ev := range events {
		m.session.HandleKey(ev)
	}
}

// saveScreenshot writes the current frame as plain text.
func (m *Model) saveScreenshot() {
	m.session.Render(m.screen)

	if err := os.MkdirAll(m.opts.ScreenshotDir, 0o755); err != nil {
		m.opts.Logger.Error("screenshot", "err", err)
		return
	}

	timestamp := m.opts.Now().Format("20060102_150405")
	path := filepath.Join(m.opts.ScreenshotDir, fmt.Sprintf("blockfall_%s.txt", timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.opts.Logger.Error("screenshot", "err", err)
		return
	}
	m.opts.Logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.session.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys)
}

// Run starts the Bubble Tea program for the session.
func Run(s *game.Session, opts Options) error {
	model := NewModel(s, opts)
	model.opts.Logger.Info("terminal host started", "session", s.ID(), "tick_rate", opts.Runtime.TickRate)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithReportFocus(),
	)

	_, err := p.Run()
	model.opts.Logger.Info("terminal host stopped", "session", s.ID(), "stats", fmt.Sprintf("%+v", s.Stats()))
	if err != nil {
		return fmt.Errorf("terminal host: %w", err)
	}
	return nil
}
