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
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/rgb-catcher/internal/config"
	"github.com/vovakirdan/rgb-catcher/internal/core"
	"github.com/vovakirdan/rgb-catcher/internal/games/catcher"
)

// footerHeight is the number of rows reserved for the help line.
const footerHeight = 1

// Model is the Bubble Tea model hosting the game.
// The game runs on its own timers; Update only routes messages to them.
type Model struct {
	director *catcher.Director
	screen   *core.Screen
	sched    *Scheduler
	keys     *HoldTracker
	keyMap   KeyMap
	help     help.Model
	logger   *log.Logger
	shotDir  string
	quitting bool
}

// NewModel creates the model and the game behind it.
// A zero seed picks one from the current time; a positive tick rate
// overrides the configured gameplay rate.
func NewModel(rt core.RuntimeConfig, cfg config.CatcherConfig, logger *log.Logger) (Model, error) {
	if rt.Seed == 0 {
		rt.Seed = time.Now().UnixNano()
	}
	if rt.TickRate > 0 {
		cfg.Timing.PlayingTickRate = rt.TickRate
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	clock := core.SystemClock{}
	screen := core.NewScreen(rt.ScreenW, max(rt.ScreenH-footerHeight, 1))
	sched := NewScheduler()
	keys := NewHoldTracker(clock, time.Duration(cfg.Input.HoldMillis)*time.Millisecond)

	host := catcher.Host{
		Surface:   screen,
		Keys:      keys,
		Clock:     clock,
		Scheduler: sched,
	}
	director, err := catcher.NewDirector(cfg, host, rt.Seed, logger)
	if err != nil {
		return Model{}, fmt.Errorf("create game: %w", err)
	}

	h := help.New()
	h.Width = rt.ScreenW

	return Model{
		director: director,
		screen:   screen,
		sched:    sched,
		keys:     keys,
		keyMap:   DefaultKeyMap(),
		help:     h,
		logger:   logger,
		shotDir:  DefaultScreenshotDir(),
	}, nil
}

// DefaultScreenshotDir returns ~/.rgbcatcher/screenshots.
func DefaultScreenshotDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".rgbcatcher", "screenshots")
	}
	return filepath.Join(home, ".rgbcatcher", "screenshots")
}

// Director returns the game director driven by this model.
func (m Model) Director() *catcher.Director {
	return m.director
}

// Init shows the title screen and starts its timer.
func (m Model) Init() tea.Cmd {
	m.director.Start()
	return tea.Batch(tea.SetWindowTitle("RGB Catcher"), m.sched.Drain())
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case TimerMsg:
		m.sched.Fire(msg)

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.screen.Resize(msg.Width, max(msg.Height-footerHeight, 1))
		m.help.Width = msg.Width
		m.logger.Debug("terminal resized", "width", msg.Width, "height", msg.Height)
	}

	return m, m.sched.Drain()
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keyMap.Quit):
		m.quitting = true
		m.director.Stop()
		snap := m.director.Snapshot()
		m.logger.Info("quit",
			"state", snap.Phase,
			"score", snap.Score,
			"level", snap.Level,
			"elapsed", snap.Elapsed.Round(time.Second),
		)
		return m, tea.Quit

	case key.Matches(msg, m.keyMap.Screenshot):
		path, err := m.saveScreenshot()
		if err != nil {
			m.logger.Error("screenshot failed", "err", err)
		} else {
			m.logger.Info("screenshot saved", "path", path)
		}

	default:
		m.keys.Press(m.keyMap.GameKey(msg))
	}

	return m, m.sched.Drain()
}

// saveScreenshot writes the screen buffer as plain text.
func (m Model) saveScreenshot() (string, error) {
	if err := os.MkdirAll(m.shotDir, 0o755); err != nil {
		return "", fmt.Errorf("create screenshot dir: %w", err)
	}

	name := fmt.Sprintf("rgbcatcher_%s.txt", time.Now().Format("20060102_150405.000"))
	path := filepath.Join(m.shotDir, name)
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return "", fmt.Errorf("write screenshot: %w", err)
	}
	return path, nil
}

// View renders the game screen and the help footer.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	return RenderScreen(m.screen) + "\n" + m.help.View(m.keyMap)
}

// Run starts the Bubble Tea program and blocks until the player quits.
func Run(rt core.RuntimeConfig, cfg config.CatcherConfig, logger *log.Logger) error {
	model, err := NewModel(rt, cfg, logger)
	if err != nil {
		return err
	}

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run program: %w", err)
	}
	return nil
}
