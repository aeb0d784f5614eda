package tui

import (
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-asteroids/internal/core"
	"github.com/vovakirdan/tui-asteroids/internal/registry"
	"github.com/vovakirdan/tui-asteroids/internal/storage"
)

// DefaultHoldWindow is how long a held key stays active after its last
// repeat. Terminals send no key-up events, so this must outlast the
// auto-repeat interval.
const DefaultHoldWindow = 150 * time.Millisecond

// helpRows is the number of rows reserved below the playfield.
const helpRows = 1

// Options tunes the game model.
type Options struct {
	HoldWindow time.Duration // Zero means DefaultHoldWindow
	Logger     *log.Logger   // Nil discards
}

// Model is the Bubble Tea model for running the game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	keyMapper  *KeyMapper
	help       help.Model
	holds      *core.HoldTracker
	inputFrame core.InputFrame
	gameState  core.GameState
	log        *log.Logger
	ticks      int
	best       int
	quitting   bool
	runSaved   bool // Whether the current game over has been recorded
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts Options) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}
	if opts.HoldWindow <= 0 {
		opts.HoldWindow = DefaultHoldWindow
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	m := Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, max(cfg.ScreenH-helpRows, 1)),
		store:      store,
		config:     cfg,
		keyMapper:  NewKeyMapper(),
		help:       help.New(),
		holds:      core.NewHoldTracker(holdTicks(opts.HoldWindow, cfg.TickRate)),
		inputFrame: core.NewInputFrame(),
		log:        logger,
	}
	m.help.Width = cfg.ScreenW
	m.best = m.highScore()
	return m
}

// holdTicks converts a hold window to whole ticks, rounding up.
func holdTicks(d time.Duration, tickRate int) int {
	return max(int(math.Ceil(d.Seconds()*float64(tickRate))), 1)
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	// gameState will be set on first tick (value receiver limitation)

	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		if err := m.saveScreenshot(); err != nil {
			m.log.Warn("screenshot failed", "error", err)
		}
		return m, nil
	}

	if m.gameState.Paused {
		// The post-hit pause discards input, so nothing is held past it
		if _, quit := m.keyMapper.MapKey(msg); quit {
			m.quitting = true
			return m, tea.Quit
		}
		return m, nil
	}

	if m.keyMapper.MapKeyToInput(msg, m.ticks, m.holds, &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// handleResize processes window resize events.
// The world has a fixed size, so the game keeps running.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, max(msg.Height-helpRows, 1))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	frame := m.inputFrame.Clone()
	m.holds.Apply(&frame, m.ticks)

	result := m.game.Step(frame)
	m.gameState = result.State
	m.ticks++

	if result.Has(core.EventStarted) {
		m.runSaved = false
	}
	if result.Has(core.EventShipHit) {
		// Keys pressed before the hit must not steer the respawned ship
		m.holds.Reset()
	}
	if m.gameState.GameOver && !m.runSaved {
		m.saveRun()
		m.runSaved = true
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate)
}

// saveRun records the finished run in the session store.
func (m *Model) saveRun() {
	if m.store == nil {
		return
	}
	summarizer, ok := m.game.(core.Summarizer)
	if !ok {
		return
	}

	run, err := m.store.SaveRun(storage.NewRun(m.game.ID(), summarizer.Summary()))
	if err != nil {
		m.log.Error("could not save run", "error", err)
		return
	}
	m.log.Debug("run saved", "id", run.ID, "score", run.Score)
	m.best = max(m.best, run.Score)
}

// highScore returns the best recorded score for the game, or zero.
func (m Model) highScore() int {
	if m.store == nil {
		return 0
	}
	best, err := m.store.HighScore(m.game.ID())
	if err != nil {
		m.log.Warn("could not read high score", "error", err)
		return 0
	}
	return best
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() error {
	m.screen.Clear()
	m.game.Render(m.screen)

	dir := filepath.Join(os.Getenv("HOME"), ".arcade", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create screenshot dir: %w", err)
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return fmt.Errorf("write screenshot: %w", err)
	}
	m.log.Info("screenshot saved", "path", path)
	return nil
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.screen.Clear()
	m.game.Render(m.screen)
	return renderFrame(m.screen, m.footer())
}

// Run starts the Bubble Tea program for the game.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts Options) error {
	model := NewModel(game, store, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
