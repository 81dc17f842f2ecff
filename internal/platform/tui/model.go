package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/smartsnakes/internal/core"
	"github.com/vovakirdan/smartsnakes/internal/session"
)

const defaultTickRate = 30

// Model is the Bubble Tea model that runs a single game.
type Model struct {
	game       Game
	recorder   *session.Recorder
	screen     *core.Screen
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	keys       KeyMap
	help       help.Model
	showHelp   bool
	quitting   bool
}

// NewModel creates a Bubble Tea model for the given game.
// A nil recorder disables round tracking.
func NewModel(game Game, recorder *session.Recorder, cfg core.RuntimeConfig) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = defaultTickRate
	}

	m := Model{
		game:       game,
		recorder:   recorder,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		keys:       DefaultKeyMap(),
		help:       help.New(),
	}
	m.fitScreen(cfg.ScreenW, cfg.ScreenH)
	return m
}

// Init resets the game, names the terminal window and starts the tick loop.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	if m.recorder != nil {
		m.recorder.Start()
	}
	return tea.Batch(
		tea.SetWindowTitle(m.game.Title()),
		tickCmd(m.config.TickRate),
	)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.fitScreen(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey queues movement for the next tick or quits.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keys.MapKey(msg)
	if action == core.ActionQuit {
		m.quitting = true
		if m.recorder != nil {
			m.recorder.Close()
		}
		return m, tea.Quit
	}
	m.inputFrame.Set(action)
	return m, nil
}

// fitScreen resizes the buffer without resetting the game.
// One row is reserved for the help line when the terminal is tall enough.
func (m *Model) fitScreen(w, h int) {
	m.config.ScreenW = w
	m.config.ScreenH = h

	_, minH := m.game.MinScreen()
	m.showHelp = h > minH
	if m.showHelp {
		h--
	}
	m.screen.Resize(w, h)
}

// tooSmall reports whether the board does not fit on screen.
func (m Model) tooSmall() bool {
	minW, minH := m.game.MinScreen()
	return m.screen.Width() < minW || m.screen.Height() < minH
}

// handleTick runs one simulation step with the keys gathered since the last tick.
// The game is frozen while the terminal is too small.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if !m.tooSmall() {
		result := m.game.Step(m.inputFrame)
		m.gameState = result.State
		if m.recorder != nil {
			m.recorder.Observe(result)
		}
	}

	m.inputFrame = core.NewInputFrame()
	return m, tickCmd(m.config.TickRate)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	view := RenderScreen(m.screen)
	if m.showHelp {
		m.help.Width = m.config.ScreenW
		view += "\n" + m.help.View(m.keys)
	}
	return view
}

// State returns the game state after the last tick.
func (m Model) State() core.GameState {
	return m.gameState
}

// Quitting reports whether the user asked to quit.
func (m Model) Quitting() bool {
	return m.quitting
}

// Run starts the Bubble Tea program and blocks until the user quits.
func Run(game Game, recorder *session.Recorder, cfg core.RuntimeConfig) error {
	model := NewModel(game, recorder, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
