package tui

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/roadrush/internal/config"
	"github.com/vovakirdan/roadrush/internal/core"
	"github.com/vovakirdan/roadrush/internal/games/road"
	"github.com/vovakirdan/roadrush/internal/storage"
)

// helpHeight is the number of rows reserved below the board.
const helpHeight = 1

// Options configures a game model beyond its geometry.
type Options struct {
	Store      *storage.Store     // May be nil: scores are then not kept
	Logger     *log.Logger        // May be nil
	Renderer   *lipgloss.Renderer // Nil uses the local terminal
	Difficulty string             // Start the first round directly, skipping the menu
	User       string             // Player name for logs
}

// Model is the Bubble Tea model for running Road Rush.
type Model struct {
	game       *road.Game
	screen     *core.Screen
	store      *storage.Store
	logger     *log.Logger
	palette    Palette
	help       help.Model
	helpStyle  lipgloss.Style
	keys       KeyMap
	config     core.RuntimeConfig
	user       string
	inputFrame core.InputFrame
	running    road.Token // Round the frame loop is ticking for
	quitting   bool
	scoreSaved bool // Whether score has been saved for current game over
}

// NewModel creates a new Bubble Tea model for a game with the given geometry.
func NewModel(cfg config.RoadConfig, runtime core.RuntimeConfig, opts Options) (Model, error) {
	// Use time-based seed if not specified
	if runtime.Seed == 0 {
		runtime.Seed = time.Now().UnixNano()
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	r := opts.Renderer
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}

	h := help.New()
	h.ShowAll = false

	m := Model{
		game:       road.New(cfg, runtime),
		screen:     core.NewScreen(runtime.ScreenW, max(runtime.ScreenH-helpHeight, 1)),
		store:      opts.Store,
		logger:     logger,
		palette:    NewPalette(r),
		help:       h,
		helpStyle:  r.NewStyle().Foreground(lipgloss.Color("241")),
		keys:       DefaultKeyMap(),
		config:     runtime,
		user:       opts.User,
		inputFrame: core.NewInputFrame(),
	}

	if opts.Difficulty != "" {
		if err := m.game.SelectDifficulty(opts.Difficulty); err != nil {
			return Model{}, fmt.Errorf("tui: %w", err)
		}
		m.running = m.game.Token()
	}
	m.keys.SetPhase(m.game.Phase())

	return m, nil
}

// Init starts the frame loop if a round is already running.
func (m Model) Init() tea.Cmd {
	if m.game.Phase() == road.PhasePlaying {
		return tickCmd(m.config.TickRate, m.running)
	}
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(msg)
	}

	return m, nil
}

// handleKey processes keyboard input. Steering is buffered for the next
// frame; everything else applies at once since no frame loop runs outside
// a round.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Help) {
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	if name, ok := m.keys.PickDifficulty(msg); ok && m.game.Phase() == road.PhaseMenu {
		if err := m.game.SelectDifficulty(name); err != nil {
			m.logger.Warn("cannot start round", "difficulty", name, "error", err)
		}
		return m.afterInput()
	}

	action, isQuit := m.keys.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}
	if action == core.ActionNone {
		return m, nil
	}

	if m.game.Phase() == road.PhasePlaying {
		m.inputFrame.Set(action)
		return m, nil
	}

	m.game.Handle(core.NewInputFrame(action))
	return m.afterInput()
}

// handleMouse activates the overlay line under a left click.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}

	vp := m.game.Viewport(m.screen.Width(), m.screen.Height())
	if !vp.Contains(msg.X, msg.Y) {
		return m, nil
	}

	target, ok := m.game.TargetAt(vp.CellArea(msg.X, msg.Y))
	if !ok {
		return m, nil
	}
	if err := m.game.Activate(target); err != nil {
		m.logger.Debug("click ignored", "target", target.Label, "error", err)
		return m, nil
	}

	return m.afterInput()
}

// handleResize processes window resize events.
// The field has a fixed size, so only the viewport changes.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, max(msg.Height-helpHeight, 1))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick runs one simulation frame.
func (m Model) handleTick(msg TickMsg) (tea.Model, tea.Cmd) {
	// Ticks scheduled for an earlier round are stale
	if msg.Token != m.running || m.game.Phase() != road.PhasePlaying {
		return m, nil
	}

	m.game.Step(m.inputFrame)
	m.inputFrame.Clear()

	return m.afterInput()
}

// afterInput reacts to phase changes: it keeps the frame loop running while a
// round is in progress and records the score once the round is over.
func (m Model) afterInput() (tea.Model, tea.Cmd) {
	m.keys.SetPhase(m.game.Phase())

	switch m.game.Phase() {
	case road.PhasePlaying:
		token := m.game.Token()
		if token != m.running {
			// A new round started: drop keys buffered for the old one
			m.inputFrame.Clear()
		}
		m.running = token
		return m, tickCmd(m.config.TickRate, token)

	case road.PhaseGameOver:
		m.running = 0
		if !m.scoreSaved {
			m.saveScore()
			m.scoreSaved = true
		}

	case road.PhaseMenu:
		m.running = 0
		m.scoreSaved = false
	}

	return m, nil
}

// saveScore logs the finished round and stores its score.
func (m Model) saveScore() {
	snap := m.game.Snapshot()
	m.logger.Info("round finished",
		"game", m.game.ID(),
		"user", m.user,
		"difficulty", snap.Difficulty,
		"score", snap.Score,
		"duration", snap.Clock,
	)

	if m.store == nil || snap.Score <= 0 {
		return
	}
	if _, err := m.store.SaveScore(snap.Difficulty, snap.Score); err != nil {
		// Best-effort save, game continues regardless
		m.logger.Warn("cannot save score", "error", err)
	}
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return m.palette.Render(m.screen) + "\n" + m.helpStyle.Render(m.help.View(m.keys))
}

// Game exposes the running game, mainly for tests and the SSH server.
func (m Model) Game() *road.Game {
	return m.game
}

// Run starts the Bubble Tea program for the local terminal.
func Run(cfg config.RoadConfig, runtime core.RuntimeConfig, opts Options) error {
	model, err := NewModel(cfg, runtime, opts)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Clickable menu and restart lines
	)

	_, err = p.Run()
	return err
}
