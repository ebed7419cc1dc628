package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-runner/internal/audio"
	"github.com/vovakirdan/tui-runner/internal/core"
	"github.com/vovakirdan/tui-runner/internal/registry"
	"github.com/vovakirdan/tui-runner/internal/storage"
)

// Options configures a game Model. Every field is optional.
type Options struct {
	Store  *storage.Store
	Player string         // Name recorded with scores
	Audio  *audio.Manager // Plays event sounds, local sessions only
	Logger *log.Logger
	InMenu bool // Back returns to a menu instead of only pausing
}

// scoreSavedMsg reports the outcome of an asynchronous score save.
type scoreSavedMsg struct {
	result storage.RunResult
	err    error
}

// Model is the Bubble Tea model for playing one game mode.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	config     core.RuntimeConfig
	opts       Options
	keyMapper  *KeyMapper
	inputFrame core.InputFrame
	gameState  core.GameState
	frames     frameTimer
	status     string // One-line message under the playfield
	quitting   bool
	backToMenu bool
	scoreSaved bool // Whether score has been saved for current game over
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts Options) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		config:     cfg,
		opts:       opts,
		keyMapper:  NewKeyMapper(),
		inputFrame: core.NewInputFrame(),
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		// The renderer scales the playfield, so the session survives a resize
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))

	case scoreSavedMsg:
		return m.handleScoreSaved(msg), nil
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}

	switch action {
	case core.ActionNone:
	case core.ActionBack:
		switch {
		case m.opts.InMenu && (m.gameState.GameOver || m.gameState.Paused):
			m.backToMenu = true
			return m, tea.Quit
		case !m.gameState.GameOver:
			m.inputFrame.Set(core.ActionPause)
		}
	default:
		m.inputFrame.Set(action)
	}

	return m, nil
}

// handleTick runs one host frame with the real time since the previous one.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	if m.backToMenu {
		return m, nil
	}

	// Check for restart
	if m.inputFrame.Has(core.ActionRestart) && m.gameState.GameOver {
		m.config.Seed = time.Now().UnixNano()
		m.game.Reset(m.config)
		m.gameState = m.game.State()
		m.scoreSaved = false
		m.status = ""
		m.frames.reset()
		m.inputFrame.Clear()
		return m, tickCmd(m.config.TickRate)
	}

	elapsed := m.frames.elapsed(now, m.config.TickRate)
	result := registry.Frame(m.game, m.inputFrame, elapsed)
	m.gameState = result.State

	if m.opts.Audio != nil {
		m.opts.Audio.HandleEvents(result.Events)
	}

	var save tea.Cmd
	if m.gameState.GameOver && !m.scoreSaved {
		m.scoreSaved = true
		m.opts.Logger.Info("run finished", "mode", m.game.ID(), "player", m.opts.Player, "score", m.gameState.Score)
		if m.opts.Store != nil && m.gameState.Score > 0 {
			save = saveScoreCmd(m.opts.Store, m.game.ID(), m.opts.Player, m.gameState.Score)
		}
	}

	m.inputFrame.Clear()
	return m, tea.Batch(tickCmd(m.config.TickRate), save)
}

// saveScoreCmd records the run off the UI goroutine.
func saveScoreCmd(store *storage.Store, gameID, player string, score int) tea.Cmd {
	return func() tea.Msg {
		res, err := store.RecordRun(gameID, player, score)
		return scoreSavedMsg{result: res, err: err}
	}
}

func (m Model) handleScoreSaved(msg scoreSavedMsg) Model {
	switch {
	case msg.err != nil:
		m.opts.Logger.Error("could not save score", "err", msg.err)
		m.status = "Score not saved"
	case msg.result.NewBest:
		m.status = "New personal best!"
	default:
		m.status = "Score saved"
	}
	return m
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.status = "Screenshot failed"
		return
	}
	dir := filepath.Join(home, ".arcade", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.opts.Logger.Warn("screenshot directory", "err", err)
		m.status = "Screenshot failed"
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))

	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.opts.Logger.Warn("screenshot", "err", err)
		m.status = "Screenshot failed"
		return
	}
	m.status = "Screenshot saved"
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	if m.status != "" {
		m.screen.DrawTextColor(2, m.screen.Height()-1, m.status, core.ColorYellow)
	}
	return RenderScreen(m.screen)
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// State returns the last observed game state.
func (m Model) State() core.GameState {
	return m.gameState
}

// Run starts the Bubble Tea program with the given game.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) error {
	p := tea.NewProgram(
		NewModel(game, cfg, opts),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
