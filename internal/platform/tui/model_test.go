package tui

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-runner/internal/core"
	"github.com/vovakirdan/tui-runner/internal/registry"
	"github.com/vovakirdan/tui-runner/internal/storage"
)

// stubGame records what the host hands it.
type stubGame struct {
	resets  int
	frames  int
	last    core.InputFrame
	elapsed time.Duration
	state   core.GameState
}

func (g *stubGame) ID() string    { return "stub" }
func (g *stubGame) Title() string { return "Stub Run" }

func (g *stubGame) Reset(cfg core.RuntimeConfig) {
	g.resets++
	g.state = core.GameState{Lives: 1}
}

func (g *stubGame) Step(in core.InputFrame) core.StepResult {
	return g.Advance(in, 0)
}

func (g *stubGame) Advance(in core.InputFrame, elapsed time.Duration) core.StepResult {
	g.frames++
	// The host clears its frame after each call, so keep a copy
	g.last = core.NewInputFrame()
	for a, on := range in.Actions {
		if on {
			g.last.Set(a)
		}
	}
	g.elapsed = elapsed
	if in.Has(core.ActionPause) && !g.state.GameOver {
		g.state.Paused = !g.state.Paused
	}
	return core.StepResult{State: g.state}
}

func (g *stubGame) Render(dst *core.Screen) {
	dst.Clear()
	dst.DrawText(0, 0, "stub")
}

func (g *stubGame) State() core.GameState { return g.state }

func init() {
	registry.Register("stub", func() registry.Game { return &stubGame{} })
}

func testRuntime() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 40, ScreenH: 12, TickRate: 60, Seed: 7}
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, expected Model", next)
	}
	return nm, cmd
}

func TestModelTickPassesRealElapsed(t *testing.T) {
	g := &stubGame{}
	m := NewModel(g, testRuntime(), Options{})
	m.Init()

	start := time.Unix(100, 0)
	m, _ = update(t, m, TickMsg(start))
	m, _ = update(t, m, runeKey("w"))
	m, cmd := update(t, m, TickMsg(start.Add(50*time.Millisecond)))

	if cmd == nil {
		t.Error("tick should schedule the next tick")
	}
	if g.elapsed != 50*time.Millisecond {
		t.Errorf("elapsed = %v, expected 50ms", g.elapsed)
	}
	if !g.last.Has(core.ActionJump) {
		t.Error("jump key should reach the game on the next tick")
	}

	// Input is cleared after each frame
	update(t, m, TickMsg(start.Add(60*time.Millisecond)))
	if g.last.Has(core.ActionJump) {
		t.Error("jump should not repeat on the following frame")
	}
}

func TestModelBackPausesOutsideMenu(t *testing.T) {
	g := &stubGame{}
	m := NewModel(g, testRuntime(), Options{})
	m.Init()

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	m, _ = update(t, m, TickMsg(time.Unix(1, 0)))

	if !m.State().Paused {
		t.Error("back outside a menu should pause")
	}
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.BackToMenu() {
		t.Error("back outside a menu should never leave the game")
	}
}

func TestModelBackToMenuWhenPaused(t *testing.T) {
	g := &stubGame{}
	m := NewModel(g, testRuntime(), Options{InMenu: true})
	m.Init()

	// Running: back pauses first
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.BackToMenu() {
		t.Fatal("back while running should pause, not leave")
	}
	m, _ = update(t, m, TickMsg(time.Unix(1, 0)))

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if !m.BackToMenu() {
		t.Error("back while paused should return to the menu")
	}

	frames := g.frames
	update(t, m, TickMsg(time.Unix(2, 0)))
	if g.frames != frames {
		t.Error("no frames should run after leaving for the menu")
	}
}

func TestModelQuit(t *testing.T) {
	m := NewModel(&stubGame{}, testRuntime(), Options{})
	m, cmd := update(t, m, runeKey("q"))

	if !m.IsQuitting() {
		t.Error("q should quit")
	}
	if cmd == nil {
		t.Error("quit should return a command")
	}
	if m.View() != "" {
		t.Error("view should be empty after quitting")
	}
}

func TestModelRestartAfterGameOver(t *testing.T) {
	g := &stubGame{}
	m := NewModel(g, testRuntime(), Options{})
	m.Init()

	g.state.GameOver = true
	m, _ = update(t, m, TickMsg(time.Unix(1, 0)))
	if !m.State().GameOver {
		t.Fatal("expected game over state")
	}

	m, _ = update(t, m, runeKey("r"))
	m, _ = update(t, m, TickMsg(time.Unix(2, 0)))

	if g.resets != 2 {
		t.Errorf("resets = %d, expected 2", g.resets)
	}
	if m.State().GameOver {
		t.Error("state should be fresh after restart")
	}
}

func TestModelRestartIgnoredWhileRunning(t *testing.T) {
	g := &stubGame{}
	m := NewModel(g, testRuntime(), Options{})
	m.Init()

	m, _ = update(t, m, runeKey("r"))
	update(t, m, TickMsg(time.Unix(1, 0)))

	if g.resets != 1 {
		t.Errorf("resets = %d, expected 1", g.resets)
	}
}

func TestModelScoreSavedStatus(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer store.Close()

	m := NewModel(&stubGame{}, testRuntime(), Options{Store: store, Player: "ada"})

	msg := saveScoreCmd(store, "stub", "ada", 120)()
	m, _ = update(t, m, msg)
	if !strings.Contains(m.View(), "New personal best!") {
		t.Error("first run should report a personal best")
	}

	msg = saveScoreCmd(store, "stub", "ada", 90)()
	m, _ = update(t, m, msg)
	if !strings.Contains(m.View(), "Score saved") {
		t.Error("lower run should report a plain save")
	}

	m, _ = update(t, m, scoreSavedMsg{err: errors.New("disk full")})
	if !strings.Contains(m.View(), "Score not saved") {
		t.Error("failed save should be reported")
	}

	best, err := store.PlayerBestScore("stub", "ada")
	if err != nil {
		t.Fatalf("PlayerBestScore() error = %v", err)
	}
	if best != 120 {
		t.Errorf("PlayerBestScore() = %d, expected 120", best)
	}
}

func TestModelSavesOncePerGameOver(t *testing.T) {
	g := &stubGame{}
	m := NewModel(g, testRuntime(), Options{})
	m.Init()

	g.state.GameOver = true
	g.state.Score = 50
	m, _ = update(t, m, TickMsg(time.Unix(1, 0)))
	if !m.scoreSaved {
		t.Error("game over should mark the run as handled")
	}

	// Without a store no save command is produced, and a second frame is harmless
	m, _ = update(t, m, TickMsg(time.Unix(2, 0)))
	if !m.scoreSaved {
		t.Error("run should stay handled until restart")
	}
}
