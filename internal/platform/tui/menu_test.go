package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-runner/internal/storage"
)

func updateMenu(t *testing.T, m MenuModel, msg tea.Msg) MenuModel {
	t.Helper()
	next, _ := m.Update(msg)
	mm, ok := next.(MenuModel)
	if !ok {
		t.Fatalf("Update returned %T, expected MenuModel", next)
	}
	return mm
}

func TestMenuShowsPlayerBest(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer store.Close()

	if _, err := store.RecordRun("stub", "ada", 321); err != nil {
		t.Fatalf("RecordRun() error = %v", err)
	}

	m := NewMenuModel(store, testRuntime(), "ada")
	view := m.View()
	if !strings.Contains(view, "best 321") {
		t.Errorf("menu should show the player's best, got:\n%s", view)
	}
	if !strings.Contains(view, "Hi ada") {
		t.Error("menu should greet the player")
	}
}

func TestMenuSelect(t *testing.T) {
	m := updateMenu(t, NewMenuModel(nil, testRuntime(), ""), tea.KeyMsg{Type: tea.KeyEnter})
	if m.Selected() == nil {
		t.Fatal("enter should select a mode")
	}
	if m.Selected().GameID == "" {
		t.Error("selected item has no mode id")
	}
}

func TestMenuScoreboardAndQuit(t *testing.T) {
	m := updateMenu(t, NewMenuModel(nil, testRuntime(), ""), tea.KeyMsg{Type: tea.KeyTab})
	if !m.WantsScoreboard() {
		t.Error("tab should open the scoreboard")
	}

	m = updateMenu(t, NewMenuModel(nil, testRuntime(), ""), runeKey("q"))
	if !m.IsQuitting() {
		t.Error("q should quit")
	}
}

func TestMenuResize(t *testing.T) {
	m := updateMenu(t, NewMenuModel(nil, testRuntime(), ""), tea.WindowSizeMsg{Width: 120, Height: 40})
	cfg := m.Config()
	if cfg.ScreenW != 120 || cfg.ScreenH != 40 {
		t.Errorf("Config() size = %dx%d, expected 120x40", cfg.ScreenW, cfg.ScreenH)
	}
}
