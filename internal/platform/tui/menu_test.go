package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-asteroids/internal/core"
	"github.com/vovakirdan/tui-asteroids/internal/games/asteroids"
	"github.com/vovakirdan/tui-asteroids/internal/storage"
)

func updateMenu(t *testing.T, m MenuModel, msg tea.Msg) MenuModel {
	t.Helper()
	next, _ := m.Update(msg)
	menu, ok := next.(MenuModel)
	if !ok {
		t.Fatalf("Update returned %T, expected MenuModel", next)
	}
	return menu
}

func TestMenuListsVariants(t *testing.T) {
	m := NewMenuModel(testRuntime)

	want := []string{"asteroids", "asteroids_easy", "asteroids_hard"}
	if len(m.items) != len(want) {
		t.Fatalf("Expected %d menu items, got %d", len(want), len(m.items))
	}
	for i, id := range want {
		if m.items[i].GameID != id {
			t.Errorf("Item %d = %q, expected %q", i, m.items[i].GameID, id)
		}
		if m.items[i].Description == "" {
			t.Errorf("Item %q should carry a description", id)
		}
	}

	view := m.View()
	if !strings.Contains(view, "A S T E R O I D S") || !strings.Contains(view, "Asteroids (Hard)") {
		t.Errorf("Menu view missing title or items:\n%s", view)
	}
}

func TestMenuSelect(t *testing.T) {
	m := NewMenuModel(testRuntime)

	m = updateMenu(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m = updateMenu(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m = updateMenu(t, m, tea.KeyMsg{Type: tea.KeyDown}) // clamped
	m = updateMenu(t, m, tea.KeyMsg{Type: tea.KeyUp})
	m = updateMenu(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	result := m.result()
	if result.Quit || result.WantsScoreboard {
		t.Fatalf("Unexpected result: %+v", result)
	}
	if result.GameID != "asteroids_easy" {
		t.Errorf("Selected %q, expected asteroids_easy", result.GameID)
	}
}

func TestMenuScoreboardAndQuit(t *testing.T) {
	m := updateMenu(t, NewMenuModel(testRuntime), tea.KeyMsg{Type: tea.KeyTab})
	if !m.result().WantsScoreboard {
		t.Error("Tab should request the run history")
	}

	m = updateMenu(t, NewMenuModel(testRuntime), keyRune('q'))
	if !m.result().Quit {
		t.Error("q should quit the menu")
	}
	if m.View() != "" {
		t.Error("View should be empty after quitting")
	}
}

func TestMenuResizeUpdatesConfig(t *testing.T) {
	m := updateMenu(t, NewMenuModel(testRuntime), tea.WindowSizeMsg{Width: 132, Height: 40})
	cfg := m.Config()
	if cfg.ScreenW != 132 || cfg.ScreenH != 40 {
		t.Errorf("Config size = %dx%d, expected 132x40", cfg.ScreenW, cfg.ScreenH)
	}
}

func TestScoreboardShowsRuns(t *testing.T) {
	store, err := storage.OpenMemory()
	if err != nil {
		t.Fatalf("OpenMemory failed: %v", err)
	}
	defer store.Close()

	for _, score := range []int{300, 1500, 900} {
		if _, err := store.SaveRun(storage.NewRun("asteroids", core.Summary{Score: score, DifficultyLevel: 2})); err != nil {
			t.Fatalf("SaveRun failed: %v", err)
		}
	}

	m := NewScoreboardModel(store, 120, 40)
	if len(m.runs) != 3 {
		t.Fatalf("Expected 3 runs, got %d", len(m.runs))
	}
	if m.runs[0].Score != 1500 {
		t.Errorf("Best run should be first, got score %d", m.runs[0].Score)
	}
	if got := m.table.Rows()[0][1]; got != "1,500" {
		t.Errorf("Score column = %q, expected 1,500", got)
	}

	view := m.View()
	if !strings.Contains(view, "RUNS THIS SESSION - Asteroids") {
		t.Errorf("Missing title:\n%s", view)
	}
	if !strings.Contains(m.statsLine(), "3 runs  best 1,500  avg 900") {
		t.Errorf("Unexpected stats line %q", m.statsLine())
	}

	// Next variant has no runs
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(ScoreboardModel)
	if m.games[m.gameCursor].ID != "asteroids_easy" {
		t.Errorf("Tab should move to asteroids_easy, got %q", m.games[m.gameCursor].ID)
	}
	if len(m.runs) != 0 || !strings.Contains(m.View(), "No runs recorded yet") {
		t.Error("Variant without runs should show the empty message")
	}

	// Shift+tab wraps back
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	next, _ = next.(ScoreboardModel).Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	m = next.(ScoreboardModel)
	if m.games[m.gameCursor].ID != "asteroids_hard" {
		t.Errorf("Shift+tab should wrap to asteroids_hard, got %q", m.games[m.gameCursor].ID)
	}
}

func TestScoreboardWithoutStore(t *testing.T) {
	m := NewScoreboardModel(nil, 60, 20)
	if m.statsLine() != "no runs yet" {
		t.Errorf("Unexpected stats line %q", m.statsLine())
	}

	next, _ := m.Update(keyRune('b'))
	if !next.(ScoreboardModel).IsGoingBack() {
		t.Error("b should go back to the menu")
	}
}

func TestFormatDuration(t *testing.T) {
	tests := map[int]string{0: "0:00", 59: "0:59", 61: "1:01", 3600: "60:00"}
	for secs, want := range tests {
		if got := formatDuration(secs); got != want {
			t.Errorf("formatDuration(%d) = %q, expected %q", secs, got, want)
		}
	}
}

func TestModelRunsRealGame(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	store, err := storage.OpenMemory()
	if err != nil {
		t.Fatalf("OpenMemory failed: %v", err)
	}
	defer store.Close()

	g := asteroids.New()
	m := NewModel(g, store, testRuntime, Options{})
	m.Init()

	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = update(t, m, TickMsg(time.Now()))
	if g.Phase() != core.PhaseActive {
		t.Fatalf("Enter should start the run, phase is %s", g.Phase())
	}

	m = update(t, m, tea.KeyMsg{Type: tea.KeySpace})
	m = update(t, m, TickMsg(time.Now()))
	if g.Stats().BulletsFired != 1 {
		t.Errorf("Space should fire one bullet, fired %d", g.Stats().BulletsFired)
	}

	if !strings.Contains(m.View(), "Score") {
		t.Error("View should show the HUD")
	}
}
