package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/starcatch/internal/storage"
)

func scoreboardStore(t *testing.T, runs ...storage.RunEntry) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { store.Close() })
	for _, r := range runs {
		if _, err := store.SaveRun(r); err != nil {
			t.Fatal(err)
		}
	}
	return store
}

func TestScoreboardEmptyStates(t *testing.T) {
	tests := []struct {
		name  string
		store *storage.Store
		want  string
	}{
		{"no store", nil, "No score database"},
		{"no runs", scoreboardStore(t), "No scores recorded yet"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewScoreboardModel(tt.store, "starcatch", "Star Catcher", 100, 30)
			if v := m.View(); !strings.Contains(v, tt.want) {
				t.Errorf("view missing %q:\n%s", tt.want, v)
			}
		})
	}
}

func TestScoreboardRowsAndStats(t *testing.T) {
	store := scoreboardStore(t,
		storage.RunEntry{GameID: "starcatch", Player: "ann", Score: 120, Stars: 12},
		storage.RunEntry{GameID: "starcatch", Player: "bob", Score: 340, Stars: 34},
		storage.RunEntry{GameID: "other", Player: "eve", Score: 999},
	)

	m := NewScoreboardModel(store, "starcatch", "Star Catcher", 100, 30)
	rows := m.table.Rows()
	if len(rows) != 2 {
		t.Fatalf("rows = %d, want 2", len(rows))
	}
	if rows[0][1] != "bob" || rows[0][2] != "340" {
		t.Errorf("first row = %v, want bob with 340", rows[0])
	}

	v := m.View()
	if !strings.Contains(v, "HIGH SCORES - Star Catcher") {
		t.Error("title missing")
	}
	if !strings.Contains(v, "Stars:   46") {
		t.Errorf("stats panel missing star total:\n%s", v)
	}
}

func TestScoreboardNarrowHidesStats(t *testing.T) {
	store := scoreboardStore(t, storage.RunEntry{GameID: "starcatch", Score: 10})
	m := NewScoreboardModel(store, "starcatch", "Star Catcher", 100, 30)

	next, _ := m.Update(tea.WindowSizeMsg{Width: 60, Height: 30})
	if strings.Contains(next.View(), "Players:") {
		t.Error("stats panel should be hidden below the sidebar width")
	}
}

func TestScoreboardReload(t *testing.T) {
	store := scoreboardStore(t)
	m := NewScoreboardModel(store, "starcatch", "Star Catcher", 100, 30)

	if _, err := store.SaveRun(storage.RunEntry{GameID: "starcatch", Player: "cat", Score: 50}); err != nil {
		t.Fatal(err)
	}
	next, _ := m.Update(runeKey("r"))
	if rows := next.(ScoreboardModel).table.Rows(); len(rows) != 1 {
		t.Errorf("rows after reload = %d, want 1", len(rows))
	}
}

func TestScoreboardQuit(t *testing.T) {
	m := NewScoreboardModel(nil, "starcatch", "Star Catcher", 80, 24)

	next, cmd := m.Update(runeKey("q"))
	if cmd == nil {
		t.Fatal("quit should return a command")
	}
	if next.View() != "" {
		t.Error("view should be empty after quit")
	}
}
