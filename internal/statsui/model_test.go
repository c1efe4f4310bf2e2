package statsui

import (
	"context"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/verte-zerg/wordfall/internal/model"
	"github.com/verte-zerg/wordfall/internal/store"
)

func newTestModelWithSessions(t *testing.T, count int) *Model {
	t.Helper()
	st, err := store.Open(filepath.Join(t.TempDir(), "wordfall.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() {
		_ = st.Close()
	})
	ctx := context.Background()
	for i := 0; i < count; i++ {
		start := time.Now().Add(time.Duration(i-count) * time.Hour)
		record := model.GameSessionRecord{
			StartedAt:       start,
			EndedAt:         start.Add(2 * time.Minute),
			Score:           200 * (i + 1),
			LevelReached:    1,
			WPM:             30 + i,
			Accuracy:        90,
			WordsTyped:      25,
			DurationSeconds: 120,
			GameMode:        model.ModeNormal,
		}
		if _, err := st.InsertSession(ctx, record); err != nil {
			t.Fatalf("insert session: %v", err)
		}
	}
	m := NewModel(st, model.StatsConfig{CurveWindow: 5})
	m.width = 100
	m.height = 30
	m.updateLayout()
	m.renderOverview()
	return m
}

func TestOverviewShowsProfileCards(t *testing.T) {
	m := newTestModelWithSessions(t, 3)
	out := m.View()
	if !strings.Contains(out, "Games") || !strings.Contains(out, "Best Score") {
		t.Fatalf("expected profile cards in overview:\n%s", out)
	}
}

func TestTabNavigationWraps(t *testing.T) {
	m := newTestModelWithSessions(t, 1)
	m.moveTab(-1)
	if m.activeTab != tabLeaderboard {
		t.Fatalf("expected wrap to leaderboard, got %d", m.activeTab)
	}
	m.moveTab(1)
	if m.activeTab != tabOverview {
		t.Fatalf("expected wrap back to overview, got %d", m.activeTab)
	}
}

func TestHistoryRowsNewestFirst(t *testing.T) {
	m := newTestModelWithSessions(t, 3)
	rows := historyRows(m.report.Sessions)
	if len(rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(rows))
	}
	// Highest score was inserted last, so it leads the listing.
	if rows[0][2] != "600" {
		t.Fatalf("expected newest session first, got score %s", rows[0][2])
	}
}

func TestCyclePeriodRefreshesLeaderboard(t *testing.T) {
	m := newTestModelWithSessions(t, 2)
	if m.period != model.PeriodAll {
		t.Fatalf("expected initial period all, got %s", m.period)
	}
	m.cyclePeriod()
	if m.period != model.PeriodWeek {
		t.Fatalf("expected week after cycle, got %s", m.period)
	}
	if len(m.leaderboard) == 0 {
		t.Fatalf("recent sessions should appear on the weekly board")
	}
	m.cyclePeriod()
	m.cyclePeriod()
	if m.period != model.PeriodAll {
		t.Fatalf("expected cycle back to all, got %s", m.period)
	}
}

func TestFilterApplyRejectsBadDate(t *testing.T) {
	m := newTestModelWithSessions(t, 1)
	_, _ = m.startFilter()
	m.filterInputs[0].SetValue("not-a-date")
	if err := m.applyFilter(); err == nil {
		t.Fatalf("expected error for malformed since date")
	}
}

func TestQuitKey(t *testing.T) {
	m := newTestModelWithSessions(t, 1)
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if cmd == nil {
		t.Fatalf("expected quit command")
	}
}
