package backend

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/verte-zerg/wordfall/internal/model"
	"github.com/verte-zerg/wordfall/internal/store"
)

func newTestBackend(t *testing.T) *Backend {
	t.Helper()
	st, err := store.Open(filepath.Join(t.TempDir(), "wordfall.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() {
		_ = st.Close()
	})
	return New(st)
}

func TestSubmitGameSessionReturnsUpdatedStats(t *testing.T) {
	b := newTestBackend(t)
	ctx := context.Background()
	record := model.GameSessionRecord{
		StartedAt:       time.Now().Add(-time.Minute),
		EndedAt:         time.Now(),
		Score:           720,
		LevelReached:    2,
		WPM:             48,
		Accuracy:        93,
		WordsTyped:      25,
		DurationSeconds: 60,
		GameMode:        model.ModeNormal,
	}
	resp, err := b.SubmitGameSession(ctx, record)
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if resp.SessionID == 0 {
		t.Fatalf("expected a session id")
	}
	if resp.UpdatedStats.GamesPlayed != 1 || resp.UpdatedStats.BestScore != 720 {
		t.Fatalf("unexpected updated stats: %+v", resp.UpdatedStats)
	}

	// A retried submission counts as a distinct session.
	resp, err = b.SubmitGameSession(ctx, record)
	if err != nil {
		t.Fatalf("resubmit: %v", err)
	}
	if resp.UpdatedStats.GamesPlayed != 2 {
		t.Fatalf("duplicate submission should create a second session")
	}

	history, err := b.FetchHistory(ctx, 10)
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if len(history) != 2 {
		t.Fatalf("expected 2 history rows, got %d", len(history))
	}
}

func TestFetchLeaderboardRejectsUnknownPeriod(t *testing.T) {
	b := newTestBackend(t)
	if _, err := b.FetchLeaderboard(context.Background(), model.LeaderboardPeriod("year"), 10); err == nil {
		t.Fatalf("expected error for unknown period")
	}
}
