package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/verte-zerg/wordfall/internal/model"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	dir := t.TempDir()
	st, err := Open(filepath.Join(dir, "wordfall.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() {
		_ = st.Close()
	})
	return st
}

func testRecord(endedAt time.Time, score, wpm, accuracy int) model.GameSessionRecord {
	return model.GameSessionRecord{
		StartedAt:       endedAt.Add(-90 * time.Second),
		EndedAt:         endedAt,
		Score:           score,
		LevelReached:    2,
		WPM:             wpm,
		Accuracy:        accuracy,
		WordsTyped:      30,
		DurationSeconds: 90,
		GameMode:        model.ModeNormal,
		GameStats: model.GameStats{
			EnemiesDefeated: 12,
			BossesDefeated:  1,
			AlliesHelped:    2,
			LivesLost:       3,
		},
	}
}

func TestInsertAndListSessions(t *testing.T) {
	st := openTestStore(t)
	ctx := context.Background()
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		record := testRecord(base.Add(time.Duration(i)*time.Hour), 100*i, 40+i, 90)
		if _, err := st.InsertSession(ctx, record); err != nil {
			t.Fatalf("insert session: %v", err)
		}
	}

	sessions, err := st.ListSessions(ctx, model.StatsConfig{})
	if err != nil {
		t.Fatalf("list sessions: %v", err)
	}
	if len(sessions) != 3 {
		t.Fatalf("expected 3 sessions, got %d", len(sessions))
	}
	if !sessions[0].EndedAt.Before(sessions[2].EndedAt) {
		t.Fatalf("sessions should be oldest first")
	}
	if sessions[1].GameStats.BossesDefeated != 1 {
		t.Fatalf("game stats not round-tripped: %+v", sessions[1].GameStats)
	}

	last, err := st.ListSessions(ctx, model.StatsConfig{Last: 2})
	if err != nil {
		t.Fatalf("list last sessions: %v", err)
	}
	if len(last) != 2 || last[0].Score != 100 {
		t.Fatalf("unexpected last-2 window: %+v", last)
	}

	since := base.Add(90 * time.Minute)
	recent, err := st.ListSessions(ctx, model.StatsConfig{Since: &since})
	if err != nil {
		t.Fatalf("list since sessions: %v", err)
	}
	if len(recent) != 1 || recent[0].Score != 200 {
		t.Fatalf("unexpected since filter result: %+v", recent)
	}
}

func TestHistoryNewestFirst(t *testing.T) {
	st := openTestStore(t)
	ctx := context.Background()
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		if _, err := st.InsertSession(ctx, testRecord(base.Add(time.Duration(i)*time.Hour), i, 40, 90)); err != nil {
			t.Fatalf("insert session: %v", err)
		}
	}
	history, err := st.History(ctx, 3)
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if len(history) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(history))
	}
	if history[0].Score != 4 || history[2].Score != 2 {
		t.Fatalf("history should be newest first: %+v", history)
	}
}

func TestProfileAggregates(t *testing.T) {
	st := openTestStore(t)
	ctx := context.Background()
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	if _, err := st.InsertSession(ctx, testRecord(base, 500, 60, 80)); err != nil {
		t.Fatalf("insert session: %v", err)
	}
	if _, err := st.InsertSession(ctx, testRecord(base.Add(time.Hour), 900, 45, 100)); err != nil {
		t.Fatalf("insert session: %v", err)
	}
	profile, err := st.Profile(ctx)
	if err != nil {
		t.Fatalf("profile: %v", err)
	}
	if profile.GamesPlayed != 2 || profile.BestScore != 900 || profile.BestWPM != 60 {
		t.Fatalf("unexpected profile: %+v", profile)
	}
	if profile.AverageAccuracy != 90 {
		t.Fatalf("average accuracy = %v, want 90", profile.AverageAccuracy)
	}
	if profile.TotalWordsTyped != 60 || profile.PlayTimeSeconds != 180 {
		t.Fatalf("unexpected totals: %+v", profile)
	}
}

func TestProfileEmptyStore(t *testing.T) {
	st := openTestStore(t)
	profile, err := st.Profile(context.Background())
	if err != nil {
		t.Fatalf("profile: %v", err)
	}
	if profile.GamesPlayed != 0 || profile.BestScore != 0 {
		t.Fatalf("expected zero profile, got %+v", profile)
	}
}

func TestLeaderboardRanking(t *testing.T) {
	st := openTestStore(t)
	ctx := context.Background()
	now := time.Now()
	// Old session outside the weekly window.
	if _, err := st.InsertSession(ctx, testRecord(now.Add(-10*24*time.Hour), 999, 99, 99)); err != nil {
		t.Fatalf("insert session: %v", err)
	}
	if _, err := st.InsertSession(ctx, testRecord(now.Add(-time.Hour), 300, 50, 95)); err != nil {
		t.Fatalf("insert session: %v", err)
	}
	if _, err := st.InsertSession(ctx, testRecord(now.Add(-2*time.Hour), 400, 50, 97)); err != nil {
		t.Fatalf("insert session: %v", err)
	}

	all, err := st.Leaderboard(ctx, model.PeriodAll, 10)
	if err != nil {
		t.Fatalf("leaderboard: %v", err)
	}
	if len(all) != 3 || all[0].WPM != 99 {
		t.Fatalf("unexpected all-time leaderboard: %+v", all)
	}

	week, err := st.Leaderboard(ctx, model.PeriodWeek, 10)
	if err != nil {
		t.Fatalf("leaderboard: %v", err)
	}
	if len(week) != 2 {
		t.Fatalf("expected 2 weekly rows, got %d", len(week))
	}
	// Equal WPM ranks by accuracy.
	if week[0].Accuracy != 97 || week[1].Accuracy != 95 {
		t.Fatalf("accuracy tie-break failed: %+v", week)
	}
	if week[0].Rank != 1 || week[1].Rank != 2 {
		t.Fatalf("ranks not assigned: %+v", week)
	}
}
