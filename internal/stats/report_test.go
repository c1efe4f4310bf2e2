package stats

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/verte-zerg/wordfall/internal/model"
	"github.com/verte-zerg/wordfall/internal/store"
)

func TestBuildReport(t *testing.T) {
	st, err := store.Open(filepath.Join(t.TempDir(), "wordfall.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() {
		_ = st.Close()
	})

	ctx := context.Background()
	var ids []int64
	for i := 0; i < 3; i++ {
		start := time.Unix(1000, 0).Add(time.Duration(i) * time.Hour)
		record := model.GameSessionRecord{
			StartedAt:       start,
			EndedAt:         start.Add(90 * time.Second),
			Score:           100 * (i + 1),
			LevelReached:    1,
			WPM:             30 + i,
			Accuracy:        90,
			WordsTyped:      20,
			DurationSeconds: 90,
			GameMode:        model.ModeNormal,
		}
		id, err := st.InsertSession(ctx, record)
		if err != nil {
			t.Fatalf("insert session: %v", err)
		}
		ids = append(ids, id)
	}

	report, err := BuildReport(ctx, st, model.StatsConfig{Last: 2, CurveWindow: 2})
	if err != nil {
		t.Fatalf("build report: %v", err)
	}
	if len(report.Sessions) != 2 {
		t.Fatalf("expected 2 sessions, got %d", len(report.Sessions))
	}
	if report.Sessions[0].ID != ids[1] || report.Sessions[1].ID != ids[2] {
		t.Fatalf("unexpected session ids: %+v", report.Sessions)
	}
	if report.Profile.GamesPlayed != 3 {
		t.Fatalf("profile should cover all sessions, got %d", report.Profile.GamesPlayed)
	}
	if report.Profile.BestScore != 300 {
		t.Fatalf("unexpected best score: %d", report.Profile.BestScore)
	}
}
