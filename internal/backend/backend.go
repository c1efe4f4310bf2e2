// Package backend exposes the persistence collaborator the game core hands
// finished sessions to, plus the read-side used by the presentation layer.
package backend

import (
	"context"
	"fmt"

	"github.com/verte-zerg/wordfall/internal/model"
	"github.com/verte-zerg/wordfall/internal/store"
)

// Backend serves session submission and profile/history/leaderboard reads
// over the local store.
type Backend struct {
	store *store.Store
}

// New returns a backend over an open store.
func New(st *store.Store) *Backend {
	return &Backend{store: st}
}

// SubmitResponse carries the persisted session id and refreshed profile
// stats.
type SubmitResponse struct {
	SessionID    int64
	UpdatedStats model.ProfileStats
}

// SubmitGameSession persists one completed run. Duplicate submissions are
// stored as distinct sessions; the core calls this once per game over.
func (b *Backend) SubmitGameSession(ctx context.Context, record model.GameSessionRecord) (SubmitResponse, error) {
	id, err := b.store.InsertSession(ctx, record)
	if err != nil {
		return SubmitResponse{}, fmt.Errorf("failed to save game session: %w", err)
	}
	stats, err := b.store.Profile(ctx)
	if err != nil {
		return SubmitResponse{}, fmt.Errorf("failed to refresh profile stats: %w", err)
	}
	return SubmitResponse{SessionID: id, UpdatedStats: stats}, nil
}

// FetchProfile returns aggregate stats across all persisted sessions.
func (b *Backend) FetchProfile(ctx context.Context) (model.ProfileStats, error) {
	return b.store.Profile(ctx)
}

// FetchHistory returns the most recent sessions, newest first.
func (b *Backend) FetchHistory(ctx context.Context, limit int) ([]model.SessionRow, error) {
	return b.store.History(ctx, limit)
}

// FetchLeaderboard returns the ranked sessions for a period.
func (b *Backend) FetchLeaderboard(ctx context.Context, period model.LeaderboardPeriod, limit int) ([]model.LeaderboardEntry, error) {
	switch period {
	case model.PeriodAll, model.PeriodWeek, model.PeriodMonth:
	default:
		return nil, fmt.Errorf("unknown leaderboard period %q", period)
	}
	return b.store.Leaderboard(ctx, period, limit)
}
