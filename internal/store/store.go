// Package store handles SQLite persistence.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/verte-zerg/wordfall/internal/model"

	_ "modernc.org/sqlite" // SQLite driver.
)

// Store wraps SQLite access for game session data.
type Store struct {
	db *sql.DB
}

// Open opens or creates the SQLite database and applies migrations.
func Open(path string) (*Store, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		if cerr := db.Close(); cerr != nil {
			// Best-effort close on migration failure.
			_ = cerr
		}
		return nil, err
	}
	return store, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS game_sessions (
			id INTEGER PRIMARY KEY,
			started_at TEXT NOT NULL,
			ended_at TEXT NOT NULL,
			score INTEGER NOT NULL,
			level_reached INTEGER NOT NULL,
			wpm INTEGER NOT NULL,
			accuracy INTEGER NOT NULL,
			words_typed INTEGER NOT NULL,
			duration_seconds INTEGER NOT NULL,
			game_mode TEXT NOT NULL,
			enemies_defeated INTEGER NOT NULL,
			bosses_defeated INTEGER NOT NULL,
			allies_helped INTEGER NOT NULL,
			lives_lost INTEGER NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS idx_game_sessions_ended_at ON game_sessions(ended_at);`,
		`CREATE INDEX IF NOT EXISTS idx_game_sessions_score ON game_sessions(score);`,
		`CREATE INDEX IF NOT EXISTS idx_game_sessions_wpm ON game_sessions(wpm);`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// InsertSession stores a completed game session.
func (s *Store) InsertSession(ctx context.Context, record model.GameSessionRecord) (int64, error) {
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO game_sessions (started_at, ended_at, score, level_reached, wpm, accuracy, words_typed, duration_seconds, game_mode, enemies_defeated, bosses_defeated, allies_helped, lives_lost)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		record.StartedAt.Format(time.RFC3339Nano),
		record.EndedAt.Format(time.RFC3339Nano),
		record.Score,
		record.LevelReached,
		record.WPM,
		record.Accuracy,
		record.WordsTyped,
		record.DurationSeconds,
		string(record.GameMode),
		record.GameStats.EnemiesDefeated,
		record.GameStats.BossesDefeated,
		record.GameStats.AlliesHelped,
		record.GameStats.LivesLost,
	)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

const sessionColumns = `id, started_at, ended_at, score, level_reached, wpm, accuracy, words_typed, duration_seconds, game_mode, enemies_defeated, bosses_defeated, allies_helped, lives_lost`

// ListSessions returns persisted sessions filtered by stats config, oldest
// first.
func (s *Store) ListSessions(ctx context.Context, cfg model.StatsConfig) ([]model.SessionRow, error) {
	clauses := []string{"1=1"}
	args := []any{}
	if cfg.Since != nil {
		clauses = append(clauses, "ended_at >= ?")
		args = append(args, cfg.Since.Format(time.RFC3339Nano))
	}
	query := fmt.Sprintf(`SELECT %s FROM game_sessions WHERE %s ORDER BY ended_at ASC`,
		sessionColumns, strings.Join(clauses, " AND "))
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	sessions, err := scanSessions(rows)
	if err != nil {
		return nil, err
	}
	if cfg.Last > 0 && len(sessions) > cfg.Last {
		sessions = sessions[len(sessions)-cfg.Last:]
	}
	return sessions, nil
}

// History returns the most recent sessions, newest first.
func (s *Store) History(ctx context.Context, limit int) ([]model.SessionRow, error) {
	if limit <= 0 {
		limit = 20
	}
	query := fmt.Sprintf(`SELECT %s FROM game_sessions ORDER BY ended_at DESC LIMIT ?`, sessionColumns)
	rows, err := s.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	return scanSessions(rows)
}

// Profile aggregates every persisted session into profile stats.
func (s *Store) Profile(ctx context.Context) (model.ProfileStats, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*),
			COALESCE(MAX(score), 0),
			COALESCE(MAX(wpm), 0),
			COALESCE(AVG(accuracy), 0),
			COALESCE(SUM(words_typed), 0),
			COALESCE(SUM(duration_seconds), 0)
		 FROM game_sessions`)
	var stats model.ProfileStats
	if err := row.Scan(
		&stats.GamesPlayed,
		&stats.BestScore,
		&stats.BestWPM,
		&stats.AverageAccuracy,
		&stats.TotalWordsTyped,
		&stats.PlayTimeSeconds,
	); err != nil {
		return model.ProfileStats{}, err
	}
	return stats, nil
}

// Leaderboard ranks sessions within a period by WPM, then accuracy, then
// score.
func (s *Store) Leaderboard(ctx context.Context, period model.LeaderboardPeriod, limit int) ([]model.LeaderboardEntry, error) {
	if limit <= 0 {
		limit = 10
	}
	clauses := []string{"1=1"}
	args := []any{}
	if cutoff, ok := periodCutoff(period, time.Now()); ok {
		clauses = append(clauses, "ended_at >= ?")
		args = append(args, cutoff.Format(time.RFC3339Nano))
	}
	args = append(args, limit)
	query := fmt.Sprintf(`SELECT wpm, score, level_reached, accuracy, ended_at
		FROM game_sessions
		WHERE %s
		ORDER BY wpm DESC, accuracy DESC, score DESC
		LIMIT ?`, strings.Join(clauses, " AND "))
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			// Best-effort rows close.
			_ = cerr
		}
	}()

	var entries []model.LeaderboardEntry
	for rows.Next() {
		var entry model.LeaderboardEntry
		var endedAt string
		if err := rows.Scan(&entry.WPM, &entry.Score, &entry.Level, &entry.Accuracy, &endedAt); err != nil {
			return nil, err
		}
		parsed, err := time.Parse(time.RFC3339Nano, endedAt)
		if err != nil {
			return nil, err
		}
		entry.PlayedAt = parsed
		entry.Rank = len(entries) + 1
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return entries, nil
}

func periodCutoff(period model.LeaderboardPeriod, now time.Time) (time.Time, bool) {
	switch period {
	case model.PeriodWeek:
		return now.Add(-7 * 24 * time.Hour), true
	case model.PeriodMonth:
		return now.Add(-30 * 24 * time.Hour), true
	default:
		return time.Time{}, false
	}
}

func scanSessions(rows *sql.Rows) ([]model.SessionRow, error) {
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			// Best-effort rows close.
			_ = cerr
		}
	}()

	var sessions []model.SessionRow
	for rows.Next() {
		var row model.SessionRow
		var startedAt, endedAt, mode string
		if err := rows.Scan(
			&row.ID,
			&startedAt,
			&endedAt,
			&row.Score,
			&row.LevelReached,
			&row.WPM,
			&row.Accuracy,
			&row.WordsTyped,
			&row.DurationSeconds,
			&mode,
			&row.GameStats.EnemiesDefeated,
			&row.GameStats.BossesDefeated,
			&row.GameStats.AlliesHelped,
			&row.GameStats.LivesLost,
		); err != nil {
			return nil, err
		}
		started, err := time.Parse(time.RFC3339Nano, startedAt)
		if err != nil {
			return nil, err
		}
		ended, err := time.Parse(time.RFC3339Nano, endedAt)
		if err != nil {
			return nil, err
		}
		row.StartedAt = started
		row.EndedAt = ended
		row.GameMode = model.GameMode(mode)
		sessions = append(sessions, row)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return sessions, nil
}
