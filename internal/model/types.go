// Package model defines shared data structures.
package model

import "time"

// GameMode selects how a run is played and recorded.
type GameMode string

// Game modes accepted in session records.
const (
	ModeNormal     GameMode = "normal"
	ModeBossBattle GameMode = "boss_battle"
	ModePractice   GameMode = "practice"
)

// Config defines play settings.
type Config struct {
	Mode     GameMode
	Seed     int64
	TiersDir string
}

// StatsConfig defines filters and options for stats output.
type StatsConfig struct {
	Since       *time.Time
	Last        int
	CurveWindow int
}

// LeaderboardPeriod filters leaderboard aggregation by recency.
type LeaderboardPeriod string

// Leaderboard periods.
const (
	PeriodAll   LeaderboardPeriod = "all"
	PeriodWeek  LeaderboardPeriod = "week"
	PeriodMonth LeaderboardPeriod = "month"
)

// GameStats counts per-run outcomes.
type GameStats struct {
	EnemiesDefeated int
	BossesDefeated  int
	AlliesHelped    int
	LivesLost       int
}

// GameSessionRecord is the post-game summary handed to persistence.
type GameSessionRecord struct {
	StartedAt       time.Time
	EndedAt         time.Time
	Score           int
	LevelReached    int
	WPM             int
	Accuracy        int
	WordsTyped      int
	DurationSeconds int
	GameMode        GameMode
	GameStats       GameStats
}

// SessionRow is a persisted session as read back for history.
type SessionRow struct {
	ID int64
	GameSessionRecord
}

// ProfileStats aggregates all persisted sessions for the local player.
type ProfileStats struct {
	GamesPlayed     int
	BestScore       int
	BestWPM         int
	AverageAccuracy float64
	TotalWordsTyped int
	PlayTimeSeconds int
}

// LeaderboardEntry is one ranked row of a period leaderboard.
type LeaderboardEntry struct {
	Rank     int
	WPM      int
	Score    int
	Level    int
	Accuracy int
	PlayedAt time.Time
}
