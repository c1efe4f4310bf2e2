// Package game implements the typing-action scene logic: spawning, match
// resolution, combo and score bookkeeping, and the session lifecycle.
package game

import (
	"fmt"
	"os"
	"time"

	"github.com/verte-zerg/wordfall/internal/content"
	"github.com/verte-zerg/wordfall/internal/geom"
	"github.com/verte-zerg/wordfall/internal/model"
	"github.com/verte-zerg/wordfall/internal/rng"
)

const (
	startingLives = 3
	maxLives      = 5

	bossKillThreshold = 8
	bossHitPoints     = 3

	timeSlowWindow = 8 * time.Second
	allyCooldown   = 10 * time.Second

	scorePerLevel = 600
)

// Collaborator receives the final session record at game over.
type Collaborator interface {
	SubmitGameSession(record model.GameSessionRecord) error
}

// CollaboratorFunc adapts a function to the Collaborator interface.
type CollaboratorFunc func(record model.GameSessionRecord) error

// SubmitGameSession implements Collaborator.
func (f CollaboratorFunc) SubmitGameSession(record model.GameSessionRecord) error {
	return f(record)
}

// GameState is the mutable aggregate owned by the session.
type GameState struct {
	Score          int
	Level          int
	Lives          int
	Combo          int
	Multiplier     int
	MaxCombo       int
	Shield         bool
	TimeSlow       bool
	TotalChars     int
	CorrectChars   int
	ErrorChars     int
	WordsTyped     int
	BossActive     bool
	KillsSinceBoss int
}

// Session owns the game state and the live entity sets for one run.
type Session struct {
	mode    model.GameMode
	rng     rng.Rand
	content *content.Provider
	paths   *geom.Table
	collab  Collaborator

	clock       time.Duration
	startedWall time.Time

	state   GameState
	profile Profile

	encounters []*Encounter
	allies     []*Ally
	nextID     int64

	sinceSpawn    time.Duration
	allyReadyAt   time.Duration
	timeSlowUntil time.Duration
	forcedHealer  bool
	healerSpawned bool

	pending []rune

	stats     model.GameStats
	over      bool
	summary   *model.GameSessionRecord
	submitErr error
}

// TickResult reports what one Advance call changed.
type TickResult struct {
	SpawnedEncounter  *Encounter
	SpawnedAlly       *Ally
	ExpiredEncounters []int64
	ExpiredAllies     []int64
	LivesLost         int
	ShieldAbsorbed    bool
	GameOver          bool
	SubmitErr         error
}

// NewSession starts a run. It fails when the content provider cannot supply
// challenges, since the encounter loop cannot run without them.
func NewSession(mode model.GameMode, provider *content.Provider, paths *geom.Table, r rng.Rand, collab Collaborator) (*Session, error) {
	if provider == nil {
		return nil, fmt.Errorf("content provider is required")
	}
	if err := provider.Validate(); err != nil {
		return nil, fmt.Errorf("cannot start session: %w", err)
	}
	if paths == nil {
		return nil, fmt.Errorf("path table is required")
	}
	if r == nil {
		r = rng.New(0)
	}
	s := &Session{
		mode:        mode,
		rng:         r,
		content:     provider,
		paths:       paths,
		collab:      collab,
		startedWall: time.Now(),
		state: GameState{
			Level:      1,
			Lives:      startingLives,
			Multiplier: 1,
		},
	}
	if mode == model.ModeBossBattle {
		// The first spawn is a boss; the regular gate applies afterwards.
		s.state.KillsSinceBoss = bossKillThreshold
	}
	s.profile = ProfileFor(1)
	return s, nil
}

// Advance drives the scene by dt: traversals, expirations, spawn and ally
// timers, and the time-slow window. It is the only clock source.
func (s *Session) Advance(dt time.Duration) TickResult {
	var res TickResult
	if s.over || dt <= 0 {
		return res
	}
	s.clock += dt

	if s.state.TimeSlow && s.clock >= s.timeSlowUntil {
		s.state.TimeSlow = false
	}
	eff := dt
	if s.state.TimeSlow {
		eff = dt / 2
	}

	// A forced healer spawn owed from a life loss fires before any regular
	// spawn tick.
	if s.forcedHealer {
		if ally := s.spawnAlly(AllyExtraLife); ally != nil {
			res.SpawnedAlly = ally
			s.forcedHealer = false
		}
	}

	s.advanceEncounters(eff, &res)
	if s.over {
		res.GameOver = true
		res.SubmitErr = s.submitErr
		return res
	}
	s.advanceAllies(eff, &res)

	s.sinceSpawn += dt
	if s.sinceSpawn >= s.profile.SpawnInterval {
		s.sinceSpawn -= s.profile.SpawnInterval
		if s.state.KillsSinceBoss >= bossKillThreshold && !s.state.BossActive {
			res.SpawnedEncounter = s.spawnBoss()
		} else {
			res.SpawnedEncounter = s.spawnRegular()
		}
	}

	if res.SpawnedAlly == nil {
		res.SpawnedAlly = s.trySpawnAlly()
	}
	return res
}

func (s *Session) advanceEncounters(eff time.Duration, res *TickResult) {
	remaining := s.encounters[:0]
	for _, e := range s.encounters {
		if e.SpawnedAt < s.clock {
			e.traveled += eff
		}
		if e.Matched || e.Progress() < 1 {
			remaining = append(remaining, e)
			continue
		}
		// Reached the path end unmatched.
		res.ExpiredEncounters = append(res.ExpiredEncounters, e.ID)
		if e.IsBoss() {
			s.state.BossActive = false
		}
		if s.state.Shield {
			s.state.Shield = false
			res.ShieldAbsorbed = true
		} else {
			cost := 1
			if e.IsBoss() {
				cost = 2
			}
			s.loseLife(cost, res)
		}
		if s.over {
			return
		}
	}
	s.encounters = remaining
}

func (s *Session) advanceAllies(eff time.Duration, res *TickResult) {
	remaining := s.allies[:0]
	for _, a := range s.allies {
		if a.SpawnedAt < s.clock {
			a.traveled += eff
		}
		if a.Matched || a.Progress() < 1 {
			remaining = append(remaining, a)
			continue
		}
		res.ExpiredAllies = append(res.ExpiredAllies, a.ID)
	}
	s.allies = remaining
}

func (s *Session) loseLife(count int, res *TickResult) {
	for i := 0; i < count && s.state.Lives > 0; i++ {
		s.state.Lives--
		s.stats.LivesLost++
		res.LivesLost++
	}
	s.resetCombo()
	if !s.healerSpawned {
		if ally := s.spawnAlly(AllyExtraLife); ally != nil {
			res.SpawnedAlly = ally
		} else {
			s.forcedHealer = true
		}
	}
	if s.state.Lives <= 0 {
		s.finish(res)
	}
}

// finish performs the one-way transition to game over: clears the live sets,
// builds the summary, and hands it to the collaborator.
func (s *Session) finish(res *TickResult) {
	if s.over {
		return
	}
	s.over = true
	s.encounters = nil
	s.allies = nil
	s.forcedHealer = false

	record := model.GameSessionRecord{
		StartedAt:       s.startedWall,
		EndedAt:         time.Now(),
		Score:           s.state.Score,
		LevelReached:    s.state.Level,
		WPM:             s.WPM(),
		Accuracy:        s.Accuracy(),
		WordsTyped:      s.state.WordsTyped,
		DurationSeconds: int(s.clock / time.Second),
		GameMode:        s.mode,
		GameStats:       s.stats,
	}
	s.summary = &record

	if s.collab != nil && s.mode != model.ModePractice {
		if err := s.collab.SubmitGameSession(record); err != nil {
			// Submission failure never blocks the game-over presentation.
			s.submitErr = err
			logErrf("failed to submit game session: %v\n", err)
		}
	}
	if res != nil {
		res.GameOver = true
		res.SubmitErr = s.submitErr
	}
}

// State returns a copy of the current game state.
func (s *Session) State() GameState {
	return s.state
}

// Profile returns the difficulty profile for the current level.
func (s *Session) Profile() Profile {
	return s.profile
}

// Clock returns the accumulated session time.
func (s *Session) Clock() time.Duration {
	return s.clock
}

// Encounters returns the live encounter set in insertion order. The slice is
// owned by the session and must not be mutated.
func (s *Session) Encounters() []*Encounter {
	return s.encounters
}

// Allies returns the live ally set in insertion order. The slice is owned by
// the session and must not be mutated.
func (s *Session) Allies() []*Ally {
	return s.allies
}

// Over reports whether the session has ended.
func (s *Session) Over() bool {
	return s.over
}

// Summary returns the final record, or nil while the session is active.
func (s *Session) Summary() *model.GameSessionRecord {
	return s.summary
}

// Stats returns the per-run outcome counters.
func (s *Session) Stats() model.GameStats {
	return s.stats
}

// SubmitErr returns the persistence error from game over, if any.
func (s *Session) SubmitErr() error {
	return s.submitErr
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
