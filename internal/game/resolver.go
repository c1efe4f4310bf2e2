package game

import (
	"strings"
	"unicode/utf8"
)

// Outcome classifies what a submitted phrase resolved.
type Outcome int

// Submit outcomes.
const (
	OutcomeIgnored Outcome = iota
	OutcomeMiss
	OutcomeAlly
	OutcomeEnemyDefeated
	OutcomeBossHit
	OutcomeBossDefeated
)

// SubmitResult reports the effect of one committed phrase.
type SubmitResult struct {
	Outcome   Outcome
	Target    string
	AllyKind  AllyKind
	Awarded   int
	LeveledUp bool
}

// TypeRune appends a keystroke to the pending phrase.
func (s *Session) TypeRune(r rune) {
	if s.over {
		return
	}
	s.pending = append(s.pending, r)
}

// Backspace removes the last pending keystroke.
func (s *Session) Backspace() {
	if len(s.pending) == 0 {
		return
	}
	s.pending = s.pending[:len(s.pending)-1]
}

// Pending returns the phrase accumulated so far.
func (s *Session) Pending() string {
	return string(s.pending)
}

// Submit commits the pending phrase and resolves it against the live sets:
// allies first, then encounters, both scanned in insertion order. A phrase
// resolves at most one target.
func (s *Session) Submit() SubmitResult {
	phrase := strings.TrimSpace(string(s.pending))
	s.pending = s.pending[:0]
	if s.over || phrase == "" {
		return SubmitResult{Outcome: OutcomeIgnored}
	}
	lower := strings.ToLower(phrase)
	chars := utf8.RuneCountInString(phrase)
	words := len(strings.Fields(phrase))

	for i, a := range s.allies {
		if a.Matched || strings.ToLower(a.Text) != lower {
			continue
		}
		a.Matched = true
		s.allies = append(s.allies[:i], s.allies[i+1:]...)
		s.recordSuccess(chars, words)
		s.stats.AlliesHelped++
		s.applyAllyBenefit(a.Kind)
		return SubmitResult{Outcome: OutcomeAlly, Target: a.Text, AllyKind: a.Kind}
	}

	for i, e := range s.encounters {
		if e.Matched || strings.ToLower(e.Text) != lower {
			continue
		}
		s.recordSuccess(chars, words)
		s.registerHit()
		if e.IsBoss() {
			return s.resolveBossMatch(i, e)
		}
		// Non-boss enemies fall to one correct submission; declared hit
		// points never gate them.
		e.Matched = true
		e.HP = 0
		s.encounters = append(s.encounters[:i], s.encounters[i+1:]...)
		s.stats.EnemiesDefeated++
		s.state.KillsSinceBoss++
		awarded, leveledUp := s.awardPoints(e.Points + 10*chars)
		return SubmitResult{
			Outcome:   OutcomeEnemyDefeated,
			Target:    e.Text,
			Awarded:   awarded,
			LeveledUp: leveledUp,
		}
	}

	s.recordError(chars)
	s.resetCombo()
	return SubmitResult{Outcome: OutcomeMiss}
}

// resolveBossMatch removes exactly one hit point; a surviving boss retreats
// to the top with a freshly generated sentence.
func (s *Session) resolveBossMatch(i int, e *Encounter) SubmitResult {
	target := e.Text
	e.HP--
	if e.HP > 0 {
		e.retreat(s.content.GenerateSentence(s.profile.Tier, s.rng))
		awarded, leveledUp := s.awardPoints(e.Points)
		return SubmitResult{
			Outcome:   OutcomeBossHit,
			Target:    target,
			Awarded:   awarded,
			LeveledUp: leveledUp,
		}
	}
	e.Matched = true
	s.encounters = append(s.encounters[:i], s.encounters[i+1:]...)
	s.state.BossActive = false
	s.state.KillsSinceBoss = 0
	s.stats.BossesDefeated++
	awarded, leveledUp := s.awardPoints(e.Points)
	return SubmitResult{
		Outcome:   OutcomeBossDefeated,
		Target:    target,
		Awarded:   awarded,
		LeveledUp: leveledUp,
	}
}

func (s *Session) applyAllyBenefit(kind AllyKind) {
	switch kind {
	case AllyExtraLife:
		if s.state.Lives < maxLives {
			s.state.Lives++
		}
	case AllyComboMultiplier:
		// One multiplier step, expressed through the combo count so the
		// multiplier invariant keeps holding.
		s.state.Combo += comboPerStep
		s.refreshMultiplier()
	case AllyTimeSlow:
		// Non-stacking: reactivation while active is a no-op.
		if !s.state.TimeSlow {
			s.state.TimeSlow = true
			s.timeSlowUntil = s.clock + timeSlowWindow
		}
	case AllyShield:
		s.state.Shield = true
	}
}
