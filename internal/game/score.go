package game

// awardPoints applies the combo multiplier, accumulates score, and triggers
// level-up when the score crosses the next threshold.
func (s *Session) awardPoints(base int) (awarded int, leveledUp bool) {
	awarded = base * s.state.Multiplier
	s.state.Score += awarded

	newLevel := s.state.Score/scorePerLevel + 1
	if newLevel > MaxLevel {
		newLevel = MaxLevel
	}
	if newLevel > s.state.Level {
		s.levelUp(newLevel)
		leveledUp = true
	}
	return awarded, leveledUp
}

// levelUp refreshes the difficulty timers and resets per-level one-shot
// state.
func (s *Session) levelUp(level int) {
	s.state.Level = level
	s.profile = ProfileFor(level)
	s.state.KillsSinceBoss = 0
	s.healerSpawned = false
	s.sinceSpawn = 0
}
