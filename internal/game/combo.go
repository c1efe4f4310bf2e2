package game

// Streak bookkeeping. The multiplier is always derived from the combo count.

const (
	maxMultiplier = 5
	comboPerStep  = 3
)

func (s *Session) registerHit() {
	s.state.Combo++
	s.refreshMultiplier()
}

func (s *Session) resetCombo() {
	s.state.Combo = 0
	s.state.Multiplier = 1
}

func (s *Session) refreshMultiplier() {
	if s.state.Combo > s.state.MaxCombo {
		s.state.MaxCombo = s.state.Combo
	}
	m := s.state.Combo/comboPerStep + 1
	if m > maxMultiplier {
		m = maxMultiplier
	}
	s.state.Multiplier = m
}
