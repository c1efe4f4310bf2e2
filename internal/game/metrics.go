package game

import (
	"math"
	"time"
)

// Typing-performance counters and derived metrics.

func (s *Session) recordSuccess(chars, words int) {
	s.state.TotalChars += chars
	s.state.CorrectChars += chars
	s.state.WordsTyped += words
}

func (s *Session) recordError(chars int) {
	s.state.TotalChars += chars
	s.state.ErrorChars += chars
}

// WPM computes net words per minute: correct-only characters over five,
// per elapsed minute. It returns 0 before one second has elapsed.
func (s *Session) WPM() int {
	if s.clock < time.Second {
		return 0
	}
	minutes := float64(s.clock.Milliseconds()) / 60000.0
	net := float64(s.state.TotalChars-s.state.ErrorChars) / 5.0 / minutes
	wpm := int(math.Round(net))
	if wpm < 0 {
		return 0
	}
	return wpm
}

// Accuracy returns the percentage of correctly typed characters, 0 when
// nothing has been typed yet.
func (s *Session) Accuracy() int {
	if s.state.TotalChars == 0 {
		return 0
	}
	return int(math.Round(float64(s.state.CorrectChars) / float64(s.state.TotalChars) * 100))
}
