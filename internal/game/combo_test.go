package game

import "testing"

func TestMultiplierSequence(t *testing.T) {
	want := map[int]int{1: 1, 2: 1, 3: 2, 5: 2, 6: 3, 9: 4, 12: 5, 15: 5}
	s := newTestSession(t)
	for n := 1; n <= 15; n++ {
		s.registerHit()
		expected, ok := want[n]
		if !ok {
			continue
		}
		if got := s.State().Multiplier; got != expected {
			t.Fatalf("multiplier after %d hits = %d, want %d", n, got, expected)
		}
	}
	if got := s.State().MaxCombo; got != 15 {
		t.Fatalf("max combo = %d, want 15", got)
	}
}

func TestResetComboKeepsMaxCombo(t *testing.T) {
	s := newTestSession(t)
	for i := 0; i < 7; i++ {
		s.registerHit()
	}
	s.resetCombo()
	state := s.State()
	if state.Combo != 0 || state.Multiplier != 1 {
		t.Fatalf("reset left combo=%d mult=%d", state.Combo, state.Multiplier)
	}
	if state.MaxCombo != 7 {
		t.Fatalf("max combo = %d, want 7", state.MaxCombo)
	}
}
