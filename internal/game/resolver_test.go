package game

import (
	"testing"
	"time"
)

func TestSubmitKillsRegularEnemyInOneSubmission(t *testing.T) {
	s := newTestSession(t)
	e := s.spawnRegular()
	if e.HP < 1 {
		t.Fatalf("expected declared hit points, got %d", e.HP)
	}
	s.Advance(100 * time.Millisecond)

	res := submitPhrase(s, "  "+toUpperFirst(e.Text)+"  ")
	if res.Outcome != OutcomeEnemyDefeated {
		t.Fatalf("outcome = %v, want enemy defeated", res.Outcome)
	}
	if len(s.Encounters()) != 0 {
		t.Fatalf("matched enemy should leave the live set")
	}
	state := s.State()
	if state.KillsSinceBoss != 1 {
		t.Fatalf("kills since boss = %d, want 1", state.KillsSinceBoss)
	}
	if got := s.Stats().EnemiesDefeated; got != 1 {
		t.Fatalf("enemies defeated = %d, want 1", got)
	}
	if res.Awarded != e.Points+10*len(e.Text) {
		t.Fatalf("awarded = %d, want %d", res.Awarded, e.Points+10*len(e.Text))
	}
}

func TestSubmitMatchedEnemyNeverExpires(t *testing.T) {
	s := newTestSession(t)
	e := s.spawnRegular()
	s.Advance(100 * time.Millisecond)
	submitPhrase(s, e.Text)
	livesBefore := s.State().Lives
	s.Advance(s.Profile().DescentDuration * 2)
	// Only the auto-spawned encounters may cost lives here; the matched one
	// must not be double-counted. With a 100ms head start plus two descent
	// durations the first auto spawn expires exactly once.
	if s.State().Lives > livesBefore {
		t.Fatalf("lives should never increase from expiry handling")
	}
}

func TestSubmitMissCountsErrorAndResetsCombo(t *testing.T) {
	s := newTestSession(t)
	e := s.spawnRegular()
	s.Advance(100 * time.Millisecond)
	submitPhrase(s, e.Text)
	if s.State().Combo != 1 {
		t.Fatalf("combo = %d, want 1", s.State().Combo)
	}

	res := submitPhrase(s, "zzzzz")
	if res.Outcome != OutcomeMiss {
		t.Fatalf("outcome = %v, want miss", res.Outcome)
	}
	state := s.State()
	if state.Combo != 0 || state.Multiplier != 1 {
		t.Fatalf("miss should reset combo, got combo=%d mult=%d", state.Combo, state.Multiplier)
	}
	if state.ErrorChars != 5 {
		t.Fatalf("error chars = %d, want 5", state.ErrorChars)
	}
}

func TestSubmitEmptyPhraseIgnored(t *testing.T) {
	s := newTestSession(t)
	s.TypeRune(' ')
	s.TypeRune(' ')
	res := s.Submit()
	if res.Outcome != OutcomeIgnored {
		t.Fatalf("outcome = %v, want ignored", res.Outcome)
	}
	if s.State().TotalChars != 0 {
		t.Fatalf("ignored submission must not touch metrics")
	}
}

func TestSubmitAlliesTakePriorityOverEncounters(t *testing.T) {
	s := newTestSession(t)
	e := s.spawnRegular()
	ally := s.spawnAlly(AllyShield)
	if ally.Text != e.Text {
		t.Fatalf("test setup expects identical challenge texts, got %q vs %q", ally.Text, e.Text)
	}
	res := submitPhrase(s, e.Text)
	if res.Outcome != OutcomeAlly {
		t.Fatalf("outcome = %v, want ally", res.Outcome)
	}
	if !s.State().Shield {
		t.Fatalf("ally benefit should apply")
	}
	if len(s.Encounters()) != 1 {
		t.Fatalf("encounter must survive when the ally wins the phrase")
	}
	if got := s.Stats().AlliesHelped; got != 1 {
		t.Fatalf("allies helped = %d, want 1", got)
	}
}

func TestSubmitResolvesFirstInInsertionOrder(t *testing.T) {
	s := newTestSession(t)
	first := s.spawnRegular()
	second := s.spawnRegular()
	if first.Text != second.Text {
		t.Fatalf("test setup expects identical words, got %q vs %q", first.Text, second.Text)
	}
	submitPhrase(s, first.Text)
	live := s.Encounters()
	if len(live) != 1 || live[0].ID != second.ID {
		t.Fatalf("first-inserted encounter should resolve, leaving %d", second.ID)
	}
}

func TestBackspaceEditsPending(t *testing.T) {
	s := newTestSession(t)
	for _, r := range "worda" {
		s.TypeRune(r)
	}
	s.Backspace()
	if got := s.Pending(); got != "word" {
		t.Fatalf("pending = %q, want %q", got, "word")
	}
	s.Backspace()
	s.Backspace()
	s.Backspace()
	s.Backspace()
	s.Backspace()
	if got := s.Pending(); got != "" {
		t.Fatalf("pending = %q, want empty", got)
	}
}

func TestComboAllyRaisesMultiplierOneStep(t *testing.T) {
	s := newTestSession(t)
	s.applyAllyBenefit(AllyComboMultiplier)
	state := s.State()
	if state.Multiplier != 2 {
		t.Fatalf("multiplier = %d, want 2 after combo ally", state.Multiplier)
	}
}

func toUpperFirst(s string) string {
	if s == "" {
		return s
	}
	b := []byte(s)
	if b[0] >= 'a' && b[0] <= 'z' {
		b[0] -= 'a' - 'A'
	}
	return string(b)
}
