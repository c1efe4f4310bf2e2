package game

import (
	"testing"

	"github.com/verte-zerg/wordfall/internal/content"
)

func TestProfileForMonotonicAndFloored(t *testing.T) {
	prev := ProfileFor(1)
	for level := 2; level <= MaxLevel; level++ {
		p := ProfileFor(level)
		if p.DescentDuration > prev.DescentDuration {
			t.Fatalf("descent duration increased from level %d to %d", level-1, level)
		}
		if p.SpawnInterval > prev.SpawnInterval {
			t.Fatalf("spawn interval increased from level %d to %d", level-1, level)
		}
		if p.DescentDuration < minDescentDuration {
			t.Fatalf("descent duration below floor at level %d: %v", level, p.DescentDuration)
		}
		if p.SpawnInterval < minSpawnInterval {
			t.Fatalf("spawn interval below floor at level %d: %v", level, p.SpawnInterval)
		}
		if p.AllySpawnProb < prev.AllySpawnProb {
			t.Fatalf("ally probability decreased at level %d", level)
		}
		if p.AllySpawnProb > maxAllyProb {
			t.Fatalf("ally probability above cap at level %d: %v", level, p.AllySpawnProb)
		}
		prev = p
	}
}

func TestProfileForClampsOutOfRangeLevels(t *testing.T) {
	if ProfileFor(0) != ProfileFor(1) {
		t.Fatalf("level 0 should clamp to level 1")
	}
	if ProfileFor(9) != ProfileFor(MaxLevel) {
		t.Fatalf("level 9 should clamp to level %d", MaxLevel)
	}
}

func TestProfileForTierSteps(t *testing.T) {
	want := map[int]content.Tier{
		1: content.TierEasy,
		2: content.TierMedium,
		3: content.TierHard,
		4: content.TierExpert,
		5: content.TierExpert,
	}
	for level, tier := range want {
		if got := ProfileFor(level).Tier; got != tier {
			t.Fatalf("level %d tier = %s, want %s", level, got, tier)
		}
	}
}
