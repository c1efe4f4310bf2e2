package game

import (
	"time"

	"github.com/verte-zerg/wordfall/internal/content"
)

// Profile holds the difficulty parameters derived from a level.
type Profile struct {
	DescentDuration time.Duration
	SpawnInterval   time.Duration
	AllySpawnProb   float64
	Tier            content.Tier
}

const (
	// MaxLevel is the highest difficulty level; higher levels clamp to it.
	MaxLevel = 5

	baseDescentDuration = 3000 * time.Millisecond
	descentStep         = 500 * time.Millisecond
	minDescentDuration  = 1000 * time.Millisecond

	baseSpawnInterval = 2500 * time.Millisecond
	spawnStep         = 300 * time.Millisecond
	minSpawnInterval  = 1000 * time.Millisecond

	baseAllyProb = 0.15
	allyProbStep = 0.03
	maxAllyProb  = 0.30
)

// ProfileFor derives the difficulty profile for a level. Levels outside
// [1, MaxLevel] clamp to the nearest bound.
func ProfileFor(level int) Profile {
	if level < 1 {
		level = 1
	}
	if level > MaxLevel {
		level = MaxLevel
	}

	descent := baseDescentDuration - time.Duration(level)*descentStep
	if descent < minDescentDuration {
		descent = minDescentDuration
	}
	spawn := baseSpawnInterval - time.Duration(level)*spawnStep
	if spawn < minSpawnInterval {
		spawn = minSpawnInterval
	}
	allyProb := baseAllyProb + float64(level-1)*allyProbStep
	if allyProb > maxAllyProb {
		allyProb = maxAllyProb
	}

	return Profile{
		DescentDuration: descent,
		SpawnInterval:   spawn,
		AllySpawnProb:   allyProb,
		Tier:            tierForLevel(level),
	}
}

func tierForLevel(level int) content.Tier {
	switch level {
	case 1:
		return content.TierEasy
	case 2:
		return content.TierMedium
	case 3:
		return content.TierHard
	default:
		return content.TierExpert
	}
}
