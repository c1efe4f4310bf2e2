package game

import (
	"time"

	"github.com/verte-zerg/wordfall/internal/geom"
)

// Kind identifies an enemy variant.
type Kind string

// Enemy kinds. Boss is never chosen by the regular spawner.
const (
	KindMinion  Kind = "minion"
	KindWarrior Kind = "warrior"
	KindMage    Kind = "mage"
	KindDemon   Kind = "demon"
	KindBoss    Kind = "boss"
)

var regularKinds = []Kind{KindMinion, KindWarrior, KindMage, KindDemon}

// Declared hit points per kind. Only the boss actually consumes them; for
// regular enemies the field is carried for display and record compatibility.
var kindHitPoints = map[Kind]int{
	KindMinion:  1,
	KindWarrior: 2,
	KindMage:    3,
	KindDemon:   4,
	KindBoss:    bossHitPoints,
}

var kindPoints = map[Kind]int{
	KindMinion:  10,
	KindWarrior: 20,
	KindMage:    30,
	KindDemon:   50,
	KindBoss:    100,
}

// AllyKind identifies the benefit a matched ally grants.
type AllyKind string

// Ally kinds.
const (
	AllyExtraLife       AllyKind = "extra_life"
	AllyComboMultiplier AllyKind = "combo_multiplier"
	AllyTimeSlow        AllyKind = "time_slow"
	AllyShield          AllyKind = "shield"
)

var allyKinds = []AllyKind{AllyExtraLife, AllyComboMultiplier, AllyTimeSlow, AllyShield}

// Encounter is a live typed challenge descending along a path.
type Encounter struct {
	ID        int64
	Text      string
	Kind      Kind
	HP        int
	MaxHP     int
	Points    int
	Matched   bool
	SpawnedAt time.Duration
	Path      geom.Path

	duration time.Duration
	traveled time.Duration
}

// Progress returns traversal progress in [0,1].
func (e *Encounter) Progress() float64 {
	if e.duration <= 0 {
		return 1
	}
	p := float64(e.traveled) / float64(e.duration)
	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}

// Position returns the playfield position for the current progress.
func (e *Encounter) Position() geom.Point {
	return e.Path.PointAt(e.Progress())
}

// IsBoss reports whether the encounter is the boss.
func (e *Encounter) IsBoss() bool {
	return e.Kind == KindBoss
}

// retreat sends a damaged boss back to the top of its path with a fresh
// challenge.
func (e *Encounter) retreat(text string) {
	e.Text = text
	e.traveled = 0
}

// Ally is a transient bonus-granting typed challenge.
type Ally struct {
	ID        int64
	Text      string
	Kind      AllyKind
	Matched   bool
	SpawnedAt time.Duration
	Path      geom.Path

	duration time.Duration
	traveled time.Duration
}

// Progress returns traversal progress in [0,1].
func (a *Ally) Progress() float64 {
	if a.duration <= 0 {
		return 1
	}
	p := float64(a.traveled) / float64(a.duration)
	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}

// Position returns the playfield position for the current progress.
func (a *Ally) Position() geom.Point {
	return a.Path.PointAt(a.Progress())
}
