package game

// Spawning of regular enemies, bosses, and allies. All selection goes
// through the session's seeded random source.

import "github.com/verte-zerg/wordfall/internal/geom"

func (s *Session) spawnRegular() *Encounter {
	path, ok := s.pickPath()
	if !ok {
		return nil
	}
	kind := regularKinds[s.rng.Intn(len(regularKinds))]
	pool := s.content.WordsForTier(s.profile.Tier)
	word := pool[s.rng.Intn(len(pool))]

	s.nextID++
	e := &Encounter{
		ID:        s.nextID,
		Text:      word,
		Kind:      kind,
		HP:        kindHitPoints[kind],
		MaxHP:     kindHitPoints[kind],
		Points:    kindPoints[kind],
		SpawnedAt: s.clock,
		Path:      path,
		duration:  s.profile.DescentDuration,
	}
	s.encounters = append(s.encounters, e)
	return e
}

func (s *Session) spawnBoss() *Encounter {
	path, ok := s.pickPath()
	if !ok {
		return nil
	}
	sentence := s.content.GenerateSentence(s.profile.Tier, s.rng)

	s.nextID++
	e := &Encounter{
		ID:        s.nextID,
		Text:      sentence,
		Kind:      KindBoss,
		HP:        bossHitPoints,
		MaxHP:     bossHitPoints,
		Points:    kindPoints[KindBoss],
		SpawnedAt: s.clock,
		Path:      path,
		duration:  s.profile.DescentDuration,
	}
	s.encounters = append(s.encounters, e)
	s.state.BossActive = true
	return e
}

// trySpawnAlly runs the per-tick random gate: cooldown elapsed, probability
// draw passed, no boss active, no other ally live.
func (s *Session) trySpawnAlly() *Ally {
	if s.state.BossActive || len(s.allies) > 0 {
		return nil
	}
	if s.clock < s.allyReadyAt {
		return nil
	}
	if s.rng.Float64() >= s.profile.AllySpawnProb {
		return nil
	}
	return s.spawnAlly(allyKinds[s.rng.Intn(len(allyKinds))])
}

// spawnAlly creates an ally of the given kind unconditionally; the forced
// healer after a life loss comes through here, bypassing the random gate.
func (s *Session) spawnAlly(kind AllyKind) *Ally {
	path, ok := s.pickPath()
	if !ok {
		return nil
	}
	pool := s.content.WordsForTier(s.profile.Tier)
	word := pool[s.rng.Intn(len(pool))]

	s.nextID++
	a := &Ally{
		ID:        s.nextID,
		Text:      word,
		Kind:      kind,
		SpawnedAt: s.clock,
		Path:      path,
		duration:  s.profile.DescentDuration,
	}
	s.allies = append(s.allies, a)
	s.allyReadyAt = s.clock + allyCooldown
	if kind == AllyExtraLife {
		s.healerSpawned = true
	}
	return a
}

func (s *Session) pickPath() (geom.Path, bool) {
	paths := s.paths.PathsForLevel(s.state.Level)
	if len(paths) == 0 {
		logErrf("no paths defined for level %d; skipping spawn\n", s.state.Level)
		return geom.Path{}, false
	}
	return paths[s.rng.Intn(len(paths))], true
}
