package content

// Built-in word data. Tier pools can be overridden per user with plain text
// files; templates and slot banks are fixed.

var defaultTiers = map[Tier][]string{
	TierEasy: {
		"type", "code", "game", "fun", "play", "word",
		"run", "jump", "fast", "slow", "key", "win",
		"cat", "dog", "sun", "moon", "star", "tree",
	},
	TierMedium: {
		"wizard", "typing", "speed", "combat", "shield",
		"castle", "dragon", "battle", "potion", "scroll",
		"danger", "attack", "defend", "points", "streak",
	},
	TierHard: {
		"keyboard", "practice", "developer", "challenge",
		"adventure", "sorcerer", "alliance", "fortress",
		"guardian", "nightmare", "sacrifice", "treasure",
	},
	TierExpert: {
		"programming", "application", "experience", "difficulty",
		"interactive", "concentration", "determination", "catastrophe",
		"overwhelming", "extraordinary", "annihilation", "resurrection",
	},
}

var defaultTemplates = map[Tier][]string{
	TierEasy: {
		"the {noun} will {verb}",
		"a {adjective} {noun} appears",
	},
	TierMedium: {
		"the {adjective} {noun} begins to {verb}",
		"every {noun} must {verb} at {place}",
	},
	TierHard: {
		"the {adjective} {noun} will {verb} beyond the {place}",
		"no {noun} can {verb} while the {adjective} {noun} watches",
	},
	TierExpert: {
		"when the {adjective} {noun} starts to {verb} the {place} trembles",
		"only a {adjective} {noun} dares to {verb} across the {adjective} {place}",
	},
}

var defaultBanks = map[string][]string{
	"noun": {
		"knight", "wizard", "dragon", "shadow", "warrior",
		"demon", "phoenix", "titan", "serpent", "golem",
	},
	"verb": {
		"strike", "vanish", "awaken", "crumble", "ascend",
		"retreat", "conquer", "shatter", "wander", "burn",
	},
	"adjective": {
		"ancient", "furious", "silent", "crimson", "fearless",
		"cursed", "radiant", "savage", "frozen", "forgotten",
	},
	"place": {
		"gate", "tower", "arena", "valley", "ruins",
		"stronghold", "wasteland", "summit",
	},
}
