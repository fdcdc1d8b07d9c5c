package game

import "github.com/ugaemi/zombiedash/internal/level"

// Cell dimensions (world units). Level cells are scaled by these on load.
const (
	CellWidth  = 16
	CellHeight = 16
)

// World dimensions (world units)
const (
	WorldWidth  = level.Width * CellWidth
	WorldHeight = level.Height * CellHeight
)

// Proximity
const (
	OverlapRadius = 10 // units, anchor-to-anchor
	SenseRange    = 80 // units
)

// Movement (units per act)
const (
	PlayerStep  = 4
	CitizenStep = 2
	ZombieStep  = 1
)

// Timers (ticks)
const (
	ProjectileLifetime  = 2
	LandmineSafetyTicks = 30
	InfectionThreshold  = 500
)

// Flamethrower
const (
	FlameRange = 3 // cells ahead of the player
)

// Zombie movement plan
const (
	MinMovementPlan = 3
	MaxMovementPlan = 10
	VomitChance     = 3 // 1 in VomitChance
)

// Score deltas
const (
	ScoreGoodie            = 50
	ScoreCitizenSaved      = 500
	ScoreCitizenKilled     = -1000
	ScoreCitizenTurned     = -1000
	ScoreDumbZombieKilled  = 1000
	ScoreSmartZombieKilled = 2000
)

// Goodie credits
const (
	VaccinesPerGoodie  = 1
	FlamesPerGasCan    = 5
	LandminesPerGoodie = 2
)

// Default probabilities (percent)
const (
	DefaultSmartZombiePercent = 70
	DefaultVaccineDropPercent = 10
)

// Session defaults
const (
	StartLives = 3
)
