package game

import "math/rand"

// Rand is the random source behavior code draws from.
type Rand interface {
	Intn(n int) int
}

// NewRand returns a seeded Rand.
func NewRand(seed int64) Rand {
	return rand.New(rand.NewSource(seed))
}

// Rules holds the tunable probabilities of the simulation.
type Rules struct {
	// SmartZombiePercent is the chance that a citizen turned by infection
	// becomes a smart zombie rather than a dumb one.
	SmartZombiePercent int
	// VaccineDropPercent is the chance that a citizen killed by fire or pit
	// leaves a vaccine behind.
	VaccineDropPercent int
}

// DefaultRules returns the standard probabilities.
func DefaultRules() Rules {
	return Rules{
		SmartZombiePercent: DefaultSmartZombiePercent,
		VaccineDropPercent: DefaultVaccineDropPercent,
	}
}

// chance reports true with probability percent/100.
func chance(r Rand, percent int) bool {
	return r.Intn(100) < percent
}

func randomDirection(r Rand) Direction {
	switch r.Intn(4) {
	case 0:
		return Right
	case 1:
		return Left
	case 2:
		return Up
	default:
		return Down
	}
}
