package game

import "math"

// NoDistance is returned by distance queries that find no match.
const NoDistance = math.MaxFloat64

// Blocked reports whether moving self's anchor to (x, y) would put it inside
// the player's box (for anyone but the player) or the box of any other live
// movement-blocking actor.
func (w *World) Blocked(x, y int, self Actor) bool {
	if self != Actor(w.player) && w.player.Alive() &&
		BoxIntersect(x, y, w.player.X, w.player.Y) {
		return true
	}
	for _, a := range w.actors {
		if a == self {
			continue
		}
		e := a.Base()
		if e.Alive() && e.Has(BlocksMovement) && BoxIntersect(x, y, e.X, e.Y) {
			return true
		}
	}
	return false
}

// ProjectileBlocked reports whether a live projectile-blocking actor overlaps (x, y).
func (w *World) ProjectileBlocked(x, y int) bool {
	for _, a := range w.actors {
		e := a.Base()
		if e.Alive() && e.Has(BlocksProjectiles) && Overlap(x, y, e.X, e.Y) {
			return true
		}
	}
	return false
}

// forEachOverlapping calls fn for the player and every registry actor that is
// live, holds capability c and overlaps (x, y). Actors added by fn are not
// visited.
func (w *World) forEachOverlapping(x, y int, c Capability, fn func(a Actor) bool) {
	if w.player.Alive() && w.player.Has(c) && Overlap(x, y, w.player.X, w.player.Y) {
		if !fn(w.player) {
			return
		}
	}
	n := len(w.actors)
	for i := 0; i < n; i++ {
		a := w.actors[i]
		e := a.Base()
		if e.Alive() && e.Has(c) && Overlap(x, y, e.X, e.Y) {
			if !fn(a) {
				return
			}
		}
	}
}

// DestroyOverlapping destroys every live actor with capability c overlapping (x, y).
func (w *World) DestroyOverlapping(x, y int, c Capability) {
	w.forEachOverlapping(x, y, c, func(a Actor) bool {
		a.Destroy(w)
		return true
	})
}

// InfectOverlapping infects every live infectable actor overlapping (x, y).
func (w *World) InfectOverlapping(x, y int) {
	w.forEachOverlapping(x, y, Infectable, func(a Actor) bool {
		a.Infect(w)
		return true
	})
}

// AnyOverlapping reports whether any live actor with capability c overlaps (x, y).
func (w *World) AnyOverlapping(x, y int, c Capability) bool {
	found := false
	w.forEachOverlapping(x, y, c, func(Actor) bool {
		found = true
		return false
	})
	return found
}

// OverlapsPlayer reports whether the live player overlaps (x, y).
func (w *World) OverlapsPlayer(x, y int) bool {
	return w.player.Alive() && Overlap(x, y, w.player.X, w.player.Y)
}

// DistanceToPlayer returns the distance from (x, y) to the player.
func (w *World) DistanceToPlayer(x, y int) float64 {
	return Distance(x, y, w.player.X, w.player.Y)
}

// isZombie matches live persons that pits destroy but vomit cannot infect.
func isZombie(e *Entity) bool {
	return e.Alive() && e.Has(PitDestructible) && !e.Has(Infectable)
}

// DistanceToNearestZombie returns the distance from (x, y) to the nearest
// live zombie, or NoDistance when there is none.
func (w *World) DistanceToNearestZombie(x, y int) float64 {
	best := NoDistance
	for _, a := range w.actors {
		e := a.Base()
		if !isZombie(e) {
			continue
		}
		if d := Distance(x, y, e.X, e.Y); d < best {
			best = d
		}
	}
	return best
}

// SmartDirection picks the heading for a smart zombie at (x, y): toward the
// nearest infectable person (the player unless someone is strictly closer)
// when within SenseRange, otherwise at random.
func (w *World) SmartDirection(x, y int) Direction {
	target := w.player.Base()
	best := w.DistanceToPlayer(x, y)
	for _, a := range w.actors {
		e := a.Base()
		if !e.Alive() || !e.Has(Infectable) {
			continue
		}
		if d := Distance(x, y, e.X, e.Y); d < best {
			best, target = d, e
		}
	}

	if best > SenseRange {
		return w.RandomDirection()
	}

	vertical := Up
	if target.Y < y {
		vertical = Down
	}
	horizontal := Right
	if target.X < x {
		horizontal = Left
	}

	switch {
	case target.X == x:
		return vertical
	case target.Y == y:
		return horizontal
	case w.rng.Intn(2) == 0:
		return horizontal
	default:
		return vertical
	}
}

// RandomDirection returns a uniformly random cardinal direction.
func (w *World) RandomDirection() Direction {
	return randomDirection(w.rng)
}
