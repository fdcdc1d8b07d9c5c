package game

// Landmine arms after LandmineSafetyTicks acts and then detonates on the
// first tick anything pit-destructible stands on it.
type Landmine struct {
	Entity
	safetyTicks int
	armed       bool
}

func NewLandmine(x, y int) *Landmine {
	return &Landmine{
		Entity:      newEntity(KindLandmine, x, y, Right, pickupCaps),
		safetyTicks: LandmineSafetyTicks,
	}
}

// Armed reports whether the safety countdown has elapsed.
func (l *Landmine) Armed() bool { return l.armed }

// SafetyTicks returns the remaining safety countdown.
func (l *Landmine) SafetyTicks() int { return l.safetyTicks }

func (l *Landmine) Act(w *World) {
	if l.dead {
		return
	}
	if !l.armed {
		l.safetyTicks--
		if l.safetyTicks == 0 {
			l.armed = true
		}
		return
	}
	if w.AnyOverlapping(l.X, l.Y, PitDestructible) {
		l.Destroy(w)
	}
}

// Destroy detonates the landmine: flames on its cell and every unobstructed
// neighbor, then a pit where it stood. Fire reaching an unarmed landmine
// detonates it too.
func (l *Landmine) Destroy(w *World) {
	if l.dead {
		return
	}
	l.setDead()
	w.Emit(EventLandmineExplode)
	w.Detonate(l.X, l.Y)
}
