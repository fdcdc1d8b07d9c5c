package game

// Zombie wanders in straight runs and vomits on infectable people directly
// ahead. Smart zombies steer their runs toward the nearest infectable person.
type Zombie struct {
	person
	smart bool
	plan  int
}

func NewDumbZombie(x, y int) *Zombie {
	return &Zombie{person: newPerson(KindDumbZombie, x, y, zombieCaps, ZombieStep)}
}

func NewSmartZombie(x, y int) *Zombie {
	return &Zombie{
		person: newPerson(KindSmartZombie, x, y, zombieCaps, ZombieStep),
		smart:  true,
	}
}

// Smart reports whether the zombie targets people.
func (z *Zombie) Smart() bool { return z.smart }

// Plan returns the remaining steps in the current direction.
func (z *Zombie) Plan() int { return z.plan }

func (z *Zombie) Act(w *World) {
	if z.dead {
		return
	}
	if z.rest() {
		return
	}
	if z.vomit(w) {
		return
	}

	if z.plan == 0 {
		z.plan = MinMovementPlan + w.Rand().Intn(MaxMovementPlan-MinMovementPlan+1)
		if z.smart {
			z.Dir = w.SmartDirection(z.X, z.Y)
		} else {
			z.Dir = w.RandomDirection()
		}
	}

	if z.moveTo(w, z, z.Dir) {
		z.plan--
	} else {
		z.plan = 0
	}
}

// vomit targets the cell one width ahead. It fires with probability
// 1/VomitChance when something infectable stands there.
func (z *Zombie) vomit(w *World) bool {
	vx, vy := z.Dir.Offset(z.X, z.Y, CellWidth)
	if !w.AnyOverlapping(vx, vy, Infectable) {
		return false
	}
	if w.Rand().Intn(VomitChance) != 0 {
		return false
	}
	w.Add(NewVomit(vx, vy, z.Dir))
	w.Emit(EventZombieVomit)
	return true
}

func (z *Zombie) Destroy(w *World) {
	if z.dead {
		return
	}
	z.setDead()
	w.Emit(EventZombieDie)
	if z.smart {
		w.AddScore(ScoreSmartZombieKilled)
	} else {
		w.AddScore(ScoreDumbZombieKilled)
	}
}
