package game

// Citizen follows the player when the player is the closer of the two and
// flees nearby zombies otherwise.
type Citizen struct {
	person
}

func NewCitizen(x, y int) *Citizen {
	return &Citizen{person: newPerson(KindCitizen, x, y, humanCaps, CitizenStep)}
}

func (c *Citizen) Act(w *World) {
	if c.dead {
		return
	}
	if c.progressInfection() {
		c.turn(w)
		return
	}
	if c.rest() {
		return
	}

	dp := w.DistanceToPlayer(c.X, c.Y)
	dz := w.DistanceToNearestZombie(c.X, c.Y)

	if dp < dz && dp <= SenseRange {
		if c.follow(w) {
			return
		}
	}
	if dz <= SenseRange {
		c.flee(w, dz)
	}
}

// follow steps toward the player. An aligned citizen tries the single axis
// that closes the gap; otherwise both axes are tried in random order.
func (c *Citizen) follow(w *World) bool {
	px, py := w.Player().Position()
	horizontal := Right
	if px < c.X {
		horizontal = Left
	}
	vertical := Up
	if py < c.Y {
		vertical = Down
	}

	switch {
	case c.X == px:
		return c.moveTo(w, c, vertical)
	case c.Y == py:
		return c.moveTo(w, c, horizontal)
	}

	first, second := horizontal, vertical
	if w.Rand().Intn(2) == 0 {
		first, second = vertical, horizontal
	}
	if c.moveTo(w, c, first) {
		return true
	}
	return c.moveTo(w, c, second)
}

// fleeOrder is the tie-break precedence between equally good escape routes.
var fleeOrder = [4]Direction{Up, Down, Left, Right}

// flee moves in the direction that puts the most distance between the citizen
// and the nearest zombie, staying put unless some step strictly improves on dz.
func (c *Citizen) flee(w *World, dz float64) {
	best := dz
	bestDir, found := Right, false
	for _, d := range fleeOrder {
		nx, ny := d.Offset(c.X, c.Y, c.step)
		if w.Blocked(nx, ny, c) {
			continue
		}
		if dist := w.DistanceToNearestZombie(nx, ny); dist > best {
			best, bestDir, found = dist, d, true
		}
	}
	if found {
		c.moveTo(w, c, bestDir)
	}
}

func (c *Citizen) Infect(w *World) {
	if c.dead {
		return
	}
	if !c.infected {
		w.Emit(EventCitizenInfected)
	}
	c.person.Infect(w)
}

func (c *Citizen) Destroy(w *World) {
	if c.dead {
		return
	}
	c.setDead()
	w.Emit(EventCitizenDie)
	w.AddScore(ScoreCitizenKilled)
	if chance(w.Rand(), w.Rules().VaccineDropPercent) {
		w.Add(NewVaccineGoodie(c.X, c.Y))
	}
}
