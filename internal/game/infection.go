package game

// progressInfection advances an infected person's counter by one tick and
// reports whether it has reached InfectionThreshold.
func (p *person) progressInfection() bool {
	if !p.infected {
		return false
	}
	p.infection++
	return p.infection >= InfectionThreshold
}

// turn converts a citizen whose infection ran its course into a zombie at the
// citizen's last position.
func (c *Citizen) turn(w *World) {
	c.setDead()
	w.Emit(EventZombieBorn)
	w.AddScore(ScoreCitizenTurned)

	var z *Zombie
	if chance(w.Rand(), w.Rules().SmartZombiePercent) {
		z = NewSmartZombie(c.X, c.Y)
	} else {
		z = NewDumbZombie(c.X, c.Y)
	}
	w.Add(z)
	w.logger.Debug("citizen turned", "x", c.X, "y", c.Y, "zombie", z.Kind.String())
}

// succumb kills the player once the infection has run its course.
func (p *Player) succumb(w *World) {
	w.logger.Debug("player succumbed to infection", "infection", p.infection)
	p.Destroy(w)
}
