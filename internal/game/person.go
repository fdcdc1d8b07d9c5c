package game

// person is the state shared by the player, citizens and zombies.
type person struct {
	Entity
	infected  bool
	infection int
	resting   bool
	step      int
}

func newPerson(kind Kind, x, y int, caps Capabilities, step int) person {
	return person{
		Entity: newEntity(kind, x, y, Right, caps),
		step:   step,
	}
}

// Infected reports whether the person carries the infection.
func (p *person) Infected() bool { return p.infected }

// Infection returns the number of ticks the person has been infected.
func (p *person) Infection() int { return p.infection }

// Infect marks the person infected. Repeat exposure does not reset the counter.
func (p *person) Infect(*World) {
	if !p.Caps.Infectable {
		return
	}
	p.infected = true
}

// Cure clears the infection flag and counter together.
func (p *person) Cure() {
	p.infected, p.infection = false, 0
}

// rest alternates acting and resting ticks, starting with an acting tick.
func (p *person) rest() bool {
	skip := p.resting
	p.resting = !p.resting
	return skip
}

// moveTo attempts to step in dir. The facing direction changes either way.
func (p *person) moveTo(w *World, self Actor, dir Direction) bool {
	p.Dir = dir
	nx, ny := dir.Offset(p.X, p.Y, p.step)
	if w.Blocked(nx, ny, self) {
		return false
	}
	p.X, p.Y = nx, ny
	return true
}
