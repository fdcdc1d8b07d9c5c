package game

// Projectile is a short-lived flame or vomit cell. It applies its effect on
// each of its first ProjectileLifetime acts and dies on the next one.
type Projectile struct {
	Entity
	ticksLeft int
}

func NewFlame(x, y int, dir Direction) *Projectile {
	return &Projectile{
		Entity:    newEntity(KindFlame, x, y, dir, projectileCaps),
		ticksLeft: ProjectileLifetime,
	}
}

func NewVomit(x, y int, dir Direction) *Projectile {
	return &Projectile{
		Entity:    newEntity(KindVomit, x, y, dir, projectileCaps),
		ticksLeft: ProjectileLifetime,
	}
}

// TicksLeft returns the number of acts before the projectile expires.
func (p *Projectile) TicksLeft() int { return p.ticksLeft }

func (p *Projectile) Act(w *World) {
	if p.dead {
		return
	}
	if p.ticksLeft <= 0 {
		p.setDead()
		return
	}
	p.ticksLeft--

	switch p.Kind {
	case KindFlame:
		w.DestroyOverlapping(p.X, p.Y, Flammable)
	case KindVomit:
		w.InfectOverlapping(p.X, p.Y)
	}
}
