package game

// Goodie is a pickup that credits the player's inventory on contact.
type Goodie struct {
	Entity
}

func NewVaccineGoodie(x, y int) *Goodie {
	return &Goodie{Entity: newEntity(KindVaccineGoodie, x, y, Right, pickupCaps)}
}

func NewGasCanGoodie(x, y int) *Goodie {
	return &Goodie{Entity: newEntity(KindGasCanGoodie, x, y, Right, pickupCaps)}
}

func NewLandmineGoodie(x, y int) *Goodie {
	return &Goodie{Entity: newEntity(KindLandmineGoodie, x, y, Right, pickupCaps)}
}

func (g *Goodie) Act(w *World) {
	if g.dead {
		return
	}
	if !w.OverlapsPlayer(g.X, g.Y) {
		return
	}

	w.AddScore(ScoreGoodie)
	g.setDead()
	w.Emit(EventGoodiePickup)

	p := w.Player()
	switch g.Kind {
	case KindVaccineGoodie:
		p.Vaccines += VaccinesPerGoodie
	case KindGasCanGoodie:
		p.Flames += FlamesPerGasCan
	case KindLandmineGoodie:
		p.Landmines += LandminesPerGoodie
	}
}
