package game

// Wall blocks movement and projectiles.
type Wall struct {
	Entity
}

func NewWall(x, y int) *Wall {
	return &Wall{Entity: newEntity(KindWall, x, y, Right, wallCaps)}
}

func (*Wall) Act(*World) {}

// Exit lets citizens escape and finishes the level for the player once no
// citizens remain.
type Exit struct {
	Entity
}

func NewExit(x, y int) *Exit {
	return &Exit{Entity: newEntity(KindExit, x, y, Right, exitCaps)}
}

func (e *Exit) Act(w *World) {
	if e.dead {
		return
	}
	w.ExitCitizens(e.X, e.Y)
	w.ExitPlayer(e.X, e.Y)
}

// Pit destroys anything pit-destructible standing on it, every tick.
type Pit struct {
	Entity
}

func NewPit(x, y int) *Pit {
	return &Pit{Entity: newEntity(KindPit, x, y, Right, terrainCaps)}
}

func (p *Pit) Act(w *World) {
	if p.dead {
		return
	}
	w.DestroyOverlapping(p.X, p.Y, PitDestructible)
}
