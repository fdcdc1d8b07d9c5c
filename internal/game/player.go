package game

// Player is the person controlled through the InputSource. The player never
// rests.
type Player struct {
	person
	Vaccines  int
	Flames    int
	Landmines int
}

func NewPlayer(x, y int) *Player {
	return &Player{person: newPerson(KindPlayer, x, y, humanCaps, PlayerStep)}
}

func (p *Player) Act(w *World) {
	if p.dead {
		return
	}
	if p.progressInfection() {
		p.succumb(w)
		return
	}

	cmd, ok := w.NextCommand()
	if !ok {
		return
	}
	p.Execute(w, cmd)
}

// Execute carries out a single command. Resource-gated commands do nothing
// when the inventory is empty.
func (p *Player) Execute(w *World, cmd Command) {
	switch cmd {
	case CommandMoveLeft:
		p.moveTo(w, p, Left)
	case CommandMoveRight:
		p.moveTo(w, p, Right)
	case CommandMoveUp:
		p.moveTo(w, p, Up)
	case CommandMoveDown:
		p.moveTo(w, p, Down)
	case CommandFire:
		p.fire(w)
	case CommandPlaceLandmine:
		p.placeLandmine(w)
	case CommandCure:
		p.cure()
	}
}

// fire spends one charge and lays flames up to FlameRange cells ahead,
// stopping at the first cell that blocks projectiles.
func (p *Player) fire(w *World) {
	if p.Flames <= 0 {
		return
	}
	p.Flames--
	w.Emit(EventPlayerFire)

	for i := 1; i <= FlameRange; i++ {
		fx, fy := p.Dir.Offset(p.X, p.Y, i*CellWidth)
		if w.ProjectileBlocked(fx, fy) {
			break
		}
		w.Add(NewFlame(fx, fy, p.Dir))
	}
}

func (p *Player) placeLandmine(w *World) {
	if p.Landmines <= 0 {
		return
	}
	p.Landmines--
	w.Add(NewLandmine(p.X, p.Y))
}

func (p *Player) cure() {
	if p.Vaccines <= 0 {
		return
	}
	p.Vaccines--
	p.Cure()
}

func (p *Player) Destroy(w *World) {
	if p.dead {
		return
	}
	p.setDead()
	w.Emit(EventPlayerDie)
}
