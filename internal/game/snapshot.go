package game

// EntityView is the serializable view of one live entity.
type EntityView struct {
	ID   string    `json:"id"`
	Kind Kind      `json:"kind"`
	X    int       `json:"x"`
	Y    int       `json:"y"`
	Dir  Direction `json:"dir"`
}

// Inventory is the player's resource and infection state.
type Inventory struct {
	Vaccines  int  `json:"vaccines"`
	Flames    int  `json:"flames"`
	Landmines int  `json:"landmines"`
	Infected  bool `json:"infected"`
	Infection int  `json:"infection"`
}

// Snapshot is a copy of the world state, safe to hand to other goroutines.
type Snapshot struct {
	Tick      int          `json:"tick"`
	Status    string       `json:"status"`
	Board     Scoreboard   `json:"board"`
	Inventory Inventory    `json:"inventory"`
	Entities  []EntityView `json:"entities"`
	Events    []Event      `json:"events,omitempty"`
}

func viewOf(e *Entity) EntityView {
	return EntityView{ID: e.ID, Kind: e.Kind, X: e.X, Y: e.Y, Dir: e.Dir}
}

// Snapshot captures the live entities, the player last.
func (w *World) Snapshot() Snapshot {
	s := Snapshot{
		Tick:   w.tick,
		Status: w.status,
		Board:  *w.board,
		Inventory: Inventory{
			Vaccines:  w.player.Vaccines,
			Flames:    w.player.Flames,
			Landmines: w.player.Landmines,
			Infected:  w.player.infected,
			Infection: w.player.infection,
		},
		Entities: make([]EntityView, 0, len(w.actors)+1),
	}
	for _, a := range w.actors {
		if e := a.Base(); e.Alive() {
			s.Entities = append(s.Entities, viewOf(e))
		}
	}
	if w.player.Alive() {
		s.Entities = append(s.Entities, viewOf(w.player.Base()))
	}
	if len(w.events) > 0 {
		s.Events = append([]Event(nil), w.events...)
	}
	return s
}
