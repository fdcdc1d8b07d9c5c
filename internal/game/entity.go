package game

import (
	"encoding/json"

	"github.com/google/uuid"
)

// Capability selects one of the fixed entity capability flags.
type Capability int

const (
	Flammable Capability = iota
	Infectable
	BlocksMovement
	BlocksProjectiles
	PitDestructible
)

func (c Capability) String() string {
	switch c {
	case Flammable:
		return "flammable"
	case Infectable:
		return "infectable"
	case BlocksMovement:
		return "blocks_movement"
	case BlocksProjectiles:
		return "blocks_projectiles"
	case PitDestructible:
		return "pit_destructible"
	default:
		return "unknown"
	}
}

// Capabilities is the capability record attached to every entity at construction.
type Capabilities struct {
	Flammable         bool
	Infectable        bool
	BlocksMovement    bool
	BlocksProjectiles bool
	PitDestructible   bool
}

// Has reports whether the record holds capability c.
func (c Capabilities) Has(capability Capability) bool {
	switch capability {
	case Flammable:
		return c.Flammable
	case Infectable:
		return c.Infectable
	case BlocksMovement:
		return c.BlocksMovement
	case BlocksProjectiles:
		return c.BlocksProjectiles
	case PitDestructible:
		return c.PitDestructible
	default:
		return false
	}
}

var (
	terrainCaps    = Capabilities{}
	wallCaps       = Capabilities{BlocksMovement: true, BlocksProjectiles: true}
	exitCaps       = Capabilities{BlocksProjectiles: true}
	projectileCaps = Capabilities{}
	pickupCaps     = Capabilities{Flammable: true}
	humanCaps      = Capabilities{Flammable: true, Infectable: true, BlocksMovement: true, PitDestructible: true}
	zombieCaps     = Capabilities{Flammable: true, BlocksMovement: true, PitDestructible: true}
)

type Kind int

const (
	KindWall Kind = iota
	KindExit
	KindPit
	KindFlame
	KindVomit
	KindVaccineGoodie
	KindGasCanGoodie
	KindLandmineGoodie
	KindLandmine
	KindPlayer
	KindCitizen
	KindDumbZombie
	KindSmartZombie
)

func (k Kind) String() string {
	switch k {
	case KindWall:
		return "wall"
	case KindExit:
		return "exit"
	case KindPit:
		return "pit"
	case KindFlame:
		return "flame"
	case KindVomit:
		return "vomit"
	case KindVaccineGoodie:
		return "vaccine_goodie"
	case KindGasCanGoodie:
		return "gas_can_goodie"
	case KindLandmineGoodie:
		return "landmine_goodie"
	case KindLandmine:
		return "landmine"
	case KindPlayer:
		return "player"
	case KindCitizen:
		return "citizen"
	case KindDumbZombie:
		return "dumb_zombie"
	case KindSmartZombie:
		return "smart_zombie"
	default:
		return "unknown"
	}
}

// MarshalJSON serializes Kind as a string.
func (k Kind) MarshalJSON() ([]byte, error) {
	return json.Marshal(k.String())
}

// Actor is any simulated object the World drives.
type Actor interface {
	Base() *Entity
	// Act performs the actor's per-tick behavior.
	Act(w *World)
	// Destroy applies destruction by fire or pit.
	Destroy(w *World)
	// Infect applies vomit.
	Infect(w *World)
}

// Entity holds the state shared by every actor.
type Entity struct {
	ID   string
	Kind Kind
	X, Y int
	Dir  Direction
	Caps Capabilities

	dead bool
}

func newEntity(kind Kind, x, y int, dir Direction, caps Capabilities) Entity {
	return Entity{
		ID:   uuid.New().String(),
		Kind: kind,
		X:    x,
		Y:    y,
		Dir:  dir,
		Caps: caps,
	}
}

func (e *Entity) Base() *Entity { return e }

// Alive reports whether the entity has not been destroyed. Once false it stays false.
func (e *Entity) Alive() bool { return !e.dead }

// Has reports whether the entity holds capability c.
func (e *Entity) Has(c Capability) bool { return e.Caps.Has(c) }

// Position returns the entity's anchor point.
func (e *Entity) Position() (int, int) { return e.X, e.Y }

func (e *Entity) setDead() { e.dead = true }

// Destroy marks the entity dead. Actors with side effects override it.
func (e *Entity) Destroy(*World) { e.setDead() }

// Infect does nothing for actors that cannot be infected.
func (e *Entity) Infect(*World) {}
