package game

import "encoding/json"

// Event is a fire-and-forget sound/event trigger.
type Event int

const (
	EventCitizenSaved Event = iota
	EventGoodiePickup
	EventLandmineExplode
	EventPlayerFire
	EventPlayerDie
	EventZombieVomit
	EventLevelFinished
	EventCitizenInfected
	EventZombieBorn
	EventCitizenDie
	EventZombieDie
)

// AllEvents lists every event in declaration order.
var AllEvents = []Event{
	EventCitizenSaved,
	EventGoodiePickup,
	EventLandmineExplode,
	EventPlayerFire,
	EventPlayerDie,
	EventZombieVomit,
	EventLevelFinished,
	EventCitizenInfected,
	EventZombieBorn,
	EventCitizenDie,
	EventZombieDie,
}

func (e Event) String() string {
	switch e {
	case EventCitizenSaved:
		return "citizen_saved"
	case EventGoodiePickup:
		return "goodie_pickup"
	case EventLandmineExplode:
		return "landmine_explode"
	case EventPlayerFire:
		return "player_fire"
	case EventPlayerDie:
		return "player_die"
	case EventZombieVomit:
		return "zombie_vomit"
	case EventLevelFinished:
		return "level_finished"
	case EventCitizenInfected:
		return "citizen_infected"
	case EventZombieBorn:
		return "zombie_born"
	case EventCitizenDie:
		return "citizen_die"
	case EventZombieDie:
		return "zombie_die"
	default:
		return "unknown"
	}
}

// MarshalJSON serializes Event as a string.
func (e Event) MarshalJSON() ([]byte, error) {
	return json.Marshal(e.String())
}

// EventSink receives events as they happen. Implementations must not block.
type EventSink interface {
	Emit(e Event)
}

// NopSink discards events.
type NopSink struct{}

func (NopSink) Emit(Event) {}

// EventSinkFunc adapts a function to EventSink.
type EventSinkFunc func(e Event)

func (f EventSinkFunc) Emit(e Event) { f(e) }
