package game

import (
	"log/slog"
	"time"
)

// Scoreboard is the process-level bookkeeping the World reads and updates.
type Scoreboard struct {
	Score int `json:"score"`
	Level int `json:"level"`
	Lives int `json:"lives"`
}

// Options configures a World. Zero fields fall back to defaults.
type Options struct {
	Board  *Scoreboard
	Input  InputSource
	Sink   EventSink
	Rand   Rand
	Rules  *Rules
	Logger *slog.Logger
}

// World owns the entity registry and the player, and drives one tick at a
// time. It is not safe for concurrent use.
type World struct {
	player *Player
	actors []Actor

	board  *Scoreboard
	input  InputSource
	sink   EventSink
	rng    Rand
	rules  Rules
	logger *slog.Logger

	tick          int
	levelComplete bool
	events        []Event
	status        string
}

// NewWorld creates a World around player with an empty registry.
func NewWorld(player *Player, opts Options) *World {
	w := &World{
		player: player,
		board:  opts.Board,
		input:  opts.Input,
		sink:   opts.Sink,
		rng:    opts.Rand,
		logger: opts.Logger,
	}
	if w.board == nil {
		w.board = &Scoreboard{Level: 1, Lives: StartLives}
	}
	if w.input == nil {
		w.input = NoInput{}
	}
	if w.sink == nil {
		w.sink = NopSink{}
	}
	if w.rng == nil {
		w.rng = NewRand(time.Now().UnixNano())
	}
	if opts.Rules != nil {
		w.rules = *opts.Rules
	} else {
		w.rules = DefaultRules()
	}
	if w.logger == nil {
		w.logger = slog.Default()
	}
	w.status = FormatStatus(*w.board, w.player)
	return w
}

// Tick runs one simulation step: the player acts first, then every live
// actor in registry order. The outcome is checked after each act and the tick
// stops as soon as it is decided. Dead actors are purged only when the tick
// runs to completion.
func (w *World) Tick() Status {
	w.tick++
	w.events = nil

	w.player.Act(w)
	if s := w.checkOutcome(); s != StatusContinue {
		return s
	}

	// Actors spawned during the tick are appended and act in this same pass.
	for i := 0; i < len(w.actors); i++ {
		a := w.actors[i]
		if a.Base().Alive() {
			a.Act(w)
		}
		if s := w.checkOutcome(); s != StatusContinue {
			return s
		}
	}

	w.purge()
	w.status = FormatStatus(*w.board, w.player)
	return StatusContinue
}

// purge compacts the registry in place, keeping registry order.
func (w *World) purge() {
	live := w.actors[:0]
	for _, a := range w.actors {
		if a.Base().Alive() {
			live = append(live, a)
		}
	}
	for i := len(live); i < len(w.actors); i++ {
		w.actors[i] = nil
	}
	w.actors = live
}

// Add appends an actor to the registry.
func (w *World) Add(a Actor) {
	w.actors = append(w.actors, a)
}

// Player returns the player.
func (w *World) Player() *Player { return w.player }

// Actors returns the registry, excluding the player.
func (w *World) Actors() []Actor { return w.actors }

// Board returns the scoreboard.
func (w *World) Board() *Scoreboard { return w.board }

// Ticks returns the number of ticks run so far.
func (w *World) Ticks() int { return w.tick }

// LevelComplete reports whether the player has reached an exit with no citizens left.
func (w *World) LevelComplete() bool { return w.levelComplete }

// Events returns the events emitted during the most recent tick.
func (w *World) Events() []Event { return w.events }

// Status returns the status line published at the end of the last completed tick.
func (w *World) Status() string { return w.status }

// Rand returns the world's random source.
func (w *World) Rand() Rand { return w.rng }

// Rules returns the world's probabilities.
func (w *World) Rules() Rules { return w.rules }

// NextCommand pulls the pending player command, if any.
func (w *World) NextCommand() (Command, bool) {
	return w.input.NextCommand()
}

// Emit records an event for this tick and forwards it to the sink.
func (w *World) Emit(e Event) {
	w.events = append(w.events, e)
	w.sink.Emit(e)
}

// AddScore applies a score delta.
func (w *World) AddScore(delta int) {
	w.board.Score += delta
}
