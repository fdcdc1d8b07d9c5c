package game

import (
	"fmt"
	"strings"
)

// checkOutcome decides whether the current tick is over. A dead player costs
// one life.
func (w *World) checkOutcome() Status {
	if !w.player.Alive() {
		w.board.Lives--
		return StatusPlayerDied
	}
	if w.levelComplete {
		return StatusLevelFinished
	}
	return StatusContinue
}

// ExitCitizens saves every live infectable actor overlapping the exit at (x, y).
func (w *World) ExitCitizens(x, y int) {
	for _, a := range w.actors {
		e := a.Base()
		if !e.Alive() || !e.Has(Infectable) || !Overlap(x, y, e.X, e.Y) {
			continue
		}
		e.setDead()
		w.AddScore(ScoreCitizenSaved)
		w.Emit(EventCitizenSaved)
	}
}

// ExitPlayer completes the level when the player stands on the exit at (x, y)
// and no infectable person other than the player is left alive.
func (w *World) ExitPlayer(x, y int) {
	if !w.OverlapsPlayer(x, y) {
		return
	}
	for _, a := range w.actors {
		e := a.Base()
		if e.Alive() && e.Has(Infectable) {
			return
		}
	}
	w.levelComplete = true
	w.Emit(EventLevelFinished)
	w.logger.Debug("level finished", "level", w.board.Level, "tick", w.tick)
}

// FormatStatus renders the status line, e.g.
//
//	Score: 004500  Level: 1  Lives: 3  Vacc: 0  Flames: 5  Mines: 2  Infected: 0
func FormatStatus(b Scoreboard, p *Player) string {
	var sb strings.Builder
	if b.Score < 0 {
		fmt.Fprintf(&sb, "Score: -%05d", -b.Score)
	} else {
		fmt.Fprintf(&sb, "Score: %06d", b.Score)
	}
	fmt.Fprintf(&sb, "  Level: %d  Lives: %d", b.Level, b.Lives)
	if p == nil {
		return sb.String()
	}
	fmt.Fprintf(&sb, "  Vacc: %d  Flames: %d  Mines: %d  Infected: %d",
		p.Vaccines, p.Flames, p.Landmines, p.infection)
	return sb.String()
}
