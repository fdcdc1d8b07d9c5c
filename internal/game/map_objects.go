package game

import (
	"errors"

	"github.com/ugaemi/zombiedash/internal/level"
)

// ErrNoPlayer is returned when a grid has no player cell.
var ErrNoPlayer = errors.New("level has no player")

// cellOrigin converts a grid cell to the world anchor of its lower-left corner.
func cellOrigin(cx, cy int) (int, int) {
	return cx * CellWidth, cy * CellHeight
}

// newCellActor builds the actor a non-empty, non-player cell stands for.
func newCellActor(c level.Cell, x, y int) Actor {
	switch c {
	case level.Wall:
		return NewWall(x, y)
	case level.Pit:
		return NewPit(x, y)
	case level.Exit:
		return NewExit(x, y)
	case level.Citizen:
		return NewCitizen(x, y)
	case level.DumbZombie:
		return NewDumbZombie(x, y)
	case level.SmartZombie:
		return NewSmartZombie(x, y)
	case level.VaccineGoodie:
		return NewVaccineGoodie(x, y)
	case level.GasCanGoodie:
		return NewGasCanGoodie(x, y)
	case level.LandmineGoodie:
		return NewLandmineGoodie(x, y)
	default:
		return nil
	}
}

// NewWorldFromGrid populates a World from a parsed level. Cells are visited
// bottom row first, left to right, which fixes the registry order.
func NewWorldFromGrid(g *level.Grid, opts Options) (*World, error) {
	var player *Player
	var actors []Actor
	for cy := 0; cy < level.Height; cy++ {
		for cx := 0; cx < level.Width; cx++ {
			c := g.At(cx, cy)
			x, y := cellOrigin(cx, cy)
			if c == level.Player {
				player = NewPlayer(x, y)
				continue
			}
			if a := newCellActor(c, x, y); a != nil {
				actors = append(actors, a)
			}
		}
	}
	if player == nil {
		return nil, ErrNoPlayer
	}

	w := NewWorld(player, opts)
	for _, a := range actors {
		w.Add(a)
	}
	return w, nil
}
