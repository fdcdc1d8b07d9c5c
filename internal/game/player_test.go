package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlayer_Move(t *testing.T) {
	tests := []struct {
		cmd    Command
		wx, wy int
		dir    Direction
	}{
		{CommandMoveRight, 104, 100, Right},
		{CommandMoveLeft, 96, 100, Left},
		{CommandMoveUp, 100, 104, Up},
		{CommandMoveDown, 100, 96, Down},
	}

	for _, tt := range tests {
		t.Run(tt.cmd.String(), func(t *testing.T) {
			w := newTestWorld(t, 100, 100, withInput(tt.cmd))

			w.Tick()

			x, y := w.Player().Position()
			assert.Equal(t, tt.wx, x)
			assert.Equal(t, tt.wy, y)
			assert.Equal(t, tt.dir, w.Player().Dir)
		})
	}
}

func TestPlayer_MoveBlockedByWall(t *testing.T) {
	w := newTestWorld(t, 100, 100, withInput(CommandMoveRight))
	w.Add(NewWall(116, 100))

	w.Tick()

	assert.Equal(t, 100, w.Player().X)
	assert.Equal(t, Right, w.Player().Dir)
}

func TestPlayer_MoveBlockedTurnsAround(t *testing.T) {
	w := newTestWorld(t, 100, 100, withInput(CommandMoveLeft))
	w.Add(NewCitizen(88, 100))

	w.Tick()

	assert.Equal(t, 100, w.Player().X)
	assert.Equal(t, Left, w.Player().Dir)
}

func TestPlayer_Fire(t *testing.T) {
	tests := []struct {
		name       string
		flames     int
		wall       bool
		wantFlames int
		wantCharge int
	}{
		{"open range", 1, false, FlameRange, 0},
		{"wall two cells ahead", 1, true, 1, 0},
		{"no charges", 0, false, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := newTestWorld(t, 32, 32, withInput(CommandFire))
			w.Player().Flames = tt.flames
			if tt.wall {
				w.Add(NewWall(32+2*CellWidth, 32))
			}

			require.Equal(t, StatusContinue, w.Tick())

			assert.Equal(t, tt.wantFlames, countKind(w, KindFlame))
			assert.Equal(t, tt.wantCharge, w.Player().Flames)
			if tt.flames > 0 {
				assert.Contains(t, w.Events(), EventPlayerFire)
			} else {
				assert.Empty(t, w.Events())
			}
		})
	}
}

func TestPlayer_FireKillsZombieAhead(t *testing.T) {
	w := newTestWorld(t, 32, 32, withInput(CommandMoveUp, CommandFire))
	w.Player().Flames = 1
	z := NewSmartZombie(32, 36+2*CellHeight)
	w.Add(z)

	w.Tick()
	w.Tick()

	assert.False(t, z.Alive())
	assert.Equal(t, ScoreSmartZombieKilled, w.Board().Score)
}

func TestPlayer_PlaceLandmineNeedsStock(t *testing.T) {
	w := newTestWorld(t, 100, 100, withInput(CommandPlaceLandmine))

	w.Tick()

	assert.Equal(t, 0, countKind(w, KindLandmine))
}

func TestGoodie_Pickup(t *testing.T) {
	tests := []struct {
		name   string
		goodie func(x, y int) *Goodie
		check  func(t *testing.T, p *Player)
	}{
		{"vaccine", NewVaccineGoodie, func(t *testing.T, p *Player) {
			assert.Equal(t, VaccinesPerGoodie, p.Vaccines)
		}},
		{"gas can", NewGasCanGoodie, func(t *testing.T, p *Player) {
			assert.Equal(t, FlamesPerGasCan, p.Flames)
		}},
		{"landmine", NewLandmineGoodie, func(t *testing.T, p *Player) {
			assert.Equal(t, LandminesPerGoodie, p.Landmines)
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := newTestWorld(t, 100, 100)
			g := tt.goodie(105, 100)
			w.Add(g)

			w.Tick()

			assert.False(t, g.Alive())
			assert.Equal(t, ScoreGoodie, w.Board().Score)
			assert.Equal(t, []Event{EventGoodiePickup}, w.Events())
			tt.check(t, w.Player())
		})
	}
}

func TestGoodie_CitizenDoesNotPickUp(t *testing.T) {
	w := newTestWorld(t, 200, 200)
	g := NewVaccineGoodie(40, 40)
	w.Add(g)
	w.Add(NewCitizen(40, 40))

	w.Tick()

	assert.True(t, g.Alive())
	assert.Equal(t, 0, w.Board().Score)
}
