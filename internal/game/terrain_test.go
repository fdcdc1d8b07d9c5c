package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExit_FinishesLevel(t *testing.T) {
	tests := []struct {
		name     string
		citizens int
		expected Status
	}{
		{"no citizens left", 0, StatusLevelFinished},
		{"citizen still out", 1, StatusContinue},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := newTestWorld(t, 50, 50)
			w.Add(NewExit(50, 50))
			for i := 0; i < tt.citizens; i++ {
				w.Add(NewCitizen(200, 200))
			}

			assert.Equal(t, tt.expected, w.Tick())
			assert.Equal(t, tt.expected == StatusLevelFinished, w.LevelComplete())
		})
	}
}

func TestExit_SavesCitizen(t *testing.T) {
	w := newTestWorld(t, 200, 200)
	exit := NewExit(50, 50)
	c := NewCitizen(52, 50)
	w.Add(exit)
	w.Add(c)

	require.Equal(t, StatusContinue, w.Tick())

	assert.False(t, c.Alive())
	assert.Equal(t, ScoreCitizenSaved, w.Board().Score)
	assert.Equal(t, []Event{EventCitizenSaved}, w.Events())
	assert.Empty(t, w.Actors()[1:], "saved citizen is purged")
}

func TestExit_IgnoresNonInfectable(t *testing.T) {
	w := newTestWorld(t, 200, 200)
	w.Add(NewExit(50, 50))
	c := NewCitizen(50, 50)
	z := NewDumbZombie(50, 50)
	g := NewGasCanGoodie(50, 50)
	w.Add(c)
	w.Add(z)
	w.Add(g)

	require.Equal(t, StatusContinue, w.Tick())

	assert.False(t, c.Alive())
	assert.True(t, z.Alive())
	assert.True(t, g.Alive())
	assert.Equal(t, ScoreCitizenSaved, w.Board().Score)
}

func TestExit_SavesCitizenThenFinishes(t *testing.T) {
	w := newTestWorld(t, 50, 50)
	w.Add(NewExit(50, 50))
	w.Add(NewCitizen(50, 50))

	assert.Equal(t, StatusLevelFinished, w.Tick())
	assert.Equal(t, []Event{EventCitizenSaved, EventLevelFinished}, w.Events())
	assert.Equal(t, ScoreCitizenSaved, w.Board().Score)
}

func TestExit_InfectedCitizenStillCounts(t *testing.T) {
	w := newTestWorld(t, 50, 50)
	w.Add(NewExit(50, 50))
	c := NewCitizen(200, 200)
	c.infected = true
	w.Add(c)

	assert.Equal(t, StatusContinue, w.Tick())
}

func TestExit_BlocksFlames(t *testing.T) {
	w := newTestWorld(t, 32, 32, withInput(CommandFire))
	w.Player().Flames = 1
	w.Add(NewExit(48, 32))

	w.Tick()

	assert.Equal(t, 0, countKind(w, KindFlame))
}

func TestPit_DestroysEachTick(t *testing.T) {
	w := newTestWorld(t, 200, 200)
	pit := NewPit(40, 40)
	w.Add(pit)
	w.Tick()

	z := NewSmartZombie(40, 40)
	w.Add(z)
	w.Tick()

	assert.False(t, z.Alive())
	assert.True(t, pit.Alive())
	assert.Equal(t, ScoreSmartZombieKilled, w.Board().Score)
}

func TestPit_SparesGoodies(t *testing.T) {
	w := newTestWorld(t, 200, 200)
	g := NewGasCanGoodie(40, 40)
	w.Add(NewPit(40, 40))
	w.Add(g)

	w.Tick()

	assert.True(t, g.Alive())
}

func TestBlocked(t *testing.T) {
	w := newTestWorld(t, 100, 100)
	z := NewDumbZombie(200, 100)
	dead := NewWall(300, 100)
	dead.setDead()
	w.Add(z)
	w.Add(NewWall(150, 100))
	w.Add(NewExit(250, 100))
	w.Add(dead)

	tests := []struct {
		name     string
		x        int
		self     Actor
		expected bool
	}{
		{"player box blocks others", 110, z, true},
		{"player never blocks itself", 110, w.Player(), false},
		{"wall", 145, w.Player(), true},
		{"zombie does not block itself", 200, z, false},
		{"zombie blocks the player", 205, w.Player(), true},
		{"exit does not block movement", 250, w.Player(), false},
		{"dead actors do not block", 300, w.Player(), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, w.Blocked(tt.x, 100, tt.self))
		})
	}
}

func TestDistanceToNearestZombie(t *testing.T) {
	w := newTestWorld(t, 0, 0)
	assert.Equal(t, NoDistance, w.DistanceToNearestZombie(100, 100))

	far := NewSmartZombie(100, 200)
	near := NewDumbZombie(130, 140)
	dead := NewDumbZombie(100, 101)
	dead.setDead()
	w.Add(far)
	w.Add(near)
	w.Add(dead)
	w.Add(NewCitizen(100, 102))

	assert.InDelta(t, 50, w.DistanceToNearestZombie(100, 100), 0.001)
}
