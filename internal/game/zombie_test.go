package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDumbZombie_MovementPlan(t *testing.T) {
	// Intn(8) = 2 gives a plan of five steps, Intn(4) = 2 heads up.
	r := newSeqRand(2, 2)
	w := newTestWorld(t, 200, 200, withRand(r))
	z := NewDumbZombie(100, 100)
	w.Add(z)

	w.Tick()
	assert.Equal(t, Up, z.Dir)
	assert.Equal(t, 101, z.Y)
	assert.Equal(t, 4, z.Plan())
	assert.Equal(t, []int{MaxMovementPlan - MinMovementPlan + 1, 4}, r.calls)

	// Resting tick.
	w.Tick()
	assert.Equal(t, 101, z.Y)
	assert.Equal(t, 4, z.Plan())

	w.Tick()
	assert.Equal(t, 102, z.Y)
	assert.Equal(t, 3, z.Plan())
	assert.Len(t, r.calls, 2, "no new plan while steps remain")
}

func TestZombie_BlockedResetsPlan(t *testing.T) {
	w := newTestWorld(t, 200, 200, withRand(newSeqRand(2, 2)))
	z := NewDumbZombie(100, 100)
	w.Add(z)
	w.Add(NewWall(100, 100+CellHeight-1))

	w.Tick()

	assert.Equal(t, 100, z.Y)
	assert.Equal(t, Up, z.Dir)
	assert.Equal(t, 0, z.Plan())
}

func TestSmartZombie_HeadsForNearestPerson(t *testing.T) {
	tests := []struct {
		name     string
		cx, cy   int
		expected Direction
	}{
		{"citizen above", 100, 150, Up},
		{"citizen below", 100, 50, Down},
		{"citizen left", 40, 100, Left},
		{"citizen right", 160, 100, Right},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := newTestWorld(t, 250, 250)
			w.Add(NewCitizen(tt.cx, tt.cy))

			assert.Equal(t, tt.expected, w.SmartDirection(100, 100))
		})
	}
}

func TestSmartZombie_PrefersPlayerOnTie(t *testing.T) {
	w := newTestWorld(t, 100, 140)
	w.Add(NewCitizen(100, 60))

	assert.Equal(t, Up, w.SmartDirection(100, 100))
}

func TestSmartZombie_UnalignedPicksRandomAxis(t *testing.T) {
	tests := []struct {
		pick     int
		expected Direction
	}{
		{0, Right},
		{1, Up},
	}

	for _, tt := range tests {
		t.Run(tt.expected.String(), func(t *testing.T) {
			w := newTestWorld(t, 130, 130, withRand(newSeqRand(tt.pick)))

			assert.Equal(t, tt.expected, w.SmartDirection(100, 100))
		})
	}
}

func TestSmartZombie_OutOfRangeWanders(t *testing.T) {
	r := newSeqRand(3)
	w := newTestWorld(t, 100, 100+SenseRange+1, withRand(r))

	assert.Equal(t, Down, w.SmartDirection(100, 100))
	assert.Equal(t, []int{4}, r.calls)
}

func TestZombie_Vomit(t *testing.T) {
	w := newTestWorld(t, 200, 200)
	z := NewDumbZombie(100, 100)
	c := NewCitizen(100+CellWidth, 100)
	w.Add(z)
	w.Add(c)

	require.Equal(t, StatusContinue, w.Tick())

	assert.Equal(t, 100, z.X, "a vomiting zombie does not move")
	assert.True(t, c.Infected())
	assert.Contains(t, w.Events(), EventZombieVomit)
	assert.Contains(t, w.Events(), EventCitizenInfected)
}

func TestZombie_VomitMisses(t *testing.T) {
	// Intn(3) = 1 skips the vomit, then a three-step plan to the left.
	w := newTestWorld(t, 200, 200, withRand(newSeqRand(1, 0, 1)))
	z := NewDumbZombie(100, 100)
	c := NewCitizen(100+CellWidth, 100)
	w.Add(z)
	w.Add(c)

	w.Tick()

	assert.Equal(t, 99, z.X)
	assert.NotContains(t, w.Events(), EventZombieVomit)
	assert.False(t, c.Infected())
}

func TestZombie_DestroyScores(t *testing.T) {
	tests := []struct {
		name   string
		zombie *Zombie
		score  int
	}{
		{"dumb", NewDumbZombie(40, 40), ScoreDumbZombieKilled},
		{"smart", NewSmartZombie(40, 40), ScoreSmartZombieKilled},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := newTestWorld(t, 200, 200)

			tt.zombie.Destroy(w)
			tt.zombie.Destroy(w)

			assert.False(t, tt.zombie.Alive())
			assert.Equal(t, tt.score, w.Board().Score)
			assert.Equal(t, []Event{EventZombieDie}, w.Events())
		})
	}
}
