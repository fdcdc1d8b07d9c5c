package audio

import (
	"io"
	"log/slog"
	"testing"

	"github.com/gopxl/beep"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ugaemi/zombiedash/internal/game"
)

func streamLen(t *testing.T, s beep.Streamer) int {
	t.Helper()
	buf := make([][2]float64, 512)
	total := 0
	for {
		n, ok := s.Stream(buf)
		total += n
		for i := 0; i < n; i++ {
			require.LessOrEqual(t, buf[i][0], 2.0)
			require.GreaterOrEqual(t, buf[i][0], -2.0)
		}
		if !ok {
			return total
		}
	}
}

func TestEveryEventHasATone(t *testing.T) {
	for _, e := range game.AllEvents {
		t.Run(e.String(), func(t *testing.T) {
			s, err := streamerFor(e)
			require.NoError(t, err)
			assert.Equal(t, sampleRate.N(tones[e].dur), streamLen(t, s))
		})
	}
}

func TestStreamerFor_Unmapped(t *testing.T) {
	_, err := streamerFor(game.Event(99))
	assert.Error(t, err)
}

func TestSink_Emit(t *testing.T) {
	var played []beep.Streamer
	sink := NewWithPlayer(func(s beep.Streamer) { played = append(played, s) },
		slog.New(slog.NewTextHandler(io.Discard, nil)))

	var _ game.EventSink = sink
	sink.Emit(game.EventPlayerFire)
	sink.Emit(game.Event(99))
	sink.Emit(game.EventLevelFinished)
	sink.Close()

	require.Len(t, played, 2)
	assert.Equal(t, sampleRate.N(tones[game.EventLevelFinished].dur), streamLen(t, played[1]))
}
