package handler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ugaemi/zombiedash/internal/game"
	"github.com/ugaemi/zombiedash/internal/ws"
)

func TestHandleCommand_OwnerMovesPlayer(t *testing.T) {
	r, sm := setupRouter(t, quietLevel)
	owner, ch, info := createSession(t, r, "owner")

	send(t, r, owner, ws.TypeCommand, commandRequest{Cmd: "right"})
	assertNoResponse(t, ch)

	s := sm.Get(info.Code)
	require.Equal(t, game.StatusContinue, s.Step())

	frame := s.Frame()
	require.NotEmpty(t, frame.Entities)
	player := frame.Entities[len(frame.Entities)-1]
	assert.Equal(t, game.KindPlayer, player.Kind)
	assert.Equal(t, game.CellWidth+game.PlayerStep, player.X)
	assert.Equal(t, game.Right, player.Dir)
}

func TestHandleCommand_Errors(t *testing.T) {
	r, _ := setupRouter(t, quietLevel)
	_, _, info := createSession(t, r, "owner")

	watcher, watcherCh := newTestClient("watcher")
	send(t, r, watcher, ws.TypeJoinSession, joinSessionRequest{Code: info.Code})
	readResponse(t, watcherCh)

	stranger, strangerCh := newTestClient("stranger")

	tests := []struct {
		name   string
		client *ws.Client
		ch     chan sentMessage
		cmd    string
		want   string
	}{
		{"unknown command", watcher, watcherCh, "jump", "unknown command: jump"},
		{"spectator", watcher, watcherCh, "fire", "spectators cannot send commands"},
		{"not in a session", stranger, strangerCh, "fire", "not in a session"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			send(t, r, tt.client, ws.TypeCommand, commandRequest{Cmd: tt.cmd})
			assert.Equal(t, tt.want, readError(t, tt.ch))
		})
	}
}

func TestHandleCommand_QueueFull(t *testing.T) {
	r, _ := setupRouter(t, quietLevel)
	owner, ch, _ := createSession(t, r, "owner")

	for i := 0; i < 8; i++ {
		send(t, r, owner, ws.TypeCommand, commandRequest{Cmd: "fire"})
	}
	assertNoResponse(t, ch)

	send(t, r, owner, ws.TypeCommand, commandRequest{Cmd: "fire"})
	assert.Equal(t, "command queue is full", readError(t, ch))
}

func TestHandleCommand_InvalidData(t *testing.T) {
	r, _ := setupRouter(t, quietLevel)
	client, ch := newTestClient("owner")

	send(t, r, client, ws.TypeCommand, "fire")

	assert.Equal(t, "invalid command data", readError(t, ch))
}
