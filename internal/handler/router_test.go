package handler

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ugaemi/zombiedash/internal/ws"
)

func TestHandleMessage_InvalidJSON(t *testing.T) {
	r, _ := setupRouter(t, quietLevel)
	client, ch := newTestClient("c1")

	r.HandleMessage(&ws.ClientMessage{Client: client, Data: []byte("{not json")})

	assert.Equal(t, "invalid message format", readError(t, ch))
}

func TestHandleMessage_UnknownType(t *testing.T) {
	r, _ := setupRouter(t, quietLevel)
	client, ch := newTestClient("c1")

	send(t, r, client, "teleport", nil)

	assert.Equal(t, "unknown message type: teleport", readError(t, ch))
}

func TestMembership(t *testing.T) {
	r, _ := setupRouter(t)

	_, _, ok := r.Membership("c1")
	assert.False(t, ok)

	r.Join("c1", "ABCD", true)
	code, owner, ok := r.Membership("c1")
	assert.True(t, ok)
	assert.True(t, owner)
	assert.Equal(t, "ABCD", code)

	r.Leave("c1")
	_, _, ok = r.Membership("c1")
	assert.False(t, ok)
}
