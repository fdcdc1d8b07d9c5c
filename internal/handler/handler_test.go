package handler

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/ugaemi/zombiedash/internal/level"
	"github.com/ugaemi/zombiedash/internal/session"
	"github.com/ugaemi/zombiedash/internal/ws"
)

const quietLevel = `################
#@.............#
#..............#
#..............#
#..............#
#..............#
#..............#
#..............#
#..............#
#..............#
#..............#
#..............#
#..............#
#..............#
#.............X#
################`

type sentMessage struct {
	Type string
	Data json.RawMessage
}

// newTestClient creates a client whose outgoing messages are decoded onto ch.
func newTestClient(id string) (*ws.Client, chan sentMessage) {
	ch := make(chan sentMessage, 10)
	client := ws.NewDetachedClient(id)

	go func() {
		for data := range client.Send {
			var msg sentMessage
			json.Unmarshal(data, &msg)
			ch <- msg
		}
	}()

	return client, ch
}

func readResponseWithTimeout(t *testing.T, ch chan sentMessage, timeout time.Duration) sentMessage {
	t.Helper()
	select {
	case msg := <-ch:
		return msg
	case <-time.After(timeout):
		t.Fatal("timeout waiting for response")
		return sentMessage{}
	}
}

func readResponse(t *testing.T, ch chan sentMessage) sentMessage {
	t.Helper()
	return readResponseWithTimeout(t, ch, time.Second)
}

func assertNoResponse(t *testing.T, ch chan sentMessage) {
	t.Helper()
	select {
	case msg := <-ch:
		t.Fatalf("unexpected message %s: %s", msg.Type, msg.Data)
	case <-time.After(50 * time.Millisecond):
	}
}

func readError(t *testing.T, ch chan sentMessage) string {
	t.Helper()
	resp := readResponse(t, ch)
	require.Equal(t, ws.TypeError, resp.Type)
	var e ws.ErrorMessage
	require.NoError(t, json.Unmarshal(resp.Data, &e))
	return e.Message
}

// setupRouter returns a router over a manager whose level directory holds
// levels. Session loops tick too slowly to interfere with assertions.
func setupRouter(t *testing.T, levels ...string) (*Router, *session.Manager) {
	t.Helper()
	dir := t.TempDir()
	for i, text := range levels {
		path := filepath.Join(dir, level.FileName(i+1))
		require.NoError(t, os.WriteFile(path, []byte(text), 0o644))
	}

	sm := session.NewManager(session.Options{
		Levels:       level.Loader{Dir: dir},
		TickInterval: time.Hour,
		Seed:         1,
		Logger:       slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(func() {
		cancel()
		sm.StopAll()
	})
	return NewRouter(ctx, sm), sm
}

func send(t *testing.T, r *Router, client *ws.Client, msgType string, payload any) {
	t.Helper()
	var data json.RawMessage
	if payload != nil {
		var err error
		data, err = json.Marshal(payload)
		require.NoError(t, err)
	}
	raw, err := json.Marshal(ws.Message{Type: msgType, Data: data})
	require.NoError(t, err)
	r.HandleMessage(&ws.ClientMessage{Client: client, Data: raw})
}

// createSession creates a session owned by a fresh client and returns its info.
func createSession(t *testing.T, r *Router, clientID string) (*ws.Client, chan sentMessage, session.Info) {
	t.Helper()
	client, ch := newTestClient(clientID)
	send(t, r, client, ws.TypeCreateSession, createSessionRequest{Nickname: "runner"})

	resp := readResponse(t, ch)
	require.Equal(t, ws.TypeSessionInfo, resp.Type)
	var info session.Info
	require.NoError(t, json.Unmarshal(resp.Data, &info))
	return client, ch, info
}

