package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"

	"github.com/ugaemi/zombiedash/internal/session"
	"github.com/ugaemi/zombiedash/internal/ws"
)

// membership records which session a client is attached to.
type membership struct {
	code  string
	owner bool
}

// Router dispatches incoming messages to the appropriate handler.
type Router struct {
	lobby    *LobbyHandler
	gameplay *GameplayHandler

	// members tracks client ID -> session membership, shared across handlers.
	members map[string]membership
	mu      sync.RWMutex
}

// NewRouter creates a new message router. Session loops started through it
// stop when ctx is done.
func NewRouter(ctx context.Context, sm *session.Manager) *Router {
	r := &Router{
		members: make(map[string]membership),
	}
	r.lobby = NewLobbyHandler(ctx, sm, r)
	r.gameplay = NewGameplayHandler(sm, r)
	return r
}

// Join records that a client is attached to a session.
func (r *Router) Join(clientID, code string, owner bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.members[clientID] = membership{code: code, owner: owner}
}

// Leave forgets a client's membership.
func (r *Router) Leave(clientID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.members, clientID)
}

// Membership returns the session a client is attached to.
func (r *Router) Membership(clientID string) (code string, owner, ok bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	m, ok := r.members[clientID]
	return m.code, m.owner, ok
}

// HandleMessage parses and routes an incoming client message.
func (r *Router) HandleMessage(cm *ws.ClientMessage) {
	var msg ws.Message
	if err := json.Unmarshal(cm.Data, &msg); err != nil {
		slog.Warn("invalid message format", "client", cm.Client.ID, "error", err)
		cm.Client.SendMessage(ws.NewErrorMessage("invalid message format"))
		return
	}

	switch msg.Type {
	// Lobby messages
	case ws.TypeCreateSession:
		r.lobby.HandleCreateSession(cm.Client, msg)
	case ws.TypeJoinSession:
		r.lobby.HandleJoinSession(cm.Client, msg)
	case ws.TypeLeaveSession:
		r.lobby.HandleLeaveSession(cm.Client, msg)

	// Gameplay messages
	case ws.TypeCommand:
		r.gameplay.HandleCommand(cm.Client, msg)

	default:
		slog.Warn("unknown message type", "type", msg.Type, "client", cm.Client.ID)
		cm.Client.SendMessage(ws.NewErrorMessage("unknown message type: " + msg.Type))
	}
}

// HandleDisconnect handles client disconnection.
func (r *Router) HandleDisconnect(client *ws.Client) {
	r.lobby.HandleDisconnect(client)
}
