package handler

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/ugaemi/zombiedash/internal/game"
	"github.com/ugaemi/zombiedash/internal/session"
	"github.com/ugaemi/zombiedash/internal/ws"
)

// LobbyHandler handles session lifecycle messages.
type LobbyHandler struct {
	ctx    context.Context
	sm     *session.Manager
	router *Router
}

// NewLobbyHandler creates a new lobby handler.
func NewLobbyHandler(ctx context.Context, sm *session.Manager, router *Router) *LobbyHandler {
	return &LobbyHandler{
		ctx:    ctx,
		sm:     sm,
		router: router,
	}
}

type createSessionRequest struct {
	Nickname string `json:"nickname"`
}

// HandleCreateSession starts a new run owned by the client.
func (h *LobbyHandler) HandleCreateSession(client *ws.Client, msg ws.Message) {
	var req createSessionRequest
	if err := json.Unmarshal(msg.Data, &req); err != nil || req.Nickname == "" {
		client.SendMessage(ws.NewErrorMessage("nickname is required"))
		return
	}
	if code, _, ok := h.router.Membership(client.ID); ok {
		if prev := h.sm.Get(code); prev != nil && !prev.Over() {
			client.SendMessage(ws.NewErrorMessage("already in a session"))
			return
		}
		// The previous run has ended; release it before starting over.
		h.removeClient(client)
	}

	s := h.sm.Create(req.Nickname)
	if st := s.Start(); st != game.StatusContinue {
		h.sm.Remove(s.Code)
		client.SendMessage(ws.NewErrorMessage("failed to load first level"))
		slog.Warn("session start failed", "code", s.Code, "status", st.String())
		return
	}

	s.Attach(client, true)
	h.router.Join(client.ID, s.Code, true)
	sendSessionInfo(client, s)
	s.StartLoop(h.ctx)

	slog.Info("player created session", "player", req.Nickname, "session", s.Code)
}

type joinSessionRequest struct {
	Code string `json:"code"`
}

// HandleJoinSession attaches the client to an existing run as a spectator.
func (h *LobbyHandler) HandleJoinSession(client *ws.Client, msg ws.Message) {
	var req joinSessionRequest
	if err := json.Unmarshal(msg.Data, &req); err != nil || req.Code == "" {
		client.SendMessage(ws.NewErrorMessage("code is required"))
		return
	}
	code, ok := session.NormalizeCode(req.Code)
	if !ok {
		client.SendMessage(ws.NewErrorMessage("invalid session code"))
		return
	}
	if _, _, ok := h.router.Membership(client.ID); ok {
		client.SendMessage(ws.NewErrorMessage("already in a session"))
		return
	}

	s := h.sm.Get(code)
	if s == nil {
		client.SendMessage(ws.NewErrorMessage("session not found"))
		return
	}
	if s.Over() {
		client.SendMessage(ws.NewErrorMessage("session has ended"))
		return
	}

	s.Attach(client, false)
	h.router.Join(client.ID, code, false)
	sendSessionInfo(client, s)

	slog.Info("spectator joined session", "client", client.ID, "session", code)
}

// HandleLeaveSession detaches the client from its session.
func (h *LobbyHandler) HandleLeaveSession(client *ws.Client, _ ws.Message) {
	h.removeClient(client)
}

// HandleDisconnect handles client disconnection.
func (h *LobbyHandler) HandleDisconnect(client *ws.Client) {
	h.removeClient(client)
}

// removeClient detaches a client. An owner leaving ends the run.
func (h *LobbyHandler) removeClient(client *ws.Client) {
	code, _, ok := h.router.Membership(client.ID)
	if !ok {
		return
	}
	h.router.Leave(client.ID)

	s := h.sm.Get(code)
	if s == nil {
		return
	}
	if s.Detach(client.ID) {
		h.sm.Remove(code)
		slog.Info("owner left, session closed", "client", client.ID, "session", code)
		return
	}
	slog.Info("spectator left", "client", client.ID, "session", code)
}

func sendSessionInfo(client *ws.Client, s *session.Session) {
	resp, _ := ws.NewMessage(ws.TypeSessionInfo, s.Info())
	client.SendMessage(resp)
}
