package handler

import (
	"encoding/json"
	"log/slog"

	"github.com/ugaemi/zombiedash/internal/game"
	"github.com/ugaemi/zombiedash/internal/session"
	"github.com/ugaemi/zombiedash/internal/ws"
)

// GameplayHandler handles in-game messages.
type GameplayHandler struct {
	sm     *session.Manager
	router *Router
}

// NewGameplayHandler creates a new gameplay handler.
func NewGameplayHandler(sm *session.Manager, router *Router) *GameplayHandler {
	return &GameplayHandler{sm: sm, router: router}
}

type commandRequest struct {
	Cmd string `json:"cmd"`
}

// HandleCommand queues a player command for the owner's session.
func (h *GameplayHandler) HandleCommand(client *ws.Client, msg ws.Message) {
	var req commandRequest
	if err := json.Unmarshal(msg.Data, &req); err != nil {
		client.SendMessage(ws.NewErrorMessage("invalid command data"))
		return
	}
	cmd, ok := game.ParseCommand(req.Cmd)
	if !ok {
		client.SendMessage(ws.NewErrorMessage("unknown command: " + req.Cmd))
		return
	}

	code, owner, ok := h.router.Membership(client.ID)
	if !ok {
		client.SendMessage(ws.NewErrorMessage("not in a session"))
		return
	}
	if !owner {
		client.SendMessage(ws.NewErrorMessage("spectators cannot send commands"))
		return
	}
	s := h.sm.Get(code)
	if s == nil {
		client.SendMessage(ws.NewErrorMessage("session not found"))
		return
	}

	if err := s.Enqueue(cmd); err != nil {
		client.SendMessage(ws.NewErrorMessage(err.Error()))
		return
	}
	slog.Debug("command queued", "session", code, "cmd", cmd.String())
}
