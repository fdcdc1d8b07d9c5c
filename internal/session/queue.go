package session

import (
	"sync"

	"github.com/ugaemi/zombiedash/internal/game"
)

// maxPendingCommands bounds how far input can run ahead of the simulation.
const maxPendingCommands = 8

// CommandQueue buffers player commands between the transport and the tick
// loop. The world consumes at most one per tick.
type CommandQueue struct {
	mu      sync.Mutex
	pending []game.Command
}

// Push enqueues cmd. It returns false when the queue is full.
func (q *CommandQueue) Push(cmd game.Command) bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	if len(q.pending) >= maxPendingCommands {
		return false
	}
	q.pending = append(q.pending, cmd)
	return true
}

// NextCommand implements game.InputSource.
func (q *CommandQueue) NextCommand() (game.Command, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if len(q.pending) == 0 {
		return game.CommandNone, false
	}
	cmd := q.pending[0]
	q.pending = q.pending[1:]
	return cmd, true
}

// Clear drops pending commands.
func (q *CommandQueue) Clear() {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.pending = nil
}

// Len returns the number of pending commands.
func (q *CommandQueue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.pending)
}
