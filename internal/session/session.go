package session

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ugaemi/zombiedash/internal/config"
	"github.com/ugaemi/zombiedash/internal/game"
	"github.com/ugaemi/zombiedash/internal/level"
	"github.com/ugaemi/zombiedash/internal/record"
	"github.com/ugaemi/zombiedash/internal/store"
	"github.com/ugaemi/zombiedash/internal/ws"
)

const (
	defaultTickInterval = time.Second / 20
	saveTimeout         = 5 * time.Second
)

var (
	// ErrNotRunning is returned when a command arrives outside of play.
	ErrNotRunning = errors.New("session is not running")
	// ErrQueueFull is returned when commands arrive faster than ticks consume them.
	ErrQueueFull = errors.New("command queue is full")
)

// State is the lifecycle state of a session.
type State int

const (
	StateWaiting State = iota
	StatePlaying
	StateEnded
)

func (s State) String() string {
	switch s {
	case StateWaiting:
		return "waiting"
	case StatePlaying:
		return "playing"
	case StateEnded:
		return "ended"
	default:
		return "unknown"
	}
}

// MarshalJSON serializes State as a string.
func (s State) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// LevelSource loads numbered levels.
type LevelSource interface {
	Load(n int) (*level.Grid, error)
}

// Options configures every session a Manager creates.
type Options struct {
	Levels       LevelSource
	Store        store.ScoreStore
	Sink         game.EventSink
	Rules        *game.Rules
	Lives        int
	TickInterval time.Duration
	// Seed fixes the random source. Zero seeds from the clock.
	Seed   int64
	Rand   game.Rand
	Logger *slog.Logger
}

// NewOptions builds session options from configuration. Store, Sink and
// Logger are left for the caller.
func NewOptions(cfg *config.Config) Options {
	return Options{
		Levels: level.Loader{Dir: cfg.LevelDir},
		Rules: &game.Rules{
			SmartZombiePercent: cfg.SmartZombiePercent,
			VaccineDropPercent: cfg.VaccineDropPercent,
		},
		Lives:        cfg.StartLives,
		TickInterval: cfg.TickInterval(),
		Seed:         cfg.Seed,
	}
}

// Session is one player's run through the level sequence. Spectators may
// attach and receive the same frames.
type Session struct {
	Code     string `json:"code"`
	RunID    string `json:"run_id"`
	Nickname string `json:"nickname"`

	// OnFrame, when set, receives every published frame.
	OnFrame func(game.Snapshot)

	opts   Options
	logger *slog.Logger
	rng    game.Rand
	queue  CommandQueue

	board      game.Scoreboard
	world      *game.World
	lastEvents []game.Event

	state     State
	result    game.Status
	abandoned bool
	final     *record.Record

	ownerID string
	clients map[string]*ws.Client

	stopCh   chan struct{}
	stopOnce sync.Once

	mu sync.RWMutex
}

// New creates a session in the waiting state.
func New(code, nickname string, opts Options) *Session {
	if opts.TickInterval <= 0 {
		opts.TickInterval = defaultTickInterval
	}
	if opts.Lives <= 0 {
		opts.Lives = game.StartLives
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	rng := opts.Rand
	if rng == nil {
		seed := opts.Seed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		rng = game.NewRand(seed)
	}

	runID := uuid.New().String()
	return &Session{
		Code:     code,
		RunID:    runID,
		Nickname: nickname,
		opts:     opts,
		logger:   opts.Logger.With("session", code, "run", runID),
		rng:      rng,
		clients:  make(map[string]*ws.Client),
		stopCh:   make(chan struct{}),
	}
}

// Start loads the first level and begins play. It returns StatusContinue on
// success and StatusLoadError when the first level is missing or malformed.
func (s *Session) Start() game.Status {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateWaiting {
		return s.result
	}

	s.board = game.Scoreboard{Level: 1, Lives: s.opts.Lives}
	if st := s.loadLevel(1); st != game.StatusContinue {
		s.end(st)
		return st
	}

	s.state = StatePlaying
	s.logger.Info("session started", "nickname", s.Nickname, "lives", s.board.Lives)
	return game.StatusContinue
}

// loadLevel replaces the world with level n. Caller must hold s.mu.
func (s *Session) loadLevel(n int) game.Status {
	grid, err := s.opts.Levels.Load(n)
	if err != nil {
		if errors.Is(err, level.ErrNotFound) && n > 1 {
			s.logger.Info("no more levels", "level", n)
			return game.StatusAllLevelsDone
		}
		s.logger.Error("level load failed", "level", n, "error", err)
		return game.StatusLoadError
	}

	world, err := game.NewWorldFromGrid(grid, game.Options{
		Board:  &s.board,
		Input:  &s.queue,
		Sink:   s.opts.Sink,
		Rand:   s.rng,
		Rules:  s.opts.Rules,
		Logger: s.logger,
	})
	if err != nil {
		s.logger.Error("level populate failed", "level", n, "error", err)
		return game.StatusLoadError
	}

	s.board.Level = n
	s.world = world
	s.queue.Clear()
	s.logger.Debug("level loaded", "level", n, "actors", len(world.Actors()))
	return game.StatusContinue
}

// end moves the session to its final state. Caller must hold s.mu.
func (s *Session) end(result game.Status) {
	s.state = StateEnded
	s.result = result
	s.logger.Info("session ended", "result", result.String(), "score", s.board.Score, "level", s.board.Level)
}

// Step runs one tick and applies its outcome: a death reloads the current
// level while lives remain, a finished level advances to the next one.
func (s *Session) Step() game.Status {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StatePlaying {
		return s.result
	}

	status := s.world.Tick()
	s.lastEvents = append(s.lastEvents[:0], s.world.Events()...)

	switch status {
	case game.StatusPlayerDied:
		if s.board.Lives <= 0 {
			s.end(game.StatusPlayerDied)
			return status
		}
		s.logger.Info("player died", "lives", s.board.Lives, "level", s.board.Level)
		if st := s.loadLevel(s.board.Level); st != game.StatusContinue {
			s.end(st)
			return st
		}
	case game.StatusLevelFinished:
		s.logger.Info("level finished", "level", s.board.Level, "score", s.board.Score)
		if st := s.loadLevel(s.board.Level + 1); st != game.StatusContinue {
			s.end(st)
			return st
		}
	}
	return status
}

// Enqueue queues a player command for a later tick.
func (s *Session) Enqueue(cmd game.Command) error {
	if s.State() != StatePlaying {
		return ErrNotRunning
	}
	if !s.queue.Push(cmd) {
		return ErrQueueFull
	}
	return nil
}

// Run ticks the session until the run ends, Stop is called or ctx is done.
// It then announces game over and saves the run record.
func (s *Session) Run(ctx context.Context) {
	ticker := time.NewTicker(s.opts.TickInterval)
	defer ticker.Stop()
	defer s.finish(ctx)

	for {
		select {
		case <-ctx.Done():
			s.abandon()
			return
		case <-s.stopCh:
			return
		case <-ticker.C:
			s.Step()
			s.publish()
			if s.Over() {
				return
			}
		}
	}
}

// StartLoop runs the session in its own goroutine.
func (s *Session) StartLoop(ctx context.Context) {
	go s.Run(ctx)
}

// Stop abandons a running session and ends its loop.
func (s *Session) Stop() {
	s.abandon()
	s.stopOnce.Do(func() { close(s.stopCh) })
}

func (s *Session) abandon() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == StateEnded {
		return
	}
	s.abandoned = true
	s.end(s.result)
}

// Frame returns the current world state, carrying the events of the last tick
// even when that tick replaced the world.
func (s *Session) Frame() game.Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.frame()
}

// frame builds a snapshot. Caller must hold s.mu.
func (s *Session) frame() game.Snapshot {
	if s.world == nil {
		return game.Snapshot{Board: s.board}
	}
	snap := s.world.Snapshot()
	snap.Events = nil
	if len(s.lastEvents) > 0 {
		snap.Events = append([]game.Event(nil), s.lastEvents...)
	}
	return snap
}

type gameStateMessage struct {
	Code string `json:"code"`
	game.Snapshot
}

type gameOverMessage struct {
	Code    string         `json:"code"`
	RunID   string         `json:"run_id"`
	Outcome record.Outcome `json:"outcome"`
	Score   int            `json:"score"`
	Level   int            `json:"level"`
}

func (s *Session) publish() {
	frame := s.Frame()
	if s.OnFrame != nil {
		s.OnFrame(frame)
	}

	msg, err := ws.NewMessage(ws.TypeGameState, gameStateMessage{Code: s.Code, Snapshot: frame})
	if err != nil {
		s.logger.Error("failed to encode game state", "error", err)
		return
	}
	s.Broadcast(msg)
}

// finish announces the end of the run and persists its record.
func (s *Session) finish(ctx context.Context) {
	s.mu.Lock()
	rec := record.NewRecord(s.Nickname, s.board.Score, s.board.Level, s.outcome())
	rec.ID = s.RunID
	s.final = rec
	s.mu.Unlock()

	msg, _ := ws.NewMessage(ws.TypeGameOver, gameOverMessage{
		Code:    s.Code,
		RunID:   s.RunID,
		Outcome: rec.Outcome,
		Score:   rec.Score,
		Level:   rec.Level,
	})
	s.Broadcast(msg)

	if s.opts.Store == nil {
		return
	}
	saveCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), saveTimeout)
	defer cancel()
	if err := s.opts.Store.Save(saveCtx, rec); err != nil {
		s.logger.Error("failed to save run record", "error", err)
		return
	}
	s.logger.Info("run record saved", "score", rec.Score, "outcome", rec.Outcome)
}

// outcome maps the end state to a record outcome. Caller must hold s.mu.
func (s *Session) outcome() record.Outcome {
	if s.abandoned {
		return record.OutcomeAbandoned
	}
	switch s.result {
	case game.StatusAllLevelsDone:
		return record.OutcomeAllLevelsDone
	case game.StatusLoadError:
		return record.OutcomeLoadError
	default:
		return record.OutcomeGameOver
	}
}

// State returns the lifecycle state.
func (s *Session) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Over reports whether the run has ended.
func (s *Session) Over() bool {
	return s.State() == StateEnded
}

// Result returns the status that ended the run.
func (s *Session) Result() game.Status {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.result
}

// Board returns a copy of the scoreboard.
func (s *Session) Board() game.Scoreboard {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.board
}

// Record returns the run record once Run has returned, or nil.
func (s *Session) Record() *record.Record {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.final
}

// Attach adds a client. The first owner attached controls the player;
// everyone else spectates.
func (s *Session) Attach(client *ws.Client, owner bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.clients[client.ID] = client
	if owner && s.ownerID == "" {
		s.ownerID = client.ID
	}
}

// Detach removes a client and reports whether it was the owner.
func (s *Session) Detach(clientID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.clients, clientID)
	if s.ownerID == clientID {
		s.ownerID = ""
		return true
	}
	return false
}

// IsOwner reports whether clientID controls the player.
func (s *Session) IsOwner(clientID string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.ownerID != "" && s.ownerID == clientID
}

// ClientCount returns the number of attached clients.
func (s *Session) ClientCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.clients)
}

// Broadcast sends a message to every attached client.
func (s *Session) Broadcast(msg ws.Message) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, client := range s.clients {
		client.SendMessage(msg)
	}
}

// Info is the lobby view of a session.
type Info struct {
	Code       string          `json:"code"`
	RunID      string          `json:"run_id"`
	Nickname   string          `json:"nickname"`
	State      State           `json:"state"`
	Board      game.Scoreboard `json:"board"`
	Spectators int             `json:"spectators"`
}

// Info returns the lobby view.
func (s *Session) Info() Info {
	s.mu.RLock()
	defer s.mu.RUnlock()

	spectators := len(s.clients)
	if s.ownerID != "" {
		spectators--
	}
	return Info{
		Code:       s.Code,
		RunID:      s.RunID,
		Nickname:   s.Nickname,
		State:      s.state,
		Board:      s.board,
		Spectators: spectators,
	}
}
