package record

import (
	"time"

	"github.com/google/uuid"
)

// Outcome names how a run ended.
type Outcome string

const (
	OutcomeGameOver      Outcome = "game_over"
	OutcomeAllLevelsDone Outcome = "all_levels_done"
	OutcomeLoadError     Outcome = "load_error"
	OutcomeAbandoned     Outcome = "abandoned"
)

// Record is the persisted result of one finished run.
type Record struct {
	ID        string    `json:"id"`
	Nickname  string    `json:"nickname"`
	Score     int       `json:"score"`
	Level     int       `json:"level"`
	Outcome   Outcome   `json:"outcome"`
	CreatedAt time.Time `json:"created_at"`
}

// NewRecord creates a record for a run that has just ended.
func NewRecord(nickname string, score, level int, outcome Outcome) *Record {
	return &Record{
		ID:        uuid.New().String(),
		Nickname:  nickname,
		Score:     score,
		Level:     level,
		Outcome:   outcome,
		CreatedAt: time.Now().UTC(),
	}
}

// Completed reports whether the run cleared every level.
func (r *Record) Completed() bool {
	return r.Outcome == OutcomeAllLevelsDone
}
