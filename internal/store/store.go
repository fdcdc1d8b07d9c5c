package store

import (
	"context"

	"github.com/ugaemi/zombiedash/internal/record"
)

// DefaultTopLimit caps leaderboard queries that pass a non-positive limit.
const DefaultTopLimit = 10

// ScoreStore defines the interface for persistent run records.
type ScoreStore interface {
	// Save inserts a finished run.
	Save(ctx context.Context, rec *record.Record) error
	// FindByID looks up a run by ID. It returns nil, nil when there is none.
	FindByID(ctx context.Context, id string) (*record.Record, error)
	// Top returns the highest scoring runs, best first.
	Top(ctx context.Context, limit int) ([]*record.Record, error)
	// Close releases database resources.
	Close() error
}

func normalizeLimit(limit int) int {
	if limit <= 0 {
		return DefaultTopLimit
	}
	return limit
}

// Open picks a backend: Postgres when databaseURL is set, otherwise SQLite
// when sqlitePath is set. With neither it returns nil, nil and runs are not
// persisted.
func Open(ctx context.Context, databaseURL, sqlitePath string) (ScoreStore, error) {
	switch {
	case databaseURL != "":
		s, err := NewPostgresStore(ctx, databaseURL)
		if err != nil {
			return nil, err
		}
		return s, nil
	case sqlitePath != "":
		s, err := NewSQLiteStore(ctx, sqlitePath)
		if err != nil {
			return nil, err
		}
		return s, nil
	default:
		return nil, nil
	}
}
