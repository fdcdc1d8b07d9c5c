package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/ugaemi/zombiedash/internal/record"
)

const postgresSchema = `
CREATE TABLE IF NOT EXISTS runs (
    id TEXT PRIMARY KEY,
    nickname TEXT NOT NULL DEFAULT '',
    score INTEGER NOT NULL,
    level INTEGER NOT NULL,
    outcome TEXT NOT NULL,
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
CREATE INDEX IF NOT EXISTS idx_runs_score ON runs(score DESC);
`

// PostgresStore implements ScoreStore using PostgreSQL.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore connects to PostgreSQL and initializes the schema.
func NewPostgresStore(ctx context.Context, databaseURL string) (*PostgresStore, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("connect postgres: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}

	if _, err := pool.Exec(ctx, postgresSchema); err != nil {
		pool.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}

	return &PostgresStore{pool: pool}, nil
}

// Save inserts a finished run.
func (s *PostgresStore) Save(ctx context.Context, rec *record.Record) error {
	_, err := s.pool.Exec(ctx,
		`INSERT INTO runs (id, nickname, score, level, outcome, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		rec.ID, rec.Nickname, rec.Score, rec.Level, string(rec.Outcome), rec.CreatedAt)
	return err
}

// FindByID looks up a run by ID.
func (s *PostgresStore) FindByID(ctx context.Context, id string) (*record.Record, error) {
	row := s.pool.QueryRow(ctx,
		`SELECT id, nickname, score, level, outcome, created_at
		 FROM runs WHERE id = $1`, id)

	rec, err := scanRecord(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	return rec, err
}

// Top returns the highest scoring runs. Ties go to the earlier run.
func (s *PostgresStore) Top(ctx context.Context, limit int) ([]*record.Record, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT id, nickname, score, level, outcome, created_at
		 FROM runs ORDER BY score DESC, created_at ASC LIMIT $1`, normalizeLimit(limit))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var recs []*record.Record
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		recs = append(recs, rec)
	}
	return recs, rows.Err()
}

// Close releases database resources.
func (s *PostgresStore) Close() error {
	s.pool.Close()
	return nil
}

func scanRecord(row pgx.Row) (*record.Record, error) {
	var rec record.Record
	var outcome string
	err := row.Scan(&rec.ID, &rec.Nickname, &rec.Score, &rec.Level, &outcome, &rec.CreatedAt)
	if err != nil {
		return nil, err
	}
	rec.Outcome = record.Outcome(outcome)
	return &rec, nil
}
