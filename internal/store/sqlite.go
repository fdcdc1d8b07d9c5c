package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/ugaemi/zombiedash/internal/record"

	_ "modernc.org/sqlite"
)

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS runs (
    id TEXT PRIMARY KEY,
    nickname TEXT NOT NULL DEFAULT '',
    score INTEGER NOT NULL,
    level INTEGER NOT NULL,
    outcome TEXT NOT NULL,
    created_at TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_runs_score ON runs(score DESC);
`

// SQLiteStore implements ScoreStore on a local SQLite file.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore opens (creating if needed) the database at path and
// initializes the schema.
func NewSQLiteStore(ctx context.Context, path string) (*SQLiteStore, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	// A single connection serializes writers.
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}

	if _, err := db.ExecContext(ctx, sqliteSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// Save inserts a finished run.
func (s *SQLiteStore) Save(ctx context.Context, rec *record.Record) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO runs (id, nickname, score, level, outcome, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		rec.ID, rec.Nickname, rec.Score, rec.Level, string(rec.Outcome), rec.CreatedAt.UTC().Format(time.RFC3339Nano))
	return err
}

// FindByID looks up a run by ID.
func (s *SQLiteStore) FindByID(ctx context.Context, id string) (*record.Record, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, nickname, score, level, outcome, created_at
		 FROM runs WHERE id = ?`, id)

	rec, err := scanSQLRecord(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	return rec, err
}

// Top returns the highest scoring runs. Ties go to the earlier run.
func (s *SQLiteStore) Top(ctx context.Context, limit int) ([]*record.Record, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, nickname, score, level, outcome, created_at
		 FROM runs ORDER BY score DESC, created_at ASC LIMIT ?`, normalizeLimit(limit))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var recs []*record.Record
	for rows.Next() {
		rec, err := scanSQLRecord(rows)
		if err != nil {
			return nil, err
		}
		recs = append(recs, rec)
	}
	return recs, rows.Err()
}

// Close releases database resources.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

type sqlScanner interface {
	Scan(dest ...any) error
}

func scanSQLRecord(row sqlScanner) (*record.Record, error) {
	var rec record.Record
	var outcome string
	var created string
	err := row.Scan(&rec.ID, &rec.Nickname, &rec.Score, &rec.Level, &outcome, &created)
	if err != nil {
		return nil, err
	}
	rec.Outcome = record.Outcome(outcome)
	rec.CreatedAt, err = time.Parse(time.RFC3339Nano, created)
	if err != nil {
		return nil, fmt.Errorf("parse created_at %q: %w", created, err)
	}
	return &rec, nil
}
