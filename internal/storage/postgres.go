package storage

import (
	"context"
	"fmt"

	"github.com/coder/quartz"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/lox/pkrhistory/internal/record"
)

const createPostgresHandsTableSQL = `
	CREATE TABLE IF NOT EXISTS parsed_hands (
		key TEXT PRIMARY KEY,
		hand_id TEXT NOT NULL,
		tournament_id TEXT,
		body JSONB NOT NULL,
		stored_at TIMESTAMPTZ NOT NULL
	);
	CREATE INDEX IF NOT EXISTS parsed_hands_tournament_idx ON parsed_hands (tournament_id);
	CREATE INDEX IF NOT EXISTS parsed_hands_hand_idx ON parsed_hands (hand_id);
`

const upsertPostgresHandSQL = `
	INSERT INTO parsed_hands (key, hand_id, tournament_id, body, stored_at)
	VALUES ($1, $2, NULLIF($3, ''), $4, $5)
	ON CONFLICT (key) DO UPDATE SET
		hand_id = EXCLUDED.hand_id,
		tournament_id = EXCLUDED.tournament_id,
		body = EXCLUDED.body,
		stored_at = EXCLUDED.stored_at
`

// PostgresSink stores parsed records in a parsed_hands table with a JSONB
// body, upserting by key.
type PostgresSink struct {
	pool  *pgxpool.Pool
	clock quartz.Clock
}

// NewPostgresSink connects to connStr, checks the connection and creates the
// table if needed.
func NewPostgresSink(ctx context.Context, connStr string, clock quartz.Clock) (*PostgresSink, error) {
	pool, err := pgxpool.New(ctx, connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if _, err := pool.Exec(ctx, createPostgresHandsTableSQL); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to create parsed_hands table: %w", err)
	}

	return &PostgresSink{pool: pool, clock: clock}, nil
}

// Close releases the pool.
func (s *PostgresSink) Close() error {
	s.pool.Close()
	return nil
}

// upsertArgs returns the statement arguments for storing hand under key.
func (s *PostgresSink) upsertArgs(key string, hand *record.Hand) ([]any, error) {
	data, err := encodeRecord(hand)
	if err != nil {
		return nil, err
	}
	return []any{key, hand.HandID, tournamentID(hand), string(data), s.clock.Now().UTC()}, nil
}

func (s *PostgresSink) PutRecord(ctx context.Context, key string, hand *record.Hand) error {
	args, err := s.upsertArgs(key, hand)
	if err != nil {
		return err
	}
	if _, err := s.pool.Exec(ctx, upsertPostgresHandSQL, args...); err != nil {
		return fmt.Errorf("put %s: %w", key, err)
	}
	return nil
}

func (s *PostgresSink) Exists(ctx context.Context, key string) (bool, error) {
	var exists bool
	err := s.pool.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM parsed_hands WHERE key = $1)`, key).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("exists %s: %w", key, err)
	}
	return exists, nil
}
