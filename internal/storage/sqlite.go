package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/coder/quartz"
	_ "github.com/mattn/go-sqlite3"

	"github.com/lox/pkrhistory/internal/record"
)

const (
	createRawTextsTableSQL = `
	CREATE TABLE IF NOT EXISTS raw_texts (
		key TEXT PRIMARY KEY,
		body TEXT NOT NULL,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	)`

	createParsedHandsTableSQL = `
	CREATE TABLE IF NOT EXISTS parsed_hands (
		key TEXT PRIMARY KEY,
		hand_id TEXT NOT NULL,
		tournament_id TEXT,
		body TEXT NOT NULL,  -- JSON hand record
		stored_at TEXT NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_parsed_hands_tournament ON parsed_hands(tournament_id)`
)

// SQLiteStore keeps raw texts and parsed records in a single SQLite file.
type SQLiteStore struct {
	db    *sql.DB
	clock quartz.Clock
}

// NewSQLiteStore opens (creating if needed) the database at dbPath. Record
// timestamps are taken from clock.
func NewSQLiteStore(dbPath string, clock quartz.Clock) (*SQLiteStore, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("error creating database directory: %w", err)
	}

	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("error opening database: %w", err)
	}
	// SQLite allows one writer at a time.
	db.SetMaxOpenConns(1)

	for _, stmt := range []string{createRawTextsTableSQL, createParsedHandsTableSQL} {
		if _, err := db.Exec(stmt); err != nil {
			db.Close()
			return nil, fmt.Errorf("error creating tables: %w", err)
		}
	}

	return &SQLiteStore{db: db, clock: clock}, nil
}

// Close closes the database.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) GetText(ctx context.Context, key string) (string, error) {
	var body string
	err := s.db.QueryRowContext(ctx, `SELECT body FROM raw_texts WHERE key = ?`, key).Scan(&body)
	if errors.Is(err, sql.ErrNoRows) {
		return "", fmt.Errorf("%s: %w", key, ErrNotFound)
	}
	if err != nil {
		return "", fmt.Errorf("get %s: %w", key, err)
	}
	return body, nil
}

func (s *SQLiteStore) List(ctx context.Context, prefix string) ([]string, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT key FROM raw_texts WHERE substr(key, 1, length(?)) = ? ORDER BY key`, prefix, prefix)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", prefix, err)
	}
	defer rows.Close()

	var keys []string
	for rows.Next() {
		var key string
		if err := rows.Scan(&key); err != nil {
			return nil, err
		}
		keys = append(keys, key)
	}
	return keys, rows.Err()
}

func (s *SQLiteStore) PutText(ctx context.Context, key, text string) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO raw_texts (key, body) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET body = excluded.body`, key, text)
	return err
}

func (s *SQLiteStore) PutRecord(ctx context.Context, key string, hand *record.Hand) error {
	data, err := encodeRecord(hand)
	if err != nil {
		return err
	}
	storedAt := s.clock.Now().UTC().Format(time.RFC3339Nano)

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO parsed_hands (key, hand_id, tournament_id, body, stored_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET
			hand_id = excluded.hand_id,
			tournament_id = excluded.tournament_id,
			body = excluded.body,
			stored_at = excluded.stored_at`,
		key, hand.HandID, tournamentID(hand), string(data), storedAt)
	if err != nil {
		return fmt.Errorf("put %s: %w", key, err)
	}
	return nil
}

func (s *SQLiteStore) Exists(ctx context.Context, key string) (bool, error) {
	var exists bool
	err := s.db.QueryRowContext(ctx, `SELECT EXISTS(SELECT 1 FROM parsed_hands WHERE key = ?)`, key).Scan(&exists)
	return exists, err
}

// GetRecord loads a stored record and the time it was stored.
func (s *SQLiteStore) GetRecord(ctx context.Context, key string) (*record.Hand, time.Time, error) {
	var body, storedAt string
	err := s.db.QueryRowContext(ctx,
		`SELECT body, stored_at FROM parsed_hands WHERE key = ?`, key).Scan(&body, &storedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, time.Time{}, fmt.Errorf("%s: %w", key, ErrNotFound)
	}
	if err != nil {
		return nil, time.Time{}, err
	}

	var hand record.Hand
	if err := json.Unmarshal([]byte(body), &hand); err != nil {
		return nil, time.Time{}, fmt.Errorf("decode %s: %w", key, err)
	}
	at, err := time.Parse(time.RFC3339Nano, storedAt)
	if err != nil {
		return nil, time.Time{}, fmt.Errorf("decode stored_at of %s: %w", key, err)
	}
	return &hand, at, nil
}

// CountByTournament returns how many parsed hands belong to a tournament.
func (s *SQLiteStore) CountByTournament(ctx context.Context, tournamentID string) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM parsed_hands WHERE tournament_id = ?`, tournamentID).Scan(&n)
	return n, err
}
