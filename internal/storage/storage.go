// Package storage moves raw history texts in and parsed hand records out.
//
// A Source serves raw texts by key, a Sink persists parsed records under
// their destination key. Keys are slash-separated paths in the layout
// described by DestinationKey and SummaryKey, whatever the backend.
package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/lox/pkrhistory/internal/record"
)

// ErrNotFound is returned by a Source when no text is stored under a key.
var ErrNotFound = errors.New("storage: not found")

// Source serves raw hand history and summary texts.
type Source interface {
	GetText(ctx context.Context, key string) (string, error)
	// List returns the keys under prefix in lexical order.
	List(ctx context.Context, prefix string) ([]string, error)
}

// Sink persists parsed hand records.
type Sink interface {
	PutRecord(ctx context.Context, key string, hand *record.Hand) error
}

// Checker is implemented by sinks that can report whether a record is
// already stored, so batches can skip it.
type Checker interface {
	Exists(ctx context.Context, key string) (bool, error)
}

// TextWriter is implemented by sources that also accept raw texts.
type TextWriter interface {
	PutText(ctx context.Context, key, text string) error
}

func encodeRecord(hand *record.Hand) ([]byte, error) {
	if hand == nil {
		return nil, errors.New("storage: nil hand record")
	}
	data, err := json.MarshalIndent(hand, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode hand %s: %w", hand.HandID, err)
	}
	return data, nil
}

// tournamentID returns the hand's tournament id, or "" for cash games.
func tournamentID(hand *record.Hand) string {
	if id := hand.TournamentInfo.TournamentID; id != nil {
		return *id
	}
	return ""
}
