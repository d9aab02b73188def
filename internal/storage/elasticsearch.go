package storage

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/coder/quartz"
	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"

	"github.com/lox/pkrhistory/internal/record"
)

// DefaultIndex is the index hands are written to when none is configured.
const DefaultIndex = "pkrhistory_hands"

const handIndexMapping = `{
	"mappings": {
		"properties": {
			"key": {"type": "keyword"},
			"stored_at": {"type": "date"},
			"hand_id": {"type": "keyword"},
			"game_type": {"type": "keyword"},
			"datetime": {"type": "date", "format": "dd-MM-yyyy HH:mm:ss"},
			"players": {"type": "object", "enabled": false},
			"showdown": {"type": "object", "enabled": false},
			"winners": {"type": "object", "enabled": false}
		}
	}
}`

// ElasticsearchSink indexes parsed records, one document per hand with the
// hand id as document id.
type ElasticsearchSink struct {
	client *elasticsearch.Client
	index  string
	clock  quartz.Clock
}

// handDocument is the indexed form of a hand: the record plus its storage
// key and indexing time.
type handDocument struct {
	Key      string    `json:"key"`
	StoredAt time.Time `json:"stored_at"`
	*record.Hand
}

// NewElasticsearchSink creates a client for url and makes sure the index
// exists.
func NewElasticsearchSink(ctx context.Context, url, index string, clock quartz.Clock) (*ElasticsearchSink, error) {
	client, err := elasticsearch.NewClient(elasticsearch.Config{Addresses: []string{url}})
	if err != nil {
		return nil, fmt.Errorf("error creating Elasticsearch client: %w", err)
	}
	if index == "" {
		index = DefaultIndex
	}

	sink := &ElasticsearchSink{client: client, index: index, clock: clock}
	if err := sink.ensureIndex(ctx); err != nil {
		return nil, err
	}
	return sink, nil
}

func (s *ElasticsearchSink) ensureIndex(ctx context.Context) error {
	exists := esapi.IndicesExistsRequest{Index: []string{s.index}}
	res, err := exists.Do(ctx, s.client)
	if err != nil {
		return fmt.Errorf("error checking index %s: %w", s.index, err)
	}
	res.Body.Close()
	if res.StatusCode == 200 {
		return nil
	}

	req := esapi.IndicesCreateRequest{
		Index: s.index,
		Body:  strings.NewReader(handIndexMapping),
	}
	res, err = req.Do(ctx, s.client)
	if err != nil {
		return fmt.Errorf("error creating index %s: %w", s.index, err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return fmt.Errorf("error creating index %s: %s", s.index, res.String())
	}
	return nil
}

// document builds the JSON body indexed for hand.
func (s *ElasticsearchSink) document(key string, hand *record.Hand) ([]byte, error) {
	if hand == nil {
		return nil, fmt.Errorf("storage: nil hand record")
	}
	return json.Marshal(handDocument{Key: key, StoredAt: s.clock.Now().UTC(), Hand: hand})
}

func (s *ElasticsearchSink) PutRecord(ctx context.Context, key string, hand *record.Hand) error {
	body, err := s.document(key, hand)
	if err != nil {
		return err
	}

	req := esapi.IndexRequest{
		Index:      s.index,
		DocumentID: hand.HandID,
		Body:       bytes.NewReader(body),
	}
	res, err := req.Do(ctx, s.client)
	if err != nil {
		return fmt.Errorf("error indexing hand %s: %w", hand.HandID, err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return fmt.Errorf("error indexing hand %s: %s", hand.HandID, res.String())
	}
	return nil
}
