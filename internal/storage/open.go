package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"

	"github.com/coder/quartz"
	"github.com/rs/zerolog"
)

// Backend names accepted by Open.
const (
	BackendFS            = "fs"
	BackendRedis         = "redis"
	BackendSQLite        = "sqlite"
	BackendPostgres      = "postgres"
	BackendElasticsearch = "elasticsearch"
)

// Options selects and configures a storage backend.
type Options struct {
	Backend string
	// DataDir holds raw texts for the file-backed source, and the default
	// SQLite database.
	DataDir string
	// URL is the Redis URL, Postgres DSN, Elasticsearch address or SQLite
	// path of the backend.
	URL   string
	Index string
}

// Backend pairs the source and sink of an opened configuration.
type Backend struct {
	Source  Source
	Sink    Sink
	closers []io.Closer
}

// Close releases every connection held by the backend.
func (b *Backend) Close() error {
	var errs []error
	for _, c := range b.closers {
		errs = append(errs, c.Close())
	}
	return errors.Join(errs...)
}

// Open connects the configured backend. Redis and SQLite serve both raw
// texts and records; Postgres and Elasticsearch only store records and read
// raw texts from DataDir.
func Open(ctx context.Context, opts Options, clock quartz.Clock, logger zerolog.Logger) (*Backend, error) {
	if clock == nil {
		clock = quartz.NewReal()
	}
	log := logger.With().Str("backend", opts.Backend).Logger()

	switch opts.Backend {
	case "", BackendFS:
		fs := NewFSStore(opts.DataDir)
		log.Debug().Str("data_dir", opts.DataDir).Msg("Using file storage")
		return &Backend{Source: fs, Sink: fs}, nil

	case BackendRedis:
		store, err := NewRedisStore(opts.URL)
		if err != nil {
			return nil, err
		}
		log.Debug().Msg("Connected to Redis")
		return &Backend{Source: store, Sink: store, closers: []io.Closer{store}}, nil

	case BackendSQLite:
		path := opts.URL
		if path == "" {
			path = filepath.Join(opts.DataDir, "pkrhistory.db")
		}
		store, err := NewSQLiteStore(path, clock)
		if err != nil {
			return nil, err
		}
		log.Debug().Str("path", path).Msg("Opened SQLite database")
		return &Backend{Source: store, Sink: store, closers: []io.Closer{store}}, nil

	case BackendPostgres:
		sink, err := NewPostgresSink(ctx, opts.URL, clock)
		if err != nil {
			return nil, err
		}
		log.Debug().Msg("Connected to Postgres")
		return &Backend{Source: NewFSStore(opts.DataDir), Sink: sink, closers: []io.Closer{sink}}, nil

	case BackendElasticsearch:
		sink, err := NewElasticsearchSink(ctx, opts.URL, opts.Index, clock)
		if err != nil {
			return nil, err
		}
		log.Debug().Str("index", sink.index).Msg("Connected to Elasticsearch")
		return &Backend{Source: NewFSStore(opts.DataDir), Sink: sink}, nil

	default:
		return nil, fmt.Errorf("storage: unknown backend %q", opts.Backend)
	}
}
