// Package pipeline parses stored hand histories in bulk: it reads each raw
// hand, folds in its tournament summary when one is stored, and writes the
// record to a sink.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/coder/quartz"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/lox/pkrhistory/internal/parser"
	"github.com/lox/pkrhistory/internal/phh"
	"github.com/lox/pkrhistory/internal/record"
	"github.com/lox/pkrhistory/internal/storage"
)

// DefaultWorkers is the concurrency used when Runner.Workers is not set.
const DefaultWorkers = 10

// Failure is one key that could not be processed.
type Failure struct {
	Key string
	Err error
}

// Report summarizes a batch run.
type Report struct {
	RunID     string
	Keys      int
	Processed int
	Skipped   int
	Failures  []Failure
	Duration  time.Duration
}

// Runner processes history keys from Source into Sink.
type Runner struct {
	Source  storage.Source
	Sink    storage.Sink
	Parser  *parser.Parser
	Workers int
	// ExportPHH also writes a PHH rendition of each hand under its PHH key
	// when the sink accepts raw texts.
	ExportPHH bool
	// Force reprocesses keys whose record already exists.
	Force  bool
	Logger zerolog.Logger
	Clock  quartz.Clock

	mu        sync.Mutex
	summaries map[string]*record.Summary
}

func (r *Runner) clock() quartz.Clock {
	if r.Clock == nil {
		return quartz.NewReal()
	}
	return r.Clock
}

// summary returns the parsed summary stored under key, or nil when there is
// none. Results, including absence, are cached for the runner's lifetime.
func (r *Runner) summary(ctx context.Context, key string) (*record.Summary, error) {
	r.mu.Lock()
	cached, ok := r.summaries[key]
	r.mu.Unlock()
	if ok {
		return cached, nil
	}

	text, err := r.Source.GetText(ctx, key)
	switch {
	case errors.Is(err, storage.ErrNotFound):
		cached = nil
	case err != nil:
		return nil, fmt.Errorf("get summary %s: %w", key, err)
	default:
		cached, err = r.Parser.ParseSummary(text)
		if err != nil {
			return nil, fmt.Errorf("parse summary %s: %w", key, err)
		}
	}

	r.mu.Lock()
	if r.summaries == nil {
		r.summaries = make(map[string]*record.Summary)
	}
	r.summaries[key] = cached
	r.mu.Unlock()
	return cached, nil
}

// ProcessKey parses the hand stored under key, merges its tournament summary
// when one exists and stores the result under the destination key. A
// missing summary is not an error: the hand is stored unmerged.
func (r *Runner) ProcessKey(ctx context.Context, key string) error {
	log := r.Logger.With().Str("key", key).Logger()

	text, err := r.Source.GetText(ctx, key)
	if err != nil {
		return fmt.Errorf("get hand: %w", err)
	}
	hand, err := r.Parser.ParseHand(text)
	if err != nil {
		return fmt.Errorf("parse hand: %w", err)
	}

	if hand.GameType != record.GameCash {
		summaryKey := storage.SummaryKey(key)
		summary, err := r.summary(ctx, summaryKey)
		if err != nil {
			return err
		}
		if summary == nil {
			log.Warn().Str("summary_key", summaryKey).Msg("No tournament summary, storing hand unmerged")
		} else {
			merged := parser.Merge(*hand, *summary)
			hand = &merged
		}
	}

	if err := r.Sink.PutRecord(ctx, storage.DestinationKey(key), hand); err != nil {
		return fmt.Errorf("put record: %w", err)
	}

	if r.ExportPHH {
		if w, ok := r.Sink.(storage.TextWriter); ok {
			data, err := phh.EncodeToBytes(phh.FromHand(hand))
			if err != nil {
				return fmt.Errorf("encode phh: %w", err)
			}
			if err := w.PutText(ctx, storage.PHHKey(key), string(data)); err != nil {
				return fmt.Errorf("put phh: %w", err)
			}
		}
	}

	log.Debug().Str("hand_id", hand.HandID).Msg("Hand stored")
	return nil
}

// skip reports whether the record for key is already stored.
func (r *Runner) skip(ctx context.Context, key string) (bool, error) {
	if r.Force {
		return false, nil
	}
	checker, ok := r.Sink.(storage.Checker)
	if !ok {
		return false, nil
	}
	return checker.Exists(ctx, storage.DestinationKey(key))
}

// Run processes keys with at most Workers running at once. Per-key failures
// are collected in the report and never stop the batch; only cancellation of
// ctx does, in which case the partial report is returned with ctx's error.
func (r *Runner) Run(ctx context.Context, keys []string) (Report, error) {
	clock := r.clock()
	start := clock.Now()
	report := Report{RunID: uuid.NewString(), Keys: len(keys)}
	log := r.Logger.With().Str("run_id", report.RunID).Logger()

	workers := r.Workers
	if workers <= 0 {
		workers = DefaultWorkers
	}
	log.Info().Int("keys", len(keys)).Int("workers", workers).Msg("Starting batch")

	var mu sync.Mutex
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for _, key := range keys {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			skip, err := r.skip(gctx, key)
			if err == nil && !skip {
				err = r.ProcessKey(gctx, key)
			}

			mu.Lock()
			defer mu.Unlock()
			switch {
			case err != nil && ctx.Err() != nil:
				return ctx.Err()
			case err != nil:
				report.Failures = append(report.Failures, Failure{Key: key, Err: err})
				log.Error().Err(err).Str("key", key).Msg("Failed to process hand")
			case skip:
				report.Skipped++
			default:
				report.Processed++
			}
			return nil
		})
	}

	err := g.Wait()
	if err == nil {
		err = ctx.Err()
	}
	report.Duration = clock.Since(start)

	log.Info().
		Int("processed", report.Processed).
		Int("skipped", report.Skipped).
		Int("failed", len(report.Failures)).
		Dur("duration", report.Duration).
		Msg("Batch finished")
	return report, err
}

// RunPrefix lists the history keys under prefix and runs them.
func (r *Runner) RunPrefix(ctx context.Context, prefix string) (Report, error) {
	all, err := r.Source.List(ctx, prefix)
	if err != nil {
		return Report{}, err
	}
	keys := make([]string, 0, len(all))
	for _, key := range all {
		if storage.IsHistoryKey(key) {
			keys = append(keys, key)
		}
	}
	return r.Run(ctx, keys)
}
