package main

import (
	"context"
	"fmt"
	"io"

	"github.com/coder/quartz"

	"github.com/lox/pkrhistory/cmd/pkrhistory/shared"
	"github.com/lox/pkrhistory/internal/parser"
	"github.com/lox/pkrhistory/internal/pipeline"
	"github.com/lox/pkrhistory/internal/storage"
)

// BatchCmd runs the parsing pipeline over every stored history under a
// prefix.
type BatchCmd struct {
	Prefix  string `help:"Key prefix holding split hand histories" default:"histories/split"`
	Workers int    `help:"Number of hands parsed concurrently (0 = config)"`
	PHH     bool   `name:"phh" help:"Also export each hand in PHH format"`
	Force   bool   `help:"Reparse hands whose record already exists"`
}

func (cmd *BatchCmd) Run(g *Globals, out io.Writer) error {
	logger := g.Logger()
	cfg, err := g.LoadConfig()
	if err != nil {
		return err
	}

	ctx, cancel := shared.SignalContext(context.Background(), logger)
	defer cancel()

	clock := quartz.NewReal()
	backend, err := storage.Open(ctx, cfg.StorageOptions(), clock, logger)
	if err != nil {
		return fmt.Errorf("open storage: %w", err)
	}
	defer backend.Close()

	workers := cmd.Workers
	if workers <= 0 {
		workers = cfg.Workers
	}

	runner := &pipeline.Runner{
		Source:    backend.Source,
		Sink:      backend.Sink,
		Parser:    parser.New(parser.Config{Hero: cfg.Hero}, logger),
		Workers:   workers,
		ExportPHH: cmd.PHH,
		Force:     cmd.Force,
		Logger:    logger,
		Clock:     clock,
	}

	report, runErr := runner.RunPrefix(ctx, cmd.Prefix)
	if _, err := fmt.Fprintln(out, renderReport(report)); err != nil {
		return err
	}
	if runErr != nil {
		return runErr
	}
	if n := len(report.Failures); n > 0 {
		return fmt.Errorf("%d of %d hands failed", n, report.Keys)
	}
	return nil
}
