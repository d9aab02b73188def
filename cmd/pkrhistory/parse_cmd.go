package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"

	"github.com/lox/pkrhistory/internal/parser"
	"github.com/lox/pkrhistory/internal/phh"
	"github.com/lox/pkrhistory/internal/record"
)

// ParseHandCmd parses every hand of a history file.
type ParseHandCmd struct {
	File    string `arg:"" help:"Hand history file" type:"existingfile"`
	Summary string `help:"Tournament summary to merge into each hand" type:"existingfile"`
	Hero    string `help:"Account the history belongs to (overrides config)"`
	Format  string `help:"Output format" enum:"json,phh" default:"json"`
}

func (cmd *ParseHandCmd) Run(g *Globals, out io.Writer) error {
	logger := g.Logger()
	cfg, err := g.LoadConfig()
	if err != nil {
		return err
	}
	hero := cfg.Hero
	if cmd.Hero != "" {
		hero = cmd.Hero
	}
	return cmd.run(parser.New(parser.Config{Hero: hero}, logger), logger, out)
}

func (cmd *ParseHandCmd) run(p *parser.Parser, logger zerolog.Logger, out io.Writer) error {
	text, err := os.ReadFile(cmd.File)
	if err != nil {
		return err
	}

	hands, err := p.ParseHands(string(text))
	if err != nil {
		logger.Warn().Err(err).Str("file", cmd.File).Msg("Some hands could not be parsed")
	}
	if len(hands) == 0 {
		return fmt.Errorf("no hands parsed from %s", cmd.File)
	}

	if cmd.Summary != "" {
		summaryText, err := os.ReadFile(cmd.Summary)
		if err != nil {
			return err
		}
		summary, err := p.ParseSummary(string(summaryText))
		if err != nil {
			return fmt.Errorf("parse summary %s: %w", cmd.Summary, err)
		}
		for i, hand := range hands {
			if hand.GameType == record.GameCash {
				continue
			}
			merged := parser.Merge(*hand, *summary)
			hands[i] = &merged
		}
	}

	if cmd.Format == "phh" {
		return writePHH(out, hands)
	}
	if len(hands) == 1 {
		return writeJSON(out, hands[0])
	}
	return writeJSON(out, hands)
}

// ParseSummaryCmd parses every summary of a summary file.
type ParseSummaryCmd struct {
	File string `arg:"" help:"Tournament summary file" type:"existingfile"`
}

func (cmd *ParseSummaryCmd) Run(g *Globals, out io.Writer) error {
	logger := g.Logger()
	return cmd.run(parser.New(parser.Config{}, logger), logger, out)
}

func (cmd *ParseSummaryCmd) run(p *parser.Parser, logger zerolog.Logger, out io.Writer) error {
	text, err := os.ReadFile(cmd.File)
	if err != nil {
		return err
	}
	summaries, err := p.ParseSummaries(string(text))
	if len(summaries) == 0 {
		if err != nil {
			return err
		}
		return fmt.Errorf("no summaries found in %s", cmd.File)
	}
	if err != nil {
		logger.Warn().Err(err).Str("file", cmd.File).Msg("Some summaries could not be parsed")
	}
	if len(summaries) == 1 {
		return writeJSON(out, summaries[0])
	}
	return writeJSON(out, summaries)
}

func writeJSON(out io.Writer, v any) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// writePHH writes hands one after another, separated by a comment line.
func writePHH(out io.Writer, hands []*record.Hand) error {
	for i, hand := range hands {
		if i > 0 {
			if _, err := fmt.Fprintf(out, "\n# ─── hand %d ───\n", i+1); err != nil {
				return err
			}
		}
		if err := phh.Encode(out, phh.FromHand(hand)); err != nil {
			return fmt.Errorf("encode hand %s: %w", hand.HandID, err)
		}
	}
	return nil
}
