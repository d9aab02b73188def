package parser

import (
	"errors"
	"fmt"
	"strings"

	"github.com/lox/pkrhistory/internal/patterns"
	"github.com/lox/pkrhistory/internal/record"
)

// split cuts text at every match of p, keeping the match at the start of each
// chunk. Text before the first match is dropped, as are blank chunks.
func split(text string, p patterns.Pattern) []string {
	text = normalize(text)
	starts := p.Re.FindAllStringIndex(text, -1)
	chunks := make([]string, 0, len(starts))
	for i, loc := range starts {
		end := len(text)
		if i+1 < len(starts) {
			end = starts[i+1][0]
		}
		if chunk := strings.TrimSpace(text[loc[0]:end]); chunk != "" {
			chunks = append(chunks, chunk)
		}
	}
	return chunks
}

// SplitHands cuts a history file into its individual hands.
func SplitHands(text string) []string {
	return split(text, patterns.HandStart)
}

// SplitSummaries cuts a summary file into its individual summaries.
func SplitSummaries(text string) []string {
	return split(text, patterns.SummaryStart)
}

// ParseHands parses every hand of a history file. Hands that fail to parse
// are skipped and reported in the joined error; the others are returned.
func (p *Parser) ParseHands(text string) ([]*record.Hand, error) {
	chunks := SplitHands(text)
	hands := make([]*record.Hand, 0, len(chunks))
	var errs []error
	for i, chunk := range chunks {
		hand, err := p.ParseHand(chunk)
		if err != nil {
			errs = append(errs, fmt.Errorf("hand %d: %w", i+1, err))
			continue
		}
		hands = append(hands, hand)
	}
	return hands, errors.Join(errs...)
}

// ParseSummaries parses every summary of a summary file, with the same error
// policy as ParseHands.
func (p *Parser) ParseSummaries(text string) ([]*record.Summary, error) {
	chunks := SplitSummaries(text)
	summaries := make([]*record.Summary, 0, len(chunks))
	var errs []error
	for i, chunk := range chunks {
		s, err := p.ParseSummary(chunk)
		if err != nil {
			errs = append(errs, fmt.Errorf("summary %d: %w", i+1, err))
			continue
		}
		summaries = append(summaries, s)
	}
	return summaries, errors.Join(errs...)
}
