// Package parser turns Winamax hand histories and tournament summaries into
// structured records.
//
// Every Extract function is a pure function of the text it is given, so a
// Parser can be shared freely between goroutines. Only the hand id and
// datetime of a hand, and the tournament id of a summary, are mandatory;
// every other field falls back to a documented default.
package parser

import (
	"strings"

	"github.com/rs/zerolog"

	"github.com/lox/pkrhistory/internal/record"
)

// Config holds the account-specific settings of a Parser.
type Config struct {
	// Hero is the account the histories belong to. It names the hero of
	// hands that do not print a "Dealt to" line.
	Hero string
}

// Parser assembles hand and summary records.
type Parser struct {
	cfg    Config
	logger zerolog.Logger
}

// New creates a Parser. Degraded fields are reported to logger at debug
// level; pass zerolog.Nop() to silence it.
func New(cfg Config, logger zerolog.Logger) *Parser {
	return &Parser{cfg: cfg, logger: logger}
}

// Config returns the parser configuration.
func (p *Parser) Config() Config {
	return p.cfg
}

// normalize strips a byte order mark and converts CRLF line endings.
func normalize(text string) string {
	text = strings.TrimPrefix(text, "\ufeff")
	return strings.ReplaceAll(text, "\r\n", "\n")
}

// ParseHand assembles a complete hand record and annotates which players
// entered the hand.
func (p *Parser) ParseHand(text string) (*record.Hand, error) {
	text = normalize(text)
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyText
	}

	handID, ok := ExtractHandID(text)
	if !ok {
		return nil, missing("hand_id", ErrMissingHandID)
	}
	dt, ok := ExtractDatetime(text)
	if !ok {
		return nil, missing("datetime", ErrMissingDatetime)
	}

	log := p.logger.With().Str("hand_id", handID).Logger()

	buyIn, ok := ExtractBuyIn(text)
	if !ok {
		log.Debug().Msg("No buy-in form matched, using zero buy-in")
	}
	ante, sb, bb, ok := ExtractBlinds(text)
	if !ok {
		log.Debug().Msg("No blinds header matched")
	}
	hero, ok := ExtractHeroHand(text, p.cfg.Hero)
	if !ok {
		log.Debug().Str("hero", p.cfg.Hero).Msg("No dealt-to line, using configured hero")
	}

	hand := &record.Hand{
		HandID:   handID,
		Datetime: record.DisplayTime{Time: dt},
		GameType: ExtractGameType(text),
		BuyIn:    buyIn,
		Level: record.Level{
			Value: ExtractLevel(text),
			Ante:  ante,
			SB:    sb,
			BB:    bb,
		},
		TournamentInfo: ExtractTournamentInfo(text),
		MaxPlayers:     ExtractMaxPlayers(text),
		ButtonSeat:     ExtractButtonSeat(text),
		Players:        ExtractPlayers(text),
		HeroHand:       hero,
		Postings:       ExtractPostings(text),
		Actions:        ExtractActions(text),
		Flop:           ExtractFlop(text),
		Turn:           ExtractTurn(text),
		River:          ExtractRiver(text),
		Showdown:       ExtractShowdown(text),
		Winners:        ExtractWinners(text),
	}
	MarkEnteredHand(hand)
	return hand, nil
}

// MarkEnteredHand sets EnteredHand on every player who posted a forced bet
// or acted preflop, and clears it on everyone else. Players who only appear
// in later streets are not considered.
func MarkEnteredHand(hand *record.Hand) {
	entered := make(map[string]struct{}, len(hand.Players))
	for _, a := range hand.Actions.Preflop {
		entered[a.Player] = struct{}{}
	}
	for _, posting := range hand.Postings {
		entered[posting.Name] = struct{}{}
	}
	for _, player := range hand.Players {
		_, ok := entered[player.Name]
		player.EnteredHand = ok
	}
}

// ParseSummary assembles a tournament summary record.
func (p *Parser) ParseSummary(text string) (*record.Summary, error) {
	text = normalize(text)
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyText
	}

	name, id, ok := ExtractSummaryTournament(text)
	if !ok {
		return nil, missing("tournament_id", ErrMissingTournamentID)
	}

	buyIn, ok := ExtractSummaryBuyIn(text)
	if !ok {
		p.logger.Debug().Str("tournament_id", id).Msg("No summary buy-in form matched, using zero buy-in")
	}
	won, bounty := ExtractAmountWon(text)

	return &record.Summary{
		TournamentID:      id,
		TournamentName:    name,
		TournamentType:    ExtractTournamentType(text),
		Speed:             ExtractSpeed(text),
		StartDate:         ExtractStartDate(text),
		PrizePool:         ExtractPrizePool(text),
		RegisteredPlayers: ExtractRegisteredPlayers(text),
		NbEntries:         ExtractNbEntries(text),
		AmountWon:         won,
		BountyWon:         bounty,
		FinalPosition:     ExtractFinalPosition(text),
		LevelsStructure:   ExtractLevelsStructure(text),
		BuyIn:             buyIn,
	}, nil
}
