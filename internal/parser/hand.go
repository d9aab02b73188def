package parser

import (
	"strings"
	"time"

	"github.com/lox/pkrhistory/internal/amount"
	"github.com/lox/pkrhistory/internal/patterns"
	"github.com/lox/pkrhistory/internal/record"
)

const historyLayout = "2006/01/02 15:04:05"

// ExtractHandID returns the identifier printed after "HandId: #".
func ExtractHandID(text string) (string, bool) {
	m := patterns.HandID.Find(text)
	if m == nil {
		return "", false
	}
	return m[1], true
}

// ExtractDatetime returns the UTC stamp of the hand header.
func ExtractDatetime(text string) (time.Time, bool) {
	m := patterns.Datetime.Find(text)
	if m == nil {
		return time.Time{}, false
	}
	t, err := time.ParseInLocation(historyLayout, m[1], time.UTC)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// ExtractGameType reports whether the hand was played in a tournament or a
// cash game.
func ExtractGameType(text string) record.GameType {
	shape, _, ok := patterns.Match(patterns.GameType, text)
	if !ok {
		return record.GameUnknown
	}
	switch shape {
	case patterns.ShapeTournament:
		return record.GameTournament
	case patterns.ShapeCashGame:
		return record.GameCash
	default:
		return record.GameUnknown
	}
}

// buyInFromMatch maps a matched buy-in variant to its three components.
// Unmatched text yields zero for all three.
func buyInFromMatch(shape patterns.Shape, m []string) record.BuyIn {
	switch shape {
	case patterns.ShapeKnockout:
		return record.BuyIn{
			PrizePoolContribution: amount.ToFloat(m[1]),
			Bounty:                amount.ToFloat(m[2]),
			Rake:                  amount.ToFloat(m[3]),
		}
	case patterns.ShapeNormal:
		return record.BuyIn{
			PrizePoolContribution: amount.ToFloat(m[1]),
			Rake:                  amount.ToFloat(m[2]),
		}
	default:
		return record.BuyIn{}
	}
}

// ExtractBuyIn reads the hand header buy-in. ok is false when no buy-in form
// matched; the returned value is then all zeros.
func ExtractBuyIn(text string) (record.BuyIn, bool) {
	shape, m, ok := patterns.Match(patterns.HandBuyIn, text)
	return buyInFromMatch(shape, m), ok
}

// ExtractBlinds reads ante, small blind and big blind from the header. The
// cash-game form has no ante. All three are zero when neither form matched.
func ExtractBlinds(text string) (ante, sb, bb float64, ok bool) {
	shape, m, ok := patterns.Match(patterns.Blinds, text)
	if !ok {
		return 0, 0, 0, false
	}
	if shape == patterns.ShapeTournament {
		return amount.ToFloat(m[1]), amount.ToFloat(m[2]), amount.ToFloat(m[3]), true
	}
	return 0, amount.ToFloat(m[1]), amount.ToFloat(m[2]), true
}

// ExtractLevel returns the tournament level, or 0 when absent.
func ExtractLevel(text string) int {
	if m := patterns.Level.Find(text); m != nil {
		return amount.ToInt(m[1])
	}
	return 0
}

// ExtractTournamentInfo reads name, id and table number from the table line.
// All three are nil when the table line does not carry them.
func ExtractTournamentInfo(text string) record.TournamentInfo {
	m := patterns.TournamentInfo.Find(text)
	if m == nil {
		return record.TournamentInfo{}
	}
	name := strings.TrimSpace(m[1])
	return record.TournamentInfo{
		TournamentName: &name,
		TournamentID:   &m[2],
		TableNumber:    &m[3],
	}
}

// ExtractMaxPlayers returns the table size, or 0 when absent.
func ExtractMaxPlayers(text string) int {
	if m := patterns.MaxPlayers.Find(text); m != nil {
		return amount.ToInt(m[1])
	}
	return 0
}

// ExtractButtonSeat returns the button seat, or 0 when absent.
func ExtractButtonSeat(text string) int {
	if m := patterns.ButtonSeat.Find(text); m != nil {
		return amount.ToInt(m[1])
	}
	return 0
}

// ExtractPlayers reads the seat listing. A seat listed twice keeps its first
// entry.
func ExtractPlayers(text string) map[int]*record.Player {
	players := make(map[int]*record.Player)
	for _, m := range patterns.Player.FindAll(text) {
		seat := amount.ToInt(m[1])
		if _, seen := players[seat]; seen {
			continue
		}
		players[seat] = &record.Player{
			Seat:      seat,
			Name:      strings.TrimSpace(m[2]),
			InitStack: amount.ToFloat(m[3]),
			Bounty:    amount.ToFloat(m[4]),
		}
	}
	return players
}

// ExtractHeroHand reads the "Dealt to" line. When it is missing, the hero is
// taken to be fallbackHero and both cards are nil.
func ExtractHeroHand(text, fallbackHero string) (record.HeroHand, bool) {
	m := patterns.HeroHand.Find(text)
	if m == nil {
		return record.HeroHand{Hero: fallbackHero}, false
	}
	return record.HeroHand{
		Hero:       strings.TrimSpace(m[1]),
		FirstCard:  record.Card(m[2]),
		SecondCard: record.Card(m[3]),
	}, true
}

// ExtractPostings reads antes and blinds in posting order.
func ExtractPostings(text string) []record.Posting {
	matches := patterns.Posting.FindAll(text)
	postings := make([]record.Posting, 0, len(matches))
	for _, m := range matches {
		postings = append(postings, record.Posting{
			Name:      strings.TrimSpace(m[1]),
			Amount:    amount.ToFloat(m[3]),
			BlindType: record.BlindType(m[2]),
		})
	}
	return postings
}

// ExtractFlop returns the flop cards, all nil when no flop was dealt.
func ExtractFlop(text string) record.FlopCards {
	m := patterns.Flop.Find(text)
	if m == nil {
		return record.FlopCards{}
	}
	return record.FlopCards{Card1: record.Card(m[1]), Card2: record.Card(m[2]), Card3: record.Card(m[3])}
}

// ExtractTurn returns the turn card, nil when no turn was dealt.
func ExtractTurn(text string) record.TurnCard {
	if m := patterns.Turn.Find(text); m != nil {
		return record.TurnCard{Card: record.Card(m[1])}
	}
	return record.TurnCard{}
}

// ExtractRiver returns the river card, nil when no river was dealt.
func ExtractRiver(text string) record.RiverCard {
	if m := patterns.River.Find(text); m != nil {
		return record.RiverCard{Card: record.Card(m[1])}
	}
	return record.RiverCard{}
}

// ExtractShowdown maps each player who showed cards to those cards.
func ExtractShowdown(text string) map[string]record.ShownCards {
	shown := make(map[string]record.ShownCards)
	for _, m := range patterns.Showdown.FindAll(text) {
		shown[strings.TrimSpace(m[1])] = record.ShownCards{FirstCard: m[2], SecondCard: m[3]}
	}
	return shown
}

// ExtractWinners maps each player who collected chips to the amount and pot.
// A player collecting from several pots keeps the last collection line.
func ExtractWinners(text string) map[string]record.Winnings {
	winners := make(map[string]record.Winnings)
	for _, m := range patterns.Winner.FindAll(text) {
		winners[strings.TrimSpace(m[1])] = record.Winnings{Amount: amount.ToFloat(m[2]), PotType: m[3]}
	}
	return winners
}
