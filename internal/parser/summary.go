package parser

import (
	"strings"

	"github.com/lox/pkrhistory/internal/amount"
	"github.com/lox/pkrhistory/internal/patterns"
	"github.com/lox/pkrhistory/internal/record"
)

// DefaultSpeed is used when a summary does not state the tournament speed.
const DefaultSpeed = "normal"

// ExtractSummaryTournament returns the tournament name and id from the
// summary header.
func ExtractSummaryTournament(text string) (name, id string, ok bool) {
	m := patterns.SummaryTournament.Find(text)
	if m == nil {
		return "", "", false
	}
	return strings.TrimSpace(m[1]), m[2], true
}

// ExtractSummaryBuyIn reads the summary buy-in with the same three-form
// precedence as hand headers.
func ExtractSummaryBuyIn(text string) (record.BuyIn, bool) {
	shape, m, ok := patterns.Match(patterns.SummaryBuyIn, text)
	return buyInFromMatch(shape, m), ok
}

// ExtractPrizePool returns the last stated prize pool.
func ExtractPrizePool(text string) float64 {
	if m := patterns.PrizePool.Find(text); m != nil {
		return amount.ToFloat(m[1])
	}
	return 0
}

// ExtractRegisteredPlayers returns the last stated registration count.
func ExtractRegisteredPlayers(text string) int {
	if m := patterns.RegisteredPlayers.Find(text); m != nil {
		return amount.ToInt(m[1])
	}
	return 0
}

// ExtractSpeed returns the tournament speed, DefaultSpeed when absent.
func ExtractSpeed(text string) string {
	if m := patterns.Speed.Find(text); m != nil {
		return m[1]
	}
	return DefaultSpeed
}

// ExtractTournamentType returns the tournament type ("knockout", ...).
func ExtractTournamentType(text string) string {
	if m := patterns.TournamentType.Find(text); m != nil {
		return m[1]
	}
	return ""
}

// ExtractStartDate returns the start stamp as printed, including "UTC".
func ExtractStartDate(text string) string {
	if m := patterns.StartDate.Find(text); m != nil {
		return m[1]
	}
	return ""
}

// ExtractAmountWon returns the prize and the bounty money won.
func ExtractAmountWon(text string) (won, bounty float64) {
	m := patterns.AmountWon.Find(text)
	if m == nil {
		return 0, 0
	}
	return amount.ToFloat(m[1]), amount.ToFloat(m[2])
}

// ExtractFinalPosition returns the finishing place, 0 when not finished.
func ExtractFinalPosition(text string) int {
	if m := patterns.FinalPosition.Find(text); m != nil {
		return amount.ToInt(m[1])
	}
	return 0
}

// ExtractNbEntries counts the player's result lines. Re-entry tournaments
// list one result per entry.
func ExtractNbEntries(text string) int {
	return patterns.FinalPosition.Count(text)
}

// ExtractLevelsStructure parses the bracketed blind schedule
// ("[25-50:0,50-100:0,100-200:25]"). Entries are numbered from 1 in source
// order; abbreviated numbers such as 1,2k are expanded.
func ExtractLevelsStructure(text string) []record.LevelStructure {
	levels := []record.LevelStructure{}
	m := patterns.LevelsStructure.Find(text)
	if m == nil {
		return levels
	}
	for i, entry := range patterns.LevelBlinds.FindAll(m[1]) {
		levels = append(levels, record.LevelStructure{
			Value: i + 1,
			SB:    amount.ToFloat(entry[1]),
			BB:    amount.ToFloat(entry[2]),
			Ante:  amount.ToFloat(entry[3]),
		})
	}
	return levels
}
