package parser

import "github.com/lox/pkrhistory/internal/record"

// Merge folds a tournament summary into the tournament info of a hand and
// returns the result. The summary's name and id replace the ones read from
// the table line; the table number is kept. Neither input is modified.
func Merge(hand record.Hand, summary record.Summary) record.Hand {
	s := summary.Clone()
	name, id := s.TournamentName, s.TournamentID

	info := hand.TournamentInfo
	info.TournamentName = &name
	info.TournamentID = &id
	info.Summary = s

	hand.TournamentInfo = info
	return hand
}
