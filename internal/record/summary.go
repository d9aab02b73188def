package record

// LevelStructure is one entry of a tournament's blind schedule. Value is
// 1-based and follows source order.
type LevelStructure struct {
	Value int     `json:"value"`
	SB    float64 `json:"sb"`
	BB    float64 `json:"bb"`
	Ante  float64 `json:"ante"`
}

// Summary is one parsed tournament summary.
type Summary struct {
	TournamentID      string           `json:"tournament_id"`
	TournamentName    string           `json:"tournament_name"`
	TournamentType    string           `json:"tournament_type"`
	Speed             string           `json:"speed"`
	StartDate         string           `json:"start_date"`
	PrizePool         float64          `json:"prize_pool"`
	RegisteredPlayers int              `json:"registered_players"`
	NbEntries         int              `json:"nb_entries"`
	AmountWon         float64          `json:"amount_won"`
	BountyWon         float64          `json:"bounty_won"`
	FinalPosition     int              `json:"final_position"`
	LevelsStructure   []LevelStructure `json:"levels_structure"`
	BuyIn             BuyIn            `json:"buy_in"`
}

// Clone returns a deep copy of s.
func (s *Summary) Clone() *Summary {
	if s == nil {
		return nil
	}
	out := *s
	out.LevelsStructure = append([]LevelStructure(nil), s.LevelsStructure...)
	if out.LevelsStructure == nil {
		out.LevelsStructure = []LevelStructure{}
	}
	return &out
}
