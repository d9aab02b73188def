package record

import "sort"

// TournamentInfo identifies the tournament a hand belongs to. The three
// table-line fields are nil for cash games. Summary is set once the hand has
// been merged with its tournament summary; its fields are then serialized
// inline next to the table-line fields.
type TournamentInfo struct {
	TournamentName *string `json:"tournament_name"`
	TournamentID   *string `json:"tournament_id"`
	TableNumber    *string `json:"table_number"`
	*Summary
}

// Hand is one parsed hand history.
type Hand struct {
	HandID         string                `json:"hand_id"`
	Datetime       DisplayTime           `json:"datetime"`
	GameType       GameType              `json:"game_type"`
	BuyIn          BuyIn                 `json:"buy_in"`
	Level          Level                 `json:"level"`
	TournamentInfo TournamentInfo        `json:"tournament_info"`
	MaxPlayers     int                   `json:"max_players"`
	ButtonSeat     int                   `json:"button_seat"`
	Players        map[int]*Player       `json:"players"`
	HeroHand       HeroHand              `json:"hero_hand"`
	Postings       []Posting             `json:"postings"`
	Actions        Actions               `json:"actions"`
	Flop           FlopCards             `json:"flop"`
	Turn           TurnCard              `json:"turn"`
	River          RiverCard             `json:"river"`
	Showdown       map[string]ShownCards `json:"showdown"`
	Winners        map[string]Winnings   `json:"winners"`
}

// Seats returns the occupied seat numbers in ascending order.
func (h *Hand) Seats() []int {
	seats := make([]int, 0, len(h.Players))
	for seat := range h.Players {
		seats = append(seats, seat)
	}
	sort.Ints(seats)
	return seats
}

// PlayerByName returns the player seated under name, or nil.
func (h *Hand) PlayerByName(name string) *Player {
	for _, p := range h.Players {
		if p.Name == name {
			return p
		}
	}
	return nil
}

// Board returns the community cards that were dealt, in order.
func (h *Hand) Board() []string {
	var board []string
	for _, c := range []*string{h.Flop.Card1, h.Flop.Card2, h.Flop.Card3, h.Turn.Card, h.River.Card} {
		if c == nil {
			break
		}
		board = append(board, *c)
	}
	return board
}
