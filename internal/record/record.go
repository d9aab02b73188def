// Package record defines the structured records produced from hand
// histories and tournament summaries, and their JSON form.
package record

import (
	"fmt"
	"time"
)

// GameType is the kind of game a hand was played in.
type GameType string

const (
	GameTournament GameType = "Tournament"
	GameCash       GameType = "CashGame"
	GameUnknown    GameType = "Unknown"
)

// Street is one betting round.
type Street string

const (
	Preflop Street = "preflop"
	Flop    Street = "flop"
	Turn    Street = "turn"
	River   Street = "river"
)

// Streets lists the betting rounds in play order.
var Streets = []Street{Preflop, Flop, Turn, River}

// ActionKind is a voluntary player action as printed in the history.
type ActionKind string

const (
	Calls  ActionKind = "calls"
	Bets   ActionKind = "bets"
	Raises ActionKind = "raises"
	Folds  ActionKind = "folds"
	Checks ActionKind = "checks"
)

// BlindType is the kind of forced bet a posting represents.
type BlindType string

const (
	Ante       BlindType = "ante"
	SmallBlind BlindType = "small blind"
	BigBlind   BlindType = "big blind"
)

// DisplayLayout is the layout hand timestamps are rendered with.
const DisplayLayout = "02-01-2006 15:04:05"

// DisplayTime is a UTC timestamp that serializes as dd-mm-yyyy HH:MM:SS.
type DisplayTime struct {
	time.Time
}

func (t DisplayTime) String() string {
	return t.UTC().Format(DisplayLayout)
}

func (t DisplayTime) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *DisplayTime) UnmarshalText(b []byte) error {
	parsed, err := time.ParseInLocation(DisplayLayout, string(b), time.UTC)
	if err != nil {
		return fmt.Errorf("record: invalid display time %q: %w", b, err)
	}
	t.Time = parsed
	return nil
}

// MarshalJSON and UnmarshalJSON shadow the methods promoted from time.Time.

func (t DisplayTime) MarshalJSON() ([]byte, error) {
	return []byte(`"` + t.String() + `"`), nil
}

func (t *DisplayTime) UnmarshalJSON(b []byte) error {
	if len(b) < 2 || b[0] != '"' || b[len(b)-1] != '"' {
		return fmt.Errorf("record: display time must be a JSON string, got %s", b)
	}
	return t.UnmarshalText(b[1 : len(b)-1])
}

// BuyIn is the entry cost of a tournament split into its three parts.
type BuyIn struct {
	PrizePoolContribution float64 `json:"prize_pool_contribution"`
	Bounty                float64 `json:"bounty"`
	Rake                  float64 `json:"rake"`
}

// Total is the full amount paid to enter.
func (b BuyIn) Total() float64 {
	return b.PrizePoolContribution + b.Bounty + b.Rake
}

// Level is the blind level a hand was played at.
type Level struct {
	Value int     `json:"value"`
	Ante  float64 `json:"ante"`
	SB    float64 `json:"sb"`
	BB    float64 `json:"bb"`
}

// Player is one occupied seat at hand start.
type Player struct {
	Seat        int     `json:"seat"`
	Name        string  `json:"name"`
	InitStack   float64 `json:"init_stack"`
	Bounty      float64 `json:"bounty"`
	EnteredHand bool    `json:"entered_hand"`
}

// HeroHand holds the hole cards dealt to the account the history belongs to.
// Cards are nil when they were not printed.
type HeroHand struct {
	Hero       string  `json:"hero"`
	FirstCard  *string `json:"first_card"`
	SecondCard *string `json:"second_card"`
}

// Posting is a forced bet made before voluntary action.
type Posting struct {
	Name      string    `json:"name"`
	Amount    float64   `json:"amount"`
	BlindType BlindType `json:"blind_type"`
}

// Action is one voluntary action on a street.
type Action struct {
	Player     string     `json:"player"`
	Action     ActionKind `json:"action"`
	Amount     float64    `json:"amount"`
	IsAllIn    bool       `json:"is_all_in"`
	RaiseTotal float64    `json:"raise_total"`
}

// Actions holds the action sequence of every street. A street that was never
// reached has an empty, non-nil sequence.
type Actions struct {
	Preflop []Action `json:"preflop"`
	Flop    []Action `json:"flop"`
	Turn    []Action `json:"turn"`
	River   []Action `json:"river"`
}

// NewActions returns an Actions value with all four streets empty.
func NewActions() Actions {
	return Actions{
		Preflop: []Action{},
		Flop:    []Action{},
		Turn:    []Action{},
		River:   []Action{},
	}
}

// Street returns the actions of the given street.
func (a *Actions) Street(s Street) []Action {
	switch s {
	case Preflop:
		return a.Preflop
	case Flop:
		return a.Flop
	case Turn:
		return a.Turn
	case River:
		return a.River
	default:
		return nil
	}
}

// Set replaces the actions of the given street. A nil list is stored empty.
func (a *Actions) Set(s Street, list []Action) {
	if list == nil {
		list = []Action{}
	}
	switch s {
	case Preflop:
		a.Preflop = list
	case Flop:
		a.Flop = list
	case Turn:
		a.Turn = list
	case River:
		a.River = list
	}
}

// FlopCards are the three community cards dealt on the flop.
type FlopCards struct {
	Card1 *string `json:"flop_card_1"`
	Card2 *string `json:"flop_card_2"`
	Card3 *string `json:"flop_card_3"`
}

// TurnCard is the community card dealt on the turn.
type TurnCard struct {
	Card *string `json:"turn_card"`
}

// RiverCard is the community card dealt on the river.
type RiverCard struct {
	Card *string `json:"river_card"`
}

// ShownCards are the hole cards a player revealed at showdown.
type ShownCards struct {
	FirstCard  string `json:"first_card"`
	SecondCard string `json:"second_card"`
}

// Winnings is the amount a player collected and the pot it came from
// ("pot", "main pot", "side pot N").
type Winnings struct {
	Amount  float64 `json:"amount"`
	PotType string  `json:"pot_type"`
}

// Card returns a pointer to c, for the nullable card fields.
func Card(c string) *string {
	return &c
}
