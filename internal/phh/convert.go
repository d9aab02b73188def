package phh

import (
	"fmt"
	"strings"

	"github.com/lox/pkrhistory/internal/record"
)

// Variant is the PHH code for no-limit Texas hold'em.
const Variant = "NT"

// positionOrder returns the occupied seats starting with the first seat after
// the button, so that the button is last. Seats without a known button keep
// ascending order.
func positionOrder(seats []int, button int) []int {
	start := 0
	for i, seat := range seats {
		if seat > button {
			start = i
			break
		}
	}
	order := make([]int, 0, len(seats))
	for i := range seats {
		order = append(order, seats[(start+i)%len(seats)])
	}
	return order
}

// FromHand converts a parsed hand into a PHH hand history. Only the hero's
// hole cards are dealt face up; cards shown at showdown are written as show
// actions after the river.
func FromHand(hand *record.Hand) *HandHistory {
	order := positionOrder(hand.Seats(), hand.ButtonSeat)
	n := len(order)

	history := &HandHistory{
		Variant:           Variant,
		Table:             tableName(hand.TournamentInfo),
		SeatCount:         hand.MaxPlayers,
		Seats:             make([]int, n),
		Antes:             make([]float64, n),
		BlindsOrStraddles: make([]float64, n),
		MinBet:            hand.Level.BB,
		StartingStacks:    make([]float64, n),
		Winnings:          make([]float64, n),
		Actions:           make([]string, 0, n+16),
		Players:           make([]string, n),
		HandID:            hand.HandID,
		Timestamp:         hand.Datetime.Time,
		Metadata:          metadata(hand),
	}

	for pos, seat := range order {
		player := hand.Players[seat]
		history.Seats[pos] = seat
		history.Players[pos] = player.Name
		history.StartingStacks[pos] = player.InitStack
	}

	for _, posting := range hand.Postings {
		pos := history.PlayerIndex(posting.Name)
		if pos < 0 {
			continue
		}
		if posting.BlindType == record.Ante {
			history.Antes[pos] += posting.Amount
		} else {
			history.BlindsOrStraddles[pos] += posting.Amount
		}
	}

	for pos, name := range history.Players {
		cards := unknownHole
		if name == hand.HeroHand.Hero {
			cards = holeCards(hand.HeroHand.FirstCard, hand.HeroHand.SecondCard)
		}
		history.Actions = append(history.Actions, fmt.Sprintf("d dh p%d %s", pos+1, cards))
	}

	deals := map[record.Street][]*string{
		record.Flop:  {hand.Flop.Card1, hand.Flop.Card2, hand.Flop.Card3},
		record.Turn:  {hand.Turn.Card},
		record.River: {hand.River.Card},
	}
	for _, street := range record.Streets {
		if cards, ok := deals[street]; ok {
			dealt := boardCards(cards)
			if dealt == "" {
				break
			}
			history.Board = append(history.Board, dealt)
			history.Actions = append(history.Actions, "d db "+dealt)
		}
		for _, a := range hand.Actions.Street(street) {
			pos := history.PlayerIndex(a.Player)
			if pos < 0 {
				continue
			}
			if formatted, ok := FormatAction(pos, a); ok {
				history.Actions = append(history.Actions, formatted)
			}
		}
	}

	for pos, name := range history.Players {
		if shown, ok := hand.Showdown[name]; ok {
			history.Actions = append(history.Actions, fmt.Sprintf("p%d sm %s%s",
				pos+1, NormalizeCard(shown.FirstCard), NormalizeCard(shown.SecondCard)))
		}
		if won, ok := hand.Winners[name]; ok {
			history.Winnings[pos] += won.Amount
		}
	}

	populateTimeFields(history)
	return history
}

// boardCards joins the cards dealt on one street, or returns "" when the
// street was not reached.
func boardCards(cards []*string) string {
	var b strings.Builder
	for _, c := range cards {
		if c == nil {
			return ""
		}
		b.WriteString(NormalizeCard(*c))
	}
	return b.String()
}

func tableName(info record.TournamentInfo) string {
	if info.TournamentName == nil {
		return ""
	}
	if info.TableNumber == nil {
		return *info.TournamentName
	}
	return *info.TournamentName + "#" + *info.TableNumber
}

func metadata(hand *record.Hand) map[string]any {
	meta := map[string]any{
		"game_type": string(hand.GameType),
		"hero":      hand.HeroHand.Hero,
	}
	if hand.Level.Value > 0 {
		meta["level"] = hand.Level.Value
	}
	if id := hand.TournamentInfo.TournamentID; id != nil {
		meta["tournament_id"] = *id
	}
	if total := hand.BuyIn.Total(); total > 0 {
		meta["buy_in"] = total
	}
	return meta
}

func populateTimeFields(hist *HandHistory) {
	t := hist.Timestamp
	if t.IsZero() {
		return
	}
	utc := t.UTC()
	hist.Time = utc.Format("15:04:05")
	hist.TimeZone = "UTC"
	hist.Day = utc.Day()
	hist.Month = int(utc.Month())
	hist.Year = utc.Year()
}
