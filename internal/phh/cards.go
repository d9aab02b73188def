package phh

import "strings"

// unknownHole is dealt to players whose hole cards were never revealed.
const unknownHole = "????"

// NormalizeCard converts a history card (Ah, td, 10h) to PHH notation: an
// upper-case rank with T for ten, then a lower-case suit.
func NormalizeCard(card string) string {
	card = strings.TrimSpace(card)
	if card == "" || card == "??" {
		return card
	}
	if len(card) < 2 {
		return strings.ToUpper(card)
	}

	suit := strings.ToLower(card[len(card)-1:])
	rank := strings.ToUpper(card[:len(card)-1])
	if rank == "10" {
		rank = "T"
	}
	return rank[:1] + suit
}

// holeCards joins two nullable hole cards, or returns the unknown marker when
// either is missing.
func holeCards(first, second *string) string {
	if first == nil || second == nil {
		return unknownHole
	}
	c1, c2 := NormalizeCard(*first), NormalizeCard(*second)
	if c1 == "" || c2 == "" {
		return unknownHole
	}
	return c1 + c2
}
