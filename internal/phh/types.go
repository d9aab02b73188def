package phh

import "time"

// HandHistory represents a single poker hand encoded in PHH format. Per-player
// slices are indexed by position: p1 is the first seat after the button and
// the button is last.
type HandHistory struct {
	Variant           string         `toml:"variant"`
	Table             string         `toml:"table,omitempty"`
	SeatCount         int            `toml:"seat_count,omitempty"`
	Seats             []int          `toml:"seats,omitempty"`
	Antes             []float64      `toml:"antes"`
	BlindsOrStraddles []float64      `toml:"blinds_or_straddles"`
	MinBet            float64        `toml:"min_bet"`
	StartingStacks    []float64      `toml:"starting_stacks"`
	Winnings          []float64      `toml:"winnings,omitempty"`
	Actions           []string       `toml:"actions"`
	Players           []string       `toml:"players,omitempty"`
	HandID            string         `toml:"hand"`
	Time              string         `toml:"time,omitempty"`
	TimeZone          string         `toml:"time_zone,omitempty"`
	Day               int            `toml:"day,omitempty"`
	Month             int            `toml:"month,omitempty"`
	Year              int            `toml:"year,omitempty"`
	Metadata          map[string]any `toml:"metadata,omitempty"`

	Board     []string  `toml:"-"`
	Timestamp time.Time `toml:"-"`
}

// PlayerIndex returns the 0-based position of the named player, or -1.
func (h *HandHistory) PlayerIndex(name string) int {
	for i, p := range h.Players {
		if p == name {
			return i
		}
	}
	return -1
}
