package phh

import (
	"bytes"
	"fmt"
	"io"
	"strconv"

	"github.com/BurntSushi/toml"

	"github.com/lox/pkrhistory/internal/record"
)

// Encode writes the hand history to the provided writer in PHH TOML format.
func Encode(w io.Writer, hand *HandHistory) error {
	if hand == nil {
		return fmt.Errorf("phh: hand history is nil")
	}

	enc := toml.NewEncoder(w)
	enc.Indent = "\t"
	return enc.Encode(hand)
}

// EncodeToBytes encodes and returns the result as bytes.
func EncodeToBytes(hand *HandHistory) ([]byte, error) {
	var buf bytes.Buffer
	if err := Encode(&buf, hand); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// formatAmount renders a chip or money amount without a trailing ".0".
func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// FormatAction converts a parsed action to a PHH action string for the player
// at position pos (0-based). Bets and raises are written as the player's
// street total. It returns false for actions that cannot be expressed, such
// as a bet without an amount.
func FormatAction(pos int, a record.Action) (string, bool) {
	player := fmt.Sprintf("p%d", pos+1)
	switch a.Action {
	case record.Folds:
		return player + " f", true
	case record.Checks, record.Calls:
		return player + " cc", true
	case record.Bets, record.Raises:
		total := a.Amount
		if a.RaiseTotal > 0 {
			total = a.RaiseTotal
		}
		if total <= 0 {
			return "", false
		}
		return fmt.Sprintf("%s cbr %s", player, formatAmount(total)), true
	default:
		return fmt.Sprintf("# %s %s %s", player, a.Action, formatAmount(a.Amount)), true
	}
}
