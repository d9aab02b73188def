// Package amount converts the number formats printed in hand histories and
// tournament summaries into floats.
//
// Conversion fails soft: text that cannot be read as a number yields zero
// instead of an error, because most numeric fields in the source format are
// optional.
package amount

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// suffixes maps abbreviation suffixes to their power of ten.
var suffixes = map[byte]int32{
	'k': 3,
	'K': 3,
	'M': 6,
}

var stripper = strings.NewReplacer(
	"€", "",
	"$", "",
	"£", "",
	" ", "",
	"\u00a0", "",
	"\u202f", "",
	"\t", "",
)

// Clean removes currency glyphs and spacing and turns decimal commas into
// decimal points. The result is not guaranteed to be numeric.
func Clean(text string) string {
	return strings.ReplaceAll(stripper.Replace(strings.TrimSpace(text)), ",", ".")
}

// ToFloat converts locale-formatted numeric text ("1,50", "2.25€", "1,5k",
// "2M") to a float64. It returns 0 for empty or malformed input.
func ToFloat(text string) float64 {
	s := Clean(text)
	if s == "" {
		return 0
	}

	var exp int32
	if shift, ok := suffixes[s[len(s)-1]]; ok {
		exp = shift
		s = s[:len(s)-1]
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0
	}
	f, _ := d.Shift(exp).Float64()
	return f
}

// ToInt converts plain integer text, returning 0 when it is not an integer.
func ToInt(text string) int {
	n, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil {
		return 0
	}
	return n
}
