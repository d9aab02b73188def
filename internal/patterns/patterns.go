// Package patterns is the catalog of regular expressions used to pull fields
// out of Winamax hand histories and tournament summaries.
//
// Each field (or field group) has one named Pattern. Fields that can be
// written in more than one textual form are described by an ordered list of
// Variants, tried in catalog order until one matches.
package patterns

import "regexp"

// Policy selects which match of a pattern is used.
type Policy int

const (
	// First uses the first match in the text.
	First Policy = iota
	// Last uses the last match, for values that are restated as a summary
	// settles (prize pool, registered players).
	Last
)

func (p Policy) String() string {
	switch p {
	case First:
		return "first"
	case Last:
		return "last"
	default:
		return "unknown"
	}
}

// Pattern is one named matcher of the catalog.
type Pattern struct {
	Name   string
	Re     *regexp.Regexp
	Policy Policy
}

func newPattern(name string, policy Policy, expr string) Pattern {
	return Pattern{Name: name, Re: regexp.MustCompile(expr), Policy: policy}
}

// Find returns the submatches of the match selected by the pattern's policy,
// or nil when the text does not match.
func (p Pattern) Find(text string) []string {
	if p.Policy == Last {
		all := p.Re.FindAllStringSubmatch(text, -1)
		if len(all) == 0 {
			return nil
		}
		return all[len(all)-1]
	}
	return p.Re.FindStringSubmatch(text)
}

// FindAll returns every match in source order.
func (p Pattern) FindAll(text string) [][]string {
	return p.Re.FindAllStringSubmatch(text, -1)
}

// Count returns the number of non-overlapping matches.
func (p Pattern) Count(text string) int {
	return len(p.Re.FindAllStringIndex(text, -1))
}

// Shape names the textual form a multi-representation field was written in.
type Shape string

const (
	ShapeNone       Shape = ""
	ShapeKnockout   Shape = "knockout"
	ShapeNormal     Shape = "normal"
	ShapeFreeRoll   Shape = "freeroll"
	ShapeTournament Shape = "tournament"
	ShapeCashGame   Shape = "cashgame"
)

// Variant is one alternate textual form of a field group.
type Variant struct {
	Shape   Shape
	Pattern Pattern
}

// Match tries each variant in order and returns the shape and submatches of
// the first one that matches. ok is false when none does.
func Match(variants []Variant, text string) (shape Shape, groups []string, ok bool) {
	for _, v := range variants {
		if m := v.Pattern.Find(text); m != nil {
			return v.Shape, m, true
		}
	}
	return ShapeNone, nil, false
}
