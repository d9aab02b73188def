package patterns

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogNamesAreUnique(t *testing.T) {
	t.Parallel()

	seen := make(map[string]bool)
	for _, p := range Catalog() {
		require.NotNil(t, p.Re, p.Name)
		assert.False(t, seen[p.Name], "duplicate pattern %s", p.Name)
		seen[p.Name] = true
	}
}

func TestFindPolicy(t *testing.T) {
	t.Parallel()

	text := "Prizepool : 100€\nPrizepool : 250€\n"
	assert.Equal(t, "250", PrizePool.Find(text)[1])
	assert.Equal(t, Last, PrizePool.Policy)
	assert.Equal(t, "last", PrizePool.Policy.String())

	first := newPattern("first_prize", First, PrizePool.Re.String())
	assert.Equal(t, "100", first.Find(text)[1])
	assert.Nil(t, first.Find("nothing"))
	assert.Nil(t, PrizePool.Find("nothing"))
	assert.Equal(t, 2, PrizePool.Count(text))
}

func TestMatchPrecedence(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		list   []Variant
		text   string
		shape  Shape
		groups []string
	}{
		{"knockout buy-in", HandBuyIn, `buyIn: 2.25€ + 2.25€ + 0.50€ level: 1`, ShapeKnockout, []string{"2.25", "2.25", "0.50"}},
		{"normal buy-in", HandBuyIn, `buyIn: 4.50€ + 0.50€ level: 1`, ShapeNormal, []string{"4.50", "0.50"}},
		{"free roll", HandBuyIn, `buyIn: Free level: 3`, ShapeFreeRoll, []string{}},
		{"tournament blinds", Blinds, `Holdem no limit (25/100/200) - 2023`, ShapeTournament, []string{"25", "100", "200"}},
		{"cash blinds", Blinds, `Holdem no limit (0.01€/0.02€) - 2023`, ShapeCashGame, []string{"0.01€", "0.02€"}},
		{"summary free", SummaryBuyIn, `Buy-In : 0 €`, ShapeFreeRoll, []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			shape, m, ok := Match(tt.list, tt.text)
			require.True(t, ok)
			assert.Equal(t, tt.shape, shape)
			assert.Equal(t, tt.groups, m[1:])
		})
	}

	shape, m, ok := Match(HandBuyIn, "CashGame - HandId: #1-2-3")
	assert.False(t, ok)
	assert.Equal(t, ShapeNone, shape)
	assert.Nil(t, m)
}

func TestPlayerNames(t *testing.T) {
	t.Parallel()

	tests := []struct {
		line string
		name string
	}{
		{"Seat 4: SB Warrior34 (18548, 2.25€ bounty)", "SB Warrior34"},
		{"Seat 7: toto&co (2890)", "toto&co"},
		{"Seat 2: Éloïse_93 (1.68€)", "Éloïse_93"},
	}
	for _, tt := range tests {
		m := Player.Find(tt.line)
		require.NotNil(t, m, tt.line)
		assert.Equal(t, tt.name, m[2])
	}

	assert.Nil(t, Player.Find("Seat 5: GoToVG (small blind) won 7575"))
}

func TestSectionHeader(t *testing.T) {
	t.Parallel()

	text := "*** ANTE/BLINDS ***\n*** PRE-FLOP ***\n*** FLOP *** [7h 2d 5c]\n*** SHOW DOWN ***\n*** SUMMARY ***"
	var names []string
	for _, m := range SectionHeader.FindAll(text) {
		names = append(names, m[1])
	}
	assert.Equal(t, []string{"ANTE/BLINDS", HeaderPreflop, HeaderFlop, "SHOW DOWN", "SUMMARY"}, names)
}
