package patterns

// Building blocks shared by several patterns.
const (
	// name matches a Winamax screen name: 3 to 12 letters, digits, spaces and
	// a few punctuation marks, never crossing a line.
	name = `[\p{L}\p{N}_ .\-&]{3,12}`
	// num matches a plain or decimal amount such as 200, 2.25 or 0,50.
	num = `\d+(?:[.,]\d+)?`
	// money matches a monetary component of a buy-in.
	money = `[\d.,]+`
	// abbrev matches level-structure numbers, where a decimal comma only
	// appears together with a k/M suffix (1,2k).
	abbrev = `\d+[.,]\d+[kM]|\d+[kM]?`
	card   = `(\w\w)`
)

// Hand history patterns.
var (
	HandStart  = newPattern("hand_start", First, `(?m)^Winamax Poker - `)
	HandID     = newPattern("hand_id", First, `HandId: #([\d\-]+)`)
	Datetime   = newPattern("datetime", First, `- (\d{4}/\d{2}/\d{2} \d{2}:\d{2}:\d{2}) UTC`)
	Level      = newPattern("level", First, `level: (\d+)`)
	MaxPlayers = newPattern("max_players", First, `(\d+)-max`)
	ButtonSeat = newPattern("button_seat", First, `Seat #(\d+) is the button`)

	TournamentInfo = newPattern("tournament_info", First,
		`Table: ['"]([\p{L}\p{N}_\s\-&€:.'"\[\]!#]+)\((\d+)\)#(\d+)`)

	Player = newPattern("player", First,
		`Seat (\d+): (`+name+`) \((`+num+`)€?(?:, (`+num+`)\D)?`)
	Posting = newPattern("posting", First,
		`(?m)^(`+name+`)\s+posts\s+(small blind|big blind|ante)\s+(`+num+`)`)
	HeroHand = newPattern("hero_hand", First,
		`Dealt to (`+name+`) \[`+card+` `+card+`\]`)

	Flop  = newPattern("flop", First, `\*\*\* FLOP \*\*\* \[`+card+` `+card+` `+card+`\]`)
	Turn  = newPattern("turn", First, `\*\*\* TURN \*\*\* \[\w\w \w\w \w\w\]\[`+card+`\]`)
	River = newPattern("river", First, `\*\*\* RIVER \*\*\* \[\w\w \w\w \w\w \w\w\]\[`+card+`\]`)

	// SectionHeader matches every "*** NAME ***" marker; street blocks run
	// from their header to the next one.
	SectionHeader = newPattern("section_header", First, `\*\*\* ([A-Z][A-Z/ \-]*?) \*\*\*`)

	Action = newPattern("action", First,
		`(?m)^(`+name+`)\s+(calls|bets|raises|folds|checks)`+
			`(?: (`+num+`)€?)?(?: to (`+num+`)€?)?( and is all-in)?`)
	Showdown = newPattern("showdown", First, `(?m)^(.+?)\s+shows\s+\[`+card+` `+card+`\]`)
	Winner   = newPattern("winner", First,
		`(?m)^(`+name+`) collected (`+num+`)€? from (pot|main pot|side pot \d+)`)
)

// Street header texts as printed between the asterisks.
const (
	HeaderPreflop = "PRE-FLOP"
	HeaderFlop    = "FLOP"
	HeaderTurn    = "TURN"
	HeaderRiver   = "RIVER"
)

// GameType lists the game-type markers in precedence order.
var GameType = []Variant{
	{ShapeTournament, newPattern("game_type_tournament", First, `Tournament`)},
	{ShapeCashGame, newPattern("game_type_cashgame", First, `CashGame`)},
}

// Blinds lists the blind header forms: ante/sb/bb for tournaments, then
// sb/bb with currency glyphs for cash games.
var Blinds = []Variant{
	{ShapeTournament, newPattern("blinds_tournament", First, `\((\d+)/(\d+)/(\d+)\)`)},
	{ShapeCashGame, newPattern("blinds_cashgame", First, `\(([\d€.,]+)/([\d€.,]+)\)`)},
}

// HandBuyIn lists the hand-header buy-in forms: prize pool + bounty + rake,
// prize pool + rake, then the free-roll keyword.
var HandBuyIn = []Variant{
	{ShapeKnockout, newPattern("buy_in_knockout", First,
		`buyIn: (`+money+`)€ \+ (`+money+`)€ \+ (`+money+`)€`)},
	{ShapeNormal, newPattern("buy_in_normal", First,
		`buyIn:\s+(`+money+`)€\s+\+\s+(`+money+`)€`)},
	{ShapeFreeRoll, newPattern("buy_in_freeroll", First, `buyIn: Free`)},
}

// Tournament summary patterns. Values restated in a summary use the last
// match.
var (
	SummaryStart      = newPattern("summary_start", First, `Winamax\sPoker\s-\sTournament\ssummary`)
	SummaryTournament = newPattern("summary_tournament", First,
		`Tournament summary\s*:\s*(.+)\((\d+)\)`)
	PrizePool         = newPattern("prize_pool", Last, `Prizepool\s*:\s*(`+money+`)\s?€`)
	RegisteredPlayers = newPattern("registered_players", Last, `Registered\s+players\s*:\s*(\d+)`)
	Speed             = newPattern("speed", Last, `Speed\s*:\s*(\w+)`)
	TournamentType    = newPattern("tournament_type", Last, `Type\s*:\s*(\w+)`)
	StartDate         = newPattern("start_date", Last, `(\d{4}/\d{2}/\d{2}\s\d{2}:\d{2}:\d{2}\sUTC)`)
	LevelsStructure   = newPattern("levels_structure", Last, `Levels\s*:\s*\[([^\]]*)\]`)
	// LevelBlinds reads one sb-bb:ante entry. The entry must end at a comma
	// or the end of the list, so a decimal-comma ante cannot run into the
	// next entry.
	LevelBlinds = newPattern("level_blinds", First,
		`(`+abbrev+`)-(`+abbrev+`):(`+abbrev+`)\s*(?:,|$)`)
	AmountWon = newPattern("amount_won", Last,
		`You\s+won\s+(`+money+`)\s?€(?:\s*\+\s*(?:Bounty\s+)?(`+money+`)\s?€)?`)
	FinalPosition = newPattern("final_position", Last, `You\s+finished\s+in\s+(\d+)`)
)

// SummaryBuyIn lists the summary buy-in forms in the same precedence as
// HandBuyIn.
var SummaryBuyIn = []Variant{
	{ShapeKnockout, newPattern("summary_buy_in_knockout", Last,
		`Buy-In\s*:\s*(`+money+`)\s?€\s?\+\s?(`+money+`)\s?€\s?\+\s?(`+money+`)\s?€?`)},
	{ShapeNormal, newPattern("summary_buy_in_normal", Last,
		`Buy-In\s*:\s*(`+money+`)\s?€\s?\+\s?(`+money+`)\s?€?`)},
	{ShapeFreeRoll, newPattern("summary_buy_in_freeroll", Last, `Buy-In\s*:\s*(?:Free|0\s?€)`)},
}

// Catalog returns every pattern, including variant members, in declaration
// order.
func Catalog() []Pattern {
	out := []Pattern{
		HandStart, HandID, Datetime, Level, MaxPlayers, ButtonSeat, TournamentInfo,
		Player, Posting, HeroHand, Flop, Turn, River, SectionHeader, Action, Showdown, Winner,
		SummaryStart, SummaryTournament, PrizePool, RegisteredPlayers, Speed, TournamentType,
		StartDate, LevelsStructure, LevelBlinds, AmountWon, FinalPosition,
	}
	for _, group := range [][]Variant{GameType, Blinds, HandBuyIn, SummaryBuyIn} {
		for _, v := range group {
			out = append(out, v.Pattern)
		}
	}
	return out
}
