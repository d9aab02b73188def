package parser

import (
	"strings"

	"github.com/lox/pkrhistory/internal/amount"
	"github.com/lox/pkrhistory/internal/patterns"
	"github.com/lox/pkrhistory/internal/record"
)

var streetHeaders = map[string]record.Street{
	patterns.HeaderPreflop: record.Preflop,
	patterns.HeaderFlop:    record.Flop,
	patterns.HeaderTurn:    record.Turn,
	patterns.HeaderRiver:   record.River,
}

// SegmentStreets cuts the hand text into one block per street. A block runs
// from the end of its header to the start of the next section
// header, or to the end of the text. Streets whose header is absent are not
// present in the result. When a header repeats, the first one wins.
func SegmentStreets(text string) map[record.Street]string {
	blocks := make(map[record.Street]string, len(record.Streets))
	headers := patterns.SectionHeader.Re.FindAllStringSubmatchIndex(text, -1)
	for i, h := range headers {
		street, ok := streetHeaders[text[h[2]:h[3]]]
		if !ok {
			continue
		}
		if _, seen := blocks[street]; seen {
			continue
		}
		end := len(text)
		if i+1 < len(headers) {
			end = headers[i+1][0]
		}
		blocks[street] = text[h[1]:end]
	}
	return blocks
}

// ParseActions scans one street block for action lines, in source order.
func ParseActions(block string) []record.Action {
	matches := patterns.Action.FindAll(block)
	actions := make([]record.Action, 0, len(matches))
	for _, m := range matches {
		actions = append(actions, record.Action{
			Player:     strings.TrimSpace(m[1]),
			Action:     record.ActionKind(m[2]),
			Amount:     amount.ToFloat(m[3]),
			RaiseTotal: amount.ToFloat(m[4]),
			IsAllIn:    m[5] != "",
		})
	}
	return actions
}

// ExtractActions returns the actions of all four streets. Streets that were
// never reached have an empty sequence.
func ExtractActions(text string) record.Actions {
	actions := record.NewActions()
	blocks := SegmentStreets(text)
	for _, street := range record.Streets {
		if block, ok := blocks[street]; ok {
			actions.Set(street, ParseActions(block))
		}
	}
	return actions
}
