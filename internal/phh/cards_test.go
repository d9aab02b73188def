package phh_test

import (
	"testing"

	"github.com/lox/pkrhistory/internal/phh"
	"github.com/lox/pkrhistory/internal/record"
)

func TestNormalizeCard(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"10h", "Th"},
		{"10H", "Th"},
		{"ah", "Ah"},
		{"As", "As"},
		{"tD", "Td"},
		{"??", "??"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := phh.NormalizeCard(tt.in); got != tt.want {
			t.Fatalf("NormalizeCard(%q)=%q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatAction(t *testing.T) {
	tests := []struct {
		name      string
		pos       int
		action    record.Action
		want      string
		shouldUse bool
	}{
		{"fold", 0, record.Action{Action: record.Folds}, "p1 f", true},
		{"check", 1, record.Action{Action: record.Checks}, "p2 cc", true},
		{"call", 3, record.Action{Action: record.Calls, Amount: 50}, "p4 cc", true},
		{"raise uses total", 0, record.Action{Action: record.Raises, Amount: 80, RaiseTotal: 120}, "p1 cbr 120", true},
		{"bet", 1, record.Action{Action: record.Bets, Amount: 40}, "p2 cbr 40", true},
		{"cash bet", 2, record.Action{Action: record.Bets, Amount: 0.07}, "p3 cbr 0.07", true},
		{"zero bet", 2, record.Action{Action: record.Bets}, "", false},
		{"unknown", 2, record.Action{Action: "straddles", Amount: 10}, "# p3 straddles 10", true},
	}

	for _, tt := range tests {
		got, ok := phh.FormatAction(tt.pos, tt.action)
		if ok != tt.shouldUse {
			t.Fatalf("%s: ok=%v want %v", tt.name, ok, tt.shouldUse)
		}
		if got != tt.want {
			t.Fatalf("%s: got %q want %q", tt.name, got, tt.want)
		}
	}
}
