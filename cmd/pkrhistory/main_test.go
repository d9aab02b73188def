package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/lox/pkrhistory/internal/parser"
	"github.com/lox/pkrhistory/internal/pipeline"
)

func testParser() *parser.Parser {
	return parser.New(parser.Config{Hero: "manggy94"}, zerolog.Nop())
}

// historyFile concatenates fixtures into a temporary history file.
func historyFile(t *testing.T, fixtures ...string) string {
	t.Helper()
	var parts []string
	for _, name := range fixtures {
		data, err := os.ReadFile(filepath.Join("testdata", name))
		if err != nil {
			t.Fatal(err)
		}
		parts = append(parts, string(data))
	}
	path := filepath.Join(t.TempDir(), "history.txt")
	if err := os.WriteFile(path, []byte(strings.Join(parts, "\n\n")), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestParseHandJSONMergesSummary(t *testing.T) {
	cmd := ParseHandCmd{
		File:    historyFile(t, "tournament_hand.txt"),
		Summary: filepath.Join("testdata", "summary.txt"),
		Format:  "json",
	}
	var out bytes.Buffer
	if err := cmd.run(testParser(), zerolog.Nop(), &out); err != nil {
		t.Fatalf("run: %v", err)
	}

	var hand struct {
		HandID         string         `json:"hand_id"`
		TournamentInfo map[string]any `json:"tournament_info"`
	}
	if err := json.Unmarshal(out.Bytes(), &hand); err != nil {
		t.Fatalf("output is not a single JSON hand: %v\n%s", err, out.String())
	}
	if hand.HandID != "2612804708405870609-6-1672853787" {
		t.Fatalf("hand_id = %q", hand.HandID)
	}
	if got := hand.TournamentInfo["tournament_name"]; got != "RING" {
		t.Fatalf("tournament_name = %v, want RING", got)
	}
}

func TestParseHandJSONListsSeveralHands(t *testing.T) {
	cmd := ParseHandCmd{File: historyFile(t, "tournament_hand.txt", "cashgame_hand.txt"), Format: "json"}
	var out bytes.Buffer
	if err := cmd.run(testParser(), zerolog.Nop(), &out); err != nil {
		t.Fatalf("run: %v", err)
	}

	var hands []map[string]any
	if err := json.Unmarshal(out.Bytes(), &hands); err != nil {
		t.Fatalf("output is not a JSON list: %v", err)
	}
	if len(hands) != 2 {
		t.Fatalf("got %d hands, want 2", len(hands))
	}
	if hands[1]["game_type"] != "CashGame" {
		t.Fatalf("second hand game_type = %v", hands[1]["game_type"])
	}
}

func TestParseHandPHH(t *testing.T) {
	cmd := ParseHandCmd{File: historyFile(t, "tournament_hand.txt", "cashgame_hand.txt"), Format: "phh"}
	var out bytes.Buffer
	if err := cmd.run(testParser(), zerolog.Nop(), &out); err != nil {
		t.Fatalf("run: %v", err)
	}

	text := out.String()
	for _, want := range []string{`hand = "2612804708405870609-6-1672853787"`, "# ─── hand 2 ───", `hand = "18346546-1337-1673019478"`} {
		if !strings.Contains(text, want) {
			t.Errorf("output missing %q", want)
		}
	}
}

func TestParseHandWithoutHands(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.txt")
	if err := os.WriteFile(path, []byte("nothing here\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cmd := ParseHandCmd{File: path, Format: "json"}
	if err := cmd.run(testParser(), zerolog.Nop(), &bytes.Buffer{}); err == nil {
		t.Fatal("expected an error for a file without hands")
	}
}

func TestParseSummaryCmd(t *testing.T) {
	cmd := ParseSummaryCmd{File: historyFile(t, "summary.txt", "summary_winnings.txt")}
	var out bytes.Buffer
	if err := cmd.run(testParser(), zerolog.Nop(), &out); err != nil {
		t.Fatalf("run: %v", err)
	}

	var summaries []map[string]any
	if err := json.Unmarshal(out.Bytes(), &summaries); err != nil {
		t.Fatalf("output is not a JSON list: %v", err)
	}
	if len(summaries) != 2 || summaries[1]["nb_entries"] != 2.0 {
		t.Fatalf("unexpected summaries: %v", summaries)
	}
}

func TestParseSummaryCmdWarnsAboutBrokenSummaries(t *testing.T) {
	path := historyFile(t, "summary.txt")
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	broken := string(data) + "\n\nWinamax Poker - Tournament summary : no id here\n"
	if err := os.WriteFile(path, []byte(broken), 0o644); err != nil {
		t.Fatal(err)
	}

	var logs, out bytes.Buffer
	cmd := ParseSummaryCmd{File: path}
	if err := cmd.run(testParser(), zerolog.New(&logs), &out); err != nil {
		t.Fatalf("run: %v", err)
	}

	var summary map[string]any
	if err := json.Unmarshal(out.Bytes(), &summary); err != nil {
		t.Fatalf("output is not a single JSON summary: %v\n%s", err, out.String())
	}
	if summary["tournament_id"] != "651237360" {
		t.Fatalf("tournament_id = %v", summary["tournament_id"])
	}
	if !strings.Contains(logs.String(), "Some summaries could not be parsed") {
		t.Fatalf("expected a warning, got logs %q", logs.String())
	}
}

func TestParseHandSummaryIsNotMergedIntoCashGames(t *testing.T) {
	cmd := ParseHandCmd{
		File:    historyFile(t, "tournament_hand.txt", "cashgame_hand.txt"),
		Summary: filepath.Join("testdata", "summary.txt"),
		Format:  "json",
	}
	var out bytes.Buffer
	if err := cmd.run(testParser(), zerolog.Nop(), &out); err != nil {
		t.Fatalf("run: %v", err)
	}

	var hands []struct {
		GameType       string         `json:"game_type"`
		TournamentInfo map[string]any `json:"tournament_info"`
	}
	if err := json.Unmarshal(out.Bytes(), &hands); err != nil {
		t.Fatalf("output is not a JSON list: %v", err)
	}
	if len(hands) != 2 {
		t.Fatalf("got %d hands, want 2", len(hands))
	}
	if got := hands[0].TournamentInfo["speed"]; got == nil {
		t.Errorf("tournament hand was not merged: %v", hands[0].TournamentInfo)
	}
	if hands[1].GameType != "CashGame" {
		t.Fatalf("second hand game_type = %q", hands[1].GameType)
	}
	if _, ok := hands[1].TournamentInfo["speed"]; ok {
		t.Errorf("cash game was merged with a summary: %v", hands[1].TournamentInfo)
	}
	if got := hands[1].TournamentInfo["tournament_name"]; got != nil {
		t.Errorf("cash game tournament_name = %v, want null", got)
	}
}

func TestSplitCmd(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "split")
	cmd := SplitCmd{File: historyFile(t, "tournament_hand.txt", "cashgame_hand.txt"), Out: dir}
	var out bytes.Buffer
	if err := cmd.run(zerolog.Nop(), &out); err != nil {
		t.Fatalf("run: %v", err)
	}
	if got := out.String(); got != "2 hands written to "+dir+"\n" {
		t.Fatalf("output = %q", got)
	}

	data, err := os.ReadFile(filepath.Join(dir, "18346546-1337-1673019478.txt"))
	if err != nil {
		t.Fatalf("split file missing: %v", err)
	}
	if !strings.HasPrefix(string(data), "Winamax Poker - CashGame") {
		t.Fatalf("unexpected split content: %q", string(data)[:40])
	}
}

func TestRenderReport(t *testing.T) {
	report := pipeline.Report{
		RunID:     "run-1",
		Keys:      4,
		Processed: 2,
		Skipped:   1,
		Failures:  []pipeline.Failure{{Key: "histories/split/a/1-1-1.txt", Err: errors.New("hand id not found")}},
	}
	out := renderReport(report)
	for _, want := range []string{"Batch run-1", "Processed", "histories/split/a/1-1-1.txt", "hand id not found"} {
		if !strings.Contains(out, want) {
			t.Errorf("report missing %q:\n%s", want, out)
		}
	}
}
