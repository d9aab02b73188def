package main

import (
	"io"
	"os"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/rs/zerolog"

	"github.com/lox/pkrhistory/cmd/pkrhistory/shared"
	"github.com/lox/pkrhistory/internal/config"
)

// version is set by ldflags during build
var version = "dev"

// Globals are the flags shared by every command.
type Globals struct {
	Config  string `help:"Path to the HCL config file" default:"pkrhistory.hcl" type:"path"`
	Debug   bool   `help:"Enable debug logging"`
	LogJSON bool   `name:"log-json" help:"Log JSON lines instead of console output"`
	NoColor bool   `name:"no-color" help:"Disable colored output"`
}

// Logger builds the command logger on stderr.
func (g *Globals) Logger() zerolog.Logger {
	return shared.NewLogger(os.Stderr, shared.LogOptions{Debug: g.Debug, JSON: g.LogJSON, NoColor: g.NoColor})
}

// LoadConfig loads the configuration file and environment overrides.
func (g *Globals) LoadConfig() (*config.Config, error) {
	return config.Load(g.Config)
}

type CLI struct {
	Globals

	Version      kong.VersionFlag `short:"v" help:"Show version"`
	ParseHand    ParseHandCmd     `cmd:"parse-hand" help:"Parse a hand history file and print the records"`
	ParseSummary ParseSummaryCmd  `cmd:"parse-summary" help:"Parse a tournament summary file and print the records"`
	Split        SplitCmd         `cmd:"" help:"Split a history file into one file per hand"`
	Batch        BatchCmd         `cmd:"" help:"Parse every stored hand history into the configured storage"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("pkrhistory"),
		kong.Description("Winamax hand history and tournament summary parser"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
		kong.BindTo(os.Stdout, (*io.Writer)(nil)),
	)
	if cli.NoColor {
		lipgloss.SetColorProfile(termenv.Ascii)
	}
	err := ctx.Run(&cli.Globals)
	ctx.FatalIfErrorf(err)
}
