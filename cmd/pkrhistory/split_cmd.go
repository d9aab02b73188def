package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/lox/pkrhistory/internal/fileutil"
	"github.com/lox/pkrhistory/internal/parser"
)

// SplitCmd writes each hand of a history file to its own file named after
// the hand id.
type SplitCmd struct {
	File string `arg:"" help:"Hand history file" type:"existingfile"`
	Out  string `help:"Output directory" required:"" type:"path"`
}

func (cmd *SplitCmd) Run(g *Globals, out io.Writer) error {
	return cmd.run(g.Logger(), out)
}

func (cmd *SplitCmd) run(logger zerolog.Logger, out io.Writer) error {
	text, err := os.ReadFile(cmd.File)
	if err != nil {
		return err
	}

	written := 0
	for i, chunk := range parser.SplitHands(string(text)) {
		id, ok := parser.ExtractHandID(chunk)
		if !ok {
			logger.Warn().Int("hand", i+1).Str("file", cmd.File).Msg("Skipping hand without id")
			continue
		}
		path := filepath.Join(cmd.Out, id+".txt")
		if err := fileutil.WriteFileAtomic(path, []byte(chunk+"\n"), 0o644); err != nil {
			return err
		}
		written++
	}

	logger.Debug().Int("hands", written).Str("dir", cmd.Out).Msg("Split complete")
	_, err = fmt.Fprintf(out, "%d hands written to %s\n", written, cmd.Out)
	return err
}
