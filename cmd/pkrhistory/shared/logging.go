// Package shared holds process setup common to pkrhistory commands.
package shared

import (
	"io"
	"time"

	"github.com/rs/zerolog"
)

// LogOptions selects the level and format of the command logger.
type LogOptions struct {
	Debug   bool
	JSON    bool
	NoColor bool
}

func (o LogOptions) level() zerolog.Level {
	if o.Debug {
		return zerolog.DebugLevel
	}
	return zerolog.InfoLevel
}

// NewLogger returns a console logger writing to w, or a JSON lines logger
// when opts.JSON is set.
func NewLogger(w io.Writer, opts LogOptions) zerolog.Logger {
	if opts.JSON {
		zerolog.TimeFieldFormat = time.RFC3339Nano
		return zerolog.New(w).Level(opts.level()).With().Timestamp().Logger()
	}

	console := zerolog.ConsoleWriter{Out: w, NoColor: opts.NoColor, TimeFormat: time.Kitchen}
	return zerolog.New(console).Level(opts.level()).With().Timestamp().Logger()
}
