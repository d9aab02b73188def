package shared

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLoggerJSON(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf, LogOptions{JSON: true})

	logger.Debug().Msg("hidden")
	logger.Info().Str("key", "histories/split/a.txt").Msg("Hand stored")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "info", line["level"])
	assert.Equal(t, "histories/split/a.txt", line["key"])
	assert.Equal(t, "Hand stored", line["message"])
}

func TestNewLoggerConsoleDebug(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf, LogOptions{Debug: true, NoColor: true})

	logger.Debug().Str("hand_id", "1-2-3").Msg("Parsed")
	assert.Contains(t, buf.String(), "DBG")
	assert.Contains(t, buf.String(), "hand_id=1-2-3")
}
