package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeyDerivation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		key     string
		dest    string
		summary string
		phh     string
	}{
		{
			key:     "data/histories/split/2023/01/04/GUERILLA(608341002)/2612804708405870609-6-1672853787.txt",
			dest:    "data/histories/parsed/2023/01/04/GUERILLA(608341002)/2612804708405870609-6-1672853787.json",
			summary: "data/summaries/2023/01/04/GUERILLA(608341002).txt",
			phh:     "data/histories/parsed/2023/01/04/GUERILLA(608341002)/2612804708405870609-6-1672853787.phh",
		},
		{
			key:     "histories/split/2023/05/07/RING(651237360)/42-1-1683468000.txt",
			dest:    "histories/parsed/2023/05/07/RING(651237360)/42-1-1683468000.json",
			summary: "summaries/2023/05/07/RING(651237360).txt",
			phh:     "histories/parsed/2023/05/07/RING(651237360)/42-1-1683468000.phh",
		},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.dest, DestinationKey(tt.key))
		assert.Equal(t, tt.summary, SummaryKey(tt.key))
		assert.Equal(t, tt.phh, PHHKey(tt.key))
		assert.True(t, IsHistoryKey(tt.key))
	}

	assert.False(t, IsHistoryKey("summaries/2023/05/07/RING(651237360).txt"))
	assert.False(t, IsHistoryKey("histories/split/2023/notes.md"))
}
