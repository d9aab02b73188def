package storage

import (
	"path"
	"regexp"
	"strings"
)

// Key layout segments.
const (
	SplitPrefix   = "histories/split"
	ParsedPrefix  = "histories/parsed"
	SummaryPrefix = "summaries"
)

var handFileSuffix = regexp.MustCompile(`/[\d\-]+\.txt$`)

// DestinationKey maps a split history key to the key its parsed record is
// stored under: histories/split/.../X.txt becomes histories/parsed/.../X.json.
func DestinationKey(key string) string {
	key = strings.Replace(key, SplitPrefix, ParsedPrefix, 1)
	return strings.TrimSuffix(key, ".txt") + ".json"
}

// SummaryKey maps a split history key to the summary of its tournament:
// histories/split/<dir>/<tournament>/<hand>.txt becomes
// summaries/<dir>/<tournament>.txt.
func SummaryKey(key string) string {
	key = strings.Replace(key, SplitPrefix, SummaryPrefix, 1)
	return handFileSuffix.ReplaceAllString(key, ".txt")
}

// PHHKey maps a split history key to the key of its PHH export.
func PHHKey(key string) string {
	dest := DestinationKey(key)
	return strings.TrimSuffix(dest, path.Ext(dest)) + ".phh"
}

// IsHistoryKey reports whether key names a raw hand history file.
func IsHistoryKey(key string) bool {
	return strings.Contains(key, SplitPrefix+"/") && strings.HasSuffix(key, ".txt")
}
