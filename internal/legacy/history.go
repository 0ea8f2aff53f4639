package legacy

import (
	"regexp"
	"strconv"
	"strings"
)

// historyKeyRE matches history:<entityId>:version:<timestampMillis>:<suffix>.
// The entity id may itself contain colons.
var historyKeyRE = regexp.MustCompile(`^history:(.+):version:(\d+):(.+)$`)

// Entities already migrated through direct current keys; their history rows
// must not be recovered a second time.
var excludedHistoryPrefixes = []string{"page:", "blog:", "site:"}

// HistoryVersion is one parsed history row.
type HistoryVersion struct {
	Key       string
	EntityID  string
	Timestamp int64
	Suffix    string
}

// ParseHistoryKey parses a single history key. ok is false for keys that do
// not follow the versioned-snapshot convention.
func ParseHistoryKey(key string) (HistoryVersion, bool) {
	m := historyKeyRE.FindStringSubmatch(key)
	if m == nil {
		return HistoryVersion{}, false
	}
	ts, err := strconv.ParseInt(m[2], 10, 64)
	if err != nil {
		return HistoryVersion{}, false
	}
	return HistoryVersion{Key: key, EntityID: m[1], Timestamp: ts, Suffix: m[3]}, true
}

// ResolveLatest picks, per entity, the history row to actually fetch: the
// one with the greatest timestamp. Timestamp ties go to the
// lexicographically greatest suffix so resolution does not depend on scan
// order. Keys that do not parse are counted in ignored, not treated as
// errors. Entity ids under a direct-key namespace are excluded entirely.
func ResolveLatest(keys []string) (latest map[string]HistoryVersion, ignored int) {
	latest = make(map[string]HistoryVersion)

	for _, key := range keys {
		v, ok := ParseHistoryKey(key)
		if !ok {
			ignored++
			continue
		}
		if hasExcludedPrefix(v.EntityID) {
			continue
		}
		current, exists := latest[v.EntityID]
		if !exists || v.Timestamp > current.Timestamp ||
			(v.Timestamp == current.Timestamp && v.Suffix > current.Suffix) {
			latest[v.EntityID] = v
		}
	}
	return latest, ignored
}

// WinningKeys flattens a resolution to the keys worth fetching. Losing
// versions are never read.
func WinningKeys(latest map[string]HistoryVersion) []string {
	keys := make([]string, 0, len(latest))
	for _, v := range latest {
		keys = append(keys, v.Key)
	}
	return keys
}

func hasExcludedPrefix(entityID string) bool {
	for _, p := range excludedHistoryPrefixes {
		if strings.HasPrefix(entityID, p) {
			return true
		}
	}
	return false
}
