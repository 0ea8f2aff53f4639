package migrate

import (
	"strings"

	"github.com/casarosier/cms-migrate/internal/legacy"
)

var recoverableTypes = map[string]bool{
	"class":     true,
	"workshop":  true,
	"private":   true,
	"gift-card": true,
}

// Classify decides whether a record recovered from history becomes a course
// or gift card. Records without a title are incomplete and dropped. Records
// with no type are accepted only when the entity id looks like a gift card,
// in which case the type is coerced. Anything else is dropped; discards are
// counted by the caller, not treated as errors.
func Classify(item *legacy.CourseLike) bool {
	if item == nil || item.Title == "" {
		return false
	}
	if recoverableTypes[item.Type] {
		return true
	}
	if item.Type == "" && strings.Contains(item.ID, "gift-card") {
		item.Type = "gift-card"
		return true
	}
	return false
}
