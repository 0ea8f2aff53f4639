package menu

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/casarosier/cms-migrate/pkg/logger"
	"github.com/casarosier/cms-migrate/pkg/models"
)

// Correction maps one known-stale path to its corrected form. Corrections
// are data, not code: a hand-maintained, auditable list shipped as JSON.
// Wrong entries propagate silently; the verifier is the check.
type Correction struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// LoadCorrections reads a correction table from a JSON file.
func LoadCorrections(path string) ([]Correction, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read corrections file '%s': %w", path, err)
	}

	var table []Correction
	if err := json.Unmarshal(data, &table); err != nil {
		return nil, fmt.Errorf("failed to parse corrections file '%s': %w", path, err)
	}
	return table, nil
}

// Apply rewrites stale paths in place, walking top-level items and one
// level of submenu. Names and structure are never touched, only path
// strings. Returns the number of rewrites.
func Apply(items []models.MenuItem, table []Correction) int {
	lookup := make(map[string]string, len(table))
	for _, c := range table {
		lookup[c.From] = c.To
	}

	changed := 0
	for i := range items {
		if to, ok := lookup[items[i].Path]; ok {
			logger.Infof("Fixing %s: %s -> %s", items[i].Name, items[i].Path, to)
			items[i].Path = to
			changed++
		}
		for si := range items[i].Submenu {
			sub := &items[i].Submenu[si]
			if to, ok := lookup[sub.Path]; ok {
				logger.Infof("Fixing submenu %s: %s -> %s", sub.Name, sub.Path, to)
				sub.Path = to
				changed++
			}
		}
	}
	return changed
}
