// Package names reconciles Sleeper player names with the vocabulary the
// rankings site uses. Most names match verbatim; the rest come from a
// persisted override file. A name with no entry at all is deliberately left
// untranslatable — the rankings merge treats such players as unranked
// rather than guessing.
package names

import (
	"lineupbot/internal/models"
	"lineupbot/internal/store"
)

const overridesFile = "name_overrides.json"

type Lookup struct {
	entries map[string]string
}

// NewLookup seeds the lookup from the player catalog: named players map to
// themselves, team defenses to their team code. Overrides from the store,
// if present, replace seeded entries for players the rankings site spells
// differently.
func NewLookup(catalog map[string]models.CatalogPlayer, st *store.JSONStore) (*Lookup, error) {
	entries := make(map[string]string, len(catalog))
	for id, cp := range catalog {
		if cp.FullName != "" {
			entries[cp.FullName] = cp.FullName
		} else {
			entries[id] = id
		}
	}

	if st != nil {
		var overrides map[string]string
		err := st.Read(overridesFile, &overrides)
		if err != nil && !store.IsNotExist(err) {
			return nil, err
		}
		for from, to := range overrides {
			entries[from] = to
		}
	}

	return &Lookup{entries: entries}, nil
}

// Translate returns the rankings-side name for a roster-side name, or false
// when the lookup has no entry.
func (l *Lookup) Translate(name string) (string, bool) {
	out, ok := l.entries[name]
	return out, ok
}
