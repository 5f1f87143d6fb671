package sleeper

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"lineupbot/internal/models"
	"lineupbot/internal/store"
)

const (
	catalogFile = "player_info.json"
	catalogTTL  = 24 * time.Hour
)

// cachedCatalog is the on-disk shape of the player catalog: the full
// /players/nfl payload plus the fetch time. Sleeper asks that the catalog
// endpoint be hit at most once a day.
type cachedCatalog struct {
	LastUpdated time.Time                       `json:"last_updated"`
	Data        map[string]models.CatalogPlayer `json:"data"`
}

type CatalogCache struct {
	store *store.JSONStore
}

func NewCatalogCache(st *store.JSONStore) *CatalogCache {
	return &CatalogCache{store: st}
}

func (c *CatalogCache) load() (map[string]models.CatalogPlayer, bool) {
	var cached cachedCatalog
	if err := c.store.Read(catalogFile, &cached); err != nil {
		if !store.IsNotExist(err) {
			slog.Warn("Ignoring unreadable player catalog cache", "error", err)
		}
		return nil, false
	}
	if time.Since(cached.LastUpdated) > catalogTTL {
		return nil, false
	}
	return cached.Data, true
}

func (c *CatalogCache) save(data map[string]models.CatalogPlayer) {
	cached := cachedCatalog{LastUpdated: time.Now(), Data: data}
	if err := c.store.Write(catalogFile, cached); err != nil {
		slog.Warn("Failed to write player catalog cache", "error", err)
	}
}

// GetPlayers returns the full player catalog, from the local cache when it
// is fresher than 24 hours, otherwise from the API.
func (a *API) GetPlayers(ctx context.Context) (map[string]models.CatalogPlayer, error) {
	if a.catalog != nil {
		if data, ok := a.catalog.load(); ok {
			return data, nil
		}
	}

	var catalog map[string]models.CatalogPlayer
	found, err := a.client.Get(ctx, "/players/nfl", &catalog)
	if err != nil {
		return nil, fmt.Errorf("fetching player catalog: %w", err)
	}
	if !found {
		return nil, nil
	}

	if a.catalog != nil {
		a.catalog.save(catalog)
	}
	return catalog, nil
}

// RosterPlayers resolves a roster's player id list against the catalog into
// domain players. Ids missing from the catalog are skipped.
func RosterPlayers(catalog map[string]models.CatalogPlayer, playerIDs []string) []models.Player {
	players := make([]models.Player, 0, len(playerIDs))
	for _, id := range playerIDs {
		cp, ok := catalog[id]
		if !ok {
			continue
		}
		players = append(players, models.Player{
			ID:            id,
			Name:          cp.FullName,
			Positions:     cp.FantasyPositions,
			Team:          cp.Team,
			StatsID:       cp.StatsID,
			FantasyDataID: cp.FantasyDataID,
		})
	}
	return players
}
