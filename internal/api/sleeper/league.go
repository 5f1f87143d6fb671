package sleeper

import (
	"context"
	"fmt"

	"lineupbot/internal/models"
)

type API struct {
	client  *Client
	catalog *CatalogCache
}

func NewAPI(client *Client, catalog *CatalogCache) *API {
	return &API{client: client, catalog: catalog}
}

// GetUser resolves a username or user id. A nil result means not found.
func (a *API) GetUser(ctx context.Context, usernameOrID string) (*models.User, error) {
	var user models.User
	found, err := a.client.Get(ctx, fmt.Sprintf("/user/%s", usernameOrID), &user)
	if err != nil {
		return nil, fmt.Errorf("fetching user %s: %w", usernameOrID, err)
	}
	if !found {
		return nil, nil
	}
	return &user, nil
}

// GetUserLeagues lists the user's NFL leagues for a season.
func (a *API) GetUserLeagues(ctx context.Context, userID, season string) ([]models.League, error) {
	var leagues []models.League
	endpoint := fmt.Sprintf("/user/%s/leagues/nfl/%s", userID, season)
	found, err := a.client.Get(ctx, endpoint, &leagues)
	if err != nil {
		return nil, fmt.Errorf("fetching leagues: %w", err)
	}
	if !found {
		return nil, nil
	}
	return leagues, nil
}

// GetLeagueRosters lists every roster in a league.
func (a *API) GetLeagueRosters(ctx context.Context, leagueID string) ([]models.RosterEntry, error) {
	var rosters []models.RosterEntry
	endpoint := fmt.Sprintf("/league/%s/rosters", leagueID)
	found, err := a.client.Get(ctx, endpoint, &rosters)
	if err != nil {
		return nil, fmt.Errorf("fetching rosters: %w", err)
	}
	if !found {
		return nil, nil
	}
	return rosters, nil
}

// GetLeagueUsers lists the league members, for mapping owner ids to names.
func (a *API) GetLeagueUsers(ctx context.Context, leagueID string) ([]models.LeagueUser, error) {
	var users []models.LeagueUser
	endpoint := fmt.Sprintf("/league/%s/users", leagueID)
	found, err := a.client.Get(ctx, endpoint, &users)
	if err != nil {
		return nil, fmt.Errorf("fetching league users: %w", err)
	}
	if !found {
		return nil, nil
	}
	return users, nil
}

// GetState returns the sport's current season and week.
func (a *API) GetState(ctx context.Context, sport string) (*models.State, error) {
	var state models.State
	found, err := a.client.Get(ctx, fmt.Sprintf("/state/%s", sport), &state)
	if err != nil {
		return nil, fmt.Errorf("fetching state: %w", err)
	}
	if !found {
		return nil, nil
	}
	return &state, nil
}

// WeekProjections fetches one week's projected statistics per player.
func (a *API) WeekProjections(ctx context.Context, seasonType, season string, week int) (models.WeekProjections, error) {
	var projections models.WeekProjections
	endpoint := fmt.Sprintf("/projections/nfl/%s/%s/%d", seasonType, season, week)
	found, err := a.client.Get(ctx, endpoint, &projections)
	if err != nil {
		return nil, fmt.Errorf("fetching week %d projections: %w", week, err)
	}
	if !found {
		return nil, nil
	}
	return projections, nil
}
