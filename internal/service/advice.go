package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"lineupbot/internal/api/sleeper"
	"lineupbot/internal/lineup"
	"lineupbot/internal/models"
	"lineupbot/internal/names"
	"lineupbot/internal/repository/memory"
	"lineupbot/internal/store"
)

// RankingsProvider serves expert consensus rankings for a scoring format.
type RankingsProvider interface {
	WeeklyRankings(ctx context.Context, position, format string) ([]lineup.RankedPlayer, error)
	ROSRankings(ctx context.Context, format string) ([]lineup.RankedPlayer, error)
}

// AdviceService wires the Sleeper API, the rankings scraper, and the lineup
// engine into the reports the bot sends.
type AdviceService struct {
	api      *sleeper.API
	rankings RankingsProvider
	repo     *memory.Repository
	store    *store.JSONStore

	username   string
	leagueName string
}

func NewAdviceService(api *sleeper.API, rankings RankingsProvider, repo *memory.Repository, st *store.JSONStore, username, leagueName string) *AdviceService {
	return &AdviceService{
		api:        api,
		rankings:   rankings,
		repo:       repo,
		store:      st,
		username:   username,
		leagueName: leagueName,
	}
}

// leagueContext resolves the configured user's league and the current sport
// state, cached for 24 hours like the player catalog.
func (s *AdviceService) leagueContext(ctx context.Context) (*models.LeagueContext, error) {
	if lc := s.repo.GetLeagueContext(); lc != nil && time.Since(lc.LastUpdated) < 24*time.Hour {
		return lc, nil
	}

	user, err := s.api.GetUser(ctx, s.username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("sleeper user %q not found", s.username)
	}

	state, err := s.api.GetState(ctx, "nfl")
	if err != nil {
		return nil, err
	}
	if state == nil {
		return nil, fmt.Errorf("nfl state not available")
	}

	leagues, err := s.api.GetUserLeagues(ctx, user.UserID, state.LeagueSeason)
	if err != nil {
		return nil, err
	}
	if len(leagues) == 0 {
		return nil, fmt.Errorf("no leagues found for %q in %s", s.username, state.LeagueSeason)
	}

	league := leagues[0]
	if s.leagueName != "" {
		found := false
		for _, l := range leagues {
			if l.Name == s.leagueName {
				league = l
				found = true
				break
			}
		}
		if !found {
			return nil, fmt.Errorf("league %q not found", s.leagueName)
		}
	}

	lc := &models.LeagueContext{
		User:        *user,
		League:      league,
		State:       *state,
		LastUpdated: time.Now(),
	}
	s.repo.SaveLeagueContext(lc)
	slog.Info("Resolved league", "league", league.Name, "season", state.LeagueSeason, "week", state.Week)
	return lc, nil
}

// rosterFor loads one owner's roster players out of the catalog.
func (s *AdviceService) rosterFor(ctx context.Context, lc *models.LeagueContext, ownerID string) ([]models.Player, error) {
	rosters, err := s.api.GetLeagueRosters(ctx, lc.League.LeagueID)
	if err != nil {
		return nil, err
	}

	var entry *models.RosterEntry
	for i, r := range rosters {
		if r.OwnerID == ownerID {
			entry = &rosters[i]
			break
		}
	}
	if entry == nil {
		return nil, fmt.Errorf("no roster for owner %s", ownerID)
	}

	catalog, err := s.api.GetPlayers(ctx)
	if err != nil {
		return nil, err
	}
	if catalog == nil {
		return nil, fmt.Errorf("player catalog not available")
	}

	return sleeper.RosterPlayers(catalog, entry.Players), nil
}

// scoredRoster is the configured user's roster with this week's projected
// points attached.
func (s *AdviceService) scoredRoster(ctx context.Context, lc *models.LeagueContext) ([]models.Player, error) {
	roster, err := s.rosterFor(ctx, lc, lc.User.UserID)
	if err != nil {
		return nil, err
	}

	projections, err := s.api.WeekProjections(ctx, lc.State.SeasonType, lc.State.LeagueSeason, lc.State.Week)
	if err != nil {
		return nil, err
	}
	if projections == nil {
		return nil, fmt.Errorf("no projections for week %d", lc.State.Week)
	}

	merged := lineup.MergeProjections(roster, projections)
	return lineup.ScoreRoster(merged, lc.League.ScoringSettings), nil
}

func (s *AdviceService) nameLookup(ctx context.Context) (*names.Lookup, error) {
	catalog, err := s.api.GetPlayers(ctx)
	if err != nil {
		return nil, err
	}
	return names.NewLookup(catalog, s.store)
}

// RosterReport lists the user's roster with projected points for the week.
func (s *AdviceService) RosterReport(ctx context.Context) (string, error) {
	lc, err := s.leagueContext(ctx)
	if err != nil {
		return "", fmt.Errorf("error resolving league: %w", err)
	}

	roster, err := s.scoredRoster(ctx, lc)
	if err != nil {
		return "", fmt.Errorf("error loading roster: %w", err)
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("🏈 *%s — Week %d Projections*\n\n", lc.League.Name, lc.State.Week))
	for _, p := range roster {
		sb.WriteString(fmt.Sprintf("▫️ %s (%s) - %.2f pts\n",
			p.DisplayName(), strings.Join(p.Positions, ", "), p.ProjectedPoints))
	}
	return sb.String(), nil
}

// OptimalLineup builds the projection-maximizing starting lineup.
func (s *AdviceService) OptimalLineup(ctx context.Context) (string, error) {
	lc, err := s.leagueContext(ctx)
	if err != nil {
		return "", fmt.Errorf("error resolving league: %w", err)
	}

	roster, err := s.scoredRoster(ctx, lc)
	if err != nil {
		return "", fmt.Errorf("error loading roster: %w", err)
	}

	optimal := lineup.OptimizeByProjection(roster, lc.League.RosterPositions)

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("📈 *Highest Projected Lineup — Week %d*\n\n", lc.State.Week))
	for _, a := range optimal {
		if a.Player == nil {
			sb.WriteString(fmt.Sprintf("▫️ %s: (empty)\n", a.Slot))
			continue
		}
		sb.WriteString(fmt.Sprintf("▫️ %s: %s - %.2f pts\n", a.Slot, a.Player.DisplayName(), a.Points))
	}
	sb.WriteString(fmt.Sprintf("\nTotal projected: %.2f pts", optimal.TotalPoints()))
	return sb.String(), nil
}

// ExpertLineup builds the lineup the weekly expert consensus rankings
// recommend.
func (s *AdviceService) ExpertLineup(ctx context.Context) (string, error) {
	lc, err := s.leagueContext(ctx)
	if err != nil {
		return "", fmt.Errorf("error resolving league: %w", err)
	}

	format, err := lineup.ScoringFormat(lc.League.ScoringSettings)
	if err != nil {
		return "", err
	}

	roster, err := s.scoredRoster(ctx, lc)
	if err != nil {
		return "", fmt.Errorf("error loading roster: %w", err)
	}

	rankings, err := s.weeklyRankings(ctx, roster, format)
	if err != nil {
		return "", fmt.Errorf("error fetching expert rankings: %w", err)
	}

	lookup, err := s.nameLookup(ctx)
	if err != nil {
		return "", err
	}

	ranked := lineup.MergeWeeklyRankings(roster, rankings, lookup)
	recommended := lineup.OptimizeByRanking(ranked, lc.League.RosterPositions)

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("🧠 *Expert Recommended Lineup — Week %d*\n\n", lc.State.Week))
	for _, a := range recommended {
		if a.Player == nil {
			sb.WriteString(fmt.Sprintf("▫️ %s: (no ranked option)\n", a.Slot))
			continue
		}
		rank := a.Player.Rankings[lineup.RankingKey(a.Slot)]
		sb.WriteString(fmt.Sprintf("▫️ %s: %s - ECR #%d\n", a.Slot, a.Player.DisplayName(), rank))
	}
	return sb.String(), nil
}

// weeklyRankings scrapes every position list the roster can use, plus the
// two flex lists, once per request.
func (s *AdviceService) weeklyRankings(ctx context.Context, roster []models.Player, format string) (map[string][]lineup.RankedPlayer, error) {
	needed := map[string]bool{"FLEX": true, "SUPER_FLEX": true}
	for _, p := range roster {
		for _, pos := range p.Positions {
			needed[pos] = true
		}
	}

	rankings := make(map[string][]lineup.RankedPlayer, len(needed))
	for pos := range needed {
		list, err := s.rankings.WeeklyRankings(ctx, pos, format)
		if err != nil {
			return nil, fmt.Errorf("fetching %s rankings: %w", pos, err)
		}
		rankings[pos] = list
	}
	return rankings, nil
}

// ROSReport lists the roster with rest-of-season expert ranks.
func (s *AdviceService) ROSReport(ctx context.Context) (string, error) {
	lc, err := s.leagueContext(ctx)
	if err != nil {
		return "", fmt.Errorf("error resolving league: %w", err)
	}

	format, err := lineup.ScoringFormat(lc.League.ScoringSettings)
	if err != nil {
		return "", err
	}

	roster, err := s.rosterFor(ctx, lc, lc.User.UserID)
	if err != nil {
		return "", fmt.Errorf("error loading roster: %w", err)
	}

	overall, err := s.rankings.ROSRankings(ctx, format)
	if err != nil {
		return "", fmt.Errorf("error fetching ROS rankings: %w", err)
	}

	lookup, err := s.nameLookup(ctx)
	if err != nil {
		return "", err
	}

	ranked := lineup.MergeROSRankings(roster, overall, lookup)

	var sb strings.Builder
	sb.WriteString("🔭 *Rest-of-Season Expert Ranks*\n\n")
	for _, p := range ranked {
		if p.ROSRank == models.Unranked {
			sb.WriteString(fmt.Sprintf("▫️ %s - unranked\n", p.DisplayName()))
			continue
		}
		sb.WriteString(fmt.Sprintf("▫️ %s - #%d overall\n", p.DisplayName(), p.ROSRank))
	}
	return sb.String(), nil
}
