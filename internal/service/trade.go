package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"lineupbot/internal/lineup"
	"lineupbot/internal/models"
)

// fuzzyThreshold is the minimum Levenshtein similarity for accepting a
// user-typed name as a match.
const fuzzyThreshold = 0.7

// bestFuzzyMatch finds the candidate most similar to the query, or -1 when
// nothing clears the threshold.
func bestFuzzyMatch(query string, candidates []string) int {
	best := -1
	bestScore := 0.0

	for i, candidate := range candidates {
		distance := fuzzy.LevenshteinDistance(strings.ToLower(query), strings.ToLower(candidate))
		maxLen := len(query)
		if len(candidate) > maxLen {
			maxLen = len(candidate)
		}
		if maxLen == 0 {
			continue
		}
		similarity := 1 - float64(distance)/float64(maxLen)
		if similarity > fuzzyThreshold && similarity > bestScore {
			bestScore = similarity
			best = i
		}
	}

	return best
}

// resolvePlayerNames maps user-typed names to exact roster display names so
// the trade engine's exact matching works. Names nothing matches are
// returned separately for the report.
func resolvePlayerNames(roster []models.Player, typed []string) (resolved, unmatched []string) {
	candidates := make([]string, len(roster))
	for i, p := range roster {
		candidates[i] = p.DisplayName()
	}

	for _, name := range typed {
		if i := bestFuzzyMatch(name, candidates); i >= 0 {
			resolved = append(resolved, candidates[i])
		} else {
			unmatched = append(unmatched, name)
		}
	}
	return resolved, unmatched
}

// TradeAnalysis simulates trading the named players with another league
// member's roster over the rest of the meaningful season and reports the
// per-side projected impact plus average expert trade value.
func (s *AdviceService) TradeAnalysis(ctx context.Context, ownerName string, give, get []string) (string, error) {
	lc, err := s.leagueContext(ctx)
	if err != nil {
		return "", fmt.Errorf("error resolving league: %w", err)
	}

	users, err := s.api.GetLeagueUsers(ctx, lc.League.LeagueID)
	if err != nil {
		return "", fmt.Errorf("error fetching league members: %w", err)
	}

	other := findLeagueUser(users, ownerName, lc.User.UserID)
	if other == nil {
		return fmt.Sprintf("🔍 No league member found matching '%s'.", ownerName), nil
	}

	myRoster, err := s.rosterFor(ctx, lc, lc.User.UserID)
	if err != nil {
		return "", fmt.Errorf("error loading your roster: %w", err)
	}
	theirRoster, err := s.rosterFor(ctx, lc, other.UserID)
	if err != nil {
		return "", fmt.Errorf("error loading %s's roster: %w", other.DisplayName, err)
	}

	giveNames, giveMissed := resolvePlayerNames(myRoster, give)
	getNames, getMissed := resolvePlayerNames(theirRoster, get)

	finalWeek, err := lineup.FinalWeek(
		lc.League.Settings.PlayoffTeams,
		lc.League.Settings.PlayoffWeekStart,
		lc.League.Settings.PlayoffRoundType,
	)
	if err != nil {
		return "", err
	}

	mine := lineup.TradeSide{Roster: myRoster, Sends: giveNames}
	theirs := lineup.TradeSide{Roster: theirRoster, Sends: getNames}

	result, err := lineup.SimulateTrade(ctx, s.api, mine, theirs,
		lc.League.ScoringSettings, lc.League.RosterPositions,
		lc.State.SeasonType, lc.State.LeagueSeason, lc.State.Week, finalWeek)
	if err != nil {
		return "", fmt.Errorf("error simulating trade: %w", err)
	}

	giveValue, getValue, err := s.tradeValues(ctx, lc, myRoster, theirRoster, giveNames, getNames)
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("🔄 *Trade Analysis vs %s* (weeks %d-%d)\n\n", other.DisplayName, result.FirstWeek, result.FinalWeek))
	sb.WriteString(fmt.Sprintf("You send: %s\n", joinOrNone(giveNames)))
	sb.WriteString(fmt.Sprintf("You receive: %s\n\n", joinOrNone(getNames)))

	sb.WriteString(fmt.Sprintf("*Your side:* %+.2f pts (%.2f → %.2f)\n", result.DeltaA, result.BeforeA, result.AfterA))
	sb.WriteString(fmt.Sprintf("*%s:* %+.2f pts (%.2f → %.2f)\n\n", other.DisplayName, result.DeltaB, result.BeforeB, result.AfterB))

	sb.WriteString(fmt.Sprintf("Avg ROS rank sent: %.2f\n", giveValue))
	sb.WriteString(fmt.Sprintf("Avg ROS rank received: %.2f\n", getValue))

	for _, name := range append(giveMissed, getMissed...) {
		sb.WriteString(fmt.Sprintf("\n⚠️ Ignored '%s' (no roster match)", name))
	}

	return sb.String(), nil
}

// tradeValues attaches ROS ranks to the traded players and averages each
// side.
func (s *AdviceService) tradeValues(ctx context.Context, lc *models.LeagueContext, myRoster, theirRoster []models.Player, giveNames, getNames []string) (float64, float64, error) {
	format, err := lineup.ScoringFormat(lc.League.ScoringSettings)
	if err != nil {
		return 0, 0, err
	}

	overall, err := s.rankings.ROSRankings(ctx, format)
	if err != nil {
		return 0, 0, fmt.Errorf("error fetching ROS rankings: %w", err)
	}

	lookup, err := s.nameLookup(ctx)
	if err != nil {
		return 0, 0, err
	}

	sent := pickByName(lineup.MergeROSRankings(myRoster, overall, lookup), giveNames)
	received := pickByName(lineup.MergeROSRankings(theirRoster, overall, lookup), getNames)

	return lineup.TradeValue(sent), lineup.TradeValue(received), nil
}

func pickByName(roster []models.Player, names []string) []models.Player {
	wanted := make(map[string]bool, len(names))
	for _, n := range names {
		wanted[n] = true
	}

	var picked []models.Player
	for _, p := range roster {
		if wanted[p.DisplayName()] {
			picked = append(picked, p)
		}
	}
	return picked
}

// findLeagueUser fuzzy-matches a typed owner name against the league
// members, excluding the requesting user.
func findLeagueUser(users []models.LeagueUser, name, selfID string) *models.LeagueUser {
	var others []models.LeagueUser
	var candidates []string
	for _, u := range users {
		if u.UserID == selfID {
			continue
		}
		others = append(others, u)
		label := u.DisplayName
		if team := u.Metadata["team_name"]; team != "" {
			label = team
		}
		candidates = append(candidates, label)
	}

	if i := bestFuzzyMatch(name, candidates); i >= 0 {
		return &others[i]
	}
	return nil
}

// FindPlayer fuzzy-searches the user's roster for a player and reports its
// position, projected points, and week.
func (s *AdviceService) FindPlayer(ctx context.Context, name string) (string, error) {
	lc, err := s.leagueContext(ctx)
	if err != nil {
		return "", fmt.Errorf("error resolving league: %w", err)
	}

	roster, err := s.scoredRoster(ctx, lc)
	if err != nil {
		return "", fmt.Errorf("error loading roster: %w", err)
	}

	candidates := make([]string, len(roster))
	for i, p := range roster {
		candidates[i] = p.DisplayName()
	}

	i := bestFuzzyMatch(name, candidates)
	if i < 0 {
		return fmt.Sprintf("🔍 No roster player found matching '%s'.", name), nil
	}

	p := roster[i]
	return fmt.Sprintf("*%s* (%s - %s)\nWeek %d projection: %.2f pts",
		p.DisplayName(), strings.Join(p.Positions, ", "), p.Team, lc.State.Week, p.ProjectedPoints), nil
}

func joinOrNone(names []string) string {
	if len(names) == 0 {
		return "(nobody)"
	}
	return strings.Join(names, ", ")
}
