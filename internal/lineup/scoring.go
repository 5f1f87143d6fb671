// Package lineup is the decision core: projection scoring, expert-ranking
// merges, greedy lineup optimization, trade simulation, and the playoff
// window math. It works on in-memory rosters only; fetching and presentation
// live elsewhere.
package lineup

import (
	"errors"
	"math"

	"lineupbot/internal/models"
)

// Scoring formats recognized by FantasyPros, selected by the league's
// points-per-reception value.
const (
	FormatStandard = "standard"
	FormatHalfPPR  = "half-point-ppr"
	FormatPPR      = "ppr"
)

// ErrUnknownScoringFormat marks a reception value that maps to no known
// scoring format. Unlike a missing player or ranking this is a hard stop.
var ErrUnknownScoringFormat = errors.New("unrecognized scoring format")

// ScoringFormat derives the FantasyPros format name from the league's "rec"
// scoring value: 0 standard, 0.5 half PPR, 1 full PPR.
func ScoringFormat(scoring map[string]float64) (string, error) {
	switch scoring["rec"] {
	case 0:
		return FormatStandard, nil
	case 0.5:
		return FormatHalfPPR, nil
	case 1:
		return FormatPPR, nil
	default:
		return "", ErrUnknownScoringFormat
	}
}

// round2 rounds half away from zero to two decimals.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// MergeProjections attaches a week's projected statistics to each roster
// player. Players absent from the projection set (bye weeks, injured
// reserve) are dropped from the result rather than carried at zero.
func MergeProjections(roster []models.Player, projections models.WeekProjections) []models.Player {
	merged := make([]models.Player, 0, len(roster))
	for _, p := range roster {
		stats, ok := projections[p.ID]
		if !ok {
			continue
		}
		p.Stats = stats
		merged = append(merged, p)
	}
	return merged
}

// ScoreRoster computes each player's projected points: the sum over every
// statistic present in both the player's stats and the scoring settings of
// value times weight, rounded half away from zero to two decimals.
// Statistics the league does not score are ignored.
func ScoreRoster(roster []models.Player, scoring map[string]float64) []models.Player {
	scored := make([]models.Player, len(roster))
	for i, p := range roster {
		var points float64
		for stat, value := range p.Stats {
			if weight, ok := scoring[stat]; ok {
				points += value * weight
			}
		}
		p.ProjectedPoints = round2(points)
		scored[i] = p
	}
	return scored
}
