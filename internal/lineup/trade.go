package lineup

import (
	"context"
	"fmt"

	"lineupbot/internal/models"
)

// UnrankedTradeValue stands in for an unranked player when averaging trade
// value, and is the result for an empty trade side: no basis for comparison.
const UnrankedTradeValue = 420

// ProjectionsProvider fetches one week's projected statistics.
type ProjectionsProvider interface {
	WeekProjections(ctx context.Context, seasonType, season string, week int) (models.WeekProjections, error)
}

// TradeSide is one half of a proposed trade: a roster and the names of the
// players it sends to the other side.
type TradeSide struct {
	Roster []models.Player
	Sends  []string
}

// ApplyTrade swaps the named players between the two rosters and returns the
// post-trade rosters as new slices; the inputs are left untouched so the
// same rosters can feed the before and after paths. A send name with no
// exact match on its own roster is skipped.
func ApplyTrade(a, b TradeSide) (newA, newB []models.Player) {
	keptA, sentA := splitByName(a.Roster, a.Sends)
	keptB, sentB := splitByName(b.Roster, b.Sends)

	newA = append(keptA, sentB...)
	newB = append(keptB, sentA...)
	return newA, newB
}

func splitByName(roster []models.Player, names []string) (kept, sent []models.Player) {
	sending := make(map[string]bool, len(names))
	for _, n := range names {
		sending[n] = true
	}

	kept = make([]models.Player, 0, len(roster))
	for _, p := range roster {
		if sending[p.DisplayName()] {
			sent = append(sent, p)
		} else {
			kept = append(kept, p)
		}
	}
	return kept, sent
}

// SimulateTrade measures the net effect of a trade on both rosters' optimal
// weekly score from firstWeek through finalWeek inclusive. Each week's
// projections are fetched once and applied to all four roster versions;
// a failed fetch aborts the whole simulation, since a partial multi-week
// total is not meaningful.
func SimulateTrade(ctx context.Context, provider ProjectionsProvider, a, b TradeSide,
	scoring map[string]float64, slots []string, seasonType, season string, firstWeek, finalWeek int,
) (models.TradeResult, error) {
	afterA, afterB := ApplyTrade(a, b)

	result := models.TradeResult{FirstWeek: firstWeek, FinalWeek: finalWeek}

	for week := firstWeek; week <= finalWeek; week++ {
		projections, err := provider.WeekProjections(ctx, seasonType, season, week)
		if err != nil {
			return models.TradeResult{}, fmt.Errorf("fetching week %d projections: %w", week, err)
		}
		if projections == nil {
			// A missing week would silently zero out all four totals.
			return models.TradeResult{}, fmt.Errorf("no projections for week %d", week)
		}

		result.BeforeA += weekTotal(a.Roster, projections, scoring, slots)
		result.AfterA += weekTotal(afterA, projections, scoring, slots)
		result.BeforeB += weekTotal(b.Roster, projections, scoring, slots)
		result.AfterB += weekTotal(afterB, projections, scoring, slots)
	}

	result.DeltaA = round2(result.AfterA - result.BeforeA)
	result.DeltaB = round2(result.AfterB - result.BeforeB)
	return result, nil
}

// weekTotal scores a roster against one week's projections and sums its
// optimal projection lineup.
func weekTotal(roster []models.Player, projections models.WeekProjections, scoring map[string]float64, slots []string) float64 {
	scored := ScoreRoster(MergeProjections(roster, projections), scoring)
	return OptimizeByProjection(scored, slots).TotalPoints()
}

// TradeValue reduces one side's traded players to a single average
// rest-of-season rank, substituting UnrankedTradeValue for unranked players.
// An empty side yields the sentinel itself rather than an average.
func TradeValue(players []models.Player) float64 {
	if len(players) == 0 {
		return UnrankedTradeValue
	}

	var sum float64
	for _, p := range players {
		rank := p.ROSRank
		if rank == models.Unranked {
			rank = UnrankedTradeValue
		}
		sum += float64(rank)
	}
	return round2(sum / float64(len(players)))
}
