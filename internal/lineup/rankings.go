package lineup

import (
	"strings"

	"lineupbot/internal/models"
)

// RankedPlayer is one entry of an expert consensus ranking list. Name holds
// a player display name, or a defense label for team defenses; Team is the
// pro-team code. Lower Rank is better.
type RankedPlayer struct {
	Name     string
	Team     string
	Position string
	Rank     int
}

// NameTranslator maps a roster-side player name (or team code for defenses)
// to the name vocabulary the rankings source uses. The second return is
// false when the lookup has no entry.
type NameTranslator interface {
	Translate(name string) (string, bool)
}

// Positions the two flex slots may draw from.
var (
	flexPositions      = []string{"RB", "WR", "TE"}
	superFlexPositions = []string{"QB", "RB", "WR", "TE"}
)

// RankingKey is the Rankings map key for a slot or position code, e.g.
// "rb_ecr_ranking" or "super_flex_ecr_ranking".
func RankingKey(pos string) string {
	return strings.ToLower(pos) + "_ecr_ranking"
}

// MergeWeeklyRankings attaches weekly positional expert rankings to each
// roster player. For every eligible position the player gets an entry under
// that position's ranking key; every player additionally gets FLEX and
// SUPER_FLEX entries from those lists. A player the translator has no entry
// for is left unranked in every category — a fail-safe, not an error.
// The merge writes a fresh Rankings map, so re-running it on the same
// inputs is idempotent.
func MergeWeeklyRankings(roster []models.Player, rankings map[string][]RankedPlayer, names NameTranslator) []models.Player {
	merged := make([]models.Player, len(roster))
	for i, p := range roster {
		p.Rankings = make(map[string]int)

		needle, ok := names.Translate(p.DisplayName())
		if !ok {
			merged[i] = p
			continue
		}

		for _, pos := range p.Positions {
			if rank := findRank(rankings[pos], needle, p); rank != models.Unranked {
				p.Rankings[RankingKey(pos)] = rank
			}
		}
		for _, slot := range []string{"FLEX", "SUPER_FLEX"} {
			if rank := findRank(rankings[slot], needle, p); rank != models.Unranked {
				p.Rankings[RankingKey(slot)] = rank
			}
		}

		merged[i] = p
	}
	return merged
}

// MergeROSRankings attaches one rest-of-season overall ranking to each
// player. Team defenses are matched by team code against the DST category;
// everyone else by translated name.
func MergeROSRankings(roster []models.Player, overall []RankedPlayer, names NameTranslator) []models.Player {
	merged := make([]models.Player, len(roster))
	for i, p := range roster {
		p.ROSRank = models.Unranked

		needle, ok := names.Translate(p.DisplayName())
		if !ok {
			merged[i] = p
			continue
		}

		if p.IsDefense() {
			for _, rp := range overall {
				if rp.Position == "DST" && rp.Team == p.ID {
					p.ROSRank = rp.Rank
					break
				}
			}
		} else {
			for _, rp := range overall {
				if rp.Name == needle {
					p.ROSRank = rp.Rank
					break
				}
			}
		}

		merged[i] = p
	}
	return merged
}

// findRank searches one ranking list for the player, matching by translated
// name, or by team code for defenses.
func findRank(list []RankedPlayer, needle string, p models.Player) int {
	for _, rp := range list {
		if rp.Name == needle {
			return rp.Rank
		}
		if p.IsDefense() && rp.Team != "" && rp.Team == p.ID {
			return rp.Rank
		}
	}
	return models.Unranked
}
