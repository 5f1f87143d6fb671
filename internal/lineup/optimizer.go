package lineup

import "lineupbot/internal/models"

const benchSlot = "BN"

// eligibleFor returns the positions a slot may be filled from.
func eligibleFor(slot string) []string {
	switch slot {
	case "FLEX":
		return flexPositions
	case "SUPER_FLEX":
		return superFlexPositions
	default:
		return []string{slot}
	}
}

func eligibleAt(p models.Player, slot string) bool {
	for _, pos := range eligibleFor(slot) {
		if p.HasPosition(pos) {
			return true
		}
	}
	return false
}

// OptimizeByProjection fills the league's slot sequence greedily by maximal
// projected points. Slots after BN are never filled. Each slot takes the
// highest-projected eligible player not yet placed; ties go to the first
// such player encountered. A slot with no remaining eligible player gets an
// explicit empty assignment worth zero points. The input roster is not
// mutated; the placed pool is tracked separately and re-derived per slot.
func OptimizeByProjection(roster []models.Player, slots []string) models.Lineup {
	var lineup models.Lineup
	placed := make(map[int]bool)

	for _, slot := range slots {
		if slot == benchSlot {
			break
		}

		best := -1
		for i, p := range roster {
			if placed[i] || !eligibleAt(p, slot) {
				continue
			}
			if best == -1 || p.ProjectedPoints > roster[best].ProjectedPoints {
				best = i
			}
		}

		if best == -1 {
			lineup = append(lineup, models.SlotAssignment{Slot: slot})
			continue
		}

		placed[best] = true
		pick := roster[best]
		pick.StartingSlot = slot
		pick.IsStarting = true
		lineup = append(lineup, models.SlotAssignment{
			Slot:     slot,
			Player:   &pick,
			Points:   pick.ProjectedPoints,
			Starting: true,
		})
	}

	return lineup
}

// OptimizeByRanking fills the slot sequence greedily by best (lowest) expert
// rank under each slot's ranking key. A slot is exhausted once every
// remaining eligible player is unranked for it, even if eligible players
// remain; such slots get an explicit empty, not-starting assignment.
func OptimizeByRanking(roster []models.Player, slots []string) models.Lineup {
	var lineup models.Lineup
	placed := make(map[int]bool)

	for _, slot := range slots {
		if slot == benchSlot {
			break
		}

		key := RankingKey(slot)
		best := -1
		for i, p := range roster {
			if placed[i] || !eligibleAt(p, slot) {
				continue
			}
			rank := p.Rankings[key]
			if rank == models.Unranked {
				continue
			}
			if best == -1 || rank < roster[best].Rankings[key] {
				best = i
			}
		}

		if best == -1 {
			lineup = append(lineup, models.SlotAssignment{Slot: slot})
			continue
		}

		placed[best] = true
		pick := roster[best]
		pick.StartingSlot = slot
		pick.IsStarting = true
		lineup = append(lineup, models.SlotAssignment{
			Slot:     slot,
			Player:   &pick,
			Points:   pick.ProjectedPoints,
			Starting: true,
		})
	}

	return lineup
}
