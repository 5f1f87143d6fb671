package models

import "time"

// Unranked is the sentinel rank for a player with no expert ranking. Ranking
// maps return it for absent keys, so a missing entry and an explicit miss
// read the same.
const Unranked = 0

// Player is a roster player enriched step by step: Stats and ProjectedPoints
// after the projections merge, Rankings/ROSRank after a rankings merge,
// StartingSlot once an optimizer places it. Team defenses carry an empty
// Name and are identified by ID (the team code).
type Player struct {
	ID            string
	Name          string
	Positions     []string
	Team          string
	StatsID       int
	FantasyDataID int

	Stats           map[string]float64
	ProjectedPoints float64

	// Rankings is keyed by "<pos>_ecr_ranking" (plus flex/super_flex keys).
	Rankings map[string]int
	ROSRank  int

	StartingSlot string
	IsStarting   bool
}

// DisplayName is the player's name, or its ID for team defenses.
func (p Player) DisplayName() string {
	if p.Name != "" {
		return p.Name
	}
	return p.ID
}

// HasPosition reports whether the player is eligible at pos.
func (p Player) HasPosition(pos string) bool {
	for _, c := range p.Positions {
		if c == pos {
			return true
		}
	}
	return false
}

// IsDefense reports whether the player is a team-defense entry.
func (p Player) IsDefense() bool {
	return p.HasPosition("DEF")
}

// SlotAssignment is one filled (or explicitly empty) lineup slot. A nil
// Player marks an empty slot: no eligible candidate remained, or, in the
// ranking optimizer, none of the remaining candidates was ranked.
type SlotAssignment struct {
	Slot     string
	Player   *Player
	Points   float64
	Starting bool
}

// Lineup is a starting lineup in league slot order, one entry per non-bench
// slot.
type Lineup []SlotAssignment

// TotalPoints sums the lineup's projected points. Empty slots count zero.
func (l Lineup) TotalPoints() float64 {
	var total float64
	for _, a := range l {
		total += a.Points
	}
	return total
}

// TradeResult is the outcome of simulating a trade over a week range:
// cumulative optimal-lineup points for each side before and after the swap,
// and the per-side net effect.
type TradeResult struct {
	FirstWeek int
	FinalWeek int

	BeforeA float64
	AfterA  float64
	DeltaA  float64

	BeforeB float64
	AfterB  float64
	DeltaB  float64
}

// LeagueContext bundles the resolved user, league, and sport state for one
// evaluation. Cached with a timestamp so it can be refreshed when stale.
type LeagueContext struct {
	User        User
	League      League
	State       State
	LastUpdated time.Time
}
