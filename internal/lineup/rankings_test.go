package lineup

import (
	"reflect"
	"testing"

	"lineupbot/internal/models"
)

// mapTranslator is a NameTranslator backed by a plain map.
type mapTranslator map[string]string

func (m mapTranslator) Translate(name string) (string, bool) {
	out, ok := m[name]
	return out, ok
}

// identity translates every name to itself.
var identity = translatorFunc(func(name string) (string, bool) { return name, true })

type translatorFunc func(string) (string, bool)

func (f translatorFunc) Translate(name string) (string, bool) { return f(name) }

func TestMergeWeeklyRankings_PositionAndFlexKeys(t *testing.T) {
	roster := []models.Player{{
		ID:        "1",
		Name:      "Bijan Robinson",
		Positions: []string{"RB"},
		Team:      "ATL",
	}}
	rankings := map[string][]RankedPlayer{
		"RB":         {{Name: "Bijan Robinson", Team: "ATL", Rank: 1}},
		"FLEX":       {{Name: "Bijan Robinson", Team: "ATL", Rank: 3}},
		"SUPER_FLEX": {{Name: "Bijan Robinson", Team: "ATL", Rank: 14}},
	}

	merged := MergeWeeklyRankings(roster, rankings, identity)

	want := map[string]int{
		"rb_ecr_ranking":         1,
		"flex_ecr_ranking":       3,
		"super_flex_ecr_ranking": 14,
	}
	if !reflect.DeepEqual(merged[0].Rankings, want) {
		t.Errorf("Rankings = %v, want %v", merged[0].Rankings, want)
	}
}

func TestMergeWeeklyRankings_UnmatchedPlayerIsUnranked(t *testing.T) {
	roster := []models.Player{{ID: "1", Name: "Deep Benchwarmer", Positions: []string{"WR"}}}
	rankings := map[string][]RankedPlayer{
		"WR": {{Name: "Somebody Else", Rank: 10}},
	}

	merged := MergeWeeklyRankings(roster, rankings, identity)

	if got := merged[0].Rankings["wr_ecr_ranking"]; got != models.Unranked {
		t.Errorf("wr_ecr_ranking = %d, want unranked", got)
	}
}

func TestMergeWeeklyRankings_NoLookupEntrySkipsSearch(t *testing.T) {
	roster := []models.Player{{ID: "1", Name: "Unknown Name", Positions: []string{"RB"}}}
	// The list would match by name, but the lookup has no entry, so the
	// player must stay unranked everywhere.
	rankings := map[string][]RankedPlayer{
		"RB":   {{Name: "Unknown Name", Rank: 2}},
		"FLEX": {{Name: "Unknown Name", Rank: 5}},
	}

	merged := MergeWeeklyRankings(roster, rankings, mapTranslator{})

	if len(merged[0].Rankings) != 0 {
		t.Errorf("Rankings = %v, want empty", merged[0].Rankings)
	}
}

func TestMergeWeeklyRankings_TranslatedName(t *testing.T) {
	roster := []models.Player{{ID: "1", Name: "Ken Walker", Positions: []string{"RB"}}}
	rankings := map[string][]RankedPlayer{
		"RB": {{Name: "Kenneth Walker III", Rank: 7}},
	}
	names := mapTranslator{"Ken Walker": "Kenneth Walker III"}

	merged := MergeWeeklyRankings(roster, rankings, names)

	if got := merged[0].Rankings["rb_ecr_ranking"]; got != 7 {
		t.Errorf("rb_ecr_ranking = %d, want 7", got)
	}
}

func TestMergeWeeklyRankings_DefenseMatchedByTeamCode(t *testing.T) {
	roster := []models.Player{{ID: "SF", Positions: []string{"DEF"}, Team: "SF"}}
	rankings := map[string][]RankedPlayer{
		"DEF": {{Name: "San Francisco 49ers", Team: "SF", Rank: 1}},
	}

	merged := MergeWeeklyRankings(roster, rankings, identity)

	if got := merged[0].Rankings["def_ecr_ranking"]; got != 1 {
		t.Errorf("def_ecr_ranking = %d, want 1", got)
	}
}

func TestMergeWeeklyRankings_Idempotent(t *testing.T) {
	roster := []models.Player{{ID: "1", Name: "Bijan Robinson", Positions: []string{"RB"}}}
	rankings := map[string][]RankedPlayer{
		"RB":   {{Name: "Bijan Robinson", Rank: 1}},
		"FLEX": {{Name: "Bijan Robinson", Rank: 2}},
	}

	once := MergeWeeklyRankings(roster, rankings, identity)
	twice := MergeWeeklyRankings(once, rankings, identity)

	if !reflect.DeepEqual(once[0].Rankings, twice[0].Rankings) {
		t.Errorf("second merge changed rankings: %v vs %v", once[0].Rankings, twice[0].Rankings)
	}
}

func TestMergeROSRankings(t *testing.T) {
	roster := []models.Player{
		{ID: "1", Name: "Justin Jefferson", Positions: []string{"WR"}, Team: "MIN"},
		{ID: "DAL", Positions: []string{"DEF"}, Team: "DAL"},
		{ID: "2", Name: "Nobody Ranked", Positions: []string{"TE"}},
	}
	overall := []RankedPlayer{
		{Name: "Justin Jefferson", Team: "MIN", Position: "WR", Rank: 2},
		{Name: "Dallas Cowboys", Team: "DAL", Position: "DST", Rank: 40},
	}

	merged := MergeROSRankings(roster, overall, identity)

	if got := merged[0].ROSRank; got != 2 {
		t.Errorf("Jefferson ROSRank = %d, want 2", got)
	}
	if got := merged[1].ROSRank; got != 40 {
		t.Errorf("DAL defense ROSRank = %d, want 40", got)
	}
	if got := merged[2].ROSRank; got != models.Unranked {
		t.Errorf("unmatched ROSRank = %d, want unranked", got)
	}
}

func TestMergeROSRankings_NoLookupEntry(t *testing.T) {
	roster := []models.Player{{ID: "1", Name: "Justin Jefferson", Positions: []string{"WR"}}}
	overall := []RankedPlayer{{Name: "Justin Jefferson", Position: "WR", Rank: 2}}

	merged := MergeROSRankings(roster, overall, mapTranslator{})

	if got := merged[0].ROSRank; got != models.Unranked {
		t.Errorf("ROSRank = %d, want unranked", got)
	}
}
