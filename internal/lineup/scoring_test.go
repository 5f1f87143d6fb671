package lineup

import (
	"testing"

	"lineupbot/internal/models"
)

func TestScoringFormat(t *testing.T) {
	cases := []struct {
		rec     float64
		want    string
		wantErr bool
	}{
		{0, FormatStandard, false},
		{0.5, FormatHalfPPR, false},
		{1, FormatPPR, false},
		{0.25, "", true},
		{2, "", true},
	}

	for _, c := range cases {
		got, err := ScoringFormat(map[string]float64{"rec": c.rec})
		if c.wantErr {
			if err == nil {
				t.Errorf("ScoringFormat(rec=%v) error = nil, want error", c.rec)
			}
			continue
		}
		if err != nil {
			t.Errorf("ScoringFormat(rec=%v) error = %v", c.rec, err)
			continue
		}
		if got != c.want {
			t.Errorf("ScoringFormat(rec=%v) = %q, want %q", c.rec, got, c.want)
		}
	}
}

func TestScoringFormat_MissingRecIsStandard(t *testing.T) {
	got, err := ScoringFormat(map[string]float64{"pass_td": 4})
	if err != nil {
		t.Fatalf("ScoringFormat: %v", err)
	}
	if got != FormatStandard {
		t.Errorf("ScoringFormat = %q, want %q", got, FormatStandard)
	}
}

func TestScoreRoster_DotProduct(t *testing.T) {
	roster := []models.Player{{
		ID:   "123",
		Name: "Some Guy",
		Stats: map[string]float64{
			"pass_yd": 250,
			"pass_td": 2,
			"kick_40": 1, // not in scoring settings — must not count
		},
	}}
	scoring := map[string]float64{
		"pass_yd": 0.04,
		"pass_td": 4,
		"rush_yd": 0.1, // not in stats — must not count
	}

	scored := ScoreRoster(roster, scoring)

	if got, want := scored[0].ProjectedPoints, 18.0; got != want {
		t.Errorf("ProjectedPoints = %v, want %v", got, want)
	}
}

func TestScoreRoster_RoundsToTwoDecimals(t *testing.T) {
	roster := []models.Player{{
		ID:    "1",
		Stats: map[string]float64{"rec_yd": 33.3},
	}}
	scored := ScoreRoster(roster, map[string]float64{"rec_yd": 0.1})

	// 3.33 exactly, no float dust.
	if got := scored[0].ProjectedPoints; got != 3.33 {
		t.Errorf("ProjectedPoints = %v, want 3.33", got)
	}
}

func TestScoreRoster_NoMatchingStats(t *testing.T) {
	roster := []models.Player{{ID: "1", Stats: map[string]float64{"bonus": 5}}}
	scored := ScoreRoster(roster, map[string]float64{"rec": 1})

	if got := scored[0].ProjectedPoints; got != 0 {
		t.Errorf("ProjectedPoints = %v, want 0", got)
	}
}

func TestMergeProjections_DropsMissingPlayers(t *testing.T) {
	roster := []models.Player{
		{ID: "1", Name: "Has Projection"},
		{ID: "2", Name: "On Bye"},
	}
	projections := models.WeekProjections{
		"1": {"rush_yd": 80},
	}

	merged := MergeProjections(roster, projections)

	if len(merged) != 1 {
		t.Fatalf("merged len = %d, want 1", len(merged))
	}
	if merged[0].ID != "1" {
		t.Errorf("merged[0].ID = %q, want %q", merged[0].ID, "1")
	}
	if merged[0].Stats["rush_yd"] != 80 {
		t.Errorf("merged[0].Stats[rush_yd] = %v, want 80", merged[0].Stats["rush_yd"])
	}
}

func TestMergeProjections_DoesNotMutateInput(t *testing.T) {
	roster := []models.Player{{ID: "1"}}
	MergeProjections(roster, models.WeekProjections{"1": {"rec": 5}})

	if roster[0].Stats != nil {
		t.Errorf("input roster mutated: Stats = %v", roster[0].Stats)
	}
}
