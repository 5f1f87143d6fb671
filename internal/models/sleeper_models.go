package models

// User is the Sleeper /user/<username> response.
type User struct {
	UserID      string `json:"user_id"`
	Username    string `json:"username"`
	DisplayName string `json:"display_name"`
	Avatar      string `json:"avatar"`
}

// League is one entry of the Sleeper /user/<id>/leagues/nfl/<season> response.
type League struct {
	LeagueID        string             `json:"league_id"`
	Name            string             `json:"name"`
	Season          string             `json:"season"`
	Status          string             `json:"status"`
	TotalRosters    int                `json:"total_rosters"`
	ScoringSettings map[string]float64 `json:"scoring_settings"`
	RosterPositions []string           `json:"roster_positions"`
	Settings        LeagueSettings     `json:"settings"`
}

type LeagueSettings struct {
	PlayoffTeams     int `json:"playoff_teams"`
	PlayoffWeekStart int `json:"playoff_week_start"`
	PlayoffRoundType int `json:"playoff_round_type"`
	Leg              int `json:"leg"`
}

// RosterEntry is one entry of the Sleeper /league/<id>/rosters response.
type RosterEntry struct {
	RosterID int      `json:"roster_id"`
	OwnerID  string   `json:"owner_id"`
	Players  []string `json:"players"`
	Starters []string `json:"starters"`
}

// LeagueUser is one entry of the Sleeper /league/<id>/users response.
type LeagueUser struct {
	UserID      string            `json:"user_id"`
	DisplayName string            `json:"display_name"`
	Metadata    map[string]string `json:"metadata"`
}

// State is the Sleeper /state/nfl response.
type State struct {
	Week         int    `json:"week"`
	Season       string `json:"season"`
	LeagueSeason string `json:"league_season"`
	SeasonType   string `json:"season_type"`
}

// CatalogPlayer is one value of the Sleeper /players/nfl catalog. Team
// defenses have no full name; their player_id is the team code.
type CatalogPlayer struct {
	PlayerID         string   `json:"player_id"`
	FullName         string   `json:"full_name"`
	FantasyPositions []string `json:"fantasy_positions"`
	Team             string   `json:"team"`
	StatsID          int      `json:"stats_id"`
	FantasyDataID    int      `json:"fantasy_data_id"`
}

// WeekProjections maps player id -> statistic name -> projected value.
type WeekProjections map[string]map[string]float64
