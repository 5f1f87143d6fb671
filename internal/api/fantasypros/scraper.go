// Package fantasypros scrapes expert consensus rankings. The rankings pages
// embed their data as a `var ecrData = {...};` blob in a script tag, so the
// scrape is: find the script, cut the JSON out, decode.
package fantasypros

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"lineupbot/internal/lineup"
)

const baseURL = "https://www.fantasypros.com/nfl/rankings/"

var ecrDataRe = regexp.MustCompile(`var ecrData = (\{.*\});`)

type Scraper struct {
	httpClient *http.Client
}

func NewScraper() *Scraper {
	return &Scraper{
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// ecrData is the embedded payload; only the player list matters here.
type ecrData struct {
	Players []ecrPlayer `json:"players"`
}

type ecrPlayer struct {
	PlayerName     string `json:"player_name"`
	PlayerTeamID   string `json:"player_team_id"`
	PlayerPosition string `json:"player_position_id"`
	RankECR        int    `json:"rank_ecr"`
}

// WeeklyRankings fetches this week's rankings for one position or flex slot
// (QB, RB, WR, TE, K, DEF, FLEX, SUPER_FLEX) in the given scoring format.
func (s *Scraper) WeeklyRankings(ctx context.Context, position, format string) ([]lineup.RankedPlayer, error) {
	return s.scrape(ctx, weeklyURL(position, format))
}

// ROSRankings fetches the rest-of-season overall rankings for a format.
func (s *Scraper) ROSRankings(ctx context.Context, format string) ([]lineup.RankedPlayer, error) {
	return s.scrape(ctx, rosURL(format))
}

// weeklyURL builds the weekly page URL. QB and K pages are not split by
// scoring format; every other position prefixes the format unless standard.
func weeklyURL(position, format string) string {
	pos := strings.ReplaceAll(strings.ToLower(position), "_", "")
	switch pos {
	case "qb", "k":
		return fmt.Sprintf("%s%s.php", baseURL, pos)
	case "def":
		return fmt.Sprintf("%sdst.php", baseURL)
	}
	if format == lineup.FormatStandard {
		return fmt.Sprintf("%s%s.php", baseURL, pos)
	}
	return fmt.Sprintf("%s%s-%s.php", baseURL, format, pos)
}

func rosURL(format string) string {
	if format == lineup.FormatStandard {
		return baseURL + "ros-overall.php"
	}
	return fmt.Sprintf("%sros-%s-overall.php", baseURL, format)
}

func (s *Scraper) scrape(ctx context.Context, url string) ([]lineup.RankedPlayer, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("error creating request: %w", err)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("error fetching rankings page: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("error parsing rankings page: %w", err)
	}

	return extractRankings(doc)
}

// extractRankings pulls the ecrData blob out of the page's script tags.
func extractRankings(doc *goquery.Document) ([]lineup.RankedPlayer, error) {
	var raw string
	doc.Find("script").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		if m := ecrDataRe.FindStringSubmatch(sel.Text()); m != nil {
			raw = m[1]
			return false
		}
		return true
	})
	if raw == "" {
		return nil, fmt.Errorf("no ecrData found in rankings page")
	}

	var data ecrData
	if err := json.Unmarshal([]byte(raw), &data); err != nil {
		return nil, fmt.Errorf("error decoding ecrData: %w", err)
	}

	ranked := make([]lineup.RankedPlayer, 0, len(data.Players))
	for _, p := range data.Players {
		ranked = append(ranked, lineup.RankedPlayer{
			Name:     p.PlayerName,
			Team:     p.PlayerTeamID,
			Position: p.PlayerPosition,
			Rank:     p.RankECR,
		})
	}
	return ranked, nil
}
