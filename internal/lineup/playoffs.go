package lineup

import "fmt"

// FinalWeek derives the last meaningful week of the season from the
// league's playoff settings. The bracket size halves once per round while
// more than one team remains; round type 1 adds one week, round types 0 and
// 2 leave the count unchanged.
//
// TODO: round type 2 is a no-op upstream (Sleeper documents it as two-week
// championship rounds); revisit if the league ever runs one.
func FinalWeek(playoffTeams, startWeek, roundType int) (int, error) {
	rounds := 0
	for teams := playoffTeams; teams > 1; teams /= 2 {
		rounds++
	}

	switch roundType {
	case 0, 2:
	case 1:
		rounds++
	default:
		return 0, fmt.Errorf("unrecognized playoff round type %d", roundType)
	}

	return startWeek + rounds - 1, nil
}
