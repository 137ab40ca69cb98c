package games

import (
	"time"

	"nba-stats-report/internal/domain/teams"
)

// Game is the canonical flat game row persisted to the games table.
// Scores are final totals; games without both totals (not yet played,
// canceled) are not ingested.
type Game struct {
	ID        int64     `json:"game_id"`
	Season    string    `json:"season"`
	Date      time.Time `json:"date"`
	HomeTeam  string    `json:"home_team"`
	AwayTeam  string    `json:"away_team"`
	HomeScore int32     `json:"home_score"`
	AwayScore int32     `json:"away_score"`
}

// Winner returns the winning team name, or "" for a tie.
func (g Game) Winner() string {
	switch {
	case g.HomeScore > g.AwayScore:
		return g.HomeTeam
	case g.AwayScore > g.HomeScore:
		return g.AwayTeam
	default:
		return ""
	}
}

// TotalScore returns the combined points of both sides.
func (g Game) TotalScore() int32 {
	return g.HomeScore + g.AwayScore
}

// FilterByTeams keeps only games where both sides are in the allowed set.
// Games involving an unknown side are returned separately so callers can log them.
func FilterByTeams(items []Game, allowed []teams.Team) (kept, dropped []Game) {
	if len(allowed) == 0 {
		return items, nil
	}
	set := teams.NameSet(allowed)
	for _, g := range items {
		if _, home := set[g.HomeTeam]; !home {
			dropped = append(dropped, g)
			continue
		}
		if _, away := set[g.AwayTeam]; !away {
			dropped = append(dropped, g)
			continue
		}
		kept = append(kept, g)
	}
	return kept, dropped
}
