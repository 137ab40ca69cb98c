package testutil

import (
	"fmt"
	"time"

	domaingames "nba-stats-report/internal/domain/games"
	domainteams "nba-stats-report/internal/domain/teams"
)

// SampleTeams returns the three teams used across tests.
func SampleTeams() []domainteams.Team {
	return []domainteams.Team{
		{ID: 1, Name: "Celtics", Conference: "Eastern Conference", Division: "Atlantic"},
		{ID: 2, Name: "Lakers", Conference: "Western Conference", Division: "Pacific"},
		{ID: 3, Name: "Warriors", Conference: "Western Conference", Division: "Pacific"},
	}
}

// SampleGames returns three finished games with scores 100-90, 95-99, and
// 110-108 for the given season, the canonical set for win/loss assertions.
func SampleGames(season string) []domaingames.Game {
	startYear := time.Now().UTC().Year() - 1
	tip := time.Date(startYear, time.October, 24, 19, 0, 0, 0, time.UTC)
	return []domaingames.Game{
		{ID: 1, Season: season, Date: tip, HomeTeam: "Celtics", AwayTeam: "Lakers", HomeScore: 100, AwayScore: 90},
		{ID: 2, Season: season, Date: tip.AddDate(0, 0, 2), HomeTeam: "Warriors", AwayTeam: "Celtics", HomeScore: 95, AwayScore: 99},
		{ID: 3, Season: season, Date: tip.AddDate(0, 0, 4), HomeTeam: "Lakers", AwayTeam: "Warriors", HomeScore: 110, AwayScore: 108},
	}
}

// CurrentSeason returns a season label covering the previous and current
// year, guaranteed to pass the reports' last-decade filter.
func CurrentSeason() string {
	year := time.Now().UTC().Year()
	return fmt.Sprintf("%d-%d", year-1, year)
}
