package apisports

import (
	"strings"
	"time"

	domaingames "nba-stats-report/internal/domain/games"
	domainteams "nba-stats-report/internal/domain/teams"
	"nba-stats-report/internal/timeutil"
)

func mapSeasons(payload seasonsResponse, since int) []string {
	seasons := make([]string, 0, len(payload.Response))
	for _, raw := range payload.Response {
		label, ok := raw.(string)
		if !ok {
			// Plain-year entries cover leagues without split seasons.
			continue
		}
		year, err := timeutil.SeasonStartYear(label)
		if err != nil || year < since {
			continue
		}
		seasons = append(seasons, label)
	}
	return seasons
}

// mapGame flattens a nested game payload into a Game row. Games without
// final totals on both sides are reported as not ok.
func mapGame(g gameResponse, season string) (domaingames.Game, bool) {
	if g.Scores.Home.Total == nil || g.Scores.Away.Total == nil {
		return domaingames.Game{}, false
	}
	return domaingames.Game{
		ID:        g.ID,
		Season:    season,
		Date:      parseGameDate(g.Date),
		HomeTeam:  g.Teams.Home.Name,
		AwayTeam:  g.Teams.Away.Name,
		HomeScore: *g.Scores.Home.Total,
		AwayScore: *g.Scores.Away.Total,
	}, true
}

func parseGameDate(raw string) time.Time {
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t.UTC()
	}
	if t, err := timeutil.ParseDate(raw); err == nil {
		return t.UTC()
	}
	return time.Time{}
}

// mapTeam combines a team row with its standings groups. Only teams that
// belong to both a conference and a division become rows.
func mapTeam(t teamResponse, groups []standingEntry) (domainteams.Team, bool) {
	var conference, division string
	for _, entry := range groups {
		name := entry.Group.Name
		if strings.Contains(strings.ToLower(name), "conference") {
			conference = name
		} else if name != "" {
			division = name
		}
	}
	if conference == "" || division == "" {
		return domainteams.Team{}, false
	}
	return domainteams.Team{
		ID:         t.ID,
		Name:       t.Name,
		Conference: conference,
		Division:   division,
	}, true
}
