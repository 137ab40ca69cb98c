package fixture

import (
	"context"
	"fmt"
	"time"

	domaingames "nba-stats-report/internal/domain/games"
	domainteams "nba-stats-report/internal/domain/teams"
	"nba-stats-report/internal/timeutil"
)

// Provider returns a static set of teams and games useful for running the
// pipeline without an API key. Season labels track the current year so the
// last-decade reports always see the data.
type Provider struct {
	now func() time.Time
}

// New creates a fixture provider with a time source.
func New() *Provider {
	return &Provider{
		now: time.Now,
	}
}

// FetchSeasons returns the two most recent season labels.
func (p *Provider) FetchSeasons(ctx context.Context, since int) ([]string, error) {
	_ = ctx
	year := p.now().UTC().Year()
	seasons := []string{
		fmt.Sprintf("%d-%d", year-2, year-1),
		fmt.Sprintf("%d-%d", year-1, year),
	}
	filtered := seasons[:0]
	for _, s := range seasons {
		start, err := timeutil.SeasonStartYear(s)
		if err != nil || start < since {
			continue
		}
		filtered = append(filtered, s)
	}
	return filtered, nil
}

// FetchGames returns a deterministic set of finished games for the season.
// Game ids embed the season start year so ids stay unique across seasons.
func (p *Provider) FetchGames(ctx context.Context, season string) ([]domaingames.Game, error) {
	_ = ctx
	startYear, err := timeutil.SeasonStartYear(season)
	if err != nil {
		return nil, err
	}
	tip := time.Date(startYear, time.October, 24, 19, 0, 0, 0, time.UTC)
	base := int64(startYear) * 10

	games := []domaingames.Game{
		{ID: base + 1, Season: season, Date: tip, HomeTeam: "Celtics", AwayTeam: "Lakers", HomeScore: 100, AwayScore: 90},
		{ID: base + 2, Season: season, Date: tip.AddDate(0, 0, 2), HomeTeam: "Warriors", AwayTeam: "Celtics", HomeScore: 95, AwayScore: 99},
		{ID: base + 3, Season: season, Date: tip.AddDate(0, 0, 4), HomeTeam: "Lakers", AwayTeam: "Warriors", HomeScore: 110, AwayScore: 108},
	}
	return games, nil
}

// FetchTeams returns a deterministic set of teams.
func (p *Provider) FetchTeams(ctx context.Context) ([]domainteams.Team, error) {
	_ = ctx
	return []domainteams.Team{
		{ID: 1, Name: "Celtics", Conference: "Eastern Conference", Division: "Atlantic"},
		{ID: 2, Name: "Lakers", Conference: "Western Conference", Division: "Pacific"},
		{ID: 3, Name: "Warriors", Conference: "Western Conference", Division: "Pacific"},
	}, nil
}
