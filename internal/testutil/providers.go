package testutil

import (
	"context"

	domaingames "nba-stats-report/internal/domain/games"
	domainteams "nba-stats-report/internal/domain/teams"
)

// StubProvider serves canned seasons, teams, and per-season games, tracking
// call counts. Err, when set, is returned from every fetch.
type StubProvider struct {
	Seasons []string
	Teams   []domainteams.Team
	Games   map[string][]domaingames.Game
	Err     error

	SeasonCalls int
	TeamCalls   int
	GameCalls   int
}

func (p *StubProvider) FetchSeasons(ctx context.Context, since int) ([]string, error) {
	_ = ctx
	_ = since
	p.SeasonCalls++
	if p.Err != nil {
		return nil, p.Err
	}
	return p.Seasons, nil
}

func (p *StubProvider) FetchTeams(ctx context.Context) ([]domainteams.Team, error) {
	_ = ctx
	p.TeamCalls++
	if p.Err != nil {
		return nil, p.Err
	}
	return p.Teams, nil
}

func (p *StubProvider) FetchGames(ctx context.Context, season string) ([]domaingames.Game, error) {
	_ = ctx
	p.GameCalls++
	if p.Err != nil {
		return nil, p.Err
	}
	return p.Games[season], nil
}
