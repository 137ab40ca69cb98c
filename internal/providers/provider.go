package providers

import (
	"context"

	domaingames "nba-stats-report/internal/domain/games"
	domainteams "nba-stats-report/internal/domain/teams"
)

// SeasonProvider lists the season labels available upstream.
// Providers should only return seasons starting at or after the since year.
type SeasonProvider interface {
	FetchSeasons(ctx context.Context, since int) ([]string, error)
}

// GameProvider fetches the normalized games played in a season.
type GameProvider interface {
	FetchGames(ctx context.Context, season string) ([]domaingames.Game, error)
}

// TeamProvider fetches normalized teams with their conference and division.
type TeamProvider interface {
	FetchTeams(ctx context.Context) ([]domainteams.Team, error)
}

// StatsProvider combines all provider capabilities.
type StatsProvider interface {
	SeasonProvider
	GameProvider
	TeamProvider
}
