package ingest

import (
	"context"
	"fmt"
	"log/slog"

	domaingames "nba-stats-report/internal/domain/games"
	"nba-stats-report/internal/lake"
	"nba-stats-report/internal/logging"
	"nba-stats-report/internal/metrics"
	"nba-stats-report/internal/providers"
)

// Service pulls seasons, teams, and games from a provider and persists them
// as parquet tables. Each run fully replaces both tables.
type Service struct {
	provider providers.StatsProvider
	writer   *lake.Writer
	logger   *slog.Logger
	metrics  *metrics.Recorder
	since    int
}

// New constructs an ingestion service. since bounds the earliest season
// start year fetched.
func New(provider providers.StatsProvider, writer *lake.Writer, logger *slog.Logger, recorder *metrics.Recorder, since int) *Service {
	return &Service{
		provider: provider,
		writer:   writer,
		logger:   logger,
		metrics:  recorder,
		since:    since,
	}
}

// Run executes one full ingestion: teams first (their names bound the game
// filter), then every season's games, then both parquet writes.
func (s *Service) Run(ctx context.Context) error {
	if s == nil || s.provider == nil || s.writer == nil {
		return providers.ErrProviderUnavailable
	}

	seasons, err := s.provider.FetchSeasons(ctx, s.since)
	if err != nil {
		return fmt.Errorf("ingest: fetch seasons: %w", err)
	}
	if len(seasons) == 0 {
		return fmt.Errorf("ingest: no seasons since %d", s.since)
	}
	logging.Info(s.logger, "seasons found", logging.FieldCount, len(seasons))

	teams, err := s.provider.FetchTeams(ctx)
	if err != nil {
		return fmt.Errorf("ingest: fetch teams: %w", err)
	}

	var allGames []domaingames.Game
	for _, season := range seasons {
		games, err := s.provider.FetchGames(ctx, season)
		if err != nil {
			return fmt.Errorf("ingest: fetch games for season %s: %w", season, err)
		}
		allGames = append(allGames, games...)
		logging.Info(s.logger, "season ingested",
			logging.FieldSeason, season, logging.FieldCount, len(allGames))
	}

	kept, dropped := domaingames.FilterByTeams(allGames, teams)
	for _, g := range dropped {
		logging.Warn(s.logger, "game references unknown team, dropping",
			"game_id", g.ID, "home_team", g.HomeTeam, "away_team", g.AwayTeam)
	}

	teamRows, err := s.writer.WriteTeams(teams)
	if err != nil {
		return fmt.Errorf("ingest: write teams: %w", err)
	}
	s.metrics.RecordRowsWritten(lake.TeamsTable, teamRows)
	logging.Info(s.logger, "table written",
		logging.FieldTable, lake.TeamsTable, logging.FieldCount, teamRows)

	gameRows, err := s.writer.WriteGames(kept)
	if err != nil {
		return fmt.Errorf("ingest: write games: %w", err)
	}
	s.metrics.RecordRowsWritten(lake.GamesTable, gameRows)
	logging.Info(s.logger, "table written",
		logging.FieldTable, lake.GamesTable, logging.FieldCount, gameRows)

	return nil
}
