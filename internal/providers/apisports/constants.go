package apisports

import "time"

const (
	defaultBaseURL     = "https://v1.basketball.api-sports.io"
	defaultLeagueID    = 12
	defaultSeason      = "2023-2024"
	defaultHTTPTimeout = 10 * time.Second
	// Upstream free tier allows 10 requests per second.
	defaultRequestInterval = 100 * time.Millisecond

	// Stage filter used on the standings endpoint; other stages (pre-season,
	// play-in) carry no conference/division groups.
	regularSeasonStage = "NBA - Regular Season"

	apiKeyHeader = "x-rapidapi-key"
)
