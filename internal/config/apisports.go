package config

import "time"

const (
	envAPISportsBaseURL = "APISPORTS_BASE_URL"
	envAPISportsAPIKey  = "APISPORTS_API_KEY"
	envLeagueID         = "LEAGUE_ID"
	envSeasonSince      = "SEASON_SINCE"
	envStandingsSeason  = "STANDINGS_SEASON"
	envRequestInterval  = "REQUEST_INTERVAL"

	defaultAPISportsBaseURL = "https://v1.basketball.api-sports.io"
	// NBA league id in the api-sports basketball catalogue.
	defaultLeagueID = 12
	// Earliest season start year worth ingesting.
	defaultSeasonSince = 2014
	// Season used for the standings lookup that yields conference/division.
	defaultStandingsSeason = "2023-2024"
	// Spacing between upstream requests; free tier allows 10 req/s.
	defaultRequestInterval = 100 * time.Millisecond
)

// APISportsConfig controls how we talk to the api-sports basketball API.
type APISportsConfig struct {
	BaseURL         string
	APIKey          string
	LeagueID        int
	SeasonSince     int
	StandingsSeason string
	RequestInterval time.Duration
}

func loadAPISports() APISportsConfig {
	return APISportsConfig{
		BaseURL:         envOrDefault(envAPISportsBaseURL, defaultAPISportsBaseURL),
		APIKey:          envOrDefault(envAPISportsAPIKey, ""),
		LeagueID:        intEnvOrDefault(envLeagueID, defaultLeagueID),
		SeasonSince:     intEnvOrDefault(envSeasonSince, defaultSeasonSince),
		StandingsSeason: envOrDefault(envStandingsSeason, defaultStandingsSeason),
		RequestInterval: durationEnvOrDefault(envRequestInterval, defaultRequestInterval),
	}
}
