package apisports

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	domaingames "nba-stats-report/internal/domain/games"
	domainteams "nba-stats-report/internal/domain/teams"
	"nba-stats-report/internal/providers"
)

// Config controls how the apisports client reaches the upstream API.
type Config struct {
	BaseURL         string
	APIKey          string
	HTTPClient      *http.Client
	LeagueID        int
	StandingsSeason string
	RequestInterval time.Duration
	Logger          *slog.Logger
}

// Client fetches seasons, games, and teams from the api-sports basketball API
// and maps them to domain models.
type Client struct {
	baseURL         string
	apiKey          string
	httpClient      httpDoer
	leagueID        int
	standingsSeason string
	logger          *slog.Logger
}

// NewClient constructs an apisports client with the provided configuration.
func NewClient(cfg Config) *Client {
	interval := cfg.RequestInterval
	if interval <= 0 {
		interval = defaultRequestInterval
	}
	return &Client{
		baseURL:         normalizeBaseURL(cfg.BaseURL),
		apiKey:          cfg.APIKey,
		httpClient:      newPacedDoer(resolveHTTPClient(cfg.HTTPClient), interval),
		leagueID:        resolveLeagueID(cfg.LeagueID),
		standingsSeason: resolveSeason(cfg.StandingsSeason),
		logger:          cfg.Logger,
	}
}

// FetchSeasons retrieves all season labels starting at or after since.
func (c *Client) FetchSeasons(ctx context.Context, since int) ([]string, error) {
	var payload seasonsResponse
	if err := c.getJSON(ctx, "/seasons", nil, &payload); err != nil {
		return nil, err
	}
	return mapSeasons(payload, since), nil
}

// FetchGames retrieves all finished games of the given season.
func (c *Client) FetchGames(ctx context.Context, season string) ([]domaingames.Game, error) {
	q := url.Values{}
	q.Set("league", strconv.Itoa(c.leagueID))
	q.Set("season", season)

	var payload gamesResponse
	if err := c.getJSON(ctx, "/games", q, &payload); err != nil {
		return nil, err
	}

	games := make([]domaingames.Game, 0, len(payload.Response))
	for _, g := range payload.Response {
		game, ok := mapGame(g, season)
		if !ok {
			continue
		}
		games = append(games, game)
	}
	return games, nil
}

// FetchTeams retrieves all teams of the standings season together with their
// conference and division. Teams the standings endpoint knows nothing about
// are skipped, matching the upstream catalogue's exhibition entries.
func (c *Client) FetchTeams(ctx context.Context) ([]domainteams.Team, error) {
	q := url.Values{}
	q.Set("league", strconv.Itoa(c.leagueID))
	q.Set("season", c.standingsSeason)

	var payload teamsResponse
	if err := c.getJSON(ctx, "/teams", q, &payload); err != nil {
		return nil, err
	}

	teams := make([]domainteams.Team, 0, len(payload.Response))
	for _, t := range payload.Response {
		groups, err := c.fetchStandingGroups(ctx, t.ID)
		if err != nil {
			return nil, fmt.Errorf("standings for team %d: %w", t.ID, err)
		}
		team, ok := mapTeam(t, groups)
		if !ok {
			if c.logger != nil {
				c.logger.Debug("team has no standings groups, skipping",
					slog.Int64("team_id", t.ID), slog.String("team_name", t.Name))
			}
			continue
		}
		teams = append(teams, team)
	}
	return teams, nil
}

func (c *Client) fetchStandingGroups(ctx context.Context, teamID int64) ([]standingEntry, error) {
	q := url.Values{}
	q.Set("league", strconv.Itoa(c.leagueID))
	q.Set("season", c.standingsSeason)
	q.Set("stage", regularSeasonStage)
	q.Set("team", strconv.FormatInt(teamID, 10))

	var payload standingsResponse
	if err := c.getJSON(ctx, "/standings", q, &payload); err != nil {
		return nil, err
	}
	if len(payload.Response) == 0 {
		return nil, nil
	}
	return payload.Response[0], nil
}

func (c *Client) getJSON(ctx context.Context, path string, query url.Values, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}
	if query != nil {
		req.URL.RawQuery = query.Encode()
	}
	if c.apiKey != "" {
		req.Header.Set(apiKeyHeader, c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		return &providers.RateLimitError{
			Provider:   providerName,
			StatusCode: resp.StatusCode,
			RetryAfter: parseRetryAfter(resp.Header.Get("Retry-After")),
			Remaining:  resp.Header.Get("x-ratelimit-requests-remaining"),
		}
	}
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("apisports: unexpected status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	return json.NewDecoder(resp.Body).Decode(out)
}

func parseRetryAfter(raw string) time.Duration {
	if raw == "" {
		return 0
	}
	if secs, err := strconv.Atoi(raw); err == nil && secs > 0 {
		return time.Duration(secs) * time.Second
	}
	return 0
}
