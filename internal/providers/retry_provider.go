package providers

import (
	"context"
	"log/slog"
	"time"

	"github.com/cenkalti/backoff/v4"

	domaingames "nba-stats-report/internal/domain/games"
	domainteams "nba-stats-report/internal/domain/teams"
	"nba-stats-report/internal/metrics"
)

const (
	defaultMaxRetries     = 3
	defaultInitialBackoff = 200 * time.Millisecond
)

// retryingProvider wraps a StatsProvider with exponential backoff retries.
type retryingProvider struct {
	inner       StatsProvider
	logger      *slog.Logger
	metrics     *metrics.Recorder
	name        string
	maxRetries  uint64
	initialWait time.Duration
}

// NewRetryingProvider wraps the given provider with retries. If maxRetries or
// initialWait are <= 0, defaults are used.
func NewRetryingProvider(inner StatsProvider, logger *slog.Logger, recorder *metrics.Recorder, name string, maxRetries int, initialWait time.Duration) StatsProvider {
	if maxRetries <= 0 {
		maxRetries = defaultMaxRetries
	}
	if initialWait <= 0 {
		initialWait = defaultInitialBackoff
	}
	return &retryingProvider{
		inner:       inner,
		logger:      logger,
		metrics:     recorder,
		name:        name,
		maxRetries:  uint64(maxRetries),
		initialWait: initialWait,
	}
}

func (r *retryingProvider) FetchSeasons(ctx context.Context, since int) ([]string, error) {
	return retryFetch(r, ctx, "seasons", func(ctx context.Context) ([]string, error) {
		return r.inner.FetchSeasons(ctx, since)
	})
}

func (r *retryingProvider) FetchGames(ctx context.Context, season string) ([]domaingames.Game, error) {
	return retryFetch(r, ctx, "games", func(ctx context.Context) ([]domaingames.Game, error) {
		return r.inner.FetchGames(ctx, season)
	})
}

func (r *retryingProvider) FetchTeams(ctx context.Context) ([]domainteams.Team, error) {
	return retryFetch(r, ctx, "teams", func(ctx context.Context) ([]domainteams.Team, error) {
		return r.inner.FetchTeams(ctx)
	})
}

func retryFetch[T any](r *retryingProvider, ctx context.Context, op string, fetch func(context.Context) (T, error)) (T, error) {
	var result T

	attempt := func() error {
		start := time.Now()
		items, err := fetch(ctx)
		r.metrics.RecordProviderAttempt(r.name, time.Since(start), err)
		if err != nil {
			if rlErr, ok := AsRateLimitError(err); ok {
				r.metrics.RecordRateLimit(r.name, rlErr.RetryAfter)
			}
			return err
		}
		result = items
		return nil
	}

	expo := backoff.NewExponentialBackOff()
	expo.InitialInterval = r.initialWait
	policy := backoff.WithContext(backoff.WithMaxRetries(expo, r.maxRetries), ctx)

	notify := func(err error, next time.Duration) {
		logWithProvider(ctx, r.logger, slog.LevelWarn, r.name, "provider fetch retry",
			slog.String("op", op), slog.Duration("backoff", next), "err", err)
	}

	if err := backoff.RetryNotify(attempt, policy, notify); err != nil {
		logWithProvider(ctx, r.logger, slog.LevelWarn, r.name, "provider fetch failed",
			slog.String("op", op), "err", err)
		return result, err
	}
	return result, nil
}
