package run

import (
	"fmt"
	"log/slog"
	"strings"

	"nba-stats-report/internal/config"
	"nba-stats-report/internal/metrics"
	"nba-stats-report/internal/providers"
	"nba-stats-report/internal/providers/apisports"
	"nba-stats-report/internal/providers/fixture"
)

// providerFactory assembles the provider with the shared retry wrapper.
type providerFactory struct {
	logger  *slog.Logger
	metrics *metrics.Recorder
}

func newProviderFactory(logger *slog.Logger, metrics *metrics.Recorder) providerFactory {
	return providerFactory{logger: logger, metrics: metrics}
}

func (f providerFactory) build(cfg config.Config) providers.StatsProvider {
	base := selectProvider(cfg, f.logger)
	return providers.NewRetryingProvider(base, f.logger, f.metrics, normalizeProviderName(cfg.Provider, base), 0, 0)
}

func selectProvider(cfg config.Config, logger *slog.Logger) providers.StatsProvider {
	switch strings.ToLower(cfg.Provider) {
	case "apisports":
		return apisports.NewClient(apisports.Config{
			BaseURL:         cfg.APISports.BaseURL,
			APIKey:          cfg.APISports.APIKey,
			LeagueID:        cfg.APISports.LeagueID,
			StandingsSeason: cfg.APISports.StandingsSeason,
			RequestInterval: cfg.APISports.RequestInterval,
			Logger:          logger,
		})
	default:
		return fixture.New()
	}
}

// normalizeProviderName returns a lower-cased provider name, deriving from
// the instance when not explicitly configured. Keeps naming consistent in
// metrics and logs.
func normalizeProviderName(raw string, provider providers.StatsProvider) string {
	if raw != "" {
		return strings.ToLower(raw)
	}
	if provider != nil {
		return strings.ToLower(fmt.Sprintf("%T", provider))
	}
	return "provider"
}
