package run

import (
	"testing"

	"nba-stats-report/internal/config"
	"nba-stats-report/internal/metrics"
	"nba-stats-report/internal/providers/apisports"
	"nba-stats-report/internal/providers/fixture"
)

func TestSelectProviderDefaultsToFixture(t *testing.T) {
	cfg := config.Config{Provider: "fixture"}
	if _, ok := selectProvider(cfg, nil).(*fixture.Provider); !ok {
		t.Fatal("expected fixture provider")
	}

	cfg.Provider = "unknown"
	if _, ok := selectProvider(cfg, nil).(*fixture.Provider); !ok {
		t.Fatal("expected fixture fallback for unknown provider")
	}
}

func TestSelectProviderAPISports(t *testing.T) {
	cfg := config.Config{Provider: "APISports"}
	if _, ok := selectProvider(cfg, nil).(*apisports.Client); !ok {
		t.Fatal("expected apisports client")
	}
}

func TestFactoryWrapsWithRetry(t *testing.T) {
	factory := newProviderFactory(nil, metrics.NewRecorder())
	provider := factory.build(config.Config{Provider: "fixture"})

	if _, isFixture := provider.(*fixture.Provider); isFixture {
		t.Fatal("expected provider to be wrapped")
	}
}

func TestNormalizeProviderName(t *testing.T) {
	if got := normalizeProviderName("APISports", nil); got != "apisports" {
		t.Fatalf("expected lower-cased name, got %s", got)
	}
	if got := normalizeProviderName("", fixture.New()); got == "" || got == "provider" {
		t.Fatalf("expected derived name, got %s", got)
	}
	if got := normalizeProviderName("", nil); got != "provider" {
		t.Fatalf("expected fallback name, got %s", got)
	}
}
