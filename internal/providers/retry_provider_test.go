package providers

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	domaingames "nba-stats-report/internal/domain/games"
	domainteams "nba-stats-report/internal/domain/teams"
	"nba-stats-report/internal/metrics"
)

type flakeyProvider struct {
	failures int
	calls    int
}

func (f *flakeyProvider) FetchSeasons(ctx context.Context, since int) ([]string, error) {
	_ = ctx
	_ = since
	f.calls++
	if f.calls <= f.failures {
		return nil, errors.New("boom")
	}
	return []string{"2023-2024"}, nil
}

func (f *flakeyProvider) FetchGames(ctx context.Context, season string) ([]domaingames.Game, error) {
	_ = ctx
	_ = season
	f.calls++
	if f.calls <= f.failures {
		return nil, errors.New("boom")
	}
	return []domaingames.Game{{ID: 1}}, nil
}

func (f *flakeyProvider) FetchTeams(ctx context.Context) ([]domainteams.Team, error) {
	_ = ctx
	f.calls++
	if f.calls <= f.failures {
		return nil, errors.New("boom")
	}
	return []domainteams.Team{{ID: 1}}, nil
}

func TestRetryingProviderRetriesAndSucceeds(t *testing.T) {
	fp := &flakeyProvider{failures: 2}
	rp := NewRetryingProvider(fp, slog.Default(), metrics.NewRecorder(), "flakey", 3, time.Millisecond)

	games, err := rp.FetchGames(context.Background(), "2023-2024")
	if err != nil {
		t.Fatalf("expected success, got error %v", err)
	}
	if len(games) != 1 || games[0].ID != 1 {
		t.Fatalf("unexpected games %+v", games)
	}
	if fp.calls != 3 {
		t.Fatalf("expected 3 attempts, got %d", fp.calls)
	}
}

func TestRetryingProviderStopsAfterMaxRetries(t *testing.T) {
	fp := &flakeyProvider{failures: 10}
	rec := metrics.NewRecorder()
	rp := NewRetryingProvider(fp, nil, rec, "flakey", 2, time.Millisecond)

	_, err := rp.FetchSeasons(context.Background(), 2014)
	if err == nil {
		t.Fatal("expected error after retries")
	}
	// Two retries after the initial attempt.
	if fp.calls != 3 {
		t.Fatalf("expected 3 attempts, got %d", fp.calls)
	}
	if rec.ProviderErrors("flakey") != 3 {
		t.Fatalf("expected 3 recorded errors, got %d", rec.ProviderErrors("flakey"))
	}
}

func TestRetryingProviderRecordsRateLimit(t *testing.T) {
	rec := metrics.NewRecorder()
	rlp := &rateLimitOnceProvider{}
	rp := NewRetryingProvider(rlp, nil, rec, "limited", 2, time.Millisecond)

	teams, err := rp.FetchTeams(context.Background())
	if err != nil {
		t.Fatalf("expected success after rate limit, got %v", err)
	}
	if len(teams) != 1 {
		t.Fatalf("unexpected teams %+v", teams)
	}
	if rec.Snapshot("limited").RateLimitHits != 1 {
		t.Fatalf("expected 1 rate limit hit, got %d", rec.Snapshot("limited").RateLimitHits)
	}
	if rec.Snapshot("limited").LastRetryAfter != time.Second {
		t.Fatalf("expected retry-after recorded, got %v", rec.Snapshot("limited").LastRetryAfter)
	}
}

func TestRetryingProviderRespectsContextCancel(t *testing.T) {
	fp := &flakeyProvider{failures: 100}
	rp := NewRetryingProvider(fp, nil, metrics.NewRecorder(), "flakey", 50, 50*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(10 * time.Millisecond)
		cancel()
	}()

	_, err := rp.FetchGames(ctx, "2023-2024")
	if err == nil {
		t.Fatal("expected error after cancellation")
	}
	if fp.calls >= 50 {
		t.Fatalf("expected early stop, got %d attempts", fp.calls)
	}
}

type rateLimitOnceProvider struct {
	calls int
}

func (p *rateLimitOnceProvider) FetchSeasons(ctx context.Context, since int) ([]string, error) {
	return nil, nil
}

func (p *rateLimitOnceProvider) FetchGames(ctx context.Context, season string) ([]domaingames.Game, error) {
	return nil, nil
}

func (p *rateLimitOnceProvider) FetchTeams(ctx context.Context) ([]domainteams.Team, error) {
	_ = ctx
	p.calls++
	if p.calls == 1 {
		return nil, &RateLimitError{Provider: "limited", StatusCode: 429, RetryAfter: time.Second}
	}
	return []domainteams.Team{{ID: 1}}, nil
}
