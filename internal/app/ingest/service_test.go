package ingest

import (
	"context"
	"errors"
	"os"
	"strings"
	"testing"

	domaingames "nba-stats-report/internal/domain/games"
	"nba-stats-report/internal/lake"
	"nba-stats-report/internal/metrics"
	"nba-stats-report/internal/testutil"
)

func TestRunWritesBothTables(t *testing.T) {
	dir := t.TempDir()
	season := testutil.CurrentSeason()
	provider := &testutil.StubProvider{
		Seasons: []string{season},
		Teams:   testutil.SampleTeams(),
		Games:   map[string][]domaingames.Game{season: testutil.SampleGames(season)},
	}
	logger, _ := testutil.NewBufferLogger()
	rec := metrics.NewRecorder()

	svc := New(provider, lake.NewWriter(dir), logger, rec, 2014)
	if err := svc.Run(context.Background()); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	for _, path := range []string{lake.TeamsPath(dir), lake.GamesPath(dir)} {
		if _, err := os.Stat(path); err != nil {
			t.Fatalf("expected file %s: %v", path, err)
		}
	}

	m, err := lake.ReadManifest(dir)
	if err != nil {
		t.Fatalf("expected manifest, got %v", err)
	}
	if m.Teams.Rows != 3 || m.Games.Rows != 3 {
		t.Fatalf("unexpected manifest rows %+v", m)
	}

	if rec.RowsWritten(lake.TeamsTable) != 3 || rec.RowsWritten(lake.GamesTable) != 3 {
		t.Fatal("expected row metrics recorded")
	}
	if provider.SeasonCalls != 1 || provider.TeamCalls != 1 || provider.GameCalls != 1 {
		t.Fatalf("unexpected provider calls %+v", provider)
	}
}

func TestRunDropsGamesWithUnknownTeams(t *testing.T) {
	dir := t.TempDir()
	season := testutil.CurrentSeason()
	games := append(testutil.SampleGames(season), domaingames.Game{
		ID: 99, Season: season, HomeTeam: "Globetrotters", AwayTeam: "Celtics", HomeScore: 120, AwayScore: 80,
	})
	provider := &testutil.StubProvider{
		Seasons: []string{season},
		Teams:   testutil.SampleTeams(),
		Games:   map[string][]domaingames.Game{season: games},
	}
	logger, buf := testutil.NewBufferLogger()

	svc := New(provider, lake.NewWriter(dir), logger, metrics.NewRecorder(), 2014)
	if err := svc.Run(context.Background()); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	m, _ := lake.ReadManifest(dir)
	if m.Games.Rows != 3 {
		t.Fatalf("expected dropped game excluded, got %d rows", m.Games.Rows)
	}
	if !strings.Contains(buf.String(), "Globetrotters") {
		t.Fatalf("expected dropped game logged, got: %s", buf.String())
	}
}

func TestRunAggregatesAllSeasons(t *testing.T) {
	dir := t.TempDir()
	seasonA := "2022-2023"
	seasonB := testutil.CurrentSeason()
	gamesA := testutil.SampleGames(seasonA)
	for i := range gamesA {
		gamesA[i].ID += 100
	}
	provider := &testutil.StubProvider{
		Seasons: []string{seasonA, seasonB},
		Teams:   testutil.SampleTeams(),
		Games: map[string][]domaingames.Game{
			seasonA: gamesA,
			seasonB: testutil.SampleGames(seasonB),
		},
	}

	svc := New(provider, lake.NewWriter(dir), nil, metrics.NewRecorder(), 2014)
	if err := svc.Run(context.Background()); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	m, _ := lake.ReadManifest(dir)
	if m.Games.Rows != 6 {
		t.Fatalf("expected 6 games across seasons, got %d", m.Games.Rows)
	}
	if provider.GameCalls != 2 {
		t.Fatalf("expected one fetch per season, got %d", provider.GameCalls)
	}
}

func TestRunFailsWithoutSeasons(t *testing.T) {
	provider := &testutil.StubProvider{}
	svc := New(provider, lake.NewWriter(t.TempDir()), nil, metrics.NewRecorder(), 2014)

	err := svc.Run(context.Background())
	if err == nil || !strings.Contains(err.Error(), "no seasons") {
		t.Fatalf("expected no-seasons error, got %v", err)
	}
}

func TestRunPropagatesProviderErrors(t *testing.T) {
	provider := &testutil.StubProvider{Err: errors.New("upstream down")}
	svc := New(provider, lake.NewWriter(t.TempDir()), nil, metrics.NewRecorder(), 2014)

	err := svc.Run(context.Background())
	if err == nil || !strings.Contains(err.Error(), "upstream down") {
		t.Fatalf("expected provider error, got %v", err)
	}
}
