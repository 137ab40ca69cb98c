package run

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"nba-stats-report/internal/config"
	"nba-stats-report/internal/lake"
	"nba-stats-report/internal/testutil"
)

func fixtureConfig(dataDir string) config.Config {
	cfg := config.Load()
	cfg.Provider = "fixture"
	cfg.Storage.DataDir = dataDir
	cfg.Metrics.Enabled = false
	return cfg
}

func TestPipelineRunEndToEnd(t *testing.T) {
	dir := t.TempDir()
	logger, _ := testutil.NewBufferLogger()
	var out bytes.Buffer

	p, err := New(context.Background(), fixtureConfig(dir), logger, &out)
	if err != nil {
		t.Fatalf("expected pipeline, got %v", err)
	}
	if err := p.Run(context.Background()); err != nil {
		t.Fatalf("expected clean run, got %v", err)
	}

	m, err := lake.ReadManifest(dir)
	if err != nil {
		t.Fatalf("expected manifest after run, got %v", err)
	}
	if m.Teams.Rows == 0 || m.Games.Rows == 0 {
		t.Fatalf("expected ingested rows, got %+v", m)
	}

	for _, want := range []string{"top_scoring_games", "win_loss_record", "(", "rows)"} {
		if !strings.Contains(out.String(), want) {
			t.Fatalf("expected report output to contain %q, got:\n%s", want, out.String())
		}
	}
}

func TestPipelineSkipsIngestionWhenFilesPresent(t *testing.T) {
	dir := t.TempDir()
	logger, buf := testutil.NewBufferLogger()
	var out bytes.Buffer

	p, err := New(context.Background(), fixtureConfig(dir), logger, &out)
	if err != nil {
		t.Fatalf("expected pipeline, got %v", err)
	}
	if err := p.Run(context.Background()); err != nil {
		t.Fatalf("first run failed: %v", err)
	}

	buf.Reset()
	if err := p.Run(context.Background()); err != nil {
		t.Fatalf("second run failed: %v", err)
	}
	if !strings.Contains(buf.String(), "skipping ingestion") {
		t.Fatalf("expected skip log, got: %s", buf.String())
	}
}

func TestShouldIngest(t *testing.T) {
	dir := t.TempDir()
	cfg := fixtureConfig(dir)

	p, err := New(context.Background(), cfg, nil, &bytes.Buffer{})
	if err != nil {
		t.Fatalf("expected pipeline, got %v", err)
	}
	if !p.shouldIngest() {
		t.Fatal("expected ingestion needed for empty data dir")
	}

	if err := p.Run(context.Background()); err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if p.shouldIngest() {
		t.Fatal("expected ingestion skipped once files exist")
	}

	cfg.ForceRefresh = true
	forced, err := New(context.Background(), cfg, nil, &bytes.Buffer{})
	if err != nil {
		t.Fatalf("expected pipeline, got %v", err)
	}
	if !forced.shouldIngest() {
		t.Fatal("expected force refresh to override skip")
	}
}
