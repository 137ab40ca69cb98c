package run

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"os"
	"time"

	"nba-stats-report/internal/app/ingest"
	"nba-stats-report/internal/app/report"
	"nba-stats-report/internal/config"
	"nba-stats-report/internal/lake"
	"nba-stats-report/internal/logging"
	"nba-stats-report/internal/metrics"
)

const metricsShutdownTimeout = 5 * time.Second

var metricsSetup = metrics.Setup

// Pipeline wires the ingestion and reporting services and owns the optional
// metrics endpoint for the duration of a run.
type Pipeline struct {
	cfg           config.Config
	logger        *slog.Logger
	metrics       *metrics.Recorder
	ingest        *ingest.Service
	report        *report.Service
	metricsServer *http.Server
	metricsStop   func(context.Context) error
}

// New constructs a fully wired pipeline writing report output to out.
func New(ctx context.Context, cfg config.Config, logger *slog.Logger, out io.Writer) (*Pipeline, error) {
	recorder, promHandler, metricsStop, err := metricsSetup(ctx, metrics.TelemetryConfig{
		Enabled:      cfg.Metrics.Enabled,
		Port:         cfg.Metrics.Port,
		ServiceName:  cfg.Metrics.ServiceName,
		OtlpEndpoint: cfg.Metrics.OtlpEndpoint,
		OtlpInsecure: cfg.Metrics.OtlpInsecure,
	})
	if err != nil {
		return nil, err
	}

	provider := newProviderFactory(logger, recorder).build(cfg)
	writer := lake.NewWriter(cfg.Storage.DataDir)

	p := &Pipeline{
		cfg:         cfg,
		logger:      logger,
		metrics:     recorder,
		ingest:      ingest.New(provider, writer, logger, recorder, cfg.APISports.SeasonSince),
		report:      report.New(cfg.Storage.DataDir, out, logger, recorder),
		metricsStop: metricsStop,
	}
	if promHandler != nil {
		mux := http.NewServeMux()
		mux.Handle("/metrics", promHandler)
		p.metricsServer = &http.Server{Addr: ":" + cfg.Metrics.Port, Handler: mux}
	}
	return p, nil
}

// Run executes ingestion (unless the parquet files are already present and
// ForceRefresh is off) followed by reporting.
func (p *Pipeline) Run(ctx context.Context) error {
	p.startMetrics()
	defer p.stopMetrics()

	if p.shouldIngest() {
		if err := p.ingest.Run(ctx); err != nil {
			return err
		}
	} else {
		logging.Info(p.logger, "parquet files present, skipping ingestion",
			logging.FieldPath, p.cfg.Storage.DataDir)
	}

	return p.report.Run(ctx)
}

// shouldIngest reports whether ingestion must run: always under ForceRefresh,
// otherwise only when a table file is missing.
func (p *Pipeline) shouldIngest() bool {
	if p.cfg.ForceRefresh {
		return true
	}
	dataDir := p.cfg.Storage.DataDir
	for _, path := range []string{lake.TeamsPath(dataDir), lake.GamesPath(dataDir)} {
		if _, err := os.Stat(path); err != nil {
			return true
		}
	}
	return false
}

func (p *Pipeline) startMetrics() {
	if p.metricsServer == nil {
		return
	}
	logging.Info(p.logger, "metrics server starting", "addr", p.metricsServer.Addr)
	go func() {
		if err := p.metricsServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logging.Warn(p.logger, "metrics server stopped", "error", err)
		}
	}()
}

func (p *Pipeline) stopMetrics() {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), metricsShutdownTimeout)
	defer cancel()

	if p.metricsServer != nil {
		if err := p.metricsServer.Shutdown(shutdownCtx); err != nil {
			logging.Warn(p.logger, "metrics server shutdown failed", "error", err)
		}
	}
	if p.metricsStop != nil {
		if err := p.metricsStop(shutdownCtx); err != nil {
			logging.Warn(p.logger, "metrics shutdown failed", "error", err)
		}
	}
}
