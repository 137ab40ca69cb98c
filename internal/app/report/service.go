package report

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"nba-stats-report/internal/logging"
	"nba-stats-report/internal/metrics"
	"nba-stats-report/internal/reports"
)

// openEngine is swapped in tests to inject a stub engine.
var openEngine = func(ctx context.Context, dataDir string) (queryEngine, error) {
	return reports.Open(ctx, dataDir)
}

type queryEngine interface {
	Query(ctx context.Context, query string) (*reports.ResultSet, error)
	Close() error
}

// Service runs the fixed report set against the persisted tables and writes
// rendered tables to out.
type Service struct {
	dataDir string
	out     io.Writer
	logger  *slog.Logger
	metrics *metrics.Recorder
}

// New constructs a reporting service over the parquet files under dataDir.
func New(dataDir string, out io.Writer, logger *slog.Logger, recorder *metrics.Recorder) *Service {
	return &Service{
		dataDir: dataDir,
		out:     out,
		logger:  logger,
		metrics: recorder,
	}
}

// Run opens the engine and executes every report in order. A failing report
// is logged and counted but does not stop the remaining reports; the error
// returned at the end reflects any failures.
func (s *Service) Run(ctx context.Context) error {
	engine, err := openEngine(ctx, s.dataDir)
	if err != nil {
		return err
	}
	defer engine.Close()

	all := reports.All()
	failed := 0
	for _, rep := range all {
		start := time.Now()
		rs, err := engine.Query(ctx, rep.SQL)
		s.metrics.RecordReportQuery(rep.Name, time.Since(start), err)
		if err != nil {
			failed++
			logging.Error(s.logger, "report failed", err, logging.FieldReport, rep.Name)
			continue
		}

		fmt.Fprintf(s.out, "\n%s: %s\n", rep.Name, rep.Description)
		if err := reports.Render(s.out, rs); err != nil {
			return fmt.Errorf("report: render %s: %w", rep.Name, err)
		}
		logging.Info(s.logger, "report complete",
			logging.FieldReport, rep.Name,
			logging.FieldCount, len(rs.Rows),
			logging.FieldDurationMS, time.Since(start).Milliseconds())
	}

	if failed > 0 {
		return fmt.Errorf("report: %d of %d reports failed", failed, len(all))
	}
	return nil
}
