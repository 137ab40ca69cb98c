package lake

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/memory"
	"github.com/apache/arrow-go/v18/parquet"
	"github.com/apache/arrow-go/v18/parquet/compress"
	"github.com/apache/arrow-go/v18/parquet/pqarrow"

	domaingames "nba-stats-report/internal/domain/games"
	domainteams "nba-stats-report/internal/domain/teams"
)

// Writer persists team and game rows as parquet files and keeps the manifest
// current. Files are fully replaced on every write (temp file + rename).
type Writer struct {
	dataDir   string
	allocator memory.Allocator
}

// NewWriter constructs a writer rooted at dataDir.
func NewWriter(dataDir string) *Writer {
	return &Writer{
		dataDir:   dataDir,
		allocator: memory.DefaultAllocator,
	}
}

// DataDir exposes the writer root path (primarily for testing).
func (w *Writer) DataDir() string {
	if w == nil {
		return ""
	}
	return w.dataDir
}

// WriteTeams replaces the teams table with the given rows and returns the row count.
func (w *Writer) WriteTeams(items []domainteams.Team) (int, error) {
	rec, err := w.buildTeamsRecord(items)
	if err != nil {
		return 0, err
	}
	defer rec.Release()

	if err := w.writeParquet(TeamsPath(w.dataDir), rec); err != nil {
		return 0, err
	}
	return len(items), w.updateManifest(TeamsTable, len(items))
}

// WriteGames replaces the games table with the given rows and returns the row count.
func (w *Writer) WriteGames(items []domaingames.Game) (int, error) {
	rec, err := w.buildGamesRecord(items)
	if err != nil {
		return 0, err
	}
	defer rec.Release()

	if err := w.writeParquet(GamesPath(w.dataDir), rec); err != nil {
		return 0, err
	}
	return len(items), w.updateManifest(GamesTable, len(items))
}

func (w *Writer) buildTeamsRecord(items []domainteams.Team) (arrow.Record, error) {
	builder := array.NewRecordBuilder(w.allocator, TeamsSchema())
	defer builder.Release()

	idBuilder := builder.Field(0).(*array.Int64Builder)
	nameBuilder := builder.Field(1).(*array.StringBuilder)
	conferenceBuilder := builder.Field(2).(*array.StringBuilder)
	divisionBuilder := builder.Field(3).(*array.StringBuilder)

	for _, t := range items {
		idBuilder.Append(t.ID)
		nameBuilder.Append(t.Name)
		conferenceBuilder.Append(t.Conference)
		divisionBuilder.Append(t.Division)
	}

	return builder.NewRecord(), nil
}

func (w *Writer) buildGamesRecord(items []domaingames.Game) (arrow.Record, error) {
	builder := array.NewRecordBuilder(w.allocator, GamesSchema())
	defer builder.Release()

	idBuilder := builder.Field(0).(*array.Int64Builder)
	seasonBuilder := builder.Field(1).(*array.StringBuilder)
	dateBuilder := builder.Field(2).(*array.TimestampBuilder)
	homeTeamBuilder := builder.Field(3).(*array.StringBuilder)
	awayTeamBuilder := builder.Field(4).(*array.StringBuilder)
	homeScoreBuilder := builder.Field(5).(*array.Int32Builder)
	awayScoreBuilder := builder.Field(6).(*array.Int32Builder)

	for _, g := range items {
		idBuilder.Append(g.ID)
		seasonBuilder.Append(g.Season)
		dateBuilder.Append(arrow.Timestamp(g.Date.UTC().UnixMilli()))
		homeTeamBuilder.Append(g.HomeTeam)
		awayTeamBuilder.Append(g.AwayTeam)
		homeScoreBuilder.Append(g.HomeScore)
		awayScoreBuilder.Append(g.AwayScore)
	}

	return builder.NewRecord(), nil
}

func (w *Writer) writeParquet(target string, rec arrow.Record) error {
	if w == nil {
		return fmt.Errorf("lake writer not configured")
	}
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return err
	}

	tmp := target + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return err
	}

	props := parquet.NewWriterProperties(parquet.WithCompression(compress.Codecs.Snappy))
	fw, err := pqarrow.NewFileWriter(rec.Schema(), f, props, pqarrow.DefaultWriterProps())
	if err != nil {
		f.Close()
		os.Remove(tmp)
		return err
	}

	if err := fw.Write(rec); err != nil {
		fw.Close()
		f.Close()
		os.Remove(tmp)
		return err
	}
	if err := fw.Close(); err != nil {
		f.Close()
		os.Remove(tmp)
		return err
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return err
	}

	return os.Rename(tmp, target)
}
