package reports

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	_ "github.com/marcboeker/go-duckdb/v2"

	"nba-stats-report/internal/lake"
)

// Engine wraps an in-memory DuckDB instance with the parquet files exposed
// as the teams and games views. Queries never mutate the underlying files.
type Engine struct {
	db *sql.DB
}

// Open starts an embedded DuckDB and binds the two table views. It fails if
// either parquet file is missing, so reporting before ingestion is a hard
// error rather than an empty result.
func Open(ctx context.Context, dataDir string) (*Engine, error) {
	views := map[string]string{
		lake.TeamsTable: lake.TeamsPath(dataDir),
		lake.GamesTable: lake.GamesPath(dataDir),
	}
	for table, path := range views {
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("reports: %s table has no parquet file at %s, run ingestion first: %w", table, path, err)
		}
	}

	db, err := sql.Open("duckdb", "")
	if err != nil {
		return nil, fmt.Errorf("reports: open duckdb: %w", err)
	}

	for table, path := range views {
		stmt := fmt.Sprintf("CREATE OR REPLACE VIEW %s AS SELECT * FROM read_parquet('%s')", table, escapeSQLString(path))
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			db.Close()
			return nil, fmt.Errorf("reports: create view %s: %w", table, err)
		}
	}

	return &Engine{db: db}, nil
}

// Close releases the embedded database.
func (e *Engine) Close() error {
	if e == nil || e.db == nil {
		return nil
	}
	return e.db.Close()
}

// ResultSet is a fully materialized query result with stringified cells.
type ResultSet struct {
	Columns []string
	Rows    [][]string
}

// Query executes a read-only statement and materializes the result.
func (e *Engine) Query(ctx context.Context, query string) (*ResultSet, error) {
	rows, err := e.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return nil, err
	}

	result := &ResultSet{Columns: cols}
	values := make([]any, len(cols))
	scanTargets := make([]any, len(cols))
	for i := range values {
		scanTargets[i] = &values[i]
	}

	for rows.Next() {
		if err := rows.Scan(scanTargets...); err != nil {
			return nil, err
		}
		row := make([]string, len(cols))
		for i, v := range values {
			row[i] = formatValue(v)
		}
		result.Rows = append(result.Rows, row)
	}
	return result, rows.Err()
}

func formatValue(v any) string {
	switch val := v.(type) {
	case nil:
		return "NULL"
	case []byte:
		return string(val)
	case time.Time:
		return val.UTC().Format(time.RFC3339)
	case float64:
		return strconv.FormatFloat(val, 'g', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(val), 'g', -1, 32)
	default:
		return fmt.Sprintf("%v", val)
	}
}

func escapeSQLString(raw string) string {
	return strings.ReplaceAll(raw, "'", "''")
}
