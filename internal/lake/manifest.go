package lake

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// Manifest tracks what the last ingestion wrote.
type Manifest struct {
	Version     int       `json:"version"`
	GeneratedAt time.Time `json:"generatedAt"`
	Teams       TableMeta `json:"teams"`
	Games       TableMeta `json:"games"`
}

// TableMeta describes one persisted table.
type TableMeta struct {
	Rows          int       `json:"rows"`
	LastRefreshed time.Time `json:"lastRefreshed"`
}

func defaultManifest() Manifest {
	return Manifest{Version: 1, GeneratedAt: time.Now().UTC()}
}

// ReadManifest loads the manifest under dataDir. A missing or unreadable
// manifest yields the zero-value default alongside the error.
func ReadManifest(dataDir string) (Manifest, error) {
	f, err := os.Open(ManifestPath(dataDir))
	if err != nil {
		return defaultManifest(), err
	}
	defer f.Close()
	var m Manifest
	if err := json.NewDecoder(f).Decode(&m); err != nil {
		return defaultManifest(), err
	}
	return m, nil
}

func writeManifest(dataDir string, m Manifest) error {
	m.GeneratedAt = time.Now().UTC()
	path := ManifestPath(dataDir)
	tmp := path + ".tmp"
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}

func (w *Writer) updateManifest(table string, rows int) error {
	m, _ := ReadManifest(w.dataDir)
	now := time.Now().UTC()

	meta := TableMeta{Rows: rows, LastRefreshed: now}
	switch table {
	case TeamsTable:
		m.Teams = meta
	case GamesTable:
		m.Games = meta
	default:
		return fmt.Errorf("lake: unknown table %q", table)
	}

	return writeManifest(w.dataDir, m)
}
