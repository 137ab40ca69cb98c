package lake

import "path/filepath"

const (
	// TeamsTable and GamesTable name the two persisted tables; the reports
	// layer exposes them as views under the same names.
	TeamsTable = "teams"
	GamesTable = "games"

	teamsFile    = "teams.parquet"
	gamesFile    = "games.parquet"
	manifestFile = "manifest.json"
)

// TeamsPath returns the parquet file path for the teams table.
func TeamsPath(dataDir string) string {
	return filepath.Join(dataDir, teamsFile)
}

// GamesPath returns the parquet file path for the games table.
func GamesPath(dataDir string) string {
	return filepath.Join(dataDir, gamesFile)
}

// ManifestPath returns the manifest file path.
func ManifestPath(dataDir string) string {
	return filepath.Join(dataDir, manifestFile)
}
