package config

const (
	envDataDir = "DATA_DIR"

	defaultDataDir = "data"
)

// StorageConfig controls where the parquet files land.
type StorageConfig struct {
	DataDir string
}

func loadStorage() StorageConfig {
	return StorageConfig{
		DataDir: envOrDefault(envDataDir, defaultDataDir),
	}
}
