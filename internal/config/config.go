package config

// Config holds runtime configuration for the pipeline.
type Config struct {
	Provider     string
	ForceRefresh bool
	APISports    APISportsConfig
	Storage      StorageConfig
	Metrics      MetricsConfig
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	return Config{
		Provider:     envOrDefault(envProvider, defaultProvider),
		ForceRefresh: boolEnvOrDefault(envForceRefresh, false),
		APISports:    loadAPISports(),
		Storage:      loadStorage(),
		Metrics:      loadMetrics(),
	}
}
