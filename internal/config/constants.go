package config

const (
	envProvider     = "PROVIDER"
	envForceRefresh = "FORCE_REFRESH"
	envMetricsPort  = "METRICS_PORT"
	envMetricsOn    = "METRICS_ENABLED"
	envOtelEndpoint = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService  = "OTEL_SERVICE_NAME"
	envOtelInsecure = "OTEL_EXPORTER_OTLP_INSECURE"

	defaultProvider    = "fixture"
	defaultMetricsPort = "9090"
)
