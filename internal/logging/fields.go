package logging

// Common structured log field keys to keep logs searchable/consistent.
const (
	FieldService    = "service"
	FieldVersion    = "version"
	FieldProvider   = "provider"
	FieldSeason     = "season"
	FieldTable      = "table"
	FieldPath       = "path"
	FieldReport     = "report"
	FieldCount      = "count"
	FieldDurationMS = "duration_ms"
)
