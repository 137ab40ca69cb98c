package metrics

// Attribute keys used on exported instruments.
const (
	AttrProvider = "provider"
	AttrTable    = "table"
	AttrReport   = "report"
)
