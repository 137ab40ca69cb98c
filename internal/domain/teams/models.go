package teams

// Team is the canonical flat team row persisted to the teams table.
// Conference and Division come from the standings endpoint; teams without
// both are not ingested.
type Team struct {
	ID         int64  `json:"team_id"`
	Name       string `json:"team_name"`
	Conference string `json:"conference"`
	Division   string `json:"division"`
}

// Names returns the set of team names in the given slice.
func Names(items []Team) []string {
	names := make([]string, 0, len(items))
	for _, t := range items {
		names = append(names, t.Name)
	}
	return names
}

// NameSet returns a lookup set of team names for membership checks.
func NameSet(items []Team) map[string]struct{} {
	set := make(map[string]struct{}, len(items))
	for _, t := range items {
		set[t.Name] = struct{}{}
	}
	return set
}
