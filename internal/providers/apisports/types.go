package apisports

const providerName = "apisports"

// The seasons endpoint mixes plain years (2015) and labels ("2015-2016"),
// so Response stays []any and the mapper keeps only the string labels.
type seasonsResponse struct {
	Response []any `json:"response"`
}

type gamesResponse struct {
	Response []gameResponse `json:"response"`
}

type gameResponse struct {
	ID     int64          `json:"id"`
	Date   string         `json:"date"`
	Teams  gameTeams      `json:"teams"`
	Scores gameScores     `json:"scores"`
	Status map[string]any `json:"status"`
}

type gameTeams struct {
	Home sideTeam `json:"home"`
	Away sideTeam `json:"away"`
}

type sideTeam struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type gameScores struct {
	Home sideScore `json:"home"`
	Away sideScore `json:"away"`
}

type sideScore struct {
	Total *int32 `json:"total"`
}

type teamsResponse struct {
	Response []teamResponse `json:"response"`
}

type teamResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// The standings endpoint wraps the group entries in a single-element outer
// list, so Response is a list of lists.
type standingsResponse struct {
	Response [][]standingEntry `json:"response"`
}

type standingEntry struct {
	Group standingGroup `json:"group"`
}

type standingGroup struct {
	Name string `json:"name"`
}
