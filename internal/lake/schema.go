package lake

import (
	"github.com/apache/arrow-go/v18/arrow"
)

// TeamsSchema returns the Arrow schema of the teams table.
//
// Fields:
//   - team_id: int64 - Upstream team identifier
//   - team_name: string - Team name
//   - conference: string - Conference group name from the standings
//   - division: string - Division group name from the standings
func TeamsSchema() *arrow.Schema {
	return arrow.NewSchema(
		[]arrow.Field{
			{Name: "team_id", Type: arrow.PrimitiveTypes.Int64},
			{Name: "team_name", Type: arrow.BinaryTypes.String},
			{Name: "conference", Type: arrow.BinaryTypes.String},
			{Name: "division", Type: arrow.BinaryTypes.String},
		},
		nil,
	)
}

// GamesSchema returns the Arrow schema of the games table.
//
// Fields:
//   - game_id: int64 - Upstream game identifier
//   - season: string - Season label, e.g. "2023-2024"
//   - date: timestamp[ms, UTC] - Tip-off time
//   - home_team: string - Home team name
//   - away_team: string - Away team name
//   - home_score: int32 - Final home points
//   - away_score: int32 - Final away points
func GamesSchema() *arrow.Schema {
	return arrow.NewSchema(
		[]arrow.Field{
			{Name: "game_id", Type: arrow.PrimitiveTypes.Int64},
			{Name: "season", Type: arrow.BinaryTypes.String},
			{Name: "date", Type: arrow.FixedWidthTypes.Timestamp_ms},
			{Name: "home_team", Type: arrow.BinaryTypes.String},
			{Name: "away_team", Type: arrow.BinaryTypes.String},
			{Name: "home_score", Type: arrow.PrimitiveTypes.Int32},
			{Name: "away_score", Type: arrow.PrimitiveTypes.Int32},
		},
		nil,
	)
}
