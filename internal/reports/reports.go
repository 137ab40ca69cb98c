package reports

// Report pairs a named analytical query with a human-readable description.
// Queries run against the teams and games views bound by Open.
type Report struct {
	Name        string
	Description string
	SQL         string
}

// All returns the fixed report set in execution order.
func All() []Report {
	return []Report{
		{
			Name:        "top_scoring_games",
			Description: "Top 10 highest scoring games of the last decade",
			SQL: `
SELECT g.game_id, g.home_team, g.away_team, (g.home_score + g.away_score) AS total_score
FROM games g
WHERE CAST(LEFT(g.season, 4) AS INT) >= YEAR(current_date) - 10
ORDER BY total_score DESC, g.game_id
LIMIT 10`,
		},
		{
			Name:        "win_loss_record",
			Description: "Win-loss record per team over the last decade",
			SQL: `
SELECT
    t.team_name,
    SUM(
        CASE
            WHEN t.team_name = g.home_team AND g.home_score > g.away_score THEN 1
            WHEN t.team_name = g.away_team AND g.away_score > g.home_score THEN 1
            ELSE 0 END
    ) AS wins,
    SUM(
        CASE
            WHEN t.team_name = g.home_team AND g.home_score < g.away_score THEN 1
            WHEN t.team_name = g.away_team AND g.away_score < g.home_score THEN 1
            ELSE 0 END
    ) AS losses
FROM teams t
JOIN games g ON t.team_name = g.home_team OR t.team_name = g.away_team
WHERE CAST(LEFT(g.season, 4) AS INT) >= YEAR(current_date) - 10
GROUP BY t.team_name
ORDER BY wins DESC, t.team_name`,
		},
		{
			Name:        "avg_points_per_season",
			Description: "Average points scored per team per season over the last decade",
			SQL: `
SELECT
    t.team_name AS team,
    g.season AS season,
    ROUND(AVG(
        CASE
            WHEN t.team_name = g.home_team THEN g.home_score
            WHEN t.team_name = g.away_team THEN g.away_score
            ELSE NULL END
    ), 2) AS average_score
FROM teams t
JOIN games g ON t.team_name = g.home_team OR t.team_name = g.away_team
WHERE CAST(LEFT(g.season, 4) AS INT) >= YEAR(current_date) - 10
GROUP BY t.team_name, g.season
ORDER BY team, season`,
		},
		{
			Name:        "conference_wins",
			Description: "Conference with the most wins over the last decade",
			SQL: `
SELECT
    t.conference,
    SUM(
        CASE
            WHEN t.team_name = g.home_team AND g.home_score > g.away_score THEN 1
            WHEN t.team_name = g.away_team AND g.away_score > g.home_score THEN 1
            ELSE 0 END
    ) AS wins
FROM teams t
JOIN games g ON t.team_name = g.home_team OR t.team_name = g.away_team
WHERE CAST(LEFT(g.season, 4) AS INT) >= YEAR(current_date) - 10
GROUP BY t.conference
ORDER BY wins DESC, t.conference`,
		},
		{
			Name:        "avg_victory_margin",
			Description: "Team with the highest average margin of victory over the last decade",
			SQL: `
SELECT
    t.team_name AS name,
    ROUND(AVG(
        CASE
            WHEN t.team_name = g.home_team AND g.home_score > g.away_score THEN g.home_score - g.away_score
            WHEN t.team_name = g.away_team AND g.away_score > g.home_score THEN g.away_score - g.home_score
            ELSE NULL END
    ), 2) AS average_margin
FROM teams t
JOIN games g ON t.team_name = g.home_team OR t.team_name = g.away_team
WHERE CAST(LEFT(g.season, 4) AS INT) >= YEAR(current_date) - 10
GROUP BY t.team_name
ORDER BY average_margin DESC, name`,
		},
		{
			Name:        "offense_defense_by_season",
			Description: "Average points scored and allowed per team per season",
			SQL: `
WITH points_allowed AS (
    SELECT
        g.season,
        t.team_name,
        COUNT(*) AS games_played,
        SUM(
            CASE
                WHEN t.team_name = g.home_team THEN g.away_score
                WHEN t.team_name = g.away_team THEN g.home_score
                ELSE NULL END
        ) AS points_allowed
    FROM teams t
    JOIN games g ON t.team_name = g.home_team OR t.team_name = g.away_team
    WHERE CAST(LEFT(g.season, 4) AS INT) >= YEAR(current_date) - 10
    GROUP BY g.season, t.team_name
),
points_scored AS (
    SELECT
        g.season,
        t.team_name,
        COUNT(*) AS games_played,
        SUM(
            CASE
                WHEN t.team_name = g.home_team THEN g.home_score
                WHEN t.team_name = g.away_team THEN g.away_score
                ELSE NULL END
        ) AS points_scored
    FROM teams t
    JOIN games g ON t.team_name = g.home_team OR t.team_name = g.away_team
    WHERE CAST(LEFT(g.season, 4) AS INT) >= YEAR(current_date) - 10
    GROUP BY g.season, t.team_name
)
SELECT
    ps.team_name AS team_name,
    ps.season AS season,
    pa.games_played,
    ROUND(ps.points_scored / ps.games_played, 2) AS avg_points_scored,
    ROUND(pa.points_allowed / pa.games_played, 2) AS avg_points_allowed
FROM points_scored ps
JOIN points_allowed pa ON ps.team_name = pa.team_name AND ps.season = pa.season
ORDER BY ps.team_name, ps.season`,
		},
	}
}
