// Package table projects the pipeline's slices into gota dataframes for
// consumers that want tabular access (filtering, CSV rendering, printing).
package table

import (
	"io"
	"math"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"

	"github.com/KglobalTravel/pandorable-pandas/internal/reshape"
)

const dateFormat = "2006-01-02"

// Long builds the per-team-appearance frame with columns
// game_id, date, role, team, rest. Undefined rest values become NaN.
func Long(apps []reshape.Appearance) dataframe.DataFrame {
	n := len(apps)
	ids := make([]int, n)
	dates := make([]string, n)
	roles := make([]string, n)
	teams := make([]string, n)
	rest := make([]float64, n)
	for i, a := range apps {
		ids[i] = a.GameID
		dates[i] = a.Date.Format(dateFormat)
		roles[i] = string(a.Role)
		teams[i] = a.Team
		if a.Rest == nil {
			rest[i] = math.NaN()
		} else {
			rest[i] = float64(*a.Rest)
		}
	}
	return dataframe.New(
		series.New(ids, series.Int, "game_id"),
		series.New(dates, series.String, "date"),
		series.New(roles, series.String, "role"),
		series.New(teams, series.String, "team"),
		series.New(rest, series.Float, "rest"),
	)
}

// Wide builds the rest-augmented per-game frame.
func Wide(rows []reshape.GameRest) dataframe.DataFrame {
	n := len(rows)
	ids := make([]int, n)
	dates := make([]string, n)
	awayTeams := make([]string, n)
	awayPoints := make([]int, n)
	homeTeams := make([]string, n)
	homePoints := make([]int, n)
	awayRest := make([]int, n)
	homeRest := make([]int, n)
	for i, r := range rows {
		ids[i] = r.GameID
		dates[i] = r.Date.Format(dateFormat)
		awayTeams[i] = r.AwayTeam
		awayPoints[i] = r.AwayPoints
		homeTeams[i] = r.HomeTeam
		homePoints[i] = r.HomePoints
		awayRest[i] = r.AwayRest
		homeRest[i] = r.HomeRest
	}
	return dataframe.New(
		series.New(ids, series.Int, "game_id"),
		series.New(dates, series.String, "date"),
		series.New(awayTeams, series.String, "away_team"),
		series.New(awayPoints, series.Int, "away_points"),
		series.New(homeTeams, series.String, "home_team"),
		series.New(homePoints, series.Int, "home_points"),
		series.New(awayRest, series.Int, "away_rest"),
		series.New(homeRest, series.Int, "home_rest"),
	)
}

// ByTeam filters the long frame to one team's appearances, in date order.
func ByTeam(long dataframe.DataFrame, team string) dataframe.DataFrame {
	return long.Filter(dataframe.F{
		Colname:    "team",
		Comparator: series.Eq,
		Comparando: team,
	}).Arrange(dataframe.Sort("date"))
}

// WriteCSV renders a frame for external consumers.
func WriteCSV(w io.Writer, df dataframe.DataFrame) error {
	return df.WriteCSV(w)
}
