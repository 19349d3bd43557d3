package reshape

import (
	"fmt"
	"time"

	"github.com/KglobalTravel/pandorable-pandas/internal/games"
)

// GameRest is one row of the rest-augmented wide table: the original game
// attributes plus the computed rest for each side. Only games where both
// sides have a defined rest value appear; "rest advantage" is undefined when
// either team is making its first appearance.
type GameRest struct {
	GameID     int       `json:"game_id"`
	Date       time.Time `json:"date"`
	AwayTeam   string    `json:"away_team"`
	AwayPoints int       `json:"away_points"`
	HomeTeam   string    `json:"home_team"`
	HomePoints int       `json:"home_points"`
	AwayRest   int       `json:"away_rest"`
	HomeRest   int       `json:"home_rest"`
}

type appearanceKey struct {
	gameID int
	role   Role
}

// Widen pivots the rest-annotated long table back to one row per game and
// joins it onto the original games, preserving game order. A duplicate
// (game id, role) pair in apps means Melt produced corrupt output and is
// returned as an error rather than resolved by overwriting.
func Widen(gs []games.Game, apps []Appearance) ([]GameRest, error) {
	rest := make(map[appearanceKey]*int, len(apps))
	for _, a := range apps {
		k := appearanceKey{gameID: a.GameID, role: a.Role}
		if _, dup := rest[k]; dup {
			return nil, fmt.Errorf("duplicate appearance for game %d role %s", a.GameID, a.Role)
		}
		rest[k] = a.Rest
	}

	rows := make([]GameRest, 0, len(gs))
	for _, g := range gs {
		home, okH := rest[appearanceKey{gameID: g.ID, role: RoleHome}]
		away, okA := rest[appearanceKey{gameID: g.ID, role: RoleAway}]
		if !okH || !okA || home == nil || away == nil {
			continue
		}
		rows = append(rows, GameRest{
			GameID:     g.ID,
			Date:       g.Date,
			AwayTeam:   g.AwayTeam,
			AwayPoints: g.AwayPoints,
			HomeTeam:   g.HomeTeam,
			HomePoints: g.HomePoints,
			AwayRest:   *away,
			HomeRest:   *home,
		})
	}
	return rows, nil
}
