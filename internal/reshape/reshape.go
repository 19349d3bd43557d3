// Package reshape converts the wide per-game table into a long per-team-
// appearance table, computes rest days per team, and projects the result back
// onto games. All stages are pure functions over in-memory slices.
package reshape

import (
	"time"

	"github.com/KglobalTravel/pandorable-pandas/internal/games"
)

// Role discriminates the two appearances a game yields.
type Role string

const (
	RoleAway Role = "away"
	RoleHome Role = "home"
)

// Appearance is one row of the long table: one team's participation in one
// game. Rest is nil until RestDays fills it, and stays nil for a team's first
// appearance in the dataset.
type Appearance struct {
	GameID int       `json:"game_id"`
	Date   time.Time `json:"date"`
	Role   Role      `json:"role"`
	Team   string    `json:"team"`
	TeamID int       `json:"team_id"`
	Rest   *int      `json:"rest"`
}

// Melt turns each game into exactly two appearances (role=away, role=home)
// carrying the game's key and date. A game with a missing team name on either
// side yields no appearances; such games are counted in dropped rather than
// silently lost.
func Melt(gs []games.Game) (apps []Appearance, dropped int) {
	apps = make([]Appearance, 0, 2*len(gs))
	for _, g := range gs {
		if g.AwayTeam == "" || g.HomeTeam == "" {
			dropped++
			continue
		}
		apps = append(apps,
			Appearance{GameID: g.ID, Date: g.Date, Role: RoleAway, Team: g.AwayTeam, TeamID: g.AwayTeamID},
			Appearance{GameID: g.ID, Date: g.Date, Role: RoleHome, Team: g.HomeTeam, TeamID: g.HomeTeamID},
		)
	}
	return apps, dropped
}
