package reshape

import "sort"

// RestDays partitions appearances by team, orders each partition by date
// (game id breaks a same-day tie deterministically), and computes the rest
// value for every appearance after the team's first:
//
//	rest = calendar days since previous appearance - 1
//
// so a team playing on consecutive days has 0 days of rest, not 1. The first
// appearance per team keeps Rest = nil. A team appearing once produces no
// defined rest values; that is not an error.
//
// The input is not modified. The returned slice is sorted by
// (team, date, game id).
func RestDays(apps []Appearance) []Appearance {
	out := make([]Appearance, len(apps))
	copy(out, apps)

	sort.Slice(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.Team != b.Team {
			return a.Team < b.Team
		}
		if !a.Date.Equal(b.Date) {
			return a.Date.Before(b.Date)
		}
		return a.GameID < b.GameID
	})

	for i := range out {
		out[i].Rest = nil
		if i == 0 || out[i].Team != out[i-1].Team {
			continue
		}
		days := int(out[i].Date.Sub(out[i-1].Date).Hours() / 24)
		rest := days - 1
		out[i].Rest = &rest
	}
	return out
}
