// Package analyze holds the consumer-side aggregations over the
// rest-augmented game table.
package analyze

import "github.com/KglobalTravel/pandorable-pandas/internal/reshape"

// Rate is a win rate with its sample size. Rate is 0 and meaningless when
// Games is 0; callers must check Games before reading Rate.
type Rate struct {
	Rate  float64 `json:"rate"`
	Games int     `json:"games"`
}

func rate(wins, n int) Rate {
	if n == 0 {
		return Rate{}
	}
	return Rate{Rate: float64(wins) / float64(n), Games: n}
}

// Result is the home-win rate split by whether the home side had the rest
// advantage.
type Result struct {
	MoreRested    Rate `json:"home_more_rested"`
	NotMoreRested Rate `json:"home_not_more_rested"`
	Overall       Rate `json:"overall"`
}

// RestAdvantage computes, over games with both rest values defined,
// P(home win | home more rested) and P(home win | home not more rested).
// Equal rest counts as not more rested.
func RestAdvantage(rows []reshape.GameRest) Result {
	var winsMore, nMore, winsNot, nNot int
	for _, r := range rows {
		won := r.HomePoints > r.AwayPoints
		if r.HomeRest > r.AwayRest {
			nMore++
			if won {
				winsMore++
			}
		} else {
			nNot++
			if won {
				winsNot++
			}
		}
	}
	return Result{
		MoreRested:    rate(winsMore, nMore),
		NotMoreRested: rate(winsNot, nNot),
		Overall:       rate(winsMore+winsNot, nMore+nNot),
	}
}

// HomeWinRate is the unconditional home-win rate over the given games.
func HomeWinRate(rows []reshape.GameRest) Rate {
	wins := 0
	for _, r := range rows {
		if r.HomePoints > r.AwayPoints {
			wins++
		}
	}
	return rate(wins, len(rows))
}

// WinRateBySpread groups the home-win rate by rest spread
// (home rest - away rest). Spreads that never occur have no entry.
func WinRateBySpread(rows []reshape.GameRest) map[int]Rate {
	wins := make(map[int]int)
	n := make(map[int]int)
	for _, r := range rows {
		spread := r.HomeRest - r.AwayRest
		n[spread]++
		if r.HomePoints > r.AwayPoints {
			wins[spread]++
		}
	}
	out := make(map[int]Rate, len(n))
	for spread, count := range n {
		out[spread] = rate(wins[spread], count)
	}
	return out
}
