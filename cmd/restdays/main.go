// Command restdays runs the rest-days pipeline over a season schedule CSV:
// load/clean, melt to team appearances, compute rest days, widen back to
// games, and report the home-rest-advantage win rates.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"github.com/KglobalTravel/pandorable-pandas/internal/analyze"
	"github.com/KglobalTravel/pandorable-pandas/internal/games"
	"github.com/KglobalTravel/pandorable-pandas/internal/reshape"
	"github.com/KglobalTravel/pandorable-pandas/internal/store"
	"github.com/KglobalTravel/pandorable-pandas/internal/table"
)

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func main() {
	_ = godotenv.Load()

	var (
		input        = flag.String("input", envOr("RESTDAYS_INPUT", "data/raw/games.csv.gz"), "schedule CSV, optionally gzip-compressed")
		derivedRoot  = flag.String("derived-root", envOr("RESTDAYS_DERIVED_ROOT", "data/derived"), "root directory for derived JSON")
		writeDerived = flag.Bool("write-derived", true, "write pipeline outputs to the derived root")
		pretty       = flag.Bool("pretty", true, "pretty-print derived JSON")
		team         = flag.String("team", "", "print the long table filtered to one team")
		csvOut       = flag.String("csv", "", "write the wide table as CSV to this path (- for stdout)")
	)
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	sch, err := games.LoadCSV(*input)
	if err != nil {
		logger.Error("load schedule", "input", *input, "err", err)
		os.Exit(1)
	}
	logger.Info("loaded schedule",
		"games", len(sch.Games),
		"teams", sch.Teams.Len(),
		"separator_rows", sch.Drops.SeparatorRows,
		"bad_rows", sch.Drops.BadRows,
	)

	apps, dropped := reshape.Melt(sch.Games)
	if dropped > 0 {
		logger.Warn("games dropped for missing team names", "games", dropped)
	}
	apps = reshape.RestDays(apps)

	rows, err := reshape.Widen(sch.Games, apps)
	if err != nil {
		logger.Error("widen", "err", err)
		os.Exit(1)
	}
	logger.Info("rest computed", "appearances", len(apps), "games_with_both_rests", len(rows))

	res := analyze.RestAdvantage(rows)
	spread := analyze.WinRateBySpread(rows)

	if *writeDerived {
		st := store.NewJSONStore(*derivedRoot)
		outputs := map[string]any{
			"appearances.json":        apps,
			"game_rest.json":          rows,
			"rest_advantage.json":     res,
			"win_rate_by_spread.json": spread,
		}
		for rel, v := range outputs {
			if err := st.WriteDerived(rel, v, *pretty); err != nil {
				logger.Error("write derived", "file", rel, "err", err)
				os.Exit(1)
			}
		}
		logger.Info("derived outputs written", "root", *derivedRoot, "files", len(outputs))
	}

	fmt.Printf("home win rate overall:            %.3f  (n=%d)\n", res.Overall.Rate, res.Overall.Games)
	fmt.Printf("home win rate when more rested:   %.3f  (n=%d)\n", res.MoreRested.Rate, res.MoreRested.Games)
	fmt.Printf("home win rate when not more rested: %.3f  (n=%d)\n", res.NotMoreRested.Rate, res.NotMoreRested.Games)

	if *team != "" {
		df := table.ByTeam(table.Long(apps), *team)
		fmt.Println(df)
	}

	if *csvOut != "" {
		w := os.Stdout
		if *csvOut != "-" {
			f, err := os.Create(*csvOut)
			if err != nil {
				logger.Error("create csv", "path", *csvOut, "err", err)
				os.Exit(1)
			}
			defer f.Close()
			w = f
		}
		if err := table.WriteCSV(w, table.Wide(rows)); err != nil {
			logger.Error("write csv", "err", err)
			os.Exit(1)
		}
	}
}
