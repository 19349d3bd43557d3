package games

import (
	"compress/gzip"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/KglobalTravel/pandorable-pandas/internal/categorical"
)

// DateLayout matches the Basketball-Reference schedule export,
// e.g. "Tue, Oct 27, 2015".
const DateLayout = "Mon, Jan 2, 2006"

// Game is one row of the cleaned per-game table. Games are immutable after
// load; everything downstream derives from them.
type Game struct {
	ID         int       `json:"game_id"`
	Date       time.Time `json:"date"`
	AwayTeam   string    `json:"away_team"`
	AwayTeamID int       `json:"away_team_id"`
	AwayPoints int       `json:"away_points"`
	HomeTeam   string    `json:"home_team"`
	HomeTeamID int       `json:"home_team_id"`
	HomePoints int       `json:"home_points"`
}

// DropReport counts rows removed during cleaning. Drops are reported, never
// silent: the caller decides whether the counts are acceptable.
type DropReport struct {
	// SeparatorRows are formatting artifacts with fewer than 4 non-missing
	// fields, like the month-header lines ("October,,,,,,,,").
	SeparatorRows int `json:"separator_rows"`
	// BadRows passed the field-count filter but miss a team name or carry
	// unparseable/negative points (typically unplayed fixtures).
	BadRows int `json:"bad_rows"`
}

func (r DropReport) Total() int { return r.SeparatorRows + r.BadRows }

// Schedule is the loader output: the cleaned games, the interned team
// vocabulary, and the drop accounting.
type Schedule struct {
	Games []Game
	Teams *categorical.Dictionary
	Drops DropReport
}

// LoadCSV reads a schedule export from path, transparently decompressing
// files ending in ".gz".
func LoadCSV(path string) (*Schedule, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var r io.Reader = f
	if strings.HasSuffix(path, ".gz") {
		gz, err := gzip.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("gzip %s: %w", path, err)
		}
		defer gz.Close()
		r = gz
	}
	sch, err := Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return sch, nil
}

// columns locates the needed header columns. The export names the date and
// team columns; each points column immediately follows its team column.
type columns struct {
	date, awayTeam, awayPts, homeTeam, homePts int
}

func resolveColumns(header []string) (columns, error) {
	cols := columns{date: -1, awayTeam: -1, homeTeam: -1}
	for i, h := range header {
		switch strings.TrimSpace(h) {
		case "Date":
			cols.date = i
		case "Visitor/Neutral":
			cols.awayTeam = i
			cols.awayPts = i + 1
		case "Home/Neutral":
			cols.homeTeam = i
			cols.homePts = i + 1
		}
	}
	if cols.date < 0 || cols.awayTeam < 0 || cols.homeTeam < 0 {
		return cols, fmt.Errorf("header missing required columns (Date, Visitor/Neutral, Home/Neutral): %v", header)
	}
	if cols.awayPts >= len(header) || cols.homePts >= len(header) {
		return cols, fmt.Errorf("no points column after team column: %v", header)
	}
	return cols, nil
}

// Parse reads the schedule CSV, selects the game columns, parses dates and
// points, and drops malformed rows with explicit counts. A date that fails to
// parse on an otherwise well-formed row is an error for the whole load.
func Parse(r io.Reader) (*Schedule, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 // separator rows are ragged

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	cols, err := resolveColumns(header)
	if err != nil {
		return nil, err
	}

	sch := &Schedule{Teams: categorical.New()}
	for line := 2; ; line++ {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}

		if nonMissing(rec) < 4 {
			sch.Drops.SeparatorRows++
			continue
		}
		if len(rec) <= cols.homePts || len(rec) <= cols.awayPts {
			sch.Drops.BadRows++
			continue
		}

		away := strings.TrimSpace(rec[cols.awayTeam])
		home := strings.TrimSpace(rec[cols.homeTeam])
		if away == "" || home == "" {
			sch.Drops.BadRows++
			continue
		}

		awayPts, okA := parsePoints(rec[cols.awayPts])
		homePts, okH := parsePoints(rec[cols.homePts])
		if !okA || !okH {
			sch.Drops.BadRows++
			continue
		}

		date, err := time.Parse(DateLayout, strings.TrimSpace(rec[cols.date]))
		if err != nil {
			return nil, fmt.Errorf("line %d: parse date %q: %w", line, rec[cols.date], err)
		}

		sch.Games = append(sch.Games, Game{
			ID:         len(sch.Games),
			Date:       date,
			AwayTeam:   away,
			AwayTeamID: sch.Teams.Intern(away),
			AwayPoints: awayPts,
			HomeTeam:   home,
			HomeTeamID: sch.Teams.Intern(home),
			HomePoints: homePts,
		})
	}
	return sch, nil
}

func nonMissing(rec []string) int {
	n := 0
	for _, f := range rec {
		if strings.TrimSpace(f) != "" {
			n++
		}
	}
	return n
}

func parsePoints(s string) (int, bool) {
	pts, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || pts < 0 {
		return 0, false
	}
	return pts, true
}
