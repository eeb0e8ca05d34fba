package stubapi

import (
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/dmitrijs2005/goalline/internal/client/models"
)

// scope is the set of match filters shared by the analytics endpoints.
type scope struct {
	CompetitionID string
	SeasonID      string
	TeamID        string
	Status        string
	DateFrom      string
	DateTo        string
	RoundTo       string
}

// result is a match with a readable full-time score.
type result struct {
	Date, Round string
	Home, Away  string
	HG, AG      int
}

// isoDate normalises s to YYYY-MM-DD. Unparseable input yields "".
func isoDate(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	for _, layout := range []string{"2006-01-02", time.RFC3339} {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format("2006-01-02")
		}
	}
	return ""
}

func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}

// results returns the played matches in scope, oldest first. Fixtures
// without a readable score are skipped.
func (s scope) results(matches []models.Match) []result {
	from, to := isoDate(s.DateFrom), isoDate(s.DateTo)

	var out []result
	for _, m := range matches {
		switch {
		case s.CompetitionID != "" && m.CompetitionID != s.CompetitionID,
			s.SeasonID != "" && m.SeasonID != s.SeasonID,
			s.TeamID != "" && m.HomeTeamID != s.TeamID && m.AwayTeamID != s.TeamID,
			s.Status != "" && m.Status != s.Status,
			from != "" && m.Date < from,
			to != "" && m.Date > to,
			s.RoundTo != "" && m.Round > s.RoundTo:
			continue
		}

		hg, ag, ok := parseScore(m.Score)
		if !ok {
			continue
		}
		out = append(out, result{Date: m.Date, Round: m.Round, Home: m.HomeTeamID, Away: m.AwayTeamID, HG: hg, AG: ag})
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Date != out[j].Date {
			return out[i].Date < out[j].Date
		}
		return out[i].Round < out[j].Round
	})
	return out
}

func (s scope) filters() map[string]any {
	return map[string]any{
		"date_from": nullable(isoDate(s.DateFrom)),
		"date_to":   nullable(isoDate(s.DateTo)),
		"round_to":  nullable(s.RoundTo),
	}
}

// outcome returns the home side's result letter and the away side's.
func outcome(hg, ag int) (home, away string) {
	switch {
	case hg > ag:
		return "W", "L"
	case hg < ag:
		return "L", "W"
	default:
		return "D", "D"
	}
}

func clamp(v, def, lo, hi int) int {
	if v == 0 {
		v = def
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// computeForm keeps the last n results per team. by is overall, home or
// away; team narrows the output to one team.
func computeForm(matches []models.Match, sc scope, n int, by, team string) *models.FormAnalytics {
	n = clamp(n, 5, 1, 20)
	by = strings.ToLower(strings.TrimSpace(by))
	if by == "" {
		by = "overall"
	}

	hist := map[string][]string{}
	push := func(t, r string) {
		seq := append(hist[t], r)
		if len(seq) > n {
			seq = seq[len(seq)-n:]
		}
		hist[t] = seq
	}

	for _, r := range sc.results(matches) {
		rh, ra := outcome(r.HG, r.AG)
		if by == "overall" || by == "home" {
			push(r.Home, rh)
		}
		if by == "overall" || by == "away" {
			push(r.Away, ra)
		}
	}

	rows := make([]models.FormRow, 0, len(hist))
	for t, seq := range hist {
		if team != "" && t != team {
			continue
		}
		rows = append(rows, models.FormRow{Team: t, N: n, Form: seq, FormStr: strings.Join(seq, "")})
	}
	sort.Slice(rows, func(i, j int) bool {
		wi, wj := countOf(rows[i].Form, "W"), countOf(rows[j].Form, "W")
		if wi != wj {
			return wi > wj
		}
		return rows[i].Team < rows[j].Team
	})

	filters := sc.filters()
	filters["n"] = n
	filters["by"] = by
	filters["team"] = nullable(team)
	return &models.FormAnalytics{Filters: filters, Data: rows}
}

func countOf(seq []string, v string) int {
	n := 0
	for _, s := range seq {
		if s == v {
			n++
		}
	}
	return n
}

// computeH2H summarises the played meetings of exactly team1 and team2.
func computeH2H(matches []models.Match, sc scope, team1, team2 string) *models.HeadToHead {
	summary := models.H2HSummary{
		Team1: team1,
		Team2: team2,
		Wins:  map[string]int{team1: 0, team2: 0},
		Goals: map[string]int{team1: 0, team2: 0},
	}
	meetings := []models.H2HMatch{}

	for _, r := range sc.results(matches) {
		pair := (r.Home == team1 && r.Away == team2) || (r.Home == team2 && r.Away == team1)
		if !pair {
			continue
		}

		summary.Played++
		summary.Goals[r.Home] += r.HG
		summary.Goals[r.Away] += r.AG
		switch {
		case r.HG > r.AG:
			summary.Wins[r.Home]++
		case r.AG > r.HG:
			summary.Wins[r.Away]++
		default:
			summary.Draws++
		}

		meetings = append(meetings, models.H2HMatch{
			Date:  r.Date,
			Round: r.Round,
			Team1: r.Home,
			Team2: r.Away,
			Score: itoa(r.HG) + "-" + itoa(r.AG),
		})
	}

	filters := sc.filters()
	filters["team1"] = team1
	filters["team2"] = team2
	return &models.HeadToHead{Filters: filters, Summary: summary, Matches: meetings}
}

type streakEntry struct {
	res    string
	gf, ga int
}

// streakHolds reports whether e continues a streak of kind typ.
func streakHolds(typ string, e streakEntry) bool {
	switch typ {
	case "winning":
		return e.res == "W"
	case "unbeaten":
		return e.res != "L"
	case "winless":
		return e.res != "W"
	case "scoring":
		return e.gf > 0
	case "clean":
		return e.ga == 0
	}
	return false
}

// computeStreaks measures each team's current run of the given kind,
// counting back from its latest result.
func computeStreaks(matches []models.Match, sc scope, typ string, limit int) *models.Streaks {
	typ = strings.ToLower(strings.TrimSpace(typ))
	if typ == "" {
		typ = "winning"
	}
	limit = clamp(limit, 10, 1, 50)

	seqs := map[string][]streakEntry{}
	for _, r := range sc.results(matches) {
		rh, ra := outcome(r.HG, r.AG)
		seqs[r.Home] = append(seqs[r.Home], streakEntry{res: rh, gf: r.HG, ga: r.AG})
		seqs[r.Away] = append(seqs[r.Away], streakEntry{res: ra, gf: r.AG, ga: r.HG})
	}

	rows := make([]models.StreakRow, 0, len(seqs))
	for team, seq := range seqs {
		row := models.StreakRow{Team: team}
		for i := len(seq) - 1; i >= 0 && streakHolds(typ, seq[i]); i-- {
			row.Length++
			row.GF += seq[i].gf
			row.GA += seq[i].ga
		}
		rows = append(rows, row)
	}
	sort.Slice(rows, func(i, j int) bool {
		a, b := rows[i], rows[j]
		switch {
		case a.Length != b.Length:
			return a.Length > b.Length
		case a.GF != b.GF:
			return a.GF > b.GF
		case a.GA != b.GA:
			return a.GA < b.GA
		}
		return a.Team < b.Team
	})
	if len(rows) > limit {
		rows = rows[:limit]
	}

	filters := sc.filters()
	filters["type"] = typ
	filters["limit"] = limit
	return &models.Streaks{Filters: filters, Streaks: rows}
}

// computeTable builds a league table from the finished matches of one
// competition season: three points a win, one a draw.
func computeTable(d *Dataset, competitionID, seasonID string) *models.LeagueTable {
	sc := scope{CompetitionID: competitionID, SeasonID: seasonID, Status: "finished"}

	rows := map[string]*models.TableRow{}
	tally := func(team string, gf, ga int) {
		row, ok := rows[team]
		if !ok {
			row = &models.TableRow{TeamID: team}
			if t, found := d.team(team); found {
				row.TeamName = t.Name
			}
			rows[team] = row
		}
		row.Played++
		row.GF += gf
		row.GA += ga
		row.GD = row.GF - row.GA
		switch {
		case gf > ga:
			row.Wins++
			row.Points += 3
		case gf < ga:
			row.Losses++
		default:
			row.Draws++
			row.Points++
		}
	}

	for _, r := range sc.results(d.Matches) {
		tally(r.Home, r.HG, r.AG)
		tally(r.Away, r.AG, r.HG)
	}

	table := make([]models.TableRow, 0, len(rows))
	for _, r := range rows {
		table = append(table, *r)
	}
	sort.Slice(table, func(i, j int) bool {
		a, b := table[i], table[j]
		switch {
		case a.Points != b.Points:
			return a.Points > b.Points
		case a.GD != b.GD:
			return a.GD > b.GD
		case a.GF != b.GF:
			return a.GF > b.GF
		}
		return a.TeamID < b.TeamID
	})

	return &models.LeagueTable{CompetitionID: competitionID, SeasonID: seasonID, Table: table}
}

func itoa(n int) string { return strconv.Itoa(n) }
