package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/goalline/internal/client/models"
	"github.com/dmitrijs2005/goalline/internal/common"
)

func (a *App) Competitions(ctx context.Context, args []string) error {
	f, err := parseFilters(args, keys([]string{"country"}, pageKeys)...)
	if err != nil {
		return err
	}
	pr, err := f.page()
	if err != nil {
		return err
	}

	var page *models.Page[models.Competition]
	if len(f) == 0 {
		page, err = a.api.ListCompetitions(ctx)
	} else {
		page, err = a.api.SearchCompetitions(ctx, models.CompetitionFilter{Country: f["country"], PageRequest: pr})
	}
	if err != nil {
		return err
	}

	rows := make([][]string, 0, len(page.Items))
	for _, c := range page.Items {
		rows = append(rows, []string{c.ID, c.Name, orDash(c.Country)})
	}
	renderTable(a.out, []string{"ID", "NAME", "COUNTRY"}, rows)
	renderPageFooter(a.out, page)
	return nil
}

// Seasons lists seasons. A leading bare argument is taken as the
// competition id.
func (a *App) Seasons(ctx context.Context, args []string) error {
	pos, rest := splitPositional(args)
	if len(pos) > 1 {
		return common.ValidationError("usage: seasons [competition_id] [status=..]")
	}
	f, err := parseFilters(rest, keys([]string{"competition_id", "status"}, pageKeys)...)
	if err != nil {
		return err
	}
	if len(pos) == 1 {
		f["competition_id"] = pos[0]
	}
	pr, err := f.page()
	if err != nil {
		return err
	}

	page, err := a.api.ListSeasons(ctx, models.SeasonFilter{
		CompetitionID: f["competition_id"],
		Status:        f["status"],
		PageRequest:   pr,
	})
	if err != nil {
		return err
	}

	rows := make([][]string, 0, len(page.Items))
	for _, s := range page.Items {
		rows = append(rows, []string{s.ID, s.CompetitionID, orDash(s.Year), orDash(s.Status)})
	}
	renderTable(a.out, []string{"ID", "COMPETITION", "YEAR", "STATUS"}, rows)
	renderPageFooter(a.out, page)
	return nil
}

func (a *App) Teams(ctx context.Context, args []string) error {
	f, err := parseFilters(args, keys([]string{"name", "country"}, pageKeys)...)
	if err != nil {
		return err
	}
	pr, err := f.page()
	if err != nil {
		return err
	}

	page, err := a.api.ListTeams(ctx, models.TeamFilter{Name: f["name"], Country: f["country"], PageRequest: pr})
	if err != nil {
		return err
	}

	rows := make([][]string, 0, len(page.Items))
	for _, t := range page.Items {
		rows = append(rows, []string{t.ID, t.Name, orDash(t.Country), orDash(t.City)})
	}
	renderTable(a.out, []string{"ID", "NAME", "COUNTRY", "CITY"}, rows)
	renderPageFooter(a.out, page)
	return nil
}

func (a *App) Players(ctx context.Context, args []string) error {
	f, err := parseFilters(args, keys([]string{"team_id", "position"}, pageKeys)...)
	if err != nil {
		return err
	}
	pr, err := f.page()
	if err != nil {
		return err
	}

	page, err := a.api.ListPlayers(ctx, models.PlayerFilter{TeamID: f["team_id"], Position: f["position"], PageRequest: pr})
	if err != nil {
		return err
	}

	rows := make([][]string, 0, len(page.Items))
	for _, p := range page.Items {
		rows = append(rows, []string{p.ID, p.Name, orDash(p.Position), orDash(p.Nationality), orDash(p.CurrentTeamID)})
	}
	renderTable(a.out, []string{"ID", "NAME", "POSITION", "NATIONALITY", "TEAM"}, rows)
	renderPageFooter(a.out, page)
	return nil
}

func (a *App) Matches(ctx context.Context, args []string) error {
	f, err := parseFilters(args, keys([]string{"competition_id", "season_id", "team_id", "status"}, pageKeys)...)
	if err != nil {
		return err
	}
	pr, err := f.page()
	if err != nil {
		return err
	}

	page, err := a.api.ListMatches(ctx, models.MatchFilter{
		CompetitionID: f["competition_id"],
		SeasonID:      f["season_id"],
		TeamID:        f["team_id"],
		Status:        f["status"],
		PageRequest:   pr,
	})
	if err != nil {
		return err
	}

	rows := make([][]string, 0, len(page.Items))
	for _, m := range page.Items {
		rows = append(rows, []string{m.ID, orDash(m.Date), m.HomeTeamID, m.AwayTeamID, scoreText(m), m.Status})
	}
	renderTable(a.out, []string{"ID", "DATE", "HOME", "AWAY", "SCORE", "STATUS"}, rows)
	renderPageFooter(a.out, page)
	return nil
}

// Match shows one match and, when signed in, its notes.
func (a *App) Match(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return common.ValidationError("usage: match <id>")
	}

	m, err := a.api.GetMatch(ctx, args[0])
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Match %s (%s)\n", m.ID, m.Status)
	fmt.Fprintf(a.out, "  %s vs %s  %s\n", m.HomeTeamID, m.AwayTeamID, scoreText(*m))
	fmt.Fprintf(a.out, "  competition=%s season=%s round=%s date=%s\n", m.CompetitionID, m.SeasonID, orDash(m.Round), orDash(m.Date))
	if m.Venue != nil {
		fmt.Fprintf(a.out, "  venue: %s\n", m.Venue.Name)
	}

	if !a.isLoggedIn() {
		fmt.Fprintln(a.out, "Notes: log in to see notes")
		return nil
	}
	fmt.Fprintln(a.out, "Notes:")
	return a.showNotes(ctx, m.ID)
}
