package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/goalline/internal/client/models"
	"golang.org/x/sync/errgroup"
)

// Dashboard fetches competitions and teams concurrently and renders each
// section on its own: one failing section does not hide the other.
func (a *App) Dashboard(ctx context.Context) error {
	var (
		comps    *models.Page[models.Competition]
		teams    *models.Page[models.Team]
		compsErr error
		teamsErr error
	)

	var g errgroup.Group
	g.Go(func() error {
		comps, compsErr = a.api.ListCompetitions(ctx)
		return nil
	})
	g.Go(func() error {
		teams, teamsErr = a.api.ListTeams(ctx, models.TeamFilter{})
		return nil
	})
	_ = g.Wait()

	fmt.Fprintln(a.out, "== Competitions ==")
	if compsErr != nil {
		fmt.Fprintln(a.out, "Error:", compsErr.Error())
	} else {
		rows := make([][]string, 0, len(comps.Items))
		for _, c := range comps.Items {
			rows = append(rows, []string{c.ID, c.Name, orDash(c.Country)})
		}
		renderTable(a.out, []string{"ID", "NAME", "COUNTRY"}, rows)
	}

	fmt.Fprintln(a.out, "== Teams ==")
	if teamsErr != nil {
		fmt.Fprintln(a.out, "Error:", teamsErr.Error())
	} else {
		rows := make([][]string, 0, len(teams.Items))
		for _, t := range teams.Items {
			rows = append(rows, []string{t.ID, t.Name, orDash(t.Country)})
		}
		renderTable(a.out, []string{"ID", "NAME", "COUNTRY"}, rows)
	}
	return nil
}
