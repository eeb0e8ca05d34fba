package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/goalline/internal/client/models"
	"github.com/dmitrijs2005/goalline/internal/common"
)

// Form shows recent form per team. Without arguments the backend defaults
// apply.
func (a *App) Form(ctx context.Context, args []string) error {
	f, err := parseFilters(args, keys([]string{"n", "by", "team"}, scopeKeys)...)
	if err != nil {
		return err
	}
	n, err := f.intVal("n")
	if err != nil {
		return err
	}

	res, err := a.api.FetchFormAnalytics(ctx, models.FormFilter{N: n, By: f["by"], Team: f["team"], AnalyticsScope: f.scope()})
	if err != nil {
		return err
	}

	rows := make([][]string, 0, len(res.Data))
	for _, r := range res.Data {
		form := r.FormStr
		if form == "" {
			form = strings.Join(r.Form, "")
		}
		rows = append(rows, []string{r.Team, itoa(r.N), form})
	}
	renderTable(a.out, []string{"TEAM", "N", "FORM"}, rows)
	return nil
}

func (a *App) H2H(ctx context.Context, args []string) error {
	f, err := parseFilters(args, keys([]string{"team1", "team2"}, scopeKeys)...)
	if err != nil {
		return err
	}

	res, err := a.api.FetchHeadToHead(ctx, models.H2HFilter{Team1: f["team1"], Team2: f["team2"], AnalyticsScope: f.scope()})
	if err != nil {
		return err
	}

	s := res.Summary
	fmt.Fprintf(a.out, "%s vs %s: played %d, draws %d\n", s.Team1, s.Team2, s.Played, s.Draws)
	fmt.Fprintf(a.out, "  wins  %s=%d %s=%d\n", s.Team1, s.Wins[s.Team1], s.Team2, s.Wins[s.Team2])
	fmt.Fprintf(a.out, "  goals %s=%d %s=%d\n", s.Team1, s.Goals[s.Team1], s.Team2, s.Goals[s.Team2])

	rows := make([][]string, 0, len(res.Matches))
	for _, m := range res.Matches {
		rows = append(rows, []string{orDash(m.Date), orDash(m.Round), m.Team1, m.Team2, m.Score})
	}
	renderTable(a.out, []string{"DATE", "ROUND", "HOME", "AWAY", "SCORE"}, rows)
	return nil
}

func (a *App) Streaks(ctx context.Context, args []string) error {
	f, err := parseFilters(args, keys([]string{"type", "limit"}, scopeKeys)...)
	if err != nil {
		return err
	}
	limit, err := f.intVal("limit")
	if err != nil {
		return err
	}

	res, err := a.api.FetchStreaks(ctx, models.StreakFilter{Type: f["type"], Limit: limit, AnalyticsScope: f.scope()})
	if err != nil {
		return err
	}

	rows := make([][]string, 0, len(res.Streaks))
	for _, s := range res.Streaks {
		rows = append(rows, []string{s.Team, itoa(s.Length), itoa(s.GF), itoa(s.GA)})
	}
	renderTable(a.out, []string{"TEAM", "LENGTH", "GF", "GA"}, rows)
	return nil
}

func (a *App) Table(ctx context.Context, args []string) error {
	if len(args) != 2 {
		return common.ValidationError("usage: table <competition_id> <season_id>")
	}

	res, err := a.api.LeagueTable(ctx, args[0], args[1])
	if err != nil {
		return err
	}

	rows := make([][]string, 0, len(res.Table))
	for i, r := range res.Table {
		rows = append(rows, []string{
			itoa(i + 1), r.DisplayName(), itoa(r.Played), itoa(r.Wins), itoa(r.Draws),
			itoa(r.Losses), itoa(r.GF), itoa(r.GA), itoa(r.GD), itoa(r.Points),
		})
	}
	renderTable(a.out, []string{"#", "TEAM", "P", "W", "D", "L", "GF", "GA", "GD", "PTS"}, rows)
	return nil
}
