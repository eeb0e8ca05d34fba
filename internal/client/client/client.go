package client

import (
	"context"

	"github.com/dmitrijs2005/goalline/internal/client/models"
)

// TokenSource yields the bearer token of the current session, if any.
type TokenSource interface {
	Token() (string, bool)
}

type Client interface {
	ListCompetitions(ctx context.Context) (*models.Page[models.Competition], error)
	SearchCompetitions(ctx context.Context, f models.CompetitionFilter) (*models.Page[models.Competition], error)
	GetCompetition(ctx context.Context, id string) (*models.Competition, error)
	ListSeasons(ctx context.Context, f models.SeasonFilter) (*models.Page[models.Season], error)
	ListTeams(ctx context.Context, f models.TeamFilter) (*models.Page[models.Team], error)
	GetTeam(ctx context.Context, id string) (*models.Team, error)
	ListPlayers(ctx context.Context, f models.PlayerFilter) (*models.Page[models.Player], error)
	GetPlayer(ctx context.Context, id string) (*models.Player, error)
	ListMatches(ctx context.Context, f models.MatchFilter) (*models.Page[models.Match], error)
	GetMatch(ctx context.Context, id string) (*models.Match, error)

	ListNotes(ctx context.Context, matchID string) ([]models.Note, error)
	CreateNote(ctx context.Context, matchID, text string) (*models.Note, error)
	UpdateNote(ctx context.Context, id, text string) (*models.Note, error)
	DeleteNote(ctx context.Context, id string) error

	FetchFormAnalytics(ctx context.Context, f models.FormFilter) (*models.FormAnalytics, error)
	FetchHeadToHead(ctx context.Context, f models.H2HFilter) (*models.HeadToHead, error)
	FetchStreaks(ctx context.Context, f models.StreakFilter) (*models.Streaks, error)
	LeagueTable(ctx context.Context, competitionID, seasonID string) (*models.LeagueTable, error)
}
