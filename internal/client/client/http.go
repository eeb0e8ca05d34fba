package client

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"strings"

	"github.com/dmitrijs2005/goalline/internal/client/models"
	"github.com/dmitrijs2005/goalline/internal/client/rest"
	"github.com/dmitrijs2005/goalline/internal/common"
)

// HTTPClient talks to the goalline REST backend.
type HTTPClient struct {
	rest   *rest.Client
	tokens TokenSource
}

// NewHTTPClient returns a client sending requests through rc. tokens may be
// nil, in which case authenticated endpoints are called without a token and
// the backend answers 401.
func NewHTTPClient(rc *rest.Client, tokens TokenSource) *HTTPClient {
	return &HTTPClient{rest: rc, tokens: tokens}
}

var _ Client = (*HTTPClient)(nil)

func (c *HTTPClient) token() string {
	if c.tokens == nil {
		return ""
	}
	t, ok := c.tokens.Token()
	if !ok {
		return ""
	}
	return t
}

func get[T any](ctx context.Context, c *HTTPClient, path string, q url.Values) (*T, error) {
	var out T
	if err := c.rest.Do(ctx, rest.Request{Method: http.MethodGet, Path: path, Query: q}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func requireID(name, v string) error {
	if strings.TrimSpace(v) == "" {
		return common.ValidationError(name + " is required")
	}
	return nil
}

func (c *HTTPClient) ListCompetitions(ctx context.Context) (*models.Page[models.Competition], error) {
	return c.SearchCompetitions(ctx, models.CompetitionFilter{})
}

func (c *HTTPClient) SearchCompetitions(ctx context.Context, f models.CompetitionFilter) (*models.Page[models.Competition], error) {
	return get[models.Page[models.Competition]](ctx, c, "/competitions", f.Query())
}

func (c *HTTPClient) GetCompetition(ctx context.Context, id string) (*models.Competition, error) {
	if err := requireID("competition id", id); err != nil {
		return nil, err
	}
	return get[models.Competition](ctx, c, "/competitions/"+rest.Segment(id), nil)
}

func (c *HTTPClient) ListSeasons(ctx context.Context, f models.SeasonFilter) (*models.Page[models.Season], error) {
	return get[models.Page[models.Season]](ctx, c, "/seasons", f.Query())
}

func (c *HTTPClient) ListTeams(ctx context.Context, f models.TeamFilter) (*models.Page[models.Team], error) {
	return get[models.Page[models.Team]](ctx, c, "/teams", f.Query())
}

func (c *HTTPClient) GetTeam(ctx context.Context, id string) (*models.Team, error) {
	if err := requireID("team id", id); err != nil {
		return nil, err
	}
	return get[models.Team](ctx, c, "/teams/"+rest.Segment(id), nil)
}

func (c *HTTPClient) ListPlayers(ctx context.Context, f models.PlayerFilter) (*models.Page[models.Player], error) {
	return get[models.Page[models.Player]](ctx, c, "/players", f.Query())
}

func (c *HTTPClient) GetPlayer(ctx context.Context, id string) (*models.Player, error) {
	if err := requireID("player id", id); err != nil {
		return nil, err
	}
	return get[models.Player](ctx, c, "/players/"+rest.Segment(id), nil)
}

func (c *HTTPClient) ListMatches(ctx context.Context, f models.MatchFilter) (*models.Page[models.Match], error) {
	return get[models.Page[models.Match]](ctx, c, "/matches", f.Query())
}

// GetMatch fetches one match. A missing match yields an error matching
// common.ErrNotFound.
func (c *HTTPClient) GetMatch(ctx context.Context, id string) (*models.Match, error) {
	if err := requireID("match id", id); err != nil {
		return nil, err
	}
	return get[models.Match](ctx, c, "/matches/"+rest.Segment(id), nil)
}

// ListNotes returns the notes of a match, oldest first.
func (c *HTTPClient) ListNotes(ctx context.Context, matchID string) ([]models.Note, error) {
	if err := requireID("match id", matchID); err != nil {
		return nil, err
	}

	var out []models.Note
	err := c.rest.Do(ctx, rest.Request{
		Method: http.MethodGet,
		Path:   "/notes",
		Query:  url.Values{"match_id": {matchID}},
		Token:  c.token(),
	}, &out)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// CreateNote attaches text to a match. Blank text is rejected locally.
func (c *HTTPClient) CreateNote(ctx context.Context, matchID, text string) (*models.Note, error) {
	if err := requireID("match id", matchID); err != nil {
		return nil, err
	}
	if strings.TrimSpace(text) == "" {
		return nil, common.ValidationError("note text is required")
	}

	var out models.Note
	err := c.rest.Do(ctx, rest.Request{
		Method: http.MethodPost,
		Path:   "/notes",
		Body:   map[string]string{"match_id": matchID, "note": text},
		Token:  c.token(),
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) UpdateNote(ctx context.Context, id, text string) (*models.Note, error) {
	if err := requireID("note id", id); err != nil {
		return nil, err
	}
	if strings.TrimSpace(text) == "" {
		return nil, common.ValidationError("note text is required")
	}

	var out models.Note
	err := c.rest.Do(ctx, rest.Request{
		Method: http.MethodPut,
		Path:   "/notes/" + rest.Segment(id),
		Body:   map[string]string{"note": text},
		Token:  c.token(),
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteNote removes a note. A note that is already gone counts as deleted.
func (c *HTTPClient) DeleteNote(ctx context.Context, id string) error {
	if err := requireID("note id", id); err != nil {
		return err
	}

	err := c.rest.Do(ctx, rest.Request{
		Method: http.MethodDelete,
		Path:   "/notes/" + rest.Segment(id),
		Token:  c.token(),
	}, nil)
	if errors.Is(err, common.ErrNotFound) {
		return nil
	}
	return err
}

func (c *HTTPClient) FetchFormAnalytics(ctx context.Context, f models.FormFilter) (*models.FormAnalytics, error) {
	return get[models.FormAnalytics](ctx, c, "/analytics/form", f.Query())
}

func (c *HTTPClient) FetchHeadToHead(ctx context.Context, f models.H2HFilter) (*models.HeadToHead, error) {
	if strings.TrimSpace(f.Team1) == "" || strings.TrimSpace(f.Team2) == "" {
		return nil, common.ValidationError("team1 and team2 are required")
	}
	return get[models.HeadToHead](ctx, c, "/analytics/h2h", f.Query())
}

func (c *HTTPClient) FetchStreaks(ctx context.Context, f models.StreakFilter) (*models.Streaks, error) {
	return get[models.Streaks](ctx, c, "/analytics/streaks", f.Query())
}

func (c *HTTPClient) LeagueTable(ctx context.Context, competitionID, seasonID string) (*models.LeagueTable, error) {
	if err := requireID("competition id", competitionID); err != nil {
		return nil, err
	}
	if err := requireID("season id", seasonID); err != nil {
		return nil, err
	}
	return get[models.LeagueTable](ctx, c, "/tables/"+rest.Segment(competitionID)+"/"+rest.Segment(seasonID), nil)
}
