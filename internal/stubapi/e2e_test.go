package stubapi_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dmitrijs2005/goalline/internal/client/client"
	"github.com/dmitrijs2005/goalline/internal/client/models"
	"github.com/dmitrijs2005/goalline/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/goalline/internal/client/rest"
	"github.com/dmitrijs2005/goalline/internal/client/services"
	"github.com/dmitrijs2005/goalline/internal/common"
	"github.com/dmitrijs2005/goalline/internal/stubapi"
	"github.com/dmitrijs2005/goalline/internal/stubapi/auth"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func startStub(t *testing.T) string {
	t.Helper()
	gin.SetMode(gin.TestMode)

	h := stubapi.NewHandler(stubapi.DefaultDataset(), stubapi.NewStore(), auth.NewIssuer([]byte("e2e"), time.Hour), nil)
	srv := httptest.NewServer(stubapi.NewRouter(h, nil))
	t.Cleanup(srv.Close)
	return srv.URL + "/api/v1"
}

func TestClientAgainstStub(t *testing.T) {
	ctx := context.Background()
	rc := rest.New(startStub(t))
	repo := metadata.NewMemoryRepository()

	session := services.NewSession(ctx, repo, rc, nil)
	api := client.NewHTTPClient(rc, session)

	var seen []*models.Identity
	unsubscribe := session.Subscribe(func(id *models.Identity) { seen = append(seen, id) })
	defer unsubscribe()

	// browsing needs no session
	teams, err := api.ListTeams(ctx, models.TeamFilter{Country: "Spain"})
	require.NoError(t, err)
	assert.Equal(t, 2, teams.Total)

	matches, err := api.ListMatches(ctx, models.MatchFilter{TeamID: "t1"})
	require.NoError(t, err)
	assert.Equal(t, 3, matches.Total)

	_, err = api.GetMatch(ctx, "nope")
	require.ErrorIs(t, err, common.ErrNotFound)
	assert.EqualError(t, err, "Match not found")

	// notes need a session
	_, err = api.ListNotes(ctx, "m1")
	require.ErrorIs(t, err, common.ErrUnauthorized)
	assert.EqualError(t, err, "Authentication required")

	id, err := session.Register(ctx, "fan@example.com", "secret")
	require.NoError(t, err)
	assert.Equal(t, "fan@example.com", id.Email)
	assert.Equal(t, models.RoleUser, id.Role)

	note, err := api.CreateNote(ctx, "m1", "Great game")
	require.NoError(t, err)
	assert.Equal(t, "Great game", note.Text)
	assert.Equal(t, id.ID, note.CreatedBy.UserID)

	notes, err := api.ListNotes(ctx, "m1")
	require.NoError(t, err)
	require.Len(t, notes, 1)
	assert.Equal(t, note.ID, notes[0].ID)

	require.NoError(t, api.DeleteNote(ctx, note.ID))
	require.NoError(t, api.DeleteNote(ctx, note.ID), "deleting twice is not an error")

	notes, err = api.ListNotes(ctx, "m1")
	require.NoError(t, err)
	assert.Empty(t, notes)

	// a fresh session over the same storage picks the login back up
	restored := services.NewSession(ctx, repo, rc, nil)
	assert.True(t, restored.IsAuthenticated())
	assert.Equal(t, id, restored.Current())

	oldToken, _ := session.Token()
	session.Logout(ctx)
	assert.False(t, session.IsAuthenticated())

	stored, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, stored)

	_, err = api.ListNotes(ctx, "m1")
	assert.EqualError(t, err, "Authentication required")

	// the backend revoked the old token
	err = rc.Do(ctx, rest.Request{Method: http.MethodGet, Path: "/notes", Token: oldToken}, nil)
	assert.EqualError(t, err, "Token has been revoked")

	require.Len(t, seen, 3)
	assert.Nil(t, seen[0])
	assert.Equal(t, "fan@example.com", seen[1].Email)
	assert.Nil(t, seen[2])
}

func TestClientAgainstStub_Analytics(t *testing.T) {
	ctx := context.Background()
	rc := rest.New(startStub(t))
	api := client.NewHTTPClient(rc, services.NewSession(ctx, metadata.NewMemoryRepository(), rc, nil))

	form, err := api.FetchFormAnalytics(ctx, models.FormFilter{})
	require.NoError(t, err)
	require.NotEmpty(t, form.Data)
	assert.Equal(t, 5, form.Data[0].N)

	h2h, err := api.FetchHeadToHead(ctx, models.H2HFilter{Team1: "t1", Team2: "t3"})
	require.NoError(t, err)
	assert.Equal(t, 1, h2h.Summary.Played)
	assert.Equal(t, 1, h2h.Summary.Draws)

	streaks, err := api.FetchStreaks(ctx, models.StreakFilter{Type: "clean", Limit: 1})
	require.NoError(t, err)
	require.Len(t, streaks.Streaks, 1)
	assert.Equal(t, "t5", streaks.Streaks[0].Team)

	table, err := api.LeagueTable(ctx, "c1", "s1")
	require.NoError(t, err)
	require.Len(t, table.Table, 3)
	assert.Equal(t, "t3", table.Table[0].TeamID)

	seasons, err := api.ListSeasons(ctx, models.SeasonFilter{CompetitionID: "c2"})
	require.NoError(t, err)
	require.Len(t, seasons.Items, 1)
	assert.Equal(t, "s2", seasons.Items[0].ID)
}
