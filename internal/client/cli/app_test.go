package cli

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"sync"
	"testing"

	"github.com/dmitrijs2005/goalline/internal/client/client"
	"github.com/dmitrijs2005/goalline/internal/client/models"
	"github.com/dmitrijs2005/goalline/internal/common"
	"github.com/dmitrijs2005/goalline/internal/replay"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---- fakes ----

// fakeAPI implements client.Client. Methods a test does not set up panic
// through the nil embedded interface.
type fakeAPI struct {
	client.Client

	mu sync.Mutex

	matchFilter models.MatchFilter
	matches     *models.Page[models.Match]

	teamFilter models.TeamFilter
	teams      *models.Page[models.Team]
	teamsErr   error

	comps    *models.Page[models.Competition]
	compsErr error

	match    *models.Match
	matchErr error

	notes     []models.Note
	created   []string
	deleted   []string
	deleteErr error

	formFilter models.FormFilter
	form       *models.FormAnalytics
}

func (f *fakeAPI) ListMatches(_ context.Context, mf models.MatchFilter) (*models.Page[models.Match], error) {
	f.matchFilter = mf
	return f.matches, nil
}

func (f *fakeAPI) ListTeams(_ context.Context, tf models.TeamFilter) (*models.Page[models.Team], error) {
	f.mu.Lock()
	f.teamFilter = tf
	f.mu.Unlock()
	return f.teams, f.teamsErr
}

func (f *fakeAPI) ListCompetitions(context.Context) (*models.Page[models.Competition], error) {
	return f.comps, f.compsErr
}

func (f *fakeAPI) GetMatch(context.Context, string) (*models.Match, error) {
	return f.match, f.matchErr
}

func (f *fakeAPI) ListNotes(context.Context, string) ([]models.Note, error) {
	return f.notes, nil
}

func (f *fakeAPI) CreateNote(_ context.Context, matchID, text string) (*models.Note, error) {
	if strings.TrimSpace(text) == "" {
		return nil, common.ValidationError("note text is required")
	}
	f.created = append(f.created, text)
	return &models.Note{ID: "new", MatchID: matchID, Text: text}, nil
}

func (f *fakeAPI) DeleteNote(_ context.Context, id string) error {
	f.deleted = append(f.deleted, id)
	return f.deleteErr
}

func (f *fakeAPI) FetchFormAnalytics(_ context.Context, ff models.FormFilter) (*models.FormAnalytics, error) {
	f.formFilter = ff
	return f.form, nil
}

type fakeAuth struct {
	current *models.Identity
	stream  *replay.Subject[*models.Identity]

	loginEmail, loginPassword string
	loginErr                  error
	loggedOut                 bool
}

func newFakeAuth() *fakeAuth {
	return &fakeAuth{stream: replay.NewSubject[*models.Identity](nil)}
}

func (f *fakeAuth) Login(_ context.Context, email, password string) (*models.Identity, error) {
	f.loginEmail, f.loginPassword = email, password
	if f.loginErr != nil {
		return nil, f.loginErr
	}
	f.current = &models.Identity{ID: "u1", Email: email, Role: models.RoleUser}
	f.stream.Publish(f.current)
	return f.current, nil
}

func (f *fakeAuth) Register(ctx context.Context, email, password string) (*models.Identity, error) {
	return f.Login(ctx, email, password)
}

func (f *fakeAuth) Logout(context.Context) {
	f.loggedOut = true
	f.current = nil
	f.stream.Publish(nil)
}

func (f *fakeAuth) IsAuthenticated() bool { return f.current != nil }
func (f *fakeAuth) Token() (string, bool) { return "tok", f.current != nil }
func (f *fakeAuth) Current() *models.Identity { return f.current }
func (f *fakeAuth) Subscribe(fn func(*models.Identity)) func() { return f.stream.Subscribe(fn) }

func newTestApp(api client.Client, auth *fakeAuth, input string) (*App, *bytes.Buffer) {
	var out bytes.Buffer
	a := newApp(api, auth, strings.NewReader(input), &out, nil)
	return a, &out
}

func stubCredentials(t *testing.T, email, password string) {
	t.Helper()
	origST, origGP := getSimpleText, getPassword
	getSimpleText = func(*bufio.Reader, string, io.Writer) (string, error) { return email, nil }
	getPassword = func(io.Writer) (string, error) { return password, nil }
	t.Cleanup(func() {
		getSimpleText = origST
		getPassword = origGP
	})
}

// ---- auth views ----

func TestLoginAndStatus(t *testing.T) {
	auth := newFakeAuth()
	a, out := newTestApp(&fakeAPI{}, auth, "")
	unsubscribe := auth.Subscribe(a.onIdentity)
	defer unsubscribe()

	assert.Equal(t, "anonymous", a.getStatus())

	stubCredentials(t, "alice@example.com", "secret")
	require.NoError(t, a.Login(context.Background()))

	assert.Equal(t, "alice@example.com", auth.loginEmail)
	assert.Equal(t, "secret", auth.loginPassword)
	assert.Equal(t, "alice@example.com", a.getStatus())
	assert.True(t, a.isLoggedIn())
	assert.Contains(t, out.String(), "Logged in as alice@example.com (user)")

	require.NoError(t, a.Logout(context.Background()))
	assert.True(t, auth.loggedOut)
	assert.Equal(t, "anonymous", a.getStatus())
}

func TestLogin_ErrorReturned(t *testing.T) {
	auth := newFakeAuth()
	auth.loginErr = &common.APIError{Status: 401, Message: "Invalid email or password"}
	a, _ := newTestApp(&fakeAPI{}, auth, "")

	stubCredentials(t, "alice@example.com", "bad")
	err := a.Login(context.Background())
	require.EqualError(t, err, "Invalid email or password")
	assert.False(t, a.isLoggedIn())
}

func TestOnIdentity_Admin(t *testing.T) {
	a, _ := newTestApp(&fakeAPI{}, newFakeAuth(), "")
	a.onIdentity(&models.Identity{Email: "root@example.com", Role: models.RoleAdmin})
	assert.Equal(t, "root@example.com [admin]", a.getStatus())
}

func TestWhoami(t *testing.T) {
	auth := newFakeAuth()
	a, out := newTestApp(&fakeAPI{}, auth, "")

	require.NoError(t, a.Whoami(context.Background()))
	assert.Equal(t, "Not logged in\n", out.String())

	out.Reset()
	auth.current = &models.Identity{ID: "u1", Email: "a@b.c", Role: models.RoleUser}
	require.NoError(t, a.Whoami(context.Background()))
	assert.Equal(t, "a@b.c (user) id=u1\n", out.String())
}

// ---- browsing ----

func TestMatches_FiltersAndRender(t *testing.T) {
	api := &fakeAPI{matches: &models.Page[models.Match]{
		Items: []models.Match{{ID: "m1", HomeTeamID: "T1", AwayTeamID: "T2", Status: "FT", Score: []byte(`"2-1"`)}},
		Page:  1, PageSize: 20, Total: 1,
	}}
	a, out := newTestApp(api, newFakeAuth(), "")

	require.NoError(t, a.Matches(context.Background(), []string{"team_id=T1", "status=FT", "page=2"}))

	assert.Equal(t, models.MatchFilter{TeamID: "T1", Status: "FT", PageRequest: models.PageRequest{Page: 2}}, api.matchFilter)
	got := out.String()
	assert.Contains(t, got, "m1")
	assert.Contains(t, got, "2-1")
	assert.Contains(t, got, "page 1/1, 1 total")
}

func TestMatches_BadFilters(t *testing.T) {
	a, _ := newTestApp(&fakeAPI{}, newFakeAuth(), "")
	ctx := context.Background()

	err := a.Matches(ctx, []string{"colour=red"})
	require.ErrorIs(t, err, common.ErrValidation)
	assert.Contains(t, err.Error(), `unknown filter "colour"`)

	err = a.Matches(ctx, []string{"T1"})
	require.ErrorIs(t, err, common.ErrValidation)

	err = a.Matches(ctx, []string{"page=-1"})
	require.ErrorIs(t, err, common.ErrValidation)
}

func TestTeams_EmptyListing(t *testing.T) {
	api := &fakeAPI{teams: &models.Page[models.Team]{Page: 1, PageSize: 20}}
	a, out := newTestApp(api, newFakeAuth(), "")

	require.NoError(t, a.Teams(context.Background(), []string{"name=Nobody"}))
	assert.Equal(t, "Nobody", api.teamFilter.Name)
	assert.Contains(t, out.String(), "(no results)")
}

func TestTeams_MoreResultsHint(t *testing.T) {
	api := &fakeAPI{teams: &models.Page[models.Team]{
		Items:    []models.Team{{ID: "t1", Name: "Arsenal"}},
		Page:     1,
		PageSize: 1,
		Total:    2,
	}}
	a, out := newTestApp(api, newFakeAuth(), "")

	require.NoError(t, a.Teams(context.Background(), []string{"page_size=1"}))
	assert.Contains(t, out.String(), "page 1/2, 2 total\nmore results: add page=2\n")

	out.Reset()
	api.teams.Page = 2
	require.NoError(t, a.Teams(context.Background(), []string{"page=2", "page_size=1"}))
	assert.NotContains(t, out.String(), "more results")
}

func TestMatch_AnonymousSkipsNotes(t *testing.T) {
	api := &fakeAPI{match: &models.Match{ID: "m1", HomeTeamID: "T1", AwayTeamID: "T2", Status: "FT"}}
	a, out := newTestApp(api, newFakeAuth(), "")

	require.NoError(t, a.Match(context.Background(), []string{"m1"}))
	assert.Contains(t, out.String(), "T1 vs T2")
	assert.Contains(t, out.String(), "log in to see notes")
}

func TestMatch_NotFound(t *testing.T) {
	api := &fakeAPI{matchErr: &common.APIError{Status: 404, Message: "Match not found"}}
	a, _ := newTestApp(api, newFakeAuth(), "")

	err := a.Match(context.Background(), []string{"nope"})
	require.ErrorIs(t, err, common.ErrNotFound)
	assert.EqualError(t, err, "Match not found")

	require.ErrorIs(t, a.Match(context.Background(), nil), common.ErrValidation)
}

// ---- notes ----

func signedIn() *fakeAuth {
	auth := newFakeAuth()
	auth.current = &models.Identity{ID: "u1", Email: "a@b.c", Role: models.RoleUser}
	return auth
}

func TestAddNote(t *testing.T) {
	api := &fakeAPI{}
	a, out := newTestApp(api, signedIn(), "first line\nsecond line\n\n")

	require.NoError(t, a.AddNote(context.Background(), []string{"m1"}))
	assert.Equal(t, []string{"first line\nsecond line"}, api.created)
	assert.Len(t, a.cachedNotes("m1"), 1)
	assert.Contains(t, out.String(), "Note new added")
}

func TestAddNote_BlankKeepsList(t *testing.T) {
	api := &fakeAPI{}
	a, _ := newTestApp(api, signedIn(), "   \n\n")
	a.setNotes("m1", []models.Note{{ID: "n1"}})

	err := a.AddNote(context.Background(), []string{"m1"})
	require.ErrorIs(t, err, common.ErrValidation)
	assert.Empty(t, api.created)
	assert.Equal(t, []models.Note{{ID: "n1"}}, a.cachedNotes("m1"))
}

func TestDelNote_StableUnderRepetition(t *testing.T) {
	api := &fakeAPI{notes: []models.Note{{ID: "n1"}, {ID: "n2"}}}
	a, _ := newTestApp(api, signedIn(), "")
	ctx := context.Background()

	require.NoError(t, a.Notes(ctx, []string{"m1"}))
	require.Len(t, a.cachedNotes("m1"), 2)

	require.NoError(t, a.DelNote(ctx, []string{"m1", "n1"}))
	after := a.cachedNotes("m1")
	require.NoError(t, a.DelNote(ctx, []string{"m1", "n1"}))

	assert.Equal(t, []models.Note{{ID: "n2"}}, after)
	assert.Equal(t, after, a.cachedNotes("m1"))
	assert.Equal(t, []string{"n1", "n1"}, api.deleted)
}

func TestDelNote_ErrorKeepsList(t *testing.T) {
	api := &fakeAPI{deleteErr: &common.APIError{Status: 403, Message: "You cannot delete this note"}}
	a, _ := newTestApp(api, signedIn(), "")
	a.setNotes("m1", []models.Note{{ID: "n1"}})

	err := a.DelNote(context.Background(), []string{"m1", "n1"})
	require.EqualError(t, err, "You cannot delete this note")
	assert.Equal(t, []models.Note{{ID: "n1"}}, a.cachedNotes("m1"))
}

// ---- analytics ----

func TestForm(t *testing.T) {
	api := &fakeAPI{form: &models.FormAnalytics{Data: []models.FormRow{
		{Team: "T1", N: 3, Form: []string{"W", "W", "L"}},
	}}}
	a, out := newTestApp(api, newFakeAuth(), "")

	require.NoError(t, a.Form(context.Background(), []string{"n=3", "season_id=s1"}))
	assert.Equal(t, 3, api.formFilter.N)
	assert.Equal(t, "s1", api.formFilter.SeasonID)
	assert.Contains(t, out.String(), "WWL")

	require.NoError(t, a.Form(context.Background(), nil))
	assert.Equal(t, models.FormFilter{}, api.formFilter)
}

// ---- dashboard ----

func TestDashboard_SectionsIndependent(t *testing.T) {
	api := &fakeAPI{
		comps:    &models.Page[models.Competition]{Items: []models.Competition{{ID: "c1", Name: "Premier League"}}},
		teamsErr: errors.New("server unavailable"),
	}
	a, out := newTestApp(api, newFakeAuth(), "")

	require.NoError(t, a.Dashboard(context.Background()))
	got := out.String()
	assert.Contains(t, got, "Premier League")
	assert.Contains(t, got, "== Teams ==\nError: server unavailable")
}
