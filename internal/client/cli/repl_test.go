package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeExec struct {
	loggedIn bool

	calls []string
	args  map[string][]string
	fail  map[string]error
}

func newFakeExec() *fakeExec {
	return &fakeExec{args: map[string][]string{}, fail: map[string]error{}}
}

func (f *fakeExec) record(name string, args []string) error {
	f.calls = append(f.calls, name)
	f.args[name] = args
	return f.fail[name]
}

func (f *fakeExec) isLoggedIn() bool { return f.loggedIn }

func (f *fakeExec) Register(context.Context) error { return f.record("register", nil) }
func (f *fakeExec) Login(context.Context) error {
	f.loggedIn = true
	return f.record("login", nil)
}
func (f *fakeExec) Logout(context.Context) error {
	f.loggedIn = false
	return f.record("logout", nil)
}
func (f *fakeExec) Whoami(context.Context) error { return f.record("whoami", nil) }

func (f *fakeExec) Competitions(_ context.Context, a []string) error {
	return f.record("competitions", a)
}
func (f *fakeExec) Seasons(_ context.Context, a []string) error { return f.record("seasons", a) }
func (f *fakeExec) Teams(_ context.Context, a []string) error   { return f.record("teams", a) }
func (f *fakeExec) Players(_ context.Context, a []string) error { return f.record("players", a) }
func (f *fakeExec) Matches(_ context.Context, a []string) error { return f.record("matches", a) }
func (f *fakeExec) Match(_ context.Context, a []string) error   { return f.record("match", a) }
func (f *fakeExec) Notes(_ context.Context, a []string) error   { return f.record("notes", a) }
func (f *fakeExec) AddNote(_ context.Context, a []string) error { return f.record("addnote", a) }
func (f *fakeExec) EditNote(_ context.Context, a []string) error {
	return f.record("editnote", a)
}
func (f *fakeExec) DelNote(_ context.Context, a []string) error { return f.record("delnote", a) }
func (f *fakeExec) Form(_ context.Context, a []string) error    { return f.record("form", a) }
func (f *fakeExec) H2H(_ context.Context, a []string) error     { return f.record("h2h", a) }
func (f *fakeExec) Streaks(_ context.Context, a []string) error { return f.record("streaks", a) }
func (f *fakeExec) Table(_ context.Context, a []string) error   { return f.record("table", a) }
func (f *fakeExec) Dashboard(context.Context) error             { return f.record("dashboard", nil) }

func capturePrintln(t *testing.T) *[]string {
	t.Helper()
	var lines []string
	orig := printlnFn
	printlnFn = func(a ...any) (int, error) {
		lines = append(lines, strings.TrimSuffix(fmt.Sprintln(a...), "\n"))
		return 0, nil
	}
	t.Cleanup(func() { printlnFn = orig })
	return &lines
}

func TestRunREPL_DispatchesWithArgs(t *testing.T) {
	capturePrintln(t)

	input := strings.Join([]string{
		"",
		"competitions",
		"seasons c1 status=active",
		"teams name=Arsenal",
		"players team_id=T1",
		"matches team_id=T1 status=FT",
		"match m1",
		"login",
		"notes m1",
		"addnote m1",
		"editnote m1 n1",
		"delnote m1 n1",
		"form n=5",
		"h2h team1=T1 team2=T2",
		"streaks type=win",
		"table c1 s1",
		"dashboard",
		"whoami",
		"logout",
		"exit",
		"teams never-reached",
	}, "\n")

	exec := newFakeExec()
	runREPL(context.Background(), exec, func() string { return "anonymous" }, rdr(input))

	assert.Equal(t, []string{
		"competitions", "seasons", "teams", "players", "matches", "match", "login",
		"notes", "addnote", "editnote", "delnote", "form", "h2h", "streaks", "table",
		"dashboard", "whoami", "logout",
	}, exec.calls)
	assert.Equal(t, []string{"team_id=T1", "status=FT"}, exec.args["matches"])
	assert.Equal(t, []string{"c1", "status=active"}, exec.args["seasons"])
	assert.Equal(t, []string{"m1", "n1"}, exec.args["delnote"])
	assert.Empty(t, exec.args["competitions"])
}

func TestRunREPL_PrintsErrorsAndContinues(t *testing.T) {
	lines := capturePrintln(t)

	exec := newFakeExec()
	exec.fail["match"] = errors.New("Match not found")

	runREPL(context.Background(), exec, func() string { return "s" }, rdr("match nope\nfoobar\nwhoami\n"))

	assert.Equal(t, []string{"match", "whoami"}, exec.calls)
	assert.Contains(t, *lines, "Error: Match not found")
	assert.Contains(t, *lines, "Unknown command: foobar")
}

func TestRunREPL_HelpDependsOnSession(t *testing.T) {
	lines := capturePrintln(t)

	exec := newFakeExec()
	runREPL(context.Background(), exec, func() string { return "s" }, rdr("help\nlogin\nhelp\nquit\n"))

	require.Contains(t, *lines, helpAnonymous)
	require.Contains(t, *lines, helpSignedIn)
	assert.Equal(t, "Bye!", (*lines)[len(*lines)-1])
}

func TestRunREPL_PromptShowsStatus(t *testing.T) {
	lines := capturePrintln(t)

	status := "anonymous"
	exec := newFakeExec()
	runREPL(context.Background(), exec, func() string { return status }, rdr("whoami\n"))

	require.NotEmpty(t, *lines)
	assert.Equal(t, "goalline (anonymous)> ", (*lines)[0])
}

func TestRunREPL_LastLineWithoutNewline(t *testing.T) {
	capturePrintln(t)

	exec := newFakeExec()
	runREPL(context.Background(), exec, func() string { return "s" }, rdr("whoami"))
	assert.Equal(t, []string{"whoami"}, exec.calls)
}
