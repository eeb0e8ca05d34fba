package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/dmitrijs2005/goalline/internal/client/client"
	"github.com/dmitrijs2005/goalline/internal/client/config"
	"github.com/dmitrijs2005/goalline/internal/client/models"
	"github.com/dmitrijs2005/goalline/internal/client/rest"
	"github.com/dmitrijs2005/goalline/internal/client/services"
	"github.com/dmitrijs2005/goalline/internal/client/storage"
	"github.com/dmitrijs2005/goalline/internal/logging"
)

type App struct {
	api    client.Client
	auth   services.AuthService
	reader *bufio.Reader
	out    io.Writer
	logger logging.Logger
	close  func() error

	mu     sync.Mutex
	status string
	// notes holds the last notes list shown per match id.
	notes map[string][]models.Note
}

// NewApp builds the application from configuration: logger, session
// storage, REST transport, session and API client.
func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	logger := logging.New(c.LogLevel, c.LogFormat, os.Stderr)

	repo, err := storage.Open(ctx, c)
	if err != nil {
		logger.Error(ctx, "error initializing storage", "backend", c.StorageBackend, "error", err)
		return nil, err
	}

	opts := []rest.Option{rest.WithTimeout(c.RequestTimeout), rest.WithLogger(logger)}
	if c.BreakerEnabled {
		opts = append(opts, rest.WithBreaker(c.BreakerFailures, c.BreakerCooldown))
	}
	rc := rest.New(c.BaseURL, opts...)

	session := services.NewSession(ctx, repo, rc, logger)
	api := client.NewHTTPClient(rc, session)

	a := newApp(api, session, os.Stdin, os.Stdout, logger)
	a.close = repo.Close
	return a, nil
}

func newApp(api client.Client, auth services.AuthService, in io.Reader, out io.Writer, logger logging.Logger) *App {
	if logger == nil {
		logger = logging.Nop()
	}
	return &App{
		api:    api,
		auth:   auth,
		reader: bufio.NewReader(in),
		out:    out,
		logger: logger,
		notes:  make(map[string][]models.Note),
	}
}

// Run starts the REPL and blocks until the user exits or input ends.
func (a *App) Run(ctx context.Context) {
	if a.close != nil {
		defer func() {
			if err := a.close(); err != nil {
				a.logger.Warn(ctx, "close storage", "error", err)
			}
		}()
	}

	unsubscribe := a.auth.Subscribe(a.onIdentity)
	defer unsubscribe()

	fmt.Fprintln(a.out, "goalline CLI (type 'help' for commands)")
	runREPL(ctx, a, a.getStatus, a.reader)
}

func (a *App) onIdentity(id *models.Identity) {
	a.mu.Lock()
	defer a.mu.Unlock()
	switch {
	case id == nil:
		a.status = "anonymous"
	case id.IsAdmin():
		a.status = id.Email + " [admin]"
	default:
		a.status = id.Email
	}
}

func (a *App) getStatus() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.status
}

func (a *App) isLoggedIn() bool {
	return a.auth.IsAuthenticated()
}

func (a *App) cachedNotes(matchID string) []models.Note {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.notes[matchID]
}

func (a *App) setNotes(matchID string, notes []models.Note) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.notes[matchID] = notes
}
