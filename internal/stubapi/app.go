package stubapi

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dmitrijs2005/goalline/internal/logging"
	"github.com/dmitrijs2005/goalline/internal/stubapi/auth"
	"github.com/dmitrijs2005/goalline/internal/stubapi/config"
	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 5 * time.Second

type App struct {
	config *config.Config
	logger logging.Logger
	server *http.Server
}

func NewApp(c *config.Config) (*App, error) {
	gin.SetMode(gin.ReleaseMode)
	logger := logging.New(c.LogLevel, c.LogFormat, os.Stdout)

	h := NewHandler(DefaultDataset(), NewStore(), auth.NewIssuer([]byte(c.SecretKey), c.TokenTTL), logger).
		WithPageSizes(c.PageSizeDefault, c.PageSizeMax)

	srv := &http.Server{
		Addr:              c.Addr,
		Handler:           NewRouter(h, logger),
		ReadHeaderTimeout: 5 * time.Second,
	}

	return &App{config: c, logger: logger, server: srv}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

// Run serves until ctx is cancelled or a termination signal arrives, then
// shuts the server down gracefully.
func (app *App) Run(ctx context.Context) error {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.initSignalHandler(cancelFunc)

	ln, err := net.Listen("tcp", app.config.Addr)
	if err != nil {
		return err
	}
	app.logger.Info(ctx, "stub backend listening", "addr", ln.Addr().String())

	return app.serve(ctx, ln)
}

func (app *App) serve(ctx context.Context, ln net.Listener) error {
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if err := app.server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		app.logger.Info(context.Background(), "shutting down stub backend")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return app.server.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
