package stubapi

import (
	"context"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/dmitrijs2005/goalline/internal/stubapi/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApp_ServeAndShutdown(t *testing.T) {
	cfg := &config.Config{}
	cfg.LoadDefaults()
	cfg.Addr = "127.0.0.1:0"
	cfg.LogLevel = "error"

	app, err := NewApp(cfg)
	require.NoError(t, err)

	ln, err := net.Listen("tcp", cfg.Addr)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- app.serve(ctx, ln) }()

	resp, err := http.Get("http://" + ln.Addr().String() + "/health")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}

func TestApp_RunFailsOnBadAddr(t *testing.T) {
	cfg := &config.Config{}
	cfg.LoadDefaults()
	cfg.Addr = "256.0.0.1:bad"
	cfg.LogLevel = "error"

	app, err := NewApp(cfg)
	require.NoError(t, err)
	assert.Error(t, app.Run(context.Background()))
}
