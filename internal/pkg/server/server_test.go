package server

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/piresc/chatsync/internal/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGracefulServer(t *testing.T) {
	tests := []struct {
		name     string
		host     string
		port     int
		wantAddr string
	}{
		{name: "All interfaces", port: 8080, wantAddr: ":8080"},
		{name: "Loopback", host: "127.0.0.1", port: 9090, wantAddr: "127.0.0.1:9090"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gs := NewGracefulServer(echo.New(), logger.NewNopLogger(), tt.host, tt.port)
			assert.Equal(t, tt.wantAddr, gs.Addr())
		})
	}
}

func TestGracefulServer_RunStopsOnContextCancel(t *testing.T) {
	e := echo.New()
	e.HideBanner = true
	e.GET("/ping", func(c echo.Context) error { return c.String(http.StatusOK, "pong") })
	gs := NewGracefulServer(e, logger.NewNopLogger(), "127.0.0.1", 0)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- gs.Run(ctx) }()

	require.Eventually(t, func() bool { return e.ListenerAddr() != nil }, 2*time.Second, 10*time.Millisecond)
	resp, err := http.Get("http://" + e.ListenerAddr().String() + "/ping")
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

func TestGracefulServer_RunReportsListenFailure(t *testing.T) {
	gs := NewGracefulServer(echo.New(), logger.NewNopLogger(), "127.0.0.1", -1)

	err := gs.Run(context.Background())

	assert.ErrorContains(t, err, "failed to start server")
}

func TestShutdownManager(t *testing.T) {
	sm := NewShutdownManager(logger.NewNopLogger())
	var order []string
	sm.Register("redis", func(context.Context) error {
		order = append(order, "redis")
		return errors.New("connection reset")
	})
	sm.Register("session", func(context.Context) error {
		order = append(order, "session")
		return nil
	})
	sm.Register("server", func(context.Context) error {
		order = append(order, "server")
		return nil
	})

	err := sm.Shutdown(context.Background())

	assert.Equal(t, []string{"server", "session", "redis"}, order)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "redis: connection reset")
}

func TestShutdownManager_Empty(t *testing.T) {
	assert.NoError(t, NewShutdownManager(nil).Shutdown(context.Background()))
}
