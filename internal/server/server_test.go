package server

import (
	"context"
	"errors"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/01moynul/instituto-dashboard/internal/config"
)

type closer struct {
	closed int
	err    error
}

func (c *closer) Close() error {
	c.closed++
	return c.err
}

func TestRun_StopsOnContextCancel(t *testing.T) {
	provider := &closer{}
	srv := New(config.ServerConfig{Port: "0", Mode: "test"}, http.NotFoundHandler(), provider, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx) }()

	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
	assert.Equal(t, 1, provider.closed)
}

func TestRun_ListenFailure(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer ln.Close()

	_, port, err := net.SplitHostPort(ln.Addr().String())
	require.NoError(t, err)

	provider := &closer{}
	srv := New(config.ServerConfig{Port: port}, http.NotFoundHandler(), provider, zerolog.Nop())
	srv.http.Addr = "127.0.0.1:" + port

	err = srv.Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error starting server")
	assert.Equal(t, 1, provider.closed)
}

func TestShutdown_ReportsProviderError(t *testing.T) {
	provider := &closer{err: errors.New("close failed")}
	srv := New(config.ServerConfig{Port: "0"}, http.NotFoundHandler(), provider, zerolog.Nop())

	err := srv.Shutdown(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "close failed")
}
