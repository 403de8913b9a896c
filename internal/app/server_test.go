//go:build !integration

package app

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var okHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
})

func TestNewServer(t *testing.T) {
	tests := []struct {
		name             string
		requestTimeout   time.Duration
		wantWriteTimeout time.Duration
	}{
		{name: "follows request timeout", requestTimeout: 30 * time.Second, wantWriteTimeout: 35 * time.Second},
		{name: "short request timeout", requestTimeout: time.Second, wantWriteTimeout: 6 * time.Second},
		{name: "unset request timeout", requestTimeout: 0, wantWriteTimeout: 35 * time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := NewServer(okHandler, "8080", tt.requestTimeout)

			require.NotNil(t, server.httpServer)
			assert.Equal(t, ":8080", server.httpServer.Addr)
			assert.Equal(t, 15*time.Second, server.httpServer.ReadTimeout)
			assert.Equal(t, tt.wantWriteTimeout, server.httpServer.WriteTimeout)
			assert.Equal(t, 60*time.Second, server.httpServer.IdleTimeout)
			assert.Equal(t, 10*time.Second, server.shutdownTimeout)
		})
	}
}

func TestServer_RunContext_GracefulShutdown(t *testing.T) {
	server := NewServer(okHandler, "0", time.Second)
	ctx, cancel := context.WithCancel(context.Background())

	errCh := make(chan error, 1)
	go func() { errCh <- server.RunContext(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-errCh:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("server did not shut down in time")
	}
}

func TestServer_RunContext_ListenError(t *testing.T) {
	server := NewServer(okHandler, "invalid-port", time.Second)
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	err := server.RunContext(ctx)

	assert.Error(t, err)
}

func TestServer_Shutdown_NotStarted(t *testing.T) {
	server := NewServer(okHandler, "0", time.Second)

	assert.NoError(t, server.Shutdown())
}
