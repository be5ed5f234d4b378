package httpserver_test

import (
	"context"
	"io"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sergeii/cipherhub/pkg/http/httpserver"
)

func TestServer_ServesAndStops(t *testing.T) {
	ready := make(chan net.Addr, 1)
	handler := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte("pong")) // nolint: errcheck
	})
	svr, err := httpserver.New(
		"127.0.0.1:0",
		httpserver.WithHandler(handler),
		httpserver.WithReadTimeout(time.Second),
		httpserver.WithWriteTimeout(time.Second),
		httpserver.WithShutdownTimeout(time.Second),
		httpserver.WithReadySignal(func(addr net.Addr) {
			ready <- addr
		}),
	)
	require.NoError(t, err)
	assert.Nil(t, svr.ListenAddr())

	done := make(chan error, 1)
	go func() {
		done <- svr.ListenAndServe()
	}()

	addr := <-ready
	assert.Equal(t, addr.String(), svr.ListenAddr().String())

	resp, err := http.Get("http://" + addr.String()) // nolint: noctx
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	assert.Equal(t, "pong", string(body))

	require.NoError(t, svr.Stop(context.TODO()))
	assert.NoError(t, <-done)
	// stopping twice is harmless
	assert.NoError(t, svr.Stop(context.TODO()))
}

func TestServer_InvalidOptions(t *testing.T) {
	tests := []struct {
		name string
		opt  httpserver.Option
	}{
		{"read", httpserver.WithReadTimeout(-time.Second)},
		{"write", httpserver.WithWriteTimeout(-time.Second)},
		{"shutdown", httpserver.WithShutdownTimeout(-time.Second)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := httpserver.New("127.0.0.1:0", tt.opt)
			assert.ErrorIs(t, err, httpserver.ErrInvalidTimeout)
		})
	}
}

func TestServer_InvalidAddress(t *testing.T) {
	_, err := httpserver.New("localhost:http-alt-nope")
	assert.Error(t, err)
}
