package httpserver

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"
)

const (
	defaultShutdownTimeout = time.Second * 30
	defaultReadTimeout     = time.Second * 10
	defaultWriteTimeout    = time.Second * 10
)

var ErrInvalidTimeout = errors.New("timeout must not be negative")

type Option func(*Server) error

func WithShutdownTimeout(timeout time.Duration) Option {
	return func(s *Server) error {
		if timeout < 0 {
			return fmt.Errorf("shutdown %w", ErrInvalidTimeout)
		}
		s.shutdownTimeout = timeout
		return nil
	}
}

func WithReadTimeout(timeout time.Duration) Option {
	return func(s *Server) error {
		if timeout < 0 {
			return fmt.Errorf("read %w", ErrInvalidTimeout)
		}
		s.server.ReadTimeout = timeout
		s.server.ReadHeaderTimeout = timeout
		return nil
	}
}

func WithWriteTimeout(timeout time.Duration) Option {
	return func(s *Server) error {
		if timeout < 0 {
			return fmt.Errorf("write %w", ErrInvalidTimeout)
		}
		s.server.WriteTimeout = timeout
		return nil
	}
}

func WithHandler(handler http.Handler) Option {
	return func(s *Server) error {
		s.server.Handler = handler
		return nil
	}
}

// WithReadySignal sets a callback invoked with the bound address
// once the server is listening. Useful with ":0" addresses.
func WithReadySignal(cb func(net.Addr)) Option {
	return func(s *Server) error {
		s.ready = cb
		return nil
	}
}

type Server struct {
	addr            *net.TCPAddr
	server          *http.Server
	shutdownTimeout time.Duration
	ready           func(net.Addr)

	mu       sync.Mutex
	listener net.Listener
	stopped  chan struct{}
	stopOnce sync.Once
}

func New(addr string, opts ...Option) (*Server, error) {
	tcpAddr, err := net.ResolveTCPAddr("tcp", addr)
	if err != nil {
		return nil, err
	}
	s := &Server{
		addr: tcpAddr,
		server: &http.Server{
			Addr:              addr,
			ReadTimeout:       defaultReadTimeout,
			ReadHeaderTimeout: defaultReadTimeout,
			WriteTimeout:      defaultWriteTimeout,
		},
		shutdownTimeout: defaultShutdownTimeout,
		stopped:         make(chan struct{}),
	}
	for _, opt := range opts {
		if optErr := opt(s); optErr != nil {
			return nil, optErr
		}
	}
	return s, nil
}

func (s *Server) ListenAndServe() error {
	listener, err := net.ListenTCP("tcp", s.addr)
	if err != nil {
		return err
	}
	defer listener.Close()

	s.mu.Lock()
	s.listener = listener
	s.mu.Unlock()

	if s.ready != nil {
		s.ready(listener.Addr())
	}

	failed := make(chan error, 1)
	go func() {
		if serveErr := s.server.Serve(listener); serveErr != nil {
			failed <- serveErr
		}
	}()

	select {
	case serveErr := <-failed:
		if errors.Is(serveErr, http.ErrServerClosed) {
			return nil
		}
		return serveErr
	case <-s.stopped:
		return nil
	}
}

// ListenAddr returns nil until the server has started listening.
func (s *Server) ListenAddr() net.Addr {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.listener == nil {
		return nil
	}
	return s.listener.Addr()
}

func (s *Server) Stop(ctx context.Context) error {
	s.stopOnce.Do(func() {
		close(s.stopped)
	})
	stopCtx, cancel := context.WithTimeout(ctx, s.shutdownTimeout)
	defer cancel()
	if err := s.server.Shutdown(stopCtx); err != nil {
		return fmt.Errorf("http server: shutdown %s: %w", s.addr, err)
	}
	return nil
}
