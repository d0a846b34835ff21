package web

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/rook-computer/starfield/internal/logging"
)

type HTTPServer struct {
	Config  ServerConfig
	Handler http.Handler
	Logger  logging.Logger

	mu     sync.Mutex
	srv    *http.Server
	ln     net.Listener
	closed bool
	done   chan struct{}
	err    error
}

func NewHTTPServer(cfg ServerConfig, handler http.Handler, logger logging.Logger) *HTTPServer {
	if logger == nil {
		logger = logging.NoopLogger{}
	}
	return &HTTPServer{Config: cfg, Handler: handler, Logger: logger}
}

// Start listens and serves in the background until ctx is done or Stop is called.
func (s *HTTPServer) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return errors.New("web server already stopped")
	}
	if s.srv != nil {
		return nil
	}

	addr := s.Config.ListenAddr
	if addr == "" {
		addr = ":8080"
	}

	handler := s.Handler
	if s.Config.DevMode {
		handler = WithDevCORS(handler)
	}

	s.srv = &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	ln, err := net.Listen("tcp", addr)
	if err != nil {
		s.srv = nil
		return fmt.Errorf("listen %s: %w", addr, err)
	}
	s.ln = ln
	s.done = make(chan struct{})
	s.Logger.Infof("web", "listening on %s", ln.Addr())

	go func() {
		<-ctx.Done()
		_ = s.Stop()
	}()

	srv, done := s.srv, s.done
	go func() {
		defer close(done)
		err := srv.Serve(ln)
		if err == nil || errors.Is(err, http.ErrServerClosed) {
			return
		}
		s.Logger.Errorf("web", "serve: %v", err)
		s.mu.Lock()
		s.err = err
		s.mu.Unlock()
	}()

	return nil
}

// Addr returns the bound address once started.
func (s *HTTPServer) Addr() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ln == nil {
		return ""
	}
	return s.ln.Addr().String()
}

// Wait blocks until the server has stopped and returns the serve error, if any.
func (s *HTTPServer) Wait() error {
	s.mu.Lock()
	done := s.done
	s.mu.Unlock()
	if done == nil {
		return nil
	}
	<-done
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

func (s *HTTPServer) Stop() error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil
	}
	s.closed = true
	srv := s.srv
	s.ln = nil
	s.mu.Unlock()

	if srv == nil {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return srv.Shutdown(ctx)
}
