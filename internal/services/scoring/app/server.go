// Package app assembles the scoring service into a runnable HTTP server.
package app

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/mrsnaggls2/binokel/internal/platform/timeouts"
	"github.com/mrsnaggls2/binokel/internal/services/scoring/api/rest"
	"github.com/mrsnaggls2/binokel/internal/services/scoring/service"
	"github.com/mrsnaggls2/binokel/internal/services/scoring/storage"
	"github.com/mrsnaggls2/binokel/internal/services/scoring/storage/sqlite"
)

// Config holds the scoring server configuration.
type Config struct {
	// Addr is the HTTP listen address.
	Addr string
	// DBPath is the SQLite database file path.
	DBPath string
}

// Server hosts the scoring HTTP API over a SQLite store.
type Server struct {
	httpAddr   string
	httpServer *http.Server
	store      *sqlite.Store
}

// NewServer opens the store and wires the service and API routes.
func NewServer(cfg Config) (*Server, error) {
	addr := strings.TrimSpace(cfg.Addr)
	if addr == "" {
		return nil, errors.New("listen address is required")
	}

	store, err := sqlite.Open(cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("open scoring store: %w", err)
	}

	svc := service.NewService(storage.Stores{
		Games:       store,
		Rounds:      store,
		Settlements: store,
	}, nil, nil)

	mux := http.NewServeMux()
	rest.NewHandler(svc).Register(mux)

	return &Server{
		httpAddr: addr,
		httpServer: &http.Server{
			Addr:              addr,
			Handler:           mux,
			ReadHeaderTimeout: timeouts.ReadHeader,
		},
		store: store,
	}, nil
}

// ListenAndServe runs the HTTP server until the context ends.
//
// On cancellation, it performs a bounded shutdown so in-flight requests
// are drained before hard close.
func (s *Server) ListenAndServe(ctx context.Context) error {
	if s == nil {
		return errors.New("scoring server is nil")
	}
	if ctx == nil {
		return errors.New("context is required")
	}

	serveErr := make(chan error, 1)
	log.Printf("scoring listening on %s", s.httpAddr)
	go func() {
		serveErr <- s.httpServer.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeouts.Shutdown)
		err := s.httpServer.Shutdown(shutdownCtx)
		cancel()
		if err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve http: %w", err)
	}
}

// Close releases the underlying store.
func (s *Server) Close() {
	if s == nil || s.store == nil {
		return
	}
	if err := s.store.Close(); err != nil {
		log.Printf("close scoring store: %v", err)
	}
}
