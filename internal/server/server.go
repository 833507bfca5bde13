package server

import (
	"context"
	stderrors "errors"
	"net/http"
	"time"

	"ritual/internal/api"
	"ritual/internal/config"
	"ritual/internal/logging"

	"github.com/gorilla/mux"
)

// shutdownGrace bounds how long in-flight requests get once the context ends.
const shutdownGrace = 5 * time.Second

// Server exposes the API as JSON over HTTP
type Server struct {
	api    api.API
	router *mux.Router
	config config.ServerConfig
}

// New creates a Server with every route registered
func New(a api.API, cfg config.ServerConfig) *Server {
	s := &Server{
		api:    a,
		router: mux.NewRouter(),
		config: cfg,
	}
	RegisterRoutes(s.router, NewHandlers(a))
	return s
}

// Handler returns the router, mainly for tests
func (s *Server) Handler() http.Handler {
	return s.router
}

// ListenAndServe serves until ctx is cancelled, then shuts down gracefully
func (s *Server) ListenAndServe(ctx context.Context) error {
	httpServer := &http.Server{
		Addr:         s.config.Address,
		Handler:      s.router,
		ReadTimeout:  s.config.ReadTimeout,
		WriteTimeout: s.config.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logging.Debugf("listening on %s\n", s.config.Address)
		errCh <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if stderrors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
		defer cancel()
		return httpServer.Shutdown(shutdownCtx)
	}
}
