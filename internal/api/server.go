// Package api serves the directory over HTTP.
package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/vijay-prabhu/research-connect/internal/directory"
)

// Server exposes directory operations as JSON endpoints
type Server struct {
	service *directory.Service
	logger  *zap.Logger
}

// New creates a new API server
func New(service *directory.Service, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Server{service: service, logger: logger}
}

// Router builds the chi router with every route registered
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.requestLogger)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.handleHealth)
	if s.service.Config().Server.MetricsEnabled {
		r.Handle("/metrics", promhttp.Handler())
	}

	r.Route("/api", func(r chi.Router) {
		r.Get("/stats", s.handleStats)
		r.Get("/departments", s.handleDepartments)

		r.Route("/users", func(r chi.Router) {
			r.Get("/", s.handleListUsers)
			r.Post("/", s.handleRegister)
			r.Get("/{userID}", s.handleGetUser)
			r.Patch("/{userID}", s.handleUpdateProfile)
			r.Get("/{userID}/requests", s.handleListRequests)
			r.Get("/{userID}/projects", s.handleListProjects)
		})

		r.Get("/matches/{kind}/{userID}", s.handleMatches)

		r.Route("/requests", func(r chi.Router) {
			r.Post("/", s.handleSendRequest)
			r.Post("/{requestID}/respond", s.handleRespond)
			r.Post("/{requestID}/cancel", s.handleCancel)
			r.Delete("/{requestID}", s.handleEndCollaboration)
		})

		r.Route("/forum/posts", func(r chi.Router) {
			r.Get("/", s.handleListPosts)
			r.Post("/", s.handleCreatePost)
			r.Post("/{postID}/vote", s.handleVote)
		})

		r.Route("/highlights", func(r chi.Router) {
			r.Get("/", s.handleListHighlights)
			r.Post("/", s.handleCreateHighlight)
			r.Put("/{highlightID}/featured", s.handleSetFeatured)
		})

		r.Route("/projects", func(r chi.Router) {
			r.Post("/", s.handleCreateProject)
			r.Get("/{projectID}", s.handleGetProject)
			r.Patch("/{projectID}", s.handleUpdateProject)
		})
	})

	return r
}

// ListenAndServe serves on addr until ctx is cancelled, then shuts down gracefully
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("http server listening", zap.String("addr", addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	s.logger.Info("http server shutting down")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return nil
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if err := s.service.Health(r.Context()); err != nil {
		writeJSON(w, http.StatusServiceUnavailable, Response{Message: "database unavailable"})
		return
	}
	writeJSON(w, http.StatusOK, Response{Message: "ok"})
}
