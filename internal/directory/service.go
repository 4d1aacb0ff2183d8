// Package directory is the campus directory service. It composes storage,
// the matching engine and the request state machine behind the operations
// exposed by the CLI, the HTTP API and the MCP server.
package directory

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/vijay-prabhu/research-connect/internal/config"
	"github.com/vijay-prabhu/research-connect/internal/database"
	"github.com/vijay-prabhu/research-connect/internal/matching"
)

var (
	ErrProfileIncomplete = errors.New("profile incomplete")
	ErrForbidden         = errors.New("not allowed")
	ErrEmailTaken        = errors.New("email already registered")
	ErrInvalidInput      = errors.New("invalid input")
)

// Service implements directory operations on top of the database
type Service struct {
	db          *database.DB
	recommender *matching.Recommender
	config      *config.Config
	logger      *zap.Logger
}

// New creates a new Service
func New(db *database.DB, cfg *config.Config, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		db:          db,
		recommender: matching.NewRecommender(db),
		config:      cfg,
		logger:      logger,
	}
}

// Config returns the service configuration
func (s *Service) Config() *config.Config {
	return s.config
}

// Health checks the backing store
func (s *Service) Health(ctx context.Context) error {
	return s.db.Health(ctx)
}

// Stats returns aggregate counts across the directory
func (s *Service) Stats(ctx context.Context) (*database.Stats, error) {
	stats, err := s.db.GetStats(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get stats: %w", err)
	}
	return stats, nil
}

// requireUser loads a user or returns a not-found error
func (s *Service) requireUser(ctx context.Context, id string) (*database.User, error) {
	u, err := s.db.GetUser(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if u == nil {
		return nil, fmt.Errorf("user %s: %w", id, database.ErrNotFound)
	}
	return u, nil
}

// requireRole loads a user and checks their role
func (s *Service) requireRole(ctx context.Context, id string, role database.Role) (*database.User, error) {
	u, err := s.requireUser(ctx, id)
	if err != nil {
		return nil, err
	}
	if u.Role != role {
		return nil, fmt.Errorf("%w: %s is a %s, not a %s", ErrForbidden, u.Name, u.Role, role)
	}
	return u, nil
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, fmt.Sprintf(format, args...))
}
