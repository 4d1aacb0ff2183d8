package directory

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/vijay-prabhu/research-connect/internal/database"
	"github.com/vijay-prabhu/research-connect/internal/matching"
)

// Registration describes a new directory user
type Registration struct {
	Name              string
	Email             string
	Role              database.Role
	Department        string
	ResearchInterests *string
	ExperienceLevel   *matching.ExperienceLevel
	Bio               *string
}

// Register validates and stores a new user
func (s *Service) Register(ctx context.Context, reg Registration) (*database.User, error) {
	reg.Name = strings.TrimSpace(reg.Name)
	email := database.NormalizeEmail(reg.Email)

	if reg.Name == "" {
		return nil, invalid("name is required")
	}
	if !IsValidEmail(email) {
		return nil, invalid("'%s' is not a valid email address", reg.Email)
	}
	if !reg.Role.IsValid() {
		return nil, invalid("role must be student, professor or admin, got '%s'", reg.Role)
	}
	if reg.ExperienceLevel != nil && !reg.ExperienceLevel.IsValid() {
		return nil, invalid("experience level must be beginner, intermediate or advanced, got '%s'", *reg.ExperienceLevel)
	}

	existing, err := s.db.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: %s", ErrEmailTaken, email)
	}

	u := &database.User{
		Name:              reg.Name,
		Email:             email,
		Role:              reg.Role,
		Department:        strings.TrimSpace(reg.Department),
		ResearchInterests: reg.ResearchInterests,
		ExperienceLevel:   reg.ExperienceLevel,
		Bio:               reg.Bio,
	}
	if err := s.db.CreateUser(ctx, u); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	s.logger.Info("user registered",
		zap.String("user_id", u.ID),
		zap.String("role", string(u.Role)),
	)
	return u, nil
}

// GetUser returns a user by ID
func (s *Service) GetUser(ctx context.Context, id string) (*database.User, error) {
	return s.requireUser(ctx, id)
}

// GetUserByEmail returns a user by email
func (s *Service) GetUserByEmail(ctx context.Context, email string) (*database.User, error) {
	u, err := s.db.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if u == nil {
		return nil, fmt.Errorf("user %s: %w", email, database.ErrNotFound)
	}
	return u, nil
}

// UpdateProfile writes the provided profile fields and returns the result
func (s *Service) UpdateProfile(ctx context.Context, id string, upd database.ProfileUpdate) (*database.User, error) {
	if upd.Name != nil && strings.TrimSpace(*upd.Name) == "" {
		return nil, invalid("name cannot be empty")
	}
	if upd.ExperienceLevel != nil && !upd.ExperienceLevel.IsValid() {
		return nil, invalid("experience level must be beginner, intermediate or advanced, got '%s'", *upd.ExperienceLevel)
	}

	if err := s.db.UpdateUserProfile(ctx, id, upd); err != nil {
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}

	s.logger.Debug("profile updated", zap.String("user_id", id))
	return s.requireUser(ctx, id)
}

// ListUsers returns users matching the filter
func (s *Service) ListUsers(ctx context.Context, filter database.UserFilter) ([]database.User, error) {
	if filter.Role != nil && !filter.Role.IsValid() {
		return nil, invalid("unknown role '%s'", *filter.Role)
	}
	users, err := s.db.ListUsers(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

// SearchUsers finds users whose interests or bio mention keyword
func (s *Service) SearchUsers(ctx context.Context, keyword string, role *database.Role, department *string) ([]database.User, error) {
	filter := database.UserFilter{Role: role, Department: department}
	if k := strings.TrimSpace(keyword); k != "" {
		filter.Keyword = &k
	}
	return s.ListUsers(ctx, filter)
}

// Departments returns every department with at least one user
func (s *Service) Departments(ctx context.Context) ([]string, error) {
	departments, err := s.db.ListDepartments(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list departments: %w", err)
	}
	return departments, nil
}
