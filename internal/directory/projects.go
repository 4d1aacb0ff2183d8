package directory

import (
	"context"
	"fmt"
	"strings"

	"github.com/vijay-prabhu/research-connect/internal/database"
)

// ProjectChange carries the editable project fields. Nil fields are unchanged.
type ProjectChange struct {
	Title       *string
	Description *string
	Status      *database.ProjectStatus
}

// CreateProject adds a project owned by ownerID
func (s *Service) CreateProject(ctx context.Context, ownerID, title string, description *string, status database.ProjectStatus) (*database.Project, error) {
	owner, err := s.requireUser(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	title = strings.TrimSpace(title)
	if title == "" {
		return nil, invalid("title is required")
	}
	if status == "" {
		status = database.ProjectActive
	}
	if !status.IsValid() {
		return nil, invalid("status must be active, completed or on_hold, got '%s'", status)
	}

	p := &database.Project{
		Title:       title,
		Description: description,
		Status:      status,
		OwnerID:     owner.ID,
		OwnerName:   owner.Name,
	}
	if err := s.db.CreateProject(ctx, p); err != nil {
		return nil, fmt.Errorf("failed to create project: %w", err)
	}
	return p, nil
}

// GetProject returns a single project
func (s *Service) GetProject(ctx context.Context, projectID string) (*database.Project, error) {
	p, err := s.db.GetProject(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to get project: %w", err)
	}
	if p == nil {
		return nil, fmt.Errorf("project %s: %w", projectID, database.ErrNotFound)
	}
	return p, nil
}

// UpdateProject changes a project. Only its owner may edit it.
func (s *Service) UpdateProject(ctx context.Context, ownerID, projectID string, change ProjectChange) (*database.Project, error) {
	p, err := s.GetProject(ctx, projectID)
	if err != nil {
		return nil, err
	}
	if p.OwnerID != ownerID {
		return nil, fmt.Errorf("%w: project %s belongs to another user", ErrForbidden, projectID)
	}

	if change.Title != nil {
		title := strings.TrimSpace(*change.Title)
		if title == "" {
			return nil, invalid("title cannot be empty")
		}
		p.Title = title
	}
	if change.Description != nil {
		p.Description = change.Description
	}
	if change.Status != nil {
		if !change.Status.IsValid() {
			return nil, invalid("status must be active, completed or on_hold, got '%s'", *change.Status)
		}
		p.Status = *change.Status
	}

	if err := s.db.UpdateProject(ctx, p); err != nil {
		return nil, fmt.Errorf("failed to update project: %w", err)
	}
	return p, nil
}

// ListProjects returns the projects owned by a user
func (s *Service) ListProjects(ctx context.Context, ownerID string) ([]database.Project, error) {
	if _, err := s.requireUser(ctx, ownerID); err != nil {
		return nil, err
	}
	projects, err := s.db.ListProjectsByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	return projects, nil
}
