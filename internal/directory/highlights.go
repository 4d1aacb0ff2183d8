package directory

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/vijay-prabhu/research-connect/internal/database"
)

// CreateHighlight publishes a research highlight. Only admins may publish.
func (s *Service) CreateHighlight(ctx context.Context, adminID, title, summary, contributors string, featured bool) (*database.ResearchHighlight, error) {
	admin, err := s.requireRole(ctx, adminID, database.RoleAdmin)
	if err != nil {
		return nil, err
	}

	title = strings.TrimSpace(title)
	summary = strings.TrimSpace(summary)
	contributors = strings.TrimSpace(contributors)
	if title == "" || summary == "" || contributors == "" {
		return nil, invalid("title, summary and contributors are required")
	}

	h := &database.ResearchHighlight{
		Title:        title,
		Summary:      summary,
		Contributors: contributors,
		PostedBy:     admin.ID,
		PostedByName: admin.Name,
		Featured:     featured,
	}
	if err := s.db.CreateHighlight(ctx, h); err != nil {
		return nil, fmt.Errorf("failed to create highlight: %w", err)
	}

	s.logger.Info("research highlight published", zap.String("highlight_id", h.ID), zap.Bool("featured", featured))
	return h, nil
}

// ListHighlights returns recent highlights, optionally featured only
func (s *Service) ListHighlights(ctx context.Context, featuredOnly bool, limit int) ([]database.ResearchHighlight, error) {
	if limit <= 0 {
		limit = s.config.Highlights.PageSize
	}
	highlights, err := s.db.ListHighlights(ctx, featuredOnly, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list highlights: %w", err)
	}
	return highlights, nil
}

// SearchHighlights finds highlights mentioning keyword. An empty keyword
// lists the most recent ones.
func (s *Service) SearchHighlights(ctx context.Context, keyword string, limit int) ([]database.ResearchHighlight, error) {
	keyword = strings.TrimSpace(keyword)
	if keyword == "" {
		return s.ListHighlights(ctx, false, limit)
	}

	highlights, err := s.db.SearchHighlights(ctx, keyword, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to search highlights: %w", err)
	}
	return highlights, nil
}

// SetFeatured marks or unmarks a highlight as featured. Only admins may do this.
func (s *Service) SetFeatured(ctx context.Context, adminID, highlightID string, featured bool) (*database.ResearchHighlight, error) {
	if _, err := s.requireRole(ctx, adminID, database.RoleAdmin); err != nil {
		return nil, err
	}

	if err := s.db.SetHighlightFeatured(ctx, highlightID, featured); err != nil {
		return nil, fmt.Errorf("failed to update highlight: %w", err)
	}
	return s.db.GetHighlight(ctx, highlightID)
}
