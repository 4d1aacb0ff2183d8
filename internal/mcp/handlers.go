package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/vijay-prabhu/research-connect/internal/database"
)

func (s *Server) registerHandlers() {
	s.handlers["recommend_professors"] = s.handleRecommendProfessors
	s.handlers["find_research_partners"] = s.handleFindResearchPartners
	s.handlers["recommend_students"] = s.handleRecommendStudents
	s.handlers["send_collaboration_request"] = s.handleSendCollaborationRequest
	s.handlers["list_forum_posts"] = s.handleListForumPosts
	s.handlers["search_highlights"] = s.handleSearchHighlights
	s.handlers["search_users"] = s.handleSearchUsers
}

func decodeParams(params json.RawMessage, v interface{}) error {
	if len(params) == 0 {
		return nil
	}
	if err := json.Unmarshal(params, v); err != nil {
		return fmt.Errorf("invalid parameters: %w", err)
	}
	return nil
}

type studentParams struct {
	StudentID string `json:"student_id"`
}

type professorParams struct {
	ProfessorID string `json:"professor_id"`
}

func (s *Server) handleRecommendProfessors(ctx context.Context, params json.RawMessage) (interface{}, error) {
	var p studentParams
	if err := decodeParams(params, &p); err != nil {
		return nil, err
	}
	return s.service.RecommendProfessors(ctx, p.StudentID)
}

func (s *Server) handleFindResearchPartners(ctx context.Context, params json.RawMessage) (interface{}, error) {
	var p studentParams
	if err := decodeParams(params, &p); err != nil {
		return nil, err
	}
	return s.service.FindResearchPartners(ctx, p.StudentID)
}

func (s *Server) handleRecommendStudents(ctx context.Context, params json.RawMessage) (interface{}, error) {
	var p professorParams
	if err := decodeParams(params, &p); err != nil {
		return nil, err
	}
	return s.service.RecommendStudents(ctx, p.ProfessorID)
}

type sendRequestParams struct {
	StudentID   string  `json:"student_id"`
	ProfessorID string  `json:"professor_id"`
	Message     *string `json:"message"`
}

func (s *Server) handleSendCollaborationRequest(ctx context.Context, params json.RawMessage) (interface{}, error) {
	var p sendRequestParams
	if err := decodeParams(params, &p); err != nil {
		return nil, err
	}
	return s.service.SendRequest(ctx, p.StudentID, p.ProfessorID, p.Message)
}

type listForumPostsParams struct {
	Category string `json:"category"`
	Sort     string `json:"sort"`
	Limit    int    `json:"limit"`
}

type listForumPostsResult struct {
	Posts []database.ForumPost `json:"posts"`
	Count int                  `json:"count"`
}

func (s *Server) handleListForumPosts(ctx context.Context, params json.RawMessage) (interface{}, error) {
	var p listForumPostsParams
	if err := decodeParams(params, &p); err != nil {
		return nil, err
	}

	posts, err := s.service.ListPosts(ctx, p.Category, p.Sort, p.Limit)
	if err != nil {
		return nil, err
	}
	return listForumPostsResult{Posts: posts, Count: len(posts)}, nil
}

type searchHighlightsParams struct {
	Query        string `json:"query"`
	FeaturedOnly bool   `json:"featured_only"`
	Limit        int    `json:"limit"`
}

type searchHighlightsResult struct {
	Highlights []database.ResearchHighlight `json:"highlights"`
	Count      int                          `json:"count"`
}

func (s *Server) handleSearchHighlights(ctx context.Context, params json.RawMessage) (interface{}, error) {
	var p searchHighlightsParams
	if err := decodeParams(params, &p); err != nil {
		return nil, err
	}

	var (
		highlights []database.ResearchHighlight
		err        error
	)
	if p.Query == "" {
		highlights, err = s.service.ListHighlights(ctx, p.FeaturedOnly, p.Limit)
	} else {
		highlights, err = s.service.SearchHighlights(ctx, p.Query, p.Limit)
	}
	if err != nil {
		return nil, err
	}
	return searchHighlightsResult{Highlights: highlights, Count: len(highlights)}, nil
}

type searchUsersParams struct {
	Query      string `json:"query"`
	Role       string `json:"role"`
	Department string `json:"department"`
}

type searchUsersResult struct {
	Users []database.User `json:"users"`
	Count int             `json:"count"`
}

func (s *Server) handleSearchUsers(ctx context.Context, params json.RawMessage) (interface{}, error) {
	var p searchUsersParams
	if err := decodeParams(params, &p); err != nil {
		return nil, err
	}

	var role *database.Role
	if p.Role != "" {
		r := database.Role(p.Role)
		role = &r
	}
	var department *string
	if p.Department != "" {
		department = &p.Department
	}

	users, err := s.service.SearchUsers(ctx, p.Query, role, department)
	if err != nil {
		return nil, err
	}
	return searchUsersResult{Users: users, Count: len(users)}, nil
}

// Resource handlers

func (s *Server) handleReadResource(ctx context.Context, uri string) (string, error) {
	switch uri {
	case "research://summary":
		return s.getResourceSummary(ctx)
	case "research://highlights":
		return s.getResourceHighlights(ctx)
	case "research://departments":
		return s.getResourceDepartments(ctx)
	default:
		return "", fmt.Errorf("unknown resource: %s", uri)
	}
}

func (s *Server) getResourceSummary(ctx context.Context) (string, error) {
	stats, err := s.service.Stats(ctx)
	if err != nil {
		return "", err
	}

	summary := fmt.Sprintf(`Research Connect Summary
========================
Users: %d
  - Students:   %d
  - Professors: %d
  - Admins:     %d

Collaboration Requests:
  - Pending:   %d
  - Accepted:  %d
  - Declined:  %d
  - Cancelled: %d

Forum Posts:         %d
Research Highlights: %d (%d featured)
Active Projects:     %d
`, stats.TotalUsers, stats.Students, stats.Professors, stats.Admins,
		stats.PendingRequests, stats.AcceptedRequests, stats.DeclinedRequests, stats.CancelledRequests,
		stats.ForumPosts, stats.ResearchHighlights, stats.FeaturedHighlights, stats.ActiveProjects)

	return summary, nil
}

func (s *Server) getResourceHighlights(ctx context.Context) (string, error) {
	highlights, err := s.service.ListHighlights(ctx, true, 0)
	if err != nil {
		return "", err
	}

	result := "Featured Research Highlights\n============================\n\n"

	if len(highlights) == 0 {
		result += "No featured highlights yet.\n"
		return result, nil
	}

	for _, h := range highlights {
		result += fmt.Sprintf("- %s (%s)\n  Contributors: %s\n  %s\n\n",
			h.Title, h.DatePosted.Format("2006-01-02"), h.Contributors, h.Summary)
	}

	return result, nil
}

func (s *Server) getResourceDepartments(ctx context.Context) (string, error) {
	departments, err := s.service.Departments(ctx)
	if err != nil {
		return "", err
	}

	result := "Departments\n===========\n\n"

	if len(departments) == 0 {
		result += "No departments yet. Run 'researchhub user add' to register users.\n"
		return result, nil
	}

	for _, d := range departments {
		result += fmt.Sprintf("  - %s\n", d)
	}

	return result, nil
}
