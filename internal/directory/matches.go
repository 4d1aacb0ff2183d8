package directory

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/vijay-prabhu/research-connect/internal/database"
	"github.com/vijay-prabhu/research-connect/internal/matching"
	"github.com/vijay-prabhu/research-connect/internal/metrics"
)

// MatchKind names a recommendation search
type MatchKind string

const (
	MatchProfessors MatchKind = "professors"
	MatchStudents   MatchKind = "students"
	MatchPartners   MatchKind = "partners"
)

// MatchReport is a ranked recommendation for one user
type MatchReport struct {
	Kind    MatchKind                  `json:"kind"`
	UserID  string                     `json:"user_id"`
	Matches []matching.ScoredCandidate `json:"matches"`
}

// RecommendProfessors ranks professors for a student by shared interests
func (s *Service) RecommendProfessors(ctx context.Context, studentID string) (*MatchReport, error) {
	student, err := s.requireRole(ctx, studentID, database.RoleStudent)
	if err != nil {
		return nil, err
	}
	interests, err := requireInterests(student)
	if err != nil {
		return nil, err
	}

	return s.runMatch(ctx, MatchProfessors, student.ID, func() ([]matching.ScoredCandidate, error) {
		return s.recommender.RecommendProfessors(ctx, student.ID, interests)
	})
}

// RecommendStudents ranks students for a professor by shared interests
func (s *Service) RecommendStudents(ctx context.Context, professorID string) (*MatchReport, error) {
	professor, err := s.requireRole(ctx, professorID, database.RoleProfessor)
	if err != nil {
		return nil, err
	}
	interests, err := requireInterests(professor)
	if err != nil {
		return nil, err
	}

	return s.runMatch(ctx, MatchStudents, professor.ID, func() ([]matching.ScoredCandidate, error) {
		return s.recommender.RecommendStudents(ctx, professor.ID, interests)
	})
}

// FindResearchPartners ranks fellow students by interests and department
func (s *Service) FindResearchPartners(ctx context.Context, studentID string) (*MatchReport, error) {
	student, err := s.requireRole(ctx, studentID, database.RoleStudent)
	if err != nil {
		return nil, err
	}
	interests, err := requireInterests(student)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(student.Department) == "" {
		return nil, fmt.Errorf("%w: add a department to find research partners", ErrProfileIncomplete)
	}

	return s.runMatch(ctx, MatchPartners, student.ID, func() ([]matching.ScoredCandidate, error) {
		return s.recommender.FindResearchPartners(ctx, student.ID, student.Department, interests)
	})
}

// Recommend dispatches to the search named by kind
func (s *Service) Recommend(ctx context.Context, kind MatchKind, userID string) (*MatchReport, error) {
	switch kind {
	case MatchProfessors:
		return s.RecommendProfessors(ctx, userID)
	case MatchStudents:
		return s.RecommendStudents(ctx, userID)
	case MatchPartners:
		return s.FindResearchPartners(ctx, userID)
	default:
		return nil, invalid("unknown match kind '%s'", kind)
	}
}

func (s *Service) runMatch(ctx context.Context, kind MatchKind, userID string, rank func() ([]matching.ScoredCandidate, error)) (*MatchReport, error) {
	start := time.Now()
	metrics.MatchRequests.WithLabelValues(string(kind)).Inc()

	ranked, err := rank()
	metrics.MatchDuration.WithLabelValues(string(kind)).Observe(time.Since(start).Seconds())
	if err != nil {
		s.logger.Error("recommendation failed",
			zap.String("kind", string(kind)),
			zap.String("user_id", userID),
			zap.Error(err),
		)
		return nil, err
	}

	ranked = s.present(ranked)
	metrics.MatchResults.WithLabelValues(string(kind)).Observe(float64(len(ranked)))

	s.logger.Debug("recommendation ranked",
		zap.String("kind", string(kind)),
		zap.String("user_id", userID),
		zap.Int("results", len(ranked)),
		zap.Duration("took", time.Since(start)),
	)

	return &MatchReport{Kind: kind, UserID: userID, Matches: ranked}, nil
}

// present applies the configured display floor and cap to a ranked list.
// The list is already sorted, so both operations keep ranking order.
func (s *Service) present(ranked []matching.ScoredCandidate) []matching.ScoredCandidate {
	if s.config == nil {
		return ranked
	}

	if floor := s.config.Matching.MinCompatibility; floor > 0 {
		kept := ranked[:0:0]
		for _, r := range ranked {
			if r.Compatibility >= floor {
				kept = append(kept, r)
			}
		}
		ranked = kept
	}

	if limit := s.config.Matching.MaxResults; limit > 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}

func requireInterests(u *database.User) (string, error) {
	if u.ResearchInterests == nil || len(matching.Tokenize(*u.ResearchInterests)) == 0 {
		return "", fmt.Errorf("%w: add research interests to get recommendations", ErrProfileIncomplete)
	}
	return *u.ResearchInterests, nil
}
