package matching

import (
	"context"
	"fmt"
)

// CandidateSource supplies the candidate snapshots a recommendation ranks.
// Implementations return candidates in a stable order (insertion order).
type CandidateSource interface {
	// FetchCandidateProfessors returns professors who have listed interests
	FetchCandidateProfessors(ctx context.Context, studentID string) ([]CandidateProfile, error)

	// FetchCandidateStudents returns students with listed interests, excluding excludeID
	FetchCandidateStudents(ctx context.Context, excludeID string) ([]CandidateProfile, error)
}

// Recommender ranks candidates from a CandidateSource. It holds no state of
// its own and is safe for concurrent use if the source is.
type Recommender struct {
	source CandidateSource
}

// NewRecommender creates a Recommender backed by the given source
func NewRecommender(source CandidateSource) *Recommender {
	return &Recommender{source: source}
}

// RecommendProfessors ranks professors for a student by collaborator search
func (r *Recommender) RecommendProfessors(ctx context.Context, studentID, interests string) ([]ScoredCandidate, error) {
	professors, err := r.source.FetchCandidateProfessors(ctx, studentID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch candidate professors: %w", err)
	}
	return Rank(professors, CollaboratorScorer(interests)), nil
}

// RecommendStudents ranks students for a professor by collaborator search
func (r *Recommender) RecommendStudents(ctx context.Context, professorID, interests string) ([]ScoredCandidate, error) {
	students, err := r.source.FetchCandidateStudents(ctx, professorID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch candidate students: %w", err)
	}
	return Rank(students, CollaboratorScorer(interests)), nil
}

// FindResearchPartners ranks fellow students by peer-partner search
func (r *Recommender) FindResearchPartners(ctx context.Context, studentID, department, interests string) ([]ScoredCandidate, error) {
	students, err := r.source.FetchCandidateStudents(ctx, studentID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch candidate students: %w", err)
	}
	return Rank(students, PeerScorer(interests, department)), nil
}
