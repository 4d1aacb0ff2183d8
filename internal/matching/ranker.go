package matching

import "sort"

// ScoreFunc scores one candidate against a query that has already been bound
type ScoreFunc func(CandidateProfile) int

// Rank scores every candidate, drops those scoring zero and returns the rest
// ordered by descending compatibility. Equal scores keep their input order.
// The input slice is never modified.
func Rank(candidates []CandidateProfile, score ScoreFunc) []ScoredCandidate {
	ranked := make([]ScoredCandidate, 0, len(candidates))

	for _, c := range candidates {
		s := min(score(c), MaxScore)
		if s <= 0 {
			continue
		}
		ranked = append(ranked, ScoredCandidate{
			CandidateProfile: c,
			Compatibility:    s,
		})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Compatibility > ranked[j].Compatibility
	})

	return ranked
}

// CollaboratorScorer binds a seeker's interests for collaborator search
func CollaboratorScorer(queryInterests string) ScoreFunc {
	query := Tokenize(queryInterests)
	return func(c CandidateProfile) int {
		return scoreCollaboratorTokens(query, Tokenize(c.InterestsRaw()))
	}
}

// PeerScorer binds a student's interests and department for partner search
func PeerScorer(queryInterests, queryDepartment string) ScoreFunc {
	query := Tokenize(queryInterests)
	return func(c CandidateProfile) int {
		return scorePeerTokens(query, queryDepartment, Tokenize(c.InterestsRaw()), c.Department)
	}
}
