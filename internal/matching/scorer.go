package matching

import "math"

const (
	// MaxScore is the upper bound of every compatibility score
	MaxScore = 100

	// DepartmentBonus is awarded to peers sharing the seeker's department
	DepartmentBonus = 30

	// PeerInterestWeight caps the interest share of a peer score
	PeerInterestWeight = MaxScore - DepartmentBonus
)

// ScoreCollaborator scores a candidate for collaborator search. A query
// keyword matches when it equals or is contained in a candidate keyword.
// The result is the matched fraction of query keywords scaled to 0-100.
func ScoreCollaborator(queryInterests, candidateInterests string) int {
	return scoreCollaboratorTokens(Tokenize(queryInterests), Tokenize(candidateInterests))
}

// ScorePeer scores a fellow student for research-partner search: a flat
// department bonus plus an interest overlap capped at PeerInterestWeight.
// Departments compare case-sensitively; keywords match in either direction.
func ScorePeer(queryInterests, queryDepartment, candidateInterests, candidateDepartment string) int {
	return scorePeerTokens(Tokenize(queryInterests), queryDepartment, Tokenize(candidateInterests), candidateDepartment)
}

func scoreCollaboratorTokens(query, candidate []string) int {
	if len(query) == 0 || len(candidate) == 0 {
		return 0
	}
	matches := countMatches(query, candidate, containedIn)
	return scale(matches, len(query), MaxScore)
}

func scorePeerTokens(query []string, queryDepartment string, candidate []string, candidateDepartment string) int {
	bonus := 0
	if candidateDepartment == queryDepartment {
		bonus = DepartmentBonus
	}

	matches := countMatches(query, candidate, overlaps)
	return bonus + scale(matches, max(len(query), 1), PeerInterestWeight)
}

// scale maps matches/total onto [0, ceiling], truncating toward zero.
// The ratio is computed in float64 before scaling so that results agree
// with the published reference scores (e.g. 29/50 of 100 is 57, not 58).
func scale(matches, total, ceiling int) int {
	if matches <= 0 || total <= 0 {
		return 0
	}
	ratio := float64(matches) / float64(total)
	return int(math.Min(ratio*float64(ceiling), float64(ceiling)))
}
