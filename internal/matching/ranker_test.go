package matching

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func candidate(id, dept, interests string) CandidateProfile {
	return CandidateProfile{ID: id, Name: "User " + id, Department: dept, Interests: strPtr(interests)}
}

func ids(ranked []ScoredCandidate) []string {
	out := make([]string, len(ranked))
	for i, r := range ranked {
		out[i] = r.ID
	}
	return out
}

func TestRank_OrderAndZeroFilter(t *testing.T) {
	scores := map[string]int{"a": 40, "b": 90, "c": 90, "d": 0, "e": 60}
	candidates := []CandidateProfile{
		{ID: "a"}, {ID: "b"}, {ID: "c"}, {ID: "d"}, {ID: "e"},
	}

	ranked := Rank(candidates, func(c CandidateProfile) int { return scores[c.ID] })

	assert.Equal(t, []string{"b", "c", "e", "a"}, ids(ranked))
	assert.Equal(t, []int{90, 90, 60, 40}, []int{
		ranked[0].Compatibility, ranked[1].Compatibility, ranked[2].Compatibility, ranked[3].Compatibility,
	})
}

func TestRank_TiesKeepInputOrder(t *testing.T) {
	candidates := []CandidateProfile{
		candidate("p3", "CS", "ai"),
		candidate("p1", "CS", "ai"),
		candidate("p2", "CS", "ai"),
	}

	ranked := Rank(candidates, CollaboratorScorer("ai"))

	assert.Equal(t, []string{"p3", "p1", "p2"}, ids(ranked))
}

func TestRank_ClampsAndDropsNegative(t *testing.T) {
	candidates := []CandidateProfile{{ID: "over"}, {ID: "neg"}}
	ranked := Rank(candidates, func(c CandidateProfile) int {
		if c.ID == "over" {
			return 150
		}
		return -5
	})

	require.Len(t, ranked, 1)
	assert.Equal(t, MaxScore, ranked[0].Compatibility)
}

func TestRank_EmptyQueryYieldsNothing(t *testing.T) {
	candidates := []CandidateProfile{
		candidate("s1", "EE", "ai, robotics"),
		candidate("s2", "Math", "topology"),
	}

	assert.Empty(t, Rank(candidates, CollaboratorScorer("")))
	assert.Empty(t, Rank(candidates, PeerScorer("", "CS")))
}

func TestRank_MissingInterestsAreExcluded(t *testing.T) {
	candidates := []CandidateProfile{
		{ID: "nil-interests", Department: "EE"},
		candidate("has", "EE", "ai"),
	}

	ranked := Rank(candidates, CollaboratorScorer("ai"))
	assert.Equal(t, []string{"has"}, ids(ranked))
}

func TestRank_IsIdempotentAndDoesNotMutate(t *testing.T) {
	candidates := []CandidateProfile{
		candidate("1", "CS", "nlp"),
		candidate("2", "CS", "ai, nlp"),
		candidate("3", "EE", "optics"),
		candidate("4", "CS", "ai"),
	}
	snapshot := append([]CandidateProfile(nil), candidates...)

	first := Rank(candidates, PeerScorer("ai, nlp", "CS"))
	second := Rank(candidates, PeerScorer("ai, nlp", "CS"))

	assert.Equal(t, first, second)
	assert.Equal(t, snapshot, candidates)
	for _, r := range first {
		assert.NotZero(t, r.Compatibility)
		assert.LessOrEqual(t, r.Compatibility, MaxScore)
	}
	assert.Equal(t, []string{"2", "1", "4"}, ids(first))
}

func TestRank_ConcurrentUse(t *testing.T) {
	candidates := []CandidateProfile{
		candidate("1", "CS", "ai"),
		candidate("2", "CS", "robotics"),
		candidate("3", "EE", "ai, robotics"),
	}
	want := Rank(candidates, PeerScorer("ai, robotics", "CS"))

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.Equal(t, want, Rank(candidates, PeerScorer("ai, robotics", "CS")))
		}()
	}
	wg.Wait()
}

type fakeSource struct {
	professors []CandidateProfile
	students   []CandidateProfile
	err        error

	excluded string
}

func (f *fakeSource) FetchCandidateProfessors(ctx context.Context, studentID string) ([]CandidateProfile, error) {
	return f.professors, f.err
}

func (f *fakeSource) FetchCandidateStudents(ctx context.Context, excludeID string) ([]CandidateProfile, error) {
	f.excluded = excludeID
	return f.students, f.err
}

func TestRecommender(t *testing.T) {
	ctx := context.Background()
	source := &fakeSource{
		professors: []CandidateProfile{
			candidate("prof-a", "CS", "Computer Vision"),
			candidate("prof-b", "CS", "Machine Learning, Computer Vision"),
			candidate("prof-c", "Bio", "Genomics"),
		},
		students: []CandidateProfile{
			candidate("stu-a", "EE", "signal processing"),
			candidate("stu-b", "CS", "genomics"),
			candidate("stu-c", "EE", "machine learning"),
		},
	}
	r := NewRecommender(source)

	profs, err := r.RecommendProfessors(ctx, "me", "machine learning, robotics")
	require.NoError(t, err)
	require.Len(t, profs, 1)
	assert.Equal(t, "prof-b", profs[0].ID)
	assert.Equal(t, 50, profs[0].Compatibility)

	partners, err := r.FindResearchPartners(ctx, "me", "CS", "machine learning")
	require.NoError(t, err)
	assert.Equal(t, "me", source.excluded)
	assert.Equal(t, []string{"stu-c", "stu-b"}, ids(partners))
	assert.Equal(t, 70, partners[0].Compatibility)
	assert.Equal(t, 30, partners[1].Compatibility)

	students, err := r.RecommendStudents(ctx, "prof", "genomics")
	require.NoError(t, err)
	assert.Equal(t, []string{"stu-b"}, ids(students))
	assert.Equal(t, 100, students[0].Compatibility)
}

func TestRecommender_SourceError(t *testing.T) {
	boom := errors.New("connection refused")
	r := NewRecommender(&fakeSource{err: boom})

	_, err := r.RecommendProfessors(context.Background(), "me", "ai")
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)

	_, err = r.FindResearchPartners(context.Background(), "me", "CS", "ai")
	assert.ErrorIs(t, err, boom)
}
