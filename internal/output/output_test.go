package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vijay-prabhu/research-connect/internal/database"
	"github.com/vijay-prabhu/research-connect/internal/directory"
	"github.com/vijay-prabhu/research-connect/internal/matching"
)

func report() *directory.MatchReport {
	interests := "Machine Learning, Robotics"
	return &directory.MatchReport{
		Kind:   directory.MatchProfessors,
		UserID: "stu",
		Matches: []matching.ScoredCandidate{
			{CandidateProfile: matching.CandidateProfile{ID: "p1", Name: "Dr. Ng", Department: "Computer Science", Interests: &interests}, Compatibility: 100},
		},
	}
}

func TestOutputTo_JSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, OutputTo(&buf, "json", report()))

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	matches := decoded["matches"].([]any)
	require.Len(t, matches, 1)
	first := matches[0].(map[string]any)
	assert.Equal(t, "p1", first["id"])
	assert.Equal(t, float64(100), first["compatibility"])
	assert.Equal(t, "Machine Learning, Robotics", first["research_interests"])
	_, hasLevel := first["experience_level"]
	assert.False(t, hasLevel, "absent optionals are omitted")
}

func TestOutputTo_Table(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, OutputTo(&buf, "table", report()))

	out := buf.String()
	assert.Contains(t, out, "Dr. Ng")
	assert.Contains(t, out, "100%")
	assert.Contains(t, out, "CS")
}

func TestOutputTo_UnknownFormat(t *testing.T) {
	assert.Error(t, OutputTo(&bytes.Buffer{}, "yaml", report()))
	assert.Error(t, OutputTo(&bytes.Buffer{}, "table", 42))
}

func TestMatchesTable_StyleAndEmpty(t *testing.T) {
	var buf bytes.Buffer
	style := func(score int, text string) string { return "<" + text + ">" }
	require.NoError(t, MatchesTable(&buf, report(), style))
	assert.Contains(t, buf.String(), "<100%>")

	buf.Reset()
	require.NoError(t, MatchesTable(&buf, &directory.MatchReport{}, nil))
	assert.Contains(t, buf.String(), "No matches found")
}

func TestStatsTable(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, TableTo(&buf, &database.Stats{TotalUsers: 3, ResearchHighlights: 2, FeaturedHighlights: 1}))
	assert.Contains(t, buf.String(), "Users:                  3")
	assert.Contains(t, buf.String(), "2 (1 featured)")
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "abcdefg...", truncate(strings.Repeat("abcdefghij", 2), 10))
}
