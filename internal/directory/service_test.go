package directory

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/vijay-prabhu/research-connect/internal/config"
	"github.com/vijay-prabhu/research-connect/internal/database"
	"github.com/vijay-prabhu/research-connect/internal/requests"
)

func setupService(t *testing.T) (*Service, *config.Config) {
	t.Helper()

	db, err := database.Open(filepath.Join(t.TempDir(), "directory.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	cfg := config.Default()
	return New(db, cfg, zaptest.NewLogger(t)), cfg
}

func strPtr(s string) *string { return &s }

func register(t *testing.T, svc *Service, name string, role database.Role, dept, interests string) *database.User {
	t.Helper()
	reg := Registration{Name: name, Email: name + "@campus.edu", Role: role, Department: dept}
	if interests != "" {
		reg.ResearchInterests = strPtr(interests)
	}
	u, err := svc.Register(context.Background(), reg)
	require.NoError(t, err)
	return u
}

func TestRegister_Validation(t *testing.T) {
	svc, _ := setupService(t)
	ctx := context.Background()

	tests := []struct {
		name string
		reg  Registration
	}{
		{"missing name", Registration{Email: "a@campus.edu", Role: database.RoleStudent}},
		{"bad email", Registration{Name: "A", Email: "not-an-email", Role: database.RoleStudent}},
		{"bad role", Registration{Name: "A", Email: "a@campus.edu", Role: "dean"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Register(ctx, tt.reg)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}

	register(t, svc, "ada", database.RoleStudent, "CS", "")
	_, err := svc.Register(ctx, Registration{Name: "Ada Again", Email: "ADA@campus.edu", Role: database.RoleStudent})
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestUpdateProfileAndSearch(t *testing.T) {
	svc, _ := setupService(t)
	ctx := context.Background()

	u := register(t, svc, "grace", database.RoleStudent, "CS", "")
	updated, err := svc.UpdateProfile(ctx, u.ID, database.ProfileUpdate{
		ResearchInterests: strPtr("compilers, Machine Learning"),
	})
	require.NoError(t, err)
	assert.Equal(t, "compilers, Machine Learning", *updated.ResearchInterests)
	assert.Equal(t, "CS", updated.Department)

	found, err := svc.SearchUsers(ctx, "machine", nil, nil)
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, u.ID, found[0].ID)

	_, err = svc.UpdateProfile(ctx, "missing", database.ProfileUpdate{Bio: strPtr("x")})
	assert.ErrorIs(t, err, database.ErrNotFound)

	departments, err := svc.Departments(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"CS"}, departments)
}

func TestRecommendProfessors(t *testing.T) {
	svc, _ := setupService(t)
	ctx := context.Background()

	student := register(t, svc, "stu", database.RoleStudent, "CS", "Machine Learning, Robotics")
	profA := register(t, svc, "profa", database.RoleProfessor, "CS", "machine learning, computer vision")
	register(t, svc, "profb", database.RoleProfessor, "Bio", "genomics")
	profC := register(t, svc, "profc", database.RoleProfessor, "EE", "robotics, machine learning")

	report, err := svc.RecommendProfessors(ctx, student.ID)
	require.NoError(t, err)
	assert.Equal(t, MatchProfessors, report.Kind)
	require.Len(t, report.Matches, 2)
	assert.Equal(t, profC.ID, report.Matches[0].ID)
	assert.Equal(t, 100, report.Matches[0].Compatibility)
	assert.Equal(t, profA.ID, report.Matches[1].ID)
	assert.Equal(t, 50, report.Matches[1].Compatibility)

	// professors cannot run the student search
	_, err = svc.RecommendProfessors(ctx, profA.ID)
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestRecommend_ProfileIncomplete(t *testing.T) {
	svc, _ := setupService(t)
	ctx := context.Background()

	blank := register(t, svc, "blank", database.RoleStudent, "CS", "")
	_, err := svc.RecommendProfessors(ctx, blank.ID)
	assert.ErrorIs(t, err, ErrProfileIncomplete)

	commas := register(t, svc, "commas", database.RoleStudent, "CS", " , ,")
	_, err = svc.RecommendProfessors(ctx, commas.ID)
	assert.ErrorIs(t, err, ErrProfileIncomplete)

	noDept := register(t, svc, "nodept", database.RoleStudent, "", "ai")
	_, err = svc.FindResearchPartners(ctx, noDept.ID)
	assert.ErrorIs(t, err, ErrProfileIncomplete)

	_, err = svc.Recommend(ctx, "mentors", blank.ID)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestFindResearchPartners(t *testing.T) {
	svc, _ := setupService(t)
	ctx := context.Background()

	me := register(t, svc, "me", database.RoleStudent, "CS", "machine learning")
	sameDept := register(t, svc, "peer1", database.RoleStudent, "CS", "genomics")
	otherDept := register(t, svc, "peer2", database.RoleStudent, "EE", "machine learning")
	register(t, svc, "peer3", database.RoleStudent, "Bio", "botany")
	register(t, svc, "prof", database.RoleProfessor, "CS", "machine learning")

	report, err := svc.FindResearchPartners(ctx, me.ID)
	require.NoError(t, err)
	require.Len(t, report.Matches, 2)
	assert.Equal(t, otherDept.ID, report.Matches[0].ID)
	assert.Equal(t, 70, report.Matches[0].Compatibility)
	assert.Equal(t, sameDept.ID, report.Matches[1].ID)
	assert.Equal(t, 30, report.Matches[1].Compatibility)
	for _, m := range report.Matches {
		assert.NotEqual(t, me.ID, m.ID)
	}
}

func TestRecommendStudents_PresentationLimits(t *testing.T) {
	svc, cfg := setupService(t)
	ctx := context.Background()

	prof := register(t, svc, "prof", database.RoleProfessor, "CS", "ai, robotics")
	both := register(t, svc, "both", database.RoleStudent, "CS", "ai, robotics")
	register(t, svc, "half", database.RoleStudent, "CS", "ai")
	register(t, svc, "half2", database.RoleStudent, "EE", "robotics")

	report, err := svc.RecommendStudents(ctx, prof.ID)
	require.NoError(t, err)
	assert.Len(t, report.Matches, 3)

	cfg.Matching.MinCompatibility = 60
	report, err = svc.RecommendStudents(ctx, prof.ID)
	require.NoError(t, err)
	require.Len(t, report.Matches, 1)
	assert.Equal(t, both.ID, report.Matches[0].ID)

	cfg.Matching.MinCompatibility = 0
	cfg.Matching.MaxResults = 2
	report, err = svc.RecommendStudents(ctx, prof.ID)
	require.NoError(t, err)
	assert.Len(t, report.Matches, 2)
	assert.Equal(t, both.ID, report.Matches[0].ID)
}

func TestCollaborationFlow(t *testing.T) {
	svc, _ := setupService(t)
	ctx := context.Background()

	student := register(t, svc, "stu", database.RoleStudent, "CS", "ai")
	prof := register(t, svc, "prof", database.RoleProfessor, "CS", "ai")
	other := register(t, svc, "other", database.RoleProfessor, "CS", "ai")

	req, err := svc.SendRequest(ctx, student.ID, prof.ID, strPtr("I'd like to join your lab"))
	require.NoError(t, err)
	assert.Equal(t, database.RequestPending, req.Status)

	_, err = svc.SendRequest(ctx, student.ID, prof.ID, nil)
	assert.ErrorIs(t, err, requests.ErrAlreadyPending)

	// wrong direction
	_, err = svc.SendRequest(ctx, prof.ID, student.ID, nil)
	assert.ErrorIs(t, err, ErrForbidden)

	incoming, err := svc.IncomingRequests(ctx, prof.ID)
	require.NoError(t, err)
	require.Len(t, incoming, 1)
	assert.Equal(t, "stu", incoming[0].CounterpartName)

	// another professor cannot answer it
	_, err = svc.Respond(ctx, other.ID, req.ID, requests.EventAccept)
	assert.ErrorIs(t, err, ErrForbidden)

	declined, err := svc.Respond(ctx, prof.ID, req.ID, requests.EventDecline)
	require.NoError(t, err)
	assert.Equal(t, database.RequestDeclined, declined.Status)

	// a declined request can be sent again
	renewed, err := svc.SendRequest(ctx, student.ID, prof.ID, strPtr("second try"))
	require.NoError(t, err)
	assert.Equal(t, req.ID, renewed.ID)
	assert.Equal(t, database.RequestPending, renewed.Status)
	assert.Equal(t, "second try", *renewed.Message)

	accepted, err := svc.Respond(ctx, prof.ID, req.ID, requests.EventAccept)
	require.NoError(t, err)
	assert.Equal(t, database.RequestAccepted, accepted.Status)

	_, err = svc.SendRequest(ctx, student.ID, prof.ID, nil)
	assert.ErrorIs(t, err, requests.ErrAlreadyAccepted)

	_, err = svc.Cancel(ctx, student.ID, req.ID)
	assert.ErrorIs(t, err, requests.ErrInvalidTransition)

	active, err := svc.ActiveCollaborations(ctx, student.ID)
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, "prof", active[0].CounterpartName)

	groups, err := svc.OutgoingRequests(ctx, student.ID)
	require.NoError(t, err)
	require.Len(t, groups, 1)
	assert.Equal(t, database.RequestAccepted, groups[0].Status)

	assert.ErrorIs(t, svc.EndCollaboration(ctx, other.ID, req.ID), ErrForbidden)
	require.NoError(t, svc.EndCollaboration(ctx, prof.ID, req.ID))
	assert.ErrorIs(t, svc.EndCollaboration(ctx, prof.ID, req.ID), database.ErrNotFound)
}

func TestCancelRequest(t *testing.T) {
	svc, _ := setupService(t)
	ctx := context.Background()

	student := register(t, svc, "stu", database.RoleStudent, "CS", "ai")
	prof := register(t, svc, "prof", database.RoleProfessor, "CS", "ai")

	req, err := svc.SendRequest(ctx, student.ID, prof.ID, nil)
	require.NoError(t, err)

	_, err = svc.Respond(ctx, prof.ID, req.ID, requests.EventCancel)
	assert.ErrorIs(t, err, requests.ErrInvalidTransition)

	cancelled, err := svc.Cancel(ctx, student.ID, req.ID)
	require.NoError(t, err)
	assert.Equal(t, database.RequestCancelled, cancelled.Status)

	stats, err := svc.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, stats.CancelledRequests)
}

func TestForum(t *testing.T) {
	svc, _ := setupService(t)
	ctx := context.Background()

	author := register(t, svc, "author", database.RoleStudent, "CS", "")
	voter := register(t, svc, "voter", database.RoleProfessor, "CS", "")

	_, err := svc.CreatePost(ctx, author.ID, "Title", "Body", "Gossip")
	assert.ErrorIs(t, err, ErrInvalidInput)
	_, err = svc.CreatePost(ctx, author.ID, "  ", "Body", "General Research")
	assert.ErrorIs(t, err, ErrInvalidInput)

	first, err := svc.CreatePost(ctx, author.ID, "Grant deadlines", "NSF is due soon", "Funding Opportunities")
	require.NoError(t, err)
	assert.Equal(t, "author", first.AuthorName)
	second, err := svc.CreatePost(ctx, author.ID, "Journal club", "Thursdays", "Research Groups")
	require.NoError(t, err)

	post, err := svc.Vote(ctx, voter.ID, first.ID, database.VoteUp)
	require.NoError(t, err)
	assert.Equal(t, 1, post.Upvotes)

	_, err = svc.Vote(ctx, voter.ID, first.ID, "meh")
	assert.ErrorIs(t, err, ErrInvalidInput)
	_, err = svc.Vote(ctx, voter.ID, "missing", database.VoteUp)
	assert.ErrorIs(t, err, database.ErrNotFound)

	latest, err := svc.ListPosts(ctx, "", "", 0)
	require.NoError(t, err)
	require.Len(t, latest, 2)
	assert.Equal(t, second.ID, latest[0].ID)

	popular, err := svc.ListPosts(ctx, "", "popular", 0)
	require.NoError(t, err)
	assert.Equal(t, first.ID, popular[0].ID)

	_, err = svc.ListPosts(ctx, "", "hot", 0)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestHighlights(t *testing.T) {
	svc, _ := setupService(t)
	ctx := context.Background()

	admin := register(t, svc, "admin", database.RoleAdmin, "", "")
	student := register(t, svc, "stu", database.RoleStudent, "CS", "")

	_, err := svc.CreateHighlight(ctx, student.ID, "t", "s", "c", false)
	assert.ErrorIs(t, err, ErrForbidden)

	h, err := svc.CreateHighlight(ctx, admin.ID, "Fusion milestone", "Plasma held 30s", "Dr. Chen", false)
	require.NoError(t, err)

	found, err := svc.SearchHighlights(ctx, "plasma", 0)
	require.NoError(t, err)
	require.Len(t, found, 1)

	featured, err := svc.SetFeatured(ctx, admin.ID, h.ID, true)
	require.NoError(t, err)
	assert.True(t, featured.Featured)

	list, err := svc.ListHighlights(ctx, true, 0)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	_, err = svc.SetFeatured(ctx, student.ID, h.ID, false)
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestProjects(t *testing.T) {
	svc, _ := setupService(t)
	ctx := context.Background()

	owner := register(t, svc, "owner", database.RoleProfessor, "CS", "")
	intruder := register(t, svc, "intruder", database.RoleStudent, "CS", "")

	p, err := svc.CreateProject(ctx, owner.ID, "Robot arm", nil, "")
	require.NoError(t, err)
	assert.Equal(t, database.ProjectActive, p.Status)

	_, err = svc.CreateProject(ctx, owner.ID, "x", nil, "paused")
	assert.ErrorIs(t, err, ErrInvalidInput)

	done := database.ProjectCompleted
	updated, err := svc.UpdateProject(ctx, owner.ID, p.ID, ProjectChange{Status: &done})
	require.NoError(t, err)
	assert.Equal(t, database.ProjectCompleted, updated.Status)
	assert.Equal(t, "Robot arm", updated.Title)

	_, err = svc.UpdateProject(ctx, intruder.ID, p.ID, ProjectChange{Status: &done})
	assert.ErrorIs(t, err, ErrForbidden)

	got, err := svc.GetProject(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "owner", got.OwnerName)

	_, err = svc.GetProject(ctx, "missing")
	assert.ErrorIs(t, err, database.ErrNotFound)

	list, err := svc.ListProjects(ctx, owner.ID)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}
