package cli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vijay-prabhu/research-connect/internal/database"
	"github.com/vijay-prabhu/research-connect/internal/directory"
)

// resetFlags restores every flag to its default so runs do not leak state
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.PersistentFlags().VisitAll(reset)
	cmd.Flags().VisitAll(reset)
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}

func setupCLI(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	chdir(t, dir)

	cfgPath := filepath.Join(dir, "config.toml")
	body := fmt.Sprintf("[database]\npath = %q\n\n[log]\nlevel = \"error\"\n", filepath.Join(dir, "cli.db"))
	require.NoError(t, os.WriteFile(cfgPath, []byte(body), 0644))
	return cfgPath
}

func run(t *testing.T, cfgPath string, args ...string) (string, error) {
	t.Helper()
	resetFlags(rootCmd)

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(append([]string{"--config", cfgPath}, args...))

	err := rootCmd.Execute()
	return out.String(), err
}

func addUser(t *testing.T, cfgPath, name, role, interests string) database.User {
	t.Helper()
	args := []string{"user", "add", "--name", name, "--email", name + "@campus.edu", "--role", role, "--department", "CS", "-o", "json"}
	if interests != "" {
		args = append(args, "--interests", interests)
	}
	out, err := run(t, cfgPath, args...)
	require.NoError(t, err, out)

	var u database.User
	require.NoError(t, json.Unmarshal([]byte(out), &u))
	return u
}

func TestVersion(t *testing.T) {
	cfgPath := setupCLI(t)
	out, err := run(t, cfgPath, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "researchhub dev")
}

func TestConfigInit(t *testing.T) {
	cfgPath := setupCLI(t)
	home := t.TempDir()
	t.Setenv("HOME", home)

	out, err := run(t, cfgPath, "config", "init")
	require.NoError(t, err)
	assert.Contains(t, out, "Created config file")

	written := filepath.Join(home, ".config", "research-connect", "config.toml")
	data, err := os.ReadFile(written)
	require.NoError(t, err)
	assert.Contains(t, string(data), "[matching]")

	out, err = run(t, cfgPath, "config", "init")
	require.NoError(t, err)
	assert.Contains(t, out, "already exists")

	out, err = run(t, written, "config", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "Research Connect Configuration")
}

func TestUserCommands(t *testing.T) {
	cfgPath := setupCLI(t)

	u := addUser(t, cfgPath, "ada", "student", "")
	assert.Equal(t, database.RoleStudent, u.Role)

	_, err := run(t, cfgPath, "user", "update", u.ID)
	assert.ErrorContains(t, err, "nothing to update")

	out, err := run(t, cfgPath, "user", "update", u.ID, "--interests", "compilers, robotics", "-o", "json")
	require.NoError(t, err, out)
	var updated database.User
	require.NoError(t, json.Unmarshal([]byte(out), &updated))
	require.NotNil(t, updated.ResearchInterests)
	assert.Equal(t, "compilers, robotics", *updated.ResearchInterests)
	assert.Nil(t, updated.Bio)

	out, err = run(t, cfgPath, "user", "show", "ADA@campus.edu")
	require.NoError(t, err, out)
	assert.Contains(t, out, "ada")

	out, err = run(t, cfgPath, "search", "robotics")
	require.NoError(t, err, out)
	assert.Contains(t, out, "Found 1 user(s)")

	out, err = run(t, cfgPath, "user", "departments", "-o", "json")
	require.NoError(t, err, out)
	assert.JSONEq(t, `["CS"]`, out)

	_, err = run(t, cfgPath, "user", "show", "nobody")
	assert.ErrorIs(t, err, database.ErrNotFound)
}

func TestMatchAndRequestFlow(t *testing.T) {
	cfgPath := setupCLI(t)

	student := addUser(t, cfgPath, "sam", "student", "robotics, vision")
	prof := addUser(t, cfgPath, "prof", "professor", "robotics")
	other := addUser(t, cfgPath, "other", "professor", "genomics")

	out, err := run(t, cfgPath, "match", "professors", student.ID)
	require.NoError(t, err, out)
	assert.Contains(t, out, "prof")
	assert.Contains(t, out, "50%")
	assert.NotContains(t, out, "other")

	_, err = run(t, cfgPath, "match", "professors", student.ID, "--request", other.ID)
	assert.ErrorContains(t, err, "not among the recommended professors")

	out, err = run(t, cfgPath, "match", "professors", student.ID, "--request", prof.ID, "-o", "json")
	require.NoError(t, err, out)
	var req database.CollaborationRequest
	require.NoError(t, json.Unmarshal([]byte(out), &req))
	assert.Equal(t, database.RequestPending, req.Status)

	_, err = run(t, cfgPath, "request", "send", student.ID, prof.ID)
	assert.Error(t, err)

	out, err = run(t, cfgPath, "request", "list", prof.ID, "-o", "json")
	require.NoError(t, err, out)
	var incoming []database.RequestView
	require.NoError(t, json.Unmarshal([]byte(out), &incoming))
	require.Len(t, incoming, 1)
	assert.Equal(t, "sam", incoming[0].CounterpartName)

	_, err = run(t, cfgPath, "request", "respond", prof.ID, req.ID, "maybe")
	assert.Error(t, err)

	out, err = run(t, cfgPath, "request", "respond", prof.ID, req.ID, "accept")
	require.NoError(t, err, out)
	assert.Contains(t, out, "Request is now accepted")

	out, err = run(t, cfgPath, "match", "students", prof.ID, "-o", "json")
	require.NoError(t, err, out)
	var report directory.MatchReport
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	require.Len(t, report.Matches, 1)
	assert.Equal(t, student.ID, report.Matches[0].ID)

	out, err = run(t, cfgPath, "request", "end", student.ID, req.ID)
	require.NoError(t, err, out)
	assert.Contains(t, out, "removed")
}

func TestForumHighlightProjectAndStats(t *testing.T) {
	cfgPath := setupCLI(t)

	admin := addUser(t, cfgPath, "root", "admin", "")
	student := addUser(t, cfgPath, "sam", "student", "")

	out, err := run(t, cfgPath, "forum", "post", student.ID, "--title", "Reading group", "--content", "Weekly papers", "-o", "json")
	require.NoError(t, err, out)
	var post database.ForumPost
	require.NoError(t, json.Unmarshal([]byte(out), &post))
	assert.Equal(t, "General Research", post.Category)

	out, err = run(t, cfgPath, "forum", "vote", admin.ID, post.ID, "upvote", "-o", "json")
	require.NoError(t, err, out)
	require.NoError(t, json.Unmarshal([]byte(out), &post))
	assert.Equal(t, 1, post.Upvotes)

	_, err = run(t, cfgPath, "highlight", "add", student.ID, "--title", "t", "--summary", "s", "--contributors", "c")
	assert.ErrorIs(t, err, directory.ErrForbidden)

	out, err = run(t, cfgPath, "highlight", "add", admin.ID, "--title", "Quantum sensing", "--summary", "New detector", "--contributors", "Lab Q", "--featured", "-o", "json")
	require.NoError(t, err, out)

	out, err = run(t, cfgPath, "highlight", "search", "nothing-like-this")
	require.NoError(t, err, out)
	assert.Contains(t, out, "No highlights found")

	out, err = run(t, cfgPath, "project", "add", student.ID, "--title", "Swarm robots", "-o", "json")
	require.NoError(t, err, out)
	var p database.Project
	require.NoError(t, json.Unmarshal([]byte(out), &p))

	out, err = run(t, cfgPath, "project", "update", student.ID, p.ID, "--status", "completed", "-o", "json")
	require.NoError(t, err, out)
	require.NoError(t, json.Unmarshal([]byte(out), &p))
	assert.Equal(t, database.ProjectCompleted, p.Status)

	out, err = run(t, cfgPath, "stats", "-o", "json")
	require.NoError(t, err, out)
	var stats database.Stats
	require.NoError(t, json.Unmarshal([]byte(out), &stats))
	assert.Equal(t, 2, stats.TotalUsers)
	assert.Equal(t, 1, stats.ForumPosts)
	assert.Equal(t, 1, stats.FeaturedHighlights)
	assert.Equal(t, 0, stats.ActiveProjects)
}

func TestScoreColor(t *testing.T) {
	assert.Equal(t, ColorGreen, ScoreColor(100))
	assert.Equal(t, ColorYellow, ScoreColor(40))
	assert.Equal(t, ColorGray, ScoreColor(39))

	plain := &Terminal{}
	assert.Equal(t, "50%", plain.ScoreStyle()(50, "50%"))

	colored := &Terminal{UseColor: true}
	assert.Equal(t, ColorYellow+"50%"+ColorReset, colored.ScoreStyle()(50, "50%"))
}

// chdir changes the working directory for the duration of the test and
// restores it on cleanup (equivalent to testing.T.Chdir from Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(prev); err != nil {
			t.Fatal(err)
		}
	})
}
