package output

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/olekukonko/tablewriter"

	"github.com/vijay-prabhu/research-connect/internal/database"
	"github.com/vijay-prabhu/research-connect/internal/directory"
	"github.com/vijay-prabhu/research-connect/internal/matching"
	"github.com/vijay-prabhu/research-connect/internal/requests"
)

// ScoreStyle decorates a compatibility cell, e.g. with terminal colours
type ScoreStyle func(score int, text string) string

// TableTo writes data as a formatted table to the given writer
func TableTo(w io.Writer, data interface{}) error {
	switch v := data.(type) {
	case *directory.MatchReport:
		return MatchesTable(w, v, nil)
	case []database.User:
		return usersTable(w, v)
	case *database.User:
		return userDetail(w, v)
	case []database.RequestView:
		return requestsTable(w, v)
	case []requests.StatusGroup:
		return requestGroups(w, v)
	case *database.CollaborationRequest:
		return requestDetail(w, v)
	case []database.ForumPost:
		return postsTable(w, v)
	case *database.ForumPost:
		return postDetail(w, v)
	case []database.ResearchHighlight:
		return highlightsTable(w, v)
	case *database.ResearchHighlight:
		return highlightsTable(w, []database.ResearchHighlight{*v})
	case []database.Project:
		return projectsTable(w, v)
	case *database.Project:
		return projectsTable(w, []database.Project{*v})
	case *database.Stats:
		return statsTable(w, v)
	case []string:
		return listTable(w, v)
	default:
		return fmt.Errorf("unsupported data type for table output: %T", data)
	}
}

func render(w io.Writer, header []string, rows [][]string) error {
	table := tablewriter.NewWriter(w)
	table.Header(header)
	for _, row := range rows {
		if err := table.Append(row); err != nil {
			return err
		}
	}
	return table.Render()
}

// MatchesTable prints a ranked recommendation. style may be nil.
func MatchesTable(w io.Writer, report *directory.MatchReport, style ScoreStyle) error {
	if len(report.Matches) == 0 {
		fmt.Fprintln(w, "No matches found. Try broadening your research interests.")
		return nil
	}

	rows := make([][]string, 0, len(report.Matches))
	for i, m := range report.Matches {
		score := fmt.Sprintf("%d%%", m.Compatibility)
		if style != nil {
			score = style(m.Compatibility, score)
		}
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			truncate(m.Name, 25),
			directory.DepartmentAbbreviation(m.Department),
			truncate(strings.Join(directory.FormatInterests(m.InterestsRaw()), ", "), 40),
			experience(m),
			score,
			m.ID,
		})
	}

	return render(w, []string{"#", "Name", "Dept", "Interests", "Level", "Match", "ID"}, rows)
}

func experience(m matching.ScoredCandidate) string {
	if m.ExperienceLevel == nil {
		return "-"
	}
	return string(*m.ExperienceLevel)
}

func usersTable(w io.Writer, users []database.User) error {
	if len(users) == 0 {
		fmt.Fprintln(w, "No users found.")
		return nil
	}

	rows := make([][]string, 0, len(users))
	for _, u := range users {
		interests := ""
		if u.ResearchInterests != nil {
			interests = *u.ResearchInterests
		}
		rows = append(rows, []string{
			truncate(u.Name, 25),
			string(u.Role),
			truncate(u.Department, 20),
			truncate(interests, 40),
			u.ID,
		})
	}

	return render(w, []string{"Name", "Role", "Department", "Interests", "ID"}, rows)
}

func userDetail(w io.Writer, u *database.User) error {
	fmt.Fprintf(w, "Name:        %s\n", u.Name)
	fmt.Fprintf(w, "Email:       %s\n", u.Email)
	fmt.Fprintf(w, "Role:        %s\n", u.Role)
	if u.Department != "" {
		fmt.Fprintf(w, "Department:  %s (%s)\n", u.Department, directory.DepartmentAbbreviation(u.Department))
	}
	if u.ResearchInterests != nil {
		if items := directory.FormatInterests(*u.ResearchInterests); len(items) > 0 {
			fmt.Fprintln(w, "Interests:")
			for _, item := range items {
				fmt.Fprintf(w, "  - %s\n", item)
			}
		}
	}
	if u.ExperienceLevel != nil {
		fmt.Fprintf(w, "Experience:  %s\n", *u.ExperienceLevel)
	}
	if u.Bio != nil && *u.Bio != "" {
		fmt.Fprintf(w, "Bio:         %s\n", *u.Bio)
	}
	fmt.Fprintf(w, "Colour:      %s\n", directory.ProfileColor(u.Name))
	fmt.Fprintf(w, "Joined:      %s\n", u.CreatedAt.Format("Jan 02, 2006"))
	fmt.Fprintf(w, "ID:          %s\n", u.ID)

	return nil
}

func requestsTable(w io.Writer, views []database.RequestView) error {
	if len(views) == 0 {
		fmt.Fprintln(w, "No collaboration requests found.")
		return nil
	}

	now := time.Now()
	rows := make([][]string, 0, len(views))
	for _, v := range views {
		message := ""
		if v.Message != nil {
			message = *v.Message
		}
		rows = append(rows, []string{
			truncate(v.CounterpartName, 25),
			truncate(v.CounterpartDepartment, 20),
			truncate(message, 40),
			requests.AgeSummary(v.CollaborationRequest, now),
			v.ID,
		})
	}

	return render(w, []string{"With", "Department", "Message", "Last Update", "Request ID"}, rows)
}

func requestGroups(w io.Writer, groups []requests.StatusGroup) error {
	if len(groups) == 0 {
		fmt.Fprintln(w, "No collaboration requests found.")
		return nil
	}

	for i, g := range groups {
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintf(w, "%s (%d)\n", strings.ToUpper(string(g.Status)), len(g.Requests))
		if err := requestsTable(w, g.Requests); err != nil {
			return err
		}
	}
	return nil
}

func requestDetail(w io.Writer, r *database.CollaborationRequest) error {
	fmt.Fprintf(w, "Request:     %s\n", r.ID)
	fmt.Fprintf(w, "Student:     %s\n", r.StudentID)
	fmt.Fprintf(w, "Professor:   %s\n", r.ProfessorID)
	fmt.Fprintf(w, "Status:      %s\n", r.Status)
	if r.Message != nil {
		fmt.Fprintf(w, "Message:     %s\n", *r.Message)
	}
	fmt.Fprintf(w, "Updated:     %s\n", r.UpdatedAt.Format("Jan 02, 2006 15:04"))
	return nil
}

func postsTable(w io.Writer, posts []database.ForumPost) error {
	if len(posts) == 0 {
		fmt.Fprintln(w, "No forum posts found.")
		return nil
	}

	rows := make([][]string, 0, len(posts))
	for _, p := range posts {
		rows = append(rows, []string{
			truncate(p.Title, 40),
			p.Category,
			fmt.Sprintf("%s (%s)", truncate(p.AuthorName, 20), p.AuthorRole),
			fmt.Sprintf("+%d/-%d", p.Upvotes, p.Downvotes),
			p.CreatedAt.Format("Jan 02"),
			p.ID,
		})
	}

	return render(w, []string{"Title", "Category", "Author", "Votes", "Posted", "ID"}, rows)
}

func postDetail(w io.Writer, p *database.ForumPost) error {
	fmt.Fprintln(w, strings.Repeat("=", 60))
	fmt.Fprintln(w, p.Title)
	fmt.Fprintln(w, strings.Repeat("=", 60))
	fmt.Fprintf(w, "%s | by %s (%s) | %s\n", p.Category, p.AuthorName, p.AuthorRole, p.CreatedAt.Format("Jan 02, 2006"))
	fmt.Fprintln(w)
	fmt.Fprintln(w, wordWrap(p.Content, 78))
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Votes: +%d / -%d (score %d)\n", p.Upvotes, p.Downvotes, p.Score())
	return nil
}

func highlightsTable(w io.Writer, highlights []database.ResearchHighlight) error {
	if len(highlights) == 0 {
		fmt.Fprintln(w, "No research highlights found.")
		return nil
	}

	rows := make([][]string, 0, len(highlights))
	for _, h := range highlights {
		featured := ""
		if h.Featured {
			featured = "*"
		}
		rows = append(rows, []string{
			featured,
			truncate(h.Title, 40),
			truncate(h.Contributors, 30),
			h.DatePosted.Format("Jan 02, 2006"),
			h.ID,
		})
	}

	return render(w, []string{"", "Title", "Contributors", "Posted", "ID"}, rows)
}

func projectsTable(w io.Writer, projects []database.Project) error {
	if len(projects) == 0 {
		fmt.Fprintln(w, "No projects found.")
		return nil
	}

	rows := make([][]string, 0, len(projects))
	for _, p := range projects {
		description := ""
		if p.Description != nil {
			description = *p.Description
		}
		rows = append(rows, []string{
			truncate(p.Title, 30),
			string(p.Status),
			truncate(description, 40),
			p.CreatedAt.Format("Jan 02, 2006"),
			p.ID,
		})
	}

	return render(w, []string{"Title", "Status", "Description", "Created", "ID"}, rows)
}

func statsTable(w io.Writer, s *database.Stats) error {
	fmt.Fprintln(w, "Research Connect Statistics")
	fmt.Fprintln(w, strings.Repeat("-", 30))
	fmt.Fprintf(w, "Users:                  %d\n", s.TotalUsers)
	fmt.Fprintf(w, "  students:             %d\n", s.Students)
	fmt.Fprintf(w, "  professors:           %d\n", s.Professors)
	fmt.Fprintf(w, "  admins:               %d\n", s.Admins)
	fmt.Fprintf(w, "Pending requests:       %d\n", s.PendingRequests)
	fmt.Fprintf(w, "Active collaborations:  %d\n", s.AcceptedRequests)
	fmt.Fprintf(w, "Declined requests:      %d\n", s.DeclinedRequests)
	fmt.Fprintf(w, "Cancelled requests:     %d\n", s.CancelledRequests)
	fmt.Fprintf(w, "Forum posts:            %d\n", s.ForumPosts)
	fmt.Fprintf(w, "Research highlights:    %d (%d featured)\n", s.ResearchHighlights, s.FeaturedHighlights)
	fmt.Fprintf(w, "Active projects:        %d\n", s.ActiveProjects)

	return nil
}

func listTable(w io.Writer, items []string) error {
	if len(items) == 0 {
		fmt.Fprintln(w, "Nothing found.")
		return nil
	}
	for _, item := range items {
		fmt.Fprintln(w, item)
	}
	return nil
}

func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-3]) + "..."
}

// wordWrap wraps text at the specified width
func wordWrap(text string, width int) string {
	var result strings.Builder
	lines := strings.Split(text, "\n")

	for _, line := range lines {
		if len(line) <= width {
			result.WriteString(line)
			result.WriteString("\n")
			continue
		}

		words := strings.Fields(line)
		if len(words) == 0 {
			result.WriteString("\n")
			continue
		}

		currentLine := words[0]
		for _, word := range words[1:] {
			if len(currentLine)+1+len(word) <= width {
				currentLine += " " + word
			} else {
				result.WriteString(currentLine)
				result.WriteString("\n")
				currentLine = word
			}
		}
		result.WriteString(currentLine)
		result.WriteString("\n")
	}

	return strings.TrimSuffix(result.String(), "\n")
}
