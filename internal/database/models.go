package database

import (
	"database/sql"
	"time"

	"github.com/vijay-prabhu/research-connect/internal/matching"
)

// Role represents a user's role on campus
type Role string

const (
	RoleStudent   Role = "student"
	RoleProfessor Role = "professor"
	RoleAdmin     Role = "admin"
)

// IsValid reports whether r is a known role
func (r Role) IsValid() bool {
	switch r {
	case RoleStudent, RoleProfessor, RoleAdmin:
		return true
	}
	return false
}

// User represents a registered student, professor or administrator
type User struct {
	ID                string                    `json:"id"`
	Name              string                    `json:"name"`
	Email             string                    `json:"email"`
	Role              Role                      `json:"role"`
	Department        string                    `json:"department"`
	ResearchInterests *string                   `json:"research_interests,omitempty"`
	ExperienceLevel   *matching.ExperienceLevel `json:"experience_level,omitempty"`
	Bio               *string                   `json:"bio,omitempty"`
	PhotoPath         *string                   `json:"photo_path,omitempty"`
	CreatedAt         time.Time                 `json:"created_at"`
	UpdatedAt         time.Time                 `json:"updated_at"`
}

// Candidate converts the user into the profile the matching engine ranks
func (u *User) Candidate() matching.CandidateProfile {
	return matching.CandidateProfile{
		ID:              u.ID,
		Name:            u.Name,
		Role:            matching.Role(u.Role),
		Department:      u.Department,
		Interests:       u.ResearchInterests,
		ExperienceLevel: u.ExperienceLevel,
	}
}

// ProfileUpdate carries the editable profile fields. Nil optionals are left
// untouched.
type ProfileUpdate struct {
	Name              *string
	Department        *string
	ResearchInterests *string
	ExperienceLevel   *matching.ExperienceLevel
	Bio               *string
	PhotoPath         *string
}

// UserFilter contains options for listing users
type UserFilter struct {
	Role       *Role
	Department *string
	Keyword    *string // matched against research interests and bio
	Limit      int
}

// RequestStatus represents the state of a collaboration request
type RequestStatus string

const (
	RequestPending   RequestStatus = "pending"
	RequestAccepted  RequestStatus = "accepted"
	RequestDeclined  RequestStatus = "declined"
	RequestCancelled RequestStatus = "cancelled"
)

// IsValid reports whether s is a known request status
func (s RequestStatus) IsValid() bool {
	switch s {
	case RequestPending, RequestAccepted, RequestDeclined, RequestCancelled:
		return true
	}
	return false
}

// CollaborationRequest represents a student's request to work with a professor
type CollaborationRequest struct {
	ID          string        `json:"id"`
	StudentID   string        `json:"student_id"`
	ProfessorID string        `json:"professor_id"`
	Status      RequestStatus `json:"status"`
	Message     *string       `json:"message,omitempty"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}

// RequestView is a collaboration request joined with the other party's profile
type RequestView struct {
	CollaborationRequest
	CounterpartName       string  `json:"counterpart_name"`
	CounterpartDepartment string  `json:"counterpart_department"`
	CounterpartInterests  *string `json:"counterpart_interests,omitempty"`
}

// VoteType represents a forum vote direction
type VoteType string

const (
	VoteUp   VoteType = "upvote"
	VoteDown VoteType = "downvote"
)

// IsValid reports whether v is a known vote type
func (v VoteType) IsValid() bool {
	return v == VoteUp || v == VoteDown
}

// ForumPost represents a discussion thread starter
type ForumPost struct {
	ID         string    `json:"id"`
	Title      string    `json:"title"`
	Content    string    `json:"content"`
	Category   string    `json:"category"`
	AuthorID   string    `json:"author_id"`
	AuthorName string    `json:"author_name"`
	AuthorRole Role      `json:"author_role"`
	Upvotes    int       `json:"upvotes"`
	Downvotes  int       `json:"downvotes"`
	CreatedAt  time.Time `json:"created_at"`
}

// Score returns the net vote count
func (p *ForumPost) Score() int {
	return p.Upvotes - p.Downvotes
}

// PostSort selects the ordering of forum listings
type PostSort string

const (
	SortLatest  PostSort = "latest"
	SortPopular PostSort = "popular"
)

// PostFilter contains options for listing forum posts
type PostFilter struct {
	Category *string
	Sort     PostSort
	Limit    int
}

// ResearchHighlight represents a published research update
type ResearchHighlight struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Summary      string    `json:"summary"`
	Contributors string    `json:"contributors"`
	PostedBy     string    `json:"posted_by"`
	PostedByName string    `json:"posted_by_name"`
	Featured     bool      `json:"featured"`
	DatePosted   time.Time `json:"date_posted"`
}

// ProjectStatus represents the lifecycle of a project
type ProjectStatus string

const (
	ProjectActive    ProjectStatus = "active"
	ProjectCompleted ProjectStatus = "completed"
	ProjectOnHold    ProjectStatus = "on_hold"
)

// IsValid reports whether s is a known project status
func (s ProjectStatus) IsValid() bool {
	switch s {
	case ProjectActive, ProjectCompleted, ProjectOnHold:
		return true
	}
	return false
}

// Project represents a research project owned by a user
type Project struct {
	ID          string        `json:"id"`
	Title       string        `json:"title"`
	Description *string       `json:"description,omitempty"`
	Status      ProjectStatus `json:"status"`
	OwnerID     string        `json:"owner_id"`
	OwnerName   string        `json:"owner_name"`
	CreatedAt   time.Time     `json:"created_at"`
}

// Stats represents aggregate statistics
type Stats struct {
	TotalUsers         int `json:"total_users"`
	Students           int `json:"students"`
	Professors         int `json:"professors"`
	Admins             int `json:"admins"`
	PendingRequests    int `json:"pending_requests"`
	AcceptedRequests   int `json:"accepted_requests"`
	DeclinedRequests   int `json:"declined_requests"`
	CancelledRequests  int `json:"cancelled_requests"`
	ForumPosts         int `json:"forum_posts"`
	ResearchHighlights int `json:"research_highlights"`
	FeaturedHighlights int `json:"featured_highlights"`
	ActiveProjects     int `json:"active_projects"`
}

// NullString is a helper to convert *string to sql.NullString
func NullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

// StringPtr converts sql.NullString to *string
func StringPtr(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	return &ns.String
}

// nullLevel converts an optional experience level to a nullable column value
func nullLevel(l *matching.ExperienceLevel) sql.NullString {
	if l == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: string(*l), Valid: true}
}

// levelPtr converts a nullable column to an optional experience level
func levelPtr(ns sql.NullString) *matching.ExperienceLevel {
	if !ns.Valid || ns.String == "" {
		return nil
	}
	l := matching.ExperienceLevel(ns.String)
	return &l
}
