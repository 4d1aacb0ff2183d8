package database

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/vijay-prabhu/research-connect/internal/matching"
)

const userColumns = `
	id, name, email, role, department, research_interests,
	experience_level, bio, photo_path, created_at, updated_at
`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (*User, error) {
	u := &User{}
	var interests, level, bio, photo sql.NullString

	if err := row.Scan(
		&u.ID, &u.Name, &u.Email, &u.Role, &u.Department, &interests,
		&level, &bio, &photo, &u.CreatedAt, &u.UpdatedAt,
	); err != nil {
		return nil, err
	}

	u.ResearchInterests = StringPtr(interests)
	u.ExperienceLevel = levelPtr(level)
	u.Bio = StringPtr(bio)
	u.PhotoPath = StringPtr(photo)
	return u, nil
}

// NormalizeEmail lower-cases and trims an address so lookups are case-insensitive
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// CreateUser inserts a new user
func (db *DB) CreateUser(ctx context.Context, u *User) error {
	if u.ID == "" {
		u.ID = uuid.New().String()
	}
	u.Email = NormalizeEmail(u.Email)
	u.CreatedAt = now()
	u.UpdatedAt = u.CreatedAt

	_, err := db.ExecContext(ctx, `
		INSERT INTO users (`+userColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`,
		u.ID, u.Name, u.Email, u.Role, u.Department, NullString(u.ResearchInterests),
		nullLevel(u.ExperienceLevel), NullString(u.Bio), NullString(u.PhotoPath),
		u.CreatedAt, u.UpdatedAt,
	)
	return err
}

// GetUser retrieves a user by ID
func (db *DB) GetUser(ctx context.Context, id string) (*User, error) {
	u, err := scanUser(db.QueryRowContext(ctx, `
		SELECT `+userColumns+` FROM users WHERE id = ?
	`, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	return u, err
}

// GetUserByEmail retrieves a user by email (case-insensitive)
func (db *DB) GetUserByEmail(ctx context.Context, email string) (*User, error) {
	u, err := scanUser(db.QueryRowContext(ctx, `
		SELECT `+userColumns+` FROM users WHERE email = ?
	`, NormalizeEmail(email)))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	return u, err
}

// UpdateUserProfile writes the non-nil fields of the update
func (db *DB) UpdateUserProfile(ctx context.Context, id string, upd ProfileUpdate) error {
	sets := []string{"updated_at = ?"}
	args := []interface{}{now()}

	if upd.Name != nil {
		sets = append(sets, "name = ?")
		args = append(args, *upd.Name)
	}
	if upd.Department != nil {
		sets = append(sets, "department = ?")
		args = append(args, *upd.Department)
	}
	if upd.ResearchInterests != nil {
		sets = append(sets, "research_interests = ?")
		args = append(args, *upd.ResearchInterests)
	}
	if upd.ExperienceLevel != nil {
		sets = append(sets, "experience_level = ?")
		args = append(args, string(*upd.ExperienceLevel))
	}
	if upd.Bio != nil {
		sets = append(sets, "bio = ?")
		args = append(args, *upd.Bio)
	}
	if upd.PhotoPath != nil {
		sets = append(sets, "photo_path = ?")
		args = append(args, *upd.PhotoPath)
	}
	args = append(args, id)

	result, err := db.ExecContext(ctx,
		"UPDATE users SET "+strings.Join(sets, ", ")+" WHERE id = ?", args...)
	if err != nil {
		return err
	}
	return checkAffected(result, "user", id)
}

// ListUsers retrieves users with optional filters
func (db *DB) ListUsers(ctx context.Context, filter UserFilter) ([]User, error) {
	query := "SELECT " + userColumns + " FROM users WHERE 1=1"
	args := []interface{}{}

	if filter.Role != nil {
		query += " AND role = ?"
		args = append(args, *filter.Role)
	}
	if filter.Department != nil {
		query += " AND department = ?"
		args = append(args, *filter.Department)
	}
	if filter.Keyword != nil {
		query += " AND (LOWER(research_interests) LIKE LOWER(?) OR LOWER(bio) LIKE LOWER(?))"
		pattern := "%" + *filter.Keyword + "%"
		args = append(args, pattern, pattern)
	}

	query += " ORDER BY name, id"

	if filter.Limit > 0 {
		query += fmt.Sprintf(" LIMIT %d", filter.Limit)
	}

	return db.queryUsers(ctx, query, args...)
}

// ListDepartments returns the distinct non-empty departments
func (db *DB) ListDepartments(ctx context.Context) ([]string, error) {
	rows, err := db.QueryContext(ctx, `
		SELECT DISTINCT department FROM users
		WHERE department IS NOT NULL AND department != ''
		ORDER BY department
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var departments []string
	for rows.Next() {
		var d string
		if err := rows.Scan(&d); err != nil {
			return nil, err
		}
		departments = append(departments, d)
	}
	return departments, rows.Err()
}

// FetchCandidateProfessors returns every professor with research interests,
// in a stable order. studentID identifies the caller and does not filter.
func (db *DB) FetchCandidateProfessors(ctx context.Context, studentID string) ([]matching.CandidateProfile, error) {
	return db.fetchCandidates(ctx, `
		SELECT `+userColumns+` FROM users
		WHERE role = ? AND research_interests IS NOT NULL
		ORDER BY created_at, id
	`, RoleProfessor)
}

// FetchCandidateStudents returns every student with research interests except
// excludeID, in a stable order
func (db *DB) FetchCandidateStudents(ctx context.Context, excludeID string) ([]matching.CandidateProfile, error) {
	return db.fetchCandidates(ctx, `
		SELECT `+userColumns+` FROM users
		WHERE role = ? AND id != ? AND research_interests IS NOT NULL
		ORDER BY created_at, id
	`, RoleStudent, excludeID)
}

func (db *DB) fetchCandidates(ctx context.Context, query string, args ...interface{}) ([]matching.CandidateProfile, error) {
	users, err := db.queryUsers(ctx, query, args...)
	if err != nil {
		return nil, err
	}

	candidates := make([]matching.CandidateProfile, 0, len(users))
	for i := range users {
		candidates = append(candidates, users[i].Candidate())
	}
	return candidates, nil
}

func (db *DB) queryUsers(ctx context.Context, query string, args ...interface{}) ([]User, error) {
	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, *u)
	}
	return users, rows.Err()
}

