package database

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
)

const projectSelect = `
	SELECT p.id, p.title, p.description, p.status, p.owner_id, u.name, p.created_at
	FROM projects p
	JOIN users u ON p.owner_id = u.id
`

func scanProject(row rowScanner) (*Project, error) {
	p := &Project{}
	var description sql.NullString
	if err := row.Scan(
		&p.ID, &p.Title, &description, &p.Status, &p.OwnerID, &p.OwnerName, &p.CreatedAt,
	); err != nil {
		return nil, err
	}
	p.Description = StringPtr(description)
	return p, nil
}

// CreateProject inserts a new project
func (db *DB) CreateProject(ctx context.Context, p *Project) error {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	if p.Status == "" {
		p.Status = ProjectActive
	}
	p.CreatedAt = now()

	_, err := db.ExecContext(ctx, `
		INSERT INTO projects (id, title, description, status, owner_id, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, p.ID, p.Title, NullString(p.Description), p.Status, p.OwnerID, p.CreatedAt)
	return err
}

// GetProject retrieves a project by ID
func (db *DB) GetProject(ctx context.Context, id string) (*Project, error) {
	p, err := scanProject(db.QueryRowContext(ctx, projectSelect+" WHERE p.id = ?", id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	return p, err
}

// UpdateProject updates title, description and status
func (db *DB) UpdateProject(ctx context.Context, p *Project) error {
	result, err := db.ExecContext(ctx, `
		UPDATE projects SET title = ?, description = ?, status = ? WHERE id = ?
	`, p.Title, NullString(p.Description), p.Status, p.ID)
	if err != nil {
		return err
	}
	return checkAffected(result, "project", p.ID)
}

// ListProjectsByOwner retrieves a user's projects, newest first
func (db *DB) ListProjectsByOwner(ctx context.Context, ownerID string) ([]Project, error) {
	rows, err := db.QueryContext(ctx,
		projectSelect+" WHERE p.owner_id = ? ORDER BY p.created_at DESC, p.id", ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var projects []Project
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, err
		}
		projects = append(projects, *p)
	}
	return projects, rows.Err()
}
