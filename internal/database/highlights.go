package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
)

const highlightSelect = `
	SELECT h.id, h.title, h.summary, h.contributors, h.posted_by, u.name,
	       h.featured, h.date_posted
	FROM research_highlights h
	JOIN users u ON h.posted_by = u.id
`

func scanHighlight(row rowScanner) (*ResearchHighlight, error) {
	h := &ResearchHighlight{}
	if err := row.Scan(
		&h.ID, &h.Title, &h.Summary, &h.Contributors, &h.PostedBy, &h.PostedByName,
		&h.Featured, &h.DatePosted,
	); err != nil {
		return nil, err
	}
	return h, nil
}

// CreateHighlight inserts a new research highlight
func (db *DB) CreateHighlight(ctx context.Context, h *ResearchHighlight) error {
	if h.ID == "" {
		h.ID = uuid.New().String()
	}
	h.DatePosted = now()

	_, err := db.ExecContext(ctx, `
		INSERT INTO research_highlights (id, title, summary, contributors, posted_by, featured, date_posted)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, h.ID, h.Title, h.Summary, h.Contributors, h.PostedBy, h.Featured, h.DatePosted)
	return err
}

// GetHighlight retrieves a research highlight by ID
func (db *DB) GetHighlight(ctx context.Context, id string) (*ResearchHighlight, error) {
	h, err := scanHighlight(db.QueryRowContext(ctx, highlightSelect+" WHERE h.id = ?", id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	return h, err
}

// ListHighlights retrieves highlights newest first
func (db *DB) ListHighlights(ctx context.Context, featuredOnly bool, limit int) ([]ResearchHighlight, error) {
	query := highlightSelect
	args := []interface{}{}

	if featuredOnly {
		query += " WHERE h.featured = ?"
		args = append(args, true)
	}
	query += " ORDER BY h.date_posted DESC, h.id"

	if limit > 0 {
		query += fmt.Sprintf(" LIMIT %d", limit)
	}

	return db.queryHighlights(ctx, query, args...)
}

// SearchHighlights matches a keyword against title, summary and contributors
func (db *DB) SearchHighlights(ctx context.Context, keyword string, limit int) ([]ResearchHighlight, error) {
	pattern := "%" + keyword + "%"
	query := highlightSelect + `
		WHERE LOWER(h.title) LIKE LOWER(?)
		   OR LOWER(h.summary) LIKE LOWER(?)
		   OR LOWER(h.contributors) LIKE LOWER(?)
		ORDER BY h.date_posted DESC, h.id
	`
	if limit > 0 {
		query += fmt.Sprintf(" LIMIT %d", limit)
	}

	return db.queryHighlights(ctx, query, pattern, pattern, pattern)
}

// SetHighlightFeatured toggles whether a highlight is featured
func (db *DB) SetHighlightFeatured(ctx context.Context, id string, featured bool) error {
	result, err := db.ExecContext(ctx,
		"UPDATE research_highlights SET featured = ? WHERE id = ?", featured, id)
	if err != nil {
		return err
	}
	return checkAffected(result, "research highlight", id)
}

func (db *DB) queryHighlights(ctx context.Context, query string, args ...interface{}) ([]ResearchHighlight, error) {
	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var highlights []ResearchHighlight
	for rows.Next() {
		h, err := scanHighlight(rows)
		if err != nil {
			return nil, err
		}
		highlights = append(highlights, *h)
	}
	return highlights, rows.Err()
}
