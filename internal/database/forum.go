package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
)

const postSelect = `
	SELECT p.id, p.title, p.content, p.category, p.author_id, u.name AS author_name,
	       u.role AS author_role, p.created_at,
	       (SELECT COUNT(*) FROM post_votes v WHERE v.post_id = p.id AND v.vote_type = 'upvote') AS upvotes,
	       (SELECT COUNT(*) FROM post_votes v WHERE v.post_id = p.id AND v.vote_type = 'downvote') AS downvotes
	FROM forum_posts p
	JOIN users u ON p.author_id = u.id
`

func scanPost(row rowScanner) (*ForumPost, error) {
	p := &ForumPost{}
	if err := row.Scan(
		&p.ID, &p.Title, &p.Content, &p.Category, &p.AuthorID, &p.AuthorName,
		&p.AuthorRole, &p.CreatedAt, &p.Upvotes, &p.Downvotes,
	); err != nil {
		return nil, err
	}
	return p, nil
}

// CreatePost inserts a new forum post
func (db *DB) CreatePost(ctx context.Context, p *ForumPost) error {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	p.CreatedAt = now()

	_, err := db.ExecContext(ctx, `
		INSERT INTO forum_posts (id, title, content, category, author_id, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, p.ID, p.Title, p.Content, p.Category, p.AuthorID, p.CreatedAt)
	return err
}

// GetPost retrieves a forum post with its vote counts
func (db *DB) GetPost(ctx context.Context, id string) (*ForumPost, error) {
	p, err := scanPost(db.QueryRowContext(ctx, postSelect+" WHERE p.id = ?", id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	return p, err
}

// ListPosts retrieves forum posts, newest first or by net votes
func (db *DB) ListPosts(ctx context.Context, filter PostFilter) ([]ForumPost, error) {
	inner := postSelect
	args := []interface{}{}

	if filter.Category != nil {
		inner += " WHERE p.category = ?"
		args = append(args, *filter.Category)
	}

	query := "SELECT * FROM (" + inner + ") t"
	if filter.Sort == SortPopular {
		query += " ORDER BY (t.upvotes - t.downvotes) DESC, t.created_at DESC, t.id"
	} else {
		query += " ORDER BY t.created_at DESC, t.id"
	}

	if filter.Limit > 0 {
		query += fmt.Sprintf(" LIMIT %d", filter.Limit)
	}

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var posts []ForumPost
	for rows.Next() {
		p, err := scanPost(rows)
		if err != nil {
			return nil, err
		}
		posts = append(posts, *p)
	}
	return posts, rows.Err()
}

// Vote records a user's vote on a post, replacing any earlier vote
func (db *DB) Vote(ctx context.Context, postID, userID string, vote VoteType) error {
	return db.Transaction(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx,
			"DELETE FROM post_votes WHERE post_id = ? AND user_id = ?", postID, userID,
		); err != nil {
			return fmt.Errorf("failed to clear previous vote: %w", err)
		}

		if _, err := tx.ExecContext(ctx, `
			INSERT INTO post_votes (post_id, user_id, vote_type, created_at) VALUES (?, ?, ?, ?)
		`, postID, userID, vote, now()); err != nil {
			return fmt.Errorf("failed to record vote: %w", err)
		}
		return nil
	})
}
