package database

import "context"

// GetStats retrieves aggregate statistics
func (db *DB) GetStats(ctx context.Context) (*Stats, error) {
	stats := &Stats{}

	// Get user counts by role
	if err := db.QueryRowContext(ctx, `
		SELECT
			COUNT(*) as total,
			COALESCE(SUM(CASE WHEN role = 'student' THEN 1 ELSE 0 END), 0) as students,
			COALESCE(SUM(CASE WHEN role = 'professor' THEN 1 ELSE 0 END), 0) as professors,
			COALESCE(SUM(CASE WHEN role = 'admin' THEN 1 ELSE 0 END), 0) as admins
		FROM users
	`).Scan(&stats.TotalUsers, &stats.Students, &stats.Professors, &stats.Admins); err != nil {
		return nil, err
	}

	// Get request counts by status
	if err := db.QueryRowContext(ctx, `
		SELECT
			COALESCE(SUM(CASE WHEN status = 'pending' THEN 1 ELSE 0 END), 0),
			COALESCE(SUM(CASE WHEN status = 'accepted' THEN 1 ELSE 0 END), 0),
			COALESCE(SUM(CASE WHEN status = 'declined' THEN 1 ELSE 0 END), 0),
			COALESCE(SUM(CASE WHEN status = 'cancelled' THEN 1 ELSE 0 END), 0)
		FROM collaboration_requests
	`).Scan(
		&stats.PendingRequests, &stats.AcceptedRequests,
		&stats.DeclinedRequests, &stats.CancelledRequests,
	); err != nil {
		return nil, err
	}

	if err := db.QueryRowContext(ctx, "SELECT COUNT(*) FROM forum_posts").Scan(&stats.ForumPosts); err != nil {
		return nil, err
	}

	if err := db.QueryRowContext(ctx, `
		SELECT COUNT(*), COALESCE(SUM(CASE WHEN featured THEN 1 ELSE 0 END), 0)
		FROM research_highlights
	`).Scan(&stats.ResearchHighlights, &stats.FeaturedHighlights); err != nil {
		return nil, err
	}

	if err := db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM projects WHERE status = ?", ProjectActive,
	).Scan(&stats.ActiveProjects); err != nil {
		return nil, err
	}

	return stats, nil
}
