package database

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
)

const requestColumns = `
	r.id, r.student_id, r.professor_id, r.status, r.message, r.created_at, r.updated_at
`

func scanRequest(row rowScanner, extra ...any) (*CollaborationRequest, error) {
	r := &CollaborationRequest{}
	var message sql.NullString

	dest := append([]any{
		&r.ID, &r.StudentID, &r.ProfessorID, &r.Status, &message, &r.CreatedAt, &r.UpdatedAt,
	}, extra...)
	if err := row.Scan(dest...); err != nil {
		return nil, err
	}

	r.Message = StringPtr(message)
	return r, nil
}

// CreateRequest inserts a new collaboration request
func (db *DB) CreateRequest(ctx context.Context, r *CollaborationRequest) error {
	if r.ID == "" {
		r.ID = uuid.New().String()
	}
	r.CreatedAt = now()
	r.UpdatedAt = r.CreatedAt

	_, err := db.ExecContext(ctx, `
		INSERT INTO collaboration_requests (
			id, student_id, professor_id, status, message, created_at, updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?)
	`,
		r.ID, r.StudentID, r.ProfessorID, r.Status, NullString(r.Message), r.CreatedAt, r.UpdatedAt,
	)
	return err
}

// GetRequest retrieves a collaboration request by ID
func (db *DB) GetRequest(ctx context.Context, id string) (*CollaborationRequest, error) {
	r, err := scanRequest(db.QueryRowContext(ctx, `
		SELECT `+requestColumns+` FROM collaboration_requests r WHERE r.id = ?
	`, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	return r, err
}

// GetRequestBetween retrieves the request for a student/professor pair
func (db *DB) GetRequestBetween(ctx context.Context, studentID, professorID string) (*CollaborationRequest, error) {
	r, err := scanRequest(db.QueryRowContext(ctx, `
		SELECT `+requestColumns+` FROM collaboration_requests r
		WHERE r.student_id = ? AND r.professor_id = ?
	`, studentID, professorID))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	return r, err
}

// UpdateRequestStatus sets the status of a request. A non-nil message
// replaces the stored one.
func (db *DB) UpdateRequestStatus(ctx context.Context, id string, status RequestStatus, message *string) error {
	var (
		result sql.Result
		err    error
	)
	if message != nil {
		result, err = db.ExecContext(ctx, `
			UPDATE collaboration_requests SET status = ?, message = ?, updated_at = ? WHERE id = ?
		`, status, *message, now(), id)
	} else {
		result, err = db.ExecContext(ctx, `
			UPDATE collaboration_requests SET status = ?, updated_at = ? WHERE id = ?
		`, status, now(), id)
	}
	if err != nil {
		return err
	}
	return checkAffected(result, "collaboration request", id)
}

// DeleteRequest removes a collaboration request
func (db *DB) DeleteRequest(ctx context.Context, id string) error {
	result, err := db.ExecContext(ctx, "DELETE FROM collaboration_requests WHERE id = ?", id)
	if err != nil {
		return err
	}
	return checkAffected(result, "collaboration request", id)
}

// ListRequestsForProfessor returns requests addressed to a professor, joined
// with the requesting student. A nil status lists every request.
func (db *DB) ListRequestsForProfessor(ctx context.Context, professorID string, status *RequestStatus) ([]RequestView, error) {
	query := `
		SELECT ` + requestColumns + `, u.name, u.department, u.research_interests
		FROM collaboration_requests r
		JOIN users u ON r.student_id = u.id
		WHERE r.professor_id = ?
	`
	args := []interface{}{professorID}
	if status != nil {
		query += " AND r.status = ?"
		args = append(args, *status)
	}
	query += " ORDER BY r.created_at DESC, r.id"

	return db.queryRequestViews(ctx, query, args...)
}

// ListRequestsForStudent returns requests sent by a student, joined with the
// professor. A nil status lists every request.
func (db *DB) ListRequestsForStudent(ctx context.Context, studentID string, status *RequestStatus) ([]RequestView, error) {
	query := `
		SELECT ` + requestColumns + `, u.name, u.department, u.research_interests
		FROM collaboration_requests r
		JOIN users u ON r.professor_id = u.id
		WHERE r.student_id = ?
	`
	args := []interface{}{studentID}
	if status != nil {
		query += " AND r.status = ?"
		args = append(args, *status)
	}
	query += " ORDER BY r.created_at DESC, r.id"

	return db.queryRequestViews(ctx, query, args...)
}

func (db *DB) queryRequestViews(ctx context.Context, query string, args ...interface{}) ([]RequestView, error) {
	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var views []RequestView
	for rows.Next() {
		var v RequestView
		var interests sql.NullString

		r, err := scanRequest(rows, &v.CounterpartName, &v.CounterpartDepartment, &interests)
		if err != nil {
			return nil, err
		}
		v.CollaborationRequest = *r
		v.CounterpartInterests = StringPtr(interests)
		views = append(views, v)
	}
	return views, rows.Err()
}
