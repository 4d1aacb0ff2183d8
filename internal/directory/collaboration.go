package directory

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/vijay-prabhu/research-connect/internal/database"
	"github.com/vijay-prabhu/research-connect/internal/metrics"
	"github.com/vijay-prabhu/research-connect/internal/requests"
)

// SendRequest sends a collaboration request from a student to a professor.
// A declined or cancelled request for the same pair is reopened.
func (s *Service) SendRequest(ctx context.Context, studentID, professorID string, message *string) (*database.CollaborationRequest, error) {
	student, err := s.requireRole(ctx, studentID, database.RoleStudent)
	if err != nil {
		return nil, err
	}
	professor, err := s.requireRole(ctx, professorID, database.RoleProfessor)
	if err != nil {
		return nil, err
	}
	if message != nil && strings.TrimSpace(*message) == "" {
		message = nil
	}

	existing, err := s.db.GetRequestBetween(ctx, student.ID, professor.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing request: %w", err)
	}

	action, err := requests.DecideSend(existing)
	if err != nil {
		metrics.CollaborationRequests.WithLabelValues("send", "rejected").Inc()
		return nil, err
	}

	var req *database.CollaborationRequest
	switch action {
	case requests.SendCreate:
		req = &database.CollaborationRequest{
			StudentID:   student.ID,
			ProfessorID: professor.ID,
			Status:      database.RequestPending,
			Message:     message,
		}
		if err := s.db.CreateRequest(ctx, req); err != nil {
			return nil, fmt.Errorf("failed to create request: %w", err)
		}
		metrics.CollaborationRequests.WithLabelValues("send", "created").Inc()
	case requests.SendRenew:
		if err := s.db.UpdateRequestStatus(ctx, existing.ID, database.RequestPending, message); err != nil {
			return nil, fmt.Errorf("failed to renew request: %w", err)
		}
		if req, err = s.db.GetRequest(ctx, existing.ID); err != nil {
			return nil, fmt.Errorf("failed to reload request: %w", err)
		}
		metrics.CollaborationRequests.WithLabelValues("send", "renewed").Inc()
	}

	s.logger.Info("collaboration request sent",
		zap.String("request_id", req.ID),
		zap.String("student_id", student.ID),
		zap.String("professor_id", professor.ID),
	)
	return req, nil
}

// Respond lets a professor accept or decline a pending request addressed to them
func (s *Service) Respond(ctx context.Context, professorID, requestID string, event requests.Event) (*database.CollaborationRequest, error) {
	req, err := s.requireRequest(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if req.ProfessorID != professorID {
		return nil, fmt.Errorf("%w: request %s is not addressed to %s", ErrForbidden, requestID, professorID)
	}

	return s.transition(ctx, req, event, database.RoleProfessor)
}

// Cancel lets a student withdraw a pending request they sent
func (s *Service) Cancel(ctx context.Context, studentID, requestID string) (*database.CollaborationRequest, error) {
	req, err := s.requireRequest(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if req.StudentID != studentID {
		return nil, fmt.Errorf("%w: request %s was not sent by %s", ErrForbidden, requestID, studentID)
	}

	return s.transition(ctx, req, requests.EventCancel, database.RoleStudent)
}

// EndCollaboration removes a request or collaboration. Either party may end it.
func (s *Service) EndCollaboration(ctx context.Context, userID, requestID string) error {
	req, err := s.requireRequest(ctx, requestID)
	if err != nil {
		return err
	}
	if req.StudentID != userID && req.ProfessorID != userID {
		return fmt.Errorf("%w: %s is not part of request %s", ErrForbidden, userID, requestID)
	}

	if err := s.db.DeleteRequest(ctx, requestID); err != nil {
		return fmt.Errorf("failed to end collaboration: %w", err)
	}

	metrics.CollaborationRequests.WithLabelValues("end", "deleted").Inc()
	s.logger.Info("collaboration ended", zap.String("request_id", requestID), zap.String("by", userID))
	return nil
}

// IncomingRequests returns pending requests addressed to a professor
func (s *Service) IncomingRequests(ctx context.Context, professorID string) ([]database.RequestView, error) {
	if _, err := s.requireRole(ctx, professorID, database.RoleProfessor); err != nil {
		return nil, err
	}

	pending := database.RequestPending
	views, err := s.db.ListRequestsForProfessor(ctx, professorID, &pending)
	if err != nil {
		return nil, fmt.Errorf("failed to list incoming requests: %w", err)
	}
	return views, nil
}

// OutgoingRequests returns a student's requests grouped by status
func (s *Service) OutgoingRequests(ctx context.Context, studentID string) ([]requests.StatusGroup, error) {
	if _, err := s.requireRole(ctx, studentID, database.RoleStudent); err != nil {
		return nil, err
	}

	views, err := s.db.ListRequestsForStudent(ctx, studentID, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to list outgoing requests: %w", err)
	}
	return requests.GroupByStatus(views), nil
}

// ActiveCollaborations returns the accepted requests a user takes part in
func (s *Service) ActiveCollaborations(ctx context.Context, userID string) ([]database.RequestView, error) {
	u, err := s.requireUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	accepted := database.RequestAccepted
	var views []database.RequestView
	switch u.Role {
	case database.RoleProfessor:
		views, err = s.db.ListRequestsForProfessor(ctx, userID, &accepted)
	case database.RoleStudent:
		views, err = s.db.ListRequestsForStudent(ctx, userID, &accepted)
	default:
		return nil, fmt.Errorf("%w: %s users do not collaborate", ErrForbidden, u.Role)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list collaborations: %w", err)
	}
	return views, nil
}

func (s *Service) requireRequest(ctx context.Context, id string) (*database.CollaborationRequest, error) {
	req, err := s.db.GetRequest(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get request: %w", err)
	}
	if req == nil {
		return nil, fmt.Errorf("collaboration request %s: %w", id, database.ErrNotFound)
	}
	return req, nil
}

func (s *Service) transition(ctx context.Context, req *database.CollaborationRequest, event requests.Event, actor database.Role) (*database.CollaborationRequest, error) {
	next, err := requests.Transition(req.Status, event, actor)
	if err != nil {
		metrics.CollaborationRequests.WithLabelValues(string(event), "rejected").Inc()
		return nil, err
	}

	if err := s.db.UpdateRequestStatus(ctx, req.ID, next, nil); err != nil {
		return nil, fmt.Errorf("failed to update request: %w", err)
	}

	metrics.CollaborationRequests.WithLabelValues(string(event), string(next)).Inc()
	s.logger.Info("collaboration request updated",
		zap.String("request_id", req.ID),
		zap.String("from", string(req.Status)),
		zap.String("to", string(next)),
	)

	return s.requireRequest(ctx, req.ID)
}
