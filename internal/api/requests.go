package api

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/vijay-prabhu/research-connect/internal/requests"
)

type sendRequestBody struct {
	StudentID   string  `json:"student_id"`
	ProfessorID string  `json:"professor_id"`
	Message     *string `json:"message"`
}

type respondBody struct {
	ProfessorID string `json:"professor_id"`
	Action      string `json:"action"`
}

type cancelBody struct {
	StudentID string `json:"student_id"`
}

func (s *Server) handleSendRequest(w http.ResponseWriter, r *http.Request) {
	var body sendRequestBody
	if err := decodeBody(r, &body); err != nil {
		s.writeError(w, err)
		return
	}

	req, err := s.service.SendRequest(r.Context(), body.StudentID, body.ProfessorID, body.Message)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeData(w, http.StatusCreated, req)
}

func (s *Server) handleRespond(w http.ResponseWriter, r *http.Request) {
	var body respondBody
	if err := decodeBody(r, &body); err != nil {
		s.writeError(w, err)
		return
	}

	event, err := requests.ParseEvent(body.Action)
	if err != nil || event == requests.EventCancel {
		s.writeError(w, fmt.Errorf("%w: action must be accept or decline", errBadRequest))
		return
	}

	req, err := s.service.Respond(r.Context(), body.ProfessorID, chi.URLParam(r, "requestID"), event)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeData(w, http.StatusOK, req)
}

func (s *Server) handleCancel(w http.ResponseWriter, r *http.Request) {
	var body cancelBody
	if err := decodeBody(r, &body); err != nil {
		s.writeError(w, err)
		return
	}

	req, err := s.service.Cancel(r.Context(), body.StudentID, chi.URLParam(r, "requestID"))
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeData(w, http.StatusOK, req)
}

// handleEndCollaboration serves DELETE /api/requests/{requestID}?user_id=
func (s *Server) handleEndCollaboration(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("user_id")
	if userID == "" {
		s.writeError(w, fmt.Errorf("%w: user_id is required", errBadRequest))
		return
	}

	if err := s.service.EndCollaboration(r.Context(), userID, chi.URLParam(r, "requestID")); err != nil {
		s.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleListRequests serves GET /api/users/{userID}/requests?view=incoming|outgoing|active
func (s *Server) handleListRequests(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")
	ctx := r.Context()

	var (
		data interface{}
		err  error
	)
	switch view := r.URL.Query().Get("view"); view {
	case "incoming":
		data, err = s.service.IncomingRequests(ctx, userID)
	case "outgoing":
		data, err = s.service.OutgoingRequests(ctx, userID)
	case "", "active":
		data, err = s.service.ActiveCollaborations(ctx, userID)
	default:
		err = fmt.Errorf("%w: view must be incoming, outgoing or active, got '%s'", errBadRequest, view)
	}
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeData(w, http.StatusOK, data)
}
