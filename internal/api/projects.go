package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/vijay-prabhu/research-connect/internal/database"
	"github.com/vijay-prabhu/research-connect/internal/directory"
)

type projectBody struct {
	OwnerID     string  `json:"owner_id"`
	Title       string  `json:"title"`
	Description *string `json:"description"`
	Status      string  `json:"status"`
}

type projectChangeBody struct {
	OwnerID     string  `json:"owner_id"`
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Status      *string `json:"status"`
}

func (s *Server) handleListProjects(w http.ResponseWriter, r *http.Request) {
	projects, err := s.service.ListProjects(r.Context(), chi.URLParam(r, "userID"))
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeData(w, http.StatusOK, projects)
}

func (s *Server) handleGetProject(w http.ResponseWriter, r *http.Request) {
	p, err := s.service.GetProject(r.Context(), chi.URLParam(r, "projectID"))
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeData(w, http.StatusOK, p)
}

func (s *Server) handleCreateProject(w http.ResponseWriter, r *http.Request) {
	var body projectBody
	if err := decodeBody(r, &body); err != nil {
		s.writeError(w, err)
		return
	}

	p, err := s.service.CreateProject(r.Context(), body.OwnerID, body.Title, body.Description, database.ProjectStatus(body.Status))
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeData(w, http.StatusCreated, p)
}

func (s *Server) handleUpdateProject(w http.ResponseWriter, r *http.Request) {
	var body projectChangeBody
	if err := decodeBody(r, &body); err != nil {
		s.writeError(w, err)
		return
	}

	change := directory.ProjectChange{Title: body.Title, Description: body.Description}
	if body.Status != nil {
		status := database.ProjectStatus(*body.Status)
		change.Status = &status
	}

	p, err := s.service.UpdateProject(r.Context(), body.OwnerID, chi.URLParam(r, "projectID"), change)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeData(w, http.StatusOK, p)
}
