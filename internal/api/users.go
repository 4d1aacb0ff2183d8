package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/vijay-prabhu/research-connect/internal/database"
	"github.com/vijay-prabhu/research-connect/internal/directory"
	"github.com/vijay-prabhu/research-connect/internal/matching"
)

type registerBody struct {
	Name              string  `json:"name"`
	Email             string  `json:"email"`
	Role              string  `json:"role"`
	Department        string  `json:"department"`
	ResearchInterests *string `json:"research_interests"`
	ExperienceLevel   *string `json:"experience_level"`
	Bio               *string `json:"bio"`
}

type profileBody struct {
	Name              *string `json:"name"`
	Department        *string `json:"department"`
	ResearchInterests *string `json:"research_interests"`
	ExperienceLevel   *string `json:"experience_level"`
	Bio               *string `json:"bio"`
	PhotoPath         *string `json:"photo_path"`
}

func levelFrom(s *string) *matching.ExperienceLevel {
	if s == nil {
		return nil
	}
	l := matching.ExperienceLevel(*s)
	return &l
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var body registerBody
	if err := decodeBody(r, &body); err != nil {
		s.writeError(w, err)
		return
	}

	user, err := s.service.Register(r.Context(), directory.Registration{
		Name:              body.Name,
		Email:             body.Email,
		Role:              database.Role(body.Role),
		Department:        body.Department,
		ResearchInterests: body.ResearchInterests,
		ExperienceLevel:   levelFrom(body.ExperienceLevel),
		Bio:               body.Bio,
	})
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeData(w, http.StatusCreated, user)
}

func (s *Server) handleGetUser(w http.ResponseWriter, r *http.Request) {
	user, err := s.service.GetUser(r.Context(), chi.URLParam(r, "userID"))
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeData(w, http.StatusOK, user)
}

func (s *Server) handleUpdateProfile(w http.ResponseWriter, r *http.Request) {
	var body profileBody
	if err := decodeBody(r, &body); err != nil {
		s.writeError(w, err)
		return
	}

	user, err := s.service.UpdateProfile(r.Context(), chi.URLParam(r, "userID"), database.ProfileUpdate{
		Name:              body.Name,
		Department:        body.Department,
		ResearchInterests: body.ResearchInterests,
		ExperienceLevel:   levelFrom(body.ExperienceLevel),
		Bio:               body.Bio,
		PhotoPath:         body.PhotoPath,
	})
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeData(w, http.StatusOK, user)
}

// handleListUsers serves GET /api/users?role=&department=&q=&limit=
func (s *Server) handleListUsers(w http.ResponseWriter, r *http.Request) {
	limit, err := queryInt(r, "limit")
	if err != nil {
		s.writeError(w, err)
		return
	}

	filter := database.UserFilter{
		Department: queryString(r, "department"),
		Keyword:    queryString(r, "q"),
		Limit:      limit,
	}
	if role := queryString(r, "role"); role != nil {
		rl := database.Role(*role)
		filter.Role = &rl
	}

	users, err := s.service.ListUsers(r.Context(), filter)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeData(w, http.StatusOK, users)
}

func (s *Server) handleDepartments(w http.ResponseWriter, r *http.Request) {
	departments, err := s.service.Departments(r.Context())
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeData(w, http.StatusOK, departments)
}

func (s *Server) handleMatches(w http.ResponseWriter, r *http.Request) {
	kind := directory.MatchKind(chi.URLParam(r, "kind"))
	report, err := s.service.Recommend(r.Context(), kind, chi.URLParam(r, "userID"))
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeData(w, http.StatusOK, report)
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	stats, err := s.service.Stats(r.Context())
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeData(w, http.StatusOK, stats)
}
