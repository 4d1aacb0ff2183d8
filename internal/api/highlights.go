package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

type highlightBody struct {
	AdminID      string `json:"admin_id"`
	Title        string `json:"title"`
	Summary      string `json:"summary"`
	Contributors string `json:"contributors"`
	Featured     bool   `json:"featured"`
}

type featuredBody struct {
	AdminID  string `json:"admin_id"`
	Featured bool   `json:"featured"`
}

// handleListHighlights serves GET /api/highlights?q=&featured=true&limit=
func (s *Server) handleListHighlights(w http.ResponseWriter, r *http.Request) {
	limit, err := queryInt(r, "limit")
	if err != nil {
		s.writeError(w, err)
		return
	}

	q := r.URL.Query()
	if keyword := q.Get("q"); keyword != "" {
		highlights, err := s.service.SearchHighlights(r.Context(), keyword, limit)
		if err != nil {
			s.writeError(w, err)
			return
		}
		writeData(w, http.StatusOK, highlights)
		return
	}

	highlights, err := s.service.ListHighlights(r.Context(), q.Get("featured") == "true", limit)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeData(w, http.StatusOK, highlights)
}

func (s *Server) handleCreateHighlight(w http.ResponseWriter, r *http.Request) {
	var body highlightBody
	if err := decodeBody(r, &body); err != nil {
		s.writeError(w, err)
		return
	}

	h, err := s.service.CreateHighlight(r.Context(), body.AdminID, body.Title, body.Summary, body.Contributors, body.Featured)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeData(w, http.StatusCreated, h)
}

func (s *Server) handleSetFeatured(w http.ResponseWriter, r *http.Request) {
	var body featuredBody
	if err := decodeBody(r, &body); err != nil {
		s.writeError(w, err)
		return
	}

	h, err := s.service.SetFeatured(r.Context(), body.AdminID, chi.URLParam(r, "highlightID"), body.Featured)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeData(w, http.StatusOK, h)
}
