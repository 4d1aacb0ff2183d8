package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/vijay-prabhu/research-connect/internal/database"
)

type postBody struct {
	AuthorID string `json:"author_id"`
	Title    string `json:"title"`
	Content  string `json:"content"`
	Category string `json:"category"`
}

type voteBody struct {
	UserID string `json:"user_id"`
	Vote   string `json:"vote"`
}

// handleListPosts serves GET /api/forum/posts?category=&sort=&limit=
func (s *Server) handleListPosts(w http.ResponseWriter, r *http.Request) {
	limit, err := queryInt(r, "limit")
	if err != nil {
		s.writeError(w, err)
		return
	}

	q := r.URL.Query()
	posts, err := s.service.ListPosts(r.Context(), q.Get("category"), q.Get("sort"), limit)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeData(w, http.StatusOK, posts)
}

func (s *Server) handleCreatePost(w http.ResponseWriter, r *http.Request) {
	var body postBody
	if err := decodeBody(r, &body); err != nil {
		s.writeError(w, err)
		return
	}

	post, err := s.service.CreatePost(r.Context(), body.AuthorID, body.Title, body.Content, body.Category)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeData(w, http.StatusCreated, post)
}

func (s *Server) handleVote(w http.ResponseWriter, r *http.Request) {
	var body voteBody
	if err := decodeBody(r, &body); err != nil {
		s.writeError(w, err)
		return
	}

	post, err := s.service.Vote(r.Context(), body.UserID, chi.URLParam(r, "postID"), database.VoteType(body.Vote))
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeData(w, http.StatusOK, post)
}
