package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"go.uber.org/zap"

	"github.com/vijay-prabhu/research-connect/internal/database"
	"github.com/vijay-prabhu/research-connect/internal/directory"
	"github.com/vijay-prabhu/research-connect/internal/requests"
)

// Response is the envelope of every API reply
type Response struct {
	Code    int         `json:"code"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

// errBadRequest marks malformed query strings and bodies
var errBadRequest = errors.New("bad request")

func writeJSON(w http.ResponseWriter, status int, resp Response) {
	resp.Code = status
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	encoder.Encode(resp)
}

func writeData(w http.ResponseWriter, status int, data interface{}) {
	writeJSON(w, status, Response{Data: data})
}

// statusFor maps service errors onto HTTP status codes
func statusFor(err error) int {
	switch {
	case errors.Is(err, database.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, directory.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, directory.ErrInvalidInput), errors.Is(err, errBadRequest):
		return http.StatusBadRequest
	case errors.Is(err, directory.ErrEmailTaken),
		errors.Is(err, requests.ErrAlreadyPending),
		errors.Is(err, requests.ErrAlreadyAccepted),
		errors.Is(err, requests.ErrInvalidTransition):
		return http.StatusConflict
	case errors.Is(err, directory.ErrProfileIncomplete):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) writeError(w http.ResponseWriter, err error) {
	status := statusFor(err)
	message := err.Error()
	if status == http.StatusInternalServerError {
		s.logger.Error("request failed", zap.Error(err))
		message = "internal server error"
	}
	writeJSON(w, status, Response{Message: message})
}

func decodeBody(r *http.Request, v interface{}) error {
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(v); err != nil {
		return fmt.Errorf("%w: invalid JSON body: %v", errBadRequest, err)
	}
	return nil
}

// queryInt parses an optional integer query parameter
func queryInt(r *http.Request, name string) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("%w: %s must be a non-negative integer", errBadRequest, name)
	}
	return n, nil
}

// queryString returns a pointer to a non-empty query parameter
func queryString(r *http.Request, name string) *string {
	if v := r.URL.Query().Get(name); v != "" {
		return &v
	}
	return nil
}
