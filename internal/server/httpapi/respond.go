package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/akarpovs/tasktracker/internal/common"
)

type messageResponse struct {
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeMessage(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, messageResponse{Message: msg})
}

// writeError maps the error taxonomy onto HTTP responses. Internal failures
// are logged server-side and reported generically; not-found responses are
// identical whether the record is missing or owned by someone else.
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {

	var ve *common.ValidationError
	if errors.As(err, &ve) {
		writeJSON(w, http.StatusBadRequest, messageResponse{Message: ve.Reason, Field: ve.Field})
		return
	}

	switch {
	case errors.Is(err, common.ErrorValidation):
		writeMessage(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, common.ErrorAlreadyExists):
		writeMessage(w, http.StatusConflict, "user with this email already exists")
	case errors.Is(err, common.ErrorUnauthorized):
		writeMessage(w, http.StatusUnauthorized, "invalid credentials")
	case errors.Is(err, common.ErrTokenExpired), errors.Is(err, common.ErrInvalidToken):
		writeMessage(w, http.StatusUnauthorized, "invalid token")
	case errors.Is(err, common.ErrorNotFound):
		writeMessage(w, http.StatusNotFound, "task not found")
	default:
		s.logger.Error(r.Context(), "request failed", "error", err.Error())
		writeMessage(w, http.StatusInternalServerError, "server error")
	}
}
