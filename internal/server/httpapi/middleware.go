package httpapi

import (
	"context"
	"net/http"
	"strings"

	"github.com/akarpovs/tasktracker/internal/common"
	"github.com/akarpovs/tasktracker/internal/server/auth"
)

type ctxKey string

const userIDKey ctxKey = "userID"

// UserIDFromContext returns the account id the auth middleware attached to
// the request context.
func UserIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(userIDKey).(string)
	return id, ok
}

// authMiddleware is the sole authorization checkpoint for task operations.
// It extracts the bearer token, verifies it, and injects the resolved
// account id into the request context. Any failure short-circuits with 401
// and the downstream handler is never invoked.
func (s *Server) authMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {

		header := r.Header.Get(common.AuthorizationHeaderName)
		if header == "" {
			writeMessage(w, http.StatusUnauthorized, "authorization header required")
			return
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || parts[0] != common.BearerPrefix {
			writeMessage(w, http.StatusUnauthorized, "invalid authorization header format")
			return
		}

		userID, err := auth.GetUserIDFromToken(parts[1], s.jwtSecret)
		if err != nil {
			s.writeError(w, r, err)
			return
		}

		ctx := context.WithValue(r.Context(), userIDKey, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
