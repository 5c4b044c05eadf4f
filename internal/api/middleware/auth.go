package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/viniciusmog/daily-diet-api/internal/domain"
	"github.com/viniciusmog/daily-diet-api/internal/logger"
	"github.com/viniciusmog/daily-diet-api/internal/service"
)

// SessionCookieName is the cookie carrying the opaque session token.
const SessionCookieName = "sessionId"

type contextKey string

const (
	UserIDKey contextKey = "userID"
)

// Auth resolves the session cookie to a user and stores the user id in the
// request context. A missing cookie, an unparseable token and an unknown
// token all produce the same 401; the caller never learns which it was.
func Auth(authService *service.AuthService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(SessionCookieName)
			if err != nil {
				unauthorized(w)
				return
			}

			sessionID, err := uuid.Parse(cookie.Value)
			if err != nil {
				unauthorized(w)
				return
			}

			user, err := authService.ResolveSession(r.Context(), sessionID)
			if err != nil {
				if errors.Is(err, domain.ErrUnauthenticated) {
					unauthorized(w)
					return
				}
				logger.Log.Errorf("session resolution failed: %v", err)
				http.Error(w, "Internal server error", http.StatusInternalServerError)
				return
			}

			ctx := context.WithValue(r.Context(), UserIDKey, user.ID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func GetUserID(ctx context.Context) (uuid.UUID, bool) {
	userID, ok := ctx.Value(UserIDKey).(uuid.UUID)
	return userID, ok
}

func unauthorized(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(map[string]string{"error": "Unauthorized"})
}
