package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/watchearn/watchearn/pkg/utils"
)

type ContextKey string

const UserIDKey ContextKey = "userID"

// SessionChecker reports whether a token still has a live server-side session.
type SessionChecker interface {
	IsSessionActive(ctx context.Context, token string) (bool, error)
}

// Middleware authenticates requests with a bearer token: the JWT must verify
// and the token must still be backed by an unexpired session row.
func Middleware(sessions SessionChecker) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
				utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
				return
			}

			token := strings.TrimPrefix(authHeader, "Bearer ")
			jwtService := &JWTService{}
			claims, err := jwtService.ValidateToken(token)
			if err != nil {
				utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
				return
			}

			active, err := sessions.IsSessionActive(r.Context(), token)
			if err != nil || !active {
				utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
				return
			}

			ctx := context.WithValue(r.Context(), UserIDKey, claims.UserID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
