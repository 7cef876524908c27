package middleware

import (
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/tripplanner-backend/internal/domain"
	"github.com/heartmarshall/tripplanner-backend/pkg/ctxutil"
)

type tokenValidator interface {
	ValidateToken(token string) (uuid.UUID, error)
}

// Auth resolves the caller's identity from a Bearer token. Requests without
// a token pass through as anonymous; trip planning works without an account.
// A token that is present but invalid is rejected with 401 so a client with
// an expired session fails loudly instead of silently losing ownership.
func Auth(validator tokenValidator) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := extractBearerToken(r)
			if token == "" {
				next.ServeHTTP(w, r) // anonymous
				return
			}
			userID, err := validator.ValidateToken(token)
			if err != nil {
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}
			ctx := ctxutil.WithIdentity(r.Context(), domain.Authenticated(userID))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func extractBearerToken(r *http.Request) string {
	auth := r.Header.Get("Authorization")
	const prefix = "Bearer "
	if len(auth) < len(prefix) || !strings.EqualFold(auth[:len(prefix)], prefix) {
		return ""
	}
	return strings.TrimSpace(auth[len(prefix):])
}
