package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/hearth-app/hearth/internal/auth"
	"github.com/hearth-app/hearth/internal/domain"
	"github.com/hearth-app/hearth/internal/utils"
)

// Key to store the verified user in the request context
type key int

const userKey key = 0

// NeedAuth verifies the bearer token and injects the subject into the
// request context. Handlers downstream may assume GetUserFromContext
// returns non-nil.
func NeedAuth(verifier auth.TokenVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authz := r.Header.Get("Authorization")
			if !strings.HasPrefix(authz, "Bearer ") {
				utils.WriteJSON(w, http.StatusUnauthorized, map[string]string{"error": "User is not authenticated."})
				return
			}
			token := strings.TrimSpace(strings.TrimPrefix(authz, "Bearer "))

			user, err := verifier.Verify(r.Context(), token)
			if err != nil {
				utils.WriteError(w, err)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithUser(r.Context(), user)))
		})
	}
}

// WithUser returns a context carrying the verified subject. Outside of
// NeedAuth it is only meant for handler tests.
func WithUser(ctx context.Context, user *domain.User) context.Context {
	return context.WithValue(ctx, userKey, user)
}

func GetUserFromContext(r *http.Request) *domain.User {
	user, ok := r.Context().Value(userKey).(*domain.User)
	if !ok {
		return nil
	}
	return user
}
