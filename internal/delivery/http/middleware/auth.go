package middleware

import (
	"net/http"
	"strings"

	h "contacthub/internal/delivery/http/helpers"
	"contacthub/internal/domain"
)

// RequireAdmin returns a wrapper that validates the Bearer token before
// calling next. If the token is missing, invalid, or not an admin token,
// it responds with 401 and does not call next.
func RequireAdmin(verifier domain.TokenVerifier) func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			auth := r.Header.Get("Authorization")
			const prefix = "Bearer "
			if !strings.HasPrefix(auth, prefix) {
				h.WriteError(w, http.StatusUnauthorized, "missing or invalid authorization header")
				return
			}
			token := strings.TrimSpace(auth[len(prefix):])
			if token == "" {
				h.WriteError(w, http.StatusUnauthorized, "missing token")
				return
			}
			subject, err := verifier.Verify(token)
			if err != nil || subject != "admin" {
				h.WriteError(w, http.StatusUnauthorized, "invalid or expired token")
				return
			}
			next(w, r)
		}
	}
}
