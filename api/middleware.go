package api

import (
	"net/http"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// RequireAuth gates mutating routes behind a bearer token. The configured
// value is a bcrypt hash, so the plaintext token never lives in config. An
// empty hash disables the gate entirely (development only; Load refuses it
// in production).
func (a *API) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if a.cfg.Auth.TokenHash == "" {
			next.ServeHTTP(w, r)
			return
		}

		header := r.Header.Get("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			respondError(w, http.StatusUnauthorized, "Unauthorized: missing or invalid token")
			return
		}

		token := strings.TrimPrefix(header, "Bearer ")
		if err := bcrypt.CompareHashAndPassword([]byte(a.cfg.Auth.TokenHash), []byte(token)); err != nil {
			respondError(w, http.StatusForbidden, "Forbidden: invalid token")
			return
		}

		next.ServeHTTP(w, r)
	})
}
