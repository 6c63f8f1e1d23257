package middleware

import (
	"net/http"
	"strings"

	"github.com/templui/taskboard/internal/ctxkeys"
	"github.com/templui/taskboard/internal/response"
)

// TokenVerifier resolves a bearer token to a user id.
type TokenVerifier interface {
	VerifyToken(token string) (string, bool)
}

// AuthMiddleware checks for a bearer token and adds the user id to the context if valid.
// Requests without a valid token continue anonymously; RequireAuth rejects them.
func AuthMiddleware(verifier TokenVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := bearerToken(r)
			if !ok {
				next.ServeHTTP(w, r)
				return
			}

			userID, ok := verifier.VerifyToken(token)
			if !ok {
				next.ServeHTTP(w, r)
				return
			}

			if rw, ok := w.(*responseWriter); ok {
				rw.userID = userID
			}

			ctx := ctxkeys.WithUserID(r.Context(), userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireAuth ensures the request carries a verified user id
func RequireAuth(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if ctxkeys.UserID(r.Context()) != "" {
			next.ServeHTTP(w, r)
			return
		}

		if _, ok := bearerToken(r); !ok {
			response.Error(w, http.StatusUnauthorized, "No token provided")
			return
		}
		response.Error(w, http.StatusUnauthorized, "Invalid or expired token")
	}
}

func bearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}
