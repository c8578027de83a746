package http

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/vendio/api/internal/core/domain"
	"github.com/vendio/api/internal/core/ports"
)

type identityContextKey struct{}

// IdentityFromContext returns the authenticated identity attached by
// RequireAuth.
func IdentityFromContext(ctx context.Context) (domain.Identity, bool) {
	identity, ok := ctx.Value(identityContextKey{}).(domain.Identity)
	return identity, ok
}

// RequireAuth guards a route with access-token verification. The token
// is read from the accessToken cookie first, then from the
// Authorization header as a bearer token.
func RequireAuth(tokens ports.TokenService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw := accessTokenFromRequest(r)
			if raw == "" {
				writeMessage(w, http.StatusUnauthorized, false,
					"Access token required. Login or send Authorization: Bearer <token> / cookie accessToken.")
				return
			}

			identity, err := tokens.VerifyAccessToken(raw)
			if err != nil {
				message := "Invalid access token."
				if errors.Is(err, domain.ErrTokenExpired) {
					message = "Access token expired."
				}
				writeMessage(w, http.StatusUnauthorized, false, message)
				return
			}

			ctx := context.WithValue(r.Context(), identityContextKey{}, identity)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func accessTokenFromRequest(r *http.Request) string {
	if cookie, err := r.Cookie(accessTokenCookie); err == nil && cookie.Value != "" {
		return cookie.Value
	}

	const bearer = "Bearer "
	if auth := r.Header.Get("Authorization"); strings.HasPrefix(auth, bearer) {
		return auth[len(bearer):]
	}
	return ""
}
