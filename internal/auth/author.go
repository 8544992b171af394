// Package auth reads caller identity from inbound requests.
package auth

import (
	"net/http"

	"github.com/golang-jwt/jwt/v5"
)

// ExtractAuthor returns the "username" claim of the JWT stored in the named cookie,
// or fallback when the cookie is absent, the token is malformed or the claim is missing.
//
// The token signature is NOT verified. The result is advisory, meant for audit
// logs only, and must never be used for access control.
func ExtractAuthor(r *http.Request, cookieName, fallback string) string {
	cookie, err := r.Cookie(cookieName)
	if err != nil || cookie.Value == "" {
		return fallback
	}

	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(cookie.Value, claims); err != nil {
		return fallback
	}

	username, ok := claims["username"].(string)
	if !ok || username == "" {
		return fallback
	}
	return username
}
