package auth_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/cpeconf/service/internal/auth"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

const fallback = "unknown"

func signed(t *testing.T, claims jwt.MapClaims, secret string) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}

func requestWithCookie(value string) *http.Request {
	r := httptest.NewRequest(http.MethodPost, "/method/UploadConfig", nil)
	r.AddCookie(&http.Cookie{Name: "jwt", Value: value})
	return r
}

func TestExtractAuthorFromCookie(t *testing.T) {
	t.Parallel()

	token := signed(t, jwt.MapClaims{"username": "alice"}, "any-secret")
	require.Equal(t, "alice", auth.ExtractAuthor(requestWithCookie(token), "jwt", fallback))
}

func TestExtractAuthorIgnoresSignature(t *testing.T) {
	t.Parallel()

	// Signed with a key the service never sees; the claim is still read.
	token := signed(t, jwt.MapClaims{"username": "bob"}, "foreign-secret")
	token = token[:len(token)-4] + "AAAA"
	require.Equal(t, "bob", auth.ExtractAuthor(requestWithCookie(token), "jwt", fallback))
}

func TestExtractAuthorFallbacks(t *testing.T) {
	t.Parallel()

	noCookie := httptest.NewRequest(http.MethodPost, "/", nil)
	require.Equal(t, fallback, auth.ExtractAuthor(noCookie, "jwt", fallback))

	cases := map[string]string{
		"empty":          "",
		"garbage":        "not-a-token",
		"bad segments":   "a.b.c",
		"missing claim":  signed(t, jwt.MapClaims{"sub": "42"}, "s"),
		"non-string":     signed(t, jwt.MapClaims{"username": 42}, "s"),
		"empty username": signed(t, jwt.MapClaims{"username": ""}, "s"),
	}
	for name, value := range cases {
		t.Run(name, func(t *testing.T) {
			require.Equal(t, fallback, auth.ExtractAuthor(requestWithCookie(value), "jwt", fallback))
		})
	}
}

func TestExtractAuthorOtherCookieName(t *testing.T) {
	t.Parallel()

	token := signed(t, jwt.MapClaims{"username": "carol"}, "s")
	r := httptest.NewRequest(http.MethodPost, "/", nil)
	r.AddCookie(&http.Cookie{Name: "session", Value: token})

	require.Equal(t, "carol", auth.ExtractAuthor(r, "session", fallback))
	require.Equal(t, fallback, auth.ExtractAuthor(r, "jwt", fallback))
}
