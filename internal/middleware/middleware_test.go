package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/cpeconf/service/internal/middleware"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

func TestAuthorStoresUsernameInContext(t *testing.T) {
	t.Parallel()

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"username": "alice"}).
		SignedString([]byte("secret"))
	require.NoError(t, err)

	var got string
	h := middleware.Author("jwt", "unknown")(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = middleware.AuthorFrom(r.Context(), "nobody")
	}))

	r := httptest.NewRequest(http.MethodPost, "/", nil)
	r.AddCookie(&http.Cookie{Name: "jwt", Value: token})
	h.ServeHTTP(httptest.NewRecorder(), r)
	require.Equal(t, "alice", got)

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/", nil))
	require.Equal(t, "unknown", got)
}

func TestAuthorFromEmptyContext(t *testing.T) {
	t.Parallel()

	require.Equal(t, "nobody", middleware.AuthorFrom(context.Background(), "nobody"))
}

func TestLoggerKeepsStatus(t *testing.T) {
	t.Parallel()

	h := middleware.Logger(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	require.Equal(t, http.StatusTeapot, rec.Code)
}
