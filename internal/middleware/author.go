package middleware

import (
	"context"
	"net/http"

	"github.com/cpeconf/service/internal/auth"
)

// contextKey is an unexported type for context keys in this package.
type contextKey string

// AuthorKey is the context key for the advisory request author.
const AuthorKey contextKey = "author"

// Author returns middleware that extracts the caller's username from the
// identity cookie and stores it in the request context. The value is never
// verified and serves audit logging only.
func Author(cookieName, fallback string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			author := auth.ExtractAuthor(r, cookieName, fallback)
			ctx := context.WithValue(r.Context(), AuthorKey, author)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// AuthorFrom returns the author stored by Author, or fallback if none is set.
func AuthorFrom(ctx context.Context, fallback string) string {
	if author, ok := ctx.Value(AuthorKey).(string); ok && author != "" {
		return author
	}
	return fallback
}
