// Package audit records upload attempts.
package audit

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Entry is one upload attempt, successful or not.
type Entry struct {
	ID         string
	Author     string
	Identifier string
	Filename   string
	Key        string
	Size       int
	Code       int
	Details    string
	CreatedAt  time.Time
}

// Recorder persists audit entries.
type Recorder interface {
	Record(ctx context.Context, e Entry) error
}

// Noop discards every entry. It is used when no audit database is configured.
type Noop struct{}

// Record does nothing.
func (Noop) Record(context.Context, Entry) error { return nil }

// Repository stores entries in the upload_audit table.
type Repository struct {
	db *pgxpool.Pool
}

// NewRepository creates a new audit Repository with the given connection pool.
func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

// Record inserts e, assigning an ID and timestamp when they are unset.
func (r *Repository) Record(ctx context.Context, e Entry) error {
	e = withDefaults(e)
	_, err := r.db.Exec(ctx,
		`INSERT INTO upload_audit
		   (id, author, identifier, filename, object_key, size_bytes, result_code, details, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		e.ID, e.Author, e.Identifier, e.Filename, e.Key, e.Size, e.Code, e.Details, e.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert audit entry: %w", err)
	}
	return nil
}

func withDefaults(e Entry) Entry {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now().UTC()
	}
	return e
}
