// Package storage defines the interface for object storage operations.
// The MinIO implementation works with any S3-compatible provider.
package storage

import (
	"context"
	"errors"
)

// ErrUnreachable is returned when the storage endpoint cannot be reached at all.
var ErrUnreachable = errors.New("storage endpoint unreachable")

// ErrNoBucket is returned when no target bucket is configured.
var ErrNoBucket = errors.New("storage bucket is not configured")

// Storage writes objects to a bucket.
type Storage interface {
	// PutObject stores body under key in bucket, replacing any existing object.
	PutObject(ctx context.Context, bucket, key string, body []byte, contentType string) error
}
