// Package upload stores base64-encoded config files in the configs bucket.
package upload

import (
	"context"
	"encoding/base64"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/cpeconf/service/internal/audit"
	"github.com/cpeconf/service/internal/config"
	"github.com/cpeconf/service/internal/response"
	"github.com/cpeconf/service/internal/storage"
)

// ContentType is sent with every object regardless of what the payload contains.
const ContentType = "text/plain"

const ignoreMarker = ".ignore"

// DefaultStorageTimeout bounds a single storage write when no timeout is configured.
const DefaultStorageTimeout = 20 * time.Second

// Response details.
const (
	DetailsInvalidIdentifier = "Invalid identifier"
	DetailsInvalidFilename   = "Invalid filename"
	DetailsDecodeFailed      = "Error while decoding filecontent"
	DetailsUnreachable       = "Could not connect to the config file storage"
	DetailsUploadFailed      = "Unable to upload a file"
)

// Request is a single upload.
type Request struct {
	Identifier  string
	Filename    string
	FileContent string
	Author      string
}

// Result is the outcome of Upload: the transport status and the embedded result.
type Result struct {
	Status int
	Body   response.Result
}

// Service contains the upload flow.
type Service struct {
	store    storage.Storage
	settings config.StorageSettings
	recorder audit.Recorder
	timeout  time.Duration
}

// Option configures a Service.
type Option func(*Service)

// WithStorageTimeout bounds each storage write. It must stay below the HTTP
// server's write timeout so the failure response still reaches the client.
// Non-positive values keep DefaultStorageTimeout.
func WithStorageTimeout(d time.Duration) Option {
	return func(s *Service) {
		if d > 0 {
			s.timeout = d
		}
	}
}

// NewService creates a new upload Service. A nil recorder disables the audit trail.
func NewService(store storage.Storage, settings config.StorageSettings, recorder audit.Recorder, opts ...Option) *Service {
	if recorder == nil {
		recorder = audit.Noop{}
	}
	s := &Service{store: store, settings: settings, recorder: recorder, timeout: DefaultStorageTimeout}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ObjectKey builds "{prefix}{identifier}/{filename}" without any normalization.
func ObjectKey(prefix, identifier, filename string) string {
	return prefix + FileID(identifier, filename)
}

// FileID is the object name reported back to callers, without the bucket prefix.
func FileID(identifier, filename string) string {
	return identifier + "/" + filename
}

// Upload validates req, decodes the payload and writes it to storage.
// Validation and decode failures are reported with transport status 200 and
// never reach storage. Existing objects at the same key are overwritten.
func (s *Service) Upload(ctx context.Context, req Request) Result {
	fileID := FileID(req.Identifier, req.Filename)
	key := ObjectKey(s.settings.Prefix, req.Identifier, req.Filename)
	logger := slog.With("identifier", req.Identifier, "key", key, "author", req.Author)
	logger.Info("upload started")

	entry := audit.Entry{
		Author:     req.Author,
		Identifier: req.Identifier,
		Filename:   req.Filename,
		Key:        key,
	}

	if strings.Contains(req.Identifier, "/") || strings.Contains(req.Identifier, ignoreMarker) {
		logger.Warn("rejected identifier")
		return s.finish(ctx, entry, http.StatusOK, response.Unprocessable(DetailsInvalidIdentifier))
	}
	if strings.Contains(req.Filename, ignoreMarker) {
		logger.Warn("rejected filename", "filename", req.Filename)
		return s.finish(ctx, entry, http.StatusOK, response.Unprocessable(DetailsInvalidFilename))
	}

	body, err := base64.StdEncoding.DecodeString(req.FileContent)
	if err != nil {
		logger.Warn("decode filecontent", "length", len(req.FileContent), "error", err)
		return s.finish(ctx, entry, http.StatusOK, response.BadRequest(DetailsDecodeFailed))
	}
	entry.Size = len(body)

	putCtx, cancel := context.WithTimeout(ctx, s.timeout)
	err = s.store.PutObject(putCtx, s.settings.Bucket, key, body, ContentType)
	cancel()
	switch {
	case err == nil:
		logger.Info("file uploaded", "bucket", s.settings.Bucket, "size", len(body))
		return s.finish(ctx, entry, http.StatusOK, response.OK("File successfully uploaded to "+fileID))
	case errors.Is(err, storage.ErrUnreachable):
		logger.Error("unable to reach storage", "prefix", s.settings.Prefix, "error", err)
		return s.finish(ctx, entry, http.StatusInternalServerError, response.InternalError(DetailsUnreachable))
	default:
		logger.Error("upload failed", "bucket", s.settings.Bucket, "size", len(body), "error", err)
		return s.finish(ctx, entry, http.StatusInternalServerError, response.InternalError(DetailsUploadFailed))
	}
}

func (s *Service) finish(ctx context.Context, entry audit.Entry, status int, body response.Result) Result {
	entry.Code = body.Code
	entry.Details = body.Details
	// The entry is written even if the client has already gone away.
	if err := s.recorder.Record(context.WithoutCancel(ctx), entry); err != nil {
		slog.Error("record audit entry", "identifier", entry.Identifier, "key", entry.Key, "error", err)
	}
	return Result{Status: status, Body: body}
}
