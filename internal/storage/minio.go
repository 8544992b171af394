package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"syscall"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// MinioOptions configures the connection to an S3-compatible endpoint.
type MinioOptions struct {
	// Endpoint is a URL such as "https://s3.example.com". A bare "host:port" is
	// treated as plain HTTP.
	Endpoint  string
	Region    string
	AccessKey string
	SecretKey string
}

// MinioStorage implements Storage using a MinIO (or any S3-compatible) backend.
type MinioStorage struct {
	client    *minio.Client
	transport *http.Transport
}

// NewMinioStorage creates a MinIO client for the given endpoint. No request is
// made until the first write.
func NewMinioStorage(opts MinioOptions) (*MinioStorage, error) {
	host, secure, err := splitEndpoint(opts.Endpoint)
	if err != nil {
		return nil, err
	}

	transport, err := minio.DefaultTransport(secure)
	if err != nil {
		return nil, fmt.Errorf("create transport: %w", err)
	}

	client, err := minio.New(host, &minio.Options{
		Creds:     credentials.NewStaticV4(opts.AccessKey, opts.SecretKey, ""),
		Secure:    secure,
		Region:    opts.Region,
		Transport: transport,
		// Failures are reported to the caller on the first attempt.
		MaxRetries: 1,
	})
	if err != nil {
		return nil, fmt.Errorf("create minio client: %w", err)
	}

	return &MinioStorage{client: client, transport: transport}, nil
}

// PutObject uploads body to bucket under key. Connection failures are wrapped
// in ErrUnreachable.
func (s *MinioStorage) PutObject(ctx context.Context, bucket, key string, body []byte, contentType string) error {
	if bucket == "" {
		return ErrNoBucket
	}

	_, err := s.client.PutObject(ctx, bucket, key, bytes.NewReader(body), int64(len(body)), minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		if isUnreachable(err) {
			return fmt.Errorf("%w: put object %q: %v", ErrUnreachable, key, err)
		}
		return fmt.Errorf("put object %q: %w", key, err)
	}
	return nil
}

// Close releases idle connections held by the client.
func (s *MinioStorage) Close() {
	s.transport.CloseIdleConnections()
}

func splitEndpoint(endpoint string) (host string, secure bool, err error) {
	if endpoint == "" {
		return "", false, errors.New("storage endpoint is empty")
	}

	u, err := url.Parse(endpoint)
	if err != nil || u.Host == "" {
		// "minio:9000" parses with "minio" as the scheme.
		return endpoint, false, nil
	}

	switch u.Scheme {
	case "https":
		return u.Host, true, nil
	case "http":
		return u.Host, false, nil
	default:
		return "", false, fmt.Errorf("unsupported storage endpoint scheme %q", u.Scheme)
	}
}

// isUnreachable reports whether err means no connection to the endpoint was made.
func isUnreachable(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, syscall.ECONNREFUSED) || errors.Is(err, syscall.EHOSTUNREACH) || errors.Is(err, syscall.ENETUNREACH) {
		return true
	}
	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return true
	}
	var opErr *net.OpError
	return errors.As(err, &opErr) && opErr.Op == "dial"
}
