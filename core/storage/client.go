package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

var (
	// ErrBucketNotFound is returned when the export bucket does not exist.
	ErrBucketNotFound = errors.New("bucket not found")
	// ErrObjectNotFound is returned when an export object does not exist.
	ErrObjectNotFound = errors.New("object not found")
)

// Client reads registry exports from a bucket.
type Client interface {
	// BucketExists checks if a bucket exists.
	BucketExists(ctx context.Context, bucket string) (bool, error)
	// OpenObject opens an object for reading. A missing object yields ErrObjectNotFound.
	OpenObject(ctx context.Context, bucket, object string) (io.ReadCloser, error)
}

// NewClient creates a MinIO backed client.
func NewClient(cfg Config) (Client, error) {
	// MinIO expects the endpoint without scheme
	endpoint := strings.TrimPrefix(cfg.Endpoint, "http://")
	endpoint = strings.TrimPrefix(endpoint, "https://")

	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	// Bound connection setup and the wait for the first byte; bodies may stream longer
	transport := &http.Transport{
		Proxy:                 http.ProxyFromEnvironment,
		DialContext:           (&net.Dialer{Timeout: timeout, KeepAlive: 30 * time.Second}).DialContext,
		MaxIdleConns:          4,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   timeout,
		ResponseHeaderTimeout: timeout,
	}

	mc, err := minio.New(endpoint, &minio.Options{
		Creds:     credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure:    cfg.UseSSL,
		Region:    cfg.Region,
		Transport: transport,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create minio client: %w", err)
	}

	return &minioStore{mc: mc}, nil
}

type minioStore struct {
	mc *minio.Client
}

func (s *minioStore) BucketExists(ctx context.Context, bucket string) (bool, error) {
	return s.mc.BucketExists(ctx, bucket)
}

// OpenObject stats the object before returning it, since minio defers errors
// to the first read.
func (s *minioStore) OpenObject(ctx context.Context, bucket, object string) (io.ReadCloser, error) {
	obj, err := s.mc.GetObject(ctx, bucket, object, minio.GetObjectOptions{})
	if err != nil {
		return nil, objectError(err, bucket, object)
	}
	if _, err := obj.Stat(); err != nil {
		_ = obj.Close()
		return nil, objectError(err, bucket, object)
	}
	return obj, nil
}

// objectError maps S3 error codes to the package's sentinel errors.
func objectError(err error, bucket, object string) error {
	switch minio.ToErrorResponse(err).Code {
	case "NoSuchKey":
		return fmt.Errorf("%s/%s: %w", bucket, object, ErrObjectNotFound)
	case "NoSuchBucket":
		return fmt.Errorf("%s: %w", bucket, ErrBucketNotFound)
	default:
		return fmt.Errorf("failed to open %s/%s: %w", bucket, object, err)
	}
}
