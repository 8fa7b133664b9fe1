package minio

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/minio/minio-go/v7"
)

const (
	connectTimeout   = 10 * time.Second
	baseRetryBackoff = 2 * time.Second
	maxRetryBackoff  = 30 * time.Second
)

// Connect verifies connectivity by listing buckets.
func (s *implStore) Connect(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.connected {
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	if _, err := s.minioClient.ListBuckets(ctx); err != nil {
		return NewConnectionError(err)
	}

	s.connected = true
	return nil
}

// ConnectWithRetry retries Connect with exponential backoff.
func (s *implStore) ConnectWithRetry(ctx context.Context, maxRetries int) error {
	if maxRetries <= 0 {
		maxRetries = 1
	}

	var lastErr error
	backoff := baseRetryBackoff
	for attempt := 1; attempt <= maxRetries; attempt++ {
		lastErr = s.Connect(ctx)
		if lastErr == nil {
			return nil
		}

		if attempt == maxRetries {
			break
		}

		select {
		case <-ctx.Done():
			return NewConnectionError(ctx.Err())
		case <-time.After(backoff):
		}

		backoff *= 2
		if backoff > maxRetryBackoff {
			backoff = maxRetryBackoff
		}
	}

	return NewConnectionError(fmt.Errorf("failed after %d attempts: %w", maxRetries, lastErr))
}

// HealthCheck verifies the connection is still healthy.
func (s *implStore) HealthCheck(ctx context.Context) error {
	s.mu.RLock()
	connected := s.connected
	s.mu.RUnlock()

	if !connected {
		return NewConnectionError(fmt.Errorf("not connected"))
	}

	if _, err := s.minioClient.ListBuckets(ctx); err != nil {
		s.mu.Lock()
		s.connected = false
		s.mu.Unlock()
		return NewConnectionError(err)
	}

	return nil
}

// EnsureBucket creates the bucket if it does not exist yet.
func (s *implStore) EnsureBucket(ctx context.Context, bucketName string) error {
	if bucketName == "" {
		return NewInvalidInputError("bucket name is required")
	}

	exists, err := s.minioClient.BucketExists(ctx, bucketName)
	if err != nil {
		return NewConnectionError(err)
	}
	if exists {
		return nil
	}

	if err := s.minioClient.MakeBucket(ctx, bucketName, minio.MakeBucketOptions{Region: s.config.Region}); err != nil {
		return &StorageError{
			Code:      ErrCodeConnection,
			Message:   "Failed to create bucket: " + bucketName,
			Operation: "EnsureBucket",
			Cause:     err,
		}
	}

	return nil
}

// Upload stores an object.
func (s *implStore) Upload(ctx context.Context, bucketName, objectName string, reader io.Reader, size int64, contentType string) error {
	if bucketName == "" || objectName == "" {
		return NewInvalidInputError("bucket name and object name are required")
	}

	opts := minio.PutObjectOptions{ContentType: contentType}
	if _, err := s.minioClient.PutObject(ctx, bucketName, objectName, reader, size, opts); err != nil {
		return &StorageError{
			Code:      ErrCodeConnection,
			Message:   "Failed to upload object: " + objectName,
			Operation: "Upload",
			Cause:     err,
		}
	}

	return nil
}

// Download fetches an object. The caller closes the reader.
func (s *implStore) Download(ctx context.Context, bucketName, objectName string) (io.ReadCloser, error) {
	if bucketName == "" || objectName == "" {
		return nil, NewInvalidInputError("bucket name and object name are required")
	}

	obj, err := s.minioClient.GetObject(ctx, bucketName, objectName, minio.GetObjectOptions{})
	if err != nil {
		return nil, NewConnectionError(err)
	}

	// GetObject is lazy; stat to surface not-found before the caller reads.
	if _, err := obj.Stat(); err != nil {
		obj.Close()
		resp := minio.ToErrorResponse(err)
		switch resp.Code {
		case "NoSuchKey":
			return nil, NewObjectNotFoundError(objectName)
		case "NoSuchBucket":
			return nil, NewBucketNotFoundError(bucketName)
		}
		return nil, NewConnectionError(err)
	}

	return obj, nil
}

// Exists checks whether an object is present.
func (s *implStore) Exists(ctx context.Context, bucketName, objectName string) (bool, error) {
	if bucketName == "" || objectName == "" {
		return false, NewInvalidInputError("bucket name and object name are required")
	}

	_, err := s.minioClient.StatObject(ctx, bucketName, objectName, minio.StatObjectOptions{})
	if err != nil {
		resp := minio.ToErrorResponse(err)
		if resp.Code == "NoSuchKey" || resp.Code == "NoSuchBucket" {
			return false, nil
		}
		return false, NewConnectionError(err)
	}

	return true, nil
}

// Close marks the connection as closed. The underlying HTTP client has no
// explicit close.
func (s *implStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.connected = false
	return nil
}
