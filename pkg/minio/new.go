package minio

import (
	"context"
	"io"
	"net/http"
	"sync"
	"time"

	"retain-api/config"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

const (
	maxIdleConns        = 100
	maxIdleConnsPerHost = 100
	idleConnTimeout     = 90 * time.Second
)

// ObjectStore is the object storage surface the service needs: model
// artifacts go in, model artifacts come out.
type ObjectStore interface {
	// Connect establishes a connection and verifies it's working.
	Connect(ctx context.Context) error

	// ConnectWithRetry establishes a connection with retry logic and
	// exponential backoff.
	ConnectWithRetry(ctx context.Context, maxRetries int) error

	// HealthCheck verifies the connection is still healthy.
	HealthCheck(ctx context.Context) error

	// EnsureBucket creates the bucket if it does not exist yet.
	EnsureBucket(ctx context.Context, bucketName string) error

	// Upload stores an object.
	Upload(ctx context.Context, bucketName, objectName string, reader io.Reader, size int64, contentType string) error

	// Download fetches an object. The caller closes the reader.
	Download(ctx context.Context, bucketName, objectName string) (io.ReadCloser, error)

	// Exists checks whether an object is present.
	Exists(ctx context.Context, bucketName, objectName string) (bool, error)

	// Close closes the connection and cleans up resources.
	Close() error
}

// implStore is the implementation of the ObjectStore interface.
type implStore struct {
	minioClient *minio.Client
	config      *config.MinIOConfig
	mu          sync.RWMutex
	connected   bool
}

// New creates an ObjectStore with the provided configuration. The connection
// is lazy; call Connect or ConnectWithRetry before use.
func New(cfg *config.MinIOConfig) (ObjectStore, error) {
	if err := validateConfig(cfg); err != nil {
		return nil, err
	}

	transport := &http.Transport{
		MaxIdleConns:        maxIdleConns,
		MaxIdleConnsPerHost: maxIdleConnsPerHost,
		IdleConnTimeout:     idleConnTimeout,
		DisableCompression:  true,
	}

	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:     credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure:    cfg.UseSSL,
		Region:    cfg.Region,
		Transport: transport,
	})
	if err != nil {
		return nil, NewConnectionError(err)
	}

	return &implStore{
		minioClient: client,
		config:      cfg,
	}, nil
}

func validateConfig(cfg *config.MinIOConfig) error {
	if cfg == nil {
		return NewInvalidInputError("config is required")
	}
	if cfg.Endpoint == "" {
		return NewInvalidInputError("endpoint is required")
	}
	if cfg.AccessKey == "" || cfg.SecretKey == "" {
		return NewInvalidInputError("access key and secret key are required")
	}
	return nil
}
