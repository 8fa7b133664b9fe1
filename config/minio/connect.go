package minio

import (
	"context"
	"fmt"
	"sync"
	"time"

	"retain-api/config"
	miniopkg "retain-api/pkg/minio"
)

const (
	// defaultConnectTimeout is the maximum time to wait for initial connection
	defaultConnectTimeout = 5 * time.Second
	// defaultMaxRetries is the default number of retry attempts
	defaultMaxRetries = 3
)

var (
	instance miniopkg.ObjectStore
	once     sync.Once
	mu       sync.RWMutex
	initErr  error // Stores the last initialization error to allow retry
)

// Connect initializes and connects to the object store using a singleton.
// If connection fails, it can be retried by calling Connect() again.
// Returns the existing instance if already connected.
func Connect(ctx context.Context, cfg config.MinIOConfig) (miniopkg.ObjectStore, error) {
	mu.Lock()
	defer mu.Unlock()

	if instance != nil {
		return instance, nil
	}

	// Reset sync.Once if previous initialization failed to allow retry
	if initErr != nil {
		once = sync.Once{}
		initErr = nil
	}

	var err error
	once.Do(func() {
		connectCtx, cancel := context.WithTimeout(ctx, defaultConnectTimeout)
		defer cancel()

		fmt.Printf("[MinIO] Connecting to %s (SSL: %v, Region: %s)...\n",
			cfg.Endpoint, cfg.UseSSL, cfg.Region)

		store, storeErr := miniopkg.New(&cfg)
		if storeErr != nil {
			err = fmt.Errorf("failed to create object store: %w", storeErr)
			initErr = err
			return
		}

		if connectErr := store.Connect(connectCtx); connectErr != nil {
			err = fmt.Errorf("failed to connect to MinIO: %w", connectErr)
			initErr = err
			return
		}

		instance = store
		fmt.Printf("[MinIO] Connected to %s\n", cfg.Endpoint)
	})

	return instance, err
}

// ConnectWithRetry initializes and connects to the object store with retry
// logic and exponential backoff.
func ConnectWithRetry(ctx context.Context, cfg config.MinIOConfig, maxRetries int) (miniopkg.ObjectStore, error) {
	if maxRetries <= 0 {
		maxRetries = defaultMaxRetries
	}

	var lastErr error
	for i := 0; i < maxRetries; i++ {
		store, err := Connect(ctx, cfg)
		if err == nil {
			return store, nil
		}

		lastErr = err
		if i < maxRetries-1 {
			backoff := time.Duration(1<<uint(i)) * time.Second
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(backoff):
			}
		}
	}

	return nil, fmt.Errorf("failed to connect after %d retries: %w", maxRetries, lastErr)
}

// GetClient returns the singleton object store instance.
// Panics if the store has not been initialized by calling Connect() first.
func GetClient() miniopkg.ObjectStore {
	mu.RLock()
	defer mu.RUnlock()

	if instance == nil {
		panic("Object store not initialized. Call Connect() first")
	}
	return instance
}

// Disconnect closes the object store connection and resets the singleton.
func Disconnect(ctx context.Context) error {
	mu.Lock()
	defer mu.Unlock()

	if instance != nil {
		if err := instance.Close(); err != nil {
			return fmt.Errorf("failed to close object store: %w", err)
		}

		instance = nil
		initErr = nil
		once = sync.Once{} // Reset to allow reconnection
	}
	return nil
}

// HealthCheck verifies the object store connection.
func HealthCheck(ctx context.Context) error {
	mu.RLock()
	defer mu.RUnlock()

	if instance == nil {
		return fmt.Errorf("object store not initialized")
	}

	return instance.HealthCheck(ctx)
}
