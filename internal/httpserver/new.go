package httpserver

import (
	"database/sql"
	"errors"

	"retain-api/internal/scoring"
	"retain-api/pkg/discord"
	"retain-api/pkg/log"
	"retain-api/pkg/minio"
	"retain-api/pkg/scope"

	"github.com/gin-gonic/gin"
)

// HTTPServer represents the HTTP server with all dependencies.
// New() only wires dependencies and validates them.
// Run() (in httpserver.go) is responsible for starting the HTTP serving loop.
type HTTPServer struct {
	// Server configuration
	gin  *gin.Engine
	l    log.Logger
	port int
	mode string

	// Domain
	scoringUC scoring.UseCase

	// Auth & security
	jwtManager      scope.Manager
	internalKeyHash string

	// External services
	db      *sql.DB
	store   minio.ObjectStore
	discord discord.IDiscord
}

// Config is the constructor input for HTTPServer.
// Keep this minimal: only fields really needed by HTTPServer.
type Config struct {
	// Server configuration
	Port int
	Mode string

	// Domain
	ScoringUC scoring.UseCase

	// Auth & security
	JWTManager      scope.Manager
	InternalKeyHash string

	// External services
	DB      *sql.DB
	Store   minio.ObjectStore
	Discord discord.IDiscord
}

// New creates a new HTTPServer instance with the provided configuration.
// Note: This does NOT start any goroutines. Use (*HTTPServer).Run() to start serving.
func New(l log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		gin:  gin.New(),
		l:    l,
		port: cfg.Port,
		mode: cfg.Mode,

		scoringUC: cfg.ScoringUC,

		jwtManager:      cfg.JWTManager,
		internalKeyHash: cfg.InternalKeyHash,

		db:      cfg.DB,
		store:   cfg.Store,
		discord: cfg.Discord,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

// validate ensures all required dependencies are provided.
// Store and Discord are optional; the service degrades without them.
func (s *HTTPServer) validate() error {
	if s.l == nil {
		return errors.New("logger is required")
	}
	if s.port == 0 {
		return errors.New("port is required")
	}
	if s.scoringUC == nil {
		return errors.New("scoring usecase is required")
	}
	if s.jwtManager == nil {
		return errors.New("JWTManager is required")
	}
	if s.db == nil {
		return errors.New("database is required")
	}

	return nil
}
