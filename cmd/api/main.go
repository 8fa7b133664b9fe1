package main

import (
	"context"
	"fmt"

	"retain-api/config"
	configMinio "retain-api/config/minio"
	"retain-api/config/postgre"
	"retain-api/internal/alert"
	alertUsecase "retain-api/internal/alert/usecase"
	"retain-api/internal/classifier"
	"retain-api/internal/httpserver"
	"retain-api/internal/revenue"
	"retain-api/internal/scoring"
	scoringRepository "retain-api/internal/scoring/repository/postgre"
	scoringUsecase "retain-api/internal/scoring/usecase"
	"retain-api/internal/threshold"
	"retain-api/pkg/discord"
	"retain-api/pkg/log"
	miniopkg "retain-api/pkg/minio"
	"retain-api/pkg/scope"
)

// @title       Retain API
// @description Churn risk decision service: scoring, revenue impact, and threshold calibration.
// @version     1.0
// @host        localhost:8080
// @schemes     http
// @BasePath    /
//
// @securityDefinitions.apikey BearerAuth
// @in   header
// @name Authorization
func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// Initialize logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx := context.Background()

	// Initialize PostgreSQL
	postgresDB, err := postgre.Connect(ctx, cfg.Postgres)
	if err != nil {
		logger.Error(ctx, "Failed to connect to PostgreSQL: ", err)
		return
	}
	defer postgre.Disconnect(ctx, postgresDB)
	logger.Infof(ctx, "PostgreSQL connected successfully to %s:%d/%s", cfg.Postgres.Host, cfg.Postgres.Port, cfg.Postgres.DBName)

	// Initialize object store (optional)
	var store miniopkg.ObjectStore
	if cfg.MinIO.Enabled {
		store, err = configMinio.ConnectWithRetry(ctx, cfg.MinIO, 3)
		if err != nil {
			logger.Error(ctx, "Failed to connect to MinIO: ", err)
			return
		}
		defer configMinio.Disconnect(ctx)
		logger.Infof(ctx, "MinIO connected successfully to %s", cfg.MinIO.Endpoint)
	}

	// Load the classifier artifact. The service still scores with
	// caller-supplied probabilities when no artifact is available.
	scorer := loadScorer(ctx, logger, cfg, store)

	// Initialize Discord and the alert dispatcher (optional)
	var (
		discordClient discord.IDiscord
		alerts        alert.UseCase
	)
	if cfg.Discord.WebhookURL != "" {
		discordClient, err = discord.New(logger, cfg.Discord.WebhookURL)
		if err != nil {
			logger.Error(ctx, "Failed to initialize Discord: ", err)
			return
		}
		alerts = alertUsecase.New(logger, discordClient)
	}

	// Initialize the decision pipeline
	optimizer, err := threshold.New(threshold.CostModel{
		CostFP: cfg.Costs.FalsePositive,
		CostFN: cfg.Costs.FalseNegative,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize threshold optimizer: ", err)
		return
	}

	revenueModel := revenue.NewModel(revenue.Config{
		LifespanMonths:       cfg.Revenue.LifespanMonths,
		DiscountRate:         cfg.Revenue.DiscountRate,
		RetentionSuccessRate: cfg.Revenue.RetentionSuccessRate,
		OfferCosts: revenue.OfferCosts{
			Basic:    cfg.Revenue.OfferCostBasic,
			Standard: cfg.Revenue.OfferCostStandard,
			Premium:  cfg.Revenue.OfferCostPremium,
		},
	})

	repo := scoringRepository.New(logger, postgresDB)
	scoringUC := scoringUsecase.New(logger, repo, optimizer, revenueModel, scorer, alerts)

	// Initialize HTTP server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Port: cfg.Server.Port,
		Mode: cfg.Server.Mode,

		ScoringUC: scoringUC,

		JWTManager:      scope.New(cfg.JWT.SecretKey),
		InternalKeyHash: cfg.Internal.KeyHash,

		DB:      postgresDB,
		Store:   store,
		Discord: discordClient,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	if err := httpServer.Run(); err != nil {
		logger.Error(ctx, "HTTP server stopped with error: ", err)
	}
}

// loadScorer builds the churn scorer from the object store when enabled,
// falling back to a local artifact file. Returns nil when neither source
// yields an artifact.
func loadScorer(ctx context.Context, logger log.Logger, cfg *config.Config, store miniopkg.ObjectStore) scoring.Scorer {
	var (
		artifact classifier.Artifact
		err      error
		loaded   bool
	)

	if store != nil {
		artifact, err = classifier.LoadArtifactFromStore(ctx, store, cfg.MinIO.Bucket, cfg.MinIO.ArtifactObject)
		if err != nil {
			logger.Warnf(ctx, "Failed to load artifact from store: %v", err)
		} else {
			loaded = true
		}
	}

	if !loaded && cfg.Model.FilePath != "" {
		artifact, err = classifier.LoadArtifactFromFile(cfg.Model.FilePath)
		if err != nil {
			logger.Warnf(ctx, "Failed to load artifact from file %s: %v", cfg.Model.FilePath, err)
		} else {
			loaded = true
		}
	}

	if !loaded {
		logger.Warn(ctx, "No classifier artifact loaded; scoring requires caller-supplied probabilities")
		return nil
	}

	scorer, err := classifier.NewScorer(artifact)
	if err != nil {
		logger.Errorf(ctx, "Invalid classifier artifact: %v", err)
		return nil
	}

	logger.Infof(ctx, "Classifier loaded, model version %s", scorer.Version())
	return scorer
}
