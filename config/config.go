package config

import (
	"fmt"

	"github.com/caarlos0/env/v9"
)

// Config holds all service configuration, read from environment variables.
type Config struct {
	Server   ServerConfig
	Logger   LoggerConfig
	Postgres PostgresConfig
	MinIO    MinIOConfig
	JWT      JWTConfig
	Internal InternalConfig
	Discord  DiscordConfig
	Model    ModelConfig
	Costs    CostConfig
	Revenue  RevenueConfig
}

// ServerConfig is the configuration for the HTTP server.
type ServerConfig struct {
	Host string `env:"SERVER_HOST" envDefault:"0.0.0.0"`
	Port int    `env:"SERVER_PORT" envDefault:"8080"`
	Mode string `env:"SERVER_MODE" envDefault:"debug"`
}

// LoggerConfig is the configuration for the logger.
type LoggerConfig struct {
	Level        string `env:"LOGGER_LEVEL" envDefault:"info"`
	Mode         string `env:"LOGGER_MODE" envDefault:"development"`
	Encoding     string `env:"LOGGER_ENCODING" envDefault:"console"`
	ColorEnabled bool   `env:"LOGGER_COLOR_ENABLED" envDefault:"true"`
}

// PostgresConfig is the configuration for PostgreSQL.
type PostgresConfig struct {
	Host     string `env:"POSTGRES_HOST" envDefault:"localhost"`
	Port     int    `env:"POSTGRES_PORT" envDefault:"5432"`
	User     string `env:"POSTGRES_USER" envDefault:"postgres"`
	Password string `env:"POSTGRES_PASSWORD"`
	DBName   string `env:"POSTGRES_DB" envDefault:"retain"`
	SSLMode  string `env:"POSTGRES_SSL_MODE" envDefault:"disable"`
}

// MinIOConfig is the configuration for the model artifact store.
type MinIOConfig struct {
	Enabled        bool   `env:"MINIO_ENABLED" envDefault:"false"`
	Endpoint       string `env:"MINIO_ENDPOINT"`
	AccessKey      string `env:"MINIO_ACCESS_KEY"`
	SecretKey      string `env:"MINIO_SECRET_KEY"`
	UseSSL         bool   `env:"MINIO_USE_SSL" envDefault:"false"`
	Region         string `env:"MINIO_REGION"`
	Bucket         string `env:"MINIO_BUCKET" envDefault:"models"`
	ArtifactObject string `env:"MINIO_ARTIFACT_OBJECT" envDefault:"churn-classifier.json"`
}

// JWTConfig is the configuration for the JWT.
type JWTConfig struct {
	SecretKey string `env:"JWT_SECRET_KEY,required"`
}

// InternalConfig guards operator-only routes.
type InternalConfig struct {
	// KeyHash is the bcrypt hash of the shared internal key.
	KeyHash string `env:"INTERNAL_KEY_HASH,required"`
}

// DiscordConfig is the configuration for Discord webhook notifications.
type DiscordConfig struct {
	WebhookURL string `env:"DISCORD_WEBHOOK_URL"`
}

// ModelConfig locates the trained classifier artifact. The object store is
// tried first when enabled; FilePath is the local fallback.
type ModelConfig struct {
	FilePath string `env:"MODEL_ARTIFACT_PATH"`
}

// CostConfig holds the misclassification costs for threshold optimization.
type CostConfig struct {
	FalsePositive float64 `env:"COST_FALSE_POSITIVE" envDefault:"10"`
	FalseNegative float64 `env:"COST_FALSE_NEGATIVE" envDefault:"200"`
}

// RevenueConfig holds the tunable parameters of the revenue impact model.
type RevenueConfig struct {
	LifespanMonths       int     `env:"REVENUE_LIFESPAN_MONTHS" envDefault:"24"`
	DiscountRate         float64 `env:"REVENUE_DISCOUNT_RATE" envDefault:"0.1"`
	RetentionSuccessRate float64 `env:"REVENUE_RETENTION_SUCCESS_RATE" envDefault:"0.5"`
	OfferCostBasic       float64 `env:"REVENUE_OFFER_COST_BASIC" envDefault:"25"`
	OfferCostStandard    float64 `env:"REVENUE_OFFER_COST_STANDARD" envDefault:"50"`
	OfferCostPremium     float64 `env:"REVENUE_OFFER_COST_PREMIUM" envDefault:"100"`
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config.Load: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) validate() error {
	if c.MinIO.Enabled && c.MinIO.Endpoint == "" {
		return fmt.Errorf("config.validate: MINIO_ENDPOINT is required when MINIO_ENABLED is set")
	}
	if c.Costs.FalsePositive <= 0 || c.Costs.FalseNegative <= 0 {
		return fmt.Errorf("config.validate: misclassification costs must be positive")
	}
	return nil
}
