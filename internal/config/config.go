package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds the whole application configuration, populated from
// environment variables.
type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Redis    RedisConfig
	JWT      JWTConfig
	CDN      CDNConfig
	Jobs     JobConfig
}

type AppConfig struct {
	Name        string
	Environment string // development, staging, production
	Port        string
	Version     string
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Database string
	SSLMode  string
	MaxConns int
	MinConns int
}

type RedisConfig struct {
	Host     string
	Password string
	DB       int
}

type JWTConfig struct {
	Secret             string
	AccessTokenExpiry  int // minutes
	RefreshTokenExpiry int // hours
}

// CDNConfig describes the external media CDN the upload pipeline talks to.
// PrivateKey signs upload credentials server-side and must never be exposed;
// PublicKey is handed to upload clients together with the signed triple.
type CDNConfig struct {
	UploadURL  string // direct upload endpoint clients stream bytes to
	APIURL     string // admin API (list/delete objects), used by the sweep worker
	PublicKey  string
	PrivateKey string
	Folder     string        // object folder for video uploads
	AuthExpiry time.Duration // lifetime of minted upload credentials
}

type JobConfig struct {
	SweepCronSpec    string        // cron spec for the orphan media sweep
	SweepGracePeriod time.Duration // objects younger than this are never swept
}

// Load reads config from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		App: AppConfig{
			Name:        getEnv("APP_NAME", "Vidshare API"),
			Environment: getEnv("APP_ENV", "development"),
			Port:        getEnv("APP_PORT", "8080"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnvInt("DB_PORT", 5432),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", ""),
			Database: getEnv("DB_NAME", "vidshare"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
			MaxConns: getEnvInt("DB_MAX_CONNS", 25),
			MinConns: getEnvInt("DB_MIN_CONNS", 5),
		},
		Redis: RedisConfig{
			Host:     getEnv("REDIS_HOST", "localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
		},
		JWT: JWTConfig{
			Secret:             getEnv("JWT_SECRET", "your-secret-key-change-in-production"),
			AccessTokenExpiry:  getEnvInt("JWT_ACCESS_EXPIRY", 15), // 15 minutes
			RefreshTokenExpiry: getEnvInt("JWT_REFRESH_EXPIRY", 72), // 3 days
		},
		CDN: CDNConfig{
			UploadURL:  getEnv("CDN_UPLOAD_URL", "https://upload.mediakit.io/api/v1/files/upload"),
			APIURL:     getEnv("CDN_API_URL", "https://api.mediakit.io/v1"),
			PublicKey:  getEnv("CDN_PUBLIC_KEY", ""),
			PrivateKey: getEnv("CDN_PRIVATE_KEY", ""),
			Folder:     getEnv("CDN_UPLOAD_FOLDER", "/videos"),
			AuthExpiry: time.Duration(getEnvInt("CDN_AUTH_EXPIRY_MINUTES", 30)) * time.Minute,
		},
		Jobs: JobConfig{
			SweepCronSpec:    getEnv("JOB_SWEEP_CRON", "0 * * * *"), // hourly
			SweepGracePeriod: time.Duration(getEnvInt("JOB_SWEEP_GRACE_HOURS", 24)) * time.Hour,
		},
	}

	// Validate critical config
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// Validate checks that production deployments carry real secrets
func (c *Config) Validate() error {
	if c.App.Environment == "production" {
		if c.JWT.Secret == "your-secret-key-change-in-production" {
			return fmt.Errorf("JWT_SECRET must be set in production")
		}
		if c.Database.Password == "" {
			return fmt.Errorf("DB_PASSWORD must be set in production")
		}
		if c.CDN.PrivateKey == "" {
			return fmt.Errorf("CDN_PRIVATE_KEY must be set in production")
		}
	}

	return nil
}

// Helper functions
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}
