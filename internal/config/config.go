// Package config loads runtime configuration for the migration tooling.
// Credentials come from environment variables (populated from .env by
// main); there is no other configuration surface.
package config

import (
	"errors"
	"os"
)

type Config struct {
	// Legacy key/value store (source, read-only).
	LegacyConnString string
	LegacyTable      string

	// Content store (target).
	MongoConnString string
	MongoDatabase   string

	// Asset store (S3-compatible bucket).
	S3AccountID       string
	S3AccessKeyID     string
	S3SecretAccessKey string
	S3BucketName      string
}

// Load reads configuration from environment variables. Only the two store
// connection strings are mandatory everywhere; asset credentials are
// checked by the commands that upload.
func Load() (*Config, error) {
	cfg := &Config{
		LegacyConnString: os.Getenv("LEGACY_SQL_CONNECTION_STRING"),
		LegacyTable:      envOrDefault("LEGACY_KV_TABLE", "kv_store"),

		MongoConnString: os.Getenv("MONGO_CONNECTION_STRING"),
		MongoDatabase:   envOrDefault("MONGO_DATABASE", "casarosier"),

		S3AccountID:       os.Getenv("S3_ACCOUNT_ID"),
		S3AccessKeyID:     os.Getenv("S3_ACCESS_KEY_ID"),
		S3SecretAccessKey: os.Getenv("S3_SECRET_ACCESS_KEY"),
		S3BucketName:      os.Getenv("S3_BUCKET_NAME"),
	}

	if cfg.MongoConnString == "" {
		return nil, errors.New("MONGO_CONNECTION_STRING environment variable not set")
	}
	return cfg, nil
}

// RequireLegacy validates the source-store settings needed by migrate.
func (c *Config) RequireLegacy() error {
	if c.LegacyConnString == "" {
		return errors.New("LEGACY_SQL_CONNECTION_STRING environment variable not set")
	}
	return nil
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
