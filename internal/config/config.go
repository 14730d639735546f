package config

import (
	"github.com/spf13/viper"
)

// Config holds all runtime configuration loaded from environment variables.
type Config struct {
	// Server
	Port int    `mapstructure:"PORT"`
	Env  string `mapstructure:"APP_ENV"` // development | production

	// Database — a single local SQLite file; one handle for the whole process.
	DatabasePath string `mapstructure:"DATABASE_PATH"`

	// Audit log — spreadsheet-style CSV of every product addition.
	AuditLogPath string `mapstructure:"AUDIT_LOG_PATH"`

	// Auth
	JWTSecret          string `mapstructure:"JWT_SECRET"`
	JWTExpirationHours int    `mapstructure:"JWT_EXPIRATION_HOURS"`

	// Redis — optional cache for the public stock check; empty = disabled.
	RedisURL string `mapstructure:"REDIS_URL"`

	// Billing
	PDFStoragePath string `mapstructure:"PDF_STORAGE_PATH"`
}

// Load reads configuration from environment variables (and optional .env file).
func Load() (*Config, error) {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")
	viper.AutomaticEnv()

	// Sensible defaults for development
	viper.SetDefault("PORT", 8000)
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("DATABASE_PATH", "inventory.db")
	viper.SetDefault("AUDIT_LOG_PATH", "product_log.csv")
	viper.SetDefault("JWT_SECRET", "dev-secret-change-me")
	viper.SetDefault("JWT_EXPIRATION_HOURS", 8)
	viper.SetDefault("REDIS_URL", "")
	viper.SetDefault("PDF_STORAGE_PATH", "bills")

	// Optional .env file for local development — does not fail if missing
	_ = viper.ReadInConfig()

	cfg := &Config{}
	if err := viper.Unmarshal(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
