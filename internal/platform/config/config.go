package config

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const defaultJWTSecret = "a-very-secret-key-should-be-longer-and-random"

// Config holds application configuration.
type Config struct {
	DatabaseURL    string `mapstructure:"PGSQL_URL"`
	Port           string `mapstructure:"PORT" validate:"required,numeric"`
	IsProduction   bool   `mapstructure:"IS_PRODUCTION"`
	EnableDBCheck  bool   `mapstructure:"ENABLE_DB_CHECK"`
	MigrationsPath string `mapstructure:"MIGRATIONS_PATH"`

	JWTSecret string `mapstructure:"JWT_SECRET" validate:"required,min=16"`
	JWTIssuer string `mapstructure:"JWT_ISSUER" validate:"required"`

	Redis RedisConfig `mapstructure:",squash"`
	OSS   OSSConfig   `mapstructure:",squash"`

	// AutofillStrict makes audit field auto-fill failures abort the write.
	AutofillStrict bool `mapstructure:"AUTOFILL_STRICT"`
	// UploadRateLimit is a ulule/limiter formatted rate, e.g. "20-M".
	UploadRateLimit    string   `mapstructure:"UPLOAD_RATE_LIMIT" validate:"required"`
	CORSAllowedOrigins []string `mapstructure:"CORS_ALLOWED_ORIGINS"`

	// Bootstrap administrator, created on startup when missing.
	AdminUsername string `mapstructure:"ADMIN_USERNAME" validate:"required"`
	AdminPassword string `mapstructure:"ADMIN_PASSWORD"`
	AdminName     string `mapstructure:"ADMIN_NAME"`
}

// RedisConfig holds the connection settings for the shared Redis instance.
type RedisConfig struct {
	Addr     string `mapstructure:"REDIS_ADDR" validate:"required,hostname_port"`
	Password string `mapstructure:"REDIS_PASSWORD"`
	DB       int    `mapstructure:"REDIS_DB" validate:"gte=0"`
}

// OSSConfig holds the object storage settings used for uploads.
type OSSConfig struct {
	Endpoint        string `mapstructure:"OSS_ENDPOINT"`
	AccessKeyID     string `mapstructure:"OSS_ACCESS_KEY_ID"`
	AccessKeySecret string `mapstructure:"OSS_ACCESS_KEY_SECRET"`
	BucketName      string `mapstructure:"OSS_BUCKET_NAME"`
	Region          string `mapstructure:"OSS_REGION"`
	UseSSL          bool   `mapstructure:"OSS_USE_SSL"`
}

// Enabled reports whether uploads can be served.
func (c OSSConfig) Enabled() bool {
	return c.Endpoint != "" && c.BucketName != ""
}

var configKeys = []string{
	"PGSQL_URL", "PORT", "IS_PRODUCTION", "ENABLE_DB_CHECK", "MIGRATIONS_PATH",
	"JWT_SECRET", "JWT_ISSUER",
	"REDIS_ADDR", "REDIS_PASSWORD", "REDIS_DB",
	"OSS_ENDPOINT", "OSS_ACCESS_KEY_ID", "OSS_ACCESS_KEY_SECRET", "OSS_BUCKET_NAME", "OSS_REGION", "OSS_USE_SSL",
	"AUTOFILL_STRICT", "UPLOAD_RATE_LIMIT", "CORS_ALLOWED_ORIGINS",
	"ADMIN_USERNAME", "ADMIN_PASSWORD", "ADMIN_NAME",
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()
	return load(viper.New())
}

func load(v *viper.Viper) (*Config, error) {
	v.SetDefault("PORT", "8080")
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("ENABLE_DB_CHECK", false)
	v.SetDefault("MIGRATIONS_PATH", "file://migrations")
	v.SetDefault("JWT_SECRET", defaultJWTSecret)
	v.SetDefault("JWT_ISSUER", "sky-take-out")
	v.SetDefault("REDIS_ADDR", "localhost:6379")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("OSS_USE_SSL", true)
	v.SetDefault("AUTOFILL_STRICT", false)
	v.SetDefault("UPLOAD_RATE_LIMIT", "20-M")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:8080")
	v.SetDefault("ADMIN_USERNAME", "admin")
	v.SetDefault("ADMIN_NAME", "Administrator")

	v.AutomaticEnv()
	// Unmarshal only sees keys viper knows about; AutomaticEnv alone does not register them.
	for _, key := range configKeys {
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("failed to bind %s: %w", key, err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to decode configuration: %w", err)
	}
	cfg.CORSAllowedOrigins = splitList(v.GetString("CORS_ALLOWED_ORIGINS"))

	if cfg.DatabaseURL == "" {
		slog.Warn("PGSQL_URL environment variable not set.")
	}
	if cfg.JWTSecret == defaultJWTSecret {
		if cfg.IsProduction {
			return nil, fmt.Errorf("JWT_SECRET must be set in production")
		}
		slog.Warn("JWT_SECRET environment variable not set. Using default insecure key.")
	}
	if !cfg.OSS.Enabled() {
		slog.Warn("OSS_ENDPOINT or OSS_BUCKET_NAME not set. File uploads are disabled.")
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
