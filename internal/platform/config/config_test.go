package config

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := load(viper.New())
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "sky-take-out", cfg.JWTIssuer)
	assert.Equal(t, "localhost:6379", cfg.Redis.Addr)
	assert.Equal(t, "20-M", cfg.UploadRateLimit)
	assert.False(t, cfg.AutofillStrict)
	assert.False(t, cfg.OSS.Enabled())
	assert.Equal(t, []string{"http://localhost:8080"}, cfg.CORSAllowedOrigins)
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("JWT_SECRET", "0123456789abcdef0123")
	t.Setenv("REDIS_ADDR", "cache:6380")
	t.Setenv("REDIS_DB", "2")
	t.Setenv("OSS_ENDPOINT", "oss-cn-hangzhou.aliyuncs.com")
	t.Setenv("OSS_BUCKET_NAME", "sky-take-out")
	t.Setenv("OSS_USE_SSL", "false")
	t.Setenv("AUTOFILL_STRICT", "true")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example")

	cfg, err := load(viper.New())
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "cache:6380", cfg.Redis.Addr)
	assert.Equal(t, 2, cfg.Redis.DB)
	assert.True(t, cfg.OSS.Enabled())
	assert.False(t, cfg.OSS.UseSSL)
	assert.True(t, cfg.AutofillStrict)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSAllowedOrigins)
}

func TestLoad_DefaultSecretRejectedInProduction(t *testing.T) {
	t.Setenv("IS_PRODUCTION", "true")

	_, err := load(viper.New())
	assert.ErrorContains(t, err, "JWT_SECRET")
}

func TestLoad_InvalidValues(t *testing.T) {
	t.Setenv("PORT", "http")

	_, err := load(viper.New())
	assert.ErrorContains(t, err, "invalid configuration")
}
