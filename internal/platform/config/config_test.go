package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
)

func TestLoad_Defaults(t *testing.T) {
	// 何も設定されていない状態ではフォールバック値が使われる
	t.Setenv("PORT", "")
	t.Setenv("DATABASE_URL", "")
	t.Setenv("SECRET_KEY", "")
	t.Setenv("JWT_SECRET_KEY", "")
	t.Setenv("REDIS_HOST", "")
	t.Setenv("BCRYPT_COST", "")

	cfg := Load()

	assert.Equal(t, "8080", cfg.Port)
	assert.Empty(t, cfg.DatabaseURL)
	assert.Equal(t, "kitchensync.db", cfg.SQLitePath)
	assert.Equal(t, DefaultSecretKey, cfg.SecretKey)
	assert.Equal(t, DefaultJWTSecret, cfg.JWTSecret)
	assert.Empty(t, cfg.RedisAddr, "Redis should be disabled without REDIS_HOST")
	assert.Equal(t, bcrypt.DefaultCost, cfg.BcryptCost)
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("DATABASE_URL", "postgres://app:secret@db:5432/kitchensync")
	t.Setenv("SECRET_KEY", "prod-secret")
	t.Setenv("JWT_SECRET_KEY", "prod-jwt-secret")
	t.Setenv("REDIS_HOST", "redis")
	t.Setenv("REDIS_PORT", "6380")
	t.Setenv("BCRYPT_COST", "12")

	cfg := Load()

	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, "postgres://app:secret@db:5432/kitchensync", cfg.DatabaseURL)
	assert.Equal(t, "prod-secret", cfg.SecretKey)
	assert.Equal(t, "prod-jwt-secret", cfg.JWTSecret)
	assert.Equal(t, "redis:6380", cfg.RedisAddr)
	assert.Equal(t, 12, cfg.BcryptCost)
}

func TestLoad_InvalidBcryptCost(t *testing.T) {
	t.Setenv("BCRYPT_COST", "not-a-number")

	cfg := Load()

	assert.Equal(t, bcrypt.DefaultCost, cfg.BcryptCost)
}
