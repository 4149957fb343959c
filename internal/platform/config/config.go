// Package config はアプリケーション全体の設定を環境変数から読み込みます。
package config

import (
	"log/slog"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

const (
	// DefaultSecretKey は SECRET_KEY 未設定時の開発用フォールバックです。
	// 本番環境では必ず環境変数で上書きしてください。
	DefaultSecretKey = "dev-secret-key"
	// DefaultJWTSecret は JWT_SECRET_KEY 未設定時の開発用フォールバックです。
	DefaultJWTSecret = "jwt-secret-key"
)

// Config はプロセス全体で共有される設定値を保持します。
type Config struct {
	Port          string // HTTPサーバーの待ち受けポート
	DatabaseURL   string // PostgreSQLのDSN（空の場合はSQLiteにフォールバック）
	SQLitePath    string // SQLite使用時のデータベースファイルパス
	SecretKey     string // アプリケーション秘密鍵
	JWTSecret     string // JWT署名用秘密鍵
	RedisAddr     string // Redisのアドレス（host:port、空の場合はキャッシュ無効）
	RedisPassword string
	BcryptCost    int // パスワードハッシュのコストファクター
}

// Load は.envファイル（存在する場合）と環境変数から設定を読み込みます。
// 秘密鍵がフォールバック値のままの場合は警告ログを出力します。
func Load() Config {
	// 開発環境向け: .env があれば読み込む（無ければ無視）
	_ = godotenv.Load()

	cfg := Config{
		Port:          getEnv("PORT", "8080"),
		DatabaseURL:   os.Getenv("DATABASE_URL"),
		SQLitePath:    getEnv("SQLITE_PATH", "kitchensync.db"),
		SecretKey:     getEnv("SECRET_KEY", DefaultSecretKey),
		JWTSecret:     getEnv("JWT_SECRET_KEY", DefaultJWTSecret),
		RedisAddr:     redisAddr(),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		BcryptCost:    getEnvInt("BCRYPT_COST", bcrypt.DefaultCost),
	}

	if cfg.SecretKey == DefaultSecretKey {
		slog.Warn("SECRET_KEY is not set. Using insecure development fallback.")
	}
	if cfg.JWTSecret == DefaultJWTSecret {
		slog.Warn("JWT_SECRET_KEY is not set. Set a strong secret in production.")
	}

	return cfg
}

// redisAddr はREDIS_HOST/REDIS_PORTからアドレスを組み立てます。
func redisAddr() string {
	host := os.Getenv("REDIS_HOST")
	if host == "" {
		return ""
	}
	return host + ":" + getEnv("REDIS_PORT", "6379")
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v, ok := os.LookupEnv(key); ok {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
