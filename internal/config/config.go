package config

import (
	"fmt"
	"os"
	"strconv"

	"gymflow/internal/identity"

	"github.com/joho/godotenv"
)

type Config struct {
	Port          string
	DefaultUserID string
	SeedFile      string

	DatabaseURL    string
	MigrationsPath string

	RedisAddr         string
	MemberEmailDomain string
	EmailFrom         string
	EmailFromName     string
	SMTPHost          string
	SMTPPort          string
	SMTPUser          string
	SMTPPass          string

	RateLimitRPS   float64
	RateLimitBurst int
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Port:          getEnv("PORT", "8080"),
		DefaultUserID: getEnv("DEFAULT_USER_ID", "current-user"),
		SeedFile:      getEnv("SEED_FILE", ""),

		DatabaseURL:    getEnv("DATABASE_URL", ""),
		MigrationsPath: getEnv("MIGRATIONS_PATH", "migrations"),

		RedisAddr:         getEnv("REDIS_ADDR", ""),
		MemberEmailDomain: getEnv("MEMBER_EMAIL_DOMAIN", "members.gymflow.pro"),
		EmailFrom:         getEnv("EMAIL_FROM", "noreply@gymflow.pro"),
		EmailFromName:     getEnv("EMAIL_FROM_NAME", "GymFlow Pro"),
		SMTPHost:          getEnv("SMTP_HOST", "localhost"),
		SMTPPort:          getEnv("SMTP_PORT", "1025"),
		SMTPUser:          getEnv("SMTP_USER", ""),
		SMTPPass:          getEnv("SMTP_PASS", ""),
	}

	rps, err := strconv.ParseFloat(getEnv("RATE_LIMIT_RPS", "10"), 64)
	if err != nil {
		return nil, fmt.Errorf("invalid RATE_LIMIT_RPS: %w", err)
	}
	burst, err := strconv.Atoi(getEnv("RATE_LIMIT_BURST", "20"))
	if err != nil {
		return nil, fmt.Errorf("invalid RATE_LIMIT_BURST: %w", err)
	}
	cfg.RateLimitRPS = rps
	cfg.RateLimitBurst = burst

	if !identity.ValidUserID(cfg.DefaultUserID) {
		return nil, fmt.Errorf("invalid DEFAULT_USER_ID %q: want 1-64 letters, digits, '.', '_' or '-'", cfg.DefaultUserID)
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
