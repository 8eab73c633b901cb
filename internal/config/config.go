package config

import (
	"os"
	"strconv"
	"strings"
)

type Config struct {
	App      AppConfig
	Auth     AuthConfig
	Postgres PostgresConfig
}

type AppConfig struct {
	Name        string
	Port        string
	APIPrefix   string
	FrontendURL string
	CORSOrigins []string
}

type AuthConfig struct {
	SecretKey          string
	Algorithm          string
	AccessTokenMinutes int
	ResetTokenMinutes  int
	DevAdminToken      string
}

type PostgresConfig struct {
	DatabaseURL string
	Host        string
	Port        string
	User        string
	Password    string
	Database    string
	SSLMode     string
}

func Load() Config {
	return Config{
		App: AppConfig{
			Name:        getenv("APP_NAME", "Wealth Management API"),
			Port:        getenv("PORT", "8080"),
			APIPrefix:   getenv("API_V1_PREFIX", "/api"),
			FrontendURL: getenv("FRONTEND_URL", "http://localhost:5173"),
			CORSOrigins: splitList(getenv("CORS_ORIGINS", "http://localhost:5173")),
		},
		Auth: AuthConfig{
			SecretKey:          getenv("SECRET_KEY", "change-me"),
			Algorithm:          getenv("ALGORITHM", "HS256"),
			AccessTokenMinutes: getenvInt("ACCESS_TOKEN_EXPIRE_MINUTES", 60*24*7),
			ResetTokenMinutes:  getenvInt("RESET_TOKEN_EXPIRE_MINUTES", 30),
			DevAdminToken:      getenv("DEV_ADMIN_TOKEN", "admin-token"),
		},
		Postgres: PostgresConfig{
			DatabaseURL: os.Getenv("DATABASE_URL"),
			Host:        getenv("PGHOST", "localhost"),
			Port:        getenv("PGPORT", "5432"),
			User:        os.Getenv("PGUSER"),
			Password:    os.Getenv("PGPASSWORD"),
			Database:    os.Getenv("PGDATABASE"),
			SSLMode:     getenv("PGSSLMODE", "disable"),
		},
	}
}

func getenv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getenvInt(key string, fallback int) int {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(val)
	if err != nil {
		return fallback
	}
	return parsed
}

func splitList(val string) []string {
	parts := strings.Split(val, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
