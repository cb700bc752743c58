package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	CatalogStatic   = "static"
	CatalogPostgres = "postgres"
)

// Config holds runtime configuration parsed from environment variables.
type Config struct {
	HTTPAddr        string
	DBConnString    string
	ShutdownTimeout time.Duration
	CatalogSource   string
	WhatsAppHost    string
	WhatsAppNumber  string
	SessionTTL      time.Duration
	SweepInterval   time.Duration
	AllowOrigins    []string
	ImageURLHost    string
	LogLevel        string
}

// Load reads an optional .env file and then builds Config from the environment.
// Variables already set in the environment win over the file.
func Load() Config {
	_ = godotenv.Load()
	return FromEnv()
}

// FromEnv builds Config with defaults, overridden by environment variables.
func FromEnv() Config {
	return Config{
		HTTPAddr:        envOrDefault("HTTP_ADDR", ":8080"),
		DBConnString:    envOrDefault("DB_DSN", ""),
		ShutdownTimeout: envDuration("SHUTDOWN_TIMEOUT_SECONDS", 10*time.Second),
		CatalogSource:   strings.ToLower(envOrDefault("CATALOG_SOURCE", CatalogStatic)),
		WhatsAppHost:    envOrDefault("WHATSAPP_HOST", "wa.me"),
		WhatsAppNumber:  envOrDefault("WHATSAPP_NUMBER", "254720363215"),
		SessionTTL:      envHours("SESSION_TTL_HOURS", 72*time.Hour),
		SweepInterval:   envDuration("SESSION_SWEEP_INTERVAL_SECONDS", 5*time.Minute),
		AllowOrigins:    envList("CORS_ALLOW_ORIGINS", []string{"*"}),
		ImageURLHost:    strings.TrimRight(envOrDefault("IMAGE_URL_HOST", ""), "/"),
		LogLevel:        envOrDefault("LOG_LEVEL", "info"),
	}
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		seconds, err := strconv.Atoi(v)
		if err == nil && seconds > 0 {
			return time.Duration(seconds) * time.Second
		}
	}
	return def
}

func envHours(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		hours, err := strconv.Atoi(v)
		if err == nil && hours > 0 {
			return time.Duration(hours) * time.Hour
		}
	}
	return def
}

func envList(key string, def []string) []string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	var out []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	if len(out) == 0 {
		return def
	}
	return out
}
