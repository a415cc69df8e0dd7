package config

import (
	"errors"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Settings struct {
	Port          string
	DatabaseDSN   string
	AutoMigrate   bool
	LogLevel      string
	Timezone      string
	AllowedOrigin []string

	SupabaseURL        string
	SupabaseAnonKey    string
	SupabaseServiceKey string
	SupabaseJWTSecret  string

	RedisAddr       string
	NotificationTTL time.Duration
}

var ErrMissingSupabase = errors.New("SUPABASE_URL, SUPABASE_ANON_KEY and SUPABASE_SERVICE_KEY must be set")

// Load reads a .env file when present and then the process environment.
func Load() (*Settings, error) {
	_ = godotenv.Load()

	s := &Settings{
		Port:               getEnv("PORT", "3001"),
		DatabaseDSN:        os.Getenv("DATABASE_DSN"),
		AutoMigrate:        getEnvBool("DB_AUTO_MIGRATE", false),
		LogLevel:           getEnv("LOG_LEVEL", "info"),
		Timezone:           Timezone(),
		AllowedOrigin:      splitList(os.Getenv("CORS_ALLOWED_ORIGINS")),
		SupabaseURL:        strings.TrimRight(os.Getenv("SUPABASE_URL"), "/"),
		SupabaseAnonKey:    os.Getenv("SUPABASE_ANON_KEY"),
		SupabaseServiceKey: os.Getenv("SUPABASE_SERVICE_KEY"),
		SupabaseJWTSecret:  os.Getenv("SUPABASE_JWT_SECRET"),
		RedisAddr:          os.Getenv("REDIS_ADDR"),
		NotificationTTL:    getEnvDuration("NOTIFICATION_TTL", 12*time.Hour),
	}

	if s.DatabaseDSN == "" {
		return nil, errors.New("DATABASE_DSN must be set")
	}
	if s.SupabaseURL == "" || s.SupabaseAnonKey == "" || s.SupabaseServiceKey == "" {
		return nil, ErrMissingSupabase
	}

	return s, nil
}

// Timezone names the location calendar days are computed in.
func Timezone() string {
	return getEnv("APP_TIMEZONE", "America/Sao_Paulo")
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	v, err := strconv.ParseBool(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return v
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	v, err := time.ParseDuration(os.Getenv(key))
	if err != nil || v <= 0 {
		return fallback
	}
	return v
}

func splitList(v string) []string {
	if v == "" {
		return nil
	}
	var out []string
	for _, p := range strings.Split(v, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
