package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config is the single configuration structure constructed at process start
// and passed into each component's constructor. No component reads the
// environment on its own.
type Config struct {
	App      App
	Database Database
	Redis    Redis
	JWT      JWT
	Upstream Upstream
	Cache    Cache
}

// App captures HTTP server level configuration.
type App struct {
	Addr           string
	Environment    string
	RequestTimeout time.Duration
}

// Database holds relational store connection configuration.
type Database struct {
	URL             string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

// Redis holds cache connection configuration.
type Redis struct {
	URL      string
	PoolSize int
}

// JWT holds token issuance configuration. Access and refresh tokens use
// separate secrets and lifetimes.
type JWT struct {
	AccessSecret  string
	RefreshSecret string
	AccessTTL     time.Duration
	RefreshTTL    time.Duration
}

// Upstream points at the country-data provider.
type Upstream struct {
	BaseURL string
	Timeout time.Duration
}

// Cache holds cache-aside policy configuration.
type Cache struct {
	TTL time.Duration
}

// FromEnv builds a Config from environment variables so main stays lean.
// A .env file in the working directory is loaded first when present.
func FromEnv() Config {
	_ = godotenv.Load()

	return Config{
		App: App{
			Addr:           envString("ATLAS_ADDR", ":8080"),
			Environment:    envString("ATLAS_ENV", "development"),
			RequestTimeout: envDuration("ATLAS_REQUEST_TIMEOUT", 30*time.Second),
		},
		Database: Database{
			URL:             os.Getenv("DATABASE_URL"),
			MaxOpenConns:    envInt("DATABASE_MAX_OPEN_CONNS", 25),
			MaxIdleConns:    envInt("DATABASE_MAX_IDLE_CONNS", 5),
			ConnMaxLifetime: envDuration("DATABASE_CONN_MAX_LIFETIME", 5*time.Minute),
		},
		Redis: Redis{
			URL:      os.Getenv("REDIS_URL"),
			PoolSize: envInt("REDIS_POOL_SIZE", 10),
		},
		JWT: JWT{
			AccessSecret:  envString("ACCESS_TOKEN_SECRET", "dev-access-secret-change-in-production"),
			RefreshSecret: envString("REFRESH_TOKEN_SECRET", "dev-refresh-secret-change-in-production"),
			AccessTTL:     envDuration("ACCESS_TOKEN_TTL", 15*time.Minute),
			RefreshTTL:    envDuration("REFRESH_TOKEN_TTL", 7*24*time.Hour),
		},
		Upstream: Upstream{
			BaseURL: envString("COUNTRIES_API_URL", "https://restcountries.com/v3.1"),
			Timeout: envDuration("COUNTRIES_API_TIMEOUT", 30*time.Second),
		},
		Cache: Cache{
			TTL: envDuration("CACHE_TTL", 24*time.Hour),
		},
	}
}

func envString(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
