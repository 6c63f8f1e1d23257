package config

import (
	"errors"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

const defaultJWTSecret = "your-secret-key-change-in-production"

type Config struct {
	// Application
	AppName     string
	AppEnv      string
	AppURL      string
	Port        string
	FrontendURL string

	// Database (driver switch via ENV, default: sqlite)
	DBDriver     string
	DBConnection string
	AutoMigrate  bool

	// Security
	JWTSecret  string
	JWTExpiry  time.Duration
	BcryptCost int

	// Rate limiting for /api/auth/register and /api/auth/login
	AuthRateLimit  int
	AuthRateWindow time.Duration
	// Honor X-Forwarded-For / X-Real-IP; only set behind a proxy that rewrites them
	TrustProxy     bool

	// HTTP server
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration

	// Cache (optional, disabled when RedisURL is empty)
	RedisURL string
	CacheTTL time.Duration

	// Email
	EmailFrom    string
	ResendAPIKey string

	// Observability (optional)
	SentryDSN string
}

func Load() *Config {
	// Load .env file if it exists
	err := godotenv.Load()
	if err != nil {
		slog.Info("no .env file found, using environment variables")
	}

	cfg := &Config{
		// Application
		AppName:     envString("APP_NAME", "Taskboard"),
		AppEnv:      envString("APP_ENV", "development"),
		AppURL:      envString("APP_URL", "http://localhost:3000"),
		Port:        envString("PORT", "5000"),
		FrontendURL: envString("FRONTEND_URL", "http://localhost:3000"),

		// Database
		DBDriver:     envString("DB_DRIVER", "sqlite"),
		DBConnection: envString("DB_CONNECTION", "./data/taskboard.db?_pragma=foreign_keys(1)&_pragma=journal_mode(WAL)"),
		AutoMigrate:  envBool("AUTO_MIGRATE", true),

		// Security
		JWTSecret:  envRequired("JWT_SECRET"),
		JWTExpiry:  envDuration("JWT_EXPIRY", 168*time.Hour), // 7 days
		BcryptCost: envInt("BCRYPT_COST", bcrypt.DefaultCost),

		AuthRateLimit:  envInt("AUTH_RATE_LIMIT", 20),
		AuthRateWindow: envDuration("AUTH_RATE_WINDOW", 15*time.Minute),
		TrustProxy:     envBool("TRUST_PROXY", false),

		ReadTimeout:  envDuration("HTTP_READ_TIMEOUT", 10*time.Second),
		WriteTimeout: envDuration("HTTP_WRITE_TIMEOUT", 10*time.Second),
		IdleTimeout:  envDuration("HTTP_IDLE_TIMEOUT", 60*time.Second),

		RedisURL: envString("REDIS_URL", ""),
		CacheTTL: envDuration("CACHE_TTL", 60*time.Second),

		// Email (RESEND_API_KEY optional in development, required in production)
		EmailFrom:    envString("EMAIL_FROM", "noreply@example.com"),
		ResendAPIKey: envString("RESEND_API_KEY", ""),

		// Observability
		SentryDSN: envString("SENTRY_DSN", ""),
	}

	// Production: validate required services
	if cfg.IsProduction() {
		err = cfg.validateProduction()
		if err != nil {
			slog.Error("invalid production configuration", "error", err,
				"hint", "set APP_ENV=development for local testing with email log mode")
			os.Exit(1)
		}
	}

	return cfg
}

// validateProduction ensures all required services are configured for production deployments.
// Development allows email to fall back to log mode and accepts the placeholder secret.
func (c *Config) validateProduction() error {
	if c.ResendAPIKey == "" {
		return errors.New("production deployment requires RESEND_API_KEY")
	}
	if c.JWTSecret == defaultJWTSecret {
		return errors.New("production deployment requires a non-default JWT_SECRET")
	}
	if c.BcryptCost < bcrypt.DefaultCost {
		return errors.New("production deployment requires BCRYPT_COST >= 10")
	}
	return nil
}

func envString(key, def string) string {
	value := os.Getenv(key)
	if value == "" {
		value = def
	}
	return value
}

func envInt(key string, def int) int {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		slog.Warn("config invalid int, using default", "key", key, "value", v, "default", def)
		return def
	}
	return n
}

func envBool(key string, def bool) bool {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		slog.Warn("config invalid bool, using default", "key", key, "value", v, "default", def)
		return def
	}
	return b
}

func envDuration(key string, def time.Duration) time.Duration {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		slog.Warn("config invalid duration, using default", "key", key, "value", v, "default", def)
		return def
	}
	return d
}

func envRequired(key string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	slog.Error("config required env var missing", "key", key)
	os.Exit(1)
	return ""
}

func (c *Config) IsDevelopment() bool {
	return c.AppEnv == "development"
}

func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}

// CacheEnabled reports whether a Redis URL was configured.
func (c *Config) CacheEnabled() bool {
	return c.RedisURL != ""
}

// Sanitized returns a copy of the config with only public/safe fields.
// All secrets, credentials, and connection strings are excluded.
// Safe to log at start-up.
func (c *Config) Sanitized() *Config {
	return &Config{
		AppName:        c.AppName,
		AppEnv:         c.AppEnv,
		AppURL:         c.AppURL,
		Port:           c.Port,
		FrontendURL:    c.FrontendURL,
		DBDriver:       c.DBDriver,
		AutoMigrate:    c.AutoMigrate,
		JWTExpiry:      c.JWTExpiry,
		BcryptCost:     c.BcryptCost,
		AuthRateLimit:  c.AuthRateLimit,
		AuthRateWindow: c.AuthRateWindow,
		TrustProxy:     c.TrustProxy,
		ReadTimeout:    c.ReadTimeout,
		WriteTimeout:   c.WriteTimeout,
		IdleTimeout:    c.IdleTimeout,
		CacheTTL:       c.CacheTTL,
		EmailFrom:      c.EmailFrom,
	}
}
