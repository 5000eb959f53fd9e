package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Canonical server defaults. The deployment variants this replaces disagreed
// on several of these (port 8000 vs 8080, timeouts set in some launchers
// only), so the values below are fixed here and nowhere else.
const (
	DefaultHost                    = "0.0.0.0"
	DefaultPort                    = 8000
	DefaultCORSOrigin              = "http://localhost:3000"
	DefaultLogLevel                = "info"
	DefaultKeepAliveTimeout        = 120 * time.Second
	DefaultGracefulShutdownTimeout = 30 * time.Second
)

// Config holds all application configuration
type Config struct {
	Environment string
	Server      ServerConfig
	Database    DatabaseConfig
	Email       EmailConfig
	MercadoPago MercadoPagoConfig
	Frontend    FrontendConfig
	Cloudinary  CloudinaryConfig
}

// ServerConfig holds the HTTP server runtime settings. It is resolved once at
// process start and never mutated afterwards; the lifecycle controller reads
// it by value.
type ServerConfig struct {
	Host                    string
	Port                    int
	CORSOrigin              string
	LogLevel                string
	KeepAliveTimeout        time.Duration
	GracefulShutdownTimeout time.Duration
}

// DatabaseConfig selects between an external PostgreSQL (DATABASE_URL) and
// the local SQLite file used for development.
type DatabaseConfig struct {
	URL        string
	SQLitePath string
}

// EmailConfig holds the Resend credentials for transactional email.
// DefaultNotificationEmail is the fallback recipient for contact messages
// when no notification addresses have been registered.
type EmailConfig struct {
	ResendAPIKey             string
	FromAddress              string
	DefaultNotificationEmail string
}

// MercadoPagoConfig holds Checkout Pro credentials
type MercadoPagoConfig struct {
	AccessToken string
	WebhookURL  string
}

// FrontendConfig points at the storefront for CORS-adjacent concerns and
// cache revalidation callbacks
type FrontendConfig struct {
	URL              string
	RevalidateSecret string
}

// CloudinaryConfig holds image hosting credentials
type CloudinaryConfig struct {
	CloudName string
	APIKey    string
	APISecret string
}

// Load resolves the full application configuration from the environment.
// It never fails: malformed values fall back to their documented defaults,
// and optional integrations are disabled when their keys are absent, so a
// broken environment can never keep the process from starting.
func Load() *Config {
	// Load env.local in non-production environments; the file itself is
	// optional there too.
	if os.Getenv("GO_ENV") != "production" {
		_ = godotenv.Load("env.local")
	}

	cfg := &Config{
		Environment: getEnvWithDefault("GO_ENV", "development"),
		Server:      ResolveServer(environMap()),
	}

	cfg.Database.URL = strings.TrimSpace(os.Getenv("DATABASE_URL"))
	cfg.Database.SQLitePath = getEnvWithDefault("SQLITE_PATH", "gepe.db")

	cfg.Email.ResendAPIKey = os.Getenv("RESEND_API_KEY")
	cfg.Email.FromAddress = getEnvWithDefault("RESEND_FROM_EMAIL", "GEPE <notificaciones@gepe.com.ar>")
	cfg.Email.DefaultNotificationEmail = getEnvWithDefault("DEFAULT_NOTIFICATION_EMAIL", os.Getenv("RESEND_REPLY_TO"))

	cfg.MercadoPago.AccessToken = os.Getenv("MP_ACCESS_TOKEN")
	cfg.MercadoPago.WebhookURL = os.Getenv("MP_WEBHOOK_URL")

	cfg.Frontend.URL = getEnvWithDefault("FRONTEND_URL", cfg.Server.CORSOrigin)
	cfg.Frontend.RevalidateSecret = os.Getenv("REVALIDATE_SECRET")

	cfg.Cloudinary.CloudName = os.Getenv("CLOUDINARY_CLOUD_NAME")
	cfg.Cloudinary.APIKey = os.Getenv("CLOUDINARY_API_KEY")
	cfg.Cloudinary.APISecret = os.Getenv("CLOUDINARY_API_SECRET")

	return cfg
}

// ResolveServer maps raw environment values to a ServerConfig. Pure function,
// never fails: every missing or malformed value resolves to its default.
func ResolveServer(env map[string]string) ServerConfig {
	return ServerConfig{
		Host:                    stringWithDefault(env["HOST"], DefaultHost),
		Port:                    portWithDefault(env["PORT"], DefaultPort),
		CORSOrigin:              stringWithDefault(env["CORS_ORIGIN"], DefaultCORSOrigin),
		LogLevel:                levelWithDefault(env["LOG_LEVEL"], DefaultLogLevel),
		KeepAliveTimeout:        secondsWithDefault(env["KEEP_ALIVE_TIMEOUT"], DefaultKeepAliveTimeout),
		GracefulShutdownTimeout: secondsWithDefault(env["GRACEFUL_SHUTDOWN_TIMEOUT"], DefaultGracefulShutdownTimeout),
	}
}

// IsProduction reports whether the process runs with production settings
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// Addr returns the host:port the server should bind
func (c ServerConfig) Addr() string {
	return c.Host + ":" + strconv.Itoa(c.Port)
}

// DriverAndDSN picks the store driver: an explicit non-SQLite DATABASE_URL
// selects Postgres, anything else the local SQLite file so development never
// needs a running database server.
func (c DatabaseConfig) DriverAndDSN() (driver string, dsn string) {
	if c.URL != "" && !strings.HasPrefix(c.URL, "sqlite") {
		return "pgx", c.URL
	}
	return "sqlite", "file:" + c.SQLitePath + "?_pragma=busy_timeout(5000)&_pragma=foreign_keys(1)"
}

// Enabled reports whether email sending is configured
func (c EmailConfig) Enabled() bool {
	return c.ResendAPIKey != ""
}

// Enabled reports whether MercadoPago checkout is configured
func (c MercadoPagoConfig) Enabled() bool {
	return c.AccessToken != ""
}

// Enabled reports whether Cloudinary uploads are configured
func (c CloudinaryConfig) Enabled() bool {
	return c.CloudName != "" && c.APIKey != "" && c.APISecret != ""
}

// environMap snapshots the process environment into a plain map so server
// settings resolve from an explicit value instead of ambient lookups
func environMap() map[string]string {
	env := make(map[string]string)
	for _, kv := range os.Environ() {
		if i := strings.IndexByte(kv, '='); i > 0 {
			env[kv[:i]] = kv[i+1:]
		}
	}
	return env
}

// getEnvWithDefault retrieves an environment variable or returns a default value
func getEnvWithDefault(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func stringWithDefault(raw, defaultValue string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return defaultValue
	}
	return raw
}

// portWithDefault treats anything outside 1-65535, including non-numeric
// input, as absent
func portWithDefault(raw string, defaultValue int) int {
	port, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || port < 1 || port > 65535 {
		return defaultValue
	}
	return port
}

func levelWithDefault(raw, defaultValue string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "debug":
		return "debug"
	case "info":
		return "info"
	case "warn":
		return "warn"
	case "error":
		return "error"
	}
	return defaultValue
}

// secondsWithDefault parses a non-negative integer number of seconds. Zero is
// a valid value (an immediate shutdown deadline), so only absent, malformed
// or negative input falls back.
func secondsWithDefault(raw string, defaultValue time.Duration) time.Duration {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return defaultValue
	}
	seconds, err := strconv.Atoi(trimmed)
	if err != nil || seconds < 0 {
		return defaultValue
	}
	return time.Duration(seconds) * time.Second
}
