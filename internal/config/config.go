package config

import (
	"errors"
	"fmt"
	"net"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Supported store and session backends.
const (
	StoreFile     = "file"
	StoreSQLite   = "sqlite"
	StorePostgres = "postgres"
	StoreMemory   = "memory"

	SessionMemory = "memory"
	SessionRedis  = "redis"
)

// Config holds all configuration for the application.
type Config struct {
	// Server configuration
	ServerPort   string
	Environment  string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration

	// Cross-origin hosts and security headers. An empty AllowedOrigins
	// admits every origin. TrustedProxies lists the proxy IPs or CIDRs whose
	// X-Forwarded-For is believed; with none, the peer address is the client.
	AllowedOrigins []string
	SSLRedirect    bool
	TrustedProxies []string

	// Admin session configuration
	AdminPassword     string
	AdminPasswordHash string
	AdminTokenTTL     time.Duration
	SessionBackend    string
	RedisAddr         string
	RedisPassword     string
	RedisDB           int

	// Persistent store configuration
	StoreBackend  string
	DataDir       string
	SQLitePath    string
	MigrationsDir string

	// Postgres configuration, used when StoreBackend is postgres.
	// DatabaseURL wins over the DB_* parts when set.
	DatabaseURL         string
	DBHost              string
	DBPort              int
	DBUser              string
	DBPassword          string
	DBName              string
	DBSSLMode           string
	DBMaxConns          int32
	DBMinConns          int32
	DBMaxConnLifetime   time.Duration
	DBMaxConnIdleTime   time.Duration
	DBHealthCheckPeriod time.Duration

	// Upload configuration
	UploadDir         string
	UploadMaxFileSize int64
	UploadThumbnails  bool

	// Rate limiting
	RateLimitRequests int
	RateLimitWindow   time.Duration
	LoginRateLimit    int
	LoginRateWindow   time.Duration
	ContactRateLimit  int
	ContactRateWindow time.Duration

	// Logging configuration
	LogLevel string
}

// Load loads configuration from environment variables. A .env file in the
// working directory is read first when present; real environment values win.
func Load() (*Config, error) {
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(); err != nil {
			return nil, fmt.Errorf("load .env: %w", err)
		}
	}

	cfg := &Config{
		ServerPort:          getEnv("SERVER_PORT", getEnv("PORT", "3000")),
		Environment:         getEnv("APP_ENV", "production"),
		ReadTimeout:         getEnvDuration("HTTP_READ_TIMEOUT", 30*time.Second),
		WriteTimeout:        getEnvDuration("HTTP_WRITE_TIMEOUT", 60*time.Second),
		IdleTimeout:         getEnvDuration("HTTP_IDLE_TIMEOUT", 120*time.Second),
		AllowedOrigins:      getEnvList("ALLOWED_ORIGINS", nil),
		SSLRedirect:         getEnvBool("SSL_REDIRECT", false),
		TrustedProxies:      getEnvList("TRUSTED_PROXIES", nil),
		AdminPassword:       getEnv("ADMIN_PASSWORD", "admin123"),
		AdminPasswordHash:   getEnv("ADMIN_PASSWORD_HASH", ""),
		AdminTokenTTL:       getEnvDuration("ADMIN_TOKEN_TTL", 24*time.Hour),
		SessionBackend:      getEnv("SESSION_BACKEND", SessionMemory),
		RedisAddr:           getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword:       getEnv("REDIS_PASSWORD", ""),
		RedisDB:             getEnvInt("REDIS_DB", 0),
		StoreBackend:        getEnv("STORE_BACKEND", StoreFile),
		DataDir:             getEnv("DATA_DIR", "./data"),
		SQLitePath:          getEnv("SQLITE_PATH", "./data/idealcar.sq3"),
		MigrationsDir:       getEnv("MIGRATIONS_DIR", "./migrations"),
		DatabaseURL:         getEnv("DATABASE_URL", ""),
		DBHost:              getEnv("DB_HOST", "localhost"),
		DBPort:              getEnvInt("DB_PORT", 5432),
		DBUser:              getEnv("DB_USER", "postgres"),
		DBPassword:          getEnv("DB_PASSWORD", "postgres"),
		DBName:              getEnv("DB_NAME", "idealcar"),
		DBSSLMode:           getEnv("DB_SSL_MODE", "disable"),
		DBMaxConns:          int32(getEnvInt("DB_MAX_CONNS", 10)),
		DBMinConns:          int32(getEnvInt("DB_MIN_CONNS", 1)),
		DBMaxConnLifetime:   getEnvDuration("DB_MAX_CONN_LIFETIME", time.Hour),
		DBMaxConnIdleTime:   getEnvDuration("DB_MAX_CONN_IDLE_TIME", 30*time.Minute),
		DBHealthCheckPeriod: getEnvDuration("DB_HEALTH_CHECK_PERIOD", time.Minute),
		UploadDir:           getEnv("UPLOAD_DIR", "./uploads"),
		UploadMaxFileSize:   int64(getEnvInt("UPLOAD_MAX_FILE_SIZE", 5<<20)),
		UploadThumbnails:    getEnvBool("UPLOAD_THUMBNAILS", false),
		RateLimitRequests:   getEnvInt("RATE_LIMIT_REQUESTS", 100),
		RateLimitWindow:     getEnvDuration("RATE_LIMIT_WINDOW", 15*time.Minute),
		LoginRateLimit:      getEnvInt("LOGIN_RATE_LIMIT", 5),
		LoginRateWindow:     getEnvDuration("LOGIN_RATE_WINDOW", 15*time.Minute),
		ContactRateLimit:    getEnvInt("CONTACT_RATE_LIMIT", 10),
		ContactRateWindow:   getEnvDuration("CONTACT_RATE_WINDOW", time.Hour),
		LogLevel:            getEnv("LOG_LEVEL", "info"),
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// IsDevelopment reports whether internal error details may be exposed.
func (c *Config) IsDevelopment() bool {
	return strings.EqualFold(c.Environment, "development")
}

// validate validates the configuration.
func (c *Config) validate() error {
	if c.ServerPort == "" {
		return errors.New("SERVER_PORT is required")
	}
	if c.AdminPassword == "" && c.AdminPasswordHash == "" {
		return errors.New("ADMIN_PASSWORD or ADMIN_PASSWORD_HASH is required")
	}
	if c.AdminTokenTTL <= 0 {
		return errors.New("ADMIN_TOKEN_TTL must be positive")
	}
	switch c.StoreBackend {
	case StoreFile, StoreMemory:
	case StoreSQLite:
		if c.SQLitePath == "" {
			return errors.New("SQLITE_PATH is required for the sqlite store")
		}
	case StorePostgres:
		if c.DatabaseURL == "" && (c.DBHost == "" || c.DBUser == "" || c.DBName == "") {
			return errors.New("DB_HOST, DB_USER and DB_NAME are required for the postgres store")
		}
	default:
		return fmt.Errorf("STORE_BACKEND must be one of: file, sqlite, postgres, memory (got %q)", c.StoreBackend)
	}
	switch c.SessionBackend {
	case SessionMemory:
	case SessionRedis:
		if c.RedisAddr == "" {
			return errors.New("REDIS_ADDR is required for the redis session backend")
		}
	default:
		return fmt.Errorf("SESSION_BACKEND must be one of: memory, redis (got %q)", c.SessionBackend)
	}
	for _, proxy := range c.TrustedProxies {
		if net.ParseIP(proxy) != nil {
			continue
		}
		if _, _, err := net.ParseCIDR(proxy); err != nil {
			return fmt.Errorf("TRUSTED_PROXIES: %q is not an IP or CIDR", proxy)
		}
	}
	if c.UploadMaxFileSize < 1 {
		return errors.New("UPLOAD_MAX_FILE_SIZE must be at least 1")
	}
	if c.RateLimitRequests < 1 || c.LoginRateLimit < 1 || c.ContactRateLimit < 1 {
		return errors.New("rate limits must be at least 1")
	}
	return nil
}

// getEnv gets an environment variable with a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt gets an environment variable as int with a default value.
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvDuration gets an environment variable as duration with a default value.
func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// getEnvBool gets an environment variable as bool with a default value.
func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}

// getEnvList gets a comma-separated environment variable with a default value.
func getEnvList(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	var out []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
