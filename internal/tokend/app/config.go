package app

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/aussiebroadwan/tokend/pkg/jwtx"
	"github.com/aussiebroadwan/tokend/pkg/oauthtoken"
)

// Store drivers and session backends understood by New.
const (
	StoreDriverSQLite   = "sqlite"
	StoreDriverPostgres = "postgres"

	SessionBackendDatabase = "database"
	SessionBackendRedis    = "redis"
)

type Config struct {
	TokenSalt     string // Optional: literal token salt; overrides TokenSaltFile
	TokenSaltFile string // Optional: salt file, generated on first start (default: ./tokend.salt)
	TokenTTL      int64  // Default access token lifetime in seconds (default: 3600)

	CheckAppSecret  bool // Reject tokens whose app secret was rotated (default: true)
	CheckUserSecret bool // Reject tokens whose user secret was rotated (default: true)
	CheckSession    bool // Reject tokens whose session was closed (default: true)

	StoreDriver  string // sqlite or postgres (default: sqlite)
	DatabaseFile string // SQLite database file (default: ./tokend.db)
	DatabaseURL  string // Postgres connection string, required for postgres

	SessionBackend string        // database or redis (default: database)
	RedisAddr      string        // (default: localhost:6379)
	RedisPassword  string        // Optional
	RedisDB        int           // (default: 0)
	SessionTTL     time.Duration // Default session lifetime (default: 24h)
	SessionMaxTTL  time.Duration // Upper bound on requested lifetimes, 0 for none

	OperatorSecret string // Required: HS256 key for operator JWTs, at least 32 bytes
	OperatorIssuer string // Issuer expected in operator JWTs (default: tokend)

	Env                  string        // Environment (dev, staging, prod) (default: dev)
	LogLevel             string        // Log level (debug, info, warn, error) (default: info)
	LogFormat            string        // Log format (json, text) (default: json)
	Port                 int           // HTTP server port (default: 8080)
	ShutdownGracePeriod  time.Duration // Graceful shutdown timeout (default: 10s)
	HousekeepingInterval time.Duration // Expired session purge interval (default: 1h)
}

func LoadConfig() Config {
	return Config{
		TokenSalt:     os.Getenv("TOKEN_SALT"),
		TokenSaltFile: getEnvOrDefault("TOKEN_SALT_FILE", "tokend.salt"),
		TokenTTL:      int64(getEnvIntOrDefault("TOKEN_TTL", int(oauthtoken.DefaultTTL))),

		CheckAppSecret:  getEnvBoolOrDefault("CHECK_APP_SECRET", true),
		CheckUserSecret: getEnvBoolOrDefault("CHECK_USER_SECRET", true),
		CheckSession:    getEnvBoolOrDefault("CHECK_SESSION", true),

		StoreDriver:  getEnvOrDefault("STORE_DRIVER", StoreDriverSQLite),
		DatabaseFile: getEnvOrDefault("DATABASE_FILE", "tokend.db"),
		DatabaseURL:  os.Getenv("DATABASE_URL"),

		SessionBackend: getEnvOrDefault("SESSION_BACKEND", SessionBackendDatabase),
		RedisAddr:      getEnvOrDefault("REDIS_ADDR", "localhost:6379"),
		RedisPassword:  os.Getenv("REDIS_PASSWORD"),
		RedisDB:        getEnvIntOrDefault("REDIS_DB", 0),
		SessionTTL:     getEnvDurationOrDefault("SESSION_TTL", 24*time.Hour),
		SessionMaxTTL:  getEnvDurationOrDefault("SESSION_MAX_TTL", 0),

		OperatorSecret: os.Getenv("OPERATOR_SECRET"),
		OperatorIssuer: getEnvOrDefault("OPERATOR_ISSUER", "tokend"),

		Env:                  getEnvOrDefault("ENV", "dev"),
		LogLevel:             getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:            getEnvOrDefault("LOG_FORMAT", "json"),
		Port:                 getEnvIntOrDefault("PORT", 8080),
		ShutdownGracePeriod:  getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
		HousekeepingInterval: getEnvDurationOrDefault("HOUSEKEEPING_INTERVAL", 1*time.Hour),
	}
}

// Validate reports the first setting New cannot start with.
func (c Config) Validate() error {
	if len(c.OperatorSecret) < jwtx.MinHS256KeySize {
		return fmt.Errorf("OPERATOR_SECRET must be at least %d bytes", jwtx.MinHS256KeySize)
	}
	if c.TokenTTL < 0 {
		return errors.New("TOKEN_TTL must not be negative")
	}

	switch c.StoreDriver {
	case StoreDriverSQLite:
	case StoreDriverPostgres:
		if c.DatabaseURL == "" {
			return errors.New("DATABASE_URL is required for the postgres store")
		}
	default:
		return fmt.Errorf("unknown STORE_DRIVER %q", c.StoreDriver)
	}

	switch c.SessionBackend {
	case SessionBackendDatabase, SessionBackendRedis:
	default:
		return fmt.Errorf("unknown SESSION_BACKEND %q", c.SessionBackend)
	}

	return nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if intValue, err := strconv.Atoi(value); err == nil {
		return intValue
	}

	return defaultValue
}

func getEnvBoolOrDefault(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if b, err := strconv.ParseBool(value); err == nil {
		return b
	}

	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	// Try parsing as duration (e.g., "1h", "30m", "90s")
	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	// Bare integers are minutes
	if minutes, err := strconv.Atoi(value); err == nil {
		return time.Duration(minutes) * time.Minute
	}

	return defaultValue
}
