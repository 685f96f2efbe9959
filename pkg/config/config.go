package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	OAuth     OAuthConfig
	Session   SessionConfig
	Redis     RedisConfig
	RateLimit RateLimitConfig
	Snapshot  SnapshotConfig
	Log       LogConfig
	Metrics   MetricsConfig
}

type ServerConfig struct {
	Port         string
	Mode         string
	ReadTimeout  int
	WriteTimeout int
}

type DatabaseConfig struct {
	Path          string
	MigrationsDir string // empty means the embedded scripts
}

type OAuthConfig struct {
	ClientID         string
	ClientSecret     string
	AuthURL          string
	TokenURL         string
	UserInfoURL      string
	CallbackURL      string
	SuperAdminEmails []string
}

type SessionConfig struct {
	Secret string
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// Enabled reports whether a redis server is configured
func (c RedisConfig) Enabled() bool {
	return c.Addr != ""
}

type RateLimitConfig struct {
	PerSecond float64
	Burst     int
}

type SnapshotConfig struct {
	IntervalSeconds int
	Workers         int
}

type LogConfig struct {
	Level string
}

type MetricsConfig struct {
	Enabled bool
}

var AppConfig *Config

// Load loads configuration from .env file and environment variables
func Load() error {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		logrus.Debug("No .env file found, using environment variables")
	}

	AppConfig = &Config{
		Server: ServerConfig{
			Port:         getEnv("PORT", "8080"),
			Mode:         getEnv("GIN_MODE", "release"),
			ReadTimeout:  getEnvAsInt("READ_TIMEOUT", 15),
			WriteTimeout: getEnvAsInt("WRITE_TIMEOUT", 15),
		},
		Database: DatabaseConfig{
			Path:          getEnv("DB_PATH", "./menuhub.db"),
			MigrationsDir: getEnv("MIGRATIONS_DIR", ""),
		},
		OAuth: OAuthConfig{
			ClientID:         getEnv("OAUTH_CLIENT_ID", ""),
			ClientSecret:     getEnv("OAUTH_CLIENT_SECRET", ""),
			AuthURL:          getEnv("OAUTH_AUTH_URL", ""),
			TokenURL:         getEnv("OAUTH_TOKEN_URL", ""),
			UserInfoURL:      getEnv("OAUTH_USERINFO_URL", ""),
			CallbackURL:      getEnv("OAUTH_CALLBACK_URL", ""),
			SuperAdminEmails: getEnvAsList("SUPER_ADMIN_EMAILS"),
		},
		Session: SessionConfig{
			Secret: getEnv("SESSION_SECRET", "default-secret-key"),
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", ""),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvAsInt("REDIS_DB", 0),
		},
		RateLimit: RateLimitConfig{
			PerSecond: getEnvAsFloat("STATUS_RATE_LIMIT", 5),
			Burst:     getEnvAsInt("STATUS_RATE_BURST", 10),
		},
		Snapshot: SnapshotConfig{
			IntervalSeconds: getEnvAsInt("SNAPSHOT_INTERVAL_SECONDS", 60),
			Workers:         getEnvAsInt("SNAPSHOT_WORKERS", 1),
		},
		Log: LogConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
		Metrics: MetricsConfig{
			Enabled: getEnvAsBool("METRICS_ENABLED", true),
		},
	}

	return nil
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsInt gets an environment variable as integer or returns a default value
func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

// getEnvAsList splits a comma separated variable, dropping blanks and normalizing case
func getEnvAsList(key string) []string {
	var list []string
	for _, item := range strings.Split(os.Getenv(key), ",") {
		if item = strings.ToLower(strings.TrimSpace(item)); item != "" {
			list = append(list, item)
		}
	}
	return list
}
