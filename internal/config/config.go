package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	Port        string
	Environment string

	DatabaseURL  string
	StoreTimeout time.Duration

	RedisURL string

	JWTSecret       string
	JWTAccessExpiry time.Duration

	MinIOEndpoint       string
	MinIOPublicEndpoint string
	MinIOAccessKey      string
	MinIOSecretKey      string
	MinIOBucket         string
	MinIOUseSSL         bool
	MinIOPublicUseSSL   bool

	CORSOrigins string

	ResendAPIKey string
	FromEmail    string
	AppName      string

	// TACTestMode causes emails to be captured instead of transmitted.
	TACTestMode bool
	TACExpiry   time.Duration

	// NotifyWindow is the look-ahead window defining "upcoming" events.
	NotifyWindow time.Duration
	// NotifyRoles is the set of roles eligible for event reminders.
	NotifyRoles []string
	Timezone    string

	InitSecret    string
	AdminEmail    string
	AdminPassword string
}

func Load() *Config {
	return &Config{
		Port:        getEnv("PORT", "8080"),
		Environment: getEnv("ENVIRONMENT", "development"),

		DatabaseURL:  getEnv("DATABASE_URL", ""),
		StoreTimeout: getDurationEnv("STORE_TIMEOUT", 10*time.Second),

		RedisURL: getEnv("REDIS_URL", "redis://localhost:6379"),

		JWTSecret:       getEnv("JWT_SECRET", ""),
		JWTAccessExpiry: getDurationEnv("JWT_ACCESS_EXPIRY", 24*time.Hour),

		MinIOEndpoint:       getEnv("MINIO_ENDPOINT", "localhost:9000"),
		MinIOPublicEndpoint: getEnv("MINIO_PUBLIC_ENDPOINT", getEnv("MINIO_ENDPOINT", "localhost:9000")),
		MinIOAccessKey:      getEnv("MINIO_ACCESS_KEY", "minioadmin"),
		MinIOSecretKey:      getEnv("MINIO_SECRET_KEY", "minioadmin"),
		MinIOBucket:         getEnv("MINIO_BUCKET", "gpsphere-media"),
		MinIOUseSSL:         getBoolEnv("MINIO_USE_SSL", false),
		MinIOPublicUseSSL:   getBoolEnv("MINIO_PUBLIC_USE_SSL", true),

		CORSOrigins: getEnv("CORS_ORIGINS", "http://localhost:5173"),

		ResendAPIKey: getEnv("RESEND_API_KEY", ""),
		FromEmail:    getEnv("FROM_EMAIL", "noreply@gpsphere.com"),
		AppName:      getEnv("APP_NAME", "GPS UTM"),

		TACTestMode: getBoolEnv("TAC_TEST_MODE", false),
		TACExpiry:   getDurationEnv("TAC_EXPIRY", 15*time.Minute),

		NotifyWindow: getDurationEnv("NOTIFY_WINDOW", 72*time.Hour),
		NotifyRoles:  getListEnv("NOTIFY_ROLES", []string{"member", "admin"}),
		Timezone:     getEnv("APP_TIMEZONE", "UTC"),

		InitSecret:    getEnv("INIT_SECRET", ""),
		AdminEmail:    getEnv("ADMIN_EMAIL", "admin@gpsphere.com"),
		AdminPassword: getEnv("ADMIN_PASSWORD", "Admin123!"),
	}
}

func (c *Config) IsDevelopment() bool {
	return c.Environment != "production"
}

// Location resolves the configured timezone, falling back to UTC so date
// comparisons always happen in one consistent zone.
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		parsed, err := strconv.ParseBool(value)
		if err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		parsed, err := time.ParseDuration(value)
		if err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getListEnv(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	if len(out) == 0 {
		return defaultValue
	}
	return out
}
