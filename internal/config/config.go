package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	Port        int
	LogLevel    string
	LogFormat   string
	Environment string
	ServiceName string
	Version     string
	LogDir      string

	// Storage
	StoreDriver       string
	DBUser            string
	DBPassword        string
	DBHost            string
	DBPort            string
	DBName            string
	DBSSLMode         string
	DBMaxConns        int
	DBMaxConnLifetime time.Duration
	SQLitePath        string

	// HTTP and integrations
	TrustedProxies      []string
	DiscordWebhookID    string
	DiscordWebhookToken string

	// Caches, sessions and map canvas
	TreeCacheSize   int
	TreeCacheTTL    time.Duration
	SessionCapacity int
	SessionTTL      time.Duration
	CanvasWidth     int
	CanvasHeight    int

	// Content classifier
	ClassifierURL        string
	ClassifierModel      string
	ClassifierTimeout    time.Duration
	ClassifierFailClosed bool
	UnsafeThreshold      float64

	// Image admission
	ImageMinBytes     int
	ImageMaxBytes     int
	ImageTargetBytes  int
	ImageMinDimension int
	ImageMaxDimension int
	ImageMaxPixels    int
	RequireImage      bool

	// Event publishing
	EventMaxRetries     int
	EventRetryDelay     time.Duration
	EventDeadLetterPath string
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// .env is optional; real environment variables win
	_ = godotenv.Load()

	cfg := &Config{
		LogLevel:    strings.ToLower(getEnv("LOG_LEVEL", DefaultLogLevel)),
		LogFormat:   strings.ToLower(getEnv("LOG_FORMAT", DefaultLogFormat)),
		Environment: getEnv("ENVIRONMENT", DefaultEnvironment),
		ServiceName: getEnv("SERVICE_NAME", DefaultServiceName),
		Version:     getEnv("VERSION", DefaultVersion),
		LogDir:      getEnv("LOG_DIR", ""),

		StoreDriver:         strings.ToLower(getEnv("STORE_DRIVER", StoreDriverPostgres)),
		DBUser:              getEnv("DB_USER", "postgres"),
		DBPassword:          getEnv("DB_PASSWORD", "postgres"),
		DBHost:              getEnv("DB_HOST", "localhost"),
		DBPort:              getEnv("DB_PORT", "5432"),
		DBName:              getEnv("DB_NAME", "greenmap"),
		DBSSLMode:           getEnv("DB_SSLMODE", "disable"),
		DBMaxConns:          getEnvAsInt("DB_MAX_CONNS", DefaultDBMaxConns),
		DBMaxConnLifetime:   getEnvAsDuration("DB_MAX_CONN_LIFETIME", DefaultDBMaxConnLifetime),
		SQLitePath:          getEnv("SQLITE_PATH", DefaultSQLitePath),
		TrustedProxies:      getEnvAsList("TRUSTED_PROXIES"),
		DiscordWebhookID:    getEnv("DISCORD_WEBHOOK_ID", ""),
		DiscordWebhookToken: getEnv("DISCORD_WEBHOOK_TOKEN", ""),
		TreeCacheSize:       getEnvAsInt("TREE_CACHE_SIZE", DefaultTreeCacheSize),
		TreeCacheTTL:        getEnvAsDuration("TREE_CACHE_TTL", DefaultTreeCacheTTL),
		SessionCapacity:     getEnvAsInt("SESSION_CAPACITY", DefaultSessionCapacity),
		SessionTTL:          getEnvAsDuration("SESSION_TTL", DefaultSessionTTL),
		CanvasWidth:         getEnvAsInt("CANVAS_WIDTH", DefaultCanvasWidth),
		CanvasHeight:        getEnvAsInt("CANVAS_HEIGHT", DefaultCanvasHeight),

		ClassifierURL:        strings.TrimRight(getEnv("CLASSIFIER_URL", ""), "/"),
		ClassifierModel:      getEnv("CLASSIFIER_MODEL", DefaultClassifierModel),
		ClassifierTimeout:    getEnvAsDuration("CLASSIFIER_TIMEOUT", DefaultClassifierTimeout),
		ClassifierFailClosed: getEnvAsBool("CLASSIFIER_FAIL_CLOSED", false),
		UnsafeThreshold:      getEnvAsFloat("UNSAFE_THRESHOLD", DefaultUnsafeThreshold),

		ImageMinBytes:     getEnvAsInt("IMAGE_MIN_BYTES", DefaultImageMinBytes),
		ImageMaxBytes:     getEnvAsInt("IMAGE_MAX_BYTES", DefaultImageMaxBytes),
		ImageTargetBytes:  getEnvAsInt("IMAGE_TARGET_BYTES", DefaultImageTargetBytes),
		ImageMinDimension: getEnvAsInt("IMAGE_MIN_DIMENSION", DefaultImageMinDimension),
		ImageMaxDimension: getEnvAsInt("IMAGE_MAX_DIMENSION", 0),
		ImageMaxPixels:    getEnvAsInt("IMAGE_MAX_PIXELS", DefaultImageMaxPixels),
		RequireImage:      getEnvAsBool("REQUIRE_IMAGE", true),

		EventMaxRetries:     getEnvAsInt("EVENT_MAX_RETRIES", DefaultEventMaxRetries),
		EventRetryDelay:     getEnvAsDuration("EVENT_RETRY_DELAY", DefaultEventRetryDelay),
		EventDeadLetterPath: getEnv("EVENT_DEADLETTER_PATH", DefaultEventDeadLetterPath),
	}

	port, err := strconv.Atoi(getEnv("PORT", DefaultPort))
	if err != nil {
		return nil, fmt.Errorf("invalid PORT value: %w", err)
	}
	cfg.Port = port

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks cross-field constraints that getters cannot express.
func (c *Config) Validate() error {
	switch c.StoreDriver {
	case StoreDriverPostgres, StoreDriverSQLite, StoreDriverMemory:
	default:
		return fmt.Errorf("invalid STORE_DRIVER %q: expected postgres, sqlite or memory", c.StoreDriver)
	}
	if c.ImageMinBytes <= 0 || c.ImageMaxBytes < c.ImageMinBytes {
		return fmt.Errorf("invalid image byte bounds: min=%d max=%d", c.ImageMinBytes, c.ImageMaxBytes)
	}
	if c.ImageTargetBytes <= 0 {
		return fmt.Errorf("IMAGE_TARGET_BYTES must be positive, got %d", c.ImageTargetBytes)
	}
	if c.UnsafeThreshold <= 0 || c.UnsafeThreshold > 1 {
		return fmt.Errorf("UNSAFE_THRESHOLD must be in (0,1], got %v", c.UnsafeThreshold)
	}
	if c.CanvasWidth <= 0 || c.CanvasHeight <= 0 {
		return fmt.Errorf("invalid canvas size %dx%d", c.CanvasWidth, c.CanvasHeight)
	}
	return nil
}

// IsProduction reports whether the service runs with production settings.
func (c *Config) IsProduction() bool {
	return c.Environment == "prod" || c.Environment == "production"
}

// GetDBConnString returns the PostgreSQL connection string
func (c *Config) GetDBConnString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.DBUser,
		c.DBPassword,
		c.DBHost,
		c.DBPort,
		c.DBName,
		c.DBSSLMode,
	)
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	v, err := strconv.Atoi(getEnv(key, ""))
	if err != nil {
		return defaultValue
	}
	return v
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	v, err := strconv.ParseFloat(getEnv(key, ""), 64)
	if err != nil {
		return defaultValue
	}
	return v
}

func getEnvAsBool(key string, defaultValue bool) bool {
	v, err := strconv.ParseBool(getEnv(key, ""))
	if err != nil {
		return defaultValue
	}
	return v
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	v, err := time.ParseDuration(getEnv(key, ""))
	if err != nil {
		return defaultValue
	}
	return v
}

func getEnvAsList(key string) []string {
	raw := getEnv(key, "")
	if raw == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
