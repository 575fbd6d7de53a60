// Package config provides configuration management for the cart service.
package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds the complete application configuration.
type Config struct {
	Server      ServerConfig
	Upstream    UpstreamConfig
	Session     SessionConfig
	Currency    CurrencyConfig
	Delivery    DeliveryConfig
	Idempotency IdempotencyConfig
	Database    DatabaseConfig
	Log         LogConfig
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Port             string
	RateLimit        int
	RateWindow       time.Duration
	SessionRateLimit int
	RequestTimeout   time.Duration
	CORSOrigins      []string
	APIKeys          []string
	SwaggerUser      string
	SwaggerPass      string
}

// UpstreamConfig describes the storefront cart server.
type UpstreamConfig struct {
	BaseURL     string
	Timeout     time.Duration
	AddPath     string
	UpdatePath  string
	DeletePath  string
	PayPath     string
	LoginPath   string
	LandingPath string
	// CircuitBreaker configuration
	CircuitBreakerFailureThreshold int
	CircuitBreakerSuccessThreshold int
	CircuitBreakerTimeout          time.Duration
}

// SessionConfig holds session token and session cache configuration.
type SessionConfig struct {
	TokenSecret string
	TokenTTL    time.Duration
	Capacity    int
	TTL         time.Duration
	Shards      int
}

// CurrencyConfig controls how amounts are rendered.
type CurrencyConfig struct {
	Locale string
	Suffix string
}

// DeliveryConfig lists the payment options offered per delivery method.
type DeliveryConfig struct {
	HomePayments  []string
	StorePayments []string
}

// IdempotencyConfig holds the Idempotency-Key replay cache settings.
type IdempotencyConfig struct {
	Enabled    bool
	TTL        time.Duration
	MaxEntries int
}

// DatabaseConfig holds MongoDB configuration.
type DatabaseConfig struct {
	URI              string
	DatabaseName     string
	LogsTTL          time.Duration
	CheckoutStateTTL time.Duration
	Enabled          bool
	MaxPoolSize      int
	ConnectTimeout   time.Duration
	Compression      bool
	// CircuitBreaker configuration
	CircuitBreakerFailureThreshold int
	CircuitBreakerSuccessThreshold int
	CircuitBreakerTimeout          time.Duration
	// Async log writer
	LogBufferSize    int
	LogWorkers       int
	LogBatchSize     int
	LogFlushInterval time.Duration
}

// LogConfig holds logger configuration.
type LogConfig struct {
	Level  string
	Pretty bool
}

// Load creates a Config from environment variables.
func Load() Config {
	return Config{
		Server: ServerConfig{
			Port:             getEnv("PORT", "8080"),
			RateLimit:        getEnvInt("RATE_LIMIT", 100),
			RateWindow:       getEnvDuration("RATE_WINDOW", time.Minute),
			SessionRateLimit: getEnvInt("SESSION_RATE_LIMIT", 60),
			RequestTimeout:   getEnvDuration("REQUEST_TIMEOUT", 30*time.Second),
			CORSOrigins:      parseCORSOrigins(os.Getenv("CORS_ORIGINS")),
			APIKeys:          parseList(os.Getenv("API_KEYS")),
			SwaggerUser:      getEnv("SWAGGER_USER", ""),
			SwaggerPass:      getEnv("SWAGGER_PASS", ""),
		},
		Upstream: UpstreamConfig{
			BaseURL:                        getEnv("UPSTREAM_BASE_URL", "http://localhost:3000"),
			Timeout:                        getEnvDuration("UPSTREAM_TIMEOUT", 10*time.Second),
			AddPath:                        getEnv("UPSTREAM_ADD_PATH", "/api/add-cart"),
			UpdatePath:                     getEnv("UPSTREAM_UPDATE_PATH", "/api/update-cart"),
			DeletePath:                     getEnv("UPSTREAM_DELETE_PATH", "/api/delete-cart"),
			PayPath:                        getEnv("UPSTREAM_PAY_PATH", "/api/pay"),
			LoginPath:                      getEnv("LOGIN_PATH", "/user-login"),
			LandingPath:                    getEnv("LANDING_PATH", "/"),
			CircuitBreakerFailureThreshold: getEnvInt("UPSTREAM_CB_FAILURE_THRESHOLD", 5),
			CircuitBreakerSuccessThreshold: getEnvInt("UPSTREAM_CB_SUCCESS_THRESHOLD", 2),
			CircuitBreakerTimeout:          getEnvDuration("UPSTREAM_CB_TIMEOUT", 30*time.Second),
		},
		Session: SessionConfig{
			TokenSecret: getEnv("SESSION_TOKEN_SECRET", "your-secret-key-change-in-production"),
			TokenTTL:    getEnvDuration("SESSION_TOKEN_TTL", 24*time.Hour),
			Capacity:    getEnvInt("SESSION_CACHE_SIZE", 10000),
			TTL:         getEnvDuration("SESSION_TTL", 2*time.Hour),
			Shards:      getEnvInt("SESSION_CACHE_SHARDS", 16),
		},
		Currency: CurrencyConfig{
			Locale: getEnv("CURRENCY_LOCALE", "vi"),
			Suffix: getEnvRaw("CURRENCY_SUFFIX", " VND"),
		},
		Delivery: DeliveryConfig{
			HomePayments:  parseListOr(os.Getenv("HOME_PAYMENT_OPTIONS"), []string{"cod", "bank_transfer", "e_wallet"}),
			StorePayments: parseListOr(os.Getenv("STORE_PAYMENT_OPTIONS"), []string{"pay_at_store", "bank_transfer"}),
		},
		Idempotency: IdempotencyConfig{
			Enabled:    getEnvBool("IDEMPOTENCY_ENABLED", true),
			TTL:        getEnvDuration("IDEMPOTENCY_TTL", 24*time.Hour),
			MaxEntries: getEnvInt("IDEMPOTENCY_MAX_ENTRIES", 10000),
		},
		Database: DatabaseConfig{
			URI:                            getEnv("MONGODB_URI", "mongodb://localhost:27017"),
			DatabaseName:                   getEnv("MONGODB_DATABASE", "cart_sync"),
			LogsTTL:                        getEnvDuration("MONGODB_LOGS_TTL", 30*24*time.Hour),
			CheckoutStateTTL:               getEnvDuration("MONGODB_CHECKOUT_STATE_TTL", 7*24*time.Hour),
			Enabled:                        getEnvBool("MONGODB_ENABLED", false),
			MaxPoolSize:                    getEnvInt("MONGODB_MAX_POOL_SIZE", 50),
			ConnectTimeout:                 getEnvDuration("MONGODB_CONNECT_TIMEOUT", 10*time.Second),
			Compression:                    getEnvBool("MONGODB_COMPRESSION", true),
			CircuitBreakerFailureThreshold: getEnvInt("CIRCUIT_BREAKER_FAILURE_THRESHOLD", 5),
			CircuitBreakerSuccessThreshold: getEnvInt("CIRCUIT_BREAKER_SUCCESS_THRESHOLD", 2),
			CircuitBreakerTimeout:          getEnvDuration("CIRCUIT_BREAKER_TIMEOUT", 30*time.Second),
			LogBufferSize:                  getEnvInt("LOG_BUFFER_SIZE", 1000),
			LogWorkers:                     getEnvInt("LOG_WORKERS", 4),
			LogBatchSize:                   getEnvInt("LOG_BATCH_SIZE", 50),
			LogFlushInterval:               getEnvDuration("LOG_FLUSH_INTERVAL", time.Second),
		},
		Log: LogConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Pretty: getEnvBool("LOG_PRETTY", false),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}

// getEnvRaw keeps surrounding whitespace; an explicitly empty value is honored.
func getEnvRaw(key, defaultValue string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return defaultValue
}

func parseList(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			result = append(result, p)
		}
	}
	if len(result) == 0 {
		return nil
	}
	return result
}

func parseListOr(s string, defaults []string) []string {
	if list := parseList(s); list != nil {
		return list
	}
	return defaults
}

func parseCORSOrigins(s string) []string {
	// Default origins for local development
	defaults := []string{
		"http://localhost:3000",
		"http://127.0.0.1:3000",
	}
	return append(defaults, parseList(s)...)
}
