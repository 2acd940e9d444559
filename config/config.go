// Package config provides configuration management for the delivery service.
package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds the complete application configuration.
type Config struct {
	Server     ServerConfig
	Storefront StorefrontConfig
	Delivery   DeliveryConfig
	Database   DatabaseConfig
	Log        LogConfig
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Port           string
	RateLimit      int
	RateWindow     time.Duration
	OrderRateLimit int
	RequestTimeout time.Duration
	CORSOrigins    []string
	SwaggerUser    string
	SwaggerPass    string
}

// StorefrontConfig holds the establishment and session settings.
type StorefrontConfig struct {
	ShopName        string
	WhatsAppPhone   string
	WhatsAppBaseURL string
	SessionTTL      time.Duration
	// SecureCookie marks the session cookie HTTPS-only.
	SecureCookie bool
}

// DeliveryConfig holds the postal directory and zone settings.
type DeliveryConfig struct {
	ViaCEPBaseURL string
	LookupTimeout time.Duration
	// Zones is the raw "Neighborhood:fee,..." list; empty means the built-in zones.
	Zones            string
	AddressCacheSize int
	AddressCacheTTL  time.Duration
	// CircuitBreaker configuration
	CircuitBreakerFailureThreshold int
	CircuitBreakerSuccessThreshold int
	CircuitBreakerTimeout          time.Duration
}

// DatabaseConfig holds MongoDB configuration.
type DatabaseConfig struct {
	URI          string
	DatabaseName string
	LogsTTL      time.Duration
	Enabled      bool
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
			Port:           getEnv("PORT", "8080"),
			RateLimit:      getEnvInt("RATE_LIMIT", 120),
			RateWindow:     getEnvDuration("RATE_WINDOW", time.Minute),
			OrderRateLimit: getEnvInt("ORDER_RATE_LIMIT", 10),
			RequestTimeout: getEnvDuration("REQUEST_TIMEOUT", 15*time.Second),
			CORSOrigins:    parseList(os.Getenv("CORS_ORIGINS")),
			SwaggerUser:    getEnv("SWAGGER_USER", ""),
			SwaggerPass:    getEnv("SWAGGER_PASS", ""),
		},
		Storefront: StorefrontConfig{
			ShopName:        getEnv("SHOP_NAME", "Fabin Lanches"),
			WhatsAppPhone:   getEnv("WHATSAPP_PHONE", "5511982470496"),
			WhatsAppBaseURL: getEnv("WHATSAPP_BASE_URL", "https://api.whatsapp.com/send"),
			SessionTTL:      getEnvDuration("SESSION_TTL", 2*time.Hour),
			SecureCookie:    getEnvBool("SESSION_SECURE_COOKIE", false),
		},
		Delivery: DeliveryConfig{
			ViaCEPBaseURL:                  getEnv("VIACEP_BASE_URL", "https://viacep.com.br/ws"),
			LookupTimeout:                  getEnvDuration("LOOKUP_TIMEOUT", 10*time.Second),
			Zones:                          os.Getenv("DELIVERY_ZONES"),
			AddressCacheSize:               getEnvInt("ADDRESS_CACHE_SIZE", 1000),
			AddressCacheTTL:                getEnvDuration("ADDRESS_CACHE_TTL", 24*time.Hour),
			CircuitBreakerFailureThreshold: getEnvInt("CIRCUIT_BREAKER_FAILURE_THRESHOLD", 5),
			CircuitBreakerSuccessThreshold: getEnvInt("CIRCUIT_BREAKER_SUCCESS_THRESHOLD", 2),
			CircuitBreakerTimeout:          getEnvDuration("CIRCUIT_BREAKER_TIMEOUT", 30*time.Second),
		},
		Database: DatabaseConfig{
			URI:          getEnv("MONGODB_URI", "mongodb://localhost:27017"),
			DatabaseName: getEnv("MONGODB_DATABASE", "delivery"),
			LogsTTL:      getEnvDuration("MONGODB_LOGS_TTL", 7*24*time.Hour),
			Enabled:      getEnvBool("MONGODB_ENABLED", false),
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

// parseList splits a comma separated value, dropping blanks. Empty input yields nil so
// callers can apply their own default.
func parseList(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		if v := strings.TrimSpace(p); v != "" {
			result = append(result, v)
		}
	}
	return result
}
