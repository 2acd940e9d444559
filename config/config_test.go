package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var keys = []string{
	"PORT", "RATE_LIMIT", "RATE_WINDOW", "ORDER_RATE_LIMIT", "REQUEST_TIMEOUT", "CORS_ORIGINS",
	"SWAGGER_USER", "SWAGGER_PASS", "SHOP_NAME", "WHATSAPP_PHONE", "WHATSAPP_BASE_URL",
	"SESSION_TTL", "SESSION_SECURE_COOKIE", "VIACEP_BASE_URL", "LOOKUP_TIMEOUT", "DELIVERY_ZONES",
	"ADDRESS_CACHE_SIZE", "ADDRESS_CACHE_TTL", "CIRCUIT_BREAKER_FAILURE_THRESHOLD",
	"CIRCUIT_BREAKER_SUCCESS_THRESHOLD", "CIRCUIT_BREAKER_TIMEOUT", "MONGODB_URI",
	"MONGODB_DATABASE", "MONGODB_LOGS_TTL", "MONGODB_ENABLED", "LOG_LEVEL", "LOG_PRETTY",
}

// clearEnv blanks every key Load reads; an empty value counts as unset.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range keys {
		t.Setenv(k, "")
	}
}

func TestLoad(t *testing.T) {
	t.Run("loads default values", func(t *testing.T) {
		clearEnv(t)

		cfg := Load()

		assert.Equal(t, "8080", cfg.Server.Port)
		assert.Equal(t, 120, cfg.Server.RateLimit)
		assert.Equal(t, time.Minute, cfg.Server.RateWindow)
		assert.Equal(t, 10, cfg.Server.OrderRateLimit)
		assert.Nil(t, cfg.Server.CORSOrigins)
		assert.Equal(t, "Fabin Lanches", cfg.Storefront.ShopName)
		assert.Equal(t, "5511982470496", cfg.Storefront.WhatsAppPhone)
		assert.Equal(t, 2*time.Hour, cfg.Storefront.SessionTTL)
		assert.Equal(t, "https://viacep.com.br/ws", cfg.Delivery.ViaCEPBaseURL)
		assert.Equal(t, 10*time.Second, cfg.Delivery.LookupTimeout)
		assert.Empty(t, cfg.Delivery.Zones)
		assert.Equal(t, 5, cfg.Delivery.CircuitBreakerFailureThreshold)
		assert.False(t, cfg.Database.Enabled)
		assert.Equal(t, 7*24*time.Hour, cfg.Database.LogsTTL)
		assert.Equal(t, "info", cfg.Log.Level)
		assert.False(t, cfg.Log.Pretty)
	})

	t.Run("loads values from environment", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("PORT", "9090")
		t.Setenv("RATE_LIMIT", "50")
		t.Setenv("RATE_WINDOW", "30s")
		t.Setenv("SHOP_NAME", "Lanchonete da Praça")
		t.Setenv("WHATSAPP_PHONE", "5516999990000")
		t.Setenv("SESSION_TTL", "30m")
		t.Setenv("LOOKUP_TIMEOUT", "3s")
		t.Setenv("DELIVERY_ZONES", "Centro:4,Sé:0")
		t.Setenv("MONGODB_ENABLED", "true")
		t.Setenv("LOG_PRETTY", "true")

		cfg := Load()

		assert.Equal(t, "9090", cfg.Server.Port)
		assert.Equal(t, 50, cfg.Server.RateLimit)
		assert.Equal(t, 30*time.Second, cfg.Server.RateWindow)
		assert.Equal(t, "Lanchonete da Praça", cfg.Storefront.ShopName)
		assert.Equal(t, "5516999990000", cfg.Storefront.WhatsAppPhone)
		assert.Equal(t, 30*time.Minute, cfg.Storefront.SessionTTL)
		assert.Equal(t, 3*time.Second, cfg.Delivery.LookupTimeout)
		assert.Equal(t, "Centro:4,Sé:0", cfg.Delivery.Zones)
		assert.True(t, cfg.Database.Enabled)
		assert.True(t, cfg.Log.Pretty)
	})

	t.Run("handles invalid values gracefully", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("RATE_LIMIT", "invalid")
		t.Setenv("MONGODB_ENABLED", "invalid")
		t.Setenv("RATE_WINDOW", "invalid")

		cfg := Load()

		assert.Equal(t, 120, cfg.Server.RateLimit)
		assert.False(t, cfg.Database.Enabled)
		assert.Equal(t, time.Minute, cfg.Server.RateWindow)
	})
}

func TestParseList(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{"empty", "", nil},
		{"blank", "   ", nil},
		{"single", "http://localhost:8080", []string{"http://localhost:8080"}},
		{"trims and drops blanks", " https://a.com , ,https://b.com ", []string{"https://a.com", "https://b.com"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, parseList(tt.input))
		})
	}
}
