package app

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/wsawebmaster/delivery/config"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// testConfig returns a configuration that needs no network: the database is off and
// ViaCEP points at an address nothing listens on.
func testConfig() config.Config {
	return config.Config{
		Server: config.ServerConfig{
			Port:           "0",
			RateLimit:      100,
			RateWindow:     time.Minute,
			OrderRateLimit: 5,
			RequestTimeout: 5 * time.Second,
		},
		Storefront: config.StorefrontConfig{
			ShopName:        "Fabin Lanches",
			WhatsAppPhone:   "5511982470496",
			WhatsAppBaseURL: "https://api.whatsapp.com/send",
			SessionTTL:      time.Hour,
		},
		Delivery: config.DeliveryConfig{
			ViaCEPBaseURL:                  "http://127.0.0.1:1/ws",
			LookupTimeout:                  time.Second,
			AddressCacheSize:               10,
			AddressCacheTTL:                time.Minute,
			CircuitBreakerFailureThreshold: 3,
			CircuitBreakerSuccessThreshold: 1,
			CircuitBreakerTimeout:          time.Second,
		},
		Log: config.LogConfig{Level: "error"},
	}
}
