package app

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/wsawebmaster/delivery/config"
	"github.com/wsawebmaster/delivery/internal/catalog"
	"github.com/wsawebmaster/delivery/internal/circuitbreaker"
	"github.com/wsawebmaster/delivery/internal/delivery"
	"github.com/wsawebmaster/delivery/internal/storefront"
	"github.com/wsawebmaster/delivery/internal/view"
	"github.com/wsawebmaster/delivery/internal/ws"
)

const (
	sessionSweepInterval = time.Minute
	cacheJanitorInterval = 10 * time.Minute
)

// StorefrontComponents holds the ordering widget and what it depends on.
type StorefrontComponents struct {
	Controller       *storefront.Controller
	Renderer         *view.Renderer
	Sessions         *storefront.SessionStore
	Hub              *ws.Hub
	AddressCache     *delivery.AddressCache
	DirectoryBreaker *circuitbreaker.CircuitBreaker
}

// InitializeStorefront builds the catalog, the postal directory chain
// (ViaCEP behind a circuit breaker and an address cache), the renderer and the controller.
func InitializeStorefront(cfg config.Config) (*StorefrontComponents, error) {
	zones, err := delivery.ParseZones(cfg.Delivery.Zones)
	if err != nil {
		return nil, fmt.Errorf("delivery zones: %w", err)
	}

	renderer, err := view.NewRenderer()
	if err != nil {
		return nil, fmt.Errorf("templates: %w", err)
	}

	breaker := circuitbreaker.New(circuitbreaker.Config{
		FailureThreshold: cfg.Delivery.CircuitBreakerFailureThreshold,
		SuccessThreshold: cfg.Delivery.CircuitBreakerSuccessThreshold,
		Timeout:          cfg.Delivery.CircuitBreakerTimeout,
		Name:             "viacep",
		IsFailure:        delivery.CountsAsOutage,
		OnStateChange:    logBreakerTransition,
	})

	var directory delivery.Directory = delivery.NewViaCEPClient(cfg.Delivery.ViaCEPBaseURL,
		delivery.WithCircuitBreaker(breaker))
	var cache *delivery.AddressCache
	if cfg.Delivery.AddressCacheSize > 0 {
		cache = delivery.NewAddressCache(cfg.Delivery.AddressCacheSize, cfg.Delivery.AddressCacheTTL)
		directory = delivery.NewCachedDirectory(directory, cache)
	}

	hub := ws.NewHub()
	controller := storefront.NewController(
		catalog.Default(),
		delivery.NewResolver(directory, zones),
		renderer,
		storefront.Config{
			ShopName:        cfg.Storefront.ShopName,
			WhatsAppBaseURL: cfg.Storefront.WhatsAppBaseURL,
			WhatsAppPhone:   cfg.Storefront.WhatsAppPhone,
			LookupTimeout:   cfg.Delivery.LookupTimeout,
		},
		storefront.WithPublisher(hub),
	)

	log.Info().
		Str("shop", controller.ShopName()).
		Int("zones", zones.Len()).
		Str("viacep", cfg.Delivery.ViaCEPBaseURL).
		Msg("Storefront initialized")

	return &StorefrontComponents{
		Controller:       controller,
		Renderer:         renderer,
		Sessions:         storefront.NewSessionStore(cfg.Storefront.SessionTTL),
		Hub:              hub,
		AddressCache:     cache,
		DirectoryBreaker: breaker,
	}, nil
}

// runCacheJanitor purges expired addresses every interval until ctx is done. A nil cache
// returns immediately.
func runCacheJanitor(ctx context.Context, cache *delivery.AddressCache, interval time.Duration) {
	if cache == nil {
		return
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if n := cache.Purge(); n > 0 {
				log.Debug().Int("removed", n).Msg("Expired addresses purged")
			}
		case <-ctx.Done():
			return
		}
	}
}
