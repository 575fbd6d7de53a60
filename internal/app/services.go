// Package app provides service initialization.
package app

import (
	"fmt"

	"github.com/guttosm/cart-sync/config"
	"github.com/guttosm/cart-sync/internal/circuitbreaker"
	"github.com/guttosm/cart-sync/internal/client"
	"github.com/guttosm/cart-sync/internal/domain/model"
	"github.com/guttosm/cart-sync/internal/money"
	"github.com/guttosm/cart-sync/internal/repository"
	"github.com/guttosm/cart-sync/internal/service"
)

// ServiceComponents holds service-related components.
type ServiceComponents struct {
	Sessions        service.SessionManager
	Tokens          service.SessionTokenService
	UpstreamBreaker *circuitbreaker.CircuitBreaker
}

// InitializeServices builds the upstream cart client and the session manager.
// A nil repo keeps checkout state in memory.
func InitializeServices(cfg config.Config, repo repository.CheckoutStateRepositoryInterface, audit service.AuditRecorder) (*ServiceComponents, error) {
	breaker := circuitbreaker.New(circuitbreaker.Config{
		FailureThreshold: cfg.Upstream.CircuitBreakerFailureThreshold,
		SuccessThreshold: cfg.Upstream.CircuitBreakerSuccessThreshold,
		Timeout:          cfg.Upstream.CircuitBreakerTimeout,
		Name:             "upstream-cart",
		IsFailure:        client.IsBreakerFailure,
		OnStateChange:    logBreakerTransition,
	})

	httpClient, err := client.NewClient("cart", cfg.Upstream.BaseURL, cfg.Upstream.Timeout, breaker)
	if err != nil {
		return nil, fmt.Errorf("failed to create upstream client: %w", err)
	}
	cartService := client.NewCartService(httpClient, upstreamPaths(cfg.Upstream))

	if repo == nil {
		repo = repository.NewMemoryCheckoutStateRepository()
	}

	sessions := service.NewSessionManager(
		service.SessionManagerConfig{
			Capacity:  cfg.Session.Capacity,
			TTL:       cfg.Session.TTL,
			NumShards: cfg.Session.Shards,
		},
		cartService,
		repo,
		service.SessionOptions{
			Formatter: money.NewFormatter(cfg.Currency.Locale, cfg.Currency.Suffix),
			PaymentOptions: model.PaymentOptions{
				model.DeliveryHome:  cfg.Delivery.HomePayments,
				model.DeliveryStore: cfg.Delivery.StorePayments,
			},
			LoginPath:   cfg.Upstream.LoginPath,
			LandingPath: cfg.Upstream.LandingPath,
			Audit:       audit,
		},
	)

	return &ServiceComponents{
		Sessions:        sessions,
		Tokens:          service.NewSessionTokenService(cfg.Session.TokenSecret, cfg.Session.TokenTTL),
		UpstreamBreaker: breaker,
	}, nil
}

// upstreamPaths overlays the configured endpoints on the storefront defaults.
func upstreamPaths(cfg config.UpstreamConfig) client.Paths {
	paths := client.DefaultPaths()
	if cfg.AddPath != "" {
		paths.Add = cfg.AddPath
	}
	if cfg.UpdatePath != "" {
		paths.Update = cfg.UpdatePath
	}
	if cfg.DeletePath != "" {
		paths.Delete = cfg.DeletePath
	}
	if cfg.PayPath != "" {
		paths.Pay = cfg.PayPath
	}
	return paths
}
