// Package app provides database initialization and setup.
package app

import (
	"context"
	"time"

	"github.com/guttosm/cart-sync/config"
	"github.com/guttosm/cart-sync/internal/circuitbreaker"
	"github.com/guttosm/cart-sync/internal/repository"
	"github.com/guttosm/cart-sync/internal/service"
	"github.com/rs/zerolog/log"
)

// DatabaseComponents holds database-related components.
type DatabaseComponents struct {
	DB                     *repository.MongoDB
	CheckoutStateRepo      repository.CheckoutStateRepositoryInterface
	LoggingService         service.LoggingService
	CheckoutCircuitBreaker *circuitbreaker.CircuitBreaker
	LogsCircuitBreaker     *circuitbreaker.CircuitBreaker
}

// InitializeDatabase connects to MongoDB and creates the checkout state and
// logs repositories behind circuit breakers.
// Returns nil if the database is disabled or the connection fails; the
// service then keeps checkout state in memory and skips persisted logs.
func InitializeDatabase(cfg config.DatabaseConfig) *DatabaseComponents {
	if !cfg.Enabled {
		return nil
	}

	db, err := repository.NewMongoDB(cfg.URI, cfg.DatabaseName, mongoOptions(cfg)...)
	if err != nil {
		log.Error().Err(err).Msg("Failed to connect to MongoDB - continuing without database")
		return nil
	}

	log.Info().Str("database", cfg.DatabaseName).Msg("Connected to MongoDB")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if cfg.LogsTTL > 0 {
		if err := db.SetLogsTTL(ctx, cfg.LogsTTL); err != nil {
			log.Warn().Err(err).Msg("Failed to set logs TTL index")
		}
	}
	if cfg.CheckoutStateTTL > 0 {
		if err := db.SetCheckoutStateTTL(ctx, cfg.CheckoutStateTTL); err != nil {
			log.Warn().Err(err).Msg("Failed to set checkout state TTL index")
		}
	}

	checkoutCB := newDatabaseBreaker(cfg, "mongodb-checkout-states")
	logsCB := newDatabaseBreaker(cfg, "mongodb-logs")

	logsRepo := repository.NewLogsRepositoryWithCircuitBreaker(repository.NewLogsRepository(db), logsCB)
	checkoutRepo := repository.NewCheckoutStateRepositoryWithCircuitBreaker(repository.NewCheckoutStateRepository(db), checkoutCB)

	return &DatabaseComponents{
		DB:                     db,
		CheckoutStateRepo:      checkoutRepo,
		LoggingService:         service.NewLoggingService(logsRepo),
		CheckoutCircuitBreaker: checkoutCB,
		LogsCircuitBreaker:     logsCB,
	}
}

func mongoOptions(cfg config.DatabaseConfig) []repository.Option {
	var opts []repository.Option
	if cfg.MaxPoolSize > 0 {
		maxSize := uint64(cfg.MaxPoolSize)
		opts = append(opts, repository.WithPoolSize(min(5, maxSize), maxSize))
	}
	if cfg.ConnectTimeout > 0 {
		opts = append(opts, repository.WithTimeouts(cfg.ConnectTimeout, cfg.ConnectTimeout/2))
	}
	if cfg.Compression {
		opts = append(opts, repository.WithCompression())
	}
	return opts
}

func newDatabaseBreaker(cfg config.DatabaseConfig, name string) *circuitbreaker.CircuitBreaker {
	return circuitbreaker.New(circuitbreaker.Config{
		FailureThreshold: cfg.CircuitBreakerFailureThreshold,
		SuccessThreshold: cfg.CircuitBreakerSuccessThreshold,
		Timeout:          cfg.CircuitBreakerTimeout,
		Name:             name,
		OnStateChange:    logBreakerTransition,
	})
}

func logBreakerTransition(name string, from, to circuitbreaker.State) {
	log.Warn().
		Str("breaker", name).
		Str("from", from.String()).
		Str("to", to.String()).
		Msg("Circuit breaker state changed")
}

// Close disconnects from MongoDB. It is a no-op on nil components.
func (d *DatabaseComponents) Close(ctx context.Context) error {
	if d == nil || d.DB == nil {
		return nil
	}
	return d.DB.Close(ctx)
}

// HealthCheck pings MongoDB.
func (d *DatabaseComponents) HealthCheck(ctx context.Context) error {
	return d.DB.HealthCheck(ctx)
}
