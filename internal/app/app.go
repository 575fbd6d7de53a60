// Package app provides application initialization and dependency injection.
package app

import (
	"context"

	"github.com/guttosm/cart-sync/config"
	"github.com/guttosm/cart-sync/internal/http"
	"github.com/guttosm/cart-sync/internal/middleware"
	"github.com/guttosm/cart-sync/internal/repository"
	"github.com/rs/zerolog/log"
)

// App is the wired cart service: the router plus the background resources
// that must be released on shutdown.
type App struct {
	Router   *http.Router
	Services *ServiceComponents
	Database *DatabaseComponents
	Audit    *middleware.AsyncLogger
}

// InitializeApp creates and wires all application dependencies.
// This is the main orchestration function that initializes all components.
func InitializeApp(cfg config.Config) (*App, error) {
	// Initialize logger first (needed by other components)
	InitializeLogger(cfg.Log)

	// Initialize database components (MongoDB repositories and services)
	dbComponents := InitializeDatabase(cfg.Database)

	// Request and audit log entries are written in batches when MongoDB is available
	var auditLogger *middleware.AsyncLogger
	var checkoutRepo repository.CheckoutStateRepositoryInterface
	if dbComponents != nil {
		auditLogger = middleware.NewAsyncLogger(dbComponents.LoggingService, middleware.AsyncLoggerConfig{
			BufferSize:    cfg.Database.LogBufferSize,
			NumWorkers:    cfg.Database.LogWorkers,
			BatchSize:     cfg.Database.LogBatchSize,
			FlushInterval: cfg.Database.LogFlushInterval,
		})
		checkoutRepo = dbComponents.CheckoutStateRepo
	}

	// Initialize business services
	serviceComponents, err := InitializeServices(cfg, checkoutRepo, auditLogger)
	if err != nil {
		auditLogger.Stop()
		_ = dbComponents.Close(context.Background())
		return nil, err
	}

	// Initialize router components (handlers and configuration)
	routerComponents := InitializeRouter(serviceComponents, dbComponents, auditLogger, cfg)

	return &App{
		Router:   http.NewRouter(routerComponents.Handler, routerComponents.HealthHandler, routerComponents.Config),
		Services: serviceComponents,
		Database: dbComponents,
		Audit:    auditLogger,
	}, nil
}

// Close releases background resources in dependency order: the router's
// middleware first, then sessions, then pending log entries, then MongoDB.
func (a *App) Close(ctx context.Context) {
	a.Router.Stop()
	a.Services.Sessions.Stop()
	a.Audit.Stop()
	if err := a.Database.Close(ctx); err != nil {
		log.Warn().Err(err).Msg("Failed to close MongoDB connection")
	}
}
