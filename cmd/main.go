// Package main is the entry point for the cart-sync application.
//
// @title           Cart Sync API
// @version         1.0.0
// @description     Keeps a shopper's cart in step with the storefront cart server.
//
//	Quantity changes, line selection, delivery details and checkout are applied
//	against the upstream cart; out-of-order responses are discarded.
//
// @termsOfService  http://swagger.io/terms/
//
// @contact.name   API Support
// @contact.email  support@example.com
// @contact.url    https://github.com/guttosm/cart-sync
//
// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT
//
// @host      localhost:8080
// @BasePath  /
//
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
// @description                 Session token issued by POST /api/session, as "Bearer <token>".
//
// @securityDefinitions.apikey  ApiKeyAuth
// @in                          header
// @name                        X-API-Key
// @description                 API key for the admin routes.
//
// @tag.name        Session
// @tag.description Cart session lifecycle
//
// @tag.name        Cart
// @tag.description Cart lines, quantities and selection
//
// @tag.name        Delivery
// @tag.description Delivery method and details
//
// @tag.name        Checkout
// @tag.description Order submission
//
// @tag.name        Admin
// @tag.description Audit log queries
//
// @tag.name        Health
// @tag.description Health check endpoints
package main

import (
	"context"

	_ "github.com/guttosm/cart-sync/docs" // swagger docs

	"github.com/guttosm/cart-sync/config"
	"github.com/guttosm/cart-sync/internal/app"
	"github.com/rs/zerolog/log"
)

func main() {
	cfg := config.Load()

	application, err := app.InitializeApp(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize application")
	}

	server := app.NewServer(application.Router, cfg.Server)
	server.OnShutdown(application.Close)

	if err := server.Run(); err != nil {
		application.Close(context.Background())
		log.Fatal().Err(err).Msg("Server error")
	}
}
