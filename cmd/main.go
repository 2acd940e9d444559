// Package main is the entry point for the delivery storefront.
//
// @title           Delivery API
// @version         1.0.0
// @description     Ordering widget for a snack bar: menu, cart, postal code delivery zones and WhatsApp order dispatch.
//
// @termsOfService  http://swagger.io/terms/
//
// @contact.name   API Support
// @contact.email  support@example.com
// @contact.url    https://github.com/wsawebmaster/delivery
//
// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT
//
// @host      localhost:8080
// @BasePath  /
//
// @tag.name        Storefront
// @tag.description Menu and session view
//
// @tag.name        Cart
// @tag.description Cart quantity changes
//
// @tag.name        Delivery
// @tag.description Postal code lookup and delivery fees
//
// @tag.name        Order
// @tag.description Order validation and WhatsApp dispatch
//
// @tag.name        Health
// @tag.description Health check endpoints
package main

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/wsawebmaster/delivery/docs" // swagger docs

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"github.com/wsawebmaster/delivery/config"
	"github.com/wsawebmaster/delivery/internal/app"
)

func main() {
	// a .env file is optional; real environment variables win
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Warn().Err(err).Msg("Failed to read .env")
	}

	cfg := config.Load()

	application, err := app.InitializeApp(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Initialization failed")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	server := app.NewServer(application.Router, cfg.Server.Port)
	runErr := server.Run(ctx)

	closeCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := application.Close(closeCtx); err != nil {
		log.Error().Err(err).Msg("Shutdown cleanup failed")
	}

	if runErr != nil {
		log.Fatal().Err(runErr).Msg("Server error")
	}
}
