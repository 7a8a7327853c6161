// Package main initializes and starts the coffee API server, setting up
// configuration, logging, database connections, repositories, services,
// handlers and routing.
package main

import (
	"cmp"
	"context"
	"fmt"
	"time"

	nethttp "net/http"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/ebazhanova/CoffeeToGo/internal/config"
	"github.com/ebazhanova/CoffeeToGo/internal/db"
	"github.com/ebazhanova/CoffeeToGo/internal/logger"
	"github.com/ebazhanova/CoffeeToGo/internal/repository"
	"github.com/ebazhanova/CoffeeToGo/internal/server/handler/http"
	"github.com/ebazhanova/CoffeeToGo/internal/service"
)

var (
	// version holds the build version set via ldflags.
	version string
	// buildDate holds the build timestamp set via ldflags.
	buildDate string
)

func main() {
	// Load .env before flags and env overrides are read.
	_ = godotenv.Load()

	// Parse command-line and environment configuration.
	options := config.Parse()
	addr := options.Port
	dbName := options.DatabaseDSN

	// Print build metadata (or "N/A" if unset).
	fmt.Printf("Build version: %s\n", cmp.Or(version, "N/A"))
	fmt.Printf("Build date: %s\n", cmp.Or(buildDate, "N/A"))

	// Initialize structured logging.
	log := logger.New()
	defer func() { _ = log.Log.Sync() }()
	if err := log.Init("Info"); err != nil {
		log.Log.Fatal("failed to init logger", zap.Error(err))
	}
	zapLogger := log.Log

	// Initialize PostgreSQL connection.
	postgressDB, err := db.InitPostgres(dbName)
	if err != nil {
		zapLogger.Fatal("cannot init database", zap.Error(err))
	}

	// Periodically remove expired bearer tokens.
	db.StartTokenCleaner(context.Background(), postgressDB, time.Hour, zapLogger)

	// Initialize repositories.
	authRepo := repository.NewPostgresAuthRepository(postgressDB)
	catalogRepo := repository.NewPostgresCatalogRepository(postgressDB)
	cartRepo := repository.NewPostgresCartRepository(postgressDB)
	favoritesRepo := repository.NewPostgresFavoritesRepository(postgressDB)
	orderRepo := repository.NewPostgresOrderRepository(postgressDB)

	// Initialize business-logic services.
	authService := service.NewAuthService(authRepo, time.Duration(options.TokenTTLHours)*time.Hour)
	catalogService := service.NewCatalogService(catalogRepo)
	cartService := service.NewCartService(cartRepo)
	favoritesService := service.NewFavoritesService(favoritesRepo)
	orderService := service.NewOrderService(orderRepo, cartRepo)

	// Create HTTP handlers.
	authHandler := &http.AuthHandler{AuthService: authService}
	catalogHandler := &http.CatalogHandler{CatalogService: catalogService, ImagesDir: options.ImagesDir}
	cartHandler := &http.CartHandler{CartService: cartService}
	favoritesHandler := &http.FavoritesHandler{FavoritesService: favoritesService}
	orderHandler := &http.OrderHandler{OrderService: orderService}

	// Build the router with middleware and routes.
	router := http.NewRouter(authHandler, catalogHandler, cartHandler, favoritesHandler, orderHandler, authService, zapLogger)

	server := &nethttp.Server{
		Addr:    addr,
		Handler: router,
	}

	zapLogger.Info("starting HTTP server", zap.String("addr", addr))
	if err := server.ListenAndServe(); err != nil {
		zapLogger.Fatal("failed to start HTTP server", zap.Error(err))
	}
}
