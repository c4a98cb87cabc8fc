// Package server boots the process: configuration, both datastores, the
// cache, the websocket hub, and the HTTP listener.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/firelovers/storefront/app/controllers"
	"github.com/firelovers/storefront/app/graphql"
	"github.com/firelovers/storefront/app/models"
	"github.com/firelovers/storefront/app/repositories"
	"github.com/firelovers/storefront/app/routes"
	"github.com/firelovers/storefront/app/services"
	"github.com/firelovers/storefront/config"
	"github.com/firelovers/storefront/internal/broadcast"
	"github.com/firelovers/storefront/internal/kernel"
	"github.com/firelovers/storefront/internal/store"
	"github.com/firelovers/storefront/pkg/cache"
	"github.com/firelovers/storefront/pkg/database"
	"github.com/firelovers/storefront/pkg/logger"
	"github.com/firelovers/storefront/pkg/ws"
)

// Start boots every subsystem and blocks until the process is told to stop.
func Start() error {
	if err := config.Load(); err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	logger.Init()

	ctx := context.Background()

	documents, err := store.Connect(ctx, config.MongoURI(), config.MongoDatabase())
	if err != nil {
		return fmt.Errorf("connect document store: %w", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = documents.Close(shutdownCtx)
	}()

	if err := database.Connect(); err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	if err := database.DB.AutoMigrate(&models.User{}, &models.Order{}, &models.Review{}); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}

	// The cache is optional: a down Redis degrades the games proxy, nothing
	// else.
	if err := cache.Connect(); err != nil {
		logger.Warn("cache unavailable, continuing without it", "error", err)
	}

	hub := ws.NewHub()
	go hub.Run()

	handler, err := buildHandler(documents, hub)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              ":" + config.AppPort(),
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server listening", "addr", srv.Addr, "env", config.AppEnv())
		errCh <- srv.ListenAndServe()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case sig := <-stop:
		logger.Info("shutting down", "signal", sig.String())
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

// buildHandler wires repositories into services into controllers and hands
// the result to the kernel.
func buildHandler(documents *store.Store, hub *ws.Hub) (http.Handler, error) {
	catalogRepo := repositories.NewCatalogRepository(documents)
	analyticsRepo := repositories.NewAnalyticsRepository(documents)
	userRepo := repositories.NewUserRepository(database.DB)
	orderRepo := repositories.NewOrderRepository(database.DB)
	reviewRepo := repositories.NewReviewRepository(database.DB)

	catalogSvc := services.NewCatalogService(catalogRepo, broadcast.NewHubPublisher(hub))
	orderSvc := services.NewOrderService(orderRepo, catalogRepo, userRepo)
	reviewSvc := services.NewReviewService(reviewRepo, catalogRepo, userRepo)
	userSvc := services.NewUserService(userRepo)
	analyticsSvc := services.NewAnalyticsService(analyticsRepo)
	gamesSvc := services.NewGamesService()

	graphqlHandler, err := graphql.Handler(catalogSvc)
	if err != nil {
		return nil, fmt.Errorf("build graphql schema: %w", err)
	}

	return kernel.New(kernel.Deps{
		Hub:     hub,
		GraphQL: graphqlHandler,
		Controllers: routes.Controllers{
			Auth:       controllers.NewAuthController(userSvc),
			Users:      controllers.NewUserController(userSvc),
			Products:   controllers.NewProductController(catalogSvc),
			Categories: controllers.NewCategoryController(catalogSvc),
			Orders:     controllers.NewOrderController(orderSvc),
			Reviews:    controllers.NewReviewController(reviewSvc),
			Analytics:  controllers.NewAnalyticsController(analyticsSvc),
			Games:      controllers.NewGamesController(gamesSvc),
		},
	}), nil
}
