package main

import (
	"context"
	"net/http"
	"os"
	"time"

	"restaurant-app-api/internal/handlers"
	"restaurant-app-api/internal/middleware"
	"restaurant-app-api/internal/repositories"
	"restaurant-app-api/internal/services"
	"restaurant-app-api/internal/transformers"
	"restaurant-app-api/internal/validators"
	"restaurant-app-api/pkg/cache"
	"restaurant-app-api/pkg/config"
	"restaurant-app-api/pkg/database"
	"restaurant-app-api/pkg/logger"
	"restaurant-app-api/pkg/metrics"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// App represents the application structure
type App struct {
	Config            *config.Config
	Store             *database.Store
	Router            *gin.Engine
	SystemHandler     *handlers.SystemHandler
	AuthHandler       *handlers.AuthHandler
	RestaurantHandler *handlers.RestaurantHandler
	ProductHandler    *handlers.ProductHandler
	RateLimiter       *middleware.RateLimiter
	Server            *http.Server
}

// Create and initialize a new App instance
func NewApp(cfg *config.Config) *App {
	app := &App{Config: cfg}

	// Initialize infrastructure
	app.initializeDatabase()
	app.initializeCache()
	app.initializeMetrics()
	app.initializeRateLimiter()

	// Initialize business logic
	app.initializeDependencies()

	// Initialize web layer
	app.initializeRouter()

	return app
}

// connect the document store. An unreachable or unconfigured store is not
// fatal: listing endpoints degrade to empty results.
func (a *App) initializeDatabase() {
	a.Store = database.Connect(a.Config)
	if !a.Store.Available() {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := a.Store.CreateIndexes(ctx); err != nil {
		logger.GlobalLogger.Errorf("Failed to create indexes: %v", err)
	}
}

// initialize the optional Redis cache
func (a *App) initializeCache() {
	if err := cache.InitRedis(a.Config); err != nil {
		logger.GlobalLogger.Errorf("Failed to initialize Redis: %v", err)
		os.Exit(1)
	}
}

// initialize Prometheus metrics
func (a *App) initializeMetrics() {
	metrics.Init()
}

// initialize the rate limiter
func (a *App) initializeRateLimiter() {
	a.RateLimiter = middleware.NewRateLimiter(rate.Limit(100/60.0), 10)
	go a.RateLimiter.Cleanup()
}

// initialize all dependencies and run the startup seed
func (a *App) initializeDependencies() {
	// repositories
	userRepo := repositories.NewUserRepository(a.Store)
	restaurantRepo := repositories.NewRestaurantRepository(a.Store)
	productRepo := repositories.NewProductRepository(a.Store)

	// transformers
	userTrans := transformers.NewUserTransformer()
	restaurantTrans := transformers.NewRestaurantTransformer()
	productTrans := transformers.NewProductTransformer()

	// validators
	authValidator := validators.NewAuthValidator()

	// services
	authService := services.NewAuthService(userRepo, authValidator, userTrans)
	restaurantService := services.NewRestaurantService(restaurantRepo, productRepo, restaurantTrans, productTrans)
	productService := services.NewProductService(productRepo, productTrans)

	// startup seed, before any request is served
	seedService := services.NewSeedService(restaurantRepo, productRepo)
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := seedService.Run(ctx); err != nil {
		logger.GlobalLogger.Errorf("Failed to seed demonstration data: %v", err)
		os.Exit(1)
	}

	// handlers
	a.SystemHandler = handlers.NewSystemHandler(a.Store)
	a.AuthHandler = handlers.NewAuthHandler(authService)
	a.RestaurantHandler = handlers.NewRestaurantHandler(restaurantService)
	a.ProductHandler = handlers.NewProductHandler(productService)
}

// set up the Gin router with middleware and routes
func (a *App) initializeRouter() {
	a.Router = gin.New()
	a.setupMiddleware()
	a.setupRoutes()
}

// cleanup operations
func (a *App) cleanup() {
	a.Store.Close()
	cache.CloseRedis()
}
