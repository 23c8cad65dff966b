package main

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "restaurant-app-api/docs"
)

// setupRoutes configures all routes
func (a *App) setupRoutes() {
	a.setupSystemRoutes()
	a.setupAPIRoutes()
}

// setupSystemRoutes configures diagnostics, metrics and documentation
func (a *App) setupSystemRoutes() {
	a.Router.GET("/", a.SystemHandler.Root)
	a.Router.GET("/test", a.SystemHandler.TestDatabase)
	a.Router.GET("/health", a.SystemHandler.Health)

	// Expose Prometheus metrics endpoint
	a.Router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Serve Swagger UI
	a.Router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}

// setupAPIRoutes configures the public API routes
func (a *App) setupAPIRoutes() {
	auth := a.Router.Group("/auth")
	{
		auth.POST("/send-otp", a.AuthHandler.SendOTP)
		auth.POST("/verify", a.AuthHandler.VerifyOTP)
	}

	restaurants := a.Router.Group("/restaurants")
	{
		restaurants.GET("", a.RestaurantHandler.ListRestaurants)
		restaurants.GET("/:id", a.RestaurantHandler.GetRestaurant)
		restaurants.GET("/:id/products", a.RestaurantHandler.ListRestaurantProducts)
	}

	products := a.Router.Group("/products")
	{
		products.GET("", a.ProductHandler.ListProducts)
		products.GET("/:id", a.ProductHandler.GetProduct)
	}
}
