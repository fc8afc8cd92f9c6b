package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"dashmart.backend/internal/interfaces/http/handlers"
	"dashmart.backend/internal/interfaces/http/middleware"
)

type routeDeps struct {
	authHandler    *handlers.AuthHandler
	apiKeyHandler  *handlers.ApiKeyHandler
	productHandler *handlers.ProductHandler
	vendorHandler  *handlers.VendorHandler
	driverHandler  *handlers.DriverHandler
	authMiddleware gin.HandlerFunc
	apiKeyAuth     gin.HandlerFunc
}

func registerRoutes(r *gin.Engine, d routeDeps) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Dashboard API (JWT-protected)
	v1 := r.Group("/api/v1")
	{
		auth := v1.Group("/auth")
		{
			auth.POST("/login", d.authHandler.Login)
			auth.GET("/me", d.authMiddleware, d.authHandler.GetMe)
		}

		apiKeys := v1.Group("/api-keys")
		apiKeys.Use(d.authMiddleware)
		{
			apiKeys.POST("", d.apiKeyHandler.CreateApiKey)
			apiKeys.GET("", d.apiKeyHandler.ListApiKeys)
			apiKeys.DELETE("/:id", d.apiKeyHandler.RevokeApiKey)
			apiKeys.PUT("/:id/activate", d.apiKeyHandler.ActivateApiKey)
			apiKeys.PUT("/:id/description", d.apiKeyHandler.UpdateDescription)
			apiKeys.PUT("/:id/permissions", d.apiKeyHandler.UpdatePermissions)
		}

		products := v1.Group("/products")
		products.Use(d.authMiddleware)
		{
			products.POST("", middleware.IdempotencyMiddleware(), d.productHandler.CreateProduct)
			products.GET("", d.productHandler.ListProducts)
			products.GET("/:id", d.productHandler.GetProduct)
			products.PUT("/:id", d.productHandler.UpdateProduct)
			products.DELETE("/:id", d.productHandler.DeleteProduct)
		}

		vendors := v1.Group("/vendors")
		vendors.Use(d.authMiddleware)
		{
			vendors.POST("", d.vendorHandler.CreateVendor)
			vendors.GET("", d.vendorHandler.ListVendors)
			vendors.GET("/:id", d.vendorHandler.GetVendor)
			vendors.PUT("/:id/status", middleware.RequireAdmin(), d.vendorHandler.SetVendorStatus)
		}

		drivers := v1.Group("/drivers")
		drivers.Use(d.authMiddleware)
		{
			drivers.POST("", d.driverHandler.CreateDriver)
			drivers.GET("", d.driverHandler.ListDrivers)
			drivers.GET("/:id", d.driverHandler.GetDriver)
			drivers.PUT("/:id/availability", d.driverHandler.SetAvailability)
		}
	}

	// Integration API (consumer key/secret protected).
	// Every route goes through the same extractor/validator/permission gate.
	integration := r.Group("/integration/v1")
	integration.Use(d.apiKeyAuth)
	{
		integration.GET("/products", d.productHandler.ListProducts)
		integration.GET("/products/:id", d.productHandler.GetProduct)
		integration.POST("/products", d.productHandler.CreateProduct)
		integration.PUT("/products/:id", d.productHandler.UpdateProduct)
		integration.DELETE("/products/:id", d.productHandler.DeleteProduct)

		integration.GET("/vendors", d.vendorHandler.ListVendors)
		integration.GET("/vendors/:id", d.vendorHandler.GetVendor)

		integration.GET("/drivers", d.driverHandler.ListDrivers)
		integration.GET("/drivers/:id", d.driverHandler.GetDriver)
	}
}
