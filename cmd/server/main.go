package main

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"

	"dijlah_store/internal/config"
	"dijlah_store/internal/database"
	"dijlah_store/internal/handlers"
	"dijlah_store/internal/middleware"
	"dijlah_store/internal/migrations"
	"dijlah_store/internal/redis"
	"dijlah_store/internal/repository"
	"dijlah_store/internal/services"
	"dijlah_store/pkg/whatsapp"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.Initialize(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Migrations must run before any query touching category, sizes or status
	if err := migrations.RunMigrations(db); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	// Initialize Redis
	redisClient, err := redis.Initialize(cfg.RedisURL)
	if err != nil {
		log.Fatal("Failed to connect to Redis:", err)
	}

	// Initialize WhatsApp deep-link client
	whatsappClient := whatsapp.NewClient(cfg.WhatsAppNumber)

	// Initialize repositories
	productRepo := repository.NewProductRepository(db)
	orderRepo := repository.NewOrderRepository(db)

	// Initialize services
	cartTTL := time.Duration(cfg.CartTTL) * time.Second
	catalogService := services.NewCatalogService(productRepo)
	cartService := services.NewCartService(redisClient, productRepo, cfg.DeliveryFee, cartTTL)
	checkoutService := services.NewCheckoutService(redisClient, productRepo, orderRepo, whatsappClient, cfg.DeliveryFee)
	adminService := services.NewAdminService(productRepo, orderRepo)

	// Initialize handlers
	catalogHandler := handlers.NewCatalogHandler(catalogService)
	cartHandler := handlers.NewCartHandler(cartService, cfg.CartTTL)
	checkoutHandler := handlers.NewCheckoutHandler(checkoutService, cartService, cfg.CartTTL)
	adminHandler := handlers.NewAdminHandler(adminService)

	// Setup routes
	router := gin.Default()

	router.GET("/", catalogHandler.Home)
	router.GET("/products", catalogHandler.ListProducts)
	router.GET("/category/:name", catalogHandler.ListByCategory)
	router.GET("/product/:id", catalogHandler.ProductDetail)

	router.POST("/add-to-cart", cartHandler.AddToCart)
	router.GET("/cart", cartHandler.ViewCart)
	router.POST("/remove-from-cart", cartHandler.RemoveFromCart)

	router.GET("/checkout", checkoutHandler.ShowForm)
	router.POST("/checkout", checkoutHandler.Submit)

	admin := router.Group("/admin", middleware.AdminGuard(cfg.AdminTokenHash))
	{
		admin.GET("/add", adminHandler.ShowAddProduct)
		admin.POST("/add", adminHandler.AddProduct)
		admin.GET("/products", adminHandler.ListProducts)
		admin.GET("/orders", adminHandler.ListOrders)
		admin.POST("/mark-delivered", adminHandler.MarkDelivered)
	}

	// Start server
	log.Printf("Server starting on port %s", cfg.ServerPort)
	if err := router.Run(":" + cfg.ServerPort); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
