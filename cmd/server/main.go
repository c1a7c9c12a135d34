package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/coastalrealty/coastal-api/internal/chat"
	"github.com/coastalrealty/coastal-api/internal/config"
	"github.com/coastalrealty/coastal-api/internal/database"
	"github.com/coastalrealty/coastal-api/internal/handlers"
	"github.com/coastalrealty/coastal-api/internal/logger"
	"github.com/coastalrealty/coastal-api/internal/middleware"
	"github.com/coastalrealty/coastal-api/internal/repository"
	"github.com/coastalrealty/coastal-api/internal/services"
)

const (
	shutdownTimeout = 30 * time.Second
)

func main() {
	// Load .env if present; real environment variables win
	_ = godotenv.Load()

	// Load configuration from environment variables
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize structured logger
	log := logger.New(cfg.Server.Env)
	log.Info("Starting Coastal Realty API", map[string]interface{}{
		"version":     "0.1.0",
		"environment": cfg.Server.Env,
		"port":        cfg.Server.Port,
	})

	// Create database connection
	ctx := context.Background()
	db, err := database.NewPostgres(ctx, cfg.Database)
	if err != nil {
		log.Fatal("Failed to connect to database", err, map[string]interface{}{
			"host": cfg.Database.Host,
			"port": cfg.Database.Port,
			"name": cfg.Database.Name,
		})
	}
	defer db.Close()

	log.Info("Database connection established", map[string]interface{}{
		"host":     cfg.Database.Host,
		"port":     cfg.Database.Port,
		"database": cfg.Database.Name,
		"pool_min": cfg.Database.PoolMin,
		"pool_max": cfg.Database.PoolMax,
	})

	// Setup Gin router
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()

	// Add middleware in order: RequestID -> Logger -> Recovery -> CORS
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(log))
	router.Use(middleware.Recovery(log))
	router.Use(middleware.CORS(cfg.CORS.Origins))

	// Register health check routes
	healthHandler := handlers.NewHealthHandler(db, cfg.Server.Env)
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/api/v1/info", healthHandler.Info)

	// Initialize repository and service layers
	leadRepo := repository.NewLeadRepository(db)
	propertyRepo := repository.NewPropertyRepository(db)
	neighborhoodRepo := repository.NewNeighborhoodRepository(db)
	contentRepo := repository.NewContentRepository(db)

	leadService := services.NewLeadService(leadRepo, log)
	propertyService := services.NewPropertyService(propertyRepo, log)
	neighborhoodService := services.NewNeighborhoodService(neighborhoodRepo, propertyRepo, log)
	contentService := services.NewContentService(contentRepo, log)

	// Initialize handlers
	leadHandler := handlers.NewLeadHandler(leadService)
	propertyHandler := handlers.NewPropertyHandler(propertyService)
	neighborhoodHandler := handlers.NewNeighborhoodHandler(neighborhoodService)
	contentHandler := handlers.NewContentHandler(contentService)
	chatHandler := handlers.NewChatHandler(chat.NewDefaultResponder(), handlers.NewChatLeadForwarder(leadService))
	placeholderHandler := handlers.NewPlaceholderHandler()
	sitemapHandler := handlers.NewSitemapHandler(contentService, cfg.Server.BaseURL)

	// Crawler surface
	router.GET("/sitemap.xml", sitemapHandler.Sitemap)
	router.GET("/robots.txt", sitemapHandler.Robots)

	// Register API routes
	api := router.Group("/api")
	{
		api.POST("/lead", leadHandler.Create)
		api.GET("/properties", propertyHandler.Search)
		api.GET("/properties/featured", propertyHandler.Featured)

		neighborhoods := api.Group("/neighborhoods")
		{
			neighborhoods.GET("", neighborhoodHandler.List)
			neighborhoods.GET("/:slug", neighborhoodHandler.Get)
			neighborhoods.GET("/:slug/properties", neighborhoodHandler.Properties)
		}

		api.GET("/team", contentHandler.Team)
		api.GET("/testimonials", contentHandler.Testimonials)
		api.GET("/blog", contentHandler.Posts)
		api.GET("/blog/:slug", contentHandler.Post)

		api.POST("/chat/respond", chatHandler.Respond)
		api.GET("/placeholder", placeholderHandler.Image)
	}

	// Create HTTP server
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Server.Port),
		Handler: router,
	}

	// Start server in goroutine
	go func() {
		log.Info("Server listening", map[string]interface{}{
			"port": cfg.Server.Port,
			"addr": srv.Addr,
		})
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start", err, nil)
		}
	}()

	// Wait for interrupt signal (SIGINT or SIGTERM)
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	// Graceful shutdown
	log.Info("Shutting down server...", nil)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown", err, map[string]interface{}{
			"timeout": shutdownTimeout.String(),
		})
	}

	log.Info("Server exited", nil)
}
