package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"concierge/internal/config"
	"concierge/internal/handler"
	"concierge/internal/repository"
	"concierge/internal/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	// Print version info
	log.Printf("Broker Portal Concierge")
	log.Printf("Version: %s", Version)
	log.Printf("Build Time: %s", BuildTime)
	log.Printf("Git Commit: %s", GitCommit)
	log.Println("")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Set Gin mode
	gin.SetMode(cfg.Server.GinMode)

	// Initialize database connection
	repo, err := repository.NewPostgresRepository(
		cfg.GetPostgreSQLDSN(),
		cfg.PostgreSQL.MaxConnections,
		cfg.PostgreSQL.MaxIdleConnections,
	)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer repo.Close()

	log.Println("✅ Connected to PostgreSQL database")

	// Initialize Gemini client. A missing key is surfaced per-request as a
	// configuration failure; the portal endpoints stay available.
	gemini, err := service.NewGeminiClient(&cfg.Gemini)
	if err != nil {
		log.Fatalf("Failed to initialize Gemini client: %v", err)
	}
	if gemini.IsEnabled() {
		log.Printf("✅ Gemini client initialized")
		log.Printf("   - Model: %s", cfg.Gemini.Model)
		log.Printf("   - Timeout: %ds", cfg.Gemini.Timeout)
	} else {
		log.Println("⚠️  Gemini is disabled - assistant requests will fail until configured")
		log.Println("   Set GEMINI_API_KEY environment variable to enable the assistant")
	}

	// Initialize services
	compiler := service.NewLedgerCompiler(cfg.Assistant.DescriptionLimit)
	prompts := service.NewPromptAssembler(cfg.Assistant.AgencyName, cfg.Assistant.ContactNumber)
	assistant := service.NewAssistant(repo, gemini, compiler, prompts, cfg.Assistant.SnapshotLimit)
	catalog := service.NewCatalog(repo)

	log.Println("✅ Services initialized")

	// Initialize handlers
	assistantHandler := handler.NewAssistantHandler(assistant)
	propertyHandler := handler.NewPropertyHandler(catalog, cfg.Assistant.ListingLimit, cfg.Assistant.ListingMaxLimit)
	inquiryHandler := handler.NewInquiryHandler(catalog)

	// Setup Gin router
	router := gin.Default()

	// CORS configuration
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{cfg.Server.AllowedOrigins}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Content-Type", "Authorization"}
	router.Use(cors.New(corsConfig))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":     "healthy",
			"service":    "broker-portal-concierge",
			"version":    Version,
			"build_time": BuildTime,
			"git_commit": GitCommit,
		})
	})

	// Version endpoint
	router.GET("/version", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"version":    Version,
			"build_time": BuildTime,
			"git_commit": GitCommit,
		})
	})

	// Assistant endpoint
	router.POST("/assistant/message", assistantHandler.Message)

	// Portal API routes
	apiV1 := router.Group("/api/v1")
	{
		apiV1.GET("/properties", propertyHandler.List)
		apiV1.GET("/properties/:id", propertyHandler.Get)
		apiV1.POST("/inquiries", inquiryHandler.Submit)
	}

	// Start server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	log.Printf("🚀 Starting server on %s", addr)
	log.Printf("💬 Assistant endpoint: http://localhost:%d/assistant/message", cfg.Server.Port)

	go func() {
		if err := router.Run(addr); err != nil {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Shutting down server...")
	log.Println("✅ Server stopped")
}
