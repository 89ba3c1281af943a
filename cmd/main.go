package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/vikaskedia/automatic-landing-page-generation-v2/config"
	"github.com/vikaskedia/automatic-landing-page-generation-v2/internal/ai"
	"github.com/vikaskedia/automatic-landing-page-generation-v2/internal/api"
	"github.com/vikaskedia/automatic-landing-page-generation-v2/internal/middleware"
	"github.com/vikaskedia/automatic-landing-page-generation-v2/internal/pipeline"
	"github.com/vikaskedia/automatic-landing-page-generation-v2/internal/store"
)

// Public mount points for generated assets and uploaded images.
const (
	landingPagePublicPath = "/landing-page"
	uploadsPublicPath     = "/uploads"
)

func main() {
	// --- Load .env file ---
	// This must happen BEFORE viper reads the environment.
	err := godotenv.Load()
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("Warning: Error loading .env file: %v", err)
		} else {
			log.Println("Info: .env file not found, relying on system environment variables.")
		}
	} else {
		log.Println("Info: Loaded environment variables from .env file.")
	}

	// --- Configuration Loading ---
	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("Cannot load config: %v", err)
	}

	// --- Dependency Initialization ---
	assetStore, err := store.New(cfg.LandingPagesDir, landingPagePublicPath)
	if err != nil {
		log.Fatalf("Could not initialize landing page store: %v", err)
	}

	uploader, err := store.NewUploader(cfg.UploadsDir, cfg.MaxUploadBytes)
	if err != nil {
		log.Fatalf("Could not initialize upload store: %v", err)
	}

	generator := ai.NewGenerator(cfg.OpenAIKey, cfg.ChatModelID)

	pipe := pipeline.New(generator, assetStore, uploader, landingPagePublicPath)

	apiHandler := api.NewAPIHandler(pipe, assetStore)

	// --- HTTP Server ---
	appEnv := os.Getenv("APP_ENV")
	if appEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
		log.Println("Running in Gin Debug Mode")
	}

	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	corsConfig := cors.DefaultConfig()
	if cfg.AllowedOrigins == "" {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = strings.Split(cfg.AllowedOrigins, ",")
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	router.Use(cors.New(corsConfig))

	// Generated pages and uploaded images are served straight off disk.
	router.Static(landingPagePublicPath, cfg.LandingPagesDir)
	router.Static(uploadsPublicPath, cfg.UploadsDir)

	rateLimiter := middleware.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst)
	api.RegisterRoutes(router, apiHandler, rateLimiter.Handler())

	server := &http.Server{
		Addr:    cfg.ServerAddress,
		Handler: router,
		// Generous write timeout: full-document generation takes tens of seconds.
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("Starting API server on %s\n", cfg.ServerAddress)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("API server listen error: %s\n", err)
		}
		log.Println("API server has stopped listening.")
	}()

	// --- Graceful Shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	log.Printf("Received signal: %s. Shutting down server...", sig)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("API server forced shutdown error: %v", err)
	} else {
		log.Println("API server gracefully stopped.")
	}

	log.Println("Application exiting.")
}
