package main

import (
	"fmt"
	"log"
	"os"

	"retrofit-risk/internal/api/handlers"
	"retrofit-risk/internal/api/middleware"
	"retrofit-risk/internal/config"
	"retrofit-risk/internal/data"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfgPath := os.Getenv("CONFIG_FILE")
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	port := os.Getenv("API_PORT")
	if port == "" {
		port = cfg.Server.Port
	}

	// Forecast tables are validated once here; a malformed table must stop
	// the service rather than fail requests later.
	forecastsPath := cfg.Forecasts.File
	if p := data.DefaultForecastsPath(); p != "" {
		forecastsPath = p
	}
	forecasts, err := data.LoadForecasts(forecastsPath)
	if err != nil {
		log.Fatalf("Failed to load market forecasts: %v", err)
	}
	if forecastsPath != "" {
		log.Printf("Loaded market forecasts from %s", forecastsPath)
	} else {
		log.Printf("Using embedded market forecasts")
	}

	// Set up Gin router
	if os.Getenv("API_ENV") == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()

	// Apply middleware
	router.Use(middleware.CORS())
	router.Use(middleware.Logger())
	router.Use(middleware.ErrorHandler())

	// Initialize handlers
	riskHandler := handlers.NewRiskAssessmentHandler(forecasts, nil, cfg.Simulation.NSims, cfg.Simulation.Seed)

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	router.POST("/risk-assessment", riskHandler.Assess)

	// Start server
	addr := fmt.Sprintf(":%s", port)
	log.Printf("Starting API server on %s", addr)
	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
