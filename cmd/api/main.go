package main

import (
	"fmt"
	"log"
	"net/http"
	"os"

	"solar-sizing/internal/api/handlers"
	"solar-sizing/internal/api/middleware"
	"solar-sizing/internal/recommend"

	"github.com/gin-gonic/gin"
	"github.com/rs/cors"
)

func main() {
	// Get configuration from environment
	port := os.Getenv("API_PORT")
	if port == "" {
		port = "8080"
	}

	// Set up Gin router
	if os.Getenv("API_ENV") == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()

	// Apply middleware
	router.Use(middleware.RequestLogger())
	router.Use(middleware.ErrorHandler())

	// Initialize handlers. The recommendation client reads its provider
	// settings from the environment; without a key the endpoint answers
	// "recommendation unavailable" instead of failing the server.
	sizingHandler := handlers.NewSizingHandler()
	presetHandler := handlers.NewPresetHandler()
	recommendClient := recommend.NewOpenAIClient(
		os.Getenv("RECOMMEND_API_KEY"),
		os.Getenv("RECOMMEND_MODEL"),
		os.Getenv("RECOMMEND_API_URL"),
	)
	recommendHandler := handlers.NewRecommendHandler(recommendClient)

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// API routes
	api := router.Group("/api/v1")
	{
		api.POST("/sizing", sizingHandler.RunSizing)
		api.POST("/sizing/compare", sizingHandler.CompareSizings)

		api.GET("/batteries", presetHandler.ListBatteries)
		api.GET("/panels", presetHandler.ListPanels)

		api.POST("/recommend", recommendHandler.Recommend)
	}

	// The form front-end runs on its own origin during development.
	handler := cors.AllowAll().Handler(router)

	// Start server
	addr := fmt.Sprintf(":%s", port)
	log.Printf("Starting API server on %s", addr)
	if err := http.ListenAndServe(addr, handler); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
