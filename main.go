package main

import (
	"log"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"wayfarer/config"
	"wayfarer/database"
	"wayfarer/handlers"
	"wayfarer/planner"
	"wayfarer/services"
)

func main() {
	cfg := config.Load()

	database.InitDB(cfg.DatabaseURL)

	amadeus := services.NewAmadeusClient(cfg)
	weather := services.NewWeatherClient(cfg, amadeus.Authenticated())
	trips := planner.New(amadeus, weather)
	h := handlers.New(trips, amadeus.Authenticated())

	if os.Getenv("GIN_MODE") == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.Default()
	r.SetTrustedProxies([]string{"0.0.0.0/0"})

	allowedOrigins := append([]string{"http://localhost:5173", "http://localhost:3000"}, cfg.FrontendOrigins...)
	r.Use(cors.New(cors.Config{
		AllowOrigins:     allowedOrigins,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	api := r.Group("/api")
	{
		api.GET("/health", h.HealthHandler)
		api.POST("/plan", h.PlanHandler)
		api.GET("/download/:id", h.DownloadHandler)
	}

	log.Printf("🚀 Wayfarer backend starting on port %s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
