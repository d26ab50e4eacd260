package main

import (
	"context"
	"log"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/isaacbabu/groceryapp/auth"
	"github.com/isaacbabu/groceryapp/cache"
	"github.com/isaacbabu/groceryapp/config"
	"github.com/isaacbabu/groceryapp/routes"
	"github.com/isaacbabu/groceryapp/store"
)

func main() {
	log.Println("✅ Starting application...")

	// Load environment variables
	_ = godotenv.Load()

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("❌ Config error: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	s, err := store.Connect(ctx, cfg.MongoURL, cfg.DBName)
	if err != nil {
		log.Fatalf("❌ DB connection failed: %v", err)
	}
	defer func() {
		if err := s.Close(context.Background()); err != nil {
			log.Printf("❌ Failed to close DB connection: %v", err)
		}
	}()

	// Index creation failures are logged, not fatal: the API still works
	// against an un-indexed store.
	if err := s.EnsureIndexes(ctx); err != nil {
		log.Printf("❌ Failed to create indexes: %v", err)
	}

	// Gin setup
	r := gin.Default()

	// CORS settings
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins(),
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Setup routes
	routes.SetupRoutes(r, routes.Deps{
		Store:    s,
		Cache:    cache.New(),
		Config:   cfg,
		Verifier: &auth.GoogleVerifier{ClientID: cfg.GoogleClientID},
	})

	// Start server
	log.Printf("🚀 Server running on port %s...", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}
