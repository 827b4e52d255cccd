package main

import (
	"context"
	"log"

	"github.com/recipesnap/backend/config"
	"github.com/recipesnap/backend/internal/api"
	"github.com/recipesnap/backend/internal/database"
	"github.com/recipesnap/backend/internal/middleware"
	"github.com/recipesnap/backend/internal/router"
	"github.com/recipesnap/backend/internal/server"
	"github.com/recipesnap/backend/internal/service"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.New(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	gormDB, err := database.NewGorm(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize ORM: %v", err)
	}
	if err := database.RunMigrations(gormDB); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	redisClient, err := database.NewRedisClient(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer redisClient.Close()

	llmService, err := service.NewLLMService()
	if err != nil {
		log.Fatalf("Failed to initialize model client: %v", err)
	}

	authService := service.NewAuthService(gormDB, cfg.JWTSecret)
	historyService := service.NewHistoryService(gormDB)
	pantryService := service.NewPantryService(redisClient)

	// Photo storage is optional; identification still accepts inline
	// data URIs when no bucket is configured.
	var photoHandler *api.PhotoHandler
	s3Config, err := config.NewS3Config(context.Background(), cfg)
	if err != nil {
		log.Printf("Photo storage disabled: %v", err)
	} else {
		photoHandler = api.NewPhotoHandler(service.NewPhotoService(s3Config))
	}

	handlers := router.Handlers{
		Auth:     api.NewAuthHandler(authService, middleware.NewLoginRateLimiter(redisClient)),
		Identify: api.NewIdentifyHandler(llmService, pantryService),
		Suggest:  api.NewSuggestHandler(llmService, historyService),
		Pantry:   api.NewPantryHandler(pantryService),
		Photo:    photoHandler,
		History:  api.NewHistoryHandler(historyService),
	}
	limiters := router.Limiters{
		Identify: middleware.NewIdentifyRateLimiter(redisClient),
		Suggest:  middleware.NewSuggestRateLimiter(redisClient),
	}

	engine := router.SetupRouter(handlers, authService, limiters, db, cfg.AllowedOrigins)

	srv := server.NewServer(engine)
	log.Println("Starting server...")
	if err := srv.Start(cfg.ServerPort); err != nil {
		log.Fatalf("Server error: %v", err)
	}
	log.Println("Server stopped")
}
