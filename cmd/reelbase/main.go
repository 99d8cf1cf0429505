package main

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/reelbase-dev/reelbase/db"
	"github.com/reelbase-dev/reelbase/internal/auth"
	"github.com/reelbase-dev/reelbase/internal/config"
	"github.com/reelbase-dev/reelbase/internal/events"
	"github.com/reelbase-dev/reelbase/internal/handlers"
	"github.com/reelbase-dev/reelbase/internal/media"
	"github.com/reelbase-dev/reelbase/internal/middleware"
	"github.com/reelbase-dev/reelbase/internal/router"
	"github.com/reelbase-dev/reelbase/internal/services"
	"github.com/reelbase-dev/reelbase/internal/store"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading configuration from the environment")
	}

	cfg, err := config.Load()

	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	conn, err := db.Connect(cfg.DatabaseURL)

	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := db.Migrate(conn); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	uploader, err := media.NewCloudinaryUploader(cfg.CloudinaryURL)

	if err != nil {
		log.Fatalf("Failed to configure media uploads: %v", err)
	}

	users := store.NewUserStore(conn)
	categories := store.NewCategoryStore(conn)
	banners := store.NewBannerStore(conn)
	movies := store.NewMovieStore(conn)

	hasher := auth.NewPasswordHasher(cfg.BcryptCost)
	tokens := auth.NewJWTManager(cfg.JWTSecret)

	origins := []string{"http://localhost:3000", "http://localhost:5173"}

	if cfg.ClientURL != "" {
		origins = append(origins, cfg.ClientURL)
	}

	hub := events.NewHub(origins)

	r := router.New(router.Deps{
		Users: handlers.NewUserHandler(
			services.NewAuthService(users, hasher, tokens),
			services.NewUserService(users, hasher),
		),
		Categories:     handlers.NewCategoryHandler(services.NewCategoryService(categories, uploader), hub),
		Banners:        handlers.NewBannerHandler(services.NewBannerService(banners, uploader), hub),
		Movies:         handlers.NewMovieHandler(services.NewMovieService(movies, categories, uploader), hub),
		Hub:            hub,
		RequireAuth:    middleware.RequireAuth(tokens, users),
		AllowedOrigins: origins,
	})

	log.Printf("Listening on port %s", cfg.Port)

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
