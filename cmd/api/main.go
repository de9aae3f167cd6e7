package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/recetario/backend/config"
	"github.com/recetario/backend/internal/database"
	"github.com/recetario/backend/internal/kvstore"
	"github.com/recetario/backend/internal/middleware"
	"github.com/recetario/backend/internal/server"
	"github.com/recetario/backend/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.New(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to identity database: %v", err)
	}

	redisClient, err := database.NewRedisClient(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}

	catalog := service.NewCatalogService(kvstore.NewRedisStore(redisClient))
	authService := service.NewAuthService(db, cfg.JWTSecret)

	var imageService *service.ImageService
	if cfg.S3Bucket != "" {
		awsCfg, err := awsconfig.LoadDefaultConfig(context.Background(),
			awsconfig.WithRegion(cfg.S3Region))
		if err != nil {
			log.Fatalf("Failed to load AWS configuration: %v", err)
		}
		imageService = service.NewImageService(s3.NewFromConfig(awsCfg), cfg.S3Bucket)
	} else {
		log.Println("S3_BUCKET not set, image upload disabled")
	}

	srv := server.New(server.Options{
		Catalog:        catalog,
		Auth:           authService,
		Images:         imageService,
		RatingLimiter:  middleware.NewRatingRateLimiter(redisClient),
		CommentLimiter: middleware.NewCommentRateLimiter(redisClient),
	})

	errChan := make(chan error, 1)
	go func() {
		log.Printf("Starting server on port %s...", cfg.ServerPort)
		errChan <- srv.Start(cfg.ServerPort)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errChan:
		if err != nil {
			log.Fatalf("Server error: %v", err)
		}
	case sig := <-quit:
		log.Printf("Received signal: %v", sig)
	}

	log.Println("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server shutdown error: %v", err)
	}
	log.Println("Server stopped")
}
