package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	_ "github.com/tahadev/portfolio/docs"
	"github.com/tahadev/portfolio/internal/api"
	"github.com/tahadev/portfolio/internal/core/service"
	"github.com/tahadev/portfolio/internal/infrastructure/config"
	mongodb "github.com/tahadev/portfolio/internal/infrastructure/db/mongo"
	redisdb "github.com/tahadev/portfolio/internal/infrastructure/db/redis"
	"github.com/tahadev/portfolio/internal/infrastructure/queue"
	"github.com/tahadev/portfolio/internal/infrastructure/storage"
	"github.com/tahadev/portfolio/pkg/logger"
)

// @title         Portfolio API
// @version       1.0
// @description   REST API behind the portfolio site: public project gallery and contact form, admin-gated project, user and image management.
// @BasePath      /
//
// @securityDefinitions.apikey BearerAuth
// @in                         header
// @name                       Authorization
func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg := config.Load()
	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: !cfg.IsProduction(),
	})

	if cfg.JWTSecret == "" {
		log.Fatal().Msg("JWT_SECRET must be set")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	client, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to mongodb")
	}
	defer func() {
		_ = client.Disconnect(context.Background())
	}()

	if err := mongodb.EnsureIndexes(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("failed to ensure indexes")
	}

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to redis")
	}
	defer rdb.Close()

	// Repositories
	userRepo := mongodb.NewUserRepository(db)
	projectRepo := mongodb.NewProjectRepository(db)
	contactRepo := mongodb.NewContactRepository(db)

	imageStore, err := storage.NewDiskImageStore(cfg.UploadDir, "/uploads")
	if err != nil {
		log.Fatal().Err(err).Msg("failed to prepare upload directory")
	}

	// Notification pipeline
	dispatcher := queue.NewDispatcher(0, queue.NewLogNotifier(log), log)
	dispatcher.Start(ctx)

	// Services
	tokenService := service.NewTokenService(cfg.JWTSecret, cfg.TokenTTL, log)
	authService := service.NewAuthService(userRepo, tokenService, log)
	userService := service.NewUserService(userRepo, log)
	projectService := service.NewProjectService(projectRepo, log)
	contactService := service.NewContactService(contactRepo, redisdb.NewContactDeduper(rdb), dispatcher, log)

	e := api.NewRouter(api.Services{
		Auth:     authService,
		Tokens:   tokenService,
		Users:    userService,
		Projects: projectService,
		Contact:  contactService,
		Images:   imageStore,
		UserRepo: userRepo,
	}, db, rdb, api.Options{
		Production: cfg.IsProduction(),
		Logger:     log,
		UploadDir:  cfg.UploadDir,
	})

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()
	log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("portfolio api started")

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigCh
	log.Info().Str("signal", sig.String()).Msg("shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
