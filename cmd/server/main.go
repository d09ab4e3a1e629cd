package main

import (
	"context"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/sitesmith/website-builder/internal/api"
	"github.com/sitesmith/website-builder/internal/core/generator"
	"github.com/sitesmith/website-builder/internal/core/ports"
	"github.com/sitesmith/website-builder/internal/core/service"
	"github.com/sitesmith/website-builder/internal/infrastructure/config"
	mongodb "github.com/sitesmith/website-builder/internal/infrastructure/db/mongo"
	redisdb "github.com/sitesmith/website-builder/internal/infrastructure/db/redis"
	"github.com/sitesmith/website-builder/internal/infrastructure/provider"
	"github.com/sitesmith/website-builder/internal/infrastructure/queue"
	"github.com/sitesmith/website-builder/pkg/logger"
)

const shutdownTimeout = 15 * time.Second

func main() {
	_ = godotenv.Load()

	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// --- Infrastructure ---
	mongoClient, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongodb connection failed")
	}
	defer func() {
		_ = mongoClient.Disconnect(context.Background())
	}()

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer func() {
		_ = rdb.Close()
	}()

	// --- Repositories ---
	userRepo := mongodb.NewUserRepository(db)
	roleRepo := mongodb.NewRoleRepository(db)
	websiteRepo := mongodb.NewWebsiteRepository(db)
	analyticsRepo := mongodb.NewAnalyticsRepository(db)

	for name, idx := range map[string]interface {
		EnsureIndexes(ctx context.Context) error
	}{
		"users":     userRepo,
		"roles":     roleRepo,
		"websites":  websiteRepo,
		"analytics": analyticsRepo,
	} {
		if err := idx.EnsureIndexes(ctx); err != nil {
			log.Fatal().Err(err).Str("collection", name).Msg("index creation failed")
		}
	}

	// --- Content pipeline ---
	var contentProvider ports.ContentProvider
	if cfg.Provider.APIKey != "" {
		contentProvider = provider.NewGeminiClient(
			cfg.Provider.APIKey,
			cfg.Provider.Model,
			cfg.Provider.BaseURL,
			cfg.Provider.Timeout,
		)
	} else {
		log.Warn().Msg("no provider api key configured, content generation uses fallback only")
	}
	contentGenerator := generator.New(contentProvider, cfg.Provider.Timeout, log)

	// --- Services ---
	authService := service.NewAuthService(userRepo, roleRepo, cfg.JWTSecret, cfg.TokenTTL)
	websiteService := service.NewWebsiteService(websiteRepo, analyticsRepo, contentGenerator, log)
	userService := service.NewUserService(userRepo, roleRepo)
	roleService := service.NewRoleService(roleRepo)
	statsService := service.NewStatsService(userRepo, roleRepo, websiteRepo)

	// --- Seed migration ---
	seeder := service.NewSeeder(userRepo, roleRepo, log)
	if err := seeder.Run(ctx, cfg.Admin.Email, cfg.Admin.Password); err != nil {
		log.Fatal().Err(err).Msg("seed migration failed")
	}

	// --- Analytics pipeline ---
	deduper := redisdb.NewVisitorDeduper(rdb)
	analyticsService := service.NewAnalyticsService(analyticsRepo, deduper, log)
	dispatcher := queue.NewDispatcher(0, analyticsService, log)
	dispatcher.Start(ctx)

	// --- HTTP server ---
	e := api.NewRouter(api.Dependencies{
		Auth:     authService,
		Websites: websiteService,
		Users:    userService,
		Roles:    roleService,
		Stats:    statsService,
		Enqueuer: dispatcher,
		Mongo:    db,
		Redis:    rdb,
		Log:      log,
	})

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("server starting")
		if err := e.Start(":" + cfg.Port); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("http server error")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown error")
	}
}
