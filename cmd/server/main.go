package main

import (
	"context"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/devfolio/portfolio-api/internal/api"
	"github.com/devfolio/portfolio-api/internal/core/service"
	"github.com/devfolio/portfolio-api/internal/infrastructure/config"
	mongodb "github.com/devfolio/portfolio-api/internal/infrastructure/db/mongo"
	redisdb "github.com/devfolio/portfolio-api/internal/infrastructure/db/redis"
	"github.com/devfolio/portfolio-api/internal/infrastructure/storage"
	"github.com/devfolio/portfolio-api/pkg/logger"
)

// @title        Portfolio API
// @version      1.0
// @description  Headless backend for a personal portfolio site.
// @BasePath     /
func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// --- Infrastructure ---
	client, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongo connection failed")
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			log.Warn().Err(err).Msg("mongo disconnect failed")
		}
	}()

	if err := mongodb.EnsureIndexes(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("index creation failed")
	}

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer rdb.Close()

	// --- Repositories & services ---
	accounts := mongodb.NewAccountRepository(db)
	denylist := redisdb.NewTokenDenylist(rdb)
	files := storage.NewLocalStore(cfg.UploadDir)

	authService := service.NewAuthService(accounts, denylist, cfg.JWTSecret, cfg.SessionTTL, log)
	resolver := service.NewSessionResolver(accounts, denylist, cfg.JWTSecret, log)
	contentService := service.NewContentService(
		mongodb.NewProjectRepository(db),
		mongodb.NewSkillRepository(db),
		mongodb.NewCertificateRepository(db),
		mongodb.NewEducationRepository(db),
		mongodb.NewExperienceRepository(db),
		mongodb.NewMessageRepository(db),
		files,
		log,
	)
	siteService := service.NewSiteService(
		mongodb.NewSiteImageRepository(db),
		mongodb.NewResumeRepository(db),
		mongodb.NewContactInfoRepository(db),
		mongodb.NewMessageRepository(db),
		files,
		redisdb.NewSubmissionDeduper(rdb),
		cfg.Bootstrap.AdminEmail,
		log,
	)

	// --- Bootstrap seeding (idempotent) ---
	if cfg.Bootstrap.AdminEmail == "" || cfg.Bootstrap.AdminPassword == "" {
		log.Warn().Msg("ADMIN_EMAIL/ADMIN_PASSWORD unset, skipping admin seeding")
	} else if created, err := authService.SeedAdmin(ctx, cfg.Bootstrap.AdminEmail, cfg.Bootstrap.AdminPassword); err != nil {
		log.Fatal().Err(err).Msg("admin seeding failed")
	} else if !created {
		log.Info().Msg("admin account already present")
	}

	// --- HTTP server ---
	e := api.NewRouter(api.Deps{
		Mongo:    db,
		Redis:    rdb,
		Auth:     authService,
		Resolver: resolver,
		Content:  contentService,
		Site:     siteService,
		Logger:   log,
	})

	go func() {
		addr := ":" + cfg.Port
		log.Info().Str("addr", addr).Str("env", cfg.Env).Msg("server starting")
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
	log.Info().Msg("server stopped")
}
