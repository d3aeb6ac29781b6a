package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/smcs-alumni/alumni-portal/internal/api"
	"github.com/smcs-alumni/alumni-portal/internal/core/domain"
	"github.com/smcs-alumni/alumni-portal/internal/core/service"
	mongodb "github.com/smcs-alumni/alumni-portal/internal/infrastructure/db/mongo"
	redisdb "github.com/smcs-alumni/alumni-portal/internal/infrastructure/db/redis"
	"github.com/smcs-alumni/alumni-portal/internal/pkg/config"
	"github.com/smcs-alumni/alumni-portal/pkg/logger"
)

// @title        Alumni Portal API
// @version      1.0
// @description  API backing the alumni association site and admin dashboard.
func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	log := logger.Init(logger.Options{Level: cfg.LogLevel, Pretty: !cfg.IsProduction()})

	if cfg.JWTSecret == "" {
		log.Fatal().Msg("JWT_SECRET must be set")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	client, db, err := mongodb.Connect(ctx, mongodb.Config{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database})
	if err != nil {
		log.Fatal().Err(err).Msg("mongodb connection failed")
	}
	defer func() {
		_ = client.Disconnect(context.Background())
	}()

	rdb, err := redisdb.Connect(ctx, redisdb.Config{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer rdb.Close()

	if err := ensureIndexes(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("index creation failed")
	}

	if err := os.MkdirAll(cfg.Upload.Dir, 0o755); err != nil {
		log.Fatal().Err(err).Str("dir", cfg.Upload.Dir).Msg("upload directory unavailable")
	}

	e := api.NewRouter(cfg, db, rdb, log)

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("server starting")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}

func ensureIndexes(ctx context.Context, db *mongo.Database) error {
	if err := mongodb.NewAuthRepository(db).EnsureIndexes(ctx); err != nil {
		return err
	}
	if err := mongodb.NewContentRepository[domain.Announcement](db, service.AnnouncementPolicy.Kind).
		EnsureIndexes(ctx, "created_at", "date"); err != nil {
		return err
	}
	if err := mongodb.NewContentRepository[domain.Event](db, service.EventPolicy.Kind).
		EnsureIndexes(ctx, "date"); err != nil {
		return err
	}
	return mongodb.NewContentRepository[domain.FeaturedAlumni](db, service.AlumniPolicy.Kind).
		EnsureIndexes(ctx, "graduation_year")
}
