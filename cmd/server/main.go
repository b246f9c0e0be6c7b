package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/flowiq/flowiq/internal/api"
	"github.com/flowiq/flowiq/internal/core/token"
	"github.com/flowiq/flowiq/internal/infrastructure/config"
	mongodb "github.com/flowiq/flowiq/internal/infrastructure/db/mongo"
	"github.com/flowiq/flowiq/internal/infrastructure/db/postgres"
	redisdb "github.com/flowiq/flowiq/internal/infrastructure/db/redis"
	"github.com/flowiq/flowiq/pkg/logger"
)

const shutdownGrace = 30 * time.Second

// devSecret signs tokens when no JWT_SECRET is configured. Config rejects
// this situation in production, so it only ever applies to local runs.
const devSecret = "flowiq-dev-secret-do-not-use-in-production"

func main() {
	ctx := context.Background()

	cfg, err := config.Load(ctx)
	if err != nil {
		logger.Setup(logger.Options{})
		l := logger.New("main")
		l.Fatal().Err(err).Msg("configuration invalid")
	}

	logger.Setup(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: !cfg.IsProduction(),
	})
	log := logger.New("main")

	secret := cfg.JWTSecret
	if secret == "" {
		secret = devSecret
		log.Warn().Msg("JWT_SECRET not set, using the development secret; sessions will not survive a rotation to a real secret")
	}

	db, err := postgres.Open(cfg.Postgres.DSN)
	if err != nil {
		log.Fatal().Err(err).Msg("postgres connection failed")
	}
	defer db.Close()

	if err := postgres.Migrate(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("postgres migration failed")
	}
	log.Info().Msg("postgres ready")

	rdb, err := redisdb.Connect(ctx, redisdb.Config{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer rdb.Close()
	log.Info().Msg("redis ready")

	mongoClient, mdb, err := mongodb.Connect(ctx, mongodb.Config{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database})
	if err != nil {
		log.Fatal().Err(err).Msg("mongo connection failed")
	}
	defer func() {
		disconnectCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = mongoClient.Disconnect(disconnectCtx)
	}()
	log.Info().Msg("mongo ready")

	e := api.NewRouter(api.Dependencies{
		DB:           db,
		Redis:        rdb,
		Mongo:        mdb,
		Codec:        token.NewCodec(secret, 0),
		SecureCookie: cfg.IsProduction(),
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      e,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info().Str("addr", srv.Addr).Msg("server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("forced shutdown")
	}
	log.Info().Msg("server stopped")
}
