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

	"github.com/comunidadlocatarios/rental-platform/internal/api"
	mongodb "github.com/comunidadlocatarios/rental-platform/internal/infrastructure/db/mongo"
	redisdb "github.com/comunidadlocatarios/rental-platform/internal/infrastructure/db/redis"
	"github.com/comunidadlocatarios/rental-platform/internal/infrastructure/realtime"
	"github.com/comunidadlocatarios/rental-platform/internal/infrastructure/storage"
	"github.com/comunidadlocatarios/rental-platform/internal/pkg/config"
	"github.com/comunidadlocatarios/rental-platform/pkg/logger"
)

// @title        Comunidad Locatarios API
// @version      1.0
// @description  Rental listing platform: property search, messaging and identity verification.
// @BasePath     /
//
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
func main() {
	// Local development reads .env; in real deployments the variables
	// come from the environment and the file is simply absent.
	_ = godotenv.Load()

	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	if cfg.JWTSecret == "" {
		log.Fatal().Msg("JWT_SECRET is required")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// --- MongoDB ---
	mongoClient, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongodb connection failed")
	}
	defer func() {
		disconnectCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = mongoClient.Disconnect(disconnectCtx)
	}()

	if err := ensureIndexes(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("index creation failed")
	}

	// --- Redis ---
	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer rdb.Close()

	// --- Object storage ---
	store, err := storage.Connect(storage.Config{
		Endpoint:  cfg.Storage.Endpoint,
		AccessKey: cfg.Storage.AccessKey,
		SecretKey: cfg.Storage.SecretKey,
		UseSSL:    cfg.Storage.UseSSL,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("object storage connection failed")
	}
	if err := store.EnsureBuckets(ctx, cfg.Storage.ImagesBucket, cfg.Storage.DocsBucket); err != nil {
		log.Fatal().Err(err).Msg("bucket creation failed")
	}
	guarded := storage.NewBreakerClient(store, log)

	// --- Realtime fanout ---
	hub := realtime.NewHub(cfg.RealtimeWorkers, log)
	hub.Start(ctx)
	go realtime.NewBridge(rdb, hub, log).Run(ctx)

	// --- HTTP server ---
	e := api.NewRouter(db, rdb, guarded, hub, cfg, log)

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("server starting")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}

// ensureIndexes creates every collection's indexes up front so the
// first request never pays the cost.
func ensureIndexes(ctx context.Context, db *mongo.Database) error {
	repos := []interface {
		EnsureIndexes(context.Context) error
	}{
		mongodb.NewUserRepository(db),
		mongodb.NewListingRepository(db),
		mongodb.NewMessageRepository(db),
		mongodb.NewVerificationRepository(db),
		mongodb.NewInquiryRepository(db),
	}
	for _, r := range repos {
		if err := r.EnsureIndexes(ctx); err != nil {
			return err
		}
	}
	return nil
}
