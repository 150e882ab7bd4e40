package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/pressroom/newsdesk/internal/api"
	"github.com/pressroom/newsdesk/internal/core/service"
	"github.com/pressroom/newsdesk/internal/infrastructure/blob"
	"github.com/pressroom/newsdesk/internal/infrastructure/config"
	mongodb "github.com/pressroom/newsdesk/internal/infrastructure/db/mongo"
	redisdb "github.com/pressroom/newsdesk/internal/infrastructure/db/redis"
	"github.com/pressroom/newsdesk/internal/infrastructure/queue"
	"github.com/pressroom/newsdesk/pkg/logger"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		panic(err)
	}

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	if cfg.SessionSecret == "" {
		log.Fatal().Msg("SESSION_SECRET must be set")
	}

	// --- Stores ---
	mongoClient, db, err := mongodb.Connect(ctx, mongodb.Config{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database})
	if err != nil {
		log.Fatal().Err(err).Msg("mongo connection failed")
	}
	defer func() {
		disconnectCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = mongoClient.Disconnect(disconnectCtx)
	}()

	rdb, err := redisdb.Connect(ctx, redisdb.Config{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer rdb.Close()

	userRepo := mongodb.NewUserRepository(db)
	articleRepo := mongodb.NewArticleRepository(db)
	auditRepo := mongodb.NewAuditRepository(db)
	for _, idx := range []func(context.Context) error{
		userRepo.EnsureIndexes, articleRepo.EnsureIndexes, auditRepo.EnsureIndexes,
	} {
		if err := idx(ctx); err != nil {
			log.Fatal().Err(err).Msg("index creation failed")
		}
	}

	sessionStore := redisdb.NewSessionStore(rdb)

	blobStore, err := blob.NewFsStore(cfg.UploadDir)
	if err != nil {
		log.Fatal().Err(err).Msg("blob store setup failed")
	}

	// --- Services ---
	auditService := service.NewAuditService(auditRepo, log)
	dispatcher := queue.NewDispatcher(cfg.AuditWorkers, auditService, log)
	dispatcher.Start(ctx)

	authService := service.NewAuthService(userRepo, sessionStore, cfg.SessionSecret, cfg.SessionTTL, cfg.HashWorkers, log)
	attachments := service.NewAttachments(blobStore, log)
	articleService := service.NewArticleService(articleRepo, userRepo, attachments, dispatcher, log)

	if err := service.BootstrapAdmin(ctx, userRepo, log); err != nil {
		log.Fatal().Err(err).Msg("bootstrap admin failed")
	}

	// --- HTTP ---
	e := api.NewRouter(api.RouterDeps{
		AuthService:    authService,
		ArticleService: articleService,
		AuditQuery:     auditService,
		Blobs:          blobStore,
		Mongo:          db,
		Redis:          rdb,
		Logger:         log,
	})

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()
	log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("newsdesk listening")

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
