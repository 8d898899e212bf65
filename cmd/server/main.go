package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	catalogapp "github.com/buildtrack/backend/internal/application/catalog"
	projectapp "github.com/buildtrack/backend/internal/application/project"
	"github.com/buildtrack/backend/internal/domain/catalog"
	"github.com/buildtrack/backend/internal/infrastructure/ai"
	"github.com/buildtrack/backend/internal/infrastructure/cache"
	"github.com/buildtrack/backend/internal/infrastructure/config"
	"github.com/buildtrack/backend/internal/infrastructure/logger"
	"github.com/buildtrack/backend/internal/infrastructure/persistence"
	"github.com/buildtrack/backend/internal/infrastructure/storage"
	"github.com/buildtrack/backend/internal/interfaces/http/handler"
	"github.com/buildtrack/backend/internal/interfaces/http/middleware"
	"github.com/buildtrack/backend/internal/interfaces/http/router"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger
	log, err := logger.New(cfg.Log)
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = log.Sync()
	}()

	log.Info("Starting BuildTrack Backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	// Create GORM logger backed by zap
	gormLogLevel := logger.MapGormLogLevel(cfg.Log.Level)
	gormLog := logger.NewGormLogger(log, gormLogLevel)

	// Initialize database connection with custom logger
	db, err := persistence.NewDatabaseWithLogger(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database connected successfully")

	// Initialize repositories
	stageRepo := persistence.NewGormStageRepository(db.DB)
	projectRepo := persistence.NewGormProjectRepository(db.DB)
	progressRepo := persistence.NewGormProgressRepository(db.DB)
	noteRepo := persistence.NewGormNoteRepository(db.DB)
	mediaRepo := persistence.NewGormMediaRepository(db.DB)

	// Stage catalog cache (optional)
	var stageCache catalog.StageCache
	if cfg.Cache.Enabled {
		factory := cache.NewStageCacheFactory(
			cfg.Redis,
			catalog.CacheConfig{TTL: cfg.Cache.TTL},
			cache.WithLogger(log),
		)
		stageCache, err = factory.CreateCache(cfg.Cache.UseRedis)
		if err != nil {
			log.Fatal("Failed to initialize stage cache", zap.Error(err))
		}
		log.Info("Stage catalog cache enabled",
			zap.Bool("redis", cfg.Cache.UseRedis),
			zap.Duration("ttl", cfg.Cache.TTL),
		)
	}

	// Object storage: S3 when a bucket is configured, stub otherwise
	var objectStorage projectapp.ObjectStorageService
	if cfg.Storage.Bucket != "" {
		s3Storage, err := storage.NewS3ObjectStorage(&cfg.Storage,
			storage.WithLogger(log),
			storage.WithPresignExpiration(cfg.Storage.PresignTTL),
		)
		if err != nil {
			log.Fatal("Failed to initialize object storage", zap.Error(err))
		}
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		if err := s3Storage.EnsureBucket(ctx); err != nil {
			cancel()
			log.Fatal("Failed to ensure storage bucket", zap.Error(err))
		}
		cancel()
		objectStorage = s3Storage
		log.Info("Object storage ready", zap.String("bucket", cfg.Storage.Bucket))
	} else {
		objectStorage = storage.NewStubObjectStorage()
		log.Warn("No storage bucket configured, using stub object storage")
	}

	// Assistant backend (stubbed)
	responder := ai.NewStubResponder()

	// Initialize application services
	authorizer := projectapp.NewAuthorizer(projectRepo)
	stageService := catalogapp.NewStageService(stageRepo, stageCache, log)
	projectService := projectapp.NewProjectService(projectRepo)
	stageViewService := projectapp.NewStageViewService(authorizer, stageRepo, progressRepo, noteRepo, mediaRepo)
	progressService := projectapp.NewProgressService(authorizer, stageRepo, progressRepo)
	noteService := projectapp.NewNoteService(authorizer, noteRepo)
	mediaService := projectapp.NewMediaService(authorizer, mediaRepo, objectStorage)
	mediaService.SetConfig(projectapp.MediaServiceConfig{UploadURLExpiry: cfg.Storage.PresignTTL})
	assistantService := projectapp.NewAssistantService(authorizer, stageRepo, noteRepo, responder)

	// Initialize HTTP handlers
	catalogHandler := handler.NewCatalogHandler(stageService)
	projectHandler := handler.NewProjectHandler(projectService)
	progressHandler := handler.NewProgressHandler(stageViewService, progressService)
	noteHandler := handler.NewNoteHandler(noteService)
	mediaHandler := handler.NewMediaHandler(mediaService)
	assistantHandler := handler.NewAssistantHandler(assistantService)
	adminHandler := handler.NewAdminCatalogHandler(stageService)
	healthHandler := handler.NewHealthHandler(db)

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Setup validation
	middleware.SetupValidator()

	engine := gin.New()

	// Configure trusted proxies
	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Warn("Failed to set trusted proxies", zap.Error(err))
		}
	}

	// Middleware stack: request ID first so recovery and logging carry it
	engine.Use(middleware.RequestID())
	engine.Use(middleware.Recovery(log))
	engine.Use(middleware.RequestLogger(log))

	corsConfig := middleware.DefaultCORSConfig()
	corsConfig.AllowOrigins = cfg.HTTP.CORSAllowOrigins
	corsConfig.AllowMethods = cfg.HTTP.CORSAllowMethods
	corsConfig.AllowHeaders = cfg.HTTP.CORSAllowHeaders
	engine.Use(middleware.CORSWithConfig(corsConfig))

	// Health check endpoint (outside API versioning, no auth)
	engine.GET("/health", healthHandler.Check)

	// User-facing routes require a bearer token; admin routes carry the
	// shared admin secret instead
	r := router.NewRouter(engine,
		router.WithAPIVersion("v1"),
		router.WithAPIMiddleware(middleware.Auth()),
		router.WithAdminMiddleware(middleware.AdminAuth(cfg.Admin.Token)),
	)

	r.Register(catalogHandler).
		Register(projectHandler).
		Register(progressHandler).
		Register(noteHandler).
		Register(mediaHandler).
		Register(assistantHandler)
	r.RegisterAdmin(adminHandler)
	r.Setup()

	// Create HTTP server with config
	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	// Start server in goroutine
	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited gracefully")
}
