package main

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	_ "github.com/noah-isme/coop-office-api/api/swagger"
	"github.com/noah-isme/coop-office-api/db"
	"github.com/noah-isme/coop-office-api/internal/handler"
	"github.com/noah-isme/coop-office-api/internal/repository"
	"github.com/noah-isme/coop-office-api/internal/service"
	"github.com/noah-isme/coop-office-api/pkg/cache"
	"github.com/noah-isme/coop-office-api/pkg/config"
	"github.com/noah-isme/coop-office-api/pkg/database"
	"github.com/noah-isme/coop-office-api/pkg/export"
	"github.com/noah-isme/coop-office-api/pkg/logger"
	"github.com/noah-isme/coop-office-api/pkg/storage"
)

// @title Cooperative Office API
// @version 1.0.0
// @description Administrative backend for the cooperative office site
// @BasePath /api/v1
// @schemes http https

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	pg, err := database.NewPostgres(cfg.Database)
	if err != nil {
		logr.Sugar().Fatalw("failed to connect to postgres", "error", err)
	}
	defer pg.Close()

	if err := db.Migrate(pg); err != nil {
		logr.Sugar().Fatalw("failed to run migrations", "error", err)
	}

	metrics := service.NewMetricsService()

	// Redis is optional: when unreachable the API runs without listing
	// caches.
	var cacheSvc *service.CacheService
	if cfg.Cache.Enabled {
		redisClient, err := cache.NewRedis(cfg.Redis)
		if err != nil {
			logr.Sugar().Warnw("redis unavailable, caching disabled", "error", err)
		} else {
			cacheRepo := repository.NewCacheRepository(redisClient, logr)
			cacheSvc = service.NewCacheService(cacheRepo, metrics, cfg.Cache.TTL, logr, true)
			defer cacheRepo.Close() //nolint:errcheck
		}
	}

	blobs, err := storage.NewLocalBlobStore(cfg.Storage.Dir, cfg.APIPrefix)
	if err != nil {
		logr.Sugar().Fatalw("failed to init blob store", "error", err)
	}
	signer := storage.NewSignedURLSigner(cfg.Storage.SignedURLSecret, cfg.Storage.SignedURLTTL)

	validate := validator.New()
	httpClient := &http.Client{Timeout: 15 * time.Second}

	adminRepo := repository.NewAdminRepository(pg)
	documentRepo := repository.NewDocumentRepository(pg)
	tenderRepo := repository.NewTenderRepository(pg)
	credentialRepo := repository.NewCredentialRepository(pg)
	galleryRepo := repository.NewGalleryRepository(pg)
	visitorRepo := repository.NewVisitorRepository(pg)

	authSvc := service.NewAuthService(adminRepo, validate, logr, service.AuthConfig{
		Secret:     cfg.JWT.Secret,
		Expiration: cfg.JWT.Expiration,
	})
	adminSvc := service.NewAdminService(adminRepo, validate, logr)
	documentSvc := service.NewDocumentService(documentRepo, blobs, signer, cacheSvc, metrics, validate, logr, cfg.Storage.MaxUploadBytes)
	tenderSvc := service.NewTenderService(tenderRepo, credentialRepo, blobs, signer, cacheSvc, metrics, validate, logr, cfg.Storage.MaxUploadBytes)
	credentialSvc := service.NewCredentialService(credentialRepo, tenderRepo, blobs, signer, metrics, validate, logr, cfg.Storage.MaxUploadBytes)
	gallerySvc := service.NewGalleryService(galleryRepo, blobs, metrics, logr, cfg.Storage.MaxUploadBytes)
	visitorSvc := service.NewVisitorService(visitorRepo, metrics, logr)
	contactSvc := service.NewContactService(httpClient, cfg.WhatsApp, validate, logr)
	reportSvc := service.NewReportService(tenderRepo, export.NewPDFExporter(), logr)

	handlers := handler.Handlers{
		Auth:        handler.NewAuthHandler(authSvc, cfg.Env),
		Admins:      handler.NewAdminHandler(adminSvc),
		Documents:   handler.NewDocumentHandler(documentSvc),
		Tenders:     handler.NewTenderHandler(tenderSvc),
		Credentials: handler.NewCredentialHandler(credentialSvc),
		Gallery:     handler.NewGalleryHandler(gallerySvc),
		Visitors:    handler.NewVisitorHandler(visitorSvc),
		Contact:     handler.NewContactHandler(contactSvc),
		Reports:     handler.NewReportHandler(reportSvc),
		Files:       handler.NewFileHandler(blobs, signer),
	}

	router := handler.NewRouter(cfg, logr, authSvc, metrics, handlers)

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env)
	if err := router.Run(addr); err != nil {
		logr.Sugar().Fatalw("server failed", "error", err)
	}
}
