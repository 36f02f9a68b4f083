package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	"github.com/noah-isme/coop-office-api/internal/middleware"
	"github.com/noah-isme/coop-office-api/internal/service"
	"github.com/noah-isme/coop-office-api/pkg/config"
	"github.com/noah-isme/coop-office-api/pkg/logger"
	corsmiddleware "github.com/noah-isme/coop-office-api/pkg/middleware/cors"
	reqidmiddleware "github.com/noah-isme/coop-office-api/pkg/middleware/requestid"
)

// Handlers bundles every route handler the router mounts.
type Handlers struct {
	Auth        *AuthHandler
	Admins      *AdminHandler
	Documents   *DocumentHandler
	Tenders     *TenderHandler
	Credentials *CredentialHandler
	Gallery     *GalleryHandler
	Visitors    *VisitorHandler
	Contact     *ContactHandler
	Reports     *ReportHandler
	Files       *FileHandler
}

// NewRouter assembles the gin engine: ambient middleware, process routes and
// the public/guarded API surface under the configured prefix.
func NewRouter(cfg *config.Config, logr *zap.Logger, auth *service.AuthService, metrics *service.MetricsService, h Handlers) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(middleware.Metrics(metrics))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/ready", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})
	if metrics != nil {
		r.GET("/metrics", gin.WrapH(metrics.Handler()))
	}
	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	r.GET("/files/download", h.Files.Download)

	api := r.Group(cfg.APIPrefix)

	// Public surface.
	api.POST("/login", h.Auth.Login)
	api.GET("/getAllPdf", h.Documents.List)
	api.GET("/getAllForm", h.Documents.ListForms)
	api.GET("/getAllAnnouncement", h.Documents.ListAnnouncements)
	api.GET("/downloadpdf/:pdfId", h.Documents.Download)
	api.GET("/getAllTenders", h.Tenders.List)
	api.GET("/singleTender/:id", h.Tenders.Get)
	api.GET("/downloadTender/:tenderId", h.Tenders.Download)
	api.POST("/submitCredential/:tenderId", h.Credentials.Submit)
	api.GET("/images", h.Gallery.List)
	api.POST("/sendSms", h.Contact.Send)
	api.POST("/trackVisitor", h.Visitors.Track)
	api.GET("/getVisitor", h.Visitors.Stats)
	api.GET("/totalVisitCount", h.Visitors.Total)

	// Session-guarded surface.
	guarded := api.Group("")
	guarded.Use(middleware.Session(auth))
	guarded.GET("/logout", h.Auth.Logout)
	guarded.POST("/registerAdmin", h.Admins.Register)
	guarded.GET("/admins", h.Admins.List)
	guarded.DELETE("/deleteAdmin/:id", h.Admins.Delete)
	guarded.POST("/addPdf", h.Documents.Create)
	guarded.DELETE("/deletePdf/:id", h.Documents.Delete)
	guarded.POST("/createTender", h.Tenders.Create)
	guarded.DELETE("/deleteTender/:id", h.Tenders.Delete)
	guarded.GET("/getAllcredential/:tenderId", h.Credentials.ListByTender)
	guarded.GET("/downloadCredential/:id", h.Credentials.Download)
	guarded.DELETE("/deleteCredential/:id", h.Credentials.Delete)
	guarded.POST("/addImage", h.Gallery.Create)
	guarded.DELETE("/deleteImage/:id", h.Gallery.Delete)
	guarded.GET("/reports/tenders", h.Reports.TenderRegister)

	return r
}
