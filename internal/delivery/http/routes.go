package http

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/nicexwisly/Linebot-Jonggajang/config"
)

// SetupRouter creates and configures the Gin router
func SetupRouter(cfg *config.Config, handler *Handler, registry *prometheus.Registry) *gin.Engine {
	// Set Gin mode based on environment
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Global middleware
	router.Use(RecoveryMiddleware())
	router.Use(LoggerMiddleware())

	router.GET("/", handler.Home)
	router.GET("/health", handler.HealthCheck)

	if registry != nil {
		router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))
	}

	// LINE webhook; signature check only applies here
	router.POST("/callback", SignatureMiddleware(cfg.Line.ChannelSecret), handler.Callback)

	// Catalog ingestion
	api := router.Group("/api")
	{
		api.POST("/upload", handler.UploadCatalog)
		api.POST("/upload-file", handler.UploadCatalogFile)
	}

	return router
}
