package router

import (
	"os"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"bolextract/internal/handler"
	"bolextract/internal/middleware"
)

// Setup configures the Gin engine with all routes and middleware.
func Setup(
	corsOrigins []string,
	extractionH *handler.ExtractionHandler,
	healthH *handler.HealthHandler,
	spaH *handler.SPAHandler,
) *gin.Engine {
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.CORS(corsOrigins))

	// Health checks
	r.GET("/api/health", healthH.Health)
	r.GET("/healthz", healthH.Liveness)
	r.GET("/readyz", healthH.Readiness)

	// API docs
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Extraction routes
	extract := r.Group("/extract")
	extract.POST("/bol", extractionH.ExtractBOL)
	extract.POST("/bol/s3", extractionH.ExtractBOLFromS3)
	extract.POST("/bol/export", extractionH.Export)

	// Frontend
	if info, err := os.Stat(spaH.AssetsDir()); err == nil && info.IsDir() {
		r.Static("/assets", spaH.AssetsDir())
	}
	r.NoRoute(spaH.Fallback)

	return r
}
