package router

import (
	"github.com/gin-gonic/gin"

	"github.com/Skunitoo/AI-Bookkeeping-Assistant/internal/config"
	"github.com/Skunitoo/AI-Bookkeeping-Assistant/internal/handler"
	"github.com/Skunitoo/AI-Bookkeeping-Assistant/internal/middleware"
)

// Setup configures the Gin engine with all routes and middleware.
func Setup(
	cfg *config.Config,
	ingestH *handler.IngestHandler,
	ledgerH *handler.LedgerHandler,
	insightsH *handler.InsightsHandler,
	exportH *handler.ExportHandler,
	healthH *handler.HealthHandler,
) *gin.Engine {
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.CORS(cfg.CORS.AllowedOrigins))

	r.GET("/healthz", healthH.Liveness)

	v1 := r.Group("/api/v1")

	v1.POST("/documents", ingestH.Ingest)

	ledgerGroup := v1.Group("/ledger")
	ledgerGroup.GET("", ledgerH.List)
	ledgerGroup.PUT("/columns", ledgerH.ReplaceColumn)
	ledgerGroup.POST("/rows", ledgerH.AddRow)
	ledgerGroup.PUT("/rows/:id", ledgerH.UpdateRow)
	ledgerGroup.DELETE("/rows/:id", ledgerH.DeleteRow)
	ledgerGroup.POST("/reset", ledgerH.Reset)
	ledgerGroup.GET("/summary", ledgerH.Summary)
	ledgerGroup.POST("/insights", insightsH.Generate)

	exportGroup := v1.Group("/export")
	exportGroup.GET("", exportH.Package)
	exportGroup.GET("/spreadsheet", exportH.Spreadsheet)

	return r
}
