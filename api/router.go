package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"api_timeshare/internal/economics"
	"api_timeshare/internal/sales"
)

// Options configures the route wiring. Zero values fall back to the
// shipped defaults: the built-in commission schedules and the local
// approved-volume tally instead of an external tracker.
type Options struct {
	Calculator *economics.Calculator
	Volumes    sales.VolumeSource
	Logger     *zap.Logger
}

// InitRoutes registers all sale-entry endpoints on the given Gin
// engine. It initializes the storage, service, and handler, then binds
// each HTTP method and path to the appropriate handler function.
func InitRoutes(e *gin.Engine, opts Options) {
	logger := opts.Logger
	if logger == nil {
		logger, _ = zap.NewProduction()
	}

	salesStorage := sales.NewLocalStorage()
	salesService := sales.NewService(salesStorage, opts.Calculator, opts.Volumes, logger)
	salesHandler := NewSalesHandler(salesService, logger)

	e.POST("/sales", salesHandler.handleCreateSale)
	e.POST("/sales/quote", salesHandler.handleQuote)
	e.PATCH("/sales/:id", salesHandler.handlePatchSale)
	e.GET("/sales", salesHandler.handleSearchSales)

	e.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
		})
	})
}
