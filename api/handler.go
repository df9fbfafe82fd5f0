package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"api_timeshare/internal/sales"
)

// salesHandler holds the sales service and implements HTTP handlers for
// sale-entry operations.
type salesHandler struct {
	salesService *sales.Service
	logger       *zap.Logger
}

// NewSalesHandler creates a new sales handler.
func NewSalesHandler(salesService *sales.Service, logger *zap.Logger) *salesHandler {
	return &salesHandler{
		salesService: salesService,
		logger:       logger,
	}
}

// handleCreateSale handles the POST /sales endpoint. The body carries
// the raw form fields exactly as the entry form collected them.
func (h *salesHandler) handleCreateSale(ctx *gin.Context) {
	var form sales.FormInput
	if err := ctx.ShouldBindJSON(&form); err != nil {
		h.logger.Warn("failed to bind JSON request", zap.Error(err))
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid request payload"})
		return
	}

	sale, err := h.salesService.CreateSale(ctx.Request.Context(), form)
	if err != nil {
		h.logger.Error("failed to create sale", zap.Error(err), zap.String("rep_id", form.RepID))
		switch err.Error() {
		case "amount must be greater than zero", "rep_id is required":
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create sale"})
		}
		return
	}

	ctx.JSON(http.StatusCreated, sale)
}

// handleQuote handles POST /sales/quote: it recomputes the derived
// figures for the current form state without recording anything, so
// the form can refresh them on every keystroke.
func (h *salesHandler) handleQuote(ctx *gin.Context) {
	var form sales.FormInput
	if err := ctx.ShouldBindJSON(&form); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid request payload"})
		return
	}

	input, derived, err := h.salesService.Quote(ctx.Request.Context(), form)
	if err != nil {
		h.logger.Error("failed to quote sale", zap.Error(err), zap.String("rep_id", form.RepID))
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "failed to quote sale"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"input":         input,
		"derived":       derived,
		"cost_incurred": derived.CostIncurred(),
	})
}

// handlePatchSale moves a sale through the approval lifecycle.
func (h *salesHandler) handlePatchSale(ctx *gin.Context) {
	saleID := ctx.Param("id")
	var req struct {
		Status string `json:"status"`
	}

	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	updated, err := h.salesService.UpdateSaleStatus(saleID, req.Status)
	if err != nil {
		switch {
		case errors.Is(err, sales.ErrNotFound):
			ctx.JSON(http.StatusNotFound, gin.H{"error": "sale not found"})
		case errors.Is(err, sales.ErrInvalidStatus):
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid status value"})
		case errors.Is(err, sales.ErrInvalidTransition):
			ctx.JSON(http.StatusConflict, gin.H{"error": "invalid status transition"})
		default:
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		}
		return
	}

	ctx.JSON(http.StatusOK, updated)
}

// handleSearchSales handles GET /sales with optional rep and status filters.
func (h *salesHandler) handleSearchSales(ctx *gin.Context) {
	repID := ctx.Query("rep_id")
	status := ctx.Query("status")

	results, metadata, err := h.salesService.SearchSales(repID, status)
	if err != nil {
		h.logger.Error("error searching sales",
			zap.String("rep_filter", repID),
			zap.String("status_filter", status),
			zap.Error(err),
		)
		if errors.Is(err, sales.ErrInvalidStatus) {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "failed to search sales: " + err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"results": results, "metadata": metadata})
}
