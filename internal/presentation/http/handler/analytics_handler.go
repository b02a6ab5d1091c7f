package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/sangkips/vendor-ledger-api/internal/application/service"
	"github.com/sangkips/vendor-ledger-api/internal/presentation/http/dto/response"
)

// AnalyticsHandler handles dashboard analytics requests
type AnalyticsHandler struct {
	analyticsService *service.AnalyticsService
}

// NewAnalyticsHandler creates a new analytics handler
func NewAnalyticsHandler(analyticsService *service.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{analyticsService: analyticsService}
}

// GetStats handles getting the headline figures
// @Router /analytics [get]
func (h *AnalyticsHandler) GetStats(c *gin.Context) {
	stats, err := h.analyticsService.GetStats(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Analytics retrieved successfully", stats)
}

// GetSummary handles getting the 30-day payment trend
// @Router /analytics/summary [get]
func (h *AnalyticsHandler) GetSummary(c *gin.Context) {
	summary, err := h.analyticsService.GetSummary(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Analytics summary retrieved successfully", summary)
}
