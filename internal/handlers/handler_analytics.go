package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/sutratex/bunai-backend/internal/core/ports/services"
	"github.com/sutratex/bunai-backend/internal/dto"
)

// analyticsHandler handles the dashboard route.
type analyticsHandler struct {
	analyticsService portssvc.AnalyticsSvcFacade
}

func newAnalyticsHandler(as portssvc.AnalyticsSvcFacade) *analyticsHandler {
	return &analyticsHandler{
		analyticsService: as,
	}
}

// registerAnalyticsRoutes registers the analytics routes.
func registerAnalyticsRoutes(rg *gin.RouterGroup, analyticsService portssvc.AnalyticsSvcFacade) {
	h := newAnalyticsHandler(analyticsService)

	analytics := rg.Group("/analytics")
	{
		analytics.GET("/dashboard", h.getDashboard)
	}
}

// getDashboard godoc
// @Summary Get the business dashboard
// @Description Returns inventory value, outstanding receivable and payable,
// @Description a monthly sales series and the top parties by billing. When a
// @Description sub-query fails its section is zeroed and partialData is set
// @Description instead of failing the whole request.
// @Tags analytics
// @Produce json
// @Success 200 {object} dto.DashboardResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to build dashboard"
// @Security BearerAuth
// @Router /analytics/dashboard [get]
func (h *analyticsHandler) getDashboard(c *gin.Context) {
	dashboard, err := h.analyticsService.GetDashboard(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to build dashboard")
		return
	}
	c.JSON(http.StatusOK, dto.ToDashboardResponse(dashboard))
}
