package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/capitalizeai/scoring-api/internal/api/dto"
	"github.com/capitalizeai/scoring-api/internal/domain"
	"github.com/capitalizeai/scoring-api/internal/utils"
)

//go:generate mockery --name AnalyticsService --output ../mocks
type AnalyticsService interface {
	GetDashboardStats(ctx context.Context, orgID string) (*domain.DashboardStats, error)
}

type AnalyticsHandler struct {
	*BaseHandler
	service AnalyticsService
}

func NewAnalyticsHandler(service AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{service: service}
}

// GetDashboardStats godoc
// @Summary Get dashboard statistics
// @Description Aggregate the organization's scoring history: totals,
// @Description averages, score distribution, risk breakdown and recent activity
// @Tags analytics
// @Produce json
// @Success 200 {object} domain.DashboardStats
// @Failure 401 {object} dto.Error
// @Failure 500 {object} dto.Error
// @Router /analytics/dashboard [get]
func (h *AnalyticsHandler) GetDashboardStats(c *gin.Context) {
	orgID := c.GetString(string(utils.OrgIDKey))
	if orgID == "" {
		c.JSON(http.StatusUnauthorized, dto.Error{Error: "No organization ID found"})
		return
	}

	stats, err := h.service.GetDashboardStats(h.RequestCtx(c), orgID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.Error{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, stats)
}
