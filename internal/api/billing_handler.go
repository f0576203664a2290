package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/capitalizeai/scoring-api/internal/api/dto"
	"github.com/capitalizeai/scoring-api/internal/domain"
	contextutils "github.com/capitalizeai/scoring-api/internal/utils"
	"github.com/capitalizeai/scoring-api/pkg/utils"
)

//go:generate mockery --name BillingService --output ../mocks
type BillingService interface {
	GetUsageSummary(ctx context.Context, orgID string, since time.Time) (*domain.UsageSummary, error)
}

type BillingHandler struct {
	*BaseHandler
	service BillingService
}

func NewBillingHandler(service BillingService) *BillingHandler {
	return &BillingHandler{service: service}
}

// GetUsageSummary godoc
// @Summary Get usage summary
// @Description Aggregate the organization's billing events: event count,
// @Description total cost in FCFA and a per-event-type quantity map
// @Tags billing
// @Produce json
// @Param since query string false "Only count events after this date (ISO 8601 or YYYY-MM-DD)"
// @Success 200 {object} domain.UsageSummary
// @Failure 400 {object} dto.Error
// @Failure 401 {object} dto.Error
// @Failure 500 {object} dto.Error
// @Router /billing/usage [get]
func (h *BillingHandler) GetUsageSummary(c *gin.Context) {
	orgID := c.GetString(string(contextutils.OrgIDKey))
	if orgID == "" {
		c.JSON(http.StatusUnauthorized, dto.Error{Error: "No organization ID found"})
		return
	}

	var since time.Time
	if sinceStr := c.Query("since"); sinceStr != "" {
		t, err := utils.ParseUserTime(sinceStr, false)
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.Error{Error: "Invalid since format: " + err.Error()})
			return
		}
		since = t
	}

	summary, err := h.service.GetUsageSummary(h.RequestCtx(c), orgID, since)
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.Error{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, summary)
}
