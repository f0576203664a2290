package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/capitalizeai/scoring-api/internal/api/dto"
	"github.com/capitalizeai/scoring-api/internal/domain"
	"github.com/capitalizeai/scoring-api/internal/utils"
)

//go:generate mockery --name TransactionService --output ../mocks
type TransactionService interface {
	BulkImport(ctx context.Context, orgID string, req dto.BulkCreateTransactionsRequest) (*dto.BulkCreateTransactionsResponse, error)
	GetSubjectStats(ctx context.Context, orgID, subjectPhone string) (*domain.TransactionStats, error)
}

type TransactionHandler struct {
	*BaseHandler
	service TransactionService
}

func NewTransactionHandler(service TransactionService) *TransactionHandler {
	return &TransactionHandler{service: service}
}

// BulkCreateTransactions godoc
// @Summary Bulk ingest transactions
// @Description Ingest a batch of behavioral transaction records used as
// @Description scoring input. Records are append-only.
// @Tags transactions
// @Accept json
// @Produce json
// @Param body body dto.BulkCreateTransactionsRequest true "Batch of transaction records"
// @Success 201 {object} dto.BulkCreateTransactionsResponse
// @Failure 400 {object} dto.Error
// @Failure 401 {object} dto.Error
// @Failure 500 {object} dto.Error
// @Router /transactions/bulk [post]
func (h *TransactionHandler) BulkCreateTransactions(c *gin.Context) {
	var req dto.BulkCreateTransactionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Error{Error: err.Error()})
		return
	}

	orgID := c.GetString(string(utils.OrgIDKey))
	if orgID == "" {
		c.JSON(http.StatusUnauthorized, dto.Error{Error: "No organization ID found"})
		return
	}

	result, err := h.service.BulkImport(h.RequestCtx(c), orgID, req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.Error{Error: err.Error()})
		return
	}

	c.JSON(http.StatusCreated, result)
}

// GetSubjectStats godoc
// @Summary Get subject transaction statistics
// @Description Aggregate a subject's transaction history: totals sent and
// @Description received, average amount and unique counterparties
// @Tags transactions
// @Produce json
// @Param subject_phone query string true "Subject phone number"
// @Success 200 {object} domain.TransactionStats
// @Failure 400 {object} dto.Error
// @Failure 401 {object} dto.Error
// @Failure 500 {object} dto.Error
// @Router /transactions/stats [get]
func (h *TransactionHandler) GetSubjectStats(c *gin.Context) {
	orgID := c.GetString(string(utils.OrgIDKey))
	if orgID == "" {
		c.JSON(http.StatusUnauthorized, dto.Error{Error: "No organization ID found"})
		return
	}

	subjectPhone := c.Query("subject_phone")
	if subjectPhone == "" {
		c.JSON(http.StatusBadRequest, dto.Error{Error: "subject_phone parameter is required"})
		return
	}

	stats, err := h.service.GetSubjectStats(h.RequestCtx(c), orgID, subjectPhone)
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.Error{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, stats)
}
