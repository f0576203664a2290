package api

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/capitalizeai/scoring-api/internal/api/dto"
	"github.com/capitalizeai/scoring-api/internal/domain"
	"github.com/capitalizeai/scoring-api/internal/service"
	contextutils "github.com/capitalizeai/scoring-api/internal/utils"
	"github.com/capitalizeai/scoring-api/pkg/utils"
)

//go:generate mockery --name ScoringService --output ../mocks
type ScoringService interface {
	Submit(ctx context.Context, orgID, userID string, apiKeyID *string, req dto.CreateScoringRequest) (*dto.ScoringRequestResponse, error)
	GetByID(ctx context.Context, orgID, id string) (*dto.ScoringRequestResponse, error)
	List(ctx context.Context, filter *domain.ScoringRequestFilter) (*dto.ListScoringRequestsResponse, error)
	ScheduleArchive(ctx context.Context, orgID string, beforeDate time.Time) error
}

type ScoringHandler struct {
	*BaseHandler
	service ScoringService
}

func NewScoringHandler(service ScoringService) *ScoringHandler {
	return &ScoringHandler{service: service}
}

// SubmitScoring godoc
// @Summary Submit scoring request
// @Description Score a subject. The request, its score and the billing
// @Description event are stored atomically; the result is returned inline.
// @Tags scoring
// @Accept json
// @Produce json
// @Param body body dto.CreateScoringRequest true "Scoring request object"
// @Success 201 {object} dto.ScoringRequestResponse
// @Failure 400 {object} dto.Error
// @Failure 401 {object} dto.Error
// @Failure 500 {object} dto.Error
// @Router /scoring [post]
func (h *ScoringHandler) SubmitScoring(c *gin.Context) {
	var req dto.CreateScoringRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Error{Error: err.Error()})
		return
	}

	orgID := c.GetString(string(contextutils.OrgIDKey))
	if orgID == "" {
		c.JSON(http.StatusUnauthorized, dto.Error{Error: "No organization ID found"})
		return
	}
	userID := c.GetString(string(contextutils.UserIDKey))

	var apiKeyID *string
	if keyID := c.GetString(string(contextutils.APIKeyIDKey)); keyID != "" {
		apiKeyID = &keyID
	}

	scoring, err := h.service.Submit(h.RequestCtx(c), orgID, userID, apiKeyID, req)
	if err != nil {
		if errors.Is(err, service.ErrSubjectRequired) {
			c.JSON(http.StatusBadRequest, dto.Error{Error: err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, dto.Error{Error: err.Error()})
		return
	}

	c.JSON(http.StatusCreated, scoring)
}

// GetScoring godoc
// @Summary Get scoring request
// @Description Get a scoring request by its ID, with the score embedded
// @Tags scoring
// @Produce json
// @Param id path string true "Scoring request ID"
// @Success 200 {object} dto.ScoringRequestResponse
// @Failure 401 {object} dto.Error
// @Failure 404 {object} dto.Error
// @Failure 500 {object} dto.Error
// @Router /scoring/{id} [get]
func (h *ScoringHandler) GetScoring(c *gin.Context) {
	orgID := c.GetString(string(contextutils.OrgIDKey))
	if orgID == "" {
		c.JSON(http.StatusUnauthorized, dto.Error{Error: "No organization ID found"})
		return
	}

	scoring, err := h.service.GetByID(h.RequestCtx(c), orgID, c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrScoringNotFound) {
			c.JSON(http.StatusNotFound, dto.Error{Error: "Scoring request not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, dto.Error{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, scoring)
}

// ListScorings godoc
// @Summary List scoring requests
// @Description List the organization's scoring requests, newest first
// @Tags scoring
// @Produce json
// @Param page query int false "Page number"
// @Param per_page query int false "Page size"
// @Param status query string false "Filter by status"
// @Param subject_name query string false "Filter by subject name"
// @Param subject_phone query string false "Filter by subject phone"
// @Success 200 {object} dto.ListScoringRequestsResponse
// @Failure 401 {object} dto.Error
// @Failure 500 {object} dto.Error
// @Router /scoring [get]
func (h *ScoringHandler) ListScorings(c *gin.Context) {
	filter, err := getScoringFilterFromQuery(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.Error{Error: err.Error()})
		return
	}

	result, err := h.service.List(h.RequestCtx(c), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.Error{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, result)
}

// ScheduleArchive godoc
// @Summary Schedule archive operation
// @Description Enqueues an archive job for completed scoring requests
// @Description before the specified date; cleanup chains after the export
// @Tags scoring
// @Produce json
// @Param before_date query string true "Archive requests before this date (ISO 8601 or YYYY-MM-DD)"
// @Success 202 {object} map[string]interface{} "Archive operation scheduled"
// @Failure 400 {object} dto.Error
// @Failure 401 {object} dto.Error
// @Failure 500 {object} dto.Error
// @Router /scoring/archive [delete]
func (h *ScoringHandler) ScheduleArchive(c *gin.Context) {
	orgID := c.GetString(string(contextutils.OrgIDKey))
	if orgID == "" {
		c.JSON(http.StatusUnauthorized, dto.Error{Error: "No organization ID found"})
		return
	}

	beforeDateStr := c.Query("before_date")
	if beforeDateStr == "" {
		c.JSON(http.StatusBadRequest, dto.Error{Error: "before_date parameter is required"})
		return
	}

	beforeDate, err := utils.ParseUserTime(beforeDateStr, true)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.Error{Error: "Invalid before_date format: " + err.Error()})
		return
	}

	if beforeDate.After(time.Now()) {
		c.JSON(http.StatusBadRequest, dto.Error{Error: "before_date cannot be in the future"})
		return
	}

	if err := h.service.ScheduleArchive(c.Request.Context(), orgID, beforeDate); err != nil {
		c.JSON(http.StatusInternalServerError, dto.Error{Error: "Failed to schedule archive: " + err.Error()})
		return
	}

	c.JSON(http.StatusAccepted, gin.H{
		"message":     "Archive operation scheduled successfully",
		"org_id":      orgID,
		"before_date": beforeDate.Format(time.RFC3339),
	})
}

func getScoringFilterFromQuery(c *gin.Context) (*domain.ScoringRequestFilter, error) {
	orgID := c.GetString(string(contextutils.OrgIDKey))
	if orgID == "" {
		return nil, errors.New("org_id is required")
	}

	filter := &domain.ScoringRequestFilter{
		OrgID:        orgID,
		RequestedBy:  c.Query("requested_by"),
		SubjectName:  c.Query("subject_name"),
		SubjectPhone: c.Query("subject_phone"),
		Status:       domain.ScoringStatus(c.Query("status")),
	}

	// Parse pagination
	if page := c.Query("page"); page != "" {
		if pageNum, err := strconv.Atoi(page); err == nil {
			filter.Page = pageNum
		}
	}
	if perPage := c.Query("per_page"); perPage != "" {
		if size, err := strconv.Atoi(perPage); err == nil {
			filter.PageSize = size
		}
	}

	// Parse optional time filters
	if startTime := c.Query("start_time"); startTime != "" {
		t, err := utils.ParseUserTime(startTime, false)
		if err != nil {
			return nil, err
		}
		filter.StartTime = t
	}
	if endTime := c.Query("end_time"); endTime != "" {
		t, err := utils.ParseUserTime(endTime, true)
		if err != nil {
			return nil, err
		}
		filter.EndTime = t
	}
	if !filter.StartTime.IsZero() && !filter.EndTime.IsZero() && filter.StartTime.After(filter.EndTime) {
		return nil, errors.New("start_time must be before end_time")
	}

	return filter, nil
}
