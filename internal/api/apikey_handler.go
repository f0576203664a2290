package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/capitalizeai/scoring-api/internal/api/dto"
	"github.com/capitalizeai/scoring-api/internal/service"
	"github.com/capitalizeai/scoring-api/internal/utils"
)

//go:generate mockery --name APIKeyService --output ../mocks
type APIKeyService interface {
	Generate(ctx context.Context, orgID, createdBy string, req dto.CreateAPIKeyRequest) (*dto.CreateAPIKeyResponse, error)
	List(ctx context.Context, orgID string) ([]dto.APIKeyResponse, error)
	Deactivate(ctx context.Context, keyID string) error
}

type APIKeyHandler struct {
	*BaseHandler
	service APIKeyService
}

func NewAPIKeyHandler(service APIKeyService) *APIKeyHandler {
	return &APIKeyHandler{service: service}
}

// CreateAPIKey godoc
// @Summary Create API key
// @Description Generate a new API key for the caller's organization. The
// @Description raw token is returned once and cannot be retrieved again.
// @Tags api_keys
// @Accept json
// @Produce json
// @Param body body dto.CreateAPIKeyRequest true "API key object"
// @Success 201 {object} dto.CreateAPIKeyResponse
// @Failure 400 {object} dto.Error
// @Failure 401 {object} dto.Error
// @Failure 500 {object} dto.Error
// @Router /api-keys [post]
func (h *APIKeyHandler) CreateAPIKey(c *gin.Context) {
	var req dto.CreateAPIKeyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Error{Error: err.Error()})
		return
	}

	orgID := c.GetString(string(utils.OrgIDKey))
	if orgID == "" {
		c.JSON(http.StatusUnauthorized, dto.Error{Error: "No organization ID found"})
		return
	}
	userID := c.GetString(string(utils.UserIDKey))

	key, err := h.service.Generate(h.RequestCtx(c), orgID, userID, req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.Error{Error: err.Error()})
		return
	}

	c.JSON(http.StatusCreated, key)
}

// ListAPIKeys godoc
// @Summary List API keys
// @Description List the organization's API keys, newest first. Hashes and
// @Description raw tokens are never included.
// @Tags api_keys
// @Produce json
// @Success 200 {array} dto.APIKeyResponse
// @Failure 401 {object} dto.Error
// @Failure 500 {object} dto.Error
// @Router /api-keys [get]
func (h *APIKeyHandler) ListAPIKeys(c *gin.Context) {
	orgID := c.GetString(string(utils.OrgIDKey))
	if orgID == "" {
		c.JSON(http.StatusUnauthorized, dto.Error{Error: "No organization ID found"})
		return
	}

	keys, err := h.service.List(h.RequestCtx(c), orgID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.Error{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, keys)
}

// DeactivateAPIKey godoc
// @Summary Deactivate API key
// @Description Soft-delete an API key. Deactivating an already inactive
// @Description key succeeds; the row is kept for audit.
// @Tags api_keys
// @Produce json
// @Param id path string true "API key ID"
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} dto.Error
// @Failure 404 {object} dto.Error
// @Failure 500 {object} dto.Error
// @Router /api-keys/{id} [delete]
func (h *APIKeyHandler) DeactivateAPIKey(c *gin.Context) {
	if err := h.service.Deactivate(h.RequestCtx(c), c.Param("id")); err != nil {
		if errors.Is(err, service.ErrAPIKeyNotFound) {
			c.JSON(http.StatusNotFound, dto.Error{Error: "API key not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, dto.Error{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "API key deactivated"})
}
