package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/capitalizeai/scoring-api/internal/api/dto"
	"github.com/capitalizeai/scoring-api/internal/service"
	"github.com/capitalizeai/scoring-api/internal/utils"
)

//go:generate mockery --name ProfileService --output ../mocks
type ProfileService interface {
	Get(ctx context.Context, userID string) (*dto.ProfileResponse, error)
	Upsert(ctx context.Context, userID, email string, req dto.UpdateProfileRequest) (*dto.ProfileResponse, error)
}

type ProfileHandler struct {
	*BaseHandler
	service ProfileService
}

func NewProfileHandler(service ProfileService) *ProfileHandler {
	return &ProfileHandler{service: service}
}

// GetProfile godoc
// @Summary Get my profile
// @Description Get the authenticated user's profile
// @Tags profile
// @Produce json
// @Success 200 {object} dto.ProfileResponse
// @Failure 401 {object} dto.Error
// @Failure 404 {object} dto.Error
// @Failure 500 {object} dto.Error
// @Router /profile [get]
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	userID := c.GetString(string(utils.UserIDKey))
	if userID == "" {
		c.JSON(http.StatusUnauthorized, dto.Error{Error: "No user ID found"})
		return
	}

	profile, err := h.service.Get(h.RequestCtx(c), userID)
	if err != nil {
		if errors.Is(err, service.ErrProfileNotFound) {
			c.JSON(http.StatusNotFound, dto.Error{Error: "Profile not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, dto.Error{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, profile)
}

// UpdateProfile godoc
// @Summary Update my profile
// @Description Create or update the authenticated user's profile
// @Tags profile
// @Accept json
// @Produce json
// @Param body body dto.UpdateProfileRequest true "Profile fields"
// @Success 200 {object} dto.ProfileResponse
// @Failure 400 {object} dto.Error
// @Failure 401 {object} dto.Error
// @Failure 500 {object} dto.Error
// @Router /profile [put]
func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	var req dto.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Error{Error: err.Error()})
		return
	}

	userID := c.GetString(string(utils.UserIDKey))
	if userID == "" {
		c.JSON(http.StatusUnauthorized, dto.Error{Error: "No user ID found"})
		return
	}

	profile, err := h.service.Upsert(h.RequestCtx(c), userID, emailFromClaims(c), req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.Error{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, profile)
}

// emailFromClaims extracts the authenticated email from the JWT claims
func emailFromClaims(c *gin.Context) string {
	claims, exists := c.Get(string(utils.ClaimsKey))
	if !exists {
		return ""
	}
	claimsMap, ok := claims.(jwt.MapClaims)
	if !ok {
		return ""
	}
	email, _ := claimsMap["email"].(string)
	return email
}
