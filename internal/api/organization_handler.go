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

//go:generate mockery --name OrganizationService --output ../mocks
type OrganizationService interface {
	Create(ctx context.Context, userID string, req dto.CreateOrganizationRequest) (*dto.OrganizationResponse, error)
	GetByID(ctx context.Context, id string) (*dto.OrganizationResponse, error)
	Update(ctx context.Context, id string, req dto.UpdateOrganizationRequest) (*dto.OrganizationResponse, error)
	ListForUser(ctx context.Context, userID string) ([]dto.OrganizationResponse, error)
	ListMembers(ctx context.Context, orgID string) ([]dto.OrgMemberResponse, error)
	AddMember(ctx context.Context, orgID, invitedBy string, req dto.AddMemberRequest) (*dto.OrgMemberResponse, error)
}

type OrganizationHandler struct {
	*BaseHandler
	service OrganizationService
}

func NewOrganizationHandler(service OrganizationService) *OrganizationHandler {
	return &OrganizationHandler{service: service}
}

// CreateOrganization godoc
// @Summary Create a new organization
// @Description Create an organization; the caller becomes its owner
// @Tags organizations
// @Accept json
// @Produce json
// @Param body body dto.CreateOrganizationRequest true "Organization object"
// @Success 201 {object} dto.OrganizationResponse
// @Failure 400 {object} dto.Error
// @Failure 401 {object} dto.Error
// @Failure 500 {object} dto.Error
// @Router /orgs [post]
func (h *OrganizationHandler) CreateOrganization(c *gin.Context) {
	var req dto.CreateOrganizationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Error{Error: err.Error()})
		return
	}

	userID := c.GetString(string(utils.UserIDKey))
	if userID == "" {
		c.JSON(http.StatusUnauthorized, dto.Error{Error: "No user ID found"})
		return
	}

	org, err := h.service.Create(h.RequestCtx(c), userID, req)
	if err != nil {
		if errors.Is(err, service.ErrOrgNameShort) {
			c.JSON(http.StatusBadRequest, dto.Error{Error: err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, dto.Error{Error: err.Error()})
		return
	}

	c.JSON(http.StatusCreated, org)
}

// ListOrganizations godoc
// @Summary List my organizations
// @Description List the organizations the authenticated user belongs to
// @Tags organizations
// @Produce json
// @Success 200 {array} dto.OrganizationResponse
// @Failure 401 {object} dto.Error
// @Failure 500 {object} dto.Error
// @Router /orgs [get]
func (h *OrganizationHandler) ListOrganizations(c *gin.Context) {
	userID := c.GetString(string(utils.UserIDKey))
	if userID == "" {
		c.JSON(http.StatusUnauthorized, dto.Error{Error: "No user ID found"})
		return
	}

	orgs, err := h.service.ListForUser(h.RequestCtx(c), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.Error{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, orgs)
}

// GetOrganization godoc
// @Summary Get organization
// @Description Get an organization by its ID
// @Tags organizations
// @Produce json
// @Param id path string true "Organization ID"
// @Success 200 {object} dto.OrganizationResponse
// @Failure 401 {object} dto.Error
// @Failure 404 {object} dto.Error
// @Failure 500 {object} dto.Error
// @Router /orgs/{id} [get]
func (h *OrganizationHandler) GetOrganization(c *gin.Context) {
	org, err := h.service.GetByID(h.RequestCtx(c), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrOrgNotFound) {
			c.JSON(http.StatusNotFound, dto.Error{Error: "Organization not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, dto.Error{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, org)
}

// UpdateOrganization godoc
// @Summary Update organization
// @Description Update an organization's editable fields
// @Tags organizations
// @Accept json
// @Produce json
// @Param id path string true "Organization ID"
// @Param body body dto.UpdateOrganizationRequest true "Fields to update"
// @Success 200 {object} dto.OrganizationResponse
// @Failure 400 {object} dto.Error
// @Failure 401 {object} dto.Error
// @Failure 404 {object} dto.Error
// @Failure 500 {object} dto.Error
// @Router /orgs/{id} [patch]
func (h *OrganizationHandler) UpdateOrganization(c *gin.Context) {
	var req dto.UpdateOrganizationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Error{Error: err.Error()})
		return
	}

	org, err := h.service.Update(h.RequestCtx(c), c.Param("id"), req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrOrgNotFound):
			c.JSON(http.StatusNotFound, dto.Error{Error: "Organization not found"})
		case errors.Is(err, service.ErrOrgNameShort):
			c.JSON(http.StatusBadRequest, dto.Error{Error: err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, dto.Error{Error: err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, org)
}

// ListMembers godoc
// @Summary List organization members
// @Description List the members of an organization with their profiles
// @Tags organizations
// @Produce json
// @Param id path string true "Organization ID"
// @Success 200 {array} dto.OrgMemberResponse
// @Failure 401 {object} dto.Error
// @Failure 500 {object} dto.Error
// @Router /orgs/{id}/members [get]
func (h *OrganizationHandler) ListMembers(c *gin.Context) {
	members, err := h.service.ListMembers(h.RequestCtx(c), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.Error{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, members)
}

// AddMember godoc
// @Summary Add organization member
// @Description Add a user to an organization with a role
// @Tags organizations
// @Accept json
// @Produce json
// @Param id path string true "Organization ID"
// @Param body body dto.AddMemberRequest true "Member object"
// @Success 201 {object} dto.OrgMemberResponse
// @Failure 400 {object} dto.Error
// @Failure 401 {object} dto.Error
// @Failure 500 {object} dto.Error
// @Router /orgs/{id}/members [post]
func (h *OrganizationHandler) AddMember(c *gin.Context) {
	var req dto.AddMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Error{Error: err.Error()})
		return
	}

	userID := c.GetString(string(utils.UserIDKey))
	member, err := h.service.AddMember(h.RequestCtx(c), c.Param("id"), userID, req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidRole) {
			c.JSON(http.StatusBadRequest, dto.Error{Error: err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, dto.Error{Error: err.Error()})
		return
	}

	c.JSON(http.StatusCreated, member)
}
