package service

import (
	"context"
	"errors"
	"strings"

	"github.com/gosimple/slug"
	"gorm.io/gorm"

	"github.com/capitalizeai/scoring-api/internal/api/dto"
	"github.com/capitalizeai/scoring-api/internal/domain"
	"github.com/capitalizeai/scoring-api/internal/repository"
)

type OrganizationService struct {
	repo repository.Repository
}

func NewOrganizationService(repo repository.Repository) *OrganizationService {
	return &OrganizationService{repo: repo}
}

// Create inserts the organization together with the creator's owner
// membership. The two rows commit or roll back as one.
func (s *OrganizationService) Create(ctx context.Context, userID string, req dto.CreateOrganizationRequest) (*dto.OrganizationResponse, error) {
	name := strings.TrimSpace(req.Name)
	if len(name) < 2 {
		return nil, ErrOrgNameShort
	}

	org := &domain.Organization{
		Name:    name,
		Slug:    Slugify(name),
		Type:    domain.OrgTypeIMF,
		Plan:    domain.OrgPlanStarter,
		Country: "CM",
		Status:  domain.OrgStatusTrial,
		Quotas:  domain.DefaultQuotas(),
	}
	if req.Type != "" {
		org.Type = domain.OrgType(req.Type)
	}
	if req.Country != "" {
		org.Country = req.Country
	}
	if req.Address != "" {
		org.Address = &req.Address
	}
	if req.Website != "" {
		org.Website = &req.Website
	}

	created, err := s.repo.Organization().Create(ctx, org, userID)
	if err != nil {
		return nil, err
	}
	return dto.FromOrganization(created), nil
}

func (s *OrganizationService) GetByID(ctx context.Context, id string) (*dto.OrganizationResponse, error) {
	org, err := s.repo.Organization().GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrgNotFound
		}
		return nil, err
	}
	return dto.FromOrganization(org), nil
}

// Update applies the allowed fields only. Plan, quotas and status are
// managed elsewhere.
func (s *OrganizationService) Update(ctx context.Context, id string, req dto.UpdateOrganizationRequest) (*dto.OrganizationResponse, error) {
	org, err := s.repo.Organization().GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrgNotFound
		}
		return nil, err
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if len(name) < 2 {
			return nil, ErrOrgNameShort
		}
		org.Name = name
	}
	if req.Address != nil {
		org.Address = req.Address
	}
	if req.Website != nil {
		org.Website = req.Website
	}
	if req.LogoURL != nil {
		org.LogoURL = req.LogoURL
	}
	if req.Settings != nil {
		org.Settings = req.Settings
	}

	if err := s.repo.Organization().Update(ctx, org); err != nil {
		return nil, err
	}
	return dto.FromOrganization(org), nil
}

// ListForUser returns the organizations the user belongs to
func (s *OrganizationService) ListForUser(ctx context.Context, userID string) ([]dto.OrganizationResponse, error) {
	memberships, err := s.repo.Organization().ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	orgs := make([]dto.OrganizationResponse, 0, len(memberships))
	for i := range memberships {
		if memberships[i].Org != nil {
			orgs = append(orgs, *dto.FromOrganization(memberships[i].Org))
		}
	}
	return orgs, nil
}

func (s *OrganizationService) ListMembers(ctx context.Context, orgID string) ([]dto.OrgMemberResponse, error) {
	members, err := s.repo.Organization().ListMembers(ctx, orgID)
	if err != nil {
		return nil, err
	}
	return dto.FromOrgMembers(members), nil
}

func (s *OrganizationService) AddMember(ctx context.Context, orgID, invitedBy string, req dto.AddMemberRequest) (*dto.OrgMemberResponse, error) {
	role := domain.MemberRole(req.Role)
	if !domain.IsValidRole(role) {
		return nil, ErrInvalidRole
	}

	member := &domain.OrgMember{
		UserID:    req.UserID,
		OrgID:     orgID,
		Role:      role,
		InvitedBy: &invitedBy,
	}
	if err := s.repo.Organization().AddMember(ctx, member); err != nil {
		return nil, err
	}
	return dto.FromOrgMember(member), nil
}

// Slugify derives the URL identifier from an organization name: URL-safe,
// at most 50 characters, no leading or trailing hyphen.
func Slugify(name string) string {
	s := slug.Make(name)
	if len(s) > 50 {
		s = s[:50]
	}
	return strings.Trim(s, "-")
}
