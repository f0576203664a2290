package service

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"

	"github.com/capitalizeai/scoring-api/internal/api/dto"
	"github.com/capitalizeai/scoring-api/internal/domain"
	"github.com/capitalizeai/scoring-api/internal/mocks"
)

type OrganizationServiceTestSuite struct {
	suite.Suite
	mockRepo *mocks.Repository
	mockOrg  *mocks.OrganizationRepository
	service  *OrganizationService
}

func (s *OrganizationServiceTestSuite) SetupTest() {
	s.mockRepo = new(mocks.Repository)
	s.mockOrg = new(mocks.OrganizationRepository)

	s.mockRepo.On("Organization").Return(s.mockOrg)

	s.service = NewOrganizationService(s.mockRepo)
}

func TestOrganizationService(t *testing.T) {
	suite.Run(t, new(OrganizationServiceTestSuite))
}

func (s *OrganizationServiceTestSuite) TestCreate_Success() {
	// Arrange
	ctx := context.Background()
	req := dto.CreateOrganizationRequest{
		Name: "  Microfinance du Littoral  ",
	}

	var created *domain.Organization
	s.mockOrg.On("Create", ctx, mock.AnythingOfType("*domain.Organization"), "user1").
		Run(func(args mock.Arguments) {
			created = args.Get(1).(*domain.Organization)
			created.ID = "org1"
		}).
		Return(func(_ context.Context, org *domain.Organization, _ string) *domain.Organization { return org }, nil)

	// Act
	resp, err := s.service.Create(ctx, "user1", req)

	// Assert
	s.NoError(err)
	s.Equal("Microfinance du Littoral", resp.Name)
	s.Equal("microfinance-du-littoral", resp.Slug)
	s.Equal("imf", resp.Type)
	s.Equal("starter", resp.Plan)
	s.Equal("CM", resp.Country)
	s.Equal("trial", resp.Status)
	s.Equal(domain.DefaultQuotas(), created.Quotas)
	s.mockOrg.AssertExpectations(s.T())
}

func (s *OrganizationServiceTestSuite) TestCreate_NameTooShort() {
	// Arrange
	ctx := context.Background()
	req := dto.CreateOrganizationRequest{Name: " a "}

	// Act
	_, err := s.service.Create(ctx, "user1", req)

	// Assert
	s.ErrorIs(err, ErrOrgNameShort)
	s.mockOrg.AssertNotCalled(s.T(), "Create")
}

func (s *OrganizationServiceTestSuite) TestGetByID_NotFound() {
	// Arrange
	ctx := context.Background()
	s.mockOrg.On("GetByID", ctx, "missing").Return(nil, gorm.ErrRecordNotFound)

	// Act
	_, err := s.service.GetByID(ctx, "missing")

	// Assert
	s.ErrorIs(err, ErrOrgNotFound)
	s.mockOrg.AssertExpectations(s.T())
}

func (s *OrganizationServiceTestSuite) TestUpdate_AllowedFieldsOnly() {
	// Arrange
	ctx := context.Background()
	existing := &domain.Organization{
		ID:   "org1",
		Name: "Old Name",
		Plan: domain.OrgPlanStarter,
	}
	newName := "New Name"
	address := "Douala, Akwa"

	s.mockOrg.On("GetByID", ctx, "org1").Return(existing, nil)
	s.mockOrg.On("Update", ctx, mock.AnythingOfType("*domain.Organization")).Return(nil)

	// Act
	resp, err := s.service.Update(ctx, "org1", dto.UpdateOrganizationRequest{
		Name:    &newName,
		Address: &address,
	})

	// Assert
	s.NoError(err)
	s.Equal("New Name", resp.Name)
	s.Equal(&address, resp.Address)
	s.Equal("starter", resp.Plan)
	s.mockOrg.AssertExpectations(s.T())
}

func (s *OrganizationServiceTestSuite) TestAddMember_InvalidRole() {
	// Arrange
	ctx := context.Background()
	req := dto.AddMemberRequest{UserID: "user2", Role: "superuser"}

	// Act
	_, err := s.service.AddMember(ctx, "org1", "user1", req)

	// Assert
	s.ErrorIs(err, ErrInvalidRole)
	s.mockOrg.AssertNotCalled(s.T(), "AddMember")
}

func (s *OrganizationServiceTestSuite) TestAddMember_Success() {
	// Arrange
	ctx := context.Background()
	req := dto.AddMemberRequest{UserID: "user2", Role: "analyst"}

	s.mockOrg.On("AddMember", ctx, mock.AnythingOfType("*domain.OrgMember")).Return(nil)

	// Act
	resp, err := s.service.AddMember(ctx, "org1", "user1", req)

	// Assert
	s.NoError(err)
	s.Equal("user2", resp.UserID)
	s.Equal("analyst", resp.Role)
	s.mockOrg.AssertExpectations(s.T())
}

func TestSlugify(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"My Organization", "my-organization"},
		{"Crédit du Sahel", "credit-du-sahel"},
		{"Kiva  Capital!", "kiva-capital"},
		{strings.Repeat("a", 60), strings.Repeat("a", 50)},
	}

	for _, tt := range tests {
		got := Slugify(tt.name)
		if got != tt.want {
			t.Errorf("Slugify(%q) = %q, want %q", tt.name, got, tt.want)
		}
		if len(got) > 50 {
			t.Errorf("Slugify(%q) exceeds 50 chars", tt.name)
		}
		if strings.HasPrefix(got, "-") || strings.HasSuffix(got, "-") {
			t.Errorf("Slugify(%q) has a leading or trailing hyphen", tt.name)
		}
	}
}
