package postgres

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/capitalizeai/scoring-api/internal/domain"
)

type OrganizationRepository struct {
	writerDB *gorm.DB
	readerDB *gorm.DB
}

func NewOrganizationRepository(writerDB, readerDB *gorm.DB) *OrganizationRepository {
	return &OrganizationRepository{
		writerDB: writerDB,
		readerDB: readerDB,
	}
}

// Create inserts the organization together with the owner membership.
// Both rows land in one transaction so a failed membership insert never
// leaves an orphaned organization.
func (r *OrganizationRepository) Create(ctx context.Context, org *domain.Organization, ownerID string) (*domain.Organization, error) {
	if org.ID == "" {
		org.ID = uuid.New().String()
	}

	err := r.writerDB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(org).Error; err != nil {
			return err
		}

		member := &domain.OrgMember{
			ID:     uuid.New().String(),
			UserID: ownerID,
			OrgID:  org.ID,
			Role:   domain.RoleOwner,
		}
		return tx.Create(member).Error
	})
	if err != nil {
		return nil, err
	}

	return org, nil
}

func (r *OrganizationRepository) GetByID(ctx context.Context, id string) (*domain.Organization, error) {
	var org domain.Organization
	if err := r.readerDB.WithContext(ctx).First(&org, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &org, nil
}

func (r *OrganizationRepository) GetBySlug(ctx context.Context, slug string) (*domain.Organization, error) {
	var org domain.Organization
	if err := r.readerDB.WithContext(ctx).First(&org, "slug = ?", slug).Error; err != nil {
		return nil, err
	}
	return &org, nil
}

func (r *OrganizationRepository) Update(ctx context.Context, org *domain.Organization) error {
	return r.writerDB.WithContext(ctx).Save(org).Error
}

func (r *OrganizationRepository) ListByUser(ctx context.Context, userID string) ([]domain.OrgMember, error) {
	var memberships []domain.OrgMember
	if err := r.readerDB.WithContext(ctx).
		Preload("Org").
		Where("user_id = ?", userID).
		Find(&memberships).Error; err != nil {
		return nil, err
	}
	return memberships, nil
}

func (r *OrganizationRepository) ListMembers(ctx context.Context, orgID string) ([]domain.OrgMember, error) {
	var members []domain.OrgMember
	if err := r.readerDB.WithContext(ctx).
		Preload("Profile").
		Where("org_id = ?", orgID).
		Order("joined_at ASC").
		Find(&members).Error; err != nil {
		return nil, err
	}
	return members, nil
}

func (r *OrganizationRepository) AddMember(ctx context.Context, member *domain.OrgMember) error {
	if member.ID == "" {
		member.ID = uuid.New().String()
	}
	return r.writerDB.WithContext(ctx).Create(member).Error
}
