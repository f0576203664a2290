package postgres

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/capitalizeai/scoring-api/internal/domain"
)

type ProfileRepository struct {
	writerDB *gorm.DB
	readerDB *gorm.DB
}

func NewProfileRepository(writerDB, readerDB *gorm.DB) *ProfileRepository {
	return &ProfileRepository{
		writerDB: writerDB,
		readerDB: readerDB,
	}
}

func (r *ProfileRepository) Get(ctx context.Context, userID string) (*domain.Profile, error) {
	var profile domain.Profile
	if err := r.readerDB.WithContext(ctx).First(&profile, "id = ?", userID).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *ProfileRepository) Upsert(ctx context.Context, profile *domain.Profile) (*domain.Profile, error) {
	if err := r.writerDB.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			UpdateAll: true,
		}).
		Create(profile).Error; err != nil {
		return nil, err
	}
	return profile, nil
}
