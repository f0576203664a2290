package postgres

import (
	"context"

	"gorm.io/gorm"

	"github.com/capitalizeai/scoring-api/internal/domain"
)

type ScoreRepository struct {
	writerDB *gorm.DB
	readerDB *gorm.DB
}

func NewScoreRepository(writerDB, readerDB *gorm.DB) *ScoreRepository {
	return &ScoreRepository{
		writerDB: writerDB,
		readerDB: readerDB,
	}
}

func (r *ScoreRepository) GetByRequestID(ctx context.Context, orgID, requestID string) (*domain.Score, error) {
	var score domain.Score
	if err := r.readerDB.WithContext(ctx).
		Where("org_id = ?", orgID).
		First(&score, "request_id = ?", requestID).Error; err != nil {
		return nil, err
	}
	return &score, nil
}

// ListByOrg returns the full score set for an organization. The
// dashboard aggregation recomputes from this full scan on every call.
func (r *ScoreRepository) ListByOrg(ctx context.Context, orgID string) ([]domain.Score, error) {
	var scores []domain.Score
	if err := r.readerDB.WithContext(ctx).
		Where("org_id = ?", orgID).
		Find(&scores).Error; err != nil {
		return nil, err
	}
	return scores, nil
}

func (r *ScoreRepository) ListPage(ctx context.Context, orgID string, limit, offset int) ([]domain.Score, int64, error) {
	db := r.readerDB.WithContext(ctx).
		Model(&domain.Score{}).
		Where("org_id = ?", orgID)

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var scores []domain.Score
	if err := db.Order("created_at DESC").Limit(limit).Offset(offset).Find(&scores).Error; err != nil {
		return nil, 0, err
	}

	return scores, total, nil
}
