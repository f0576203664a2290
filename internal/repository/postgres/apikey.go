package postgres

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/capitalizeai/scoring-api/internal/domain"
)

type APIKeyRepository struct {
	writerDB *gorm.DB
	readerDB *gorm.DB
}

func NewAPIKeyRepository(writerDB, readerDB *gorm.DB) *APIKeyRepository {
	return &APIKeyRepository{
		writerDB: writerDB,
		readerDB: readerDB,
	}
}

func (r *APIKeyRepository) Create(ctx context.Context, key *domain.APIKey) (*domain.APIKey, error) {
	if key.ID == "" {
		key.ID = uuid.New().String()
	}

	if err := r.writerDB.WithContext(ctx).Create(key).Error; err != nil {
		return nil, err
	}
	return key, nil
}

func (r *APIKeyRepository) ListByOrg(ctx context.Context, orgID string) ([]domain.APIKey, error) {
	var keys []domain.APIKey
	if err := r.readerDB.WithContext(ctx).
		Where("org_id = ?", orgID).
		Order("created_at DESC").
		Find(&keys).Error; err != nil {
		return nil, err
	}
	return keys, nil
}

func (r *APIKeyRepository) GetByHash(ctx context.Context, hash string) (*domain.APIKey, error) {
	var key domain.APIKey
	if err := r.readerDB.WithContext(ctx).First(&key, "key_hash = ?", hash).Error; err != nil {
		return nil, err
	}
	return &key, nil
}

// Deactivate soft-deletes the key. The row is retained for audit and the
// update is idempotent: deactivating an already-inactive key succeeds.
func (r *APIKeyRepository) Deactivate(ctx context.Context, keyID string) error {
	result := r.writerDB.WithContext(ctx).
		Model(&domain.APIKey{}).
		Where("id = ?", keyID).
		Update("is_active", false)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *APIKeyRepository) TouchUsage(ctx context.Context, keyID string, usedAt time.Time) error {
	return r.writerDB.WithContext(ctx).
		Model(&domain.APIKey{}).
		Where("id = ?", keyID).
		Updates(map[string]any{
			"usage_count":  gorm.Expr("usage_count + 1"),
			"last_used_at": usedAt,
		}).Error
}
