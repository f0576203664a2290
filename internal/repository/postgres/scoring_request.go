package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/capitalizeai/scoring-api/internal/domain"
)

type ScoringRequestRepository struct {
	writerDB *gorm.DB
	readerDB *gorm.DB
}

func NewScoringRequestRepository(writerDB, readerDB *gorm.DB) *ScoringRequestRepository {
	return &ScoringRequestRepository{
		writerDB: writerDB,
		readerDB: readerDB,
	}
}

func (r *ScoringRequestRepository) GetByID(ctx context.Context, orgID, id string) (*domain.ScoringRequest, error) {
	var req domain.ScoringRequest
	if err := r.readerDB.WithContext(ctx).
		Preload("Score").
		Where("org_id = ?", orgID).
		First(&req, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &req, nil
}

func (r *ScoringRequestRepository) List(ctx context.Context, filter domain.ScoringRequestFilter) ([]domain.ScoringRequest, int64, error) {
	if filter.OrgID == "" {
		return nil, 0, fmt.Errorf("org_id is required")
	}

	db := r.readerDB.WithContext(ctx).
		Model(&domain.ScoringRequest{}).
		Where("org_id = ?", filter.OrgID)

	if filter.Status != "" {
		db = db.Where("status = ?", filter.Status)
	}
	if filter.RequestedBy != "" {
		db = db.Where("requested_by = ?", filter.RequestedBy)
	}
	if !filter.StartTime.IsZero() {
		db = db.Where("created_at >= ?", filter.StartTime)
	}
	if !filter.EndTime.IsZero() {
		db = db.Where("created_at <= ?", filter.EndTime)
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if filter.Limit > 0 {
		db = db.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		db = db.Offset(filter.Offset)
	}

	var requests []domain.ScoringRequest
	if err := db.Preload("Score").Order("created_at DESC").Find(&requests).Error; err != nil {
		return nil, 0, err
	}

	return requests, total, nil
}

func (r *ScoringRequestRepository) ListRecent(ctx context.Context, orgID string, limit int) ([]domain.ScoringRequest, error) {
	var requests []domain.ScoringRequest
	if err := r.readerDB.WithContext(ctx).
		Where("org_id = ?", orgID).
		Order("created_at DESC").
		Limit(limit).
		Find(&requests).Error; err != nil {
		return nil, err
	}
	return requests, nil
}

// CreateAndScore persists the completed request, its score, and the
// billing event atomically. The score and billing rows are optional so
// the same path can record failed requests.
func (r *ScoringRequestRepository) CreateAndScore(ctx context.Context, req *domain.ScoringRequest, score *domain.Score, event *domain.BillingEvent) error {
	if req.ID == "" {
		req.ID = uuid.New().String()
	}

	return r.writerDB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(req).Error; err != nil {
			return err
		}

		if score != nil {
			if score.ID == "" {
				score.ID = uuid.New().String()
			}
			score.RequestID = req.ID
			score.OrgID = req.OrgID
			if err := tx.Create(score).Error; err != nil {
				return err
			}
		}

		if event != nil {
			if event.ID == "" {
				event.ID = uuid.New().String()
			}
			event.OrgID = req.OrgID
			if err := tx.Create(event).Error; err != nil {
				return err
			}
		}

		return nil
	})
}

func (r *ScoringRequestRepository) ExpirePendingBefore(ctx context.Context, orgID string, before time.Time) (int64, error) {
	result := r.writerDB.WithContext(ctx).
		Model(&domain.ScoringRequest{}).
		Where("org_id = ? AND status = ? AND created_at < ?", orgID, domain.ScoringStatusPending, before).
		Update("status", domain.ScoringStatusExpired)
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

func (r *ScoringRequestRepository) ListCompletedBefore(ctx context.Context, orgID string, before time.Time) ([]domain.ScoringRequest, error) {
	var requests []domain.ScoringRequest
	if err := r.readerDB.WithContext(ctx).
		Preload("Score").
		Where("org_id = ? AND status = ? AND created_at < ?", orgID, domain.ScoringStatusCompleted, before).
		Order("created_at ASC").
		Find(&requests).Error; err != nil {
		return nil, err
	}
	return requests, nil
}

func (r *ScoringRequestRepository) DeleteCompletedBefore(ctx context.Context, orgID string, before time.Time) (int64, error) {
	result := r.writerDB.WithContext(ctx).
		Where("org_id = ? AND status = ? AND created_at < ?", orgID, domain.ScoringStatusCompleted, before).
		Delete(&domain.ScoringRequest{})
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}
