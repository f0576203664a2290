package postgres

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/capitalizeai/scoring-api/internal/domain"
)

type BillingEventRepository struct {
	writerDB *gorm.DB
	readerDB *gorm.DB
}

func NewBillingEventRepository(writerDB, readerDB *gorm.DB) *BillingEventRepository {
	return &BillingEventRepository{
		writerDB: writerDB,
		readerDB: readerDB,
	}
}

func (r *BillingEventRepository) Create(ctx context.Context, event *domain.BillingEvent) (*domain.BillingEvent, error) {
	if event.ID == "" {
		event.ID = uuid.New().String()
	}

	if err := r.writerDB.WithContext(ctx).Create(event).Error; err != nil {
		return nil, err
	}
	return event, nil
}

func (r *BillingEventRepository) Summary(ctx context.Context, orgID string, since time.Time) (*domain.UsageSummary, error) {
	db := r.readerDB.WithContext(ctx).
		Model(&domain.BillingEvent{}).
		Where("org_id = ?", orgID)
	if !since.IsZero() {
		db = db.Where("created_at >= ?", since)
	}

	type row struct {
		EventType string
		Events    int64
		Quantity  int64
		Total     int64
	}
	var rows []row
	if err := db.
		Select("event_type, COUNT(*) AS events, SUM(quantity) AS quantity, SUM(total_price_fcfa) AS total").
		Group("event_type").
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	summary := &domain.UsageSummary{
		ByType: make(map[string]int64, len(rows)),
	}
	for _, r := range rows {
		summary.TotalEvents += r.Events
		summary.TotalCostFCFA += r.Total
		summary.ByType[r.EventType] = r.Quantity
	}

	return summary, nil
}
