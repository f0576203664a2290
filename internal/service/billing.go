package service

import (
	"context"
	"time"

	"github.com/capitalizeai/scoring-api/internal/domain"
	"github.com/capitalizeai/scoring-api/internal/repository"
)

type BillingService struct {
	repo repository.Repository
}

func NewBillingService(repo repository.Repository) *BillingService {
	return &BillingService{repo: repo}
}

// GetUsageSummary aggregates the organization's billing events since the
// given time. A zero time means all events.
func (s *BillingService) GetUsageSummary(ctx context.Context, orgID string, since time.Time) (*domain.UsageSummary, error) {
	return s.repo.BillingEvent().Summary(ctx, orgID, since)
}
