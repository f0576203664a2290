package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/capitalizeai/scoring-api/internal/domain"
	"github.com/capitalizeai/scoring-api/internal/mocks"
)

type AnalyticsServiceTestSuite struct {
	suite.Suite
	mockRepo    *mocks.Repository
	mockScore   *mocks.ScoreRepository
	mockScoring *mocks.ScoringRequestRepository
	service     *AnalyticsService
}

func (s *AnalyticsServiceTestSuite) SetupTest() {
	s.mockRepo = new(mocks.Repository)
	s.mockScore = new(mocks.ScoreRepository)
	s.mockScoring = new(mocks.ScoringRequestRepository)

	s.mockRepo.On("Score").Return(s.mockScore)
	s.mockRepo.On("ScoringRequest").Return(s.mockScoring)

	s.service = NewAnalyticsService(s.mockRepo)
}

func TestAnalyticsService(t *testing.T) {
	suite.Run(t, new(AnalyticsServiceTestSuite))
}

func (s *AnalyticsServiceTestSuite) TestGetDashboardStats_Success() {
	// Arrange
	ctx := context.Background()
	scores := []domain.Score{
		{ScoreValue: 700, RiskCategory: domain.RiskLow, CreatedAt: time.Now()},
	}
	s.mockScore.On("ListByOrg", ctx, "org1").Return(scores, nil)
	s.mockScoring.On("ListRecent", ctx, "org1", 10).Return([]domain.ScoringRequest{}, nil)

	// Act
	stats, err := s.service.GetDashboardStats(ctx, "org1")

	// Assert
	s.NoError(err)
	s.Equal(int64(1), stats.TotalScorings)
	s.Equal(700, stats.AvgScore)
	s.mockScore.AssertExpectations(s.T())
	s.mockScoring.AssertExpectations(s.T())
}

func TestComputeDashboardStats_Empty(t *testing.T) {
	now := time.Date(2025, 7, 15, 12, 0, 0, 0, time.UTC)
	stats := ComputeDashboardStats(nil, nil, now)

	if stats.TotalScorings != 0 || stats.AvgScore != 0 || stats.DefaultRate != 0 {
		t.Errorf("empty input produced non-zero totals: %+v", stats)
	}
	if stats.RecentActivity == nil || len(stats.RecentActivity) != 0 {
		t.Error("recent activity must be an empty slice, not nil")
	}
	if len(stats.ScoreDistribution) != 5 {
		t.Fatalf("distribution has %d buckets, want 5", len(stats.ScoreDistribution))
	}
	for _, bucket := range stats.ScoreDistribution {
		if bucket.Count != 0 {
			t.Errorf("bucket %s count = %d, want 0", bucket.Range, bucket.Count)
		}
	}
	if len(stats.RiskBreakdown) != 5 {
		t.Fatalf("breakdown has %d slices, want 5", len(stats.RiskBreakdown))
	}
	for _, slice := range stats.RiskBreakdown {
		if slice.Count != 0 || slice.Percentage != 0 {
			t.Errorf("slice %s not zeroed: %+v", slice.Category, slice)
		}
	}
}

func TestComputeDashboardStats_Distribution(t *testing.T) {
	now := time.Date(2025, 7, 15, 12, 0, 0, 0, time.UTC)

	// Bucket bounds are inclusive on both ends
	values := []int{0, 200, 201, 400, 500, 1000}
	scores := make([]domain.Score, 0, len(values))
	for _, v := range values {
		scores = append(scores, domain.Score{
			ScoreValue:   v,
			RiskCategory: domain.RiskMedium,
			CreatedAt:    now,
		})
	}

	stats := ComputeDashboardStats(scores, nil, now)

	wantCounts := map[string]int64{
		"0-200":    2,
		"201-400":  2,
		"401-600":  1,
		"601-800":  0,
		"801-1000": 1,
	}
	for _, bucket := range stats.ScoreDistribution {
		if bucket.Count != wantCounts[bucket.Range] {
			t.Errorf("bucket %s count = %d, want %d", bucket.Range, bucket.Count, wantCounts[bucket.Range])
		}
	}
}

func TestComputeDashboardStats_AvgScoreRounds(t *testing.T) {
	now := time.Date(2025, 7, 15, 12, 0, 0, 0, time.UTC)
	scores := []domain.Score{
		{ScoreValue: 100, RiskCategory: domain.RiskHigh, CreatedAt: now},
		{ScoreValue: 101, RiskCategory: domain.RiskHigh, CreatedAt: now},
	}

	stats := ComputeDashboardStats(scores, nil, now)

	// 201/2 = 100.5 rounds half away from zero
	if stats.AvgScore != 101 {
		t.Errorf("avg score = %d, want 101", stats.AvgScore)
	}
}

func TestComputeDashboardStats_DefaultRate(t *testing.T) {
	now := time.Date(2025, 7, 15, 12, 0, 0, 0, time.UTC)
	scores := []domain.Score{
		{ScoreValue: 850, RiskCategory: domain.RiskVeryLow, CreatedAt: now},
		{ScoreValue: 500, RiskCategory: domain.RiskMedium, CreatedAt: now},
		{ScoreValue: 350, RiskCategory: domain.RiskHigh, CreatedAt: now},
		{ScoreValue: 250, RiskCategory: domain.RiskVeryHigh, CreatedAt: now},
	}

	stats := ComputeDashboardStats(scores, nil, now)

	// high + very_high = 2 of 4
	if stats.DefaultRate != 50 {
		t.Errorf("default rate = %d, want 50", stats.DefaultRate)
	}
}

func TestComputeDashboardStats_PercentagesRoundIndependently(t *testing.T) {
	now := time.Date(2025, 7, 15, 12, 0, 0, 0, time.UTC)
	scores := []domain.Score{
		{ScoreValue: 850, RiskCategory: domain.RiskVeryLow, CreatedAt: now},
		{ScoreValue: 700, RiskCategory: domain.RiskLow, CreatedAt: now},
		{ScoreValue: 500, RiskCategory: domain.RiskMedium, CreatedAt: now},
	}

	stats := ComputeDashboardStats(scores, nil, now)

	// Each of the three categories is 1/3, rounded per category. The
	// slices intentionally sum to 99, not 100.
	sum := 0
	for _, slice := range stats.RiskBreakdown {
		sum += slice.Percentage
		if slice.Count == 1 && slice.Percentage != 33 {
			t.Errorf("slice %s percentage = %d, want 33", slice.Category, slice.Percentage)
		}
	}
	if sum != 99 {
		t.Errorf("percentage sum = %d, want 99", sum)
	}
}

func TestComputeDashboardStats_ScoringsThisMonth(t *testing.T) {
	now := time.Date(2025, 7, 15, 12, 0, 0, 0, time.UTC)
	scores := []domain.Score{
		// Same calendar month and year
		{ScoreValue: 700, RiskCategory: domain.RiskLow, CreatedAt: time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)},
		{ScoreValue: 700, RiskCategory: domain.RiskLow, CreatedAt: time.Date(2025, 7, 31, 23, 59, 59, 0, time.UTC)},
		// Previous month
		{ScoreValue: 700, RiskCategory: domain.RiskLow, CreatedAt: time.Date(2025, 6, 30, 23, 59, 59, 0, time.UTC)},
		// Same month, previous year
		{ScoreValue: 700, RiskCategory: domain.RiskLow, CreatedAt: time.Date(2024, 7, 15, 12, 0, 0, 0, time.UTC)},
	}

	stats := ComputeDashboardStats(scores, nil, now)

	if stats.ScoringsThisMonth != 2 {
		t.Errorf("scorings this month = %d, want 2", stats.ScoringsThisMonth)
	}
	if stats.ScoringsTrend != 0 {
		t.Errorf("trend = %d, want 0", stats.ScoringsTrend)
	}
}

func TestComputeDashboardStats_TotalAmountSkipsNil(t *testing.T) {
	now := time.Date(2025, 7, 15, 12, 0, 0, 0, time.UTC)
	amount := int64(3_500_000)
	scores := []domain.Score{
		{ScoreValue: 700, RiskCategory: domain.RiskLow, MaxRecommendedAmount: &amount, CreatedAt: now},
		{ScoreValue: 500, RiskCategory: domain.RiskMedium, MaxRecommendedAmount: nil, CreatedAt: now},
	}

	stats := ComputeDashboardStats(scores, nil, now)

	if stats.TotalAmountScored != amount {
		t.Errorf("total amount = %d, want %d", stats.TotalAmountScored, amount)
	}
}

func TestComputeDashboardStats_RecentActivity(t *testing.T) {
	now := time.Date(2025, 7, 15, 12, 0, 0, 0, time.UTC)
	name := "Aissatou Diallo"
	recent := []domain.ScoringRequest{
		{ID: "req1", SubjectName: &name, Status: domain.ScoringStatusCompleted, CreatedAt: now},
		{ID: "req2", SubjectName: nil, Status: domain.ScoringStatusFailed, CreatedAt: now.Add(-time.Hour)},
	}

	stats := ComputeDashboardStats(nil, recent, now)

	if len(stats.RecentActivity) != 2 {
		t.Fatalf("activity feed has %d items, want 2", len(stats.RecentActivity))
	}
	if stats.RecentActivity[0].Title != "Scoring: Aissatou Diallo" {
		t.Errorf("title = %q", stats.RecentActivity[0].Title)
	}
	if stats.RecentActivity[0].Description != "Statut: completed" {
		t.Errorf("description = %q", stats.RecentActivity[0].Description)
	}
	if stats.RecentActivity[1].Title != "Scoring: Anonyme" {
		t.Errorf("anonymous title = %q", stats.RecentActivity[1].Title)
	}
	if stats.RecentActivity[1].Description != "Statut: failed" {
		t.Errorf("description = %q", stats.RecentActivity[1].Description)
	}
}
