package service

import (
	"context"
	"math"
	"time"

	"github.com/capitalizeai/scoring-api/internal/domain"
	"github.com/capitalizeai/scoring-api/internal/repository"
)

const recentActivityLimit = 10

// scoreBucketBounds are the five fixed histogram buckets, inclusive on
// both ends. Every score in [0,1000] falls into exactly one.
var scoreBucketBounds = []struct {
	label string
	lo    int
	hi    int
}{
	{"0-200", 0, 200},
	{"201-400", 201, 400},
	{"401-600", 401, 600},
	{"601-800", 601, 800},
	{"801-1000", 801, 1000},
}

type AnalyticsService struct {
	repo repository.Repository
}

func NewAnalyticsService(repo repository.Repository) *AnalyticsService {
	return &AnalyticsService{repo: repo}
}

// GetDashboardStats loads the organization's full score set and its most
// recent requests, then rolls them up in memory.
func (s *AnalyticsService) GetDashboardStats(ctx context.Context, orgID string) (*domain.DashboardStats, error) {
	scores, err := s.repo.Score().ListByOrg(ctx, orgID)
	if err != nil {
		return nil, err
	}

	recent, err := s.repo.ScoringRequest().ListRecent(ctx, orgID, recentActivityLimit)
	if err != nil {
		return nil, err
	}

	return ComputeDashboardStats(scores, recent, time.Now()), nil
}

// ComputeDashboardStats is a pure rollup over the inputs. The recent
// requests are expected newest-first; their order is preserved in the
// activity feed. Risk percentages are rounded per category independently
// and may not sum to 100.
func ComputeDashboardStats(scores []domain.Score, recent []domain.ScoringRequest, now time.Time) *domain.DashboardStats {
	stats := &domain.DashboardStats{
		TotalScorings:  int64(len(scores)),
		ScoringsTrend:  0,
		RecentActivity: []domain.ActivityItem{},
	}

	var scoreSum int64
	riskCounts := make(map[domain.RiskCategory]int64, len(domain.RiskCategories))
	bucketCounts := make([]int64, len(scoreBucketBounds))

	for _, score := range scores {
		scoreSum += int64(score.ScoreValue)

		if score.CreatedAt.Month() == now.Month() && score.CreatedAt.Year() == now.Year() {
			stats.ScoringsThisMonth++
		}

		for i, bucket := range scoreBucketBounds {
			if score.ScoreValue >= bucket.lo && score.ScoreValue <= bucket.hi {
				bucketCounts[i]++
				break
			}
		}

		riskCounts[score.RiskCategory]++

		if score.MaxRecommendedAmount != nil {
			stats.TotalAmountScored += *score.MaxRecommendedAmount
		}
	}

	total := stats.TotalScorings
	if total > 0 {
		stats.AvgScore = int(math.Round(float64(scoreSum) / float64(total)))
		defaulting := riskCounts[domain.RiskHigh] + riskCounts[domain.RiskVeryHigh]
		stats.DefaultRate = int(math.Round(100 * float64(defaulting) / float64(total)))
	}

	stats.ScoreDistribution = make([]domain.ScoreBucket, len(scoreBucketBounds))
	for i, bucket := range scoreBucketBounds {
		stats.ScoreDistribution[i] = domain.ScoreBucket{
			Range: bucket.label,
			Count: bucketCounts[i],
		}
	}

	stats.RiskBreakdown = make([]domain.RiskSlice, len(domain.RiskCategories))
	for i, category := range domain.RiskCategories {
		count := riskCounts[category]
		percentage := 0
		if total > 0 {
			percentage = int(math.Round(100 * float64(count) / float64(total)))
		}
		stats.RiskBreakdown[i] = domain.RiskSlice{
			Category:   category,
			Count:      count,
			Percentage: percentage,
		}
	}

	for _, req := range recent {
		title := "Scoring: Anonyme"
		if req.SubjectName != nil && *req.SubjectName != "" {
			title = "Scoring: " + *req.SubjectName
		}
		stats.RecentActivity = append(stats.RecentActivity, domain.ActivityItem{
			ID:          req.ID,
			Type:        "scoring",
			Title:       title,
			Description: "Statut: " + string(req.Status),
			Timestamp:   req.CreatedAt,
		})
	}

	return stats
}
