package engine

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/capitalizeai/scoring-api/internal/domain"
)

func TestSimulatedEngine_Score(t *testing.T) {
	e := NewSimulatedEngine()
	name := "Test Subject"

	for i := 0; i < 200; i++ {
		result, err := e.Score(context.Background(), &Subject{Name: &name})
		require.NoError(t, err)

		assert.GreaterOrEqual(t, result.ScoreValue, 300)
		assert.LessOrEqual(t, result.ScoreValue, 899)

		assert.InDelta(t, 1-float64(result.ScoreValue)/1000, result.ProbabilityOfDefault, 0.0001)
		assert.Equal(t, RiskCategoryForScore(result.ScoreValue), result.RiskCategory)
		assert.Equal(t, int64(result.ScoreValue)*5000, result.MaxRecommendedAmount)

		switch {
		case result.ScoreValue >= 600:
			assert.Equal(t, 12, result.RecommendedTermMonths)
		case result.ScoreValue >= 400:
			assert.Equal(t, 6, result.RecommendedTermMonths)
		default:
			assert.Equal(t, 3, result.RecommendedTermMonths)
		}

		assert.GreaterOrEqual(t, result.RecommendedInterestRate, 5.0)
		assert.LessOrEqual(t, result.RecommendedInterestRate, 35.0)

		for _, component := range []string{"pagerank_score", "behavioral_score", "temporal_score", "stability_score", "network_score"} {
			value, ok := result.Components[component]
			require.True(t, ok, "missing component %s", component)
			assert.GreaterOrEqual(t, value, 0.0)
			assert.LessOrEqual(t, value, 1.0)
		}

		assert.Equal(t, "v1.0-demo", result.ModelVersion)
		assert.Equal(t, 0.85, result.Confidence)
		assert.True(t, strings.HasPrefix(result.ExplanationText, "Score de "))
		assert.Contains(t, result.ExplanationText, "FCFA")
	}
}

func TestRiskCategoryForScore(t *testing.T) {
	tests := []struct {
		score int
		want  domain.RiskCategory
	}{
		{1000, domain.RiskVeryLow},
		{800, domain.RiskVeryLow},
		{799, domain.RiskLow},
		{650, domain.RiskLow},
		{649, domain.RiskMedium},
		{450, domain.RiskMedium},
		{449, domain.RiskHigh},
		{300, domain.RiskHigh},
		{299, domain.RiskVeryHigh},
		{0, domain.RiskVeryHigh},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, RiskCategoryForScore(tt.score), "score %d", tt.score)
	}
}

func TestFormatAmount(t *testing.T) {
	tests := []struct {
		amount int64
		want   string
	}{
		{0, "0"},
		{500, "500"},
		{1500, "1 500"},
		{4495000, "4 495 000"},
		{1000000, "1 000 000"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, formatAmount(tt.amount), "amount %d", tt.amount)
	}
}
