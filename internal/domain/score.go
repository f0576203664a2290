package domain

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// RiskCategory decreases monotonically with the score value.
type RiskCategory string

const (
	RiskVeryLow  RiskCategory = "very_low"
	RiskLow      RiskCategory = "low"
	RiskMedium   RiskCategory = "medium"
	RiskHigh     RiskCategory = "high"
	RiskVeryHigh RiskCategory = "very_high"
)

// RiskCategories enumerates all categories in display order. Analytics
// always reports every category, including zero-count ones.
var RiskCategories = []RiskCategory{RiskVeryLow, RiskLow, RiskMedium, RiskHigh, RiskVeryHigh}

// ScoreComponents holds the named sub-scores of the model, stored as jsonb.
type ScoreComponents map[string]float64

func (c ScoreComponents) Value() (driver.Value, error) {
	return json.Marshal(c)
}

func (c *ScoreComponents) Scan(value any) error {
	b, ok := value.([]byte)
	if !ok {
		return fmt.Errorf("unexpected type %T for ScoreComponents", value)
	}
	return json.Unmarshal(b, c)
}

// Score is the output of exactly one scoring request (1:1).
type Score struct {
	ID                       string          `gorm:"primaryKey;type:uuid" json:"id"`
	RequestID                string          `gorm:"type:uuid;not null;uniqueIndex" json:"request_id"`
	OrgID                    string          `gorm:"type:uuid;not null;index" json:"org_id"`
	ScoreValue               int             `gorm:"not null" json:"score_value"`
	ProbabilityOfDefault     *float64        `gorm:"type:numeric(5,4)" json:"probability_of_default"`
	RiskCategory             RiskCategory    `gorm:"type:text" json:"risk_category"`
	MaxRecommendedAmount     *int64          `gorm:"type:bigint" json:"max_recommended_amount"`
	RecommendedTermMonths    *int            `json:"recommended_term_months"`
	RecommendedInterestRate  *float64        `gorm:"type:numeric(5,2)" json:"recommended_interest_rate"`
	Components               ScoreComponents `gorm:"type:jsonb" json:"components"`
	ShapExplanation          json.RawMessage `gorm:"type:jsonb" json:"shap_explanation,omitempty"`
	ExplanationText          *string         `gorm:"type:text" json:"explanation_text"`
	ModelVersion             string          `gorm:"type:text;not null" json:"model_version"`
	Confidence               float64         `gorm:"type:numeric(3,2);not null" json:"confidence"`
	ValidUntil               time.Time       `gorm:"type:timestamp with time zone;not null" json:"valid_until"`
	CreatedAt                time.Time       `gorm:"type:timestamp with time zone;not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	Org                      *Organization   `gorm:"foreignKey:OrgID" json:"-"`
}

func (Score) TableName() string {
	return "scores"
}

// ScoreBucket is one bar of the fixed dashboard histogram.
type ScoreBucket struct {
	Range string `json:"range"`
	Count int64  `json:"count"`
}

// RiskSlice is one row of the dashboard risk breakdown. Percentage is
// rounded per category independently and the slices are not guaranteed
// to sum to 100.
type RiskSlice struct {
	Category   RiskCategory `json:"category"`
	Count      int64        `json:"count"`
	Percentage int          `json:"percentage"`
}

// ActivityItem is one entry of the dashboard recent-activity feed.
type ActivityItem struct {
	ID          string    `json:"id"`
	Type        string    `json:"type"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Timestamp   time.Time `json:"timestamp"`
}

// DashboardStats is the full analytics snapshot for one organization.
type DashboardStats struct {
	TotalScorings     int64          `json:"total_scorings"`
	AvgScore          int            `json:"avg_score"`
	ScoringsThisMonth int64          `json:"scorings_this_month"`
	ScoringsTrend     int            `json:"scorings_trend"`
	DefaultRate       int            `json:"default_rate"`
	TotalAmountScored int64          `json:"total_amount_scored"`
	ScoreDistribution []ScoreBucket  `json:"score_distribution"`
	RecentActivity    []ActivityItem `json:"recent_activity"`
	RiskBreakdown     []RiskSlice    `json:"risk_breakdown"`
}
