package dto

import (
	"encoding/json"
	"time"

	"github.com/capitalizeai/scoring-api/internal/domain"
)

// OrganizationResponse represents an organization in API responses
type OrganizationResponse struct {
	ID          string           `json:"id" example:"550e8400-e29b-41d4-a716-446655440000"`
	Name        string           `json:"name" example:"Microfinance du Littoral"`
	Slug        string           `json:"slug" example:"microfinance-du-littoral"`
	Type        string           `json:"type" example:"imf"`
	Plan        string           `json:"plan" example:"starter"`
	Country     string           `json:"country" example:"CM"`
	Address     *string          `json:"address"`
	Website     *string          `json:"website"`
	LogoURL     *string          `json:"logo_url"`
	Settings    json.RawMessage  `json:"settings,omitempty" swaggertype:"string"`
	Quotas      domain.OrgQuotas `json:"quotas"`
	Usage       domain.OrgUsage  `json:"usage_current"`
	Status      string           `json:"status" example:"trial"`
	TrialEndsAt *time.Time       `json:"trial_ends_at"`
	CreatedAt   time.Time        `json:"created_at" example:"2025-07-17T21:20:48Z"`
	UpdatedAt   time.Time        `json:"updated_at" example:"2025-07-17T21:20:48Z"`
}

// OrgMemberResponse represents one membership row, with the member's
// profile flattened in when it was preloaded
type OrgMemberResponse struct {
	ID       string    `json:"id" example:"550e8400-e29b-41d4-a716-446655440000"`
	UserID   string    `json:"user_id" example:"550e8400-e29b-41d4-a716-446655440000"`
	OrgID    string    `json:"org_id" example:"550e8400-e29b-41d4-a716-446655440000"`
	Role     string    `json:"role" example:"analyst"`
	Email    string    `json:"email,omitempty" example:"aissatou@mfl.cm"`
	FullName *string   `json:"full_name,omitempty"`
	JoinedAt time.Time `json:"joined_at" example:"2025-07-17T21:20:48Z"`
}

// ProfileResponse represents the caller's profile
type ProfileResponse struct {
	ID                string    `json:"id" example:"550e8400-e29b-41d4-a716-446655440000"`
	Email             string    `json:"email" example:"aissatou@mfl.cm"`
	FullName          *string   `json:"full_name"`
	AvatarURL         *string   `json:"avatar_url"`
	Phone             *string   `json:"phone"`
	CompanyName       *string   `json:"company_name"`
	JobTitle          *string   `json:"job_title"`
	Country           string    `json:"country" example:"CM"`
	PreferredLanguage string    `json:"preferred_language" example:"fr"`
	Onboarded         bool      `json:"onboarded" example:"true"`
	CreatedAt         time.Time `json:"created_at" example:"2025-07-17T21:20:48Z"`
	UpdatedAt         time.Time `json:"updated_at" example:"2025-07-17T21:20:48Z"`
}

// APIKeyResponse never carries the hash or the raw token
type APIKeyResponse struct {
	ID                 string     `json:"id" example:"550e8400-e29b-41d4-a716-446655440000"`
	OrgID              string     `json:"org_id" example:"550e8400-e29b-41d4-a716-446655440000"`
	Name               string     `json:"name" example:"Production key"`
	KeyPrefix          string     `json:"key_prefix" example:"cap_a1b2c3d4..."`
	Scopes             []string   `json:"scopes" example:"scoring:read,scoring:write"`
	RateLimitPerMinute int        `json:"rate_limit_per_minute" example:"60"`
	LastUsedAt         *time.Time `json:"last_used_at"`
	UsageCount         int64      `json:"usage_count" example:"0"`
	IsActive           bool       `json:"is_active" example:"true"`
	ExpiresAt          *time.Time `json:"expires_at"`
	CreatedAt          time.Time  `json:"created_at" example:"2025-07-17T21:20:48Z"`
}

// CreateAPIKeyResponse is the only response that ever contains the raw
// token. It cannot be retrieved again afterwards.
type CreateAPIKeyResponse struct {
	APIKey  APIKeyResponse `json:"api_key"`
	RawKey  string         `json:"raw_key" example:"cap_9f86d081884c7d659a2feaa0c55ad015"`
	Warning string         `json:"warning" example:"Conservez cette clé en lieu sûr. Elle ne sera plus affichée."`
}

// ScoreResponse represents a computed score
type ScoreResponse struct {
	ID                      string                 `json:"id" example:"550e8400-e29b-41d4-a716-446655440000"`
	RequestID               string                 `json:"request_id" example:"550e8400-e29b-41d4-a716-446655440000"`
	ScoreValue              int                    `json:"score_value" example:"712"`
	ProbabilityOfDefault    *float64               `json:"probability_of_default" example:"0.288"`
	RiskCategory            string                 `json:"risk_category" example:"low"`
	MaxRecommendedAmount    *int64                 `json:"max_recommended_amount" example:"3560000"`
	RecommendedTermMonths   *int                   `json:"recommended_term_months" example:"12"`
	RecommendedInterestRate *float64               `json:"recommended_interest_rate" example:"11.27"`
	Components              domain.ScoreComponents `json:"components"`
	ExplanationText         *string                `json:"explanation_text"`
	ModelVersion            string                 `json:"model_version" example:"v1.0-demo"`
	Confidence              float64                `json:"confidence" example:"0.85"`
	ValidUntil              time.Time              `json:"valid_until" example:"2025-08-16T21:20:48Z"`
	CreatedAt               time.Time              `json:"created_at" example:"2025-07-17T21:20:48Z"`
}

// ScoringRequestResponse represents a scoring request, with its score
// embedded once completed
type ScoringRequestResponse struct {
	ID               string         `json:"id" example:"550e8400-e29b-41d4-a716-446655440000"`
	OrgID            string         `json:"org_id" example:"550e8400-e29b-41d4-a716-446655440000"`
	RequestedBy      *string        `json:"requested_by"`
	SubjectName      *string        `json:"subject_name"`
	SubjectPhone     *string        `json:"subject_phone"`
	SubjectIDNumber  *string        `json:"subject_id_number"`
	DataSources      []string       `json:"data_sources" example:"momo,airtime"`
	Status           string         `json:"status" example:"completed"`
	Priority         string         `json:"priority" example:"normal"`
	ErrorMessage     *string        `json:"error_message"`
	ProcessingTimeMs *int64         `json:"processing_time_ms" example:"42"`
	CreatedAt        time.Time      `json:"created_at" example:"2025-07-17T21:20:48Z"`
	Score            *ScoreResponse `json:"score,omitempty"`
}

// ListScoringRequestsResponse is a paginated listing
type ListScoringRequestsResponse struct {
	Data    []ScoringRequestResponse `json:"data"`
	Total   int64                    `json:"total" example:"134"`
	Page    int                      `json:"page" example:"1"`
	PerPage int                      `json:"per_page" example:"20"`
}

// BulkCreateTransactionsResponse reports how many rows were ingested
type BulkCreateTransactionsResponse struct {
	Inserted int64 `json:"inserted" example:"250"`
}
