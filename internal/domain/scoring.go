package domain

import (
	"encoding/json"
	"time"
)

type ScoringStatus string

const (
	ScoringStatusPending    ScoringStatus = "pending"
	ScoringStatusProcessing ScoringStatus = "processing"
	ScoringStatusCompleted  ScoringStatus = "completed"
	ScoringStatusFailed     ScoringStatus = "failed"
	ScoringStatusExpired    ScoringStatus = "expired"
)

type ScoringPriority string

const (
	PriorityLow    ScoringPriority = "low"
	PriorityNormal ScoringPriority = "normal"
	PriorityHigh   ScoringPriority = "high"
	PriorityUrgent ScoringPriority = "urgent"
)

// ScoringRequest is one request to evaluate a subject. At least one of
// SubjectName or SubjectPhone must be set.
type ScoringRequest struct {
	ID               string          `gorm:"primaryKey;type:uuid" json:"id"`
	OrgID            string          `gorm:"type:uuid;not null;index" json:"org_id"`
	RequestedBy      *string         `gorm:"type:uuid" json:"requested_by"`
	SubjectName      *string         `gorm:"type:text" json:"subject_name"`
	SubjectPhone     *string         `gorm:"type:text" json:"subject_phone"`
	SubjectIDNumber  *string         `gorm:"type:text" json:"subject_id_number"`
	InputData        json.RawMessage `gorm:"type:jsonb" json:"input_data,omitempty"`
	DataSources      []string        `gorm:"type:text[];not null;default:'{}'" json:"data_sources"`
	Status           ScoringStatus   `gorm:"type:text;not null;default:'pending'" json:"status"`
	Priority         ScoringPriority `gorm:"type:text;not null;default:'normal'" json:"priority"`
	ErrorMessage     *string         `gorm:"type:text" json:"error_message"`
	ProcessingTimeMs *int64          `gorm:"type:bigint" json:"processing_time_ms"`
	APIKeyUsed       *string         `gorm:"type:uuid" json:"api_key_used"`
	Metadata         json.RawMessage `gorm:"type:jsonb" json:"metadata,omitempty"`
	CreatedAt        time.Time       `gorm:"type:timestamp with time zone;not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt        time.Time       `gorm:"type:timestamp with time zone;default:CURRENT_TIMESTAMP" json:"updated_at"`
	Score            *Score          `gorm:"foreignKey:RequestID" json:"score,omitempty"`
	Org              *Organization   `gorm:"foreignKey:OrgID" json:"-"`
}

func (ScoringRequest) TableName() string {
	return "scoring_requests"
}

type ScoringRequestFilter struct {
	OrgID        string        `json:"org_id"`
	RequestedBy  string        `json:"requested_by"`
	SubjectName  string        `json:"subject_name"`
	SubjectPhone string        `json:"subject_phone"`
	Status       ScoringStatus `json:"status"`
	StartTime    time.Time     `json:"start_time"`
	EndTime      time.Time     `json:"end_time"`
	Page         int           `json:"page"`
	PageSize     int           `json:"page_size"`
	Limit        int           `json:"limit"`
	Offset       int           `json:"offset"`
}
