package dto

import (
	"encoding/json"
	"time"
)

type CreateOrganizationRequest struct {
	Name    string `json:"name" binding:"required" example:"Microfinance du Littoral"`
	Type    string `json:"type" example:"imf"`
	Country string `json:"country" example:"CM"`
	Address string `json:"address" example:"Douala, Akwa"`
	Website string `json:"website" example:"https://mfl.cm"`
}

type UpdateOrganizationRequest struct {
	Name     *string         `json:"name" example:"Microfinance du Littoral"`
	Address  *string         `json:"address" example:"Douala, Akwa"`
	Website  *string         `json:"website" example:"https://mfl.cm"`
	LogoURL  *string         `json:"logo_url" example:"https://cdn.example.com/logo.png"`
	Settings json.RawMessage `json:"settings" swaggertype:"string" example:"{\"locale\":\"fr\"}"`
}

type AddMemberRequest struct {
	UserID string `json:"user_id" binding:"required" example:"550e8400-e29b-41d4-a716-446655440000"`
	Role   string `json:"role" binding:"required" example:"analyst"`
}

type UpdateProfileRequest struct {
	FullName          *string `json:"full_name" example:"Aissatou Ngo"`
	Phone             *string `json:"phone" example:"+237670000000"`
	CompanyName       *string `json:"company_name" example:"MFL"`
	JobTitle          *string `json:"job_title" example:"Credit analyst"`
	AvatarURL         *string `json:"avatar_url" example:"https://cdn.example.com/avatar.png"`
	Country           *string `json:"country" example:"CM"`
	PreferredLanguage *string `json:"preferred_language" example:"fr"`
	Onboarded         *bool   `json:"onboarded" example:"true"`
}

type CreateAPIKeyRequest struct {
	Name      string     `json:"name" binding:"required" example:"Production key"`
	Scopes    []string   `json:"scopes" example:"scoring:read,scoring:write"`
	ExpiresAt *time.Time `json:"expires_at" example:"2026-12-31T23:59:59Z"`
}

type CreateScoringRequest struct {
	SubjectName     string          `json:"subject_name" example:"Jean Mbarga"`
	SubjectPhone    string          `json:"subject_phone" example:"+237690000000"`
	SubjectIDNumber string          `json:"subject_id_number" example:"CM-1234567"`
	InputData       json.RawMessage `json:"input_data" swaggertype:"string" example:"{\"monthly_income\":150000}"`
	Priority        string          `json:"priority" example:"normal"`
}

type TransactionRecord struct {
	SubjectPhone      string          `json:"subject_phone" binding:"required" example:"+237690000000"`
	TransactionType   string          `json:"transaction_type" example:"send"`
	Amount            int64           `json:"amount" binding:"required" example:"25000"`
	Currency          string          `json:"currency" example:"XAF"`
	CounterpartyPhone string          `json:"counterparty_phone" example:"+237671111111"`
	CounterpartyName  string          `json:"counterparty_name" example:"Marie T."`
	Channel           string          `json:"channel" example:"momo"`
	Reference         string          `json:"reference" example:"MP240817.1201.C12345"`
	Location          string          `json:"location" example:"Douala"`
	Timestamp         time.Time       `json:"timestamp" binding:"required" example:"2025-08-17T12:01:00Z"`
	Metadata          json.RawMessage `json:"metadata" swaggertype:"string" example:"{\"operator\":\"mtn\"}"`
}

type BulkCreateTransactionsRequest struct {
	Transactions []TransactionRecord `json:"transactions" binding:"required,min=1,dive"`
}

type ScheduleArchiveRequest struct {
	BeforeDate time.Time `json:"before_date" binding:"required" example:"2025-07-01T00:00:00Z"`
}
