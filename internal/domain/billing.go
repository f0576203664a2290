package domain

import (
	"encoding/json"
	"time"
)

type BillingEventType string

const (
	BillingScoringRequest BillingEventType = "scoring_request"
	BillingAPICall        BillingEventType = "api_call"
	BillingBatchUpload    BillingEventType = "batch_upload"
	BillingExport         BillingEventType = "export"
	BillingPlanChange     BillingEventType = "plan_change"
	BillingPayment        BillingEventType = "payment"
	BillingRefund         BillingEventType = "refund"
)

// BillingEvent is an append-only ledger row. Rows are never updated or
// deleted.
type BillingEvent struct {
	ID             string           `gorm:"primaryKey;type:uuid" json:"id"`
	OrgID          string           `gorm:"type:uuid;not null;index" json:"org_id"`
	EventType      BillingEventType `gorm:"type:text;not null" json:"event_type"`
	Quantity       int64            `gorm:"not null;default:1" json:"quantity"`
	UnitPriceFCFA  int64            `gorm:"not null;default:0" json:"unit_price_fcfa"`
	TotalPriceFCFA int64            `gorm:"not null;default:0" json:"total_price_fcfa"`
	Currency       string           `gorm:"type:text;not null;default:'XAF'" json:"currency"`
	Description    *string          `gorm:"type:text" json:"description"`
	Metadata       json.RawMessage  `gorm:"type:jsonb" json:"metadata,omitempty"`
	CreatedAt      time.Time        `gorm:"type:timestamp with time zone;not null;default:CURRENT_TIMESTAMP" json:"created_at"`
}

func (BillingEvent) TableName() string {
	return "billing_events"
}

// UsageSummary aggregates an organization's billing events.
type UsageSummary struct {
	TotalEvents   int64            `json:"total_events"`
	TotalCostFCFA int64            `json:"total_cost_fcfa"`
	ByType        map[string]int64 `json:"by_type"`
}
