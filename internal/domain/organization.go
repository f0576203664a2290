package domain

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

type OrgType string

const (
	OrgTypeIMF        OrgType = "imf"
	OrgTypeBank       OrgType = "bank"
	OrgTypeFintech    OrgType = "fintech"
	OrgTypeTelecom    OrgType = "telecom"
	OrgTypeGovernment OrgType = "government"
	OrgTypeOther      OrgType = "other"
)

type OrgPlan string

const (
	OrgPlanStarter    OrgPlan = "starter"
	OrgPlanPro        OrgPlan = "pro"
	OrgPlanEnterprise OrgPlan = "enterprise"
	OrgPlanCustom     OrgPlan = "custom"
)

type OrgStatus string

const (
	OrgStatusActive    OrgStatus = "active"
	OrgStatusSuspended OrgStatus = "suspended"
	OrgStatusTrial     OrgStatus = "trial"
	OrgStatusCancelled OrgStatus = "cancelled"
)

// OrgQuotas holds the per-plan limits of an organization, stored as jsonb.
type OrgQuotas struct {
	MaxScoringsPerMonth int `json:"max_scorings_per_month"`
	MaxAPIKeys          int `json:"max_api_keys"`
	MaxMembers          int `json:"max_members"`
}

func (q OrgQuotas) Value() (driver.Value, error) {
	return json.Marshal(q)
}

func (q *OrgQuotas) Scan(value any) error {
	b, ok := value.([]byte)
	if !ok {
		return fmt.Errorf("unexpected type %T for OrgQuotas", value)
	}
	return json.Unmarshal(b, q)
}

// OrgUsage holds the current-month usage counters, stored as jsonb.
type OrgUsage struct {
	ScoringsThisMonth int `json:"scorings_this_month"`
	APICallsThisMonth int `json:"api_calls_this_month"`
}

func (u OrgUsage) Value() (driver.Value, error) {
	return json.Marshal(u)
}

func (u *OrgUsage) Scan(value any) error {
	b, ok := value.([]byte)
	if !ok {
		return fmt.Errorf("unexpected type %T for OrgUsage", value)
	}
	return json.Unmarshal(b, u)
}

type Organization struct {
	ID           string          `gorm:"primaryKey;type:uuid;default:gen_random_uuid()" json:"id"`
	Name         string          `gorm:"type:text;not null" json:"name"`
	Slug         string          `gorm:"type:text;not null;uniqueIndex" json:"slug"`
	Type         OrgType         `gorm:"type:text;not null;default:'imf'" json:"type"`
	Plan         OrgPlan         `gorm:"type:text;not null;default:'starter'" json:"plan"`
	Country      string          `gorm:"type:text;not null;default:'CM'" json:"country"`
	Address      *string         `gorm:"type:text" json:"address"`
	Website      *string         `gorm:"type:text" json:"website"`
	LogoURL      *string         `gorm:"type:text" json:"logo_url"`
	Settings     json.RawMessage `gorm:"type:jsonb" json:"settings,omitempty"`
	Quotas       OrgQuotas       `gorm:"type:jsonb" json:"quotas"`
	UsageCurrent OrgUsage        `gorm:"type:jsonb" json:"usage_current"`
	Status       OrgStatus       `gorm:"type:text;not null;default:'trial'" json:"status"`
	TrialEndsAt  *time.Time      `gorm:"type:timestamp with time zone" json:"trial_ends_at"`
	CreatedAt    time.Time       `gorm:"type:timestamp with time zone;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt    time.Time       `gorm:"type:timestamp with time zone;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (Organization) TableName() string {
	return "organizations"
}

// DefaultQuotas are applied to every newly created organization until a
// plan change overrides them.
func DefaultQuotas() OrgQuotas {
	return OrgQuotas{
		MaxScoringsPerMonth: 100,
		MaxAPIKeys:          5,
		MaxMembers:          10,
	}
}

type OrgMember struct {
	ID        string        `gorm:"primaryKey;type:uuid;default:gen_random_uuid()" json:"id"`
	UserID    string        `gorm:"type:uuid;not null;index" json:"user_id"`
	OrgID     string        `gorm:"type:uuid;not null;index" json:"org_id"`
	Role      MemberRole    `gorm:"type:text;not null;default:'member'" json:"role"`
	InvitedBy *string       `gorm:"type:uuid" json:"invited_by"`
	JoinedAt  time.Time     `gorm:"type:timestamp with time zone;default:CURRENT_TIMESTAMP" json:"joined_at"`
	Profile   *Profile      `gorm:"foreignKey:UserID" json:"profile,omitempty"`
	Org       *Organization `gorm:"foreignKey:OrgID" json:"organization,omitempty"`
}

func (OrgMember) TableName() string {
	return "org_members"
}
