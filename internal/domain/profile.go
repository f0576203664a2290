package domain

import (
	"encoding/json"
	"time"
)

// Profile mirrors the identity record managed by the auth provider. The
// row ID is the authenticated user ID, not a generated one.
type Profile struct {
	ID                string          `gorm:"primaryKey;type:uuid" json:"id"`
	Email             string          `gorm:"type:text;not null;unique" json:"email"`
	FullName          *string         `gorm:"type:text" json:"full_name"`
	AvatarURL         *string         `gorm:"type:text" json:"avatar_url"`
	Phone             *string         `gorm:"type:text" json:"phone"`
	CompanyName       *string         `gorm:"type:text" json:"company_name"`
	JobTitle          *string         `gorm:"type:text" json:"job_title"`
	Country           string          `gorm:"type:text;not null;default:'CM'" json:"country"`
	PreferredLanguage string          `gorm:"type:text;not null;default:'fr'" json:"preferred_language"`
	Onboarded         bool            `gorm:"not null;default:false" json:"onboarded"`
	Metadata          json.RawMessage `gorm:"type:jsonb" json:"metadata,omitempty"`
	CreatedAt         time.Time       `gorm:"type:timestamp with time zone;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt         time.Time       `gorm:"type:timestamp with time zone;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (Profile) TableName() string {
	return "profiles"
}
