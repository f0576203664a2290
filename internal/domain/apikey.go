package domain

import (
	"time"
)

// APIKey is an organization-scoped credential for programmatic access.
// Only the SHA-256 hash of the full token and a short display prefix are
// stored; the raw token is returned exactly once at creation time.
type APIKey struct {
	ID                 string        `gorm:"primaryKey;type:uuid;default:gen_random_uuid()" json:"id"`
	OrgID              string        `gorm:"type:uuid;not null;index" json:"org_id"`
	CreatedBy          *string       `gorm:"type:uuid" json:"created_by"`
	Name               string        `gorm:"type:text;not null" json:"name"`
	KeyPrefix          string        `gorm:"type:text;not null" json:"key_prefix"`
	KeyHash            string        `gorm:"type:text;not null;uniqueIndex" json:"-"`
	Scopes             []string      `gorm:"type:text[];not null;default:'{scoring:read,scoring:write}'" json:"scopes"`
	RateLimitPerMinute int           `gorm:"not null;default:60" json:"rate_limit_per_minute"`
	LastUsedAt         *time.Time    `gorm:"type:timestamp with time zone" json:"last_used_at"`
	UsageCount         int64         `gorm:"not null;default:0" json:"usage_count"`
	IsActive           bool          `gorm:"not null;default:true" json:"is_active"`
	ExpiresAt          *time.Time    `gorm:"type:timestamp with time zone" json:"expires_at"`
	CreatedAt          time.Time     `gorm:"type:timestamp with time zone;default:CURRENT_TIMESTAMP" json:"created_at"`
	Org                *Organization `gorm:"foreignKey:OrgID" json:"-"`
}

func (APIKey) TableName() string {
	return "api_keys"
}

// DefaultScopes are granted when a key is created without explicit scopes.
func DefaultScopes() []string {
	return []string{"scoring:read", "scoring:write"}
}

// HasScope reports whether the key grants the given capability.
func (k *APIKey) HasScope(scope string) bool {
	for _, s := range k.Scopes {
		if s == scope {
			return true
		}
	}
	return false
}

// Expired reports whether the key has an expiry in the past.
func (k *APIKey) Expired(now time.Time) bool {
	return k.ExpiresAt != nil && k.ExpiresAt.Before(now)
}
