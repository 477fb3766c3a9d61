package domain

import (
	"slices"
	"time"
)

type APIKeyStatus string

const (
	APIKeyStatusActive  APIKeyStatus = "active"
	APIKeyStatusRevoked APIKeyStatus = "revoked"
)

var ValidAPIKeyStatuses = []APIKeyStatus{APIKeyStatusActive, APIKeyStatusRevoked}

func IsValidAPIKeyStatus(status string) bool {
	return slices.Contains(ValidAPIKeyStatuses, APIKeyStatus(status))
}

type APIKey struct {
	ID         string       `gorm:"primaryKey;type:text" json:"id"`
	TenantID   string       `gorm:"type:text;not null;index" json:"tenant_id"`
	Name       string       `gorm:"type:text;not null" json:"name"`
	Prefix     string       `gorm:"type:text;not null;uniqueIndex" json:"prefix"`
	KeyHash    string       `gorm:"type:text;not null" json:"-"`
	RateLimit  int          `gorm:"not null;default:1000;check:rate_limit >= 0" json:"rate_limit"`
	Status     APIKeyStatus `gorm:"type:text;not null;default:'active';index" json:"status"`
	Scopes     []string     `gorm:"serializer:json" json:"scopes"`
	ExpiresAt  *time.Time   `json:"expires_at,omitempty"`
	LastUsedAt *time.Time   `json:"last_used_at,omitempty"`
	CreatedAt  time.Time    `json:"created_at"`
	UpdatedAt  time.Time    `json:"updated_at"`
	Tenant     *Tenant      `gorm:"foreignKey:TenantID" json:"-"`
}

func (APIKey) TableName() string {
	return "api_keys"
}

func (k *APIKey) GetTenantID() string   { return k.TenantID }
func (k *APIKey) SetTenantID(id string) { k.TenantID = id }
