package domain

import (
	"slices"
	"time"
)

type TenantStatus string

const (
	TenantStatusActive    TenantStatus = "active"
	TenantStatusInactive  TenantStatus = "inactive"
	TenantStatusSuspended TenantStatus = "suspended"
)

type TenantPlan string

const (
	PlanFree       TenantPlan = "free"
	PlanPro        TenantPlan = "pro"
	PlanEnterprise TenantPlan = "enterprise"
	PlanCustom     TenantPlan = "custom"
)

var (
	ValidTenantStatuses = []TenantStatus{TenantStatusActive, TenantStatusInactive, TenantStatusSuspended}
	ValidTenantPlans    = []TenantPlan{PlanFree, PlanPro, PlanEnterprise, PlanCustom}
)

func IsValidTenantStatus(status string) bool {
	return slices.Contains(ValidTenantStatuses, TenantStatus(status))
}

func IsValidTenantPlan(plan string) bool {
	return slices.Contains(ValidTenantPlans, TenantPlan(plan))
}

// TenantSettings is the structured form of the per-tenant settings column.
// Unknown keys do not survive a round trip.
type TenantSettings struct {
	Timezone      string `json:"timezone"`
	Locale        string `json:"locale"`
	LogoURL       string `json:"logo_url,omitempty"`
	SupportEmail  string `json:"support_email,omitempty"`
	BrandColor    string `json:"brand_color,omitempty"`
	AllowSignups  bool   `json:"allow_signups"`
	RetentionDays int    `json:"retention_days"`
}

// Tenant is the unit of data partitioning. It is not itself tenant-scoped.
type Tenant struct {
	ID        string         `gorm:"primaryKey;type:text" json:"id"`
	Name      string         `gorm:"type:text;not null" json:"name"`
	Status    TenantStatus   `gorm:"type:text;not null;default:'active';index" json:"status"`
	Plan      TenantPlan     `gorm:"type:text;not null;default:'free';index" json:"plan"`
	Settings  TenantSettings `gorm:"serializer:json" json:"settings"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}

func (Tenant) TableName() string {
	return "tenants"
}
