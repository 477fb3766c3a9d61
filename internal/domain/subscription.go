package domain

import (
	"slices"
	"time"
)

type SubscriptionStatus string

const (
	SubscriptionTrialing SubscriptionStatus = "trialing"
	SubscriptionActive   SubscriptionStatus = "active"
	SubscriptionPastDue  SubscriptionStatus = "past_due"
	SubscriptionCanceled SubscriptionStatus = "canceled"
)

var ValidSubscriptionStatuses = []SubscriptionStatus{
	SubscriptionTrialing, SubscriptionActive, SubscriptionPastDue, SubscriptionCanceled,
}

func IsValidSubscriptionStatus(status string) bool {
	return slices.Contains(ValidSubscriptionStatuses, SubscriptionStatus(status))
}

type Subscription struct {
	ID                 string             `gorm:"primaryKey;type:text" json:"id"`
	TenantID           string             `gorm:"type:text;not null;index" json:"tenant_id"`
	Plan               TenantPlan         `gorm:"type:text;not null" json:"plan"`
	Status             SubscriptionStatus `gorm:"type:text;not null;default:'trialing';index" json:"status"`
	Seats              int                `gorm:"not null;default:1;check:seats >= 0" json:"seats"`
	AmountCents        int64              `gorm:"not null;default:0;check:amount_cents >= 0" json:"amount_cents"`
	CurrentPeriodStart time.Time          `json:"current_period_start"`
	CurrentPeriodEnd   time.Time          `json:"current_period_end"`
	CreatedAt          time.Time          `json:"created_at"`
	UpdatedAt          time.Time          `json:"updated_at"`
	Tenant             *Tenant            `gorm:"foreignKey:TenantID" json:"-"`
}

func (Subscription) TableName() string {
	return "subscriptions"
}

func (s *Subscription) GetTenantID() string   { return s.TenantID }
func (s *Subscription) SetTenantID(id string) { s.TenantID = id }
