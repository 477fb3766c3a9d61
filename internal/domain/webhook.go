package domain

import "time"

type Webhook struct {
	ID             string    `gorm:"primaryKey;type:text" json:"id"`
	TenantID       string    `gorm:"type:text;not null;index" json:"tenant_id"`
	URL            string    `gorm:"type:text;not null" json:"url"`
	Events         []string  `gorm:"serializer:json" json:"events"`
	Secret         string    `gorm:"type:text" json:"-"`
	Active         bool      `gorm:"not null;default:true;index" json:"active"`
	LastStatusCode int       `gorm:"not null;default:0" json:"last_status_code"`
	LastDelivery   time.Time `json:"last_delivery"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
	Tenant         *Tenant   `gorm:"foreignKey:TenantID" json:"-"`
}

func (Webhook) TableName() string {
	return "webhooks"
}

func (w *Webhook) GetTenantID() string   { return w.TenantID }
func (w *Webhook) SetTenantID(id string) { w.TenantID = id }
