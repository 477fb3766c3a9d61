package domain

import "time"

type Dashboard struct {
	ID        string    `gorm:"primaryKey;type:text" json:"id"`
	TenantID  string    `gorm:"type:text;not null;index" json:"tenant_id"`
	Name      string    `gorm:"type:text;not null" json:"name"`
	OwnerID   string    `gorm:"type:text;index" json:"owner_id"`
	IsDefault bool      `gorm:"not null;default:false" json:"is_default"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Tenant    *Tenant   `gorm:"foreignKey:TenantID" json:"-"`
	Widgets   []Widget  `gorm:"foreignKey:DashboardID" json:"widgets,omitempty"`
}

func (Dashboard) TableName() string {
	return "dashboards"
}

func (d *Dashboard) GetTenantID() string   { return d.TenantID }
func (d *Dashboard) SetTenantID(id string) { d.TenantID = id }
