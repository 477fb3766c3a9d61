package domain

import "time"

// Well-known usage metrics. The column is free text so new meters can be
// added without a migration, but these are the ones the dashboard charts.
const (
	MetricAPICalls      = "api_calls"
	MetricStorageBytes  = "storage_bytes"
	MetricActiveDevices = "active_devices"
)

type Usage struct {
	ID         string    `gorm:"primaryKey;type:text" json:"id"`
	TenantID   string    `gorm:"type:text;not null;index" json:"tenant_id"`
	Metric     string    `gorm:"type:text;not null;index" json:"metric"`
	Value      float64   `gorm:"not null;default:0;check:value >= 0" json:"value"`
	RecordedAt time.Time `gorm:"not null;index" json:"recorded_at"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
	Tenant     *Tenant   `gorm:"foreignKey:TenantID" json:"-"`
}

func (Usage) TableName() string {
	return "usage_records"
}

func (u *Usage) GetTenantID() string   { return u.TenantID }
func (u *Usage) SetTenantID(id string) { u.TenantID = id }

// UsageSummary is an aggregation result, not a stored collection.
type UsageSummary struct {
	Metric string  `json:"metric"`
	Total  float64 `json:"total"`
}
