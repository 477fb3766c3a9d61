package domain

import (
	"slices"
	"time"
)

type WidgetType string

const (
	WidgetTypeChart   WidgetType = "chart"
	WidgetTypeCounter WidgetType = "counter"
	WidgetTypeTable   WidgetType = "table"
	WidgetTypeStatus  WidgetType = "status"
)

var ValidWidgetTypes = []WidgetType{
	WidgetTypeChart, WidgetTypeCounter, WidgetTypeTable, WidgetTypeStatus,
}

func IsValidWidgetType(t string) bool {
	return slices.Contains(ValidWidgetTypes, WidgetType(t))
}

// WidgetConfig is the structured widget configuration column. Fields are
// interpreted per widget type; irrelevant fields stay zero.
type WidgetConfig struct {
	Metric     string `json:"metric,omitempty"`
	ChartKind  string `json:"chart_kind,omitempty"`
	DeviceID   string `json:"device_id,omitempty"`
	RefreshSec int    `json:"refresh_sec,omitempty"`
	Limit      int    `json:"limit,omitempty"`
}

type Widget struct {
	ID          string       `gorm:"primaryKey;type:text" json:"id"`
	TenantID    string       `gorm:"type:text;not null;index" json:"tenant_id"`
	DashboardID string       `gorm:"type:text;not null;index" json:"dashboard_id"`
	WidgetType  WidgetType   `gorm:"type:text;not null;index" json:"widget_type"`
	Title       string       `gorm:"type:text;not null" json:"title"`
	Position    int          `gorm:"not null;default:0" json:"position"`
	Config      WidgetConfig `gorm:"serializer:json" json:"config"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
	Tenant      *Tenant      `gorm:"foreignKey:TenantID" json:"-"`
}

func (Widget) TableName() string {
	return "widgets"
}

func (w *Widget) GetTenantID() string   { return w.TenantID }
func (w *Widget) SetTenantID(id string) { w.TenantID = id }
