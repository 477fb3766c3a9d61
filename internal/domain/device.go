package domain

import (
	"slices"
	"time"
)

type DeviceStatus string

const (
	DeviceStatusOnline      DeviceStatus = "online"
	DeviceStatusOffline     DeviceStatus = "offline"
	DeviceStatusError       DeviceStatus = "error"
	DeviceStatusMaintenance DeviceStatus = "maintenance"
)

var ValidDeviceStatuses = []DeviceStatus{
	DeviceStatusOnline, DeviceStatusOffline, DeviceStatusError, DeviceStatusMaintenance,
}

func IsValidDeviceStatus(status string) bool {
	return slices.Contains(ValidDeviceStatuses, DeviceStatus(status))
}

// DeviceConfig is the structured device configuration column.
type DeviceConfig struct {
	ReportingIntervalSec int     `json:"reporting_interval_sec"`
	FirmwareChannel      string  `json:"firmware_channel,omitempty"`
	AlertThreshold       float64 `json:"alert_threshold,omitempty"`
	AutoUpdate           bool    `json:"auto_update"`
}

type Device struct {
	ID              string       `gorm:"primaryKey;type:text" json:"id"`
	TenantID        string       `gorm:"type:text;not null;index" json:"tenant_id"`
	Name            string       `gorm:"type:text;not null" json:"name"`
	DeviceType      string       `gorm:"type:text;not null;index" json:"device_type"`
	Status          DeviceStatus `gorm:"type:text;not null;default:'offline';index" json:"status"`
	FirmwareVersion string       `gorm:"type:text" json:"firmware_version"`
	LastSeen        time.Time    `gorm:"index" json:"last_seen"`
	Config          DeviceConfig `gorm:"serializer:json" json:"config"`
	CreatedAt       time.Time    `json:"created_at"`
	UpdatedAt       time.Time    `json:"updated_at"`
	Tenant          *Tenant      `gorm:"foreignKey:TenantID" json:"-"`
}

func (Device) TableName() string {
	return "devices"
}

func (d *Device) GetTenantID() string   { return d.TenantID }
func (d *Device) SetTenantID(id string) { d.TenantID = id }

type DeviceFilter struct {
	DeviceType string `json:"device_type" form:"device_type"`
	Status     string `json:"status" form:"status"`
	Limit      int    `json:"limit" form:"limit"`
	Offset     int    `json:"offset" form:"offset"`
}
