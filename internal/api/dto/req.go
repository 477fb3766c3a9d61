package dto

import (
	"time"

	"github.com/Nath333/multi-tenant-admin-sub001/internal/domain"
)

type TokenRequest struct {
	UserID string `json:"user_id" binding:"required" example:"user-1"`
}

type CreateTenantRequest struct {
	Name     string                `json:"name" binding:"required" example:"Acme Industrial"`
	Plan     string                `json:"plan" example:"pro"`
	Settings domain.TenantSettings `json:"settings"`
}

type CreateDeviceRequest struct {
	Name            string              `json:"name" binding:"required" example:"gateway-eu-1"`
	DeviceType      string              `json:"device_type" binding:"required" example:"gateway"`
	FirmwareVersion string              `json:"firmware_version" example:"1.4.2"`
	Config          domain.DeviceConfig `json:"config"`
}

type DeviceHeartbeatRequest struct {
	Status          string `json:"status" binding:"required" example:"online"`
	FirmwareVersion string `json:"firmware_version" example:"1.4.3"`
}

type CreateAuditLogRequest struct {
	UserID       string               `json:"user_id" example:"user-1"`
	Action       string               `json:"action" binding:"required" example:"CREATE"`
	ResourceType string               `json:"resource_type" example:"device"`
	ResourceID   string               `json:"resource_id" example:"device-42"`
	Severity     string               `json:"severity" example:"INFO"`
	Message      string               `json:"message" binding:"required" example:"Device registered"`
	Metadata     domain.AuditMetadata `json:"metadata"`
	Timestamp    time.Time            `json:"timestamp" example:"2025-07-17T21:20:48Z"`
}

type CreateWidgetRequest struct {
	WidgetType string              `json:"widget_type" binding:"required" example:"chart"`
	Title      string              `json:"title" binding:"required" example:"API calls"`
	Position   int                 `json:"position"`
	Config     domain.WidgetConfig `json:"config"`
}

type CreateDashboardRequest struct {
	Name      string                `json:"name" binding:"required" example:"Fleet overview"`
	IsDefault bool                  `json:"is_default"`
	Widgets   []CreateWidgetRequest `json:"widgets"`
}

type RecordUsageRequest struct {
	Metric string  `json:"metric" binding:"required" example:"api_calls"`
	Value  float64 `json:"value" binding:"gte=0" example:"120"`
}

type CreateAPIKeyRequest struct {
	Name      string     `json:"name" binding:"required" example:"ci-read-only"`
	RateLimit int        `json:"rate_limit" binding:"omitempty,gte=0" example:"1000"`
	Scopes    []string   `json:"scopes" example:"devices:read"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
}

type CreateWebhookRequest struct {
	URL    string   `json:"url" binding:"required,url" example:"https://hooks.example.com/ingest"`
	Events []string `json:"events" binding:"required,min=1" example:"device.offline"`
	Secret string   `json:"secret"`
}
