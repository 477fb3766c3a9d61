package dto

import (
	"time"

	"github.com/Nath333/multi-tenant-admin-sub001/internal/domain"
)

type TokenResponse struct {
	Token     string `json:"token"`
	TenantID  string `json:"tenant_id"`
	Role      string `json:"role"`
	ExpiresIn int    `json:"expires_in_hours"`
}

type TenantResponse struct {
	ID        string                `json:"id"`
	Name      string                `json:"name"`
	Status    string                `json:"status"`
	Plan      string                `json:"plan"`
	Settings  domain.TenantSettings `json:"settings"`
	CreatedAt time.Time             `json:"created_at"`
	UpdatedAt time.Time             `json:"updated_at"`
}

type DeviceResponse struct {
	ID              string              `json:"id"`
	TenantID        string              `json:"tenant_id"`
	Name            string              `json:"name"`
	DeviceType      string              `json:"device_type"`
	Status          string              `json:"status"`
	FirmwareVersion string              `json:"firmware_version"`
	LastSeen        time.Time           `json:"last_seen"`
	Config          domain.DeviceConfig `json:"config"`
	CreatedAt       time.Time           `json:"created_at"`
	UpdatedAt       time.Time           `json:"updated_at"`
}

type AuditLogResponse struct {
	ID           string               `json:"id"`
	TenantID     string               `json:"tenant_id"`
	UserID       string               `json:"user_id"`
	Action       string               `json:"action"`
	ResourceType string               `json:"resource_type"`
	ResourceID   string               `json:"resource_id"`
	Message      string               `json:"message"`
	Severity     string               `json:"severity"`
	Metadata     domain.AuditMetadata `json:"metadata"`
	Timestamp    time.Time            `json:"timestamp"`
}

type APIKeyResponse struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Prefix    string     `json:"prefix"`
	RateLimit int        `json:"rate_limit"`
	Status    string     `json:"status"`
	Scopes    []string   `json:"scopes"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
	CreatedAt time.Time  `json:"created_at"`

	// Key is the plaintext secret, present only in the create response.
	Key string `json:"key,omitempty"`
}

type BillingResponse struct {
	Subscription *domain.Subscription  `json:"subscription,omitempty"`
	Usage        []domain.UsageSummary `json:"usage"`
}
