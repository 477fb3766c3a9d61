package dto

import (
	"time"

	"github.com/Nath333/multi-tenant-admin-sub001/internal/domain"
)

func (r CreateAuditLogRequest) ToAuditLog() *domain.AuditLog {
	severity := domain.SeverityLevel(r.Severity)
	if severity == "" {
		severity = domain.SeverityInfo
	}
	ts := r.Timestamp
	if ts.IsZero() {
		ts = time.Now().UTC()
	}
	return &domain.AuditLog{
		UserID:       r.UserID,
		Action:       domain.ActionType(r.Action),
		ResourceType: r.ResourceType,
		ResourceID:   r.ResourceID,
		Severity:     severity,
		Message:      r.Message,
		Metadata:     r.Metadata,
		Timestamp:    ts,
	}
}

func FromAuditLog(log *domain.AuditLog) *AuditLogResponse {
	return &AuditLogResponse{
		ID:           log.ID,
		TenantID:     log.TenantID,
		UserID:       log.UserID,
		Action:       string(log.Action),
		ResourceType: log.ResourceType,
		ResourceID:   log.ResourceID,
		Message:      log.Message,
		Severity:     string(log.Severity),
		Metadata:     log.Metadata,
		Timestamp:    log.Timestamp,
	}
}

func FromAuditLogs(logs []domain.AuditLog) []AuditLogResponse {
	out := make([]AuditLogResponse, len(logs))
	for i := range logs {
		out[i] = *FromAuditLog(&logs[i])
	}
	return out
}

func FromTenant(t *domain.Tenant) TenantResponse {
	return TenantResponse{
		ID:        t.ID,
		Name:      t.Name,
		Status:    string(t.Status),
		Plan:      string(t.Plan),
		Settings:  t.Settings,
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}
}

func FromTenants(tenants []domain.Tenant) []TenantResponse {
	out := make([]TenantResponse, len(tenants))
	for i := range tenants {
		out[i] = FromTenant(&tenants[i])
	}
	return out
}

func FromDevice(d *domain.Device) DeviceResponse {
	return DeviceResponse{
		ID:              d.ID,
		TenantID:        d.TenantID,
		Name:            d.Name,
		DeviceType:      d.DeviceType,
		Status:          string(d.Status),
		FirmwareVersion: d.FirmwareVersion,
		LastSeen:        d.LastSeen,
		Config:          d.Config,
		CreatedAt:       d.CreatedAt,
		UpdatedAt:       d.UpdatedAt,
	}
}

func FromDevices(devices []domain.Device) []DeviceResponse {
	out := make([]DeviceResponse, len(devices))
	for i := range devices {
		out[i] = FromDevice(&devices[i])
	}
	return out
}

func FromAPIKey(k *domain.APIKey) APIKeyResponse {
	return APIKeyResponse{
		ID:        k.ID,
		Name:      k.Name,
		Prefix:    k.Prefix,
		RateLimit: k.RateLimit,
		Status:    string(k.Status),
		Scopes:    k.Scopes,
		ExpiresAt: k.ExpiresAt,
		CreatedAt: k.CreatedAt,
	}
}

func FromAPIKeys(keys []domain.APIKey) []APIKeyResponse {
	out := make([]APIKeyResponse, len(keys))
	for i := range keys {
		out[i] = FromAPIKey(&keys[i])
	}
	return out
}
