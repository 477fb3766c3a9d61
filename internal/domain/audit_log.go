package domain

import (
	"time"
)

type SeverityLevel string

const (
	SeverityInfo     SeverityLevel = "INFO"
	SeverityWarning  SeverityLevel = "WARNING"
	SeverityError    SeverityLevel = "ERROR"
	SeverityCritical SeverityLevel = "CRITICAL"
)

type ActionType string

const (
	ActionCreate ActionType = "CREATE"
	ActionUpdate ActionType = "UPDATE"
	ActionDelete ActionType = "DELETE"
	ActionView   ActionType = "VIEW"
	ActionLogin  ActionType = "LOGIN"
)

// AuditMetadata is the structured request metadata column.
type AuditMetadata struct {
	IPAddress string `json:"ip_address,omitempty"`
	UserAgent string `json:"user_agent,omitempty"`
	SessionID string `json:"session_id,omitempty"`
}

type AuditLog struct {
	ID           string        `gorm:"primaryKey;type:text" json:"id"`
	TenantID     string        `gorm:"type:text;not null;index" json:"tenant_id"`
	UserID       string        `gorm:"type:text;index" json:"user_id"`
	Action       ActionType    `gorm:"type:text;not null;index" json:"action"`
	ResourceType string        `gorm:"type:text" json:"resource_type"`
	ResourceID   string        `gorm:"type:text" json:"resource_id"`
	Message      string        `gorm:"type:text" json:"message"`
	Severity     SeverityLevel `gorm:"type:text;not null;default:'INFO'" json:"severity"`
	Metadata     AuditMetadata `gorm:"serializer:json" json:"metadata"`
	Timestamp    time.Time     `gorm:"not null;index" json:"timestamp"`
	CreatedAt    time.Time     `json:"created_at"`
	UpdatedAt    time.Time     `json:"updated_at"`
	Tenant       *Tenant       `gorm:"foreignKey:TenantID" json:"-"`
	User         *User         `gorm:"foreignKey:UserID" json:"-"`
}

func (AuditLog) TableName() string {
	return "audit_logs"
}

func (l *AuditLog) GetTenantID() string   { return l.TenantID }
func (l *AuditLog) SetTenantID(id string) { l.TenantID = id }

type AuditLogStats struct {
	TotalLogs      int64                   `json:"total_logs"`
	ActionCounts   map[ActionType]int64    `json:"action_counts"`
	SeverityCounts map[SeverityLevel]int64 `json:"severity_counts"`
	ResourceCounts map[string]int64        `json:"resource_counts"`
}

type AuditLogFilter struct {
	UserID       string    `json:"user_id" form:"user_id"`
	Action       string    `json:"action" form:"action"`
	ResourceType string    `json:"resource_type" form:"resource_type"`
	ResourceID   string    `json:"resource_id" form:"resource_id"`
	Severity     string    `json:"severity" form:"severity"`
	StartTime    time.Time `json:"start_time" form:"start_time" time_format:"2006-01-02T15:04:05Z07:00"`
	EndTime      time.Time `json:"end_time" form:"end_time" time_format:"2006-01-02T15:04:05Z07:00"`
	Page         int       `json:"page" form:"page"`
	PageSize     int       `json:"page_size" form:"page_size"`
	Limit        int       `json:"limit"`
	Offset       int       `json:"offset"`
}
