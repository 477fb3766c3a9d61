package store

import (
	"github.com/Nath333/multi-tenant-admin-sub001/internal/domain"
)

// Record is any persisted entity. All domain models satisfy it through
// their gorm TableName method.
type Record interface {
	TableName() string
}

// TenantOwned is a record partitioned by tenant. Tenant and Permission
// deliberately do not implement it.
type TenantOwned interface {
	Record
	GetTenantID() string
	SetTenantID(string)
}

// Collection declares one stored collection: its model, whether rows are
// partitioned by tenant, and the fields equality queries may target.
// The index set mirrors the gorm index tags on the model; QueryByIndex
// rejects anything outside it.
type Collection struct {
	Model        Record
	TenantScoped bool
	Indexes      []string
}

func (c Collection) Name() string {
	return c.Model.TableName()
}

// Collections enumerates every collection the store manages. Order matters
// only for migration output, not semantics.
func Collections() []Collection {
	return []Collection{
		{Model: &domain.Tenant{}, Indexes: []string{"id", "status", "plan"}},
		{Model: &domain.User{}, TenantScoped: true, Indexes: []string{"id", "tenant_id", "email", "role"}},
		{Model: &domain.Device{}, TenantScoped: true, Indexes: []string{"id", "tenant_id", "device_type", "status", "last_seen"}},
		{Model: &domain.Dashboard{}, TenantScoped: true, Indexes: []string{"id", "tenant_id", "owner_id"}},
		{Model: &domain.Widget{}, TenantScoped: true, Indexes: []string{"id", "tenant_id", "dashboard_id", "widget_type"}},
		{Model: &domain.AuditLog{}, TenantScoped: true, Indexes: []string{"id", "tenant_id", "user_id", "action", "timestamp"}},
		{Model: &domain.Subscription{}, TenantScoped: true, Indexes: []string{"id", "tenant_id", "status"}},
		{Model: &domain.Usage{}, TenantScoped: true, Indexes: []string{"id", "tenant_id", "metric", "recorded_at"}},
		{Model: &domain.APIKey{}, TenantScoped: true, Indexes: []string{"id", "tenant_id", "prefix", "status"}},
		{Model: &domain.Webhook{}, TenantScoped: true, Indexes: []string{"id", "tenant_id", "active"}},
		{Model: &domain.Permission{}, Indexes: []string{"id", "name"}},
	}
}
