package store

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/Nath333/multi-tenant-admin-sub001/internal/utils"
)

// WithTenantScope runs fn against the raw handle after checking that a
// tenant is active. It does NOT filter by tenant_id itself: fn (or the
// sibling helpers) must apply the filter, and an fn that forgets will see
// cross-tenant rows. ForTenant is the safe accessor.
func (s *Store) WithTenantScope(ctx context.Context, fn func(tx *gorm.DB) error) error {
	if _, err := utils.GetTenantIDFromContext(ctx); err != nil {
		return ErrNoTenantContext
	}
	return fn(s.db.WithContext(ctx))
}

// ByTenant returns a query handle over a tenant-owned collection,
// pre-filtered to the active tenant.
func (s *Store) ByTenant(ctx context.Context, record Record) (*gorm.DB, error) {
	tenantID, err := utils.GetTenantIDFromContext(ctx)
	if err != nil {
		return nil, ErrNoTenantContext
	}
	col, err := s.collection(record)
	if err != nil {
		return nil, err
	}
	if !col.TenantScoped {
		return nil, fmt.Errorf("%s: %w", col.Name(), ErrNotTenantScoped)
	}
	return s.db.WithContext(ctx).Model(record).Where("tenant_id = ?", tenantID), nil
}

// TenantStore is a capability handle over the tenant-owned collections:
// the tenant id is bound at construction and every read and write goes
// through it, so unscoped access is not expressible via this type.
type TenantStore struct {
	store    *Store
	tenantID string
}

// ForTenant binds a handle to the tenant carried by ctx.
func (s *Store) ForTenant(ctx context.Context) (*TenantStore, error) {
	tenantID, err := utils.GetTenantIDFromContext(ctx)
	if err != nil {
		return nil, ErrNoTenantContext
	}
	return &TenantStore{store: s, tenantID: tenantID}, nil
}

func (t *TenantStore) TenantID() string {
	return t.tenantID
}

func (t *TenantStore) scoped(ctx context.Context, record Record) (*gorm.DB, error) {
	col, err := t.store.collection(record)
	if err != nil {
		return nil, err
	}
	if !col.TenantScoped {
		return nil, fmt.Errorf("%s: %w", col.Name(), ErrNotTenantScoped)
	}
	return t.store.db.WithContext(ctx).Model(record).Where("tenant_id = ?", t.tenantID), nil
}

// Insert stamps the bound tenant onto the record and stores it.
func (t *TenantStore) Insert(ctx context.Context, record TenantOwned) error {
	if _, err := t.scoped(ctx, record); err != nil {
		return err
	}
	record.SetTenantID(t.tenantID)
	return t.store.Insert(ctx, record)
}

// Save updates a record already owned by the bound tenant. Records of
// other tenants are rejected before touching storage.
func (t *TenantStore) Save(ctx context.Context, record TenantOwned) error {
	if _, err := t.scoped(ctx, record); err != nil {
		return err
	}
	if record.GetTenantID() != t.tenantID {
		return fmt.Errorf("%s: record belongs to tenant %q: %w",
			record.TableName(), record.GetTenantID(), ErrNoTenantContext)
	}
	return translateError(record.TableName(), t.store.db.WithContext(ctx).Save(record).Error)
}

// GetByID loads one record by id within the bound tenant.
func (t *TenantStore) GetByID(ctx context.Context, id string, dest TenantOwned) error {
	q, err := t.scoped(ctx, dest)
	if err != nil {
		return err
	}
	return translateError(dest.TableName(), q.First(dest, "id = ?", id).Error)
}

// Find loads all records of the bound tenant into dest.
func (t *TenantStore) Find(ctx context.Context, record Record, dest any) error {
	q, err := t.scoped(ctx, record)
	if err != nil {
		return err
	}
	return translateError(record.TableName(), q.Find(dest).Error)
}

// FindByIndex is QueryByIndex restricted to the bound tenant.
func (t *TenantStore) FindByIndex(ctx context.Context, record Record, field string, value any, dest any) error {
	col, err := t.store.collection(record)
	if err != nil {
		return err
	}
	if !col.indexed(field) {
		return fmt.Errorf("%s.%s: %w", col.Name(), field, ErrFieldNotIndexed)
	}
	q, err := t.scoped(ctx, record)
	if err != nil {
		return err
	}
	return translateError(col.Name(), q.Where(field+" = ?", value).Find(dest).Error)
}

// Count counts the bound tenant's records in a collection.
func (t *TenantStore) Count(ctx context.Context, record Record) (int64, error) {
	q, err := t.scoped(ctx, record)
	if err != nil {
		return 0, err
	}
	var n int64
	if err := q.Count(&n).Error; err != nil {
		return 0, translateError(record.TableName(), err)
	}
	return n, nil
}

// Query returns the pre-filtered handle for callers that need additional
// chained conditions (filters, ordering, pagination).
func (t *TenantStore) Query(ctx context.Context, record Record) (*gorm.DB, error) {
	return t.scoped(ctx, record)
}
