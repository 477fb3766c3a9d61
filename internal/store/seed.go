package store

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Nath333/multi-tenant-admin-sub001/internal/domain"
)

// Seed populates the store with the baseline demo records: tenants first,
// then users referencing them, then the role-global permissions. It is a
// logged no-op when any tenant already exists. The guard keys on the
// tenant collection alone, so a failure after the tenant batch leaves a
// partial seed that a re-run will not repair; each batch is only
// individually atomic.
func (s *Store) Seed(ctx context.Context) error {
	n, err := s.Count(ctx, &domain.Tenant{})
	if err != nil {
		return fmt.Errorf("seed: %w", err)
	}
	if n > 0 {
		s.log.Info("seed skipped, store already populated", zap.Int64("tenants", n))
		return nil
	}

	tenants := SeedTenants()
	if err := s.BulkInsert(ctx, &domain.Tenant{}, tenants); err != nil {
		return fmt.Errorf("seed tenants: %w", err)
	}
	users := SeedUsers()
	if err := s.BulkInsert(ctx, &domain.User{}, users); err != nil {
		return fmt.Errorf("seed users: %w", err)
	}
	permissions := SeedPermissions()
	if err := s.BulkInsert(ctx, &domain.Permission{}, permissions); err != nil {
		return fmt.Errorf("seed permissions: %w", err)
	}

	s.log.Info("seeded baseline data",
		zap.Int("tenants", len(tenants)),
		zap.Int("users", len(users)),
		zap.Int("permissions", len(permissions)))
	return nil
}

// SeedTenants returns the fixed baseline tenants. A fresh slice every
// call; callers may mutate it freely.
func SeedTenants() []domain.Tenant {
	return []domain.Tenant{
		{
			ID:     "tenant-1",
			Name:   "Acme Industrial",
			Status: domain.TenantStatusActive,
			Plan:   domain.PlanEnterprise,
			Settings: domain.TenantSettings{
				Timezone:      "America/New_York",
				Locale:        "en-US",
				AllowSignups:  true,
				RetentionDays: 365,
			},
		},
		{
			ID:     "tenant-2",
			Name:   "Globex Logistics",
			Status: domain.TenantStatusActive,
			Plan:   domain.PlanPro,
			Settings: domain.TenantSettings{
				Timezone:      "Europe/Berlin",
				Locale:        "de-DE",
				AllowSignups:  false,
				RetentionDays: 90,
			},
		},
		{
			ID:     "tenant-3",
			Name:   "Initech Labs",
			Status: domain.TenantStatusActive,
			Plan:   domain.PlanFree,
			Settings: domain.TenantSettings{
				Timezone:      "UTC",
				Locale:        "en-GB",
				AllowSignups:  true,
				RetentionDays: 30,
			},
		},
	}
}

// SeedUsers returns the baseline users, one per seeded tenant.
func SeedUsers() []domain.User {
	lastLogin := time.Date(2024, 1, 15, 9, 30, 0, 0, time.UTC)
	return []domain.User{
		{
			ID:          "user-1",
			TenantID:    "tenant-1",
			Email:       "admin@acme.example",
			Name:        "Ada Admin",
			Role:        domain.RoleAdmin,
			Active:      true,
			LastLoginAt: &lastLogin,
		},
		{
			ID:       "user-2",
			TenantID: "tenant-2",
			Email:    "ops@globex.example",
			Name:     "Otto Operator",
			Role:     domain.RoleOperator,
			Active:   true,
		},
		{
			ID:       "user-3",
			TenantID: "tenant-3",
			Email:    "viewer@initech.example",
			Name:     "Vera Viewer",
			Role:     domain.RoleViewer,
			Active:   true,
		},
	}
}

// SeedPermissions returns the role-global permission set.
func SeedPermissions() []domain.Permission {
	return []domain.Permission{
		{ID: "perm-1", Name: "tenants:manage", Description: "Create and administer tenants", Roles: []domain.Role{domain.RoleAdmin}},
		{ID: "perm-2", Name: "users:manage", Description: "Invite and deactivate users", Roles: []domain.Role{domain.RoleAdmin}},
		{ID: "perm-3", Name: "devices:read", Description: "View device inventory and status", Roles: []domain.Role{domain.RoleAdmin, domain.RoleOperator, domain.RoleViewer}},
		{ID: "perm-4", Name: "devices:control", Description: "Send commands and update device config", Roles: []domain.Role{domain.RoleAdmin, domain.RoleOperator}},
		{ID: "perm-5", Name: "dashboards:edit", Description: "Create dashboards and arrange widgets", Roles: []domain.Role{domain.RoleAdmin, domain.RoleOperator}},
		{ID: "perm-6", Name: "audit:read", Description: "Browse and export the audit trail", Roles: []domain.Role{domain.RoleAdmin, domain.RoleViewer}},
		{ID: "perm-7", Name: "billing:view", Description: "View subscription and usage", Roles: []domain.Role{domain.RoleAdmin}},
	}
}
