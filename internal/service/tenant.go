package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Nath333/multi-tenant-admin-sub001/internal/api/dto"
	"github.com/Nath333/multi-tenant-admin-sub001/internal/domain"
	"github.com/Nath333/multi-tenant-admin-sub001/internal/store"
)

// TenantService manages the tenant collection. Tenants are the scoping
// unit itself, so this service reads the store unscoped by design.
type TenantService struct {
	store *store.Store
}

func NewTenantService(st *store.Store) *TenantService {
	return &TenantService{store: st}
}

func (s *TenantService) Create(ctx context.Context, req dto.CreateTenantRequest) (dto.TenantResponse, error) {
	plan := domain.TenantPlan(req.Plan)
	if req.Plan == "" {
		plan = domain.PlanFree
	} else if !domain.IsValidTenantPlan(req.Plan) {
		return dto.TenantResponse{}, fmt.Errorf("%q: %w", req.Plan, ErrInvalidPlan)
	}

	tenant := &domain.Tenant{
		ID:       uuid.New().String(),
		Name:     req.Name,
		Status:   domain.TenantStatusActive,
		Plan:     plan,
		Settings: req.Settings,
	}
	if err := s.store.Insert(ctx, tenant); err != nil {
		return dto.TenantResponse{}, err
	}
	return dto.FromTenant(tenant), nil
}

func (s *TenantService) GetByID(ctx context.Context, id string) (*domain.Tenant, error) {
	var tenants []domain.Tenant
	if err := s.store.QueryByIndex(ctx, &domain.Tenant{}, "id", id, &tenants); err != nil {
		return nil, err
	}
	if len(tenants) == 0 {
		return nil, ErrTenantNotFound
	}
	return &tenants[0], nil
}

func (s *TenantService) List(ctx context.Context) ([]dto.TenantResponse, error) {
	var tenants []domain.Tenant
	if err := s.store.Find(ctx, &domain.Tenant{}, &tenants); err != nil {
		return nil, err
	}
	return dto.FromTenants(tenants), nil
}

func (s *TenantService) ListByStatus(ctx context.Context, status string) ([]dto.TenantResponse, error) {
	if !domain.IsValidTenantStatus(status) {
		return nil, fmt.Errorf("%q: invalid tenant status", status)
	}
	var tenants []domain.Tenant
	if err := s.store.QueryByIndex(ctx, &domain.Tenant{}, "status", status, &tenants); err != nil {
		return nil, err
	}
	return dto.FromTenants(tenants), nil
}

// IsNotFound reports whether err means a missing record, from either the
// service sentinels or the storage engine.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrTenantNotFound) ||
		errors.Is(err, ErrUserNotFound) ||
		errors.Is(err, ErrDeviceNotFound) ||
		errors.Is(err, ErrDashboardNotFound) ||
		errors.Is(err, gorm.ErrRecordNotFound)
}
