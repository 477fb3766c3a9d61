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
	"github.com/Nath333/multi-tenant-admin-sub001/internal/utils"
)

type DashboardService struct {
	store *store.Store
}

func NewDashboardService(st *store.Store) *DashboardService {
	return &DashboardService{store: st}
}

func (s *DashboardService) Create(ctx context.Context, req dto.CreateDashboardRequest) (*domain.Dashboard, error) {
	for _, w := range req.Widgets {
		if !domain.IsValidWidgetType(w.WidgetType) {
			return nil, fmt.Errorf("%q: %w", w.WidgetType, ErrInvalidWidgetType)
		}
	}

	ts, err := s.store.ForTenant(ctx)
	if err != nil {
		return nil, err
	}

	dashboard := &domain.Dashboard{
		ID:        uuid.New().String(),
		Name:      req.Name,
		OwnerID:   utils.GetUserIDFromContext(ctx),
		IsDefault: req.IsDefault,
	}
	if err := ts.Insert(ctx, dashboard); err != nil {
		return nil, err
	}

	// Widgets go in as one batch; the dashboard row is already durable on
	// its own, matching the store's per-collection atomicity.
	if len(req.Widgets) > 0 {
		widgets := make([]domain.Widget, len(req.Widgets))
		for i, w := range req.Widgets {
			widgets[i] = domain.Widget{
				ID:          uuid.New().String(),
				TenantID:    ts.TenantID(),
				DashboardID: dashboard.ID,
				WidgetType:  domain.WidgetType(w.WidgetType),
				Title:       w.Title,
				Position:    w.Position,
				Config:      w.Config,
			}
		}
		if err := s.store.BulkInsert(ctx, &domain.Widget{}, widgets); err != nil {
			return nil, err
		}
		dashboard.Widgets = widgets
	}

	return dashboard, nil
}

func (s *DashboardService) GetByID(ctx context.Context, id string) (*domain.Dashboard, error) {
	ts, err := s.store.ForTenant(ctx)
	if err != nil {
		return nil, err
	}

	var dashboard domain.Dashboard
	if err := ts.GetByID(ctx, id, &dashboard); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDashboardNotFound
		}
		return nil, err
	}

	var widgets []domain.Widget
	if err := ts.FindByIndex(ctx, &domain.Widget{}, "dashboard_id", id, &widgets); err != nil {
		return nil, err
	}
	dashboard.Widgets = widgets
	return &dashboard, nil
}

func (s *DashboardService) List(ctx context.Context) ([]domain.Dashboard, error) {
	ts, err := s.store.ForTenant(ctx)
	if err != nil {
		return nil, err
	}

	var dashboards []domain.Dashboard
	if err := ts.Find(ctx, &domain.Dashboard{}, &dashboards); err != nil {
		return nil, err
	}
	return dashboards, nil
}
