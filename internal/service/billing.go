package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/Nath333/multi-tenant-admin-sub001/internal/api/dto"
	"github.com/Nath333/multi-tenant-admin-sub001/internal/domain"
	"github.com/Nath333/multi-tenant-admin-sub001/internal/store"
)

type BillingService struct {
	store *store.Store
}

func NewBillingService(st *store.Store) *BillingService {
	return &BillingService{store: st}
}

// Overview returns the active tenant's subscription plus total usage per
// metric since the start of the current period.
func (s *BillingService) Overview(ctx context.Context) (dto.BillingResponse, error) {
	ts, err := s.store.ForTenant(ctx)
	if err != nil {
		return dto.BillingResponse{}, err
	}

	var subscriptions []domain.Subscription
	if err := ts.FindByIndex(ctx, &domain.Subscription{}, "status", string(domain.SubscriptionActive), &subscriptions); err != nil {
		return dto.BillingResponse{}, err
	}

	resp := dto.BillingResponse{Usage: []domain.UsageSummary{}}
	since := time.Time{}
	if len(subscriptions) > 0 {
		resp.Subscription = &subscriptions[0]
		since = subscriptions[0].CurrentPeriodStart
	}

	q, err := ts.Query(ctx, &domain.Usage{})
	if err != nil {
		return dto.BillingResponse{}, err
	}
	if !since.IsZero() {
		q = q.Where("recorded_at >= ?", since)
	}
	if err := q.Select("metric, SUM(value) AS total").
		Group("metric").
		Order("metric").
		Scan(&resp.Usage).Error; err != nil {
		return dto.BillingResponse{}, err
	}

	return resp, nil
}

// RecordUsage appends one usage sample for the active tenant.
func (s *BillingService) RecordUsage(ctx context.Context, metric string, value float64) error {
	ts, err := s.store.ForTenant(ctx)
	if err != nil {
		return err
	}
	return ts.Insert(ctx, &domain.Usage{
		ID:         uuid.New().String(),
		Metric:     metric,
		Value:      value,
		RecordedAt: time.Now().UTC(),
	})
}
