package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Nath333/multi-tenant-admin-sub001/internal/api/dto"
	"github.com/Nath333/multi-tenant-admin-sub001/internal/domain"
	"github.com/Nath333/multi-tenant-admin-sub001/internal/service/pubsub"
	"github.com/Nath333/multi-tenant-admin-sub001/internal/store"
	"github.com/Nath333/multi-tenant-admin-sub001/pkg/logger"
)

type AuditLogService struct {
	store  *store.Store
	broker *pubsub.Broker
	logger *logger.Logger
}

func NewAuditLogService(st *store.Store, broker *pubsub.Broker, logger *logger.Logger) *AuditLogService {
	return &AuditLogService{store: st, broker: broker, logger: logger}
}

func (s *AuditLogService) Create(ctx context.Context, req dto.CreateAuditLogRequest) (*dto.AuditLogResponse, error) {
	ts, err := s.store.ForTenant(ctx)
	if err != nil {
		return nil, err
	}

	log := req.ToAuditLog()
	log.ID = uuid.New().String()
	if err := ts.Insert(ctx, log); err != nil {
		return nil, fmt.Errorf("failed to store audit log: %w", err)
	}

	resp := dto.FromAuditLog(log)
	s.broker.Publish(resp)
	return resp, nil
}

func (s *AuditLogService) BulkCreate(ctx context.Context, reqs []dto.CreateAuditLogRequest) error {
	ts, err := s.store.ForTenant(ctx)
	if err != nil {
		return err
	}

	logs := make([]domain.AuditLog, len(reqs))
	for i := range reqs {
		log := reqs[i].ToAuditLog()
		log.ID = uuid.New().String()
		log.TenantID = ts.TenantID()
		logs[i] = *log
	}

	if err := s.store.BulkInsert(ctx, &domain.AuditLog{}, logs); err != nil {
		return fmt.Errorf("failed to bulk store audit logs: %w", err)
	}

	for i := range logs {
		s.broker.Publish(dto.FromAuditLog(&logs[i]))
	}
	return nil
}

func (s *AuditLogService) GetByID(ctx context.Context, id string) (*dto.AuditLogResponse, error) {
	ts, err := s.store.ForTenant(ctx)
	if err != nil {
		return nil, err
	}

	var log domain.AuditLog
	if err := ts.GetByID(ctx, id, &log); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, gorm.ErrRecordNotFound
		}
		return nil, err
	}
	return dto.FromAuditLog(&log), nil
}

func (s *AuditLogService) List(ctx context.Context, filter *domain.AuditLogFilter) ([]dto.AuditLogResponse, error) {
	ts, err := s.store.ForTenant(ctx)
	if err != nil {
		return nil, err
	}

	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize < 1 {
		filter.PageSize = 10
	}
	filter.Limit = filter.PageSize
	filter.Offset = (filter.Page - 1) * filter.PageSize

	q, err := ts.Query(ctx, &domain.AuditLog{})
	if err != nil {
		return nil, err
	}
	if filter.UserID != "" {
		q = q.Where("user_id = ?", filter.UserID)
	}
	if filter.Action != "" {
		q = q.Where("action = ?", filter.Action)
	}
	if filter.ResourceType != "" {
		q = q.Where("resource_type = ?", filter.ResourceType)
	}
	if filter.ResourceID != "" {
		q = q.Where("resource_id = ?", filter.ResourceID)
	}
	if filter.Severity != "" {
		q = q.Where("severity = ?", filter.Severity)
	}
	if !filter.StartTime.IsZero() {
		q = q.Where("timestamp >= ?", filter.StartTime)
	}
	if !filter.EndTime.IsZero() {
		q = q.Where("timestamp <= ?", filter.EndTime)
	}
	q = q.Order("timestamp DESC").Limit(filter.Limit).Offset(filter.Offset)

	var logs []domain.AuditLog
	if err := q.Find(&logs).Error; err != nil {
		return nil, err
	}
	return dto.FromAuditLogs(logs), nil
}

// Stats aggregates counts by action and severity over the listed window.
func (s *AuditLogService) Stats(ctx context.Context, filter *domain.AuditLogFilter) (*domain.AuditLogStats, error) {
	filter.PageSize = 1000
	logs, err := s.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	stats := &domain.AuditLogStats{
		TotalLogs:      int64(len(logs)),
		ActionCounts:   make(map[domain.ActionType]int64),
		SeverityCounts: make(map[domain.SeverityLevel]int64),
		ResourceCounts: make(map[string]int64),
	}
	for _, log := range logs {
		stats.ActionCounts[domain.ActionType(log.Action)]++
		stats.SeverityCounts[domain.SeverityLevel(log.Severity)]++
		if log.ResourceType != "" {
			stats.ResourceCounts[log.ResourceType]++
		}
	}
	return stats, nil
}
