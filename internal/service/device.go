package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Nath333/multi-tenant-admin-sub001/internal/api/dto"
	"github.com/Nath333/multi-tenant-admin-sub001/internal/domain"
	"github.com/Nath333/multi-tenant-admin-sub001/internal/store"
	"github.com/Nath333/multi-tenant-admin-sub001/internal/utils"
)

type DeviceService struct {
	store    *store.Store
	auditLog *AuditLogService
}

func NewDeviceService(st *store.Store, auditLog *AuditLogService) *DeviceService {
	return &DeviceService{store: st, auditLog: auditLog}
}

func (s *DeviceService) Register(ctx context.Context, req dto.CreateDeviceRequest) (dto.DeviceResponse, error) {
	ts, err := s.store.ForTenant(ctx)
	if err != nil {
		return dto.DeviceResponse{}, err
	}

	device := &domain.Device{
		ID:              uuid.New().String(),
		Name:            req.Name,
		DeviceType:      req.DeviceType,
		Status:          domain.DeviceStatusOffline,
		FirmwareVersion: req.FirmwareVersion,
		LastSeen:        time.Now().UTC(),
		Config:          req.Config,
	}
	if err := ts.Insert(ctx, device); err != nil {
		return dto.DeviceResponse{}, err
	}

	s.auditLog.record(ctx, domain.ActionCreate, "device", device.ID,
		fmt.Sprintf("device %s registered", device.Name))

	return dto.FromDevice(device), nil
}

func (s *DeviceService) GetByID(ctx context.Context, id string) (dto.DeviceResponse, error) {
	ts, err := s.store.ForTenant(ctx)
	if err != nil {
		return dto.DeviceResponse{}, err
	}

	var device domain.Device
	if err := ts.GetByID(ctx, id, &device); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.DeviceResponse{}, ErrDeviceNotFound
		}
		return dto.DeviceResponse{}, err
	}
	return dto.FromDevice(&device), nil
}

func (s *DeviceService) List(ctx context.Context, filter domain.DeviceFilter) ([]dto.DeviceResponse, error) {
	ts, err := s.store.ForTenant(ctx)
	if err != nil {
		return nil, err
	}

	q, err := ts.Query(ctx, &domain.Device{})
	if err != nil {
		return nil, err
	}
	if filter.DeviceType != "" {
		q = q.Where("device_type = ?", filter.DeviceType)
	}
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}
	if filter.Limit > 0 {
		q = q.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		q = q.Offset(filter.Offset)
	}
	q = q.Order("last_seen DESC")

	var devices []domain.Device
	if err := q.Find(&devices).Error; err != nil {
		return nil, err
	}
	return dto.FromDevices(devices), nil
}

// Heartbeat updates status and last_seen for one device and leaves an
// audit trail entry when the status changed.
func (s *DeviceService) Heartbeat(ctx context.Context, id string, req dto.DeviceHeartbeatRequest) (dto.DeviceResponse, error) {
	if !domain.IsValidDeviceStatus(req.Status) {
		return dto.DeviceResponse{}, fmt.Errorf("%q: %w", req.Status, ErrInvalidDeviceStatus)
	}

	ts, err := s.store.ForTenant(ctx)
	if err != nil {
		return dto.DeviceResponse{}, err
	}

	var device domain.Device
	if err := ts.GetByID(ctx, id, &device); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.DeviceResponse{}, ErrDeviceNotFound
		}
		return dto.DeviceResponse{}, err
	}

	previous := device.Status
	device.Status = domain.DeviceStatus(req.Status)
	device.LastSeen = time.Now().UTC()
	if req.FirmwareVersion != "" {
		device.FirmwareVersion = req.FirmwareVersion
	}
	if err := ts.Save(ctx, &device); err != nil {
		return dto.DeviceResponse{}, err
	}

	if previous != device.Status {
		s.auditLog.record(ctx, domain.ActionUpdate, "device", device.ID,
			fmt.Sprintf("device %s status %s -> %s", device.Name, previous, device.Status))
	}

	return dto.FromDevice(&device), nil
}

// CountByStatus returns the fleet status breakdown for the active tenant.
func (s *DeviceService) CountByStatus(ctx context.Context) (map[string]int64, error) {
	ts, err := s.store.ForTenant(ctx)
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int64, len(domain.ValidDeviceStatuses))
	for _, status := range domain.ValidDeviceStatuses {
		var devices []domain.Device
		if err := ts.FindByIndex(ctx, &domain.Device{}, "status", string(status), &devices); err != nil {
			return nil, err
		}
		counts[string(status)] = int64(len(devices))
	}
	return counts, nil
}

// record is shared by services that write audit entries as a side effect.
func (s *AuditLogService) record(ctx context.Context, action domain.ActionType, resourceType, resourceID, message string) {
	userID := utils.GetUserIDFromContext(ctx)
	_, err := s.Create(ctx, dto.CreateAuditLogRequest{
		UserID:       userID,
		Action:       string(action),
		ResourceType: resourceType,
		ResourceID:   resourceID,
		Severity:     string(domain.SeverityInfo),
		Message:      message,
	})
	if err != nil {
		s.logger.Warnf("failed to write audit entry for %s %s: %v", resourceType, resourceID, err)
	}
}
