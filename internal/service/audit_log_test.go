package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/Nath333/multi-tenant-admin-sub001/internal/api/dto"
	"github.com/Nath333/multi-tenant-admin-sub001/internal/domain"
	"github.com/Nath333/multi-tenant-admin-sub001/internal/service/pubsub"
	"github.com/Nath333/multi-tenant-admin-sub001/internal/store"
	"github.com/Nath333/multi-tenant-admin-sub001/internal/utils"
	"github.com/Nath333/multi-tenant-admin-sub001/pkg/logger"
)

type AuditLogServiceTestSuite struct {
	suite.Suite
	store   *store.Store
	broker  *pubsub.Broker
	service *AuditLogService
	ctx     context.Context // tenant-1
}

func (s *AuditLogServiceTestSuite) SetupTest() {
	s.store = newTestStore(&s.Suite)
	s.broker = pubsub.NewBroker(logger.NewNop())
	s.service = NewAuditLogService(s.store, s.broker, logger.NewNop())
	s.ctx = utils.WithTenantID(context.Background(), "tenant-1")
}

func (s *AuditLogServiceTestSuite) TearDownTest() {
	closeTestStore(s.store)
}

func TestAuditLogService(t *testing.T) {
	suite.Run(t, new(AuditLogServiceTestSuite))
}

func (s *AuditLogServiceTestSuite) TestCreate_PublishesToTenantChannel() {
	var received []*dto.AuditLogResponse
	cancel := s.broker.Subscribe("tenant-1", func(log *dto.AuditLogResponse) {
		received = append(received, log)
	})
	defer cancel()

	var otherTenant []*dto.AuditLogResponse
	cancelOther := s.broker.Subscribe("tenant-2", func(log *dto.AuditLogResponse) {
		otherTenant = append(otherTenant, log)
	})
	defer cancelOther()

	resp, err := s.service.Create(s.ctx, dto.CreateAuditLogRequest{
		Action:  "LOGIN",
		Message: "user signed in",
	})
	s.Require().NoError(err)
	s.Equal("tenant-1", resp.TenantID)

	s.Require().Len(received, 1)
	s.Equal(resp.ID, received[0].ID)
	s.Empty(otherTenant)
}

func (s *AuditLogServiceTestSuite) TestCreate_AppliesDefaults() {
	resp, err := s.service.Create(s.ctx, dto.CreateAuditLogRequest{
		Action:  "CREATE",
		Message: "something happened",
	})

	s.NoError(err)
	s.Equal(string(domain.SeverityInfo), resp.Severity)
	s.False(resp.Timestamp.IsZero())
}

func (s *AuditLogServiceTestSuite) TestBulkCreate() {
	reqs := []dto.CreateAuditLogRequest{
		{Action: "CREATE", Message: "first"},
		{Action: "UPDATE", Message: "second"},
		{Action: "DELETE", Message: "third"},
	}
	s.Require().NoError(s.service.BulkCreate(s.ctx, reqs))

	n, err := s.store.Count(s.ctx, &domain.AuditLog{})
	s.NoError(err)
	s.Equal(int64(3), n)
}

func (s *AuditLogServiceTestSuite) TestList_FiltersAndPaginates() {
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	reqs := []dto.CreateAuditLogRequest{
		{Action: "CREATE", Message: "a", UserID: "user-1", Timestamp: base},
		{Action: "UPDATE", Message: "b", UserID: "user-1", Timestamp: base.Add(time.Hour)},
		{Action: "CREATE", Message: "c", UserID: "user-9", Timestamp: base.Add(2 * time.Hour)},
	}
	s.Require().NoError(s.service.BulkCreate(s.ctx, reqs))

	creates, err := s.service.List(s.ctx, &domain.AuditLogFilter{Action: "CREATE"})
	s.NoError(err)
	s.Len(creates, 2)

	byUser, err := s.service.List(s.ctx, &domain.AuditLogFilter{UserID: "user-1"})
	s.NoError(err)
	s.Len(byUser, 2)

	// Newest first.
	all, err := s.service.List(s.ctx, &domain.AuditLogFilter{})
	s.NoError(err)
	s.Require().Len(all, 3)
	s.Equal("c", all[0].Message)

	paged, err := s.service.List(s.ctx, &domain.AuditLogFilter{Page: 2, PageSize: 2})
	s.NoError(err)
	s.Len(paged, 1)

	windowed, err := s.service.List(s.ctx, &domain.AuditLogFilter{
		StartTime: base.Add(30 * time.Minute),
	})
	s.NoError(err)
	s.Len(windowed, 2)
}

func (s *AuditLogServiceTestSuite) TestList_ScopedToTenant() {
	s.Require().NoError(s.service.BulkCreate(s.ctx, []dto.CreateAuditLogRequest{
		{Action: "CREATE", Message: "mine"},
	}))

	otherCtx := utils.WithTenantID(context.Background(), "tenant-2")
	logs, err := s.service.List(otherCtx, &domain.AuditLogFilter{})
	s.NoError(err)
	s.Empty(logs)
}

func (s *AuditLogServiceTestSuite) TestStats() {
	s.Require().NoError(s.service.BulkCreate(s.ctx, []dto.CreateAuditLogRequest{
		{Action: "CREATE", Message: "a", ResourceType: "device"},
		{Action: "CREATE", Message: "b", ResourceType: "device"},
		{Action: "DELETE", Message: "c", Severity: "WARNING", ResourceType: "dashboard"},
	}))

	stats, err := s.service.Stats(s.ctx, &domain.AuditLogFilter{})
	s.NoError(err)
	s.Equal(int64(3), stats.TotalLogs)
	s.Equal(int64(2), stats.ActionCounts[domain.ActionCreate])
	s.Equal(int64(1), stats.ActionCounts[domain.ActionDelete])
	s.Equal(int64(1), stats.SeverityCounts[domain.SeverityWarning])
	s.Equal(int64(2), stats.ResourceCounts["device"])
}

func (s *AuditLogServiceTestSuite) TestGetByID_RequiresTenant() {
	_, err := s.service.GetByID(context.Background(), "log-1")
	s.ErrorIs(err, store.ErrNoTenantContext)
}
