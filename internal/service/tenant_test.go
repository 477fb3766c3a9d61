package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"

	"github.com/Nath333/multi-tenant-admin-sub001/internal/api/dto"
	"github.com/Nath333/multi-tenant-admin-sub001/internal/config"
	"github.com/Nath333/multi-tenant-admin-sub001/internal/domain"
	"github.com/Nath333/multi-tenant-admin-sub001/internal/store"
	"github.com/Nath333/multi-tenant-admin-sub001/pkg/logger"
)

// newTestStore opens a fresh in-memory store for one test.
func newTestStore(s *suite.Suite) *store.Store {
	db, err := config.NewMemoryDatabase()
	s.Require().NoError(err)
	st, err := store.New(db, logger.NewNop())
	s.Require().NoError(err)
	return st
}

func closeTestStore(st *store.Store) {
	config.CloseDatabase(st.DB())
}

type TenantServiceTestSuite struct {
	suite.Suite
	store   *store.Store
	service *TenantService
	ctx     context.Context
}

func (s *TenantServiceTestSuite) SetupTest() {
	s.store = newTestStore(&s.Suite)
	s.service = NewTenantService(s.store)
	s.ctx = context.Background()
}

func (s *TenantServiceTestSuite) TearDownTest() {
	closeTestStore(s.store)
}

func TestTenantService(t *testing.T) {
	suite.Run(t, new(TenantServiceTestSuite))
}

func (s *TenantServiceTestSuite) TestCreate_Success() {
	resp, err := s.service.Create(s.ctx, dto.CreateTenantRequest{
		Name: "Test Tenant",
		Plan: "pro",
		Settings: domain.TenantSettings{
			Timezone: "UTC",
		},
	})

	s.NoError(err)
	s.NotEmpty(resp.ID)
	s.Equal("Test Tenant", resp.Name)
	s.Equal(string(domain.TenantStatusActive), resp.Status)
	s.Equal(string(domain.PlanPro), resp.Plan)
	s.Equal("UTC", resp.Settings.Timezone)
}

func (s *TenantServiceTestSuite) TestCreate_DefaultsToFreePlan() {
	resp, err := s.service.Create(s.ctx, dto.CreateTenantRequest{Name: "No Plan"})

	s.NoError(err)
	s.Equal(string(domain.PlanFree), resp.Plan)
}

func (s *TenantServiceTestSuite) TestCreate_RejectsUnknownPlan() {
	_, err := s.service.Create(s.ctx, dto.CreateTenantRequest{Name: "Bad", Plan: "platinum"})

	s.ErrorIs(err, ErrInvalidPlan)
}

func (s *TenantServiceTestSuite) TestGetByID() {
	created, err := s.service.Create(s.ctx, dto.CreateTenantRequest{Name: "Findable"})
	s.Require().NoError(err)

	tenant, err := s.service.GetByID(s.ctx, created.ID)
	s.NoError(err)
	s.Equal("Findable", tenant.Name)

	_, err = s.service.GetByID(s.ctx, "missing")
	s.ErrorIs(err, ErrTenantNotFound)
	s.True(IsNotFound(err))
}

func (s *TenantServiceTestSuite) TestList() {
	s.Require().NoError(s.store.Seed(s.ctx))

	tenants, err := s.service.List(s.ctx)
	s.NoError(err)
	s.Len(tenants, 3)
}

func (s *TenantServiceTestSuite) TestListByStatus() {
	s.Require().NoError(s.store.Seed(s.ctx))
	s.Require().NoError(s.store.Insert(s.ctx, &domain.Tenant{
		ID:     "tenant-s",
		Name:   "Suspended Co",
		Status: domain.TenantStatusSuspended,
		Plan:   domain.PlanFree,
	}))

	active, err := s.service.ListByStatus(s.ctx, "active")
	s.NoError(err)
	s.Len(active, 3)

	suspended, err := s.service.ListByStatus(s.ctx, "suspended")
	s.NoError(err)
	s.Len(suspended, 1)

	_, err = s.service.ListByStatus(s.ctx, "bogus")
	s.Error(err)
}

func (s *TenantServiceTestSuite) TestIsNotFound() {
	s.True(IsNotFound(ErrDeviceNotFound))
	s.True(IsNotFound(gorm.ErrRecordNotFound))
	s.False(IsNotFound(ErrInvalidPlan))
}
