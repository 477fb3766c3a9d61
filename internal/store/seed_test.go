package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/Nath333/multi-tenant-admin-sub001/internal/config"
	"github.com/Nath333/multi-tenant-admin-sub001/internal/domain"
	"github.com/Nath333/multi-tenant-admin-sub001/pkg/logger"
)

type SeedTestSuite struct {
	suite.Suite
	store *Store
	ctx   context.Context
}

func (s *SeedTestSuite) SetupTest() {
	db, err := config.NewMemoryDatabase()
	s.Require().NoError(err)

	st, err := New(db, logger.NewNop())
	s.Require().NoError(err)

	s.store = st
	s.ctx = context.Background()
}

func (s *SeedTestSuite) TearDownTest() {
	config.CloseDatabase(s.store.DB())
}

func TestSeed(t *testing.T) {
	suite.Run(t, new(SeedTestSuite))
}

func (s *SeedTestSuite) counts() (tenants, users, permissions int64) {
	var err error
	tenants, err = s.store.Count(s.ctx, &domain.Tenant{})
	s.Require().NoError(err)
	users, err = s.store.Count(s.ctx, &domain.User{})
	s.Require().NoError(err)
	permissions, err = s.store.Count(s.ctx, &domain.Permission{})
	s.Require().NoError(err)
	return tenants, users, permissions
}

func (s *SeedTestSuite) TestSeed_PopulatesBaseline() {
	s.Require().NoError(s.store.Seed(s.ctx))

	tenants, users, permissions := s.counts()
	s.Equal(int64(3), tenants)
	s.Equal(int64(3), users)
	s.Equal(int64(7), permissions)

	for _, id := range []string{"tenant-1", "tenant-2", "tenant-3"} {
		var got []domain.Tenant
		s.Require().NoError(s.store.QueryByIndex(s.ctx, &domain.Tenant{}, "id", id, &got))
		s.Len(got, 1, id)
	}

	// Each seeded user belongs to its own tenant.
	var admins []domain.User
	s.Require().NoError(s.store.QueryByIndex(s.ctx, &domain.User{}, "id", "user-1", &admins))
	s.Require().Len(admins, 1)
	s.Equal("tenant-1", admins[0].TenantID)
	s.Equal(domain.RoleAdmin, admins[0].Role)
}

func (s *SeedTestSuite) TestSeed_SecondRunIsNoOp() {
	s.Require().NoError(s.store.Seed(s.ctx))
	s.Require().NoError(s.store.Seed(s.ctx))

	tenants, users, permissions := s.counts()
	s.Equal(int64(3), tenants)
	s.Equal(int64(3), users)
	s.Equal(int64(7), permissions)
}

func (s *SeedTestSuite) TestSeed_GuardKeysOnTenantsOnly() {
	// A store with any tenant at all is treated as populated, even when
	// the users and permissions never made it in. Re-running does not
	// repair such a partial state.
	s.Require().NoError(s.store.Insert(s.ctx, &domain.Tenant{
		ID:     "tenant-preexisting",
		Name:   "Already Here",
		Status: domain.TenantStatusActive,
		Plan:   domain.PlanFree,
	}))

	s.Require().NoError(s.store.Seed(s.ctx))

	tenants, users, permissions := s.counts()
	s.Equal(int64(1), tenants)
	s.Equal(int64(0), users)
	s.Equal(int64(0), permissions)
}

func (s *SeedTestSuite) TestSeedFixtures_AreConsistent() {
	tenantIDs := make(map[string]bool)
	for _, t := range SeedTenants() {
		tenantIDs[t.ID] = true
		s.True(domain.IsValidTenantStatus(string(t.Status)))
		s.True(domain.IsValidTenantPlan(string(t.Plan)))
	}
	for _, u := range SeedUsers() {
		s.True(tenantIDs[u.TenantID], "user %s references unknown tenant %s", u.ID, u.TenantID)
		s.True(domain.IsValidRole(string(u.Role)))
	}
	for _, p := range SeedPermissions() {
		s.NotEmpty(p.Roles, p.Name)
	}
}
