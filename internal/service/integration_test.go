package service

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/Nath333/multi-tenant-admin-sub001/internal/api/dto"
	"github.com/Nath333/multi-tenant-admin-sub001/internal/domain"
	"github.com/Nath333/multi-tenant-admin-sub001/internal/store"
	"github.com/Nath333/multi-tenant-admin-sub001/internal/utils"
)

type IntegrationServiceTestSuite struct {
	suite.Suite
	store   *store.Store
	service *IntegrationService
	ctx     context.Context // tenant-1
}

func (s *IntegrationServiceTestSuite) SetupTest() {
	s.store = newTestStore(&s.Suite)
	s.service = NewIntegrationService(s.store)
	s.ctx = utils.WithTenantID(context.Background(), "tenant-1")
}

func (s *IntegrationServiceTestSuite) TearDownTest() {
	closeTestStore(s.store)
}

func TestIntegrationService(t *testing.T) {
	suite.Run(t, new(IntegrationServiceTestSuite))
}

func (s *IntegrationServiceTestSuite) TestCreateAPIKey_ReturnsPlaintextOnce() {
	created, err := s.service.CreateAPIKey(s.ctx, dto.CreateAPIKeyRequest{
		Name:   "ci-read-only",
		Scopes: []string{"devices:read"},
	})
	s.Require().NoError(err)

	s.True(strings.HasPrefix(created.Key, "ak_"))
	s.Equal(created.Key[:11], created.Prefix)
	s.Equal(1000, created.RateLimit)
	s.Equal(string(domain.APIKeyStatusActive), created.Status)

	// The stored record carries only the hash; listing never exposes the
	// plaintext again.
	listed, err := s.service.ListAPIKeys(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(listed, 1)
	s.Empty(listed[0].Key)

	var stored []domain.APIKey
	s.Require().NoError(s.store.QueryByIndex(s.ctx, &domain.APIKey{}, "prefix", created.Prefix, &stored))
	s.Require().Len(stored, 1)
	s.NotEqual(created.Key, stored[0].KeyHash)
	s.NotEmpty(stored[0].KeyHash)
}

func (s *IntegrationServiceTestSuite) TestCreateAPIKey_RequiresTenant() {
	_, err := s.service.CreateAPIKey(context.Background(), dto.CreateAPIKeyRequest{Name: "orphan"})
	s.ErrorIs(err, store.ErrNoTenantContext)
}

func (s *IntegrationServiceTestSuite) TestWebhooks_ScopedToTenant() {
	_, err := s.service.CreateWebhook(s.ctx, dto.CreateWebhookRequest{
		URL:    "https://hooks.example.com/ingest",
		Events: []string{"device.offline"},
		Secret: "whsec_123",
	})
	s.Require().NoError(err)

	mine, err := s.service.ListWebhooks(s.ctx)
	s.NoError(err)
	s.Require().Len(mine, 1)
	s.True(mine[0].Active)
	s.Equal("tenant-1", mine[0].TenantID)

	otherCtx := utils.WithTenantID(context.Background(), "tenant-2")
	others, err := s.service.ListWebhooks(otherCtx)
	s.NoError(err)
	s.Empty(others)
}
